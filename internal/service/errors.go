package service

import (
	"fmt"

	apperrors "github.com/yourusername/quiz-session-api/internal/pkg/errors"
)

// Ошибки бизнес-правил викторины. Каждая оборачивает общую категорию из
// internal/pkg/errors, поэтому errors.Is работает и по конкретной ошибке,
// и по категории (хендлер мапит категории на HTTP-статусы).
var (
	// ErrQuizFull возвращается при попытке присоединиться к заполненной викторине.
	ErrQuizFull = fmt.Errorf("%w: quiz is at capacity", apperrors.ErrConflict)

	// ErrNameTaken возвращается, когда имя участника уже занято в этой викторине.
	ErrNameTaken = fmt.Errorf("%w: player name is already taken in this quiz", apperrors.ErrConflict)

	// ErrUserNotInQuiz возвращается, когда действующий пользователь не входит
	// в список участников викторины.
	ErrUserNotInQuiz = fmt.Errorf("%w: user is not a player of this quiz", apperrors.ErrForbidden)

	// ErrNotQuizAdmin возвращается, когда викторину пытается запустить не создатель.
	ErrNotQuizAdmin = fmt.Errorf("%w: only the quiz admin can start the quiz", apperrors.ErrForbidden)

	// ErrQuizAlreadyStarted возвращается при повторном запуске викторины.
	ErrQuizAlreadyStarted = fmt.Errorf("%w: quiz is already in progress", apperrors.ErrConflict)

	// ErrQuizAlreadyFinished возвращается для операций над завершенной викториной.
	ErrQuizAlreadyFinished = fmt.Errorf("%w: quiz has already finished", apperrors.ErrConflict)

	// ErrQuizNotStarted возвращается при попытке ответить до запуска викторины.
	ErrQuizNotStarted = fmt.Errorf("%w: quiz has not been started yet", apperrors.ErrConflict)

	// ErrNotEnoughPlayers возвращается при запуске викторины с одним участником.
	ErrNotEnoughPlayers = fmt.Errorf("%w: not enough players to start the quiz", apperrors.ErrConflict)

	// ErrQuestionNotCurrent возвращается при ответе на вопрос, который
	// не является текущим (еще не задан или уже закрыт).
	ErrQuestionNotCurrent = fmt.Errorf("%w: question is not the current question", apperrors.ErrConflict)

	// ErrQuestionAlreadyAnswered возвращается при повторном ответе участника
	// на один и тот же вопрос.
	ErrQuestionAlreadyAnswered = fmt.Errorf("%w: user has already answered this question", apperrors.ErrConflict)

	// ErrInvalidChoice возвращается, когда вариант ответа не принадлежит вопросу.
	ErrInvalidChoice = fmt.Errorf("%w: choice does not belong to this question", apperrors.ErrValidation)
)
