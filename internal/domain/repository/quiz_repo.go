package repository

import (
	"github.com/yourusername/quiz-session-api/internal/domain/entity"
)

// QuizRepository определяет примитивные атомарные операции над хранилищем викторин.
// Хранилище — единственный владелец канонического графа Quiz/Question/Answer;
// все методы чтения возвращают глубокие копии. Бизнес-правила (вместимость,
// допустимость перехода статуса, дубликаты ответов) проверяет сервисный слой.
type QuizRepository interface {
	// Create создает викторину со статусом INITIALIZED, создателем в списке
	// участников и глубокой копией переданных вопросов.
	// Возвращает apperrors.ErrConflict, если join-код занят незавершенной викториной.
	Create(joinCode string, creator *entity.User, questions []entity.Question) (*entity.Quiz, error)

	// GetByID возвращает викторину по ID.
	GetByID(id string) (*entity.Quiz, error)

	// GetByJoinCode возвращает первую викторину с данным join-кодом независимо
	// от статуса. Допустимость FINISHED/IN_PROGRESS решает вызывающий код.
	GetByJoinCode(joinCode string) (*entity.Quiz, error)

	// AddPlayer добавляет участника в конец списка игроков.
	// Вместимость здесь не проверяется — это правило сервисного слоя.
	AddPlayer(quizID string, user *entity.User) (*entity.Quiz, error)

	// UpdateStatus безусловно перезаписывает статус викторины.
	UpdateStatus(quizID, status string) (*entity.Quiz, error)

	// UpdateQuestionStatus безусловно перезаписывает статус вопроса.
	UpdateQuestionStatus(quizID, questionID, status string) (*entity.Question, error)

	// AddAnswer присваивает ответу свежий ID и добавляет его к вопросу.
	// Дубликаты от одного участника здесь не отклоняются — сервис проверяет
	// их по свежему снимку непосредственно перед вызовом, под WithQuizLock.
	AddAnswer(quizID, questionID string, answer entity.QuestionAnswer) (*entity.QuestionAnswer, error)

	// WithQuizLock выполняет fn под мьютексом конкретной викторины.
	// Последовательности вида "прочитать-проверить-записать" должны выполняться
	// внутри fn: это гарантирует, что два конкурентных ответа не пройдут
	// проверку на дубликат и что продвижение вопроса происходит не более одного раза.
	WithQuizLock(quizID string, fn func() error) error
}
