package service

import (
	"fmt"
	"log"

	"github.com/yourusername/quiz-session-api/internal/domain/entity"
	"github.com/yourusername/quiz-session-api/internal/domain/repository"
	apperrors "github.com/yourusername/quiz-session-api/internal/pkg/errors"
)

// DefaultMaxPlayers — вместимость викторины по умолчанию
const DefaultMaxPlayers = 8

// QuizService реализует жизненный цикл викторины: создание, присоединение,
// запуск и прием ответов с продвижением к следующему вопросу. Все проверки
// бизнес-правил выполняются здесь по свежему снимку из хранилища; сервис
// не держит собственной копии состояния.
type QuizService struct {
	quizRepo   repository.QuizRepository
	userRepo   repository.UserRepository
	questions  []entity.Question
	maxPlayers int
}

// NewQuizService создает новый сервис викторин.
// questions — шаблон вопросов, которым засеивается каждая викторина;
// maxPlayers <= 0 заменяется на DefaultMaxPlayers.
func NewQuizService(
	quizRepo repository.QuizRepository,
	userRepo repository.UserRepository,
	questions []entity.Question,
	maxPlayers int,
) *QuizService {
	if maxPlayers <= 0 {
		maxPlayers = DefaultMaxPlayers
	}
	return &QuizService{
		quizRepo:   quizRepo,
		userRepo:   userRepo,
		questions:  questions,
		maxPlayers: maxPlayers,
	}
}

// GetQuiz возвращает снимок викторины по ID
func (s *QuizService) GetQuiz(quizID string) (*entity.Quiz, error) {
	return s.quizRepo.GetByID(quizID)
}

// CreateQuiz создает участника-администратора и новую викторину,
// засеянную копией шаблона вопросов со свежими ID
func (s *QuizService) CreateQuiz(joinCode, userName string) (*entity.Quiz, *entity.User, error) {
	user, err := s.userRepo.Create(userName, entity.UserRoleAdmin)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to create admin user: %w", err)
	}

	quiz, err := s.quizRepo.Create(joinCode, user, entity.CopyQuestionTemplate(s.questions))
	if err != nil {
		return nil, nil, err
	}

	log.Printf("[QuizService] Создана викторина %s (join-код %s, администратор %q)", quiz.ID, quiz.JoinCode, user.Name)
	return quiz, user, nil
}

// JoinQuiz присоединяет нового участника к викторине по join-коду.
// Проверки вместимости и занятости имени выполняются под мьютексом викторины,
// чтобы два конкурентных присоединения не прошли их одновременно.
func (s *QuizService) JoinQuiz(joinCode, userName string) (*entity.Quiz, *entity.User, error) {
	existing, err := s.quizRepo.GetByJoinCode(joinCode)
	if err != nil {
		return nil, nil, err
	}

	var (
		quiz *entity.Quiz
		user *entity.User
	)
	err = s.quizRepo.WithQuizLock(existing.ID, func() error {
		current, err := s.quizRepo.GetByID(existing.ID)
		if err != nil {
			return err
		}

		if current.IsFinished() {
			return ErrQuizAlreadyFinished
		}
		if len(current.Players) >= s.maxPlayers {
			return ErrQuizFull
		}
		if current.HasPlayerNamed(userName) {
			return ErrNameTaken
		}

		user, err = s.userRepo.Create(userName, entity.UserRolePlayer)
		if err != nil {
			return fmt.Errorf("failed to create player: %w", err)
		}

		quiz, err = s.quizRepo.AddPlayer(current.ID, user)
		return err
	})
	if err != nil {
		return nil, nil, err
	}

	log.Printf("[QuizService] Участник %q присоединился к викторине %s (%d/%d игроков)",
		user.Name, quiz.ID, len(quiz.Players), s.maxPlayers)
	return quiz, user, nil
}

// StartQuiz запускает викторину. Запуск доступен только администратору и только
// из статуса INITIALIZED при двух и более участниках. Первый вопрос переводится
// в IN_PROGRESS до смены статуса викторины: клиент, увидевший викторину
// запущенной, всегда видит и активный вопрос.
func (s *QuizService) StartQuiz(quizID, userID string) (*entity.Quiz, error) {
	var quiz *entity.Quiz
	err := s.quizRepo.WithQuizLock(quizID, func() error {
		current, err := s.quizRepo.GetByID(quizID)
		if err != nil {
			return err
		}

		player := current.Player(userID)
		if player == nil {
			return ErrUserNotInQuiz
		}
		if !player.IsAdmin() {
			return ErrNotQuizAdmin
		}
		if current.IsActive() {
			return ErrQuizAlreadyStarted
		}
		if current.IsFinished() {
			return ErrQuizAlreadyFinished
		}
		if len(current.Players) <= 1 {
			return ErrNotEnoughPlayers
		}
		if len(current.Questions) == 0 {
			return fmt.Errorf("quiz %q has no questions: %w", quizID, apperrors.ErrInternal)
		}

		if _, err := s.quizRepo.UpdateQuestionStatus(quizID, current.Questions[0].ID, entity.QuestionStatusInProgress); err != nil {
			return err
		}

		quiz, err = s.quizRepo.UpdateStatus(quizID, entity.QuizStatusInProgress)
		return err
	})
	if err != nil {
		return nil, err
	}

	log.Printf("[QuizService] Викторина %s запущена (%d игроков, %d вопросов)",
		quiz.ID, len(quiz.Players), len(quiz.Questions))
	return quiz, nil
}

// AnswerQuizQuestion записывает ответ участника на текущий вопрос и применяет
// алгоритм продвижения: как только ответили все текущие участники, вопрос
// закрывается и открывается следующий; после последнего вопроса викторина
// завершается. Вся последовательность "проверить-записать-продвинуть"
// выполняется под мьютексом викторины, поэтому продвижение происходит
// не более одного раза на вопрос.
func (s *QuizService) AnswerQuizQuestion(quizID, userID, questionID, choiceID string) (*entity.Quiz, error) {
	var quiz *entity.Quiz
	err := s.quizRepo.WithQuizLock(quizID, func() error {
		current, err := s.quizRepo.GetByID(quizID)
		if err != nil {
			return err
		}

		if current.Player(userID) == nil {
			return ErrUserNotInQuiz
		}
		if current.IsInitialized() {
			return ErrQuizNotStarted
		}
		if current.IsFinished() {
			return ErrQuizAlreadyFinished
		}

		idx := current.QuestionIndex(questionID)
		if idx == -1 {
			return fmt.Errorf("question %q does not exist for quiz %q: %w", questionID, quizID, apperrors.ErrNotFound)
		}

		question := current.Questions[idx]
		if !question.IsCurrent() {
			return ErrQuestionNotCurrent
		}
		if question.HasAnswerFrom(userID) {
			return ErrQuestionAlreadyAnswered
		}

		choice := question.ChoiceByID(choiceID)
		if choice == nil {
			return ErrInvalidChoice
		}

		if _, err := s.quizRepo.AddAnswer(quizID, questionID, entity.QuestionAnswer{
			UserID: userID,
			Choice: *choice,
		}); err != nil {
			return err
		}

		quiz, err = s.advanceQuestion(quizID, idx)
		return err
	})
	if err != nil {
		return nil, err
	}
	return quiz, nil
}

// advanceQuestion применяет алгоритм продвижения после записи ответа.
// Вызывается только под мьютексом викторины.
func (s *QuizService) advanceQuestion(quizID string, questionIdx int) (*entity.Quiz, error) {
	quiz, err := s.quizRepo.GetByID(quizID)
	if err != nil {
		return nil, err
	}

	question := quiz.Questions[questionIdx]

	// Учитываются все текущие участники: присоединившийся посреди вопроса
	// игрок задерживает продвижение, пока сам не ответит. Это принятое
	// поведение для синхронной игры небольшим составом.
	if len(question.Answers) < len(quiz.Players) {
		return quiz, nil
	}

	if _, err := s.quizRepo.UpdateQuestionStatus(quizID, question.ID, entity.QuestionStatusFinished); err != nil {
		return nil, err
	}

	if questionIdx+1 < len(quiz.Questions) {
		next := quiz.Questions[questionIdx+1]
		if _, err := s.quizRepo.UpdateQuestionStatus(quizID, next.ID, entity.QuestionStatusInProgress); err != nil {
			return nil, err
		}
		log.Printf("[QuizService] Викторина %s: вопрос %d закрыт, открыт вопрос %d", quizID, questionIdx+1, questionIdx+2)
		return s.quizRepo.GetByID(quizID)
	}

	log.Printf("[QuizService] Викторина %s завершена: все вопросы отвечены", quizID)
	return s.quizRepo.UpdateStatus(quizID, entity.QuizStatusFinished)
}
