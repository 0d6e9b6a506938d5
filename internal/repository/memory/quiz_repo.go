package memory

import (
	"fmt"
	"sync"

	"github.com/google/uuid"
	"github.com/yourusername/quiz-session-api/internal/domain/entity"
	apperrors "github.com/yourusername/quiz-session-api/internal/pkg/errors"
)

// QuizRepo реализует хранилище викторин в памяти процесса.
// Хранилище — единственный писатель канонического графа Quiz/Question/Answer:
// каждый метод атомарен под общим мьютексом коллекции, наружу отдаются только
// глубокие копии. Порядок в слайсе quizzes соответствует порядку создания,
// поэтому GetByJoinCode возвращает первую (самую старую) викторину с кодом.
type QuizRepo struct {
	mu      sync.RWMutex
	quizzes []*entity.Quiz

	// Мьютексы отдельных викторин для WithQuizLock.
	// Общий мьютекс коллекции никогда не берется с удержанием quizLock,
	// поэтому инверсии порядка блокировок не возникает.
	lockMu    sync.Mutex
	quizLocks map[string]*sync.Mutex
}

// NewQuizRepo создает новое хранилище викторин
func NewQuizRepo() *QuizRepo {
	return &QuizRepo{
		quizLocks: make(map[string]*sync.Mutex),
	}
}

// Create создает викторину со статусом INITIALIZED и создателем в списке участников.
// Переданные вопросы копируются глубоко: викторины никогда не разделяют
// объекты вопросов с шаблоном или друг с другом.
func (r *QuizRepo) Create(joinCode string, creator *entity.User, questions []entity.Question) (*entity.Quiz, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, q := range r.quizzes {
		if q.JoinCode == joinCode && !q.IsFinished() {
			return nil, fmt.Errorf("quiz with join code %q already exists and is still active: %w",
				joinCode, apperrors.ErrConflict)
		}
	}

	quiz := &entity.Quiz{
		ID:        uuid.NewString(),
		JoinCode:  joinCode,
		Status:    entity.QuizStatusInitialized,
		Players:   []entity.User{*creator},
		Questions: make([]entity.Question, len(questions)),
	}
	for i := range questions {
		quiz.Questions[i] = questions[i].Clone()
	}

	r.quizzes = append(r.quizzes, quiz)
	return quiz.Clone(), nil
}

// GetByID возвращает копию викторины по ID
func (r *QuizRepo) GetByID(id string) (*entity.Quiz, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	quiz, err := r.findByID(id)
	if err != nil {
		return nil, err
	}
	return quiz.Clone(), nil
}

// GetByJoinCode возвращает копию первой викторины с данным join-кодом
// независимо от ее статуса
func (r *QuizRepo) GetByJoinCode(joinCode string) (*entity.Quiz, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, quiz := range r.quizzes {
		if quiz.JoinCode == joinCode {
			return quiz.Clone(), nil
		}
	}

	return nil, fmt.Errorf("quiz with join code %q: %w", joinCode, apperrors.ErrNotFound)
}

// AddPlayer добавляет участника в конец списка игроков викторины
func (r *QuizRepo) AddPlayer(quizID string, user *entity.User) (*entity.Quiz, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	quiz, err := r.findByID(quizID)
	if err != nil {
		return nil, err
	}

	quiz.Players = append(quiz.Players, *user)
	return quiz.Clone(), nil
}

// UpdateStatus безусловно перезаписывает статус викторины.
// Допустимость перехода проверяет сервисный слой.
func (r *QuizRepo) UpdateStatus(quizID, status string) (*entity.Quiz, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	quiz, err := r.findByID(quizID)
	if err != nil {
		return nil, err
	}

	quiz.Status = status
	return quiz.Clone(), nil
}

// UpdateQuestionStatus безусловно перезаписывает статус вопроса
func (r *QuizRepo) UpdateQuestionStatus(quizID, questionID, status string) (*entity.Question, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	quiz, err := r.findByID(quizID)
	if err != nil {
		return nil, err
	}

	idx := quiz.QuestionIndex(questionID)
	if idx == -1 {
		return nil, fmt.Errorf("question with id %q: %w", questionID, apperrors.ErrNotFound)
	}

	quiz.Questions[idx].Status = status
	question := quiz.Questions[idx].Clone()
	return &question, nil
}

// AddAnswer присваивает ответу свежий ID и добавляет его к вопросу.
// Проверка дубликатов от одного участника — обязанность сервисного слоя.
func (r *QuizRepo) AddAnswer(quizID, questionID string, answer entity.QuestionAnswer) (*entity.QuestionAnswer, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	quiz, err := r.findByID(quizID)
	if err != nil {
		return nil, err
	}

	idx := quiz.QuestionIndex(questionID)
	if idx == -1 {
		return nil, fmt.Errorf("question with id %q: %w", questionID, apperrors.ErrNotFound)
	}

	answer.ID = uuid.NewString()
	quiz.Questions[idx].Answers = append(quiz.Questions[idx].Answers, answer)
	return &answer, nil
}

// WithQuizLock выполняет fn под мьютексом конкретной викторины.
// Мьютекс создается по требованию: блокировка по неизвестному ID допустима,
// операции внутри fn сами вернут ErrNotFound.
func (r *QuizRepo) WithQuizLock(quizID string, fn func() error) error {
	lock := r.quizLock(quizID)
	lock.Lock()
	defer lock.Unlock()
	return fn()
}

// quizLock возвращает мьютекс викторины, создавая его при первом обращении
func (r *QuizRepo) quizLock(quizID string) *sync.Mutex {
	r.lockMu.Lock()
	defer r.lockMu.Unlock()

	lock, ok := r.quizLocks[quizID]
	if !ok {
		lock = &sync.Mutex{}
		r.quizLocks[quizID] = lock
	}
	return lock
}

// findByID возвращает каноническую викторину. Вызывающий обязан держать r.mu.
func (r *QuizRepo) findByID(id string) (*entity.Quiz, error) {
	for _, quiz := range r.quizzes {
		if quiz.ID == id {
			return quiz, nil
		}
	}
	return nil, fmt.Errorf("quiz with id %q: %w", id, apperrors.ErrNotFound)
}
