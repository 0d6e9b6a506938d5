package memory

import (
	"fmt"
	"sync"

	"github.com/google/uuid"
	"github.com/yourusername/quiz-session-api/internal/domain/entity"
	apperrors "github.com/yourusername/quiz-session-api/internal/pkg/errors"
)

// UserRepo реализует хранилище участников в памяти процесса.
// Состояние живет столько же, сколько процесс; персистентности нет.
type UserRepo struct {
	mu    sync.RWMutex
	users []entity.User
}

// NewUserRepo создает новое хранилище участников
func NewUserRepo() *UserRepo {
	return &UserRepo{}
}

// Create создает нового участника с уникальным ID
func (r *UserRepo) Create(name, role string) (*entity.User, error) {
	user := entity.User{
		ID:   uuid.NewString(),
		Name: name,
		Role: role,
	}

	r.mu.Lock()
	r.users = append(r.users, user)
	r.mu.Unlock()

	return &user, nil
}

// GetByID возвращает участника по ID
func (r *UserRepo) GetByID(id string) (*entity.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for i := range r.users {
		if r.users[i].ID == id {
			user := r.users[i]
			return &user, nil
		}
	}

	return nil, fmt.Errorf("user with id %q: %w", id, apperrors.ErrNotFound)
}
