package repository

import (
	"github.com/yourusername/quiz-session-api/internal/domain/entity"
)

// UserRepository определяет методы для работы с хранилищем участников
type UserRepository interface {
	// Create создает нового участника с уникальным ID. Всегда успешен.
	Create(name, role string) (*entity.User, error)

	// GetByID возвращает участника по ID.
	// Возвращает apperrors.ErrNotFound, если участника нет.
	GetByID(id string) (*entity.User, error)
}
