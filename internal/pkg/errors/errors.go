package errors

import "errors"

// Общие ошибки приложения
var (
	// ErrNotFound используется, когда запись или ресурс не найдены.
	ErrNotFound = errors.New("record not found")

	// ErrConflict используется для конфликтов состояния (занятый join-код,
	// попытка повторного старта викторины и т.п.).
	ErrConflict = errors.New("resource state conflict")

	// ErrValidation используется для ошибок валидации входных данных.
	ErrValidation = errors.New("validation failed")

	// ErrUnauthorized используется для ошибок аутентификации (неверный токен).
	ErrUnauthorized = errors.New("unauthorized")

	// ErrForbidden используется, когда у пользователя недостаточно прав для действия.
	ErrForbidden = errors.New("forbidden")

	// ErrInternal используется для непредвиденных внутренних ошибок,
	// не входящих в таксономию выше.
	ErrInternal = errors.New("internal error")
)
