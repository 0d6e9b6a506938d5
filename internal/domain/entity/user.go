package entity

// Роли участников викторины
const (
	UserRoleAdmin  = "ADMIN"
	UserRolePlayer = "PLAYER"
)

// User представляет участника викторины.
// Создается один раз при создании/присоединении к викторине и далее не изменяется.
type User struct {
	ID   string `json:"id"`
	Name string `json:"name"`
	Role string `json:"role"` // "ADMIN" или "PLAYER"
}

// IsAdmin проверяет, является ли участник создателем викторины
func (u *User) IsAdmin() bool {
	return u.Role == UserRoleAdmin
}
