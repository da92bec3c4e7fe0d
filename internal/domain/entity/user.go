package entity

import "time"

// Roles válidos para User.
const (
	RoleAdministrator = "Administrator"
	RoleUser          = "User"
	RoleSales         = "Sales"
)

// ValidRole reporta si role es uno de los roles conocidos.
func ValidRole(role string) bool {
	switch role {
	case RoleAdministrator, RoleUser, RoleSales:
		return true
	}
	return false
}

// User representa un usuario del sistema. El username y el email son únicos.
type User struct {
	ID           string
	Username     string
	Email        string
	PasswordHash string // bcrypt hash, nunca plano en dominio después de persistir
	Role         string // Administrator, User, Sales
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
