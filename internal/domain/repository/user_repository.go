package repository

import "github.com/serviagenda/agenda-api/internal/domain/entity"

// UserRepository define el puerto de persistencia para User (DIP).
type UserRepository interface {
	Create(user *entity.User) error
	GetByID(id string) (*entity.User, error)
	GetByUsername(username string) (*entity.User, error)
	// ExistsByUsernameOrEmail reporta si ya hay un usuario con ese username o email.
	ExistsByUsernameOrEmail(username, email string) (bool, error)
}
