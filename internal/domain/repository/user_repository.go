package repository

import "github.com/wareline/supplydesk-api/internal/domain/entity"

// UserRepository is the persistence port for employee accounts.
type UserRepository interface {
	Create(user *entity.User) error
	FindByEmail(email string) (*entity.User, error)
}
