package repository

import "github.com/foryous/reviews-api/internal/domain/entity"

// AccountRepository defines the interface for account-related database operations.
type AccountRepository interface {
	Create(a *entity.Account) error
	List() ([]entity.Account, error)
}
