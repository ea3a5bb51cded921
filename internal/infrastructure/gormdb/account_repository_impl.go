package gormdb

import (
	"gorm.io/gorm"

	"github.com/foryous/reviews-api/internal/domain/entity"
	"github.com/foryous/reviews-api/internal/domain/repository"
)

type AccountRepository struct {
	db *gorm.DB
}

func NewAccountRepository(db *gorm.DB) *AccountRepository {
	return &AccountRepository{db: db}
}

// Create attempts an add-and-commit as a single unit; a duplicate email
// comes back as repository.ErrConflict and the row is discarded.
func (r *AccountRepository) Create(a *entity.Account) error {
	return translate(r.db.Create(a).Error)
}

func (r *AccountRepository) List() ([]entity.Account, error) {
	var accounts []entity.Account
	if err := r.db.Find(&accounts).Error; err != nil {
		return nil, translate(err)
	}
	return accounts, nil
}

var _ repository.AccountRepository = (*AccountRepository)(nil)
