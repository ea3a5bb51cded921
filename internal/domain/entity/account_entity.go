package entity

import (
	"github.com/foryous/reviews-api/pkg/helpers"
)

// Account is a registered account record. Email carries the uniqueness
// constraint. The password is optional and only ever stored hashed; it is
// set through SetPassword and never projected.
type Account struct {
	ID           uint   `gorm:"primaryKey"`
	Name         string `gorm:"size:255;not null"`
	Email        string `gorm:"size:255;uniqueIndex;not null"`
	PhoneNumber  string `gorm:"size:32"`
	PasswordHash string `gorm:"size:255"`
}

// SetPassword hashes the plain password with bcrypt and stores the hash.
func (a *Account) SetPassword(plain string) error {
	hash, err := helpers.HashPassword(plain)
	if err != nil {
		return err
	}
	a.PasswordHash = hash
	return nil
}

// IsPassword reports whether plain matches the stored hash.
func (a *Account) IsPassword(plain string) bool {
	return helpers.CompareHashAndPassword(a.PasswordHash, plain)
}

// AccountProjection is the JSON shape returned from account reads.
type AccountProjection struct {
	ID          uint   `json:"id"`
	Name        string `json:"name"`
	Email       string `json:"email"`
	PhoneNumber string `json:"phonenumber"`
}

// Projection returns the plain key-value representation of the account.
func (a *Account) Projection() AccountProjection {
	return AccountProjection{
		ID:          a.ID,
		Name:        a.Name,
		Email:       a.Email,
		PhoneNumber: a.PhoneNumber,
	}
}
