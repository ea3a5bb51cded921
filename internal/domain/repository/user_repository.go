package repository

import "github.com/foryous/reviews-api/internal/domain/entity"

// UserRepository defines the interface for user-related database operations.
// Create persists the user together with any transient posts attached to it.
// Delete removes the user and cascades to its posts.
type UserRepository interface {
	Create(u *entity.User) error
	GetByID(id uint) (*entity.User, error)
	List() ([]entity.User, error)
	ListPosts(userID uint) ([]entity.Post, error)
	Update(u *entity.User) error
	Delete(u *entity.User) error
}
