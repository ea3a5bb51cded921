package gormdb

import (
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/foryous/reviews-api/internal/domain/entity"
	"github.com/foryous/reviews-api/internal/domain/repository"
)

type UserRepository struct {
	db *gorm.DB
}

func NewUserRepository(db *gorm.DB) *UserRepository {
	return &UserRepository{db: db}
}

// Create persists the user and any posts attached to it as one commit.
// A duplicate name comes back as repository.ErrConflict with nothing stored.
func (r *UserRepository) Create(u *entity.User) error {
	return translate(r.db.Create(u).Error)
}

func (r *UserRepository) GetByID(id uint) (*entity.User, error) {
	u := &entity.User{}
	if err := r.db.First(u, id).Error; err != nil {
		return nil, translate(err)
	}
	return u, nil
}

func (r *UserRepository) List() ([]entity.User, error) {
	var users []entity.User
	if err := r.db.Find(&users).Error; err != nil {
		return nil, translate(err)
	}
	return users, nil
}

func (r *UserRepository) ListPosts(userID uint) ([]entity.Post, error) {
	var posts []entity.Post
	if err := r.db.Where("user_id = ?", userID).Find(&posts).Error; err != nil {
		return nil, translate(err)
	}
	return posts, nil
}

// Update commits the user's current field values immediately.
func (r *UserRepository) Update(u *entity.User) error {
	res := r.db.Model(u).Updates(map[string]any{
		"name":      u.Name,
		"rating":    u.Rating,
		"activity":  u.Activity,
		"review":    u.Review,
		"recommend": u.Recommend,
	})
	if res.Error != nil {
		return translate(res.Error)
	}
	if res.RowsAffected == 0 {
		return repository.ErrNotFound
	}
	return nil
}

// Delete removes the user and its posts. The association delete keeps the
// cascade honest even on drivers without foreign-key enforcement.
func (r *UserRepository) Delete(u *entity.User) error {
	return translate(r.db.Select(clause.Associations).Delete(u).Error)
}

var _ repository.UserRepository = (*UserRepository)(nil)
