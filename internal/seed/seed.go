package seed

import (
	"errors"
	"fmt"
	"image"
	"image/png"
	"math/rand"
	"os"
	"path/filepath"

	"github.com/sirupsen/logrus"
	"gorm.io/gorm"

	"github.com/foryous/reviews-api/internal/domain/entity"
	"github.com/foryous/reviews-api/internal/domain/repository"
	"github.com/foryous/reviews-api/internal/infrastructure/gormdb"
)

// PlaceholderImage is the shared image filename attached to every seeded post.
const PlaceholderImage = "ncs_logo.png"

// SampleUsers returns the fixed sample data, without posts attached.
func SampleUsers() []entity.User {
	return []entity.User{
		{Name: "Lina Awad", Rating: "emirates", Activity: "four seasons", Review: "Super Good", Recommend: "yes"},
		{Name: "Jocelyn Anda", Rating: "emirates", Activity: "four seasons", Review: "Super Good", Recommend: "yes"},
		{Name: "Naja Fonesca", Rating: "delta", Activity: "four seasons", Review: "Super Bad", Recommend: "no"},
		{Name: "Amitha Sanka", Rating: "emirates", Activity: "four seasons", Review: "Super Good", Recommend: "yes"},
		{Name: "Sean Yeung", Rating: "delta", Activity: "four seasons", Review: "Super Bad", Recommend: "no"},
		{Name: "Winnie Pooh", Rating: "delta", Activity: "four seasons", Review: "Super Good", Recommend: "yes"},
	}
}

// Run ensures the schema and the placeholder image exist, then persists the
// sample users, each with 1-6 attached posts. A user that already exists is
// logged and skipped; the routine keeps going with the remaining entities.
func Run(db *gorm.DB, uploadDir string, logger *logrus.Logger) error {
	if err := gormdb.AutoMigrate(db); err != nil {
		return fmt.Errorf("migrate schema: %w", err)
	}
	if err := ensurePlaceholder(uploadDir); err != nil {
		return fmt.Errorf("ensure placeholder image: %w", err)
	}

	repo := gormdb.NewUserRepository(db)
	for _, u := range SampleUsers() {
		count := rand.Intn(6) + 1
		for n := 0; n < count; n++ {
			u.Posts = append(u.Posts, entity.Post{
				Note:  fmt.Sprintf("#### %s note %d. \n Generated by test data.", u.Name, n),
				Image: PlaceholderImage,
			})
		}
		if err := repo.Create(&u); err != nil {
			if errors.Is(err, repository.ErrConflict) {
				logger.WithField("name", u.Name).Warn("records exist, duplicate name, or error")
				continue
			}
			return fmt.Errorf("seed user %s: %w", u.Name, err)
		}
		logger.WithFields(logrus.Fields{"name": u.Name, "posts": len(u.Posts)}).Info("seeded user")
	}
	return nil
}

// ensurePlaceholder writes a 1x1 png placeholder when the upload dir does
// not already contain the image, so seeded post reads succeed.
func ensurePlaceholder(dir string) error {
	path := filepath.Join(dir, PlaceholderImage)
	if _, err := os.Stat(path); err == nil {
		return nil
	} else if !os.IsNotExist(err) {
		return err
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return err
	}
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer func() { _ = f.Close() }()
	return png.Encode(f, image.NewRGBA(image.Rect(0, 0, 1, 1)))
}
