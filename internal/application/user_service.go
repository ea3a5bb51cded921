package application

import (
	"github.com/sirupsen/logrus"

	"github.com/foryous/reviews-api/internal/domain/entity"
	repo "github.com/foryous/reviews-api/internal/domain/repository"
	"github.com/foryous/reviews-api/pkg/helpers"
)

// Defaults applied when optional fields are omitted on create.
const (
	defaultActivity  = "seaworld"
	defaultReview    = "good"
	defaultRecommend = "yes"
)

type UserService struct {
	Repo      repo.UserRepository
	UploadDir string
	Logger    *logrus.Logger
}

func NewUserService(r repo.UserRepository, uploadDir string, logger *logrus.Logger) *UserService {
	return &UserService{Repo: r, UploadDir: uploadDir, Logger: logger}
}

type CreateUserInput struct {
	Name      string
	Rating    string
	Activity  string
	Review    string
	Recommend string
}

// Create persists a new user. Empty optional fields get the constructor
// defaults. A duplicate name surfaces as repository.ErrConflict.
func (s *UserService) Create(in CreateUserInput) (*entity.User, error) {
	u := &entity.User{
		Name:      in.Name,
		Rating:    in.Rating,
		Activity:  in.Activity,
		Review:    in.Review,
		Recommend: in.Recommend,
	}
	if u.Activity == "" {
		u.Activity = defaultActivity
	}
	if u.Review == "" {
		u.Review = defaultReview
	}
	if u.Recommend == "" {
		u.Recommend = defaultRecommend
	}
	if err := s.Repo.Create(u); err != nil {
		return nil, err
	}
	return u, nil
}

func (s *UserService) Get(id uint) (*entity.User, error) {
	return s.Repo.GetByID(id)
}

// List returns the projection of every user row.
func (s *UserService) List() ([]entity.UserProjection, error) {
	users, err := s.Repo.List()
	if err != nil {
		return nil, err
	}
	out := make([]entity.UserProjection, 0, len(users))
	for i := range users {
		out = append(out, users[i].Projection())
	}
	return out, nil
}

type UpdateUserInput struct {
	Name      string
	Rating    string
	Activity  string
	Review    string
	Recommend string
}

// Update applies only the non-empty supplied fields and commits immediately.
func (s *UserService) Update(id uint, in UpdateUserInput) (*entity.User, error) {
	u, err := s.Repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if len(in.Name) > 0 {
		u.Name = in.Name
	}
	if len(in.Rating) > 0 {
		u.Rating = in.Rating
	}
	if len(in.Activity) > 0 {
		u.Activity = in.Activity
	}
	if len(in.Review) > 0 {
		u.Review = in.Review
	}
	if len(in.Recommend) > 0 {
		u.Recommend = in.Recommend
	}
	if err := s.Repo.Update(u); err != nil {
		return nil, err
	}
	return u, nil
}

// Delete removes the user from the store, cascading its posts.
func (s *UserService) Delete(id uint) error {
	u, err := s.Repo.GetByID(id)
	if err != nil {
		return err
	}
	return s.Repo.Delete(u)
}

// Posts returns the post projections for one user. Each projection inlines
// the base64-encoded image from the upload directory; a missing file fails
// the whole read, matching the write-time/read-time split of the image path.
func (s *UserService) Posts(userID uint) ([]entity.PostProjection, error) {
	if _, err := s.Repo.GetByID(userID); err != nil {
		return nil, err
	}
	posts, err := s.Repo.ListPosts(userID)
	if err != nil {
		return nil, err
	}
	out := make([]entity.PostProjection, 0, len(posts))
	for i := range posts {
		encoded := ""
		if posts[i].Image != "" {
			encoded, err = helpers.EncodeImage(s.UploadDir, posts[i].Image)
			if err != nil {
				s.Logger.WithError(err).WithField("image", posts[i].Image).Error("read post image failed")
				return nil, err
			}
		}
		out = append(out, posts[i].Projection(encoded))
	}
	return out, nil
}
