package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/foryous/reviews-api/internal/application"
	repo "github.com/foryous/reviews-api/internal/domain/repository"
	"github.com/foryous/reviews-api/pkg/response"
	"github.com/foryous/reviews-api/pkg/validation"
)

type UserHandler struct {
	Svc    *application.UserService
	Logger *logrus.Logger
}

func NewUserHandler(svc *application.UserService, logger *logrus.Logger) *UserHandler {
	return &UserHandler{Svc: svc, Logger: logger}
}

type createUserRequest struct {
	Name      string `json:"name" binding:"required,min=2"`
	Rating    string `json:"rating" binding:"required"`
	Activity  string `json:"activity"`
	Review    string `json:"review"`
	Recommend string `json:"recommend"`
}

type updateUserRequest struct {
	Name      string `json:"name"`
	Rating    string `json:"rating"`
	Activity  string `json:"activity"`
	Review    string `json:"review"`
	Recommend string `json:"recommend"`
}

func (h *UserHandler) Create(c *gin.Context) {
	var req createUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.InvalidPayload(c, http.StatusBadRequest, validation.ToDetails(err))
		return
	}
	u, err := h.Svc.Create(application.CreateUserInput{
		Name:      req.Name,
		Rating:    req.Rating,
		Activity:  req.Activity,
		Review:    req.Review,
		Recommend: req.Recommend,
	})
	if err != nil {
		if errors.Is(err, repo.ErrConflict) {
			response.Message(c, http.StatusConflict, "user "+req.Name+" already exists")
			return
		}
		h.Logger.WithError(err).Error("user create failed")
		response.Message(c, http.StatusInternalServerError, "internal error")
		return
	}
	c.JSON(http.StatusCreated, u.Projection())
}

func (h *UserHandler) List(c *gin.Context) {
	users, err := h.Svc.List()
	if err != nil {
		h.Logger.WithError(err).Error("user list failed")
		response.Message(c, http.StatusInternalServerError, "internal error")
		return
	}
	c.JSON(http.StatusOK, users)
}

func (h *UserHandler) Get(c *gin.Context) {
	id, ok := h.userID(c)
	if !ok {
		return
	}
	u, err := h.Svc.Get(id)
	if err != nil {
		h.notFoundOrFail(c, err, "user get failed")
		return
	}
	c.JSON(http.StatusOK, u.Projection())
}

func (h *UserHandler) Update(c *gin.Context) {
	id, ok := h.userID(c)
	if !ok {
		return
	}
	var req updateUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.InvalidPayload(c, http.StatusBadRequest, validation.ToDetails(err))
		return
	}
	u, err := h.Svc.Update(id, application.UpdateUserInput{
		Name:      req.Name,
		Rating:    req.Rating,
		Activity:  req.Activity,
		Review:    req.Review,
		Recommend: req.Recommend,
	})
	if err != nil {
		if errors.Is(err, repo.ErrConflict) {
			response.Message(c, http.StatusConflict, "user name already taken")
			return
		}
		h.notFoundOrFail(c, err, "user update failed")
		return
	}
	c.JSON(http.StatusOK, u.Projection())
}

func (h *UserHandler) Delete(c *gin.Context) {
	id, ok := h.userID(c)
	if !ok {
		return
	}
	if err := h.Svc.Delete(id); err != nil {
		h.notFoundOrFail(c, err, "user delete failed")
		return
	}
	c.Status(http.StatusNoContent)
}

// Posts returns the user's post projections with images inlined as base64.
func (h *UserHandler) Posts(c *gin.Context) {
	id, ok := h.userID(c)
	if !ok {
		return
	}
	posts, err := h.Svc.Posts(id)
	if err != nil {
		h.notFoundOrFail(c, err, "user posts failed")
		return
	}
	c.JSON(http.StatusOK, posts)
}

func (h *UserHandler) userID(c *gin.Context) (uint, bool) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		response.Message(c, http.StatusBadRequest, "invalid user id")
		return 0, false
	}
	return uint(id), true
}

func (h *UserHandler) notFoundOrFail(c *gin.Context, err error, logMsg string) {
	if errors.Is(err, repo.ErrNotFound) {
		response.Message(c, http.StatusNotFound, "user not found")
		return
	}
	h.Logger.WithError(err).Error(logMsg)
	response.Message(c, http.StatusInternalServerError, "internal error")
}
