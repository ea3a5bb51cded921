package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/foryous/reviews-api/internal/application"
	"github.com/foryous/reviews-api/pkg/response"
)

// statusAccountFailure is the status returned for every account failure,
// validation and conflict alike. 210 has no HTTP meaning, but existing
// clients depend on it.
const statusAccountFailure = 210

type AccountHandler struct {
	Svc    *application.AccountService
	Logger *logrus.Logger
}

func NewAccountHandler(svc *application.AccountService, logger *logrus.Logger) *AccountHandler {
	return &AccountHandler{Svc: svc, Logger: logger}
}

type createAccountRequest struct {
	Name        string  `json:"name"`
	Email       string  `json:"email"`
	PhoneNumber string  `json:"phonenumber"`
	Password    *string `json:"password"`
}

// Create handles POST /api/Accounts/create. Success returns the bare account
// projection; any validation or store failure returns 210 with a message.
func (h *AccountHandler) Create(c *gin.Context) {
	var req createAccountRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		// A malformed body behaves like an empty one and fails the
		// field checks below.
		req = createAccountRequest{}
	}

	in := application.CreateAccountInput{
		Name:        req.Name,
		Email:       req.Email,
		PhoneNumber: req.PhoneNumber,
		HasPassword: req.Password != nil,
	}
	if req.Password != nil {
		in.Password = *req.Password
	}

	res, err := h.Svc.Create(in)
	if err != nil {
		h.Logger.WithError(err).Error("account create failed")
		response.Message(c, http.StatusInternalServerError, "internal error")
		return
	}
	if res.Status != application.StatusStored {
		response.Message(c, statusAccountFailure, res.Message)
		return
	}
	c.JSON(http.StatusOK, res.Account.Projection())
}

// List handles GET /api/Accounts/ and returns a JSON array of projections.
func (h *AccountHandler) List(c *gin.Context) {
	accounts, err := h.Svc.List()
	if err != nil {
		h.Logger.WithError(err).Error("account list failed")
		response.Message(c, http.StatusInternalServerError, "internal error")
		return
	}
	c.JSON(http.StatusOK, accounts)
}
