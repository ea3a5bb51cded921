package modules

import (
	"github.com/gin-gonic/gin"

	handlers "github.com/foryous/reviews-api/internal/interface/http"
)

// AccountModule wires the account HTTP surface:
// POST /api/Accounts/create and GET /api/Accounts/
// The capitalized segment is part of the preserved contract.
type AccountModule struct {
	Handler *handlers.AccountHandler
	mw      []gin.HandlerFunc
}

func NewAccount(h *handlers.AccountHandler, mw ...gin.HandlerFunc) *AccountModule {
	return &AccountModule{Handler: h, mw: mw}
}

func (m *AccountModule) Register(rg *gin.RouterGroup) {
	grp := rg.Group("/Accounts")
	if len(m.mw) > 0 {
		grp.Use(m.mw...)
	}
	grp.POST("/create", m.Handler.Create)
	grp.GET("/", m.Handler.List)
}
