package modules

import (
	"github.com/gin-gonic/gin"

	handlers "github.com/foryous/reviews-api/internal/interface/http"
)

// UserModule wires the user HTTP surface under /api/Users.
type UserModule struct {
	Handler *handlers.UserHandler
	mw      []gin.HandlerFunc
}

func NewUser(h *handlers.UserHandler, mw ...gin.HandlerFunc) *UserModule {
	return &UserModule{Handler: h, mw: mw}
}

func (m *UserModule) Register(rg *gin.RouterGroup) {
	grp := rg.Group("/Users")
	if len(m.mw) > 0 {
		grp.Use(m.mw...)
	}
	grp.POST("/create", m.Handler.Create)
	grp.GET("/", m.Handler.List)
	grp.GET("/:id", m.Handler.Get)
	grp.PUT("/:id", m.Handler.Update)
	grp.DELETE("/:id", m.Handler.Delete)
	grp.GET("/:id/posts", m.Handler.Posts)
}
