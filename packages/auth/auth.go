package auth

import (
	"auth/handlers"
	"auth/middleware"
	"auth/services"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type Module struct {
	Handler *handlers.AuthHandler
}

func NewModule(db *gorm.DB) *Module {
	return &Module{
		Handler: handlers.NewAuthHandler(db, services.NewIdentityService()),
	}
}

func (m *Module) SetupRoutes(r *gin.Engine) {
	auth := r.Group("/auth")
	{
		auth.GET("/callback", m.Handler.Callback)
		auth.GET("/error", m.Handler.AuthError)
		auth.GET("/me", middleware.JWTMiddleware(), m.Handler.Me)
		auth.POST("/logout", m.Handler.Logout)
	}
}

func JWTMiddleware() gin.HandlerFunc {
	return middleware.JWTMiddleware()
}

func OptionalJWTMiddleware() gin.HandlerFunc {
	return middleware.OptionalJWTMiddleware()
}

func GetUserID(c *gin.Context) (string, bool) {
	return middleware.GetUserID(c)
}

func GetUserEmail(c *gin.Context) (string, bool) {
	return middleware.GetUserEmail(c)
}
