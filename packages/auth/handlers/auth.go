package handlers

import (
	"net/http"
	"net/url"
	"time"

	"auth/middleware"
	"auth/models"
	"auth/services"
	"auth/utils"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

const noCodeMessage = "No authorization code received"

type AuthHandler struct {
	DB              *gorm.DB
	IdentityService services.IdentityService
}

func NewAuthHandler(db *gorm.DB, identityService services.IdentityService) *AuthHandler {
	return &AuthHandler{
		DB:              db,
		IdentityService: identityService,
	}
}

func errorRedirect(c *gin.Context, message string) {
	c.Redirect(http.StatusFound, "/auth/error?message="+url.QueryEscape(message))
}

// Callback completes the OAuth flow: it exchanges the code for an identity,
// upserts the user, issues the session cookie and redirects to `next`.
// @Summary OAuth callback
// @Description Exchange the provider's authorization code for a session cookie
// @Tags auth
// @Param code query string false "Authorization code"
// @Param next query string false "Path to redirect to after login (default /)"
// @Success 302
// @Router /auth/callback [get]
func (h *AuthHandler) Callback(c *gin.Context) {
	code := c.Query("code")
	next := c.DefaultQuery("next", "/")

	if code == "" {
		errorRedirect(c, noCodeMessage)
		return
	}

	identity, err := h.IdentityService.ExchangeCode(code)
	if err != nil {
		errorRedirect(c, err.Error())
		return
	}

	now := time.Now()
	user := models.User{
		ID:        identity.Subject,
		Email:     identity.Email,
		Name:      identity.Name,
		LastLogin: &now,
	}
	if err := h.DB.Save(&user).Error; err != nil {
		errorRedirect(c, "Failed to persist user")
		return
	}

	token, err := utils.GenerateSessionToken(user)
	if err != nil {
		errorRedirect(c, "Failed to create session")
		return
	}

	c.SetCookie(middleware.SessionCookie, token, int(utils.SessionTokenExpiry.Seconds()), "/", "", false, true)
	c.Redirect(http.StatusFound, next)
}

// AuthError is the error surface the callback redirects to.
// @Summary Authentication error surface
// @Tags auth
// @Produce json
// @Param message query string false "Failure message"
// @Success 200 {object} map[string]string
// @Router /auth/error [get]
func (h *AuthHandler) AuthError(c *gin.Context) {
	message := c.DefaultQuery("message", "Authentication failed")
	c.JSON(http.StatusOK, gin.H{"message": message})
}

// Me returns the authenticated user.
// @Summary Current user
// @Tags auth
// @Produce json
// @Success 200 {object} models.User
// @Failure 401 {object} map[string]string
// @Router /auth/me [get]
func (h *AuthHandler) Me(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Authentication required"})
		return
	}

	var user models.User
	if err := h.DB.First(&user, "id = ?", userID).Error; err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "User not found"})
		return
	}

	c.JSON(http.StatusOK, user)
}

// Logout clears the session cookie.
// @Summary Sign out
// @Tags auth
// @Produce json
// @Success 200 {object} map[string]bool
// @Router /auth/logout [post]
func (h *AuthHandler) Logout(c *gin.Context) {
	c.SetCookie(middleware.SessionCookie, "", -1, "/", "", false, true)
	c.JSON(http.StatusOK, gin.H{"success": true})
}
