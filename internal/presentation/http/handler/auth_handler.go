package handler

import (
	"github.com/gin-gonic/gin"
	"github.com/sweetline/mithas-api/internal/application/service"
	"github.com/sweetline/mithas-api/internal/config"
	"github.com/sweetline/mithas-api/internal/presentation/http/dto/request"
	"github.com/sweetline/mithas-api/internal/presentation/http/dto/response"
)

// AuthHandler handles authentication-related HTTP requests
type AuthHandler struct {
	authService  *service.AuthService
	jwtConfig    *config.JWTConfig
	secureCookie bool
}

// NewAuthHandler creates a new auth handler
func NewAuthHandler(authService *service.AuthService, cfg *config.Config) *AuthHandler {
	return &AuthHandler{
		authService:  authService,
		jwtConfig:    &cfg.JWT,
		secureCookie: cfg.App.Env == "production",
	}
}

// Login authenticates the admin and sets the session cookie. The token is
// also returned in the body for API clients that prefer a bearer header.
func (h *AuthHandler) Login(c *gin.Context) {
	var req request.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	output, err := h.authService.Login(c.Request.Context(), &service.LoginInput{
		Email:    req.Email,
		Password: req.Password,
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	c.SetCookie(
		h.jwtConfig.CookieName,
		output.Token,
		int(h.jwtConfig.ExpiryHours.Seconds()),
		"/",
		"",
		h.secureCookie,
		true,
	)

	response.OK(c, "Login successful", gin.H{
		"user": gin.H{
			"id":    output.User.ID,
			"name":  output.User.Name,
			"email": output.User.Email,
			"role":  output.User.Role,
		},
		"token":      output.Token,
		"token_type": "Bearer",
	})
}

// Logout clears the session cookie
func (h *AuthHandler) Logout(c *gin.Context) {
	c.SetCookie(h.jwtConfig.CookieName, "", -1, "/", "", h.secureCookie, true)
	response.OK(c, "Logged out", nil)
}

// Profile returns the authenticated admin's profile
func (h *AuthHandler) Profile(c *gin.Context) {
	userID := GetUserID(c)
	if userID == nil {
		response.Unauthorized(c, "User not authenticated")
		return
	}

	user, err := h.authService.GetProfile(c.Request.Context(), *userID)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, "Profile retrieved successfully", user)
}
