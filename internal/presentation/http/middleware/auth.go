package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/sweetline/mithas-api/internal/presentation/http/dto/response"
	"github.com/sweetline/mithas-api/pkg/utils"
)

// AuthMiddleware authenticates requests from the session cookie, falling
// back to a bearer token for API clients. Browser requests without a valid
// session are redirected to the login page; API requests get a 401.
func AuthMiddleware(jwtManager *utils.JWTManager, cookieName string) gin.HandlerFunc {
	return func(c *gin.Context) {
		tokenString := sessionToken(c, cookieName)
		if tokenString == "" {
			reject(c, "Authentication required")
			return
		}

		claims, err := jwtManager.ValidateSessionToken(tokenString)
		if err != nil {
			reject(c, "Invalid or expired session")
			return
		}

		c.Set("user_id", claims.UserID)
		c.Set("user_name", claims.Name)
		c.Set("user_email", claims.Email)
		c.Set("user_role", claims.Role)

		c.Next()
	}
}

// sessionToken pulls the token from the session cookie or, failing that,
// from "Authorization: Bearer <token>".
func sessionToken(c *gin.Context, cookieName string) string {
	if cookie, err := c.Cookie(cookieName); err == nil && cookie != "" {
		return cookie
	}

	authHeader := c.GetHeader("Authorization")
	parts := strings.Split(authHeader, " ")
	if len(parts) == 2 && strings.EqualFold(parts[0], "bearer") {
		return parts[1]
	}
	return ""
}

func reject(c *gin.Context, message string) {
	if wantsHTML(c) {
		c.Redirect(http.StatusFound, "/login")
	} else {
		response.Unauthorized(c, message)
	}
	c.Abort()
}

// wantsHTML distinguishes a browser navigating pages from an API client.
func wantsHTML(c *gin.Context) bool {
	accept := c.GetHeader("Accept")
	return strings.Contains(accept, "text/html")
}
