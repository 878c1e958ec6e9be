package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/ledgerline-dev/ledgerline/db"
	"github.com/ledgerline-dev/ledgerline/internal/auth"
	"github.com/ledgerline-dev/ledgerline/internal/models"
	"github.com/ledgerline-dev/ledgerline/internal/types"
)

type AuthenticatedUser struct {
	ID        string `json:"id"`
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
	Email     string `json:"email"`
	Currency  string `json:"currency"`
	IsDemo    bool   `json:"is_demo"`
}

// AuthMiddleware accepts the token either as a Bearer header or as the
// "token" cookie the auth handlers set.
func AuthMiddleware() gin.HandlerFunc {
	return func(ctx *gin.Context) {
		tokenString := extractToken(ctx)

		if tokenString == "" {
			ctx.AbortWithStatusJSON(http.StatusUnauthorized, types.Envelope{
				StatusCode:    http.StatusUnauthorized,
				StatusMessage: types.StatusMessages[http.StatusUnauthorized],
				Message:       "Authorization token is required",
			})
			return
		}

		token, err := auth.VerifyJWT(tokenString)

		if err != nil || !token.Valid {
			ctx.AbortWithStatusJSON(http.StatusUnauthorized, types.Envelope{
				StatusCode:    http.StatusUnauthorized,
				StatusMessage: types.StatusMessages[http.StatusUnauthorized],
				Message:       "Invalid or expired token",
			})
			return
		}

		claims, ok := token.Claims.(jwt.MapClaims)

		if !ok {
			ctx.AbortWithStatusJSON(http.StatusUnauthorized, types.Envelope{
				StatusCode:    http.StatusUnauthorized,
				StatusMessage: types.StatusMessages[http.StatusUnauthorized],
				Message:       "Invalid token claims",
			})
			return
		}

		userID, ok := claims["user_id"].(string)

		if !ok || userID == "" {
			ctx.AbortWithStatusJSON(http.StatusUnauthorized, types.Envelope{
				StatusCode:    http.StatusUnauthorized,
				StatusMessage: types.StatusMessages[http.StatusUnauthorized],
				Message:       "Invalid user ID in token claims",
			})
			return
		}

		var user models.User

		if err := db.DB.Where("id = ?", userID).First(&user).Error; err != nil {
			ctx.AbortWithStatusJSON(http.StatusUnauthorized, types.Envelope{
				StatusCode:    http.StatusUnauthorized,
				StatusMessage: types.StatusMessages[http.StatusUnauthorized],
				Message:       "User not found",
			})
			return
		}

		ctx.Set(types.ContextUserKey, AuthenticatedUser{
			ID:        user.ID,
			FirstName: user.FirstName,
			LastName:  user.LastName,
			Email:     user.Email,
			Currency:  user.Currency,
			IsDemo:    user.IsDemo,
		})
		ctx.Next()
	}
}

func extractToken(ctx *gin.Context) string {
	authHeader := ctx.GetHeader("Authorization")

	if authHeader != "" {
		parts := strings.SplitN(authHeader, " ", 2)
		if len(parts) == 2 && parts[0] == "Bearer" {
			return parts[1]
		}
		return ""
	}

	cookie, err := ctx.Cookie("token")
	if err != nil {
		return ""
	}

	return cookie
}
