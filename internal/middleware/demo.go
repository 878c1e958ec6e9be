package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/ledgerline-dev/ledgerline/internal/types"
)

// DemoGuard blocks mutating requests from the shared demo user. Reads stay
// open so the demo account remains browsable.
func DemoGuard() gin.HandlerFunc {
	return func(ctx *gin.Context) {
		if ctx.Request.Method == http.MethodGet {
			ctx.Next()
			return
		}

		value, exists := ctx.Get(types.ContextUserKey)

		if !exists {
			ctx.AbortWithStatusJSON(http.StatusUnauthorized, types.Envelope{
				StatusCode:    http.StatusUnauthorized,
				StatusMessage: types.StatusMessages[http.StatusUnauthorized],
				Message:       "User not authenticated",
			})
			return
		}

		user, ok := value.(AuthenticatedUser)

		if ok && user.IsDemo {
			ctx.AbortWithStatusJSON(http.StatusForbidden, types.Envelope{
				StatusCode:    http.StatusForbidden,
				StatusMessage: types.StatusMessages[http.StatusForbidden],
				Message:       "Demo users cannot perform this action. Sign up for a free account to get full access!",
			})
			return
		}

		ctx.Next()
	}
}
