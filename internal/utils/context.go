package utils

import (
	"fmt"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/ledgerline-dev/ledgerline/internal/middleware"
	"github.com/ledgerline-dev/ledgerline/internal/types"
)

func GetCurrentUser(ctx *gin.Context) (middleware.AuthenticatedUser, error) {
	user, exists := ctx.Get(types.ContextUserKey)

	if !exists {
		return middleware.AuthenticatedUser{}, fmt.Errorf("User not authenticated")
	}

	authenticatedUser, ok := user.(middleware.AuthenticatedUser)

	if !ok {
		return middleware.AuthenticatedUser{}, fmt.Errorf("Invalid user type in context")
	}

	return authenticatedUser, nil
}

func GetCurrentUserID(ctx *gin.Context) (string, error) {
	user, err := GetCurrentUser(ctx)

	if err != nil {
		return "", err
	}

	return user.ID, nil
}

// ParseUUID validates that s is a well-formed v4-style UUID string and
// returns it in canonical form.
func ParseUUID(s string) (string, error) {
	id, err := uuid.Parse(s)

	if err != nil {
		return "", fmt.Errorf("invalid UUID %q", s)
	}

	return id.String(), nil
}

// GetUUIDParam reads and validates a UUID route parameter.
func GetUUIDParam(ctx *gin.Context, name string) (string, error) {
	return ParseUUID(ctx.Param(name))
}
