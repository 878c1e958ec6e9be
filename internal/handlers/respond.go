package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/ledgerline-dev/ledgerline/internal/types"
)

// FieldIssue is one validation failure, reported in the envelope's data.
type FieldIssue struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

func respond(ctx *gin.Context, status int, message string, data interface{}) {
	ctx.JSON(status, types.Envelope{
		StatusCode:    status,
		StatusMessage: types.StatusMessages[status],
		Message:       message,
		Data:          data,
	})
}

func respondError(ctx *gin.Context, status int, message string) {
	respond(ctx, status, message, nil)
}

func respondIssues(ctx *gin.Context, issues []FieldIssue) {
	respond(ctx, http.StatusBadRequest, "Invalid input", gin.H{"issues": issues})
}

func respondInternal(ctx *gin.Context) {
	respondError(ctx, http.StatusInternalServerError, "Internal server error!")
}
