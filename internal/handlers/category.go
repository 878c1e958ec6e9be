package handlers

import (
	"errors"
	"io"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/ledgerline-dev/ledgerline/db"
	"github.com/ledgerline-dev/ledgerline/internal/models"
	"github.com/ledgerline-dev/ledgerline/internal/reports"
	"github.com/ledgerline-dev/ledgerline/internal/types"
	"github.com/ledgerline-dev/ledgerline/internal/utils"
)

type CategoryExpensesRequest struct {
	Filters struct {
		AccountID []string `json:"account_id"`
	} `json:"filters"`
}

// FetchCategories lists the shared category set.
func FetchCategories(ctx *gin.Context) {
	var rows []models.Category

	if err := db.DB.Order("type, name").Find(&rows).Error; err != nil {
		log.Printf("Failed to list categories: %v", err)
		respondInternal(ctx)
		return
	}

	categories := make([]types.CategoryResponse, 0, len(rows))

	for _, category := range rows {
		categories = append(categories, types.CategoryResponse{
			ID:          category.ID,
			Name:        category.Name,
			Description: category.Description,
			Color:       category.Color,
			Type:        category.Type,
		})
	}

	respond(ctx, http.StatusOK, "Categories fetched successfully!", gin.H{
		"categories": categories,
	})
}

// CategoryExpenses returns every expense category with the user's total
// spend in it, optionally restricted to a set of owned accounts. Categories
// without matching transactions report a zero total.
func CategoryExpenses(ctx *gin.Context) {
	userID, err := utils.GetCurrentUserID(ctx)

	if err != nil {
		respondError(ctx, http.StatusUnauthorized, "User not authenticated")
		return
	}

	var req CategoryExpensesRequest

	// An absent body means "all accounts".
	if err := ctx.ShouldBindJSON(&req); err != nil && !errors.Is(err, io.EOF) {
		respondIssues(ctx, []FieldIssue{{Field: "body", Message: err.Error()}})
		return
	}

	accountIDs := make([]string, 0, len(req.Filters.AccountID))

	for _, raw := range req.Filters.AccountID {
		accountID, err := utils.ParseUUID(raw)

		if err != nil {
			respondError(ctx, http.StatusBadRequest, "Invalid account ID")
			return
		}

		if _, ok := requireOwnedAccount(ctx, accountID, userID); !ok {
			return
		}

		accountIDs = append(accountIDs, accountID)
	}

	stats, err := reports.CategoryStatistics(userID, accountIDs, nil, nil)

	if err != nil {
		log.Printf("Failed to aggregate category expenses for user %s: %v", userID, err)
		respondInternal(ctx)
		return
	}

	respond(ctx, http.StatusOK, "Category expenses fetched successfully!", gin.H{
		"categories": categoryStatResponses(stats),
	})
}

func categoryStatResponses(stats []reports.CategoryStat) []types.CategoryStatResponse {
	responses := make([]types.CategoryStatResponse, 0, len(stats))

	for _, stat := range stats {
		responses = append(responses, types.CategoryStatResponse{
			CategoryResponse: types.CategoryResponse{
				ID:          stat.ID,
				Name:        stat.Name,
				Description: stat.Description,
				Color:       stat.Color,
				Type:        stat.Type,
			},
			TotalAmount: stat.TotalAmount,
		})
	}

	return responses
}
