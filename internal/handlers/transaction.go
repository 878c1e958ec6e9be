package handlers

import (
	"errors"
	"log"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/ledgerline-dev/ledgerline/db"
	"github.com/ledgerline-dev/ledgerline/internal/events"
	"github.com/ledgerline-dev/ledgerline/internal/models"
	"github.com/ledgerline-dev/ledgerline/internal/reports"
	"github.com/ledgerline-dev/ledgerline/internal/types"
	"github.com/ledgerline-dev/ledgerline/internal/utils"
	"gorm.io/gorm"
)

type TransactionRequest struct {
	Type            *int    `json:"type" binding:"required,oneof=0 1"`
	TransactionDate string  `json:"transaction_date" binding:"required"`
	CategoryID      string  `json:"category_id" binding:"required,uuid4"`
	AccountID       string  `json:"account_id" binding:"omitempty,uuid4"`
	Amount          float64 `json:"amount" binding:"required,gte=0.01"`
	Description     string  `json:"description" binding:"required,max=60"`
}

func transactionResponse(tx models.Transaction) types.TransactionResponse {
	accountID := ""
	if tx.AccountID != nil {
		accountID = *tx.AccountID
	}

	return types.TransactionResponse{
		ID:              tx.ID,
		Type:            tx.Type,
		CategoryID:      tx.CategoryID,
		AccountID:       accountID,
		Amount:          tx.Amount,
		Description:     tx.Description,
		TransactionDate: tx.TransactionDate.UTC().Format(time.RFC3339),
		CreatedAt:       tx.CreatedAt.UTC().Format(time.RFC3339),
		UpdatedAt:       tx.UpdatedAt.UTC().Format(time.RFC3339),
	}
}

func parseDate(value string) (time.Time, error) {
	if t, err := time.Parse(time.RFC3339Nano, value); err == nil {
		return t, nil
	}

	return time.Parse("2006-01-02", value)
}

// requireOwnedTransaction runs the existence (404) then ownership (403)
// chain for a transaction.
func requireOwnedTransaction(ctx *gin.Context, transactionID, userID string) (models.Transaction, bool) {
	var tx models.Transaction

	if err := db.DB.Where("id = ?", transactionID).First(&tx).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			respondError(ctx, http.StatusNotFound, "Transaction not found!")
		} else {
			log.Printf("Failed to fetch transaction %s: %v", transactionID, err)
			respondInternal(ctx)
		}
		return models.Transaction{}, false
	}

	if tx.UserID != userID {
		respondError(ctx, http.StatusForbidden, "You're not allowed to access this transaction!")
		return models.Transaction{}, false
	}

	return tx, true
}

// validateTransactionRefs checks the referenced account (must be owned) and
// category (must exist; categories are shared, not owned).
func validateTransactionRefs(ctx *gin.Context, req TransactionRequest, userID string) bool {
	if req.AccountID != "" {
		var account models.Account

		if err := db.DB.Where("id = ? AND user_id = ?", req.AccountID, userID).First(&account).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				respondError(ctx, http.StatusForbidden, "You are not allowed to add transactions to this account")
			} else {
				log.Printf("Failed to fetch account %s: %v", req.AccountID, err)
				respondInternal(ctx)
			}
			return false
		}
	}

	var category models.Category

	if err := db.DB.Where("id = ?", req.CategoryID).First(&category).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			respondError(ctx, http.StatusBadRequest, "Invalid category selected")
		} else {
			log.Printf("Failed to fetch category %s: %v", req.CategoryID, err)
			respondInternal(ctx)
		}
		return false
	}

	return true
}

// FetchTransactions lists the user's transactions newest first with
// cursor-based pagination and optional account/category/type/date filters.
func FetchTransactions(ctx *gin.Context) {
	userID, err := utils.GetCurrentUserID(ctx)

	if err != nil {
		respondError(ctx, http.StatusUnauthorized, "User not authenticated")
		return
	}

	limit := types.DefaultPageSize

	if limitParam := ctx.Query("limit"); limitParam != "" {
		parsed, err := strconv.Atoi(limitParam)
		if err != nil || parsed <= 0 {
			respondError(ctx, http.StatusBadRequest, "Invalid limit")
			return
		}
		limit = parsed
	}

	var filters reports.TransactionFilters

	if accountIDParam := ctx.Query("account_id"); accountIDParam != "" {
		accountID, err := utils.ParseUUID(accountIDParam)

		if err != nil {
			respondError(ctx, http.StatusBadRequest, "Invalid account ID")
			return
		}

		var account models.Account

		if err := db.DB.Where("id = ? AND user_id = ?", accountID, userID).First(&account).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				respondError(ctx, http.StatusForbidden, "Account does not belong to user")
			} else {
				log.Printf("Failed to fetch account %s: %v", accountID, err)
				respondInternal(ctx)
			}
			return
		}

		filters.AccountID = accountID
	}

	if categoryIDParam := ctx.Query("category_id"); categoryIDParam != "" {
		categoryID, err := utils.ParseUUID(categoryIDParam)

		if err != nil {
			respondError(ctx, http.StatusBadRequest, "Invalid category ID")
			return
		}

		filters.CategoryID = categoryID
	}

	if typeParam := ctx.Query("type"); typeParam != "" {
		txType, err := strconv.Atoi(typeParam)
		if err != nil || (txType != types.TypeIncome && txType != types.TypeExpense) {
			respondError(ctx, http.StatusBadRequest, "Invalid transaction type")
			return
		}
		filters.Type = &txType
	}

	if startParam := ctx.Query("startDate"); startParam != "" {
		start, err := parseDate(startParam)
		if err != nil {
			respondError(ctx, http.StatusBadRequest, "Invalid start date format")
			return
		}
		filters.StartDate = &start
	}

	if endParam := ctx.Query("endDate"); endParam != "" {
		end, err := parseDate(endParam)
		if err != nil {
			respondError(ctx, http.StatusBadRequest, "Invalid end date format")
			return
		}
		filters.EndDate = &end
	}

	var cursor *reports.Cursor

	if cursorParam := ctx.Query("cursor"); cursorParam != "" {
		parsed, err := reports.ParseCursor(cursorParam)
		if err != nil {
			respondError(ctx, http.StatusBadRequest, "Invalid cursor")
			return
		}
		cursor = &parsed
	}

	page, err := reports.ListTransactions(userID, filters, limit, cursor)

	if err != nil {
		log.Printf("Failed to list transactions for user %s: %v", userID, err)
		respondInternal(ctx)
		return
	}

	transactions := make([]types.TransactionResponse, 0, len(page.Items))

	for _, tx := range page.Items {
		transactions = append(transactions, transactionResponse(tx))
	}

	meta := types.PageMeta{HasMore: page.HasMore}

	if page.NextCursor != nil {
		token := reports.EncodeCursor(*page.NextCursor)
		meta.NextCursor = &token
	}

	respond(ctx, http.StatusOK, "Transactions fetched successfully!", gin.H{
		"transactions": transactions,
		"meta":         meta,
	})
}

func AddTransaction(ctx *gin.Context) {
	userID, err := utils.GetCurrentUserID(ctx)

	if err != nil {
		respondError(ctx, http.StatusUnauthorized, "User not authenticated")
		return
	}

	var req TransactionRequest

	if err := ctx.ShouldBindJSON(&req); err != nil {
		respondIssues(ctx, []FieldIssue{{Field: "body", Message: err.Error()}})
		return
	}

	transactionDate, err := parseDate(req.TransactionDate)

	if err != nil {
		respondIssues(ctx, []FieldIssue{{Field: "transaction_date", Message: "Date must be a valid date"}})
		return
	}

	if !validateTransactionRefs(ctx, req, userID) {
		return
	}

	tx := models.Transaction{
		UserID:          userID,
		Type:            *req.Type,
		CategoryID:      req.CategoryID,
		Amount:          req.Amount,
		Description:     req.Description,
		TransactionDate: transactionDate,
	}

	if req.AccountID != "" {
		tx.AccountID = &req.AccountID
	}

	if err := db.DB.Create(&tx).Error; err != nil {
		log.Printf("Failed to create transaction: %v", err)
		respondInternal(ctx)
		return
	}

	events.Default.Publish(events.Event{Action: events.ActionAdd, Entity: "transaction", ID: tx.ID, UserID: userID})

	respond(ctx, http.StatusCreated, "Transaction created successfully!", gin.H{
		"transaction": transactionResponse(tx),
	})
}

func UpdateTransaction(ctx *gin.Context) {
	userID, err := utils.GetCurrentUserID(ctx)

	if err != nil {
		respondError(ctx, http.StatusUnauthorized, "User not authenticated")
		return
	}

	transactionID, err := utils.GetUUIDParam(ctx, "id")

	if err != nil {
		respondError(ctx, http.StatusBadRequest, "Invalid transaction ID")
		return
	}

	tx, ok := requireOwnedTransaction(ctx, transactionID, userID)
	if !ok {
		return
	}

	var req TransactionRequest

	if err := ctx.ShouldBindJSON(&req); err != nil {
		respondIssues(ctx, []FieldIssue{{Field: "body", Message: err.Error()}})
		return
	}

	transactionDate, err := parseDate(req.TransactionDate)

	if err != nil {
		respondIssues(ctx, []FieldIssue{{Field: "transaction_date", Message: "Date must be a valid date"}})
		return
	}

	if !validateTransactionRefs(ctx, req, userID) {
		return
	}

	tx.Type = *req.Type
	tx.CategoryID = req.CategoryID
	tx.Amount = req.Amount
	tx.Description = req.Description
	tx.TransactionDate = transactionDate

	if req.AccountID != "" {
		tx.AccountID = &req.AccountID
	} else {
		tx.AccountID = nil
	}

	if err := db.DB.Save(&tx).Error; err != nil {
		log.Printf("Failed to update transaction %s: %v", tx.ID, err)
		respondInternal(ctx)
		return
	}

	events.Default.Publish(events.Event{Action: events.ActionUpdate, Entity: "transaction", ID: tx.ID, UserID: userID})

	respond(ctx, http.StatusOK, "Transaction updated successfully!", gin.H{
		"transaction": transactionResponse(tx),
	})
}

func DeleteTransaction(ctx *gin.Context) {
	userID, err := utils.GetCurrentUserID(ctx)

	if err != nil {
		respondError(ctx, http.StatusUnauthorized, "User not authenticated")
		return
	}

	transactionID, err := utils.GetUUIDParam(ctx, "id")

	if err != nil {
		respondError(ctx, http.StatusBadRequest, "Invalid transaction ID")
		return
	}

	tx, ok := requireOwnedTransaction(ctx, transactionID, userID)
	if !ok {
		return
	}

	if err := db.DB.Delete(&tx).Error; err != nil {
		log.Printf("Failed to delete transaction %s: %v", tx.ID, err)
		respondInternal(ctx)
		return
	}

	events.Default.Publish(events.Event{Action: events.ActionDelete, Entity: "transaction", ID: tx.ID, UserID: userID})

	respond(ctx, http.StatusOK, "Transaction deleted successfully!", gin.H{
		"transaction": transactionResponse(tx),
	})
}
