package handlers

import (
	"errors"
	"fmt"
	"io"
	"log"
	"net/http"
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

type AccountRequest struct {
	Name           string   `json:"name" binding:"required,max=30"`
	InitialBalance *float64 `json:"initial_balance" binding:"required,gte=0"`
	Color          string   `json:"color" binding:"required"`
	Description    string   `json:"description" binding:"max=60"`
}

type DeleteAccountRequest struct {
	KeepTransactions *bool `json:"keep_transactions"`
}

// requireOwnedAccount runs the existence (404) then ownership (403) chain
// and writes the error response itself. ok is false when the caller must
// stop.
func requireOwnedAccount(ctx *gin.Context, accountID, userID string) (models.Account, bool) {
	var account models.Account

	if err := db.DB.Where("id = ?", accountID).First(&account).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			respondError(ctx, http.StatusNotFound, "Account not found!")
		} else {
			log.Printf("Failed to fetch account %s: %v", accountID, err)
			respondInternal(ctx)
		}
		return models.Account{}, false
	}

	if account.UserID != userID {
		respondError(ctx, http.StatusForbidden, "You're not allowed to access this account!")
		return models.Account{}, false
	}

	return account, true
}

func accountResponse(account models.Account, totals reports.Totals) types.AccountResponse {
	return types.AccountResponse{
		ID:             account.ID,
		Name:           account.Name,
		Description:    account.Description,
		Color:          account.Color,
		InitialBalance: account.InitialBalance,
		TotalIncome:    totals.Income,
		TotalExpense:   totals.Expense,
	}
}

// FetchAccounts returns all of the user's accounts with derived totals, or a
// single account when account_id is supplied.
func FetchAccounts(ctx *gin.Context) {
	userID, err := utils.GetCurrentUserID(ctx)

	if err != nil {
		respondError(ctx, http.StatusUnauthorized, "User not authenticated")
		return
	}

	if accountIDParam := ctx.Query("account_id"); accountIDParam != "" {
		accountID, err := utils.ParseUUID(accountIDParam)

		if err != nil {
			respondError(ctx, http.StatusBadRequest, "Invalid account ID")
			return
		}

		account, ok := requireOwnedAccount(ctx, accountID, userID)
		if !ok {
			return
		}

		totals, err := reports.AccountTotals(account.ID)

		if err != nil {
			log.Printf("Failed to aggregate account %s: %v", account.ID, err)
			respondInternal(ctx)
			return
		}

		respond(ctx, http.StatusOK, "Account fetched successfully!", gin.H{
			"accounts": []types.AccountResponse{accountResponse(account, totals)},
		})
		return
	}

	rows, err := reports.AccountsWithTotals(userID)

	if err != nil {
		log.Printf("Failed to list accounts for user %s: %v", userID, err)
		respondInternal(ctx)
		return
	}

	accounts := make([]types.AccountResponse, 0, len(rows))

	for _, row := range rows {
		accounts = append(accounts, types.AccountResponse{
			ID:             row.ID,
			Name:           row.Name,
			Description:    row.Description,
			Color:          row.Color,
			InitialBalance: row.InitialBalance,
			TotalIncome:    row.TotalIncome,
			TotalExpense:   row.TotalExpense,
		})
	}

	respond(ctx, http.StatusOK, "Accounts fetched successfully!", gin.H{
		"accounts": accounts,
	})
}

// AddAccount creates an account. The per-user limit check and the insert run
// in one database transaction so concurrent requests cannot overshoot it.
func AddAccount(ctx *gin.Context) {
	userID, err := utils.GetCurrentUserID(ctx)

	if err != nil {
		respondError(ctx, http.StatusUnauthorized, "User not authenticated")
		return
	}

	var req AccountRequest

	if err := ctx.ShouldBindJSON(&req); err != nil {
		respondIssues(ctx, []FieldIssue{{Field: "body", Message: err.Error()}})
		return
	}

	account := models.Account{
		UserID:         userID,
		Name:           req.Name,
		Description:    req.Description,
		Color:          req.Color,
		InitialBalance: *req.InitialBalance,
	}

	limitReached := false

	err = db.DB.Transaction(func(tx *gorm.DB) error {
		var count int64

		if err := tx.Model(&models.Account{}).Where("user_id = ?", userID).Count(&count).Error; err != nil {
			return err
		}

		if count >= types.MaxAccountsPerUser {
			limitReached = true
			return gorm.ErrInvalidData
		}

		return tx.Create(&account).Error
	})

	if limitReached {
		respondError(ctx, http.StatusBadRequest, fmt.Sprintf("User can only have %d accounts!", types.MaxAccountsPerUser))
		return
	}

	if err != nil {
		log.Printf("Failed to create account: %v", err)
		respondInternal(ctx)
		return
	}

	events.Default.Publish(events.Event{Action: events.ActionAdd, Entity: "account", ID: account.ID, UserID: userID})

	respond(ctx, http.StatusCreated, "Account created successfully!", gin.H{
		"account": accountResponse(account, reports.Totals{}),
	})
}

func UpdateAccount(ctx *gin.Context) {
	userID, err := utils.GetCurrentUserID(ctx)

	if err != nil {
		respondError(ctx, http.StatusUnauthorized, "User not authenticated")
		return
	}

	accountID, err := utils.GetUUIDParam(ctx, "id")

	if err != nil {
		respondError(ctx, http.StatusBadRequest, "Invalid account ID")
		return
	}

	account, ok := requireOwnedAccount(ctx, accountID, userID)
	if !ok {
		return
	}

	var req AccountRequest

	if err := ctx.ShouldBindJSON(&req); err != nil {
		respondIssues(ctx, []FieldIssue{{Field: "body", Message: err.Error()}})
		return
	}

	account.Name = req.Name
	account.Description = req.Description
	account.Color = req.Color
	account.InitialBalance = *req.InitialBalance

	if err := db.DB.Save(&account).Error; err != nil {
		log.Printf("Failed to update account %s: %v", account.ID, err)
		respondInternal(ctx)
		return
	}

	totals, err := reports.AccountTotals(account.ID)

	if err != nil {
		log.Printf("Failed to aggregate account %s: %v", account.ID, err)
		respondInternal(ctx)
		return
	}

	events.Default.Publish(events.Event{Action: events.ActionUpdate, Entity: "account", ID: account.ID, UserID: userID})

	respond(ctx, http.StatusOK, "Account updated successfully!", gin.H{
		"account": accountResponse(account, totals),
	})
}

// DeleteAccount removes an account. keep_transactions selects between
// detaching its transactions (account_id set to null) and deleting them;
// both steps and the account delete run in one database transaction.
func DeleteAccount(ctx *gin.Context) {
	userID, err := utils.GetCurrentUserID(ctx)

	if err != nil {
		respondError(ctx, http.StatusUnauthorized, "User not authenticated")
		return
	}

	accountID, err := utils.GetUUIDParam(ctx, "id")

	if err != nil {
		respondError(ctx, http.StatusBadRequest, "Invalid account ID")
		return
	}

	account, ok := requireOwnedAccount(ctx, accountID, userID)
	if !ok {
		return
	}

	var req DeleteAccountRequest

	// An absent body means "keep the transactions".
	if err := ctx.ShouldBindJSON(&req); err != nil && !errors.Is(err, io.EOF) {
		respondIssues(ctx, []FieldIssue{{Field: "body", Message: err.Error()}})
		return
	}

	keepTransactions := true
	if req.KeepTransactions != nil {
		keepTransactions = *req.KeepTransactions
	}

	totals, err := reports.AccountTotals(account.ID)

	if err != nil {
		log.Printf("Failed to aggregate account %s: %v", account.ID, err)
		respondInternal(ctx)
		return
	}

	err = db.DB.Transaction(func(tx *gorm.DB) error {
		if keepTransactions {
			if err := tx.Model(&models.Transaction{}).
				Where("account_id = ?", account.ID).
				Update("account_id", nil).Error; err != nil {
				return err
			}
		} else {
			if err := tx.Where("account_id = ?", account.ID).
				Delete(&models.Transaction{}).Error; err != nil {
				return err
			}
		}

		return tx.Delete(&account).Error
	})

	if err != nil {
		log.Printf("Failed to delete account %s: %v", account.ID, err)
		respondInternal(ctx)
		return
	}

	events.Default.Publish(events.Event{Action: events.ActionDelete, Entity: "account", ID: account.ID, UserID: userID})

	respond(ctx, http.StatusOK, "Account deleted successfully!", gin.H{
		"account": accountResponse(account, totals),
	})
}

// AccountHistory serves the gap-filled 30-day income/expense series.
func AccountHistory(ctx *gin.Context) {
	userID, err := utils.GetCurrentUserID(ctx)

	if err != nil {
		respondError(ctx, http.StatusUnauthorized, "User not authenticated")
		return
	}

	accountID, err := utils.GetUUIDParam(ctx, "id")

	if err != nil {
		respondError(ctx, http.StatusBadRequest, "Invalid account ID")
		return
	}

	account, ok := requireOwnedAccount(ctx, accountID, userID)
	if !ok {
		return
	}

	history, err := reports.AccountHistory(account.ID, time.Now())

	if err != nil {
		log.Printf("Failed to build history for account %s: %v", account.ID, err)
		respondInternal(ctx)
		return
	}

	respond(ctx, http.StatusOK, "Account transaction history fetched successfully!", gin.H{
		"history": history,
	})
}
