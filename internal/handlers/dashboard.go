package handlers

import (
	"log"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/ledgerline-dev/ledgerline/internal/reports"
	"github.com/ledgerline-dev/ledgerline/internal/types"
	"github.com/ledgerline-dev/ledgerline/internal/utils"
)

// FetchDashboard composes net worth, the period overview, recent activity
// and the category breakdown. With no explicit window the period defaults to
// the current calendar month.
func FetchDashboard(ctx *gin.Context) {
	userID, err := utils.GetCurrentUserID(ctx)

	if err != nil {
		respondError(ctx, http.StatusUnauthorized, "User not authenticated")
		return
	}

	var startDate, endDate *time.Time

	if startParam := ctx.Query("startDate"); startParam != "" {
		start, err := parseDate(startParam)
		if err != nil {
			respondError(ctx, http.StatusBadRequest, "Invalid start date format")
			return
		}
		startDate = &start
	}

	if endParam := ctx.Query("endDate"); endParam != "" {
		end, err := parseDate(endParam)
		if err != nil {
			respondError(ctx, http.StatusBadRequest, "Invalid end date format")
			return
		}
		endDate = &end
	}

	var accountIDs []string

	if accountIDParam := ctx.Query("account_id"); accountIDParam != "" {
		accountID, err := utils.ParseUUID(accountIDParam)

		if err != nil {
			respondError(ctx, http.StatusBadRequest, "Invalid account ID")
			return
		}

		if _, ok := requireOwnedAccount(ctx, accountID, userID); !ok {
			return
		}

		accountIDs = []string{accountID}
	}

	netWorth, err := reports.NetWorth(userID, accountIDs)

	if err != nil {
		log.Printf("Failed to compute net worth for user %s: %v", userID, err)
		respondInternal(ctx)
		return
	}

	periodStart, periodEnd := reports.DefaultPeriod(time.Now())

	if startDate != nil {
		periodStart = *startDate
	}

	if endDate != nil {
		periodEnd = *endDate
	}

	periodTotals, err := reports.PeriodTotals(userID, accountIDs, periodStart, periodEnd)

	if err != nil {
		log.Printf("Failed to compute period overview for user %s: %v", userID, err)
		respondInternal(ctx)
		return
	}

	// Recent activity honors the caller's own filters; the window only
	// applies when one was explicitly supplied.
	recent, err := reports.RecentTransactions(userID, accountIDs, startDate, endDate, types.RecentActivityN)

	if err != nil {
		log.Printf("Failed to fetch recent transactions for user %s: %v", userID, err)
		respondInternal(ctx)
		return
	}

	recentResponses := make([]types.TransactionResponse, 0, len(recent))

	for _, tx := range recent {
		recentResponses = append(recentResponses, transactionResponse(tx))
	}

	stats, err := reports.CategoryStatistics(userID, accountIDs, &periodStart, &periodEnd)

	if err != nil {
		log.Printf("Failed to compute category breakdown for user %s: %v", userID, err)
		respondInternal(ctx)
		return
	}

	respond(ctx, http.StatusOK, "Dashboard data fetched successfully", types.DashboardResponse{
		NetWorth: netWorth,
		MonthlyOverview: types.PeriodOverview{
			Income:  periodTotals.Income,
			Expense: periodTotals.Expense,
		},
		RecentTransactions: recentResponses,
		CategoryBreakdown:  categoryStatResponses(stats),
	})
}
