// Package reports derives the values the API never stores: per-account
// totals, net worth, period overviews, category statistics and the
// cursor-paginated transaction feed.
package reports

import (
	"database/sql"
	"math"
	"time"

	"github.com/ledgerline-dev/ledgerline/db"
	"github.com/ledgerline-dev/ledgerline/internal/models"
	"github.com/ledgerline-dev/ledgerline/internal/types"
)

// Totals holds grouped income/expense sums. Missing groups stay zero.
type Totals struct {
	Income  float64
	Expense float64
}

type typeTotal struct {
	Type  int
	Total float64
}

func totalsFromRows(rows []typeTotal) Totals {
	var t Totals

	for _, row := range rows {
		switch row.Type {
		case types.TypeIncome:
			t.Income = row.Total
		case types.TypeExpense:
			t.Expense = row.Total
		}
	}

	return t
}

// AccountTotals sums an account's transactions grouped by type.
func AccountTotals(accountID string) (Totals, error) {
	var rows []typeTotal

	err := db.DB.Model(&models.Transaction{}).
		Select("type, COALESCE(SUM(amount), 0) AS total").
		Where("account_id = ?", accountID).
		Group("type").
		Scan(&rows).Error

	if err != nil {
		return Totals{}, err
	}

	return totalsFromRows(rows), nil
}

// AccountWithTotals is an account row joined with its derived sums.
type AccountWithTotals struct {
	ID             string
	Name           string
	Description    string
	Color          string
	InitialBalance float64
	TotalIncome    float64
	TotalExpense   float64
}

// AccountsWithTotals lists every account the user owns with grouped sums.
// Left join semantics: accounts without transactions report zero totals.
func AccountsWithTotals(userID string) ([]AccountWithTotals, error) {
	var rows []AccountWithTotals

	err := db.DB.Model(&models.Account{}).
		Select(
			"accounts.id, accounts.name, accounts.description, accounts.color, accounts.initial_balance, "+
				"COALESCE(SUM(CASE WHEN transactions.type = ? THEN transactions.amount ELSE 0 END), 0) AS total_income, "+
				"COALESCE(SUM(CASE WHEN transactions.type = ? THEN transactions.amount ELSE 0 END), 0) AS total_expense",
			types.TypeIncome, types.TypeExpense).
		Joins("LEFT JOIN transactions ON transactions.account_id = accounts.id").
		Where("accounts.user_id = ?", userID).
		Group("accounts.id").
		Order("accounts.created_at").
		Scan(&rows).Error

	return rows, err
}

// NetWorth is sum(initial_balance) + income - expense over the selected
// accounts, or over all of the user's accounts when accountIDs is empty.
func NetWorth(userID string, accountIDs []string) (float64, error) {
	var initial sql.NullFloat64

	accountsQuery := db.DB.Model(&models.Account{}).
		Select("COALESCE(SUM(initial_balance), 0)").
		Where("user_id = ?", userID)

	if len(accountIDs) > 0 {
		accountsQuery = accountsQuery.Where("id IN ?", accountIDs)
	}

	if err := accountsQuery.Scan(&initial).Error; err != nil {
		return 0, err
	}

	txQuery := db.DB.Model(&models.Transaction{}).
		Select("type, COALESCE(SUM(amount), 0) AS total").
		Where("user_id = ?", userID)

	if len(accountIDs) > 0 {
		txQuery = txQuery.Where("account_id IN ?", accountIDs)
	}

	var rows []typeTotal

	if err := txQuery.Group("type").Scan(&rows).Error; err != nil {
		return 0, err
	}

	totals := totalsFromRows(rows)

	return ComputeNetWorth(initial.Float64, totals), nil
}

// ComputeNetWorth combines initial balances with grouped transaction sums.
func ComputeNetWorth(initialBalanceSum float64, totals Totals) float64 {
	return initialBalanceSum + totals.Income - totals.Expense
}

// PeriodTotals sums income and expense inside the inclusive [start, end]
// window, optionally restricted to a set of accounts.
func PeriodTotals(userID string, accountIDs []string, start, end time.Time) (Totals, error) {
	query := db.DB.Model(&models.Transaction{}).
		Select("type, COALESCE(SUM(amount), 0) AS total").
		Where("user_id = ?", userID).
		Where("transaction_date >= ? AND transaction_date <= ?", start, end)

	if len(accountIDs) > 0 {
		query = query.Where("account_id IN ?", accountIDs)
	}

	var rows []typeTotal

	if err := query.Group("type").Scan(&rows).Error; err != nil {
		return Totals{}, err
	}

	return totalsFromRows(rows), nil
}

// DefaultPeriod is the current calendar month in now's location: first day
// 00:00:00 through last day 23:59:59.999.
func DefaultPeriod(now time.Time) (time.Time, time.Time) {
	start := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location())
	end := start.AddDate(0, 1, 0).Add(-time.Millisecond)

	return start, end
}

// CategoryStat is an expense category plus its aggregated spend.
type CategoryStat struct {
	ID          string
	Name        string
	Description string
	Color       string
	Type        int
	TotalAmount float64
}

// CategoryStatistics left-joins expense categories against the user's
// per-category expense sums. Categories with no matching transactions are
// included with a zero total.
func CategoryStatistics(userID string, accountIDs []string, start, end *time.Time) ([]CategoryStat, error) {
	sums := db.DB.Model(&models.Transaction{}).
		Select("category_id, SUM(amount) AS total").
		Where("user_id = ? AND type = ?", userID, types.TypeExpense)

	if len(accountIDs) > 0 {
		sums = sums.Where("account_id IN ?", accountIDs)
	}

	if start != nil {
		sums = sums.Where("transaction_date >= ?", *start)
	}

	if end != nil {
		sums = sums.Where("transaction_date <= ?", *end)
	}

	sums = sums.Group("category_id")

	var rows []CategoryStat

	err := db.DB.Model(&models.Category{}).
		Select("categories.id, categories.name, categories.description, categories.color, categories.type, COALESCE(sums.total, 0) AS total_amount").
		Joins("LEFT JOIN (?) AS sums ON sums.category_id = categories.id", sums).
		Where("categories.type = ?", types.TypeExpense).
		Order("categories.name").
		Scan(&rows).Error

	return rows, err
}

// RecentTransactions returns the user's newest transactions, honoring the
// caller's account and date filters.
func RecentTransactions(userID string, accountIDs []string, start, end *time.Time, limit int) ([]models.Transaction, error) {
	if limit <= 0 {
		limit = types.RecentActivityN
	}

	query := db.DB.Model(&models.Transaction{}).Where("user_id = ?", userID)

	if len(accountIDs) > 0 {
		query = query.Where("account_id IN ?", accountIDs)
	}

	if start != nil {
		query = query.Where("transaction_date >= ?", *start)
	}

	if end != nil {
		query = query.Where("transaction_date <= ?", *end)
	}

	var rows []models.Transaction

	err := query.Order("transaction_date DESC, id DESC").
		Limit(limit).
		Find(&rows).Error

	return rows, err
}

// Round2 rounds a monetary value to two decimal places.
func Round2(v float64) float64 {
	return math.Round(v*100) / 100
}
