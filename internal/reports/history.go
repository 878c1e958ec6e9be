package reports

import (
	"time"

	"github.com/ledgerline-dev/ledgerline/db"
	"github.com/ledgerline-dev/ledgerline/internal/models"
	"github.com/ledgerline-dev/ledgerline/internal/types"
)

// AccountHistory buckets an account's last 30 days of transactions by
// calendar day. The series is gap-filled: every day in the window appears,
// with zero income/expense where nothing happened.
func AccountHistory(accountID string, now time.Time) ([]types.HistoryPoint, error) {
	start := now.AddDate(0, 0, -types.HistoryWindowDays)

	var rows []models.Transaction

	err := db.DB.Model(&models.Transaction{}).
		Select("type, amount, transaction_date").
		Where("account_id = ?", accountID).
		Where("transaction_date >= ? AND transaction_date <= ?", start, now).
		Order("transaction_date").
		Find(&rows).Error

	if err != nil {
		return nil, err
	}

	return BuildHistorySeries(rows, start, now), nil
}

// BuildHistorySeries produces one point per calendar day from start through
// end inclusive, in chronological order, with per-day sums rounded to two
// decimals.
func BuildHistorySeries(rows []models.Transaction, start, end time.Time) []types.HistoryPoint {
	type daySums struct {
		income  float64
		expense float64
	}

	buckets := make(map[string]daySums)

	for _, tx := range rows {
		key := dayKey(tx.TransactionDate)
		sums := buckets[key]

		switch tx.Type {
		case types.TypeIncome:
			sums.income += tx.Amount
		case types.TypeExpense:
			sums.expense += tx.Amount
		}

		buckets[key] = sums
	}

	var series []types.HistoryPoint

	startDay := truncateToDay(start)
	endDay := truncateToDay(end)

	for day := startDay; !day.After(endDay); day = day.AddDate(0, 0, 1) {
		sums := buckets[dayKey(day)]

		series = append(series, types.HistoryPoint{
			Date:    day.Format("02 Jan"),
			Income:  Round2(sums.income),
			Expense: Round2(sums.expense),
		})
	}

	return series
}

func truncateToDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

func dayKey(t time.Time) string {
	return t.Format("2006-01-02")
}
