package reports

import (
	"fmt"
	"strings"
	"time"

	"github.com/ledgerline-dev/ledgerline/db"
	"github.com/ledgerline-dev/ledgerline/internal/models"
	"github.com/ledgerline-dev/ledgerline/internal/types"
)

// Cursor marks the last row of a page. The ID tie-break keeps pages free of
// gaps and duplicates when transactions share a timestamp.
type Cursor struct {
	Date time.Time
	ID   string
}

// EncodeCursor renders a cursor as an opaque token: "<RFC3339Nano>|<id>".
func EncodeCursor(c Cursor) string {
	return c.Date.UTC().Format(time.RFC3339Nano) + "|" + c.ID
}

// ParseCursor reads a cursor token. A bare ISO timestamp from an older
// client is accepted, with the tie-break then absent.
func ParseCursor(token string) (Cursor, error) {
	datePart, id, _ := strings.Cut(token, "|")

	date, err := time.Parse(time.RFC3339Nano, datePart)

	if err != nil {
		return Cursor{}, fmt.Errorf("invalid cursor %q", token)
	}

	return Cursor{Date: date, ID: id}, nil
}

// TransactionFilters narrows the paginated feed. When AccountID is set it
// replaces the user scope, matching the API's mutually exclusive scoping.
type TransactionFilters struct {
	AccountID  string
	CategoryID string
	Type       *int
	StartDate  *time.Time
	EndDate    *time.Time
}

type TransactionPage struct {
	Items      []models.Transaction
	NextCursor *Cursor
	HasMore    bool
}

// ListTransactions pages reverse-chronologically: fetch limit+1 rows ordered
// by (transaction_date, id) descending, truncate to limit and report whether
// more remain.
func ListTransactions(userID string, filters TransactionFilters, limit int, cursor *Cursor) (TransactionPage, error) {
	if limit <= 0 {
		limit = types.DefaultPageSize
	}

	query := db.DB.Model(&models.Transaction{})

	if filters.AccountID != "" {
		query = query.Where("account_id = ?", filters.AccountID)
	} else {
		query = query.Where("user_id = ?", userID)
	}

	if filters.CategoryID != "" {
		query = query.Where("category_id = ?", filters.CategoryID)
	}

	if filters.Type != nil {
		query = query.Where("type = ?", *filters.Type)
	}

	if filters.StartDate != nil {
		query = query.Where("transaction_date >= ?", *filters.StartDate)
	}

	if filters.EndDate != nil {
		query = query.Where("transaction_date <= ?", *filters.EndDate)
	}

	if cursor != nil {
		if cursor.ID != "" {
			query = query.Where("transaction_date < ? OR (transaction_date = ? AND id < ?)", cursor.Date, cursor.Date, cursor.ID)
		} else {
			query = query.Where("transaction_date < ?", cursor.Date)
		}
	}

	var rows []models.Transaction

	err := query.Order("transaction_date DESC, id DESC").
		Limit(limit + 1).
		Find(&rows).Error

	if err != nil {
		return TransactionPage{}, err
	}

	items, next, hasMore := SlicePage(rows, limit)

	return TransactionPage{Items: items, NextCursor: next, HasMore: hasMore}, nil
}

// SlicePage truncates an over-fetched row set to the page size and derives
// the next cursor from the last returned row.
func SlicePage(rows []models.Transaction, limit int) ([]models.Transaction, *Cursor, bool) {
	if limit <= 0 || len(rows) <= limit {
		return rows, nil, false
	}

	items := rows[:limit]
	last := items[len(items)-1]

	return items, &Cursor{Date: last.TransactionDate, ID: last.ID}, true
}
