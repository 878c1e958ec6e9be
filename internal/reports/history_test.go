package reports

import (
	"testing"
	"time"

	"github.com/ledgerline-dev/ledgerline/internal/models"
	"github.com/ledgerline-dev/ledgerline/internal/types"
)

func tx(txType int, amount float64, date time.Time) models.Transaction {
	return models.Transaction{Type: txType, Amount: amount, TransactionDate: date}
}

func TestBuildHistorySeries_GapFilled(t *testing.T) {
	end := time.Date(2026, 8, 31, 14, 30, 0, 0, time.UTC)
	start := end.AddDate(0, 0, -types.HistoryWindowDays)

	rows := []models.Transaction{
		tx(types.TypeIncome, 100, time.Date(2026, 8, 5, 9, 0, 0, 0, time.UTC)),
		tx(types.TypeExpense, 25.5, time.Date(2026, 8, 5, 18, 0, 0, 0, time.UTC)),
		tx(types.TypeExpense, 10, time.Date(2026, 8, 31, 8, 0, 0, 0, time.UTC)),
	}

	series := BuildHistorySeries(rows, start, end)

	if len(series) != types.HistoryWindowDays+1 {
		t.Fatalf("expected %d points, got %d", types.HistoryWindowDays+1, len(series))
	}

	if series[0].Date != "01 Aug" {
		t.Errorf("first point = %q, want %q", series[0].Date, "01 Aug")
	}

	if series[len(series)-1].Date != "31 Aug" {
		t.Errorf("last point = %q, want %q", series[len(series)-1].Date, "31 Aug")
	}

	// Contiguity: every calendar day between start and end appears in order.
	day := time.Date(2026, 8, 1, 0, 0, 0, 0, time.UTC)
	for i, point := range series {
		if point.Date != day.Format("02 Jan") {
			t.Fatalf("point %d = %q, want %q", i, point.Date, day.Format("02 Jan"))
		}
		day = day.AddDate(0, 0, 1)
	}

	aug5 := series[4]
	if aug5.Income != 100 || aug5.Expense != 25.5 {
		t.Errorf("05 Aug = income %v expense %v, want 100 / 25.5", aug5.Income, aug5.Expense)
	}

	aug31 := series[30]
	if aug31.Income != 0 || aug31.Expense != 10 {
		t.Errorf("31 Aug = income %v expense %v, want 0 / 10", aug31.Income, aug31.Expense)
	}
}

func TestBuildHistorySeries_EmptyDataStillContiguous(t *testing.T) {
	end := time.Date(2026, 2, 15, 0, 0, 0, 0, time.UTC)
	start := end.AddDate(0, 0, -types.HistoryWindowDays)

	series := BuildHistorySeries(nil, start, end)

	if len(series) != types.HistoryWindowDays+1 {
		t.Fatalf("expected %d points, got %d", types.HistoryWindowDays+1, len(series))
	}

	for _, point := range series {
		if point.Income != 0 || point.Expense != 0 {
			t.Fatalf("empty window produced non-zero point %+v", point)
		}
	}
}

func TestBuildHistorySeries_SameDaySumsAndRounds(t *testing.T) {
	day := time.Date(2026, 3, 10, 0, 0, 0, 0, time.UTC)

	rows := []models.Transaction{
		tx(types.TypeExpense, 0.1, day.Add(1*time.Hour)),
		tx(types.TypeExpense, 0.2, day.Add(2*time.Hour)),
		tx(types.TypeIncome, 33.333, day.Add(3*time.Hour)),
	}

	series := BuildHistorySeries(rows, day, day)

	if len(series) != 1 {
		t.Fatalf("expected 1 point, got %d", len(series))
	}

	if series[0].Expense != 0.3 {
		t.Errorf("expense = %v, want 0.3", series[0].Expense)
	}

	if series[0].Income != 33.33 {
		t.Errorf("income = %v, want 33.33", series[0].Income)
	}
}

func TestBuildHistorySeries_MonthBoundary(t *testing.T) {
	end := time.Date(2026, 1, 5, 12, 0, 0, 0, time.UTC)
	start := end.AddDate(0, 0, -types.HistoryWindowDays)

	series := BuildHistorySeries(nil, start, end)

	if series[0].Date != "06 Dec" {
		t.Errorf("first point = %q, want %q", series[0].Date, "06 Dec")
	}

	if series[len(series)-1].Date != "05 Jan" {
		t.Errorf("last point = %q, want %q", series[len(series)-1].Date, "05 Jan")
	}
}
