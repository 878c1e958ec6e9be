package reports

import (
	"testing"
	"time"

	"github.com/ledgerline-dev/ledgerline/internal/types"
)

func TestDefaultPeriod(t *testing.T) {
	tests := []struct {
		name      string
		now       time.Time
		wantStart time.Time
		wantEnd   time.Time
	}{
		{
			name:      "mid month",
			now:       time.Date(2026, 8, 31, 10, 15, 0, 0, time.UTC),
			wantStart: time.Date(2026, 8, 1, 0, 0, 0, 0, time.UTC),
			wantEnd:   time.Date(2026, 8, 31, 23, 59, 59, 999000000, time.UTC),
		},
		{
			name:      "february non leap",
			now:       time.Date(2026, 2, 10, 0, 0, 0, 0, time.UTC),
			wantStart: time.Date(2026, 2, 1, 0, 0, 0, 0, time.UTC),
			wantEnd:   time.Date(2026, 2, 28, 23, 59, 59, 999000000, time.UTC),
		},
		{
			name:      "december wraps the year",
			now:       time.Date(2026, 12, 25, 18, 0, 0, 0, time.UTC),
			wantStart: time.Date(2026, 12, 1, 0, 0, 0, 0, time.UTC),
			wantEnd:   time.Date(2026, 12, 31, 23, 59, 59, 999000000, time.UTC),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			start, end := DefaultPeriod(tt.now)

			if !start.Equal(tt.wantStart) {
				t.Errorf("start = %v, want %v", start, tt.wantStart)
			}

			if !end.Equal(tt.wantEnd) {
				t.Errorf("end = %v, want %v", end, tt.wantEnd)
			}
		})
	}
}

func TestComputeNetWorth(t *testing.T) {
	// initial 100, income 50, expense 30 -> 120
	got := ComputeNetWorth(100, Totals{Income: 50, Expense: 30})

	if got != 120 {
		t.Errorf("ComputeNetWorth() = %v, want 120", got)
	}

	if got := ComputeNetWorth(0, Totals{}); got != 0 {
		t.Errorf("empty net worth = %v, want 0", got)
	}
}

func TestComputeNetWorth_PartitionInvariant(t *testing.T) {
	// Net worth over all accounts equals the sum of per-account net worths
	// when balances and transactions are disjoint per account.
	accounts := []struct {
		initial float64
		totals  Totals
	}{
		{initial: 100, totals: Totals{Income: 50, Expense: 30}},
		{initial: 0, totals: Totals{Income: 10, Expense: 70}},
		{initial: 250.25, totals: Totals{}},
	}

	var sumInitial float64
	var combined Totals
	var perAccount float64

	for _, account := range accounts {
		sumInitial += account.initial
		combined.Income += account.totals.Income
		combined.Expense += account.totals.Expense
		perAccount += ComputeNetWorth(account.initial, account.totals)
	}

	if all := ComputeNetWorth(sumInitial, combined); all != perAccount {
		t.Errorf("netWorth(all) = %v, sum of parts = %v", all, perAccount)
	}
}

func TestTotalsFromRows(t *testing.T) {
	tests := []struct {
		name string
		rows []typeTotal
		want Totals
	}{
		{
			name: "both groups present",
			rows: []typeTotal{
				{Type: types.TypeIncome, Total: 50},
				{Type: types.TypeExpense, Total: 30},
			},
			want: Totals{Income: 50, Expense: 30},
		},
		{
			name: "missing groups default to zero",
			rows: nil,
			want: Totals{},
		},
		{
			name: "income only",
			rows: []typeTotal{{Type: types.TypeIncome, Total: 12.5}},
			want: Totals{Income: 12.5},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := totalsFromRows(tt.rows); got != tt.want {
				t.Errorf("totalsFromRows() = %+v, want %+v", got, tt.want)
			}
		})
	}
}

func TestRound2(t *testing.T) {
	cases := []struct {
		in  float64
		out float64
	}{
		{0, 0},
		{12.344, 12.34},
		{12.346, 12.35},
		{33.333, 33.33},
		{0.1 + 0.2, 0.3},
	}

	for _, tc := range cases {
		if got := Round2(tc.in); got != tc.out {
			t.Errorf("Round2(%v) = %v, want %v", tc.in, got, tc.out)
		}
	}
}
