package reports

import (
	"testing"
	"time"

	"github.com/ledgerline-dev/ledgerline/internal/models"
)

func pageRow(id string, date time.Time) models.Transaction {
	return models.Transaction{
		BaseModel:       models.BaseModel{ID: id},
		TransactionDate: date,
	}
}

func TestSlicePage(t *testing.T) {
	base := time.Date(2026, 6, 1, 12, 0, 0, 0, time.UTC)

	rows := []models.Transaction{
		pageRow("a", base),
		pageRow("b", base.Add(-time.Hour)),
		pageRow("c", base.Add(-2*time.Hour)),
	}

	tests := []struct {
		name      string
		rows      []models.Transaction
		limit     int
		wantLen   int
		wantMore  bool
		wantCurID string
	}{
		{
			name:     "under limit returns all with no cursor",
			rows:     rows,
			limit:    5,
			wantLen:  3,
			wantMore: false,
		},
		{
			name:     "exactly limit returns all with no cursor",
			rows:     rows,
			limit:    3,
			wantLen:  3,
			wantMore: false,
		},
		{
			name:      "over limit truncates and cursors at last returned row",
			rows:      rows,
			limit:     2,
			wantLen:   2,
			wantMore:  true,
			wantCurID: "b",
		},
		{
			name:     "empty input",
			rows:     nil,
			limit:    2,
			wantLen:  0,
			wantMore: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			items, cursor, hasMore := SlicePage(tt.rows, tt.limit)

			if len(items) != tt.wantLen {
				t.Errorf("len(items) = %d, want %d", len(items), tt.wantLen)
			}

			if hasMore != tt.wantMore {
				t.Errorf("hasMore = %v, want %v", hasMore, tt.wantMore)
			}

			if tt.wantCurID == "" {
				if cursor != nil {
					t.Errorf("cursor = %+v, want nil", cursor)
				}
				return
			}

			if cursor == nil {
				t.Fatal("expected a cursor")
			}

			if cursor.ID != tt.wantCurID {
				t.Errorf("cursor.ID = %q, want %q", cursor.ID, tt.wantCurID)
			}

			if !cursor.Date.Equal(items[len(items)-1].TransactionDate) {
				t.Errorf("cursor.Date = %v, want %v", cursor.Date, items[len(items)-1].TransactionDate)
			}
		})
	}
}

func TestSlicePage_TiedTimestampsStayDistinct(t *testing.T) {
	tied := time.Date(2026, 6, 1, 12, 0, 0, 0, time.UTC)

	rows := []models.Transaction{
		pageRow("z", tied),
		pageRow("y", tied),
		pageRow("x", tied),
	}

	items, cursor, hasMore := SlicePage(rows, 2)

	if !hasMore || cursor == nil {
		t.Fatal("expected another page")
	}

	// The id tie-break lets the next query resume after "y" even though all
	// three rows share a timestamp.
	if cursor.ID != "y" {
		t.Errorf("cursor.ID = %q, want %q", cursor.ID, "y")
	}

	if len(items) != 2 {
		t.Errorf("len(items) = %d, want 2", len(items))
	}
}

func TestCursorRoundTrip(t *testing.T) {
	in := Cursor{
		Date: time.Date(2026, 6, 1, 12, 30, 45, 123456789, time.UTC),
		ID:   "0b92e4f0-8f3c-4ad9-9f1e-5a2b7c6d8e90",
	}

	out, err := ParseCursor(EncodeCursor(in))

	if err != nil {
		t.Fatalf("ParseCursor() error = %v", err)
	}

	if !out.Date.Equal(in.Date) {
		t.Errorf("Date = %v, want %v", out.Date, in.Date)
	}

	if out.ID != in.ID {
		t.Errorf("ID = %q, want %q", out.ID, in.ID)
	}
}

func TestParseCursor_LegacyTimestampToken(t *testing.T) {
	cursor, err := ParseCursor("2026-06-01T12:30:45Z")

	if err != nil {
		t.Fatalf("ParseCursor() error = %v", err)
	}

	if cursor.ID != "" {
		t.Errorf("ID = %q, want empty tie-break", cursor.ID)
	}

	want := time.Date(2026, 6, 1, 12, 30, 45, 0, time.UTC)
	if !cursor.Date.Equal(want) {
		t.Errorf("Date = %v, want %v", cursor.Date, want)
	}
}

func TestParseCursor_Invalid(t *testing.T) {
	for _, token := range []string{"", "not-a-date", "not-a-date|some-id"} {
		if _, err := ParseCursor(token); err == nil {
			t.Errorf("ParseCursor(%q) expected error", token)
		}
	}
}
