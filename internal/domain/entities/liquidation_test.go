package entities

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func day(s string) Timestamp {
	ts, ok := ParseTimestamp(s)
	if !ok {
		panic("bad date " + s)
	}
	return ts
}

func TestStatusFlavor_Vocabulary(t *testing.T) {
	tests := []struct {
		flavor StatusFlavor
		status LiquidationStatus
		want   bool
	}{
		{StatusFlavorAPI, LiquidationStatusPending, true},
		{StatusFlavorAPI, LiquidationStatusPaid, true},
		{StatusFlavorAPI, LiquidationStatusOverdue, true},
		{StatusFlavorAPI, LiquidationStatusCancelled, false},
		{StatusFlavorLocal, LiquidationStatusCancelled, true},
		{StatusFlavorLocal, LiquidationStatusOverdue, false},
		{StatusFlavorLocal, LiquidationStatus("DRAFT"), false},
	}

	for _, tc := range tests {
		t.Run(string(tc.flavor)+"/"+string(tc.status), func(t *testing.T) {
			assert.Equal(t, tc.want, tc.flavor.Allows(tc.status))
		})
	}

	assert.True(t, StatusFlavorLocal.SupportsDelete())
	assert.False(t, StatusFlavorAPI.SupportsDelete())
}

func TestParseStatusFlavor(t *testing.T) {
	f, err := ParseStatusFlavor(" API ")
	require.NoError(t, err)
	assert.Equal(t, StatusFlavorAPI, f)

	f, err = ParseStatusFlavor("")
	require.NoError(t, err)
	assert.Equal(t, StatusFlavorLocal, f)

	_, err = ParseStatusFlavor("remote")
	assert.Error(t, err)
}

func TestLiquidation_MarkPaid(t *testing.T) {
	l := Liquidation{ID: 1, Status: LiquidationStatusPending}
	assert.True(t, l.MarkPaid())
	assert.Equal(t, LiquidationStatusPaid, l.Status)

	assert.False(t, l.MarkPaid())
	assert.Equal(t, LiquidationStatusPaid, l.Status)

	cancelled := Liquidation{Status: LiquidationStatusCancelled}
	assert.True(t, cancelled.MarkPaid())
}

func TestLiquidation_IsOverdue(t *testing.T) {
	now := time.Date(2024, 2, 10, 9, 30, 0, 0, time.UTC)

	tests := []struct {
		name   string
		due    Timestamp
		status LiquidationStatus
		want   bool
	}{
		{"pending past due", day("2024-02-09"), LiquidationStatusPending, true},
		{"pending due today", day("2024-02-10"), LiquidationStatusPending, false},
		{"pending due later today", NewTimestamp(now.Add(10 * time.Hour)), LiquidationStatusPending, false},
		{"paid past due", day("2024-01-01"), LiquidationStatusPaid, false},
		{"cancelled past due", day("2024-01-01"), LiquidationStatusCancelled, false},
		{"no due date", Timestamp{}, LiquidationStatusPending, false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			l := Liquidation{DueDate: tc.due, Status: tc.status}
			assert.Equal(t, tc.want, l.IsOverdue(now))
			if tc.want {
				assert.Equal(t, LiquidationStatusOverdue, l.DisplayStatus(now))
			} else {
				assert.Equal(t, tc.status, l.DisplayStatus(now))
			}
		})
	}
}

func TestLiquidation_Penalty(t *testing.T) {
	l := Liquidation{Amount: decimal.NewFromInt(1000), DueDate: day("2024-01-31")}

	t.Run("zero rate", func(t *testing.T) {
		ref := time.Date(2030, 1, 1, 0, 0, 0, 0, time.UTC)
		assert.True(t, l.Penalty(decimal.Zero, ref).IsZero())
	})

	t.Run("not yet due", func(t *testing.T) {
		ref := time.Date(2024, 1, 15, 0, 0, 0, 0, time.UTC)
		assert.True(t, l.Penalty(decimal.RequireFromString("0.5"), ref).IsZero())
		assert.Equal(t, int64(0), l.DaysPastDue(ref))
	})

	t.Run("due day itself", func(t *testing.T) {
		ref := time.Date(2024, 1, 31, 23, 59, 0, 0, time.UTC)
		assert.True(t, l.Penalty(decimal.RequireFromString("0.01"), ref).IsZero())
	})

	t.Run("ten days late", func(t *testing.T) {
		ref := time.Date(2024, 2, 10, 8, 0, 0, 0, time.UTC)
		assert.Equal(t, int64(10), l.DaysPastDue(ref))
		got := l.Penalty(decimal.RequireFromString("0.001"), ref)
		assert.True(t, decimal.NewFromInt(10).Equal(got), "got %s", got)
	})
}

func TestLiquidation_ReferenceAndJSON(t *testing.T) {
	l := Liquidation{
		ID:         7,
		CustomerID: 1,
		TaxType:    "TVA",
		Amount:     decimal.NewFromInt(5000),
		IssueDate:  day("2024-01-01"),
		DueDate:    day("2024-01-31"),
		Status:     LiquidationStatusPending,
	}
	assert.Equal(t, "LQ-0007", l.Reference())
	l.Code = "LQ-CUSTOM"
	assert.Equal(t, "LQ-CUSTOM", l.Reference())

	b, err := json.Marshal(l)
	require.NoError(t, err)

	var back Liquidation
	require.NoError(t, json.Unmarshal(b, &back))
	assert.Equal(t, l.IssueDate.Millis(), back.IssueDate.Millis())
	assert.True(t, l.Amount.Equal(back.Amount))
	assert.Equal(t, l.Status, back.Status)
}

func TestNewLiquidationView(t *testing.T) {
	now := time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC)
	l := Liquidation{ID: 1, DueDate: day("2024-02-01"), Status: LiquidationStatusPending}

	v := NewLiquidationView(l, "", now)
	assert.Equal(t, UnknownCustomerName, v.CustomerName)
	assert.True(t, v.Overdue)
	assert.Equal(t, LiquidationStatusOverdue, v.DisplayStatus)
	assert.Equal(t, LiquidationStatusPending, v.Status)
}
