package response

import (
	"encoding/json"
	"testing"
	"time"

	"liquidation_backoffice/internal/domain/entities"
	"liquidation_backoffice/internal/domain/query"

	"github.com/shopspring/decimal"
)

func TestFromCustomerPage(t *testing.T) {
	created := entities.NewTimestamp(time.Date(2024, 1, 15, 0, 0, 0, 0, time.UTC))
	page := FromCustomerPage(query.Page[entities.Customer]{
		Content:       []entities.Customer{{ID: 1, FullName: "Alice Martin", CreatedAt: created}},
		TotalElements: 7,
	})

	if page.TotalElements != 7 || len(page.Content) != 1 {
		t.Fatalf("unexpected page: %+v", page)
	}
	c := page.Content[0]
	if c.DisplayName != "Alice Martin" || c.CreatedAt != created.Millis() {
		t.Fatalf("unexpected customer: %+v", c)
	}

	empty := FromCustomerPage(query.Page[entities.Customer]{})
	raw, _ := json.Marshal(empty)
	if string(raw) != `{"content":[],"totalElements":0}` {
		t.Fatalf("unexpected empty page json: %s", raw)
	}
}

func TestFromLiquidationView(t *testing.T) {
	due, _ := entities.ParseTimestamp("2024-01-31")
	l := entities.Liquidation{
		ID:         1,
		CustomerID: 1,
		TaxType:    "TVA",
		Amount:     decimal.NewFromInt(5000),
		DueDate:    due,
		Status:     entities.LiquidationStatusPending,
	}
	v := entities.NewLiquidationView(l, "Jean Dupont", time.Date(2024, 2, 10, 0, 0, 0, 0, time.UTC))

	res := FromLiquidationView(v)
	if res.Code != "LQ-0001" || res.Amount != "5000" || res.CustomerName != "Jean Dupont" {
		t.Fatalf("unexpected mapped fields: %+v", res)
	}
	if res.Status != "PENDING" || res.DisplayStatus != "OVERDUE" || !res.Overdue {
		t.Fatalf("unexpected status fields: %+v", res)
	}

	raw, err := json.Marshal(res)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	var decoded map[string]any
	_ = json.Unmarshal(raw, &decoded)
	if decoded["issueDate"] != nil || decoded["dueDate"] != float64(1706659200000) {
		t.Fatalf("unexpected dates in %s", raw)
	}
}

func TestFromPenalty(t *testing.T) {
	res := FromPenalty(entities.PenaltyResult{
		LiquidationID: 1,
		Amount:        decimal.NewFromInt(5000),
		DailyRate:     decimal.RequireFromString("0.01"),
		DaysLate:      10,
		Penalty:       decimal.NewFromInt(500),
		ReferenceDate: entities.TimestampFromMillis(1707523200000),
	})
	if res.Penalty != "500" || res.DailyRate != "0.01" || res.ReferenceDate != 1707523200000 {
		t.Fatalf("unexpected penalty response: %+v", res)
	}
}
