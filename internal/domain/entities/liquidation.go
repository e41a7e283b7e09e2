package entities

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

// LiquidationStatus is the persisted payment state of a liquidation.
type LiquidationStatus string

const (
	LiquidationStatusPending   LiquidationStatus = "PENDING"
	LiquidationStatusPaid      LiquidationStatus = "PAID"
	LiquidationStatusOverdue   LiquidationStatus = "OVERDUE"
	LiquidationStatusCancelled LiquidationStatus = "CANCELLED"
)

// ParseLiquidationStatus normalizes case and surrounding blanks. It does not
// check the value against a vocabulary.
func ParseLiquidationStatus(s string) LiquidationStatus {
	return LiquidationStatus(strings.ToUpper(strings.TrimSpace(s)))
}

// StatusFlavor selects the status vocabulary of a liquidation store.
//
//   - api:   PENDING, PAID, OVERDUE (records are never physically deleted)
//   - local: PENDING, PAID, CANCELLED
type StatusFlavor string

const (
	StatusFlavorAPI   StatusFlavor = "api"
	StatusFlavorLocal StatusFlavor = "local"
)

func ParseStatusFlavor(s string) (StatusFlavor, error) {
	switch f := StatusFlavor(strings.ToLower(strings.TrimSpace(s))); f {
	case StatusFlavorAPI, StatusFlavorLocal:
		return f, nil
	case "":
		return StatusFlavorLocal, nil
	}
	return "", fmt.Errorf("unknown liquidation status flavor %q", s)
}

func (f StatusFlavor) Vocabulary() []LiquidationStatus {
	if f == StatusFlavorAPI {
		return []LiquidationStatus{LiquidationStatusPending, LiquidationStatusPaid, LiquidationStatusOverdue}
	}
	return []LiquidationStatus{LiquidationStatusPending, LiquidationStatusPaid, LiquidationStatusCancelled}
}

func (f StatusFlavor) Allows(s LiquidationStatus) bool {
	for _, v := range f.Vocabulary() {
		if v == s {
			return true
		}
	}
	return false
}

func (f StatusFlavor) SupportsDelete() bool {
	return f == StatusFlavorLocal
}

// Liquidation is a tax or payment record owed by a customer.
type Liquidation struct {
	ID         int64             `json:"id"`
	Code       string            `json:"code"`
	CustomerID int64             `json:"customerId"`
	TaxType    string            `json:"taxType"`
	Amount     decimal.Decimal   `json:"amount"`
	IssueDate  Timestamp         `json:"issueDate"`
	DueDate    Timestamp         `json:"dueDate"`
	Status     LiquidationStatus `json:"status"`
	CreatedAt  Timestamp         `json:"createdAt"`
}

func (l Liquidation) EntityID() int64 { return l.ID }

// LiquidationCode formats the reference derived from an id.
func LiquidationCode(id int64) string {
	return fmt.Sprintf("LQ-%04d", id)
}

// Reference is the stored code, or the one derived from the id.
func (l Liquidation) Reference() string {
	if c := strings.TrimSpace(l.Code); c != "" {
		return c
	}
	return LiquidationCode(l.ID)
}

// MarkPaid moves the liquidation to PAID. It reports false when it already
// was, in which case nothing changed.
func (l *Liquidation) MarkPaid() bool {
	if l.Status == LiquidationStatusPaid {
		return false
	}
	l.Status = LiquidationStatusPaid
	return true
}

// IsOverdue is derived on read and never persisted: the due day is strictly
// before the current day and the liquidation is still pending.
func (l Liquidation) IsOverdue(now time.Time) bool {
	if l.Status != LiquidationStatusPending || l.DueDate.IsZero() {
		return false
	}
	return StartOfDay(l.DueDate.Time, time.UTC).Before(StartOfDay(now, time.UTC))
}

// DisplayStatus is the status shown to users.
func (l Liquidation) DisplayStatus(now time.Time) LiquidationStatus {
	if l.IsOverdue(now) {
		return LiquidationStatusOverdue
	}
	return l.Status
}

// DaysPastDue counts whole UTC calendar days from the due date to ref,
// floored at zero.
func (l Liquidation) DaysPastDue(ref time.Time) int64 {
	if l.DueDate.IsZero() {
		return 0
	}
	due := StartOfDay(l.DueDate.Time, time.UTC)
	day := StartOfDay(ref, time.UTC)
	if !day.After(due) {
		return 0
	}
	return int64(day.Sub(due).Hours() / 24)
}

// Penalty computes amount * dailyRate * daysPastDue. A zero rate always
// yields zero.
func (l Liquidation) Penalty(dailyRate decimal.Decimal, ref time.Time) decimal.Decimal {
	if dailyRate.IsZero() {
		return decimal.Zero
	}
	days := l.DaysPastDue(ref)
	if days == 0 {
		return decimal.Zero
	}
	return l.Amount.Mul(dailyRate).Mul(decimal.NewFromInt(days))
}

func (l Liquidation) TextField(name string) (string, bool) {
	switch name {
	case "id":
		return strconv.FormatInt(l.ID, 10), true
	case "code":
		return l.Reference(), true
	case "customerId":
		return strconv.FormatInt(l.CustomerID, 10), true
	case "taxType":
		return l.TaxType, true
	case "amount":
		return l.Amount.String(), true
	case "status":
		return string(l.Status), true
	}
	return "", false
}

func (l Liquidation) TimeField(name string) (time.Time, bool) {
	var ts Timestamp
	switch name {
	case "issueDate":
		ts = l.IssueDate
	case "dueDate":
		ts = l.DueDate
	case "createdAt":
		ts = l.CreatedAt
	default:
		return time.Time{}, false
	}
	if ts.IsZero() {
		return time.Time{}, false
	}
	return ts.Time, true
}

// LiquidationTextFields are searched by free text.
var LiquidationTextFields = []string{"code", "taxType", "status"}

// LiquidationFilter narrows a liquidation listing. Zero values mean "any".
//
// TextCustomerIDs are customers whose display name matched Text; their
// liquidations match the free text too.
type LiquidationFilter struct {
	Text            string
	TextCustomerIDs []int64
	Status          string
	CustomerID      int64
	DateField       string
	From            time.Time
	To              time.Time
	Page            int
	Size            int
}

// PenaltyResult is the outcome of a penalty computation.
type PenaltyResult struct {
	LiquidationID int64           `json:"liquidationId"`
	Amount        decimal.Decimal `json:"amount"`
	DailyRate     decimal.Decimal `json:"dailyRate"`
	DaysLate      int64           `json:"daysLate"`
	Penalty       decimal.Decimal `json:"penalty"`
	ReferenceDate Timestamp       `json:"referenceDate"`
}

// LiquidationView is a liquidation joined with its customer's display name
// and the derived overdue state.
type LiquidationView struct {
	Liquidation
	CustomerName  string            `json:"customerName"`
	Overdue       bool              `json:"overdue"`
	DisplayStatus LiquidationStatus `json:"displayStatus"`
}

func NewLiquidationView(l Liquidation, customerName string, now time.Time) LiquidationView {
	if strings.TrimSpace(customerName) == "" {
		customerName = UnknownCustomerName
	}
	return LiquidationView{
		Liquidation:   l,
		CustomerName:  customerName,
		Overdue:       l.IsOverdue(now),
		DisplayStatus: l.DisplayStatus(now),
	}
}
