package request

import (
	"errors"
	"strings"
	"time"

	"liquidation_backoffice/internal/domain/entities"
)

var (
	ErrInvalidDate      = errors.New("invalid date, expected YYYY-MM-DD")
	ErrInvalidDateField = errors.New("dateField must be dueDate, issueDate or createdAt")
)

// CustomerListQuery binds GET /customers query parameters.
type CustomerListQuery struct {
	Q    string `form:"q"`
	Page int    `form:"page"`
	Size int    `form:"size"`
}

func (q CustomerListQuery) ToFilter() entities.CustomerFilter {
	return entities.CustomerFilter{Text: strings.TrimSpace(q.Q), Page: q.Page, Size: q.Size}
}

// LiquidationListQuery binds GET /liquidations query parameters. Dates bound
// whole days; page is zero-based.
type LiquidationListQuery struct {
	Q          string `form:"q"`
	Status     string `form:"status"`
	CustomerID int64  `form:"customerId"`
	StartDate  string `form:"startDate"`
	EndDate    string `form:"endDate"`
	DateField  string `form:"dateField"`
	Page       int    `form:"page"`
	Size       int    `form:"size"`
}

func (q LiquidationListQuery) ToFilter() (entities.LiquidationFilter, error) {
	f := entities.LiquidationFilter{
		Text:       strings.TrimSpace(q.Q),
		Status:     strings.TrimSpace(q.Status),
		CustomerID: q.CustomerID,
		Page:       q.Page,
		Size:       q.Size,
	}

	switch df := strings.TrimSpace(q.DateField); df {
	case "", "dueDate", "issueDate", "createdAt":
		f.DateField = df
	default:
		return entities.LiquidationFilter{}, ErrInvalidDateField
	}

	var err error
	if f.From, err = parseDay(q.StartDate); err != nil {
		return entities.LiquidationFilter{}, err
	}
	if f.To, err = parseDay(q.EndDate); err != nil {
		return entities.LiquidationFilter{}, err
	}
	return f, nil
}

func parseDay(s string) (time.Time, error) {
	if strings.TrimSpace(s) == "" {
		return time.Time{}, nil
	}
	ts, ok := entities.ParseTimestamp(s)
	if !ok {
		return time.Time{}, ErrInvalidDate
	}
	return ts.Time, nil
}
