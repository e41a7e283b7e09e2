package request

import (
	"encoding/json"
	"errors"
	"strconv"
	"strings"

	"liquidation_backoffice/internal/domain/entities"

	"github.com/shopspring/decimal"
)

var ErrInvalidCustomerReference = errors.New("customerId must be an integer")

// LiquidationRequest is the body of liquidation create and update calls.
// amount accepts a number or a numeric string; dates accept epoch
// milliseconds, YYYY-MM-DD or RFC3339.
type LiquidationRequest struct {
	Code       *string             `json:"code,omitempty" example:"LQ-0001"`
	CustomerID *json.Number        `json:"customerId,omitempty" swaggertype:"integer" example:"1"`
	TaxType    *string             `json:"taxType,omitempty" example:"TVA"`
	Amount     *decimal.Decimal    `json:"amount,omitempty" swaggertype:"string" example:"5000"`
	IssueDate  *entities.Timestamp `json:"issueDate,omitempty" swaggertype:"integer" example:"1704067200000"`
	DueDate    *entities.Timestamp `json:"dueDate,omitempty" swaggertype:"integer" example:"1706659200000"`
	Status     *string             `json:"status,omitempty" example:"PENDING"`
}

func (r LiquidationRequest) ToFields() (map[string]any, error) {
	fields := map[string]any{}
	if r.Code != nil {
		fields["code"] = strings.TrimSpace(*r.Code)
	}
	if r.CustomerID != nil {
		id, err := strconv.ParseInt(r.CustomerID.String(), 10, 64)
		if err != nil {
			return nil, ErrInvalidCustomerReference
		}
		fields["customerId"] = id
	}
	if r.TaxType != nil {
		fields["taxType"] = strings.TrimSpace(*r.TaxType)
	}
	if r.Amount != nil {
		fields["amount"] = *r.Amount
	}
	if r.IssueDate != nil && !r.IssueDate.IsZero() {
		fields["issueDate"] = r.IssueDate.Millis()
	}
	if r.DueDate != nil && !r.DueDate.IsZero() {
		fields["dueDate"] = r.DueDate.Millis()
	}
	if r.Status != nil {
		fields["status"] = *r.Status
	}
	return fields, nil
}
