package entities

import (
	"encoding/json"
	"strconv"
)

// PaymentReference is the flat payload encoded into a payment QR code.
// It is derived from a liquidation and its customer only.
type PaymentReference struct {
	Reference    string `json:"reference"`
	ID           int64  `json:"id"`
	CustomerID   int64  `json:"customerId"`
	CustomerName string `json:"customerName"`
	TaxType      string `json:"taxType"`
	Amount       string `json:"amount"`
	IssueDate    string `json:"issueDate"`
	DueDate      string `json:"dueDate"`
	Status       string `json:"status"`
}

// BuildPaymentReference derives the payload. customer may be nil when the
// customer is unknown. The persisted status is used, not the display one.
func BuildPaymentReference(l Liquidation, customer *Customer) PaymentReference {
	name := UnknownCustomerName
	if customer != nil && customer.ID != 0 {
		if n := customer.DisplayName(); n != "" {
			name = n
		}
	}
	return PaymentReference{
		Reference:    l.Reference(),
		ID:           l.ID,
		CustomerID:   l.CustomerID,
		CustomerName: name,
		TaxType:      l.TaxType,
		Amount:       l.Amount.String(),
		IssueDate:    l.IssueDate.Date(),
		DueDate:      l.DueDate.Date(),
		Status:       string(l.Status),
	}
}

// Encode serializes the payload. Field order is fixed by the struct, so an
// unchanged liquidation always encodes to the same bytes.
func (p PaymentReference) Encode() (string, error) {
	b, err := json.Marshal(p)
	if err != nil {
		return "", err
	}
	return string(b), nil
}

// Regenerated returns the encoded payload tagged with "_<tag>". The fields
// themselves are untouched.
func (p PaymentReference) Regenerated(tag int64) (string, error) {
	s, err := p.Encode()
	if err != nil {
		return "", err
	}
	return s + "_" + strconv.FormatInt(tag, 10), nil
}
