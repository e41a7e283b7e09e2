package interfaces

import (
	"context"

	"github.com/shopspring/decimal"
)

// PaymentCharge is what a liquidation payment asks the provider to collect.
type PaymentCharge struct {
	ExternalReference string
	Description       string
	Amount            decimal.Decimal
	PayerEmail        string
}

// PaymentReceipt is the provider's answer to an accepted charge.
type PaymentReceipt struct {
	ProviderPaymentID string
	Status            string
}

// IPaymentGateway abstracts external payment providers (e.g. Mercado Pago).
//
// Paying a liquidation optionally charges it through the gateway first; a
// returned error leaves the liquidation untouched.
type IPaymentGateway interface {
	CreatePayment(ctx context.Context, charge PaymentCharge) (PaymentReceipt, error)
}
