package payments

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strconv"
	"time"

	"liquidation_backoffice/internal/usecase/interfaces"

	"github.com/mercadopago/sdk-go/pkg/config"
	"github.com/mercadopago/sdk-go/pkg/payment"
	"go.uber.org/zap"
)

var ErrMissingMercadoPagoAccessToken = errors.New("missing MERCADOPAGO_ACCESS_TOKEN")
var ErrMercadoPagoGatewayNotConfigured = errors.New("mercado pago gateway not configured")

// GatewayConfig configures the Mercado Pago gateway.
type GatewayConfig struct {
	AccessToken string
	// Mock approves every charge without calling Mercado Pago.
	Mock       bool
	MethodID   string
	PayerEmail string
	Logger     *zap.Logger
	Now        func() time.Time
}

type paymentCreator interface {
	Create(ctx context.Context, request payment.Request) (*payment.Response, error)
}

type MercadoPagoGateway struct {
	client     paymentCreator
	mockMode   bool
	methodID   string
	payerEmail string
	logger     *zap.Logger
	now        func() time.Time
}

var _ interfaces.IPaymentGateway = (*MercadoPagoGateway)(nil)

func NewMercadoPagoGateway(cfg GatewayConfig) (*MercadoPagoGateway, error) {
	g := newGateway(nil, cfg)

	if cfg.Mock {
		g.mockMode = true
		g.logger.Info("mock mode enabled")
		return g, nil
	}

	if cfg.AccessToken == "" {
		g.logger.Warn("missing access token")
		return nil, ErrMissingMercadoPagoAccessToken
	}

	sdkCfg, err := config.New(cfg.AccessToken)
	if err != nil {
		g.logger.Error("failed creating sdk config", zap.Error(err))
		return nil, err
	}
	g.client = payment.NewClient(sdkCfg)
	g.logger.Info("Mercado Pago client initialized")
	return g, nil
}

func newGateway(client paymentCreator, cfg GatewayConfig) *MercadoPagoGateway {
	logger := cfg.Logger
	if logger == nil {
		logger = zap.NewNop()
	}
	now := cfg.Now
	if now == nil {
		now = time.Now
	}
	methodID := cfg.MethodID
	if methodID == "" {
		methodID = "pix"
	}
	return &MercadoPagoGateway{
		client:     client,
		methodID:   methodID,
		payerEmail: cfg.PayerEmail,
		logger:     logger.Named("payment_gateway"),
		now:        now,
	}
}

// CreatePayment charges the liquidation amount. The liquidation code travels
// as external_reference so the provider side can be reconciled.
func (g *MercadoPagoGateway) CreatePayment(ctx context.Context, charge interfaces.PaymentCharge) (interfaces.PaymentReceipt, error) {
	if g == nil {
		return interfaces.PaymentReceipt{}, ErrMercadoPagoGatewayNotConfigured
	}
	if g.mockMode {
		id := strconv.FormatInt(g.now().UTC().UnixNano(), 10)
		g.logger.Info("mock create success",
			zap.String("external_reference", charge.ExternalReference),
			zap.String("provider_payment_id", id))
		return interfaces.PaymentReceipt{ProviderPaymentID: id, Status: "approved"}, nil
	}
	if g.client == nil {
		g.logger.Warn("gateway not configured")
		return interfaces.PaymentReceipt{}, ErrMercadoPagoGatewayNotConfigured
	}

	req, err := g.buildRequest(charge)
	if err != nil {
		g.logger.Error("payload build failed", zap.Error(err))
		return interfaces.PaymentReceipt{}, err
	}

	g.logger.Info("create start", zap.String("external_reference", charge.ExternalReference))
	resp, err := g.client.Create(ctx, req)
	if err != nil {
		g.logger.Warn("sdk create failed", zap.String("external_reference", charge.ExternalReference), zap.Error(err))
		return interfaces.PaymentReceipt{}, err
	}
	if resp == nil {
		return interfaces.PaymentReceipt{}, fmt.Errorf("mercado pago returned an empty response")
	}
	switch resp.Status {
	case "rejected", "cancelled":
		return interfaces.PaymentReceipt{}, fmt.Errorf("payment %d %s", resp.ID, resp.Status)
	}

	g.logger.Info("create success",
		zap.Int("provider_payment_id", resp.ID),
		zap.String("provider_status", resp.Status))
	return interfaces.PaymentReceipt{ProviderPaymentID: strconv.Itoa(resp.ID), Status: resp.Status}, nil
}

// buildRequest goes through the JSON form of the request so the field names
// are the ones documented by the Mercado Pago API.
func (g *MercadoPagoGateway) buildRequest(charge interfaces.PaymentCharge) (payment.Request, error) {
	email := charge.PayerEmail
	if email == "" {
		email = g.payerEmail
	}
	amount, _ := charge.Amount.Float64()

	reqMap := map[string]any{
		"transaction_amount": amount,
		"description":        charge.Description,
		"external_reference": charge.ExternalReference,
		"payment_method_id":  g.methodID,
		"payer": map[string]any{
			"type":  "customer",
			"email": email,
		},
	}

	raw, err := json.Marshal(reqMap)
	if err != nil {
		return payment.Request{}, err
	}
	var req payment.Request
	if err := json.Unmarshal(raw, &req); err != nil {
		return payment.Request{}, err
	}
	return req, nil
}
