package usecase

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"
	"time"

	"liquidation_backoffice/internal/domain/entities"
	"liquidation_backoffice/internal/domain/query"
	"liquidation_backoffice/internal/usecase/interfaces"

	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

var (
	ErrLiquidationNotFound       = errors.New("liquidation not found")
	ErrInvalidLiquidationID      = errors.New("invalid liquidation id")
	ErrInvalidLiquidationPayload = errors.New("invalid liquidation payload")
	ErrStatusOutsideVocabulary   = errors.New("status outside configured vocabulary")
	ErrInvalidDailyRate          = errors.New("invalid daily rate")
	ErrDeleteNotSupported        = errors.New("liquidations cannot be deleted")
	ErrPaymentDeclined           = errors.New("payment declined")
	ErrRendererNotConfigured     = errors.New("payment reference renderer not configured")
)

// ILiquidationUseCase exposes liquidation operations.
//
// Every liquidation returned is joined with its customer's display name at
// read time. Overdue is derived here and never persisted.

type ILiquidationUseCase interface {
	List(ctx context.Context, filter entities.LiquidationFilter) (query.Page[entities.LiquidationView], error)
	GetByID(ctx context.Context, id int64) (entities.LiquidationView, error)
	ListByCustomerID(ctx context.Context, customerID int64) ([]entities.LiquidationView, error)
	Create(ctx context.Context, fields map[string]any) (entities.LiquidationView, error)
	Update(ctx context.Context, id int64, patch map[string]any) (entities.LiquidationView, error)
	Pay(ctx context.Context, id int64) (entities.LiquidationView, error)
	Delete(ctx context.Context, id int64) error
	Penalty(ctx context.Context, id int64, dailyRate string) (entities.PenaltyResult, error)
	PaymentReference(ctx context.Context, id int64, regenerate bool) (PaymentReferenceResult, error)
	RenderPaymentReference(ctx context.Context, id int64, size int, level string) ([]byte, error)
}

// PaymentReferenceResult carries the payload and its encoded form.
type PaymentReferenceResult struct {
	Payload entities.PaymentReference `json:"payload"`
	Encoded string                    `json:"encoded"`
}

// LiquidationConfig holds the settings of a liquidation use case.
type LiquidationConfig struct {
	Flavor           entities.StatusFlavor
	DefaultDailyRate decimal.Decimal
	Logger           *zap.Logger
	Now              func() time.Time
}

type LiquidationUseCase struct {
	repo      interfaces.ILiquidationRepository
	customers interfaces.ICustomerRepository
	gateway   interfaces.IPaymentGateway
	renderer  interfaces.IPaymentReferenceRenderer

	flavor    entities.StatusFlavor
	dailyRate decimal.Decimal
	logger    *zap.Logger
	now       func() time.Time
}

var _ ILiquidationUseCase = (*LiquidationUseCase)(nil)

// NewLiquidationUseCase wires the use case. customers is only read. gateway
// and renderer are optional.
func NewLiquidationUseCase(
	repo interfaces.ILiquidationRepository,
	customers interfaces.ICustomerRepository,
	gateway interfaces.IPaymentGateway,
	renderer interfaces.IPaymentReferenceRenderer,
	cfg LiquidationConfig,
) *LiquidationUseCase {
	logger := cfg.Logger
	if logger == nil {
		logger = zap.NewNop()
	}
	now := cfg.Now
	if now == nil {
		now = time.Now
	}
	flavor := cfg.Flavor
	if flavor == "" {
		flavor = entities.StatusFlavorLocal
	}
	return &LiquidationUseCase{
		repo:      repo,
		customers: customers,
		gateway:   gateway,
		renderer:  renderer,
		flavor:    flavor,
		dailyRate: cfg.DefaultDailyRate,
		logger:    logger.Named("liquidation"),
		now:       now,
	}
}

// List also matches the free text against customer display names.
func (u *LiquidationUseCase) List(ctx context.Context, filter entities.LiquidationFilter) (query.Page[entities.LiquidationView], error) {
	if strings.TrimSpace(filter.Text) != "" {
		filter.TextCustomerIDs = u.customersNamed(ctx, filter.Text)
	}
	page, err := u.repo.List(ctx, filter)
	if err != nil {
		return query.Page[entities.LiquidationView]{}, err
	}
	now := u.now()
	views := make([]entities.LiquidationView, 0, len(page.Content))
	for _, l := range page.Content {
		views = append(views, u.enrich(ctx, l, now))
	}
	return query.Page[entities.LiquidationView]{Content: views, TotalElements: page.TotalElements}, nil
}

func (u *LiquidationUseCase) GetByID(ctx context.Context, id int64) (entities.LiquidationView, error) {
	l, err := u.get(ctx, id)
	if err != nil {
		return entities.LiquidationView{}, err
	}
	return u.enrich(ctx, l, u.now()), nil
}

func (u *LiquidationUseCase) ListByCustomerID(ctx context.Context, customerID int64) ([]entities.LiquidationView, error) {
	if customerID <= 0 {
		return nil, ErrInvalidCustomerID
	}
	items, err := u.repo.ListByCustomerID(ctx, customerID)
	if err != nil {
		return nil, err
	}
	now := u.now()
	views := make([]entities.LiquidationView, 0, len(items))
	for _, l := range items {
		views = append(views, u.enrich(ctx, l, now))
	}
	return views, nil
}

func (u *LiquidationUseCase) Create(ctx context.Context, fields map[string]any) (entities.LiquidationView, error) {
	if fields == nil {
		return entities.LiquidationView{}, ErrInvalidLiquidationPayload
	}
	customerID, ok := int64Value(fields["customerId"])
	if !ok || customerID <= 0 {
		u.logger.Info("create rejected: customerId missing or invalid")
		return entities.LiquidationView{}, ErrInvalidCustomerID
	}
	if err := u.checkStatus(fields); err != nil {
		return entities.LiquidationView{}, err
	}

	customer, err := u.customers.GetByID(ctx, customerID)
	if err != nil {
		return entities.LiquidationView{}, fmt.Errorf("load customer %d: %w", customerID, err)
	}
	if customer.ID == 0 {
		u.logger.Info("create rejected: unknown customer", zap.Int64("customer_id", customerID))
		return entities.LiquidationView{}, ErrCustomerNotFound
	}

	l, err := u.repo.Create(ctx, fields)
	if err != nil {
		u.logger.Error("create failed", zap.Int64("customer_id", customerID), zap.Error(err))
		return entities.LiquidationView{}, fmt.Errorf("create liquidation: %w", err)
	}
	u.logger.Info("liquidation created", zap.Int64("liquidation_id", l.ID), zap.String("code", l.Code))
	return entities.NewLiquidationView(l, customer.DisplayName(), u.now()), nil
}

// Update allows any status of the vocabulary, including moving back from
// PAID.
func (u *LiquidationUseCase) Update(ctx context.Context, id int64, patch map[string]any) (entities.LiquidationView, error) {
	if id <= 0 {
		return entities.LiquidationView{}, ErrInvalidLiquidationID
	}
	if patch == nil {
		return entities.LiquidationView{}, ErrInvalidLiquidationPayload
	}
	if err := u.checkStatus(patch); err != nil {
		return entities.LiquidationView{}, err
	}

	l, err := u.repo.Update(ctx, id, patch)
	if err != nil {
		u.logger.Error("update failed", zap.Int64("liquidation_id", id), zap.Error(err))
		return entities.LiquidationView{}, fmt.Errorf("update liquidation %d: %w", id, err)
	}
	if l.ID == 0 {
		return entities.LiquidationView{}, ErrLiquidationNotFound
	}
	return u.enrich(ctx, l, u.now()), nil
}

// Pay is idempotent. When a gateway is configured, an unpaid liquidation is
// charged first and stays unchanged if the charge fails.
func (u *LiquidationUseCase) Pay(ctx context.Context, id int64) (entities.LiquidationView, error) {
	l, err := u.get(ctx, id)
	if err != nil {
		return entities.LiquidationView{}, err
	}

	if l.Status != entities.LiquidationStatusPaid && u.gateway != nil {
		charge := interfaces.PaymentCharge{
			ExternalReference: l.Reference(),
			Description:       fmt.Sprintf("Liquidation %s %s", l.Reference(), l.TaxType),
			Amount:            l.Amount,
		}
		if c, err := u.customers.GetByID(ctx, l.CustomerID); err == nil && c.ID != 0 {
			charge.PayerEmail = c.Email
		}
		receipt, err := u.gateway.CreatePayment(ctx, charge)
		if err != nil {
			u.logger.Warn("payment gateway refused charge", zap.Int64("liquidation_id", id), zap.Error(err))
			return entities.LiquidationView{}, fmt.Errorf("%w: %v", ErrPaymentDeclined, err)
		}
		u.logger.Info("payment gateway charge accepted",
			zap.Int64("liquidation_id", id),
			zap.String("provider_payment_id", receipt.ProviderPaymentID),
			zap.String("provider_status", receipt.Status))
	}

	paid, err := u.repo.Pay(ctx, id)
	if err != nil {
		u.logger.Error("pay failed", zap.Int64("liquidation_id", id), zap.Error(err))
		return entities.LiquidationView{}, fmt.Errorf("pay liquidation %d: %w", id, err)
	}
	if paid.ID == 0 {
		return entities.LiquidationView{}, ErrLiquidationNotFound
	}
	return u.enrich(ctx, paid, u.now()), nil
}

func (u *LiquidationUseCase) Delete(ctx context.Context, id int64) error {
	if id <= 0 {
		return ErrInvalidLiquidationID
	}
	if !u.flavor.SupportsDelete() {
		return ErrDeleteNotSupported
	}
	if err := u.repo.Delete(ctx, id); err != nil {
		u.logger.Error("delete failed", zap.Int64("liquidation_id", id), zap.Error(err))
		return fmt.Errorf("delete liquidation %d: %w", id, err)
	}
	u.logger.Info("liquidation deleted", zap.Int64("liquidation_id", id))
	return nil
}

// Penalty uses the configured default rate when dailyRate is empty.
func (u *LiquidationUseCase) Penalty(ctx context.Context, id int64, dailyRate string) (entities.PenaltyResult, error) {
	rate := u.dailyRate
	if s := strings.TrimSpace(dailyRate); s != "" {
		parsed, err := decimal.NewFromString(s)
		if err != nil {
			return entities.PenaltyResult{}, ErrInvalidDailyRate
		}
		rate = parsed
	}
	if rate.IsNegative() {
		return entities.PenaltyResult{}, ErrInvalidDailyRate
	}

	l, err := u.get(ctx, id)
	if err != nil {
		return entities.PenaltyResult{}, err
	}

	ref := u.now()
	return entities.PenaltyResult{
		LiquidationID: l.ID,
		Amount:        l.Amount,
		DailyRate:     rate,
		DaysLate:      l.DaysPastDue(ref),
		Penalty:       l.Penalty(rate, ref),
		ReferenceDate: entities.NewTimestamp(ref),
	}, nil
}

// PaymentReference builds the QR payload. regenerate tags the encoded form
// with the current time in milliseconds.
func (u *LiquidationUseCase) PaymentReference(ctx context.Context, id int64, regenerate bool) (PaymentReferenceResult, error) {
	l, err := u.get(ctx, id)
	if err != nil {
		return PaymentReferenceResult{}, err
	}

	var customer *entities.Customer
	if c, err := u.customers.GetByID(ctx, l.CustomerID); err != nil {
		u.logger.Warn("customer lookup failed", zap.Int64("customer_id", l.CustomerID), zap.Error(err))
	} else if c.ID != 0 {
		customer = &c
	}

	payload := entities.BuildPaymentReference(l, customer)
	var encoded string
	if regenerate {
		encoded, err = payload.Regenerated(u.now().UnixMilli())
	} else {
		encoded, err = payload.Encode()
	}
	if err != nil {
		return PaymentReferenceResult{}, err
	}
	return PaymentReferenceResult{Payload: payload, Encoded: encoded}, nil
}

func (u *LiquidationUseCase) RenderPaymentReference(ctx context.Context, id int64, size int, level string) ([]byte, error) {
	if u.renderer == nil {
		return nil, ErrRendererNotConfigured
	}
	ref, err := u.PaymentReference(ctx, id, false)
	if err != nil {
		return nil, err
	}
	return u.renderer.Render(ref.Encoded, size, level)
}

func (u *LiquidationUseCase) get(ctx context.Context, id int64) (entities.Liquidation, error) {
	if id <= 0 {
		return entities.Liquidation{}, ErrInvalidLiquidationID
	}
	l, err := u.repo.GetByID(ctx, id)
	if err != nil {
		return entities.Liquidation{}, err
	}
	if l.ID == 0 {
		return entities.Liquidation{}, ErrLiquidationNotFound
	}
	return l, nil
}

// customersNamed returns the ids of customers whose display name contains
// text. A failed lookup only narrows the search.
func (u *LiquidationUseCase) customersNamed(ctx context.Context, text string) []int64 {
	all, err := u.customers.List(ctx, entities.CustomerFilter{})
	if err != nil {
		u.logger.Warn("customer name search failed", zap.Error(err))
		return nil
	}
	needle := strings.ToLower(strings.TrimSpace(text))
	var ids []int64
	for _, c := range all.Content {
		if strings.Contains(strings.ToLower(c.DisplayName()), needle) {
			ids = append(ids, c.ID)
		}
	}
	return ids
}

// enrich resolves the customer name. Any lookup failure falls back to the
// placeholder.
func (u *LiquidationUseCase) enrich(ctx context.Context, l entities.Liquidation, now time.Time) entities.LiquidationView {
	name := entities.UnknownCustomerName
	c, err := u.customers.GetByID(ctx, l.CustomerID)
	switch {
	case err != nil:
		u.logger.Warn("customer lookup failed", zap.Int64("customer_id", l.CustomerID), zap.Error(err))
	case c.ID != 0:
		name = c.DisplayName()
	}
	return entities.NewLiquidationView(l, name, now)
}

func (u *LiquidationUseCase) checkStatus(fields map[string]any) error {
	raw, ok := fields["status"]
	if !ok || raw == nil {
		return nil
	}
	s, ok := raw.(string)
	if !ok {
		return ErrStatusOutsideVocabulary
	}
	status := entities.ParseLiquidationStatus(s)
	if !u.flavor.Allows(status) {
		u.logger.Info("status rejected", zap.String("status", s), zap.String("flavor", string(u.flavor)))
		return fmt.Errorf("%w: %q not in %v", ErrStatusOutsideVocabulary, s, u.flavor.Vocabulary())
	}
	fields["status"] = string(status)
	return nil
}

func int64Value(v any) (int64, bool) {
	switch x := v.(type) {
	case int:
		return int64(x), true
	case int64:
		return x, true
	case float64:
		if x != math.Trunc(x) {
			return 0, false
		}
		return int64(x), true
	case json.Number:
		n, err := x.Int64()
		return n, err == nil
	case string:
		n, err := strconv.ParseInt(strings.TrimSpace(x), 10, 64)
		return n, err == nil
	}
	return 0, false
}
