package repository

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"liquidation_backoffice/internal/adapter/persistence/store"
	"liquidation_backoffice/internal/domain/entities"
	"liquidation_backoffice/internal/domain/query"
	"liquidation_backoffice/internal/usecase/interfaces"
)

// ErrForeignStatus reports persisted liquidations whose status does not
// belong to the configured vocabulary.
var ErrForeignStatus = errors.New("liquidation status outside configured vocabulary")

const defaultDateField = "dueDate"

// LiquidationStoreRepository keeps liquidations in an entity store.
//
// Records are created PENDING with a LQ-%04d code unless the payload carries
// one, and are listed newest first.

type LiquidationStoreRepository struct {
	store  *store.EntityStore[entities.Liquidation]
	flavor entities.StatusFlavor
}

var _ interfaces.ILiquidationRepository = (*LiquidationStoreRepository)(nil)

func NewLiquidationStoreRepository(kv interfaces.IKeyValueStore, flavor entities.StatusFlavor, cfg StoreConfig) *LiquidationStoreRepository {
	schema := store.Schema[entities.Liquidation]{
		Key: cfg.key(DefaultLiquidationsKey),
		Fields: map[string]store.Coercer{
			"code":       store.String,
			"customerId": store.Int64,
			"taxType":    store.String,
			"amount":     store.Decimal,
			"issueDate":  store.Timestamp,
			"dueDate":    store.Timestamp,
			"status":     store.UpperString,
		},
		Defaults: func() map[string]any {
			return map[string]any{"status": string(entities.LiquidationStatusPending)}
		},
		OnCreate: func(l *entities.Liquidation) {
			if strings.TrimSpace(l.Code) == "" {
				l.Code = entities.LiquidationCode(l.ID)
			}
			if l.Status == "" {
				l.Status = entities.LiquidationStatusPending
			}
		},
	}
	if cfg.Seed {
		schema.Seed = SeedLiquidations
	}

	return &LiquidationStoreRepository{
		store: store.NewEntityStore(kv, schema,
			store.WithLogger[entities.Liquidation](cfg.logger()),
			store.WithClock[entities.Liquidation](cfg.now()),
		),
		flavor: flavor,
	}
}

func (r *LiquidationStoreRepository) List(ctx context.Context, filter entities.LiquidationFilter) (query.Page[entities.Liquidation], error) {
	items, err := r.store.Load(ctx)
	if err != nil {
		return query.Page[entities.Liquidation]{}, err
	}
	return query.Apply(items, LiquidationParams(filter)), nil
}

// LiquidationParams maps a listing filter onto query parameters.
func LiquidationParams(filter entities.LiquidationFilter) query.Params {
	filters := map[string]string{}
	if s := strings.TrimSpace(filter.Status); s != "" {
		filters["status"] = strings.ToUpper(s)
	}
	if filter.CustomerID > 0 {
		filters["customerId"] = strconv.FormatInt(filter.CustomerID, 10)
	}
	dateField := filter.DateField
	if dateField != "issueDate" && dateField != "createdAt" {
		dateField = defaultDateField
	}
	var textValues map[string][]string
	if len(filter.TextCustomerIDs) > 0 {
		ids := make([]string, 0, len(filter.TextCustomerIDs))
		for _, id := range filter.TextCustomerIDs {
			ids = append(ids, strconv.FormatInt(id, 10))
		}
		textValues = map[string][]string{"customerId": ids}
	}
	return query.Params{
		FreeText:   filter.Text,
		TextFields: entities.LiquidationTextFields,
		TextValues: textValues,
		Filters:    filters,
		DateField:  dateField,
		From:       filter.From,
		To:         filter.To,
		Page:       filter.Page,
		Size:       filter.Size,
	}
}

func (r *LiquidationStoreRepository) GetByID(ctx context.Context, id int64) (entities.Liquidation, error) {
	l, _, err := r.store.Get(ctx, id)
	return l, err
}

func (r *LiquidationStoreRepository) ListByCustomerID(ctx context.Context, customerID int64) ([]entities.Liquidation, error) {
	items, err := r.store.Load(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]entities.Liquidation, 0)
	for _, l := range items {
		if l.CustomerID == customerID {
			out = append(out, l)
		}
	}
	return out, nil
}

func (r *LiquidationStoreRepository) Create(ctx context.Context, fields map[string]any) (entities.Liquidation, error) {
	return r.store.Create(ctx, fields)
}

func (r *LiquidationStoreRepository) Update(ctx context.Context, id int64, patch map[string]any) (entities.Liquidation, error) {
	l, _, err := r.store.Update(ctx, id, patch)
	return l, err
}

func (r *LiquidationStoreRepository) Pay(ctx context.Context, id int64) (entities.Liquidation, error) {
	l, _, err := r.store.Mutate(ctx, id, func(l *entities.Liquidation) bool {
		return l.MarkPaid()
	})
	return l, err
}

func (r *LiquidationStoreRepository) Delete(ctx context.Context, id int64) error {
	_, err := r.store.Remove(ctx, id)
	return err
}

// CheckVocabulary fails when a persisted liquidation carries a status the
// configured flavor does not know, e.g. OVERDUE in a local store.
func (r *LiquidationStoreRepository) CheckVocabulary(ctx context.Context) error {
	items, err := r.store.Load(ctx)
	if err != nil {
		return err
	}
	var foreign []string
	for _, l := range items {
		if !r.flavor.Allows(l.Status) {
			foreign = append(foreign, fmt.Sprintf("%d:%s", l.ID, l.Status))
		}
	}
	if len(foreign) > 0 {
		return fmt.Errorf("%w (flavor %s): %s", ErrForeignStatus, r.flavor, strings.Join(foreign, ", "))
	}
	return nil
}
