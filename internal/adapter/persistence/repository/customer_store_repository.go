package repository

import (
	"context"

	"liquidation_backoffice/internal/adapter/persistence/store"
	"liquidation_backoffice/internal/domain/entities"
	"liquidation_backoffice/internal/domain/query"
	"liquidation_backoffice/internal/usecase/interfaces"
)

// CustomerStoreRepository keeps customers in an entity store.
//
// New customers are listed first. The name flavor decides which name fields
// are persisted; payloads in the other shape are converted on the way in.

type CustomerStoreRepository struct {
	store  *store.EntityStore[entities.Customer]
	flavor entities.NameFlavor
}

var _ interfaces.ICustomerRepository = (*CustomerStoreRepository)(nil)

func NewCustomerStoreRepository(kv interfaces.IKeyValueStore, flavor entities.NameFlavor, cfg StoreConfig) *CustomerStoreRepository {
	schema := store.Schema[entities.Customer]{
		Key: cfg.key(DefaultCustomersKey),
		Fields: map[string]store.Coercer{
			"firstName": store.String,
			"lastName":  store.String,
			"fullName":  store.String,
			"email":     store.String,
			"phone":     store.String,
			"ifu":       store.String,
			"address":   store.String,
			"city":      store.String,
		},
	}
	if cfg.Seed {
		schema.Seed = func() []entities.Customer { return SeedCustomers(flavor) }
	}

	return &CustomerStoreRepository{
		store: store.NewEntityStore(kv, schema,
			store.WithLogger[entities.Customer](cfg.logger()),
			store.WithClock[entities.Customer](cfg.now()),
		),
		flavor: flavor,
	}
}

func (r *CustomerStoreRepository) List(ctx context.Context, filter entities.CustomerFilter) (query.Page[entities.Customer], error) {
	items, err := r.store.Load(ctx)
	if err != nil {
		return query.Page[entities.Customer]{}, err
	}
	return query.Apply(items, query.Params{
		FreeText:   filter.Text,
		TextFields: entities.CustomerTextFields,
		Page:       filter.Page,
		Size:       filter.Size,
	}), nil
}

func (r *CustomerStoreRepository) GetByID(ctx context.Context, id int64) (entities.Customer, error) {
	c, _, err := r.store.Get(ctx, id)
	return c, err
}

func (r *CustomerStoreRepository) Create(ctx context.Context, fields map[string]any) (entities.Customer, error) {
	return r.store.Create(ctx, r.normalize(fields))
}

func (r *CustomerStoreRepository) Update(ctx context.Context, id int64, patch map[string]any) (entities.Customer, error) {
	c, _, err := r.store.Update(ctx, id, r.normalize(patch))
	return c, err
}

func (r *CustomerStoreRepository) Delete(ctx context.Context, id int64) error {
	_, err := r.store.Remove(ctx, id)
	return err
}

func (r *CustomerStoreRepository) normalize(fields map[string]any) map[string]any {
	out := make(map[string]any, len(fields))
	for k, v := range fields {
		out[k] = v
	}
	entities.NormalizeNameFields(r.flavor, out)
	return out
}
