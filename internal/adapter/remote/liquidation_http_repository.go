package remote

import (
	"context"
	"net/http"
	"net/url"
	"strconv"

	"liquidation_backoffice/internal/domain/entities"
	"liquidation_backoffice/internal/domain/query"
	"liquidation_backoffice/internal/usecase/interfaces"
)

const pathLiquidations = "/liquidations"

// LiquidationHTTPRepository reads and writes liquidations through the API.
// Fields the API adds to its views (customerName, overdue, ...) are ignored.
type LiquidationHTTPRepository struct {
	client *Client
}

var _ interfaces.ILiquidationRepository = (*LiquidationHTTPRepository)(nil)

func NewLiquidationHTTPRepository(client *Client) *LiquidationHTTPRepository {
	return &LiquidationHTTPRepository{client: client}
}

func (r *LiquidationHTTPRepository) List(ctx context.Context, filter entities.LiquidationFilter) (query.Page[entities.Liquidation], error) {
	var page query.Page[entities.Liquidation]
	if err := r.client.do(ctx, http.MethodGet, pathLiquidations, liquidationQuery(filter), nil, &page); err != nil {
		return query.Page[entities.Liquidation]{}, err
	}
	if page.Content == nil {
		page.Content = []entities.Liquidation{}
	}
	return page, nil
}

func (r *LiquidationHTTPRepository) GetByID(ctx context.Context, id int64) (entities.Liquidation, error) {
	var l entities.Liquidation
	err := r.client.do(ctx, http.MethodGet, liquidationPath(id), nil, nil, &l)
	if IsNotFound(err) {
		return entities.Liquidation{}, nil
	}
	return l, err
}

func (r *LiquidationHTTPRepository) ListByCustomerID(ctx context.Context, customerID int64) ([]entities.Liquidation, error) {
	items := []entities.Liquidation{}
	path := pathLiquidations + "/customer/" + strconv.FormatInt(customerID, 10)
	if err := r.client.do(ctx, http.MethodGet, path, nil, nil, &items); err != nil {
		if IsNotFound(err) {
			return []entities.Liquidation{}, nil
		}
		return nil, err
	}
	return items, nil
}

func (r *LiquidationHTTPRepository) Create(ctx context.Context, fields map[string]any) (entities.Liquidation, error) {
	var l entities.Liquidation
	err := r.client.do(ctx, http.MethodPost, pathLiquidations, nil, fields, &l)
	return l, err
}

func (r *LiquidationHTTPRepository) Update(ctx context.Context, id int64, patch map[string]any) (entities.Liquidation, error) {
	var l entities.Liquidation
	err := r.client.do(ctx, http.MethodPut, liquidationPath(id), nil, patch, &l)
	if IsNotFound(err) {
		return entities.Liquidation{}, nil
	}
	return l, err
}

func (r *LiquidationHTTPRepository) Pay(ctx context.Context, id int64) (entities.Liquidation, error) {
	var l entities.Liquidation
	err := r.client.do(ctx, http.MethodPut, liquidationPath(id)+"/pay", nil, nil, &l)
	if IsNotFound(err) {
		return entities.Liquidation{}, nil
	}
	return l, err
}

func (r *LiquidationHTTPRepository) Delete(ctx context.Context, id int64) error {
	err := r.client.do(ctx, http.MethodDelete, liquidationPath(id), nil, nil, nil)
	if IsNotFound(err) {
		return nil
	}
	return err
}

func liquidationPath(id int64) string {
	return pathLiquidations + "/" + strconv.FormatInt(id, 10)
}

func liquidationQuery(f entities.LiquidationFilter) url.Values {
	q := url.Values{}
	if f.Text != "" {
		q.Set("q", f.Text)
	}
	if f.Status != "" {
		q.Set("status", f.Status)
	}
	if f.CustomerID > 0 {
		q.Set("customerId", strconv.FormatInt(f.CustomerID, 10))
	}
	if f.DateField != "" {
		q.Set("dateField", f.DateField)
	}
	if !f.From.IsZero() {
		q.Set("startDate", f.From.Format("2006-01-02"))
	}
	if !f.To.IsZero() {
		q.Set("endDate", f.To.Format("2006-01-02"))
	}
	setPaging(q, f.Page, f.Size)
	return q
}
