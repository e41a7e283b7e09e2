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

const (
	pathCustomers      = "/customers"
	pathCustomerSearch = "/customers/search"
)

// CustomerHTTPRepository reads and writes customers through the API.
type CustomerHTTPRepository struct {
	client *Client
}

var _ interfaces.ICustomerRepository = (*CustomerHTTPRepository)(nil)

func NewCustomerHTTPRepository(client *Client) *CustomerHTTPRepository {
	return &CustomerHTTPRepository{client: client}
}

func (r *CustomerHTTPRepository) List(ctx context.Context, filter entities.CustomerFilter) (query.Page[entities.Customer], error) {
	q := url.Values{}
	path := pathCustomers
	if filter.Text != "" {
		q.Set("q", filter.Text)
		path = pathCustomerSearch
	}
	setPaging(q, filter.Page, filter.Size)

	var page query.Page[entities.Customer]
	if err := r.client.do(ctx, http.MethodGet, path, q, nil, &page); err != nil {
		return query.Page[entities.Customer]{}, err
	}
	if page.Content == nil {
		page.Content = []entities.Customer{}
	}
	return page, nil
}

func (r *CustomerHTTPRepository) GetByID(ctx context.Context, id int64) (entities.Customer, error) {
	var c entities.Customer
	err := r.client.do(ctx, http.MethodGet, customerPath(id), nil, nil, &c)
	if IsNotFound(err) {
		return entities.Customer{}, nil
	}
	return c, err
}

func (r *CustomerHTTPRepository) Create(ctx context.Context, fields map[string]any) (entities.Customer, error) {
	var c entities.Customer
	err := r.client.do(ctx, http.MethodPost, pathCustomers, nil, fields, &c)
	return c, err
}

func (r *CustomerHTTPRepository) Update(ctx context.Context, id int64, patch map[string]any) (entities.Customer, error) {
	var c entities.Customer
	err := r.client.do(ctx, http.MethodPut, customerPath(id), nil, patch, &c)
	if IsNotFound(err) {
		return entities.Customer{}, nil
	}
	return c, err
}

func (r *CustomerHTTPRepository) Delete(ctx context.Context, id int64) error {
	err := r.client.do(ctx, http.MethodDelete, customerPath(id), nil, nil, nil)
	if IsNotFound(err) {
		return nil
	}
	return err
}

func customerPath(id int64) string {
	return pathCustomers + "/" + strconv.FormatInt(id, 10)
}

func setPaging(q url.Values, page, size int) {
	if page > 0 {
		q.Set("page", strconv.Itoa(page))
	}
	if size > 0 {
		q.Set("size", strconv.Itoa(size))
	}
}
