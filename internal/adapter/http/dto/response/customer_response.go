package response

import (
	"liquidation_backoffice/internal/domain/entities"
	"liquidation_backoffice/internal/domain/query"
)

// CustomerResponse carries both name shapes so clients of either flavor can
// read it.
type CustomerResponse struct {
	ID          int64  `json:"id"`
	FirstName   string `json:"firstName,omitempty"`
	LastName    string `json:"lastName,omitempty"`
	FullName    string `json:"fullName,omitempty"`
	DisplayName string `json:"displayName"`
	Email       string `json:"email"`
	Phone       string `json:"phone"`
	IFU         string `json:"ifu"`
	Address     string `json:"address"`
	City        string `json:"city,omitempty"`
	CreatedAt   int64  `json:"createdAt"`
}

// PageResponse is the {content, totalElements} envelope of list endpoints.
type PageResponse[T any] struct {
	Content       []T `json:"content"`
	TotalElements int `json:"totalElements"`
}

func FromCustomer(c entities.Customer) CustomerResponse {
	return CustomerResponse{
		ID:          c.ID,
		FirstName:   c.FirstName,
		LastName:    c.LastName,
		FullName:    c.FullName,
		DisplayName: c.DisplayName(),
		Email:       c.Email,
		Phone:       c.Phone,
		IFU:         c.IFU,
		Address:     c.Address,
		City:        c.City,
		CreatedAt:   c.CreatedAt.Millis(),
	}
}

func FromCustomerPage(p query.Page[entities.Customer]) PageResponse[CustomerResponse] {
	content := make([]CustomerResponse, 0, len(p.Content))
	for _, c := range p.Content {
		content = append(content, FromCustomer(c))
	}
	return PageResponse[CustomerResponse]{Content: content, TotalElements: p.TotalElements}
}
