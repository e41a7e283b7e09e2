package usecase

import (
	"context"
	"errors"
	"fmt"

	"liquidation_backoffice/internal/domain/entities"
	"liquidation_backoffice/internal/domain/query"
	"liquidation_backoffice/internal/usecase/interfaces"

	"go.uber.org/zap"
)

var (
	ErrCustomerNotFound       = errors.New("customer not found")
	ErrInvalidCustomerID      = errors.New("invalid customer id")
	ErrInvalidCustomerPayload = errors.New("invalid customer payload")
)

// ICustomerUseCase exposes customer operations.
//
// Search matches free text over first/last/full name, email, phone, city,
// ifu and address.

type ICustomerUseCase interface {
	List(ctx context.Context, filter entities.CustomerFilter) (query.Page[entities.Customer], error)
	Search(ctx context.Context, text string, page, size int) (query.Page[entities.Customer], error)
	GetByID(ctx context.Context, id int64) (entities.Customer, error)
	Create(ctx context.Context, fields map[string]any) (entities.Customer, error)
	Update(ctx context.Context, id int64, patch map[string]any) (entities.Customer, error)
	Delete(ctx context.Context, id int64) error
}

type CustomerUseCase struct {
	repo   interfaces.ICustomerRepository
	logger *zap.Logger
}

var _ ICustomerUseCase = (*CustomerUseCase)(nil)

func NewCustomerUseCase(repo interfaces.ICustomerRepository, logger *zap.Logger) *CustomerUseCase {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &CustomerUseCase{repo: repo, logger: logger.Named("customer")}
}

func (u *CustomerUseCase) List(ctx context.Context, filter entities.CustomerFilter) (query.Page[entities.Customer], error) {
	return u.repo.List(ctx, filter)
}

func (u *CustomerUseCase) Search(ctx context.Context, text string, page, size int) (query.Page[entities.Customer], error) {
	return u.repo.List(ctx, entities.CustomerFilter{Text: text, Page: page, Size: size})
}

func (u *CustomerUseCase) GetByID(ctx context.Context, id int64) (entities.Customer, error) {
	if id <= 0 {
		return entities.Customer{}, ErrInvalidCustomerID
	}
	c, err := u.repo.GetByID(ctx, id)
	if err != nil {
		return entities.Customer{}, err
	}
	if c.ID == 0 {
		return entities.Customer{}, ErrCustomerNotFound
	}
	return c, nil
}

func (u *CustomerUseCase) Create(ctx context.Context, fields map[string]any) (entities.Customer, error) {
	if fields == nil {
		return entities.Customer{}, ErrInvalidCustomerPayload
	}
	c, err := u.repo.Create(ctx, fields)
	if err != nil {
		u.logger.Error("create failed", zap.Error(err))
		return entities.Customer{}, fmt.Errorf("create customer: %w", err)
	}
	u.logger.Info("customer created", zap.Int64("customer_id", c.ID))
	return c, nil
}

func (u *CustomerUseCase) Update(ctx context.Context, id int64, patch map[string]any) (entities.Customer, error) {
	if id <= 0 {
		return entities.Customer{}, ErrInvalidCustomerID
	}
	if patch == nil {
		return entities.Customer{}, ErrInvalidCustomerPayload
	}
	c, err := u.repo.Update(ctx, id, patch)
	if err != nil {
		u.logger.Error("update failed", zap.Int64("customer_id", id), zap.Error(err))
		return entities.Customer{}, fmt.Errorf("update customer %d: %w", id, err)
	}
	if c.ID == 0 {
		return entities.Customer{}, ErrCustomerNotFound
	}
	return c, nil
}

// Delete never cascades to liquidations.
func (u *CustomerUseCase) Delete(ctx context.Context, id int64) error {
	if id <= 0 {
		return ErrInvalidCustomerID
	}
	if err := u.repo.Delete(ctx, id); err != nil {
		u.logger.Error("delete failed", zap.Int64("customer_id", id), zap.Error(err))
		return fmt.Errorf("delete customer %d: %w", id, err)
	}
	u.logger.Info("customer deleted", zap.Int64("customer_id", id))
	return nil
}
