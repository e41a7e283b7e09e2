package usecase

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"liquidation_backoffice/internal/domain/entities"
	"liquidation_backoffice/internal/domain/query"
	"liquidation_backoffice/internal/usecase/interfaces"
	mock_interfaces "liquidation_backoffice/internal/usecase/interfaces/mocks"

	"github.com/shopspring/decimal"
	"go.uber.org/mock/gomock"
)

var testNow = time.Date(2024, 2, 10, 12, 0, 0, 0, time.UTC)

type liquidationDeps struct {
	repo      *mock_interfaces.MockILiquidationRepository
	customers *mock_interfaces.MockICustomerRepository
	gateway   *mock_interfaces.MockIPaymentGateway
	renderer  *mock_interfaces.MockIPaymentReferenceRenderer
}

func newLiquidationUseCase(t *testing.T, flavor entities.StatusFlavor, withGateway bool) (*LiquidationUseCase, liquidationDeps) {
	t.Helper()
	ctrl := gomock.NewController(t)
	deps := liquidationDeps{
		repo:      mock_interfaces.NewMockILiquidationRepository(ctrl),
		customers: mock_interfaces.NewMockICustomerRepository(ctrl),
		gateway:   mock_interfaces.NewMockIPaymentGateway(ctrl),
		renderer:  mock_interfaces.NewMockIPaymentReferenceRenderer(ctrl),
	}
	var gateway interfaces.IPaymentGateway
	if withGateway {
		gateway = deps.gateway
	}
	uc := NewLiquidationUseCase(deps.repo, deps.customers, gateway, deps.renderer, LiquidationConfig{
		Flavor:           flavor,
		DefaultDailyRate: decimal.RequireFromString("0.01"),
		Now:              func() time.Time { return testNow },
	})
	return uc, deps
}

func sampleLiquidation() entities.Liquidation {
	due, _ := entities.ParseTimestamp("2024-01-31")
	issue, _ := entities.ParseTimestamp("2024-01-01")
	return entities.Liquidation{
		ID:         1,
		Code:       "LQ-0001",
		CustomerID: 1,
		TaxType:    "TVA",
		Amount:     decimal.NewFromInt(5000),
		IssueDate:  issue,
		DueDate:    due,
		Status:     entities.LiquidationStatusPending,
	}
}

var jean = entities.Customer{ID: 1, FirstName: "Jean", LastName: "Dupont", Email: "jean@example.com"}

func TestLiquidationUseCase_Create(t *testing.T) {
	t.Run("missing customer id", func(t *testing.T) {
		uc, _ := newLiquidationUseCase(t, entities.StatusFlavorLocal, false)
		_, err := uc.Create(context.Background(), map[string]any{"amount": 10})
		if !errors.Is(err, ErrInvalidCustomerID) {
			t.Fatalf("expected ErrInvalidCustomerID, got %v", err)
		}
	})

	t.Run("status outside vocabulary", func(t *testing.T) {
		uc, _ := newLiquidationUseCase(t, entities.StatusFlavorLocal, false)
		_, err := uc.Create(context.Background(), map[string]any{"customerId": 1, "status": "OVERDUE"})
		if !errors.Is(err, ErrStatusOutsideVocabulary) {
			t.Fatalf("expected ErrStatusOutsideVocabulary, got %v", err)
		}
	})

	t.Run("unknown customer", func(t *testing.T) {
		uc, deps := newLiquidationUseCase(t, entities.StatusFlavorLocal, false)
		deps.customers.EXPECT().GetByID(gomock.Any(), int64(7)).Return(entities.Customer{}, nil)

		_, err := uc.Create(context.Background(), map[string]any{"customerId": float64(7)})
		if !errors.Is(err, ErrCustomerNotFound) {
			t.Fatalf("expected ErrCustomerNotFound, got %v", err)
		}
	})

	t.Run("success", func(t *testing.T) {
		uc, deps := newLiquidationUseCase(t, entities.StatusFlavorAPI, false)
		fields := map[string]any{"customerId": "1", "amount": 5000, "taxType": "TVA", "status": "overdue"}

		deps.customers.EXPECT().GetByID(gomock.Any(), int64(1)).Return(jean, nil)
		deps.repo.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, f map[string]any) (entities.Liquidation, error) {
				if f["status"] != "OVERDUE" {
					t.Fatalf("expected normalized status, got %v", f["status"])
				}
				return sampleLiquidation(), nil
			},
		)

		v, err := uc.Create(context.Background(), fields)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if v.CustomerName != "Jean Dupont" || v.ID != 1 {
			t.Fatalf("unexpected view: %+v", v)
		}
	})
}

func TestLiquidationUseCase_Update(t *testing.T) {
	t.Run("backward transition allowed", func(t *testing.T) {
		uc, deps := newLiquidationUseCase(t, entities.StatusFlavorLocal, false)
		l := sampleLiquidation()
		deps.repo.EXPECT().Update(gomock.Any(), int64(1), map[string]any{"status": "PENDING"}).Return(l, nil)
		deps.customers.EXPECT().GetByID(gomock.Any(), int64(1)).Return(jean, nil)

		v, err := uc.Update(context.Background(), 1, map[string]any{"status": "pending"})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if v.Status != entities.LiquidationStatusPending {
			t.Fatalf("unexpected status %s", v.Status)
		}
	})

	t.Run("foreign status", func(t *testing.T) {
		uc, _ := newLiquidationUseCase(t, entities.StatusFlavorAPI, false)
		_, err := uc.Update(context.Background(), 1, map[string]any{"status": "CANCELLED"})
		if !errors.Is(err, ErrStatusOutsideVocabulary) {
			t.Fatalf("expected ErrStatusOutsideVocabulary, got %v", err)
		}
	})

	t.Run("not found", func(t *testing.T) {
		uc, deps := newLiquidationUseCase(t, entities.StatusFlavorLocal, false)
		deps.repo.EXPECT().Update(gomock.Any(), int64(5), gomock.Any()).Return(entities.Liquidation{}, nil)

		_, err := uc.Update(context.Background(), 5, map[string]any{"taxType": "IS"})
		if !errors.Is(err, ErrLiquidationNotFound) {
			t.Fatalf("expected ErrLiquidationNotFound, got %v", err)
		}
	})
}

func TestLiquidationUseCase_Pay(t *testing.T) {
	t.Run("without gateway", func(t *testing.T) {
		uc, deps := newLiquidationUseCase(t, entities.StatusFlavorLocal, false)
		l := sampleLiquidation()
		paid := l
		paid.Status = entities.LiquidationStatusPaid

		deps.repo.EXPECT().GetByID(gomock.Any(), int64(1)).Return(l, nil)
		deps.repo.EXPECT().Pay(gomock.Any(), int64(1)).Return(paid, nil)
		deps.customers.EXPECT().GetByID(gomock.Any(), int64(1)).Return(jean, nil)

		v, err := uc.Pay(context.Background(), 1)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if v.Status != entities.LiquidationStatusPaid || v.Overdue {
			t.Fatalf("unexpected view: %+v", v)
		}
	})

	t.Run("gateway charges unpaid liquidation", func(t *testing.T) {
		uc, deps := newLiquidationUseCase(t, entities.StatusFlavorLocal, true)
		l := sampleLiquidation()
		paid := l
		paid.Status = entities.LiquidationStatusPaid

		deps.repo.EXPECT().GetByID(gomock.Any(), int64(1)).Return(l, nil)
		deps.customers.EXPECT().GetByID(gomock.Any(), int64(1)).Return(jean, nil).Times(2)
		deps.gateway.EXPECT().CreatePayment(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, c interfaces.PaymentCharge) (interfaces.PaymentReceipt, error) {
				if c.ExternalReference != "LQ-0001" || !c.Amount.Equal(decimal.NewFromInt(5000)) || c.PayerEmail != "jean@example.com" {
					t.Fatalf("unexpected charge: %+v", c)
				}
				return interfaces.PaymentReceipt{ProviderPaymentID: "123", Status: "approved"}, nil
			},
		)
		deps.repo.EXPECT().Pay(gomock.Any(), int64(1)).Return(paid, nil)

		if _, err := uc.Pay(context.Background(), 1); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})

	t.Run("gateway failure leaves status", func(t *testing.T) {
		uc, deps := newLiquidationUseCase(t, entities.StatusFlavorLocal, true)
		deps.repo.EXPECT().GetByID(gomock.Any(), int64(1)).Return(sampleLiquidation(), nil)
		deps.customers.EXPECT().GetByID(gomock.Any(), int64(1)).Return(jean, nil)
		deps.gateway.EXPECT().CreatePayment(gomock.Any(), gomock.Any()).Return(interfaces.PaymentReceipt{}, errors.New(`{"status":400}`))

		_, err := uc.Pay(context.Background(), 1)
		if !errors.Is(err, ErrPaymentDeclined) {
			t.Fatalf("expected ErrPaymentDeclined, got %v", err)
		}
	})

	t.Run("already paid skips gateway", func(t *testing.T) {
		uc, deps := newLiquidationUseCase(t, entities.StatusFlavorLocal, true)
		l := sampleLiquidation()
		l.Status = entities.LiquidationStatusPaid

		deps.repo.EXPECT().GetByID(gomock.Any(), int64(1)).Return(l, nil)
		deps.repo.EXPECT().Pay(gomock.Any(), int64(1)).Return(l, nil)
		deps.customers.EXPECT().GetByID(gomock.Any(), int64(1)).Return(jean, nil)

		if _, err := uc.Pay(context.Background(), 1); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})

	t.Run("not found", func(t *testing.T) {
		uc, deps := newLiquidationUseCase(t, entities.StatusFlavorLocal, true)
		deps.repo.EXPECT().GetByID(gomock.Any(), int64(2)).Return(entities.Liquidation{}, nil)

		_, err := uc.Pay(context.Background(), 2)
		if !errors.Is(err, ErrLiquidationNotFound) {
			t.Fatalf("expected ErrLiquidationNotFound, got %v", err)
		}
	})
}

func TestLiquidationUseCase_Delete(t *testing.T) {
	t.Run("api flavor", func(t *testing.T) {
		uc, _ := newLiquidationUseCase(t, entities.StatusFlavorAPI, false)
		if err := uc.Delete(context.Background(), 1); !errors.Is(err, ErrDeleteNotSupported) {
			t.Fatalf("expected ErrDeleteNotSupported, got %v", err)
		}
	})

	t.Run("local flavor", func(t *testing.T) {
		uc, deps := newLiquidationUseCase(t, entities.StatusFlavorLocal, false)
		deps.repo.EXPECT().Delete(gomock.Any(), int64(1)).Return(nil)
		if err := uc.Delete(context.Background(), 1); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})
}

func TestLiquidationUseCase_ListEnrichment(t *testing.T) {
	uc, deps := newLiquidationUseCase(t, entities.StatusFlavorLocal, false)
	orphan := sampleLiquidation()
	orphan.ID, orphan.CustomerID = 2, 99
	failing := sampleLiquidation()
	failing.ID, failing.CustomerID = 3, 50

	deps.repo.EXPECT().List(gomock.Any(), entities.LiquidationFilter{Status: "PENDING"}).Return(
		query.Page[entities.Liquidation]{Content: []entities.Liquidation{sampleLiquidation(), orphan, failing}, TotalElements: 3}, nil)
	deps.customers.EXPECT().GetByID(gomock.Any(), int64(1)).Return(jean, nil)
	deps.customers.EXPECT().GetByID(gomock.Any(), int64(99)).Return(entities.Customer{}, nil)
	deps.customers.EXPECT().GetByID(gomock.Any(), int64(50)).Return(entities.Customer{}, errors.New("timeout"))

	page, err := uc.List(context.Background(), entities.LiquidationFilter{Status: "PENDING"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if page.TotalElements != 3 || len(page.Content) != 3 {
		t.Fatalf("unexpected page: %+v", page)
	}
	want := []string{"Jean Dupont", entities.UnknownCustomerName, entities.UnknownCustomerName}
	for i, v := range page.Content {
		if v.CustomerName != want[i] {
			t.Fatalf("item %d: expected %q, got %q", i, want[i], v.CustomerName)
		}
		if !v.Overdue || v.DisplayStatus != entities.LiquidationStatusOverdue {
			t.Fatalf("item %d should be overdue: %+v", i, v)
		}
		if v.Status != entities.LiquidationStatusPending {
			t.Fatalf("item %d: persisted status changed to %s", i, v.Status)
		}
	}
}

func TestLiquidationUseCase_ListMatchesCustomerName(t *testing.T) {
	t.Run("name hits are passed to the repository", func(t *testing.T) {
		uc, deps := newLiquidationUseCase(t, entities.StatusFlavorLocal, false)
		alice := entities.Customer{ID: 4, FirstName: "Alice", LastName: "Martin"}

		deps.customers.EXPECT().List(gomock.Any(), entities.CustomerFilter{}).Return(
			query.Page[entities.Customer]{Content: []entities.Customer{alice, jean}, TotalElements: 2}, nil)
		deps.repo.EXPECT().List(gomock.Any(), entities.LiquidationFilter{Text: "dupont", TextCustomerIDs: []int64{1}}).Return(
			query.Page[entities.Liquidation]{Content: []entities.Liquidation{sampleLiquidation()}, TotalElements: 1}, nil)
		deps.customers.EXPECT().GetByID(gomock.Any(), int64(1)).Return(jean, nil)

		page, err := uc.List(context.Background(), entities.LiquidationFilter{Text: "dupont"})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if page.TotalElements != 1 || page.Content[0].CustomerName != "Jean Dupont" {
			t.Fatalf("unexpected page: %+v", page)
		}
	})

	t.Run("customer lookup failure keeps the plain text search", func(t *testing.T) {
		uc, deps := newLiquidationUseCase(t, entities.StatusFlavorLocal, false)
		deps.customers.EXPECT().List(gomock.Any(), gomock.Any()).Return(query.Page[entities.Customer]{}, errors.New("down"))
		deps.repo.EXPECT().List(gomock.Any(), entities.LiquidationFilter{Text: "tva"}).Return(
			query.Page[entities.Liquidation]{Content: []entities.Liquidation{}}, nil)

		if _, err := uc.List(context.Background(), entities.LiquidationFilter{Text: "tva"}); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})
}

func TestLiquidationUseCase_Penalty(t *testing.T) {
	t.Run("default rate", func(t *testing.T) {
		uc, deps := newLiquidationUseCase(t, entities.StatusFlavorLocal, false)
		deps.repo.EXPECT().GetByID(gomock.Any(), int64(1)).Return(sampleLiquidation(), nil)

		res, err := uc.Penalty(context.Background(), 1, "")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		// 5000 * 0.01 * 10 days
		if res.DaysLate != 10 || !res.Penalty.Equal(decimal.NewFromInt(500)) {
			t.Fatalf("unexpected result: %+v", res)
		}
	})

	t.Run("zero rate", func(t *testing.T) {
		uc, deps := newLiquidationUseCase(t, entities.StatusFlavorLocal, false)
		deps.repo.EXPECT().GetByID(gomock.Any(), int64(1)).Return(sampleLiquidation(), nil)

		res, err := uc.Penalty(context.Background(), 1, "0")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !res.Penalty.IsZero() {
			t.Fatalf("expected zero penalty, got %s", res.Penalty)
		}
	})

	t.Run("invalid rates", func(t *testing.T) {
		uc, _ := newLiquidationUseCase(t, entities.StatusFlavorLocal, false)
		for _, rate := range []string{"-0.1", "abc"} {
			if _, err := uc.Penalty(context.Background(), 1, rate); !errors.Is(err, ErrInvalidDailyRate) {
				t.Fatalf("rate %q: expected ErrInvalidDailyRate, got %v", rate, err)
			}
		}
	})
}

func TestLiquidationUseCase_PaymentReference(t *testing.T) {
	t.Run("stable encoding", func(t *testing.T) {
		uc, deps := newLiquidationUseCase(t, entities.StatusFlavorLocal, false)
		deps.repo.EXPECT().GetByID(gomock.Any(), int64(1)).Return(sampleLiquidation(), nil).Times(2)
		deps.customers.EXPECT().GetByID(gomock.Any(), int64(1)).Return(jean, nil).Times(2)

		first, err := uc.PaymentReference(context.Background(), 1, false)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		second, _ := uc.PaymentReference(context.Background(), 1, false)
		if first.Encoded != second.Encoded {
			t.Fatalf("expected identical payloads:\n%s\n%s", first.Encoded, second.Encoded)
		}
	})

	t.Run("regenerate tags payload", func(t *testing.T) {
		uc, deps := newLiquidationUseCase(t, entities.StatusFlavorLocal, false)
		deps.repo.EXPECT().GetByID(gomock.Any(), int64(1)).Return(sampleLiquidation(), nil)
		deps.customers.EXPECT().GetByID(gomock.Any(), int64(1)).Return(entities.Customer{}, nil)

		res, err := uc.PaymentReference(context.Background(), 1, true)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !strings.HasSuffix(res.Encoded, "_1707566400000") {
			t.Fatalf("expected millis suffix, got %s", res.Encoded)
		}
		if res.Payload.CustomerName != entities.UnknownCustomerName {
			t.Fatalf("expected placeholder name, got %s", res.Payload.CustomerName)
		}
	})

	t.Run("render", func(t *testing.T) {
		uc, deps := newLiquidationUseCase(t, entities.StatusFlavorLocal, false)
		deps.repo.EXPECT().GetByID(gomock.Any(), int64(1)).Return(sampleLiquidation(), nil)
		deps.customers.EXPECT().GetByID(gomock.Any(), int64(1)).Return(jean, nil)
		deps.renderer.EXPECT().Render(gomock.Any(), 256, "M").Return([]byte("png"), nil)

		img, err := uc.RenderPaymentReference(context.Background(), 1, 256, "M")
		if err != nil || string(img) != "png" {
			t.Fatalf("unexpected result: %q %v", img, err)
		}
	})
}
