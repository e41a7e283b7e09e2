package repository

import (
	"time"

	"liquidation_backoffice/internal/domain/entities"

	"github.com/shopspring/decimal"
)

func seedDay(y int, m time.Month, d int) entities.Timestamp {
	return entities.NewTimestamp(time.Date(y, m, d, 9, 0, 0, 0, time.UTC))
}

// SeedCustomers is the first-run customer collection, newest first.
func SeedCustomers(flavor entities.NameFlavor) []entities.Customer {
	seed := []entities.Customer{
		{ID: 4, FirstName: "David", LastName: "Morel", Email: "david@example.com", Phone: "+33 6 98 76 54 32", IFU: "IFU-000004", Address: "12 rue Nationale", City: "Lille", CreatedAt: seedDay(2024, 1, 9)},
		{ID: 3, FirstName: "Camille", LastName: "Leroy", Email: "camille@example.com", Phone: "+33 7 55 44 33 22", IFU: "IFU-000003", Address: "3 quai du Port", City: "Marseille", CreatedAt: seedDay(2024, 1, 2)},
		{ID: 2, FirstName: "Bob", LastName: "Dupont", Email: "bob@example.com", Phone: "+33 6 22 33 44 55", IFU: "IFU-000002", Address: "8 place Bellecour", City: "Lyon", CreatedAt: seedDay(2024, 1, 8)},
		{ID: 1, FirstName: "Alice", LastName: "Martin", Email: "alice@example.com", Phone: "+33 6 12 34 56 78", IFU: "IFU-000001", Address: "21 rue de Rivoli", City: "Paris", CreatedAt: seedDay(2024, 1, 5)},
	}
	if flavor == entities.NameFlavorFull {
		for i := range seed {
			seed[i].FullName = seed[i].DisplayName()
			seed[i].FirstName, seed[i].LastName = "", ""
		}
	}
	return seed
}

// SeedLiquidations is the first-run liquidation collection, newest first.
func SeedLiquidations() []entities.Liquidation {
	return []entities.Liquidation{
		{
			ID: 2, Code: entities.LiquidationCode(2), CustomerID: 2, TaxType: "IS",
			Amount:    decimal.NewFromInt(12000),
			IssueDate: seedDay(2024, 2, 1), DueDate: seedDay(2024, 2, 29),
			Status: entities.LiquidationStatusPaid, CreatedAt: seedDay(2024, 2, 1),
		},
		{
			ID: 1, Code: entities.LiquidationCode(1), CustomerID: 1, TaxType: "TVA",
			Amount:    decimal.NewFromInt(5000),
			IssueDate: seedDay(2024, 1, 1), DueDate: seedDay(2024, 1, 31),
			Status: entities.LiquidationStatusPending, CreatedAt: seedDay(2024, 1, 1),
		},
	}
}
