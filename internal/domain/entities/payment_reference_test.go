package entities

import (
	"strings"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuildPaymentReference(t *testing.T) {
	l := Liquidation{
		ID:         3,
		CustomerID: 1,
		TaxType:    "IS",
		Amount:     decimal.RequireFromString("1250.50"),
		IssueDate:  day("2024-01-01"),
		DueDate:    day("2024-01-31"),
		Status:     LiquidationStatusPending,
	}
	c := &Customer{ID: 1, FirstName: "Jean", LastName: "Dupont"}

	ref := BuildPaymentReference(l, c)
	assert.Equal(t, "LQ-0003", ref.Reference)
	assert.Equal(t, "Jean Dupont", ref.CustomerName)
	assert.Equal(t, "1250.5", ref.Amount)
	assert.Equal(t, "2024-01-01", ref.IssueDate)
	assert.Equal(t, "2024-01-31", ref.DueDate)
	assert.Equal(t, "PENDING", ref.Status)

	first, err := ref.Encode()
	require.NoError(t, err)
	second, err := BuildPaymentReference(l, c).Encode()
	require.NoError(t, err)
	assert.Equal(t, first, second)
	assert.Equal(t,
		`{"reference":"LQ-0003","id":3,"customerId":1,"customerName":"Jean Dupont","taxType":"IS","amount":"1250.5","issueDate":"2024-01-01","dueDate":"2024-01-31","status":"PENDING"}`,
		first)

	t.Run("unknown customer", func(t *testing.T) {
		assert.Equal(t, UnknownCustomerName, BuildPaymentReference(l, nil).CustomerName)
		assert.Equal(t, UnknownCustomerName, BuildPaymentReference(l, &Customer{}).CustomerName)
	})

	t.Run("regenerated keeps fields", func(t *testing.T) {
		tagged, err := ref.Regenerated(1700000000000)
		require.NoError(t, err)
		assert.True(t, strings.HasPrefix(tagged, first))
		assert.True(t, strings.HasSuffix(tagged, "_1700000000000"))
		assert.Equal(t, "LQ-0003", ref.Reference)
	})
}
