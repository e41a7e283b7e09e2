package entities

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCustomer_DisplayName(t *testing.T) {
	tests := []struct {
		name string
		c    Customer
		want string
	}{
		{"split", Customer{FirstName: "Jean", LastName: "Dupont"}, "Jean Dupont"},
		{"first only", Customer{FirstName: "Jean"}, "Jean"},
		{"full", Customer{FullName: " Awa Traoré "}, "Awa Traoré"},
		{"split wins", Customer{FirstName: "A", LastName: "B", FullName: "C"}, "A B"},
		{"empty", Customer{}, ""},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, tc.c.DisplayName())
		})
	}
}

func TestNormalizeNameFields(t *testing.T) {
	t.Run("split flavor splits fullName", func(t *testing.T) {
		fields := map[string]any{"fullName": "Jean  Paul Dupont"}
		NormalizeNameFields(NameFlavorSplit, fields)
		assert.Equal(t, "Jean", fields["firstName"])
		assert.Equal(t, "Paul Dupont", fields["lastName"])
		assert.NotContains(t, fields, "fullName")
	})

	t.Run("full flavor joins parts", func(t *testing.T) {
		fields := map[string]any{"firstName": "Jean", "lastName": "Dupont"}
		NormalizeNameFields(NameFlavorFull, fields)
		assert.Equal(t, "Jean Dupont", fields["fullName"])
		assert.NotContains(t, fields, "firstName")
		assert.NotContains(t, fields, "lastName")
	})

	t.Run("partial patch untouched", func(t *testing.T) {
		fields := map[string]any{"email": "a@b.c"}
		NormalizeNameFields(NameFlavorSplit, fields)
		assert.Equal(t, map[string]any{"email": "a@b.c"}, fields)
	})
}

func TestParseNameFlavor(t *testing.T) {
	f, err := ParseNameFlavor("FULL")
	require.NoError(t, err)
	assert.Equal(t, NameFlavorFull, f)

	f, err = ParseNameFlavor("")
	require.NoError(t, err)
	assert.Equal(t, NameFlavorSplit, f)

	_, err = ParseNameFlavor("nick")
	assert.Error(t, err)
}

func TestTimestamp_JSON(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  int64
	}{
		{"millis number", `1706659200000`, 1706659200000},
		{"millis string", `"1706659200000"`, 1706659200000},
		{"date", `"2024-01-31"`, 1706659200000},
		{"rfc3339", `"2024-01-31T00:00:00Z"`, 1706659200000},
		{"rfc3339 offset", `"2024-01-31T01:00:00+01:00"`, 1706659200000},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			var ts Timestamp
			require.NoError(t, json.Unmarshal([]byte(tc.input), &ts))
			assert.Equal(t, tc.want, ts.Millis())
		})
	}

	var ts Timestamp
	require.NoError(t, json.Unmarshal([]byte(`null`), &ts))
	assert.True(t, ts.IsZero())
	assert.ErrorIs(t, json.Unmarshal([]byte(`"tomorrow"`), &ts), ErrInvalidTimestamp)

	b, err := json.Marshal(TimestampFromMillis(1706659200000))
	require.NoError(t, err)
	assert.Equal(t, "1706659200000", string(b))

	b, err = json.Marshal(Timestamp{})
	require.NoError(t, err)
	assert.Equal(t, "null", string(b))
}

func TestStartOfDay(t *testing.T) {
	in := time.Date(2024, 5, 6, 23, 59, 59, 999, time.UTC)
	assert.Equal(t, time.Date(2024, 5, 6, 0, 0, 0, 0, time.UTC), StartOfDay(in, nil))
}
