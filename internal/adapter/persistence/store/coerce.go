package store

import (
	"encoding/json"
	"fmt"
	"math"
	"strconv"
	"strings"

	"liquidation_backoffice/internal/domain/entities"

	"github.com/shopspring/decimal"
)

// Coercer converts a loosely typed payload value into the canonical value
// stored for a field. It returns false when the value cannot be read, in which
// case the field is dropped from the payload.
type Coercer func(v any) (any, bool)

// String accepts strings and scalars. Nil clears the field.
func String(v any) (any, bool) {
	switch x := v.(type) {
	case nil:
		return "", true
	case string:
		return x, true
	case json.Number:
		return x.String(), true
	case float64:
		return strconv.FormatFloat(x, 'f', -1, 64), true
	case int, int64, bool:
		return fmt.Sprint(x), true
	}
	return nil, false
}

// Int64 accepts integral numbers and digit strings.
func Int64(v any) (any, bool) {
	switch x := v.(type) {
	case int:
		return int64(x), true
	case int64:
		return x, true
	case float64:
		if x != math.Trunc(x) || math.IsInf(x, 0) || math.IsNaN(x) {
			return nil, false
		}
		return int64(x), true
	case json.Number:
		n, err := strconv.ParseInt(x.String(), 10, 64)
		if err != nil {
			return nil, false
		}
		return n, true
	case string:
		n, err := strconv.ParseInt(strings.TrimSpace(x), 10, 64)
		if err != nil {
			return nil, false
		}
		return n, true
	}
	return nil, false
}

// Decimal accepts numbers and numeric strings ("5000", "12.50").
func Decimal(v any) (any, bool) {
	switch x := v.(type) {
	case decimal.Decimal:
		return x, true
	case float64:
		if math.IsInf(x, 0) || math.IsNaN(x) {
			return nil, false
		}
		return decimal.NewFromFloat(x), true
	case int:
		return decimal.NewFromInt(int64(x)), true
	case int64:
		return decimal.NewFromInt(x), true
	case json.Number:
		d, err := decimal.NewFromString(x.String())
		if err != nil {
			return nil, false
		}
		return d, true
	case string:
		d, err := decimal.NewFromString(strings.TrimSpace(x))
		if err != nil {
			return nil, false
		}
		return d, true
	}
	return nil, false
}

// Timestamp stores instants as epoch milliseconds.
func Timestamp(v any) (any, bool) {
	ts, ok := entities.ParseTimestamp(v)
	if !ok || ts.IsZero() {
		return nil, false
	}
	return ts.Millis(), true
}

// UpperString is String followed by trimming and upper-casing.
func UpperString(v any) (any, bool) {
	s, ok := String(v)
	if !ok {
		return nil, false
	}
	return strings.ToUpper(strings.TrimSpace(s.(string))), true
}
