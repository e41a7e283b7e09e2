package entities

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

// UnknownCustomerName is displayed when a liquidation references a customer
// that no longer exists.
const UnknownCustomerName = "Client inconnu"

// NameFlavor selects how a customer's name is stored.
//
//   - split: firstName + lastName
//   - full:  a single fullName
//
// The flavor is fixed when the customer store is built; it is never inferred
// from a payload.
type NameFlavor string

const (
	NameFlavorSplit NameFlavor = "split"
	NameFlavorFull  NameFlavor = "full"
)

func ParseNameFlavor(s string) (NameFlavor, error) {
	switch f := NameFlavor(strings.ToLower(strings.TrimSpace(s))); f {
	case NameFlavorSplit, NameFlavorFull:
		return f, nil
	case "":
		return NameFlavorSplit, nil
	}
	return "", fmt.Errorf("unknown customer name flavor %q", s)
}

// Customer is a person or company liquidations are billed to.
type Customer struct {
	ID        int64     `json:"id"`
	FirstName string    `json:"firstName,omitempty"`
	LastName  string    `json:"lastName,omitempty"`
	FullName  string    `json:"fullName,omitempty"`
	Email     string    `json:"email"`
	Phone     string    `json:"phone"`
	IFU       string    `json:"ifu"`
	Address   string    `json:"address"`
	City      string    `json:"city,omitempty"`
	CreatedAt Timestamp `json:"createdAt"`
}

func (c Customer) EntityID() int64 { return c.ID }

// DisplayName tolerates both name shapes.
func (c Customer) DisplayName() string {
	if name := strings.TrimSpace(strings.TrimSpace(c.FirstName) + " " + strings.TrimSpace(c.LastName)); name != "" {
		return name
	}
	return strings.TrimSpace(c.FullName)
}

func (c Customer) TextField(name string) (string, bool) {
	switch name {
	case "id":
		return strconv.FormatInt(c.ID, 10), true
	case "firstName":
		return c.FirstName, true
	case "lastName":
		return c.LastName, true
	case "fullName":
		return c.FullName, true
	case "displayName":
		return c.DisplayName(), true
	case "email":
		return c.Email, true
	case "phone":
		return c.Phone, true
	case "ifu":
		return c.IFU, true
	case "address":
		return c.Address, true
	case "city":
		return c.City, true
	}
	return "", false
}

func (c Customer) TimeField(name string) (time.Time, bool) {
	if name == "createdAt" && !c.CreatedAt.IsZero() {
		return c.CreatedAt.Time, true
	}
	return time.Time{}, false
}

// CustomerTextFields are searched by free text.
var CustomerTextFields = []string{"firstName", "lastName", "fullName", "email", "phone", "city", "ifu", "address"}

// NormalizeNameFields rewrites the name keys of a payload into the shape of
// the flavor. Keys the payload does not carry are left alone so partial
// patches stay partial.
func NormalizeNameFields(flavor NameFlavor, fields map[string]any) {
	first, hasFirst := stringField(fields, "firstName")
	last, hasLast := stringField(fields, "lastName")
	full, hasFull := stringField(fields, "fullName")

	switch flavor {
	case NameFlavorFull:
		if !hasFull && (hasFirst || hasLast) {
			fields["fullName"] = strings.TrimSpace(strings.TrimSpace(first) + " " + strings.TrimSpace(last))
		}
		delete(fields, "firstName")
		delete(fields, "lastName")
	default:
		if hasFull && !hasFirst && !hasLast {
			f, l := SplitFullName(full)
			fields["firstName"] = f
			fields["lastName"] = l
		}
		delete(fields, "fullName")
	}
}

// SplitFullName splits on the first run of whitespace.
func SplitFullName(full string) (first, last string) {
	parts := strings.Fields(full)
	if len(parts) == 0 {
		return "", ""
	}
	return parts[0], strings.Join(parts[1:], " ")
}

func stringField(fields map[string]any, key string) (string, bool) {
	v, ok := fields[key]
	if !ok || v == nil {
		return "", false
	}
	s, ok := v.(string)
	if !ok {
		return "", false
	}
	return s, true
}

// CustomerFilter narrows a customer listing.
type CustomerFilter struct {
	Text string
	Page int
	Size int
}
