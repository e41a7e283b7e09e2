// Package query filters, sorts and paginates in-memory collections.
//
// Apply never mutates its input and is a pure function of its arguments: the
// same items and params always produce the same page, in the same order.
package query

import (
	"sort"
	"strconv"
	"strings"
	"time"
)

// AllValues is the filter value that disables a field filter.
const AllValues = "ALL"

// Record is anything the engine can read fields from by name.
type Record interface {
	TextField(name string) (string, bool)
	TimeField(name string) (time.Time, bool)
}

type Direction string

const (
	Asc  Direction = "asc"
	Desc Direction = "desc"
)

type Sort struct {
	Field     string
	Direction Direction
}

// Params describes one query.
//
// From and To are inclusive and compared at day granularity in Location
// (UTC when nil): From is floored to 00:00:00.000 and To ceiled to
// 23:59:59.999. A record lacking DateField is excluded when either bound is
// set. Page is zero-based; Size <= 0 returns every match on one page.
//
// TextValues lists, per field, exact values that also count as a free-text
// hit, e.g. the ids of customers whose name matched.
type Params struct {
	FreeText   string
	TextFields []string
	TextValues map[string][]string
	Filters    map[string]string
	DateField  string
	From       time.Time
	To         time.Time
	Location   *time.Location
	Sort       *Sort
	Page       int
	Size       int
}

// Page is one slice of a filtered collection. TotalElements counts matches
// before pagination.
type Page[T any] struct {
	Content       []T `json:"content"`
	TotalElements int `json:"totalElements"`
}

// Apply runs p over items.
func Apply[T Record](items []T, p Params) Page[T] {
	matched := Filter(items, p)
	if p.Sort != nil && p.Sort.Field != "" {
		sortRecords(matched, *p.Sort)
	}
	return Paginate(matched, p.Page, p.Size)
}

// Filter keeps the records matching the free text, field filters and date
// range of p, in input order. The result never aliases items.
func Filter[T Record](items []T, p Params) []T {
	text := strings.ToLower(strings.TrimSpace(p.FreeText))
	from, to, ranged := bounds(p)

	out := make([]T, 0, len(items))
	for _, it := range items {
		if text != "" && !matchesText(it, p.TextFields, text) && !matchesValues(it, p.TextValues) {
			continue
		}
		if !matchesFilters(it, p.Filters) {
			continue
		}
		if ranged && !inRange(it, p.DateField, from, to) {
			continue
		}
		out = append(out, it)
	}
	return out
}

// Paginate slices items into the requested page.
func Paginate[T any](items []T, page, size int) Page[T] {
	total := len(items)
	if size <= 0 {
		content := make([]T, total)
		copy(content, items)
		return Page[T]{Content: content, TotalElements: total}
	}
	if page < 0 {
		page = 0
	}
	if total == 0 || page > (total-1)/size {
		return Page[T]{Content: []T{}, TotalElements: total}
	}
	start := page * size
	end := start + size
	if end > total {
		end = total
	}
	content := make([]T, end-start)
	copy(content, items[start:end])
	return Page[T]{Content: content, TotalElements: total}
}

func matchesText(r Record, fields []string, needle string) bool {
	for _, f := range fields {
		if v, ok := r.TextField(f); ok && strings.Contains(strings.ToLower(v), needle) {
			return true
		}
	}
	return false
}

func matchesValues(r Record, values map[string][]string) bool {
	for field, accepted := range values {
		v, ok := r.TextField(field)
		if !ok {
			continue
		}
		for _, a := range accepted {
			if v == a {
				return true
			}
		}
	}
	return false
}

func matchesFilters(r Record, filters map[string]string) bool {
	for field, want := range filters {
		want = strings.TrimSpace(want)
		if want == "" || strings.EqualFold(want, AllValues) {
			continue
		}
		got, ok := r.TextField(field)
		if !ok || got != want {
			return false
		}
	}
	return true
}

func bounds(p Params) (from, to time.Time, ranged bool) {
	if p.DateField == "" || (p.From.IsZero() && p.To.IsZero()) {
		return time.Time{}, time.Time{}, false
	}
	loc := p.Location
	if loc == nil {
		loc = time.UTC
	}
	if !p.From.IsZero() {
		f := p.From.In(loc)
		from = time.Date(f.Year(), f.Month(), f.Day(), 0, 0, 0, 0, loc)
	}
	if !p.To.IsZero() {
		t := p.To.In(loc)
		to = time.Date(t.Year(), t.Month(), t.Day(), 23, 59, 59, int(999*time.Millisecond), loc)
	}
	return from, to, true
}

func inRange(r Record, field string, from, to time.Time) bool {
	v, ok := r.TimeField(field)
	if !ok {
		return false
	}
	if !from.IsZero() && v.Before(from) {
		return false
	}
	if !to.IsZero() && v.After(to) {
		return false
	}
	return true
}

func sortRecords[T Record](items []T, s Sort) {
	desc := s.Direction == Desc
	sort.SliceStable(items, func(i, j int) bool {
		c := compareField(items[i], items[j], s.Field)
		if desc {
			return c > 0
		}
		return c < 0
	})
}

// compareField orders by time when both records expose the field as a time,
// then numerically, then as case-insensitive strings. Missing values sort
// first.
func compareField(a, b Record, field string) int {
	ta, okA := a.TimeField(field)
	tb, okB := b.TimeField(field)
	if okA || okB {
		switch {
		case !okA && !okB:
			return 0
		case !okA:
			return -1
		case !okB:
			return 1
		}
		return ta.Compare(tb)
	}

	sa, _ := a.TextField(field)
	sb, _ := b.TextField(field)
	if na, err := strconv.ParseFloat(sa, 64); err == nil {
		if nb, err := strconv.ParseFloat(sb, 64); err == nil {
			switch {
			case na < nb:
				return -1
			case na > nb:
				return 1
			}
			return 0
		}
	}
	return strings.Compare(strings.ToLower(sa), strings.ToLower(sb))
}
