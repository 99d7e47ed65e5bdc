// Package memory provides in-memory repository implementations backing the
// engine in tests and in demo mode, where running without Postgres is useful.
package memory

import (
	"strings"
	"time"

	"github.com/opsuite/invopt/backend-go/internal/domain"
)

// matchItem reports whether the pair matches an item code/name substring
// query. Empty query matches everything.
func matchItem(il domain.ItemLocation, query string) bool {
	if query == "" {
		return true
	}
	q := strings.ToLower(query)
	return strings.Contains(strings.ToLower(il.ItemCode), q) ||
		strings.Contains(strings.ToLower(il.ItemName), q)
}

// matchLocation reports whether the pair matches a location name substring query.
func matchLocation(il domain.ItemLocation, query string) bool {
	if query == "" {
		return true
	}
	return strings.Contains(strings.ToLower(il.LocationName), strings.ToLower(query))
}

// matchDateRange reports whether ts falls inside the [from, to] filter range.
func matchDateRange(ts time.Time, from, to *time.Time) bool {
	if from != nil && ts.Before(*from) {
		return false
	}
	if to != nil && ts.After(*to) {
		return false
	}
	return true
}

// paginate slices a full result set down to the requested page.
func paginate[T any](items []T, filter domain.Filter) []T {
	offset := filter.Offset()
	if offset >= len(items) {
		return []T{}
	}
	end := offset + filter.PageSize
	if end > len(items) {
		end = len(items)
	}
	return items[offset:end]
}
