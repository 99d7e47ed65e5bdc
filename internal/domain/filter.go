// internal/domain/filter.go
package domain

import "time"

// Filter narrows list queries across all four record types. Fields that do
// not apply to a record type are ignored by that type's repository.
type Filter struct {
	ItemQuery      string     `json:"item_query"`
	LocationQuery  string     `json:"location_query"`
	ServiceLevel   *float64   `json:"service_level"`
	ABCClass       string     `json:"abc_class"`
	XYZClass       string     `json:"xyz_class"`
	CombinedClass  string     `json:"combined_class"`
	PolicyType     string     `json:"policy_type"`
	CalculatedFrom *time.Time `json:"calculated_from"`
	CalculatedTo   *time.Time `json:"calculated_to"`
	Page           int        `json:"page"`
	PageSize       int        `json:"page_size"`
}

// Normalize applies list defaults in place and returns the filter.
func (f Filter) Normalize() Filter {
	if f.Page <= 0 {
		f.Page = 1
	}
	if f.PageSize <= 0 {
		f.PageSize = 50
	}
	return f
}

// Offset returns the zero-based row offset for the current page.
func (f Filter) Offset() int {
	return (f.Page - 1) * f.PageSize
}

// Page is the list response envelope.
type Page[T any] struct {
	Items      []T `json:"items"`
	Total      int `json:"total"`
	Page       int `json:"page"`
	PageSize   int `json:"page_size"`
	TotalPages int `json:"total_pages"`
}

// NewPage assembles a page envelope from repository results.
func NewPage[T any](items []T, total int, f Filter) Page[T] {
	if items == nil {
		items = make([]T, 0)
	}
	totalPages := 0
	if f.PageSize > 0 {
		totalPages = (total + f.PageSize - 1) / f.PageSize
	}
	return Page[T]{
		Items:      items,
		Total:      total,
		Page:       f.Page,
		PageSize:   f.PageSize,
		TotalPages: totalPages,
	}
}
