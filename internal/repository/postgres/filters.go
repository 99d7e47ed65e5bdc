package postgres

import (
	"fmt"

	"github.com/opsuite/invopt/backend-go/internal/domain"
)

// filterBuilder accumulates WHERE conditions with positional args.
type filterBuilder struct {
	conditions []string
	args       []interface{}
}

func (b *filterBuilder) add(expr string, arg interface{}) {
	b.conditions = append(b.conditions, fmt.Sprintf(expr, len(b.args)+1))
	b.args = append(b.args, arg)
}

// whereClause renders the accumulated conditions, or "" when unfiltered.
func (b *filterBuilder) whereClause() string {
	if len(b.conditions) == 0 {
		return ""
	}
	clause := " WHERE " + b.conditions[0]
	for _, c := range b.conditions[1:] {
		clause += " AND " + c
	}
	return clause
}

// addPairFilters applies the item/location substring filters shared by all
// record types.
func (b *filterBuilder) addPairFilters(filter domain.Filter) {
	if filter.ItemQuery != "" {
		b.conditions = append(b.conditions,
			fmt.Sprintf("(item_code ILIKE $%d OR item_name ILIKE $%d)", len(b.args)+1, len(b.args)+1))
		b.args = append(b.args, "%"+filter.ItemQuery+"%")
	}
	if filter.LocationQuery != "" {
		b.add("location_name ILIKE $%d", "%"+filter.LocationQuery+"%")
	}
}

// addCalculatedRange applies the calculation-date range filter against the
// given timestamp column.
func (b *filterBuilder) addCalculatedRange(filter domain.Filter, column string) {
	if filter.CalculatedFrom != nil {
		b.add(column+" >= $%d", *filter.CalculatedFrom)
	}
	if filter.CalculatedTo != nil {
		b.add(column+" <= $%d", *filter.CalculatedTo)
	}
}

// limitOffset renders the pagination tail for a normalized filter.
func limitOffset(filter domain.Filter) string {
	return fmt.Sprintf(" LIMIT %d OFFSET %d", filter.PageSize, filter.Offset())
}
