// internal/engine/classify.go
package engine

import (
	"sort"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/opsuite/invopt/backend-go/internal/domain"
)

// Absolute annual-consumption-value bands for per-item ABC classification.
var (
	abcBandA = decimal.NewFromInt(100_000)
	abcBandB = decimal.NewFromInt(10_000)
)

// DefaultXYZThresholds are the coefficient-of-variation cutoffs used when a
// classification request does not supply its own.
var DefaultXYZThresholds = domain.XYZThresholds{XThreshold: 0.5, YThreshold: 1.0}

// DefaultABCThresholds are the cumulative Pareto fractions snapshotted onto
// records for the portfolio-level variant.
var DefaultABCThresholds = domain.ABCThresholds{AThreshold: 0.8, BThreshold: 0.95}

// ClassifyABC classifies by absolute annual consumption value:
// >= 100000 A, >= 10000 B, below C.
func ClassifyABC(annualConsumptionValue decimal.Decimal) (domain.ABCClass, error) {
	if annualConsumptionValue.IsNegative() {
		return "", domain.ErrInvalidInput("annual_consumption_value", "annual consumption value must not be negative")
	}
	switch {
	case annualConsumptionValue.GreaterThanOrEqual(abcBandA):
		return domain.ClassA, nil
	case annualConsumptionValue.GreaterThanOrEqual(abcBandB):
		return domain.ClassB, nil
	default:
		return domain.ClassC, nil
	}
}

// ClassifyXYZ classifies by coefficient of variation. Both threshold
// boundaries are inclusive on the lower class.
func ClassifyXYZ(consumptionVariability float64, t domain.XYZThresholds) (domain.XYZClass, error) {
	if consumptionVariability < 0 {
		return "", domain.ErrInvalidInput("consumption_variability", "consumption variability must not be negative")
	}
	if t.XThreshold <= 0 || t.YThreshold <= t.XThreshold {
		return "", domain.ErrInvalidInput("xyz_thresholds", "thresholds must satisfy 0 < x < y")
	}
	switch {
	case consumptionVariability <= t.XThreshold:
		return domain.ClassX, nil
	case consumptionVariability <= t.YThreshold:
		return domain.ClassY, nil
	default:
		return domain.ClassZ, nil
	}
}

// SplitCombinedClass splits a two-character combined class into its ABC and
// XYZ components, validating both letters.
func SplitCombinedClass(combined string) (domain.ABCClass, domain.XYZClass, error) {
	normalized := strings.ToUpper(strings.TrimSpace(combined))
	if len(normalized) != 2 {
		return "", "", domain.ErrInvalidInput("manual_class", "combined class must be exactly two characters")
	}

	abc := domain.ABCClass(normalized[:1])
	switch abc {
	case domain.ClassA, domain.ClassB, domain.ClassC:
	default:
		return "", "", domain.ErrInvalidInput("manual_class", "first character must be A, B or C")
	}

	xyz := domain.XYZClass(normalized[1:])
	switch xyz {
	case domain.ClassX, domain.ClassY, domain.ClassZ:
	default:
		return "", "", domain.ErrInvalidInput("manual_class", "second character must be X, Y or Z")
	}

	return abc, xyz, nil
}

// PortfolioItem is one pair's consumption value for the portfolio-level
// Pareto classification.
type PortfolioItem struct {
	PairKey                string
	AnnualConsumptionValue decimal.Decimal
}

// ClassifyPortfolio ranks items by consumption value and assigns ABC classes
// by cumulative value share: pairs inside the A threshold of total value get
// A, inside the B threshold B, the tail C. This is the variant that consumes
// the cumulative thresholds stored on classification records.
func ClassifyPortfolio(items []PortfolioItem, t domain.ABCThresholds) (map[string]domain.ABCClass, error) {
	if t.AThreshold <= 0 || t.BThreshold <= t.AThreshold || t.BThreshold > 1 {
		return nil, domain.ErrInvalidInput("abc_thresholds", "thresholds must satisfy 0 < a < b <= 1")
	}

	total := decimal.Zero
	for _, item := range items {
		if item.AnnualConsumptionValue.IsNegative() {
			return nil, domain.ErrInvalidInput("annual_consumption_value", "annual consumption value must not be negative")
		}
		total = total.Add(item.AnnualConsumptionValue)
	}

	classes := make(map[string]domain.ABCClass, len(items))
	if total.IsZero() {
		for _, item := range items {
			classes[item.PairKey] = domain.ClassC
		}
		return classes, nil
	}

	ranked := make([]PortfolioItem, len(items))
	copy(ranked, items)
	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].AnnualConsumptionValue.GreaterThan(ranked[j].AnnualConsumptionValue)
	})

	aCut := decimal.NewFromFloat(t.AThreshold)
	bCut := decimal.NewFromFloat(t.BThreshold)
	cumulative := decimal.Zero
	for _, item := range ranked {
		cumulative = cumulative.Add(item.AnnualConsumptionValue)
		share := cumulative.Div(total)
		switch {
		case share.LessThanOrEqual(aCut):
			classes[item.PairKey] = domain.ClassA
		case share.LessThanOrEqual(bCut):
			classes[item.PairKey] = domain.ClassB
		default:
			classes[item.PairKey] = domain.ClassC
		}
	}

	return classes, nil
}
