// internal/engine/classify_test.go
package engine

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/opsuite/invopt/backend-go/internal/domain"
)

func TestClassifyABC(t *testing.T) {
	tests := []struct {
		name     string
		value    int64
		want     domain.ABCClass
		wantKind domain.ErrorKind
	}{
		{name: "well above band A", value: 250_000, want: domain.ClassA},
		{name: "exactly 100000 is A", value: 100_000, want: domain.ClassA},
		{name: "99999 is B", value: 99_999, want: domain.ClassB},
		{name: "exactly 10000 is B", value: 10_000, want: domain.ClassB},
		{name: "9999 is C", value: 9_999, want: domain.ClassC},
		{name: "zero is C", value: 0, want: domain.ClassC},
		{name: "negative rejected", value: -1, wantKind: domain.KindInvalidInput},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ClassifyABC(decimal.NewFromInt(tt.value))
			if tt.wantKind != "" {
				require.Error(t, err)
				assert.Equal(t, tt.wantKind, domain.KindOf(err))
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestClassifyXYZ(t *testing.T) {
	tests := []struct {
		name        string
		variability float64
		thresholds  domain.XYZThresholds
		want        domain.XYZClass
		wantKind    domain.ErrorKind
	}{
		{name: "stable demand", variability: 0.2, thresholds: DefaultXYZThresholds, want: domain.ClassX},
		{name: "x boundary inclusive", variability: 0.5, thresholds: DefaultXYZThresholds, want: domain.ClassX},
		{name: "between boundaries", variability: 0.75, thresholds: DefaultXYZThresholds, want: domain.ClassY},
		{name: "y boundary inclusive", variability: 1.0, thresholds: DefaultXYZThresholds, want: domain.ClassY},
		{name: "erratic demand", variability: 1.01, thresholds: DefaultXYZThresholds, want: domain.ClassZ},
		{name: "custom thresholds", variability: 0.6, thresholds: domain.XYZThresholds{XThreshold: 0.6, YThreshold: 1.2}, want: domain.ClassX},
		{name: "negative variability", variability: -0.1, thresholds: DefaultXYZThresholds, wantKind: domain.KindInvalidInput},
		{name: "inverted thresholds", variability: 0.5, thresholds: domain.XYZThresholds{XThreshold: 1.0, YThreshold: 0.5}, wantKind: domain.KindInvalidInput},
		{name: "zero x threshold", variability: 0.5, thresholds: domain.XYZThresholds{XThreshold: 0, YThreshold: 1.0}, wantKind: domain.KindInvalidInput},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ClassifyXYZ(tt.variability, tt.thresholds)
			if tt.wantKind != "" {
				require.Error(t, err)
				assert.Equal(t, tt.wantKind, domain.KindOf(err))
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestSplitCombinedClass(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		wantABC  domain.ABCClass
		wantXYZ  domain.XYZClass
		wantKind domain.ErrorKind
	}{
		{name: "upper case", input: "AX", wantABC: domain.ClassA, wantXYZ: domain.ClassX},
		{name: "lower case normalized", input: "cz", wantABC: domain.ClassC, wantXYZ: domain.ClassZ},
		{name: "surrounding whitespace", input: " BY ", wantABC: domain.ClassB, wantXYZ: domain.ClassY},
		{name: "too short", input: "A", wantKind: domain.KindInvalidInput},
		{name: "too long", input: "AXZ", wantKind: domain.KindInvalidInput},
		{name: "bad first letter", input: "DX", wantKind: domain.KindInvalidInput},
		{name: "bad second letter", input: "AQ", wantKind: domain.KindInvalidInput},
		{name: "empty", input: "", wantKind: domain.KindInvalidInput},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			abc, xyz, err := SplitCombinedClass(tt.input)
			if tt.wantKind != "" {
				require.Error(t, err)
				assert.Equal(t, tt.wantKind, domain.KindOf(err))
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.wantABC, abc)
			assert.Equal(t, tt.wantXYZ, xyz)
		})
	}
}

func TestClassifyPortfolio(t *testing.T) {
	t.Run("pareto split", func(t *testing.T) {
		items := []PortfolioItem{
			{PairKey: "big", AnnualConsumptionValue: decimal.NewFromInt(700)},
			{PairKey: "mid", AnnualConsumptionValue: decimal.NewFromInt(200)},
			{PairKey: "small", AnnualConsumptionValue: decimal.NewFromInt(60)},
			{PairKey: "tail", AnnualConsumptionValue: decimal.NewFromInt(40)},
		}

		classes, err := ClassifyPortfolio(items, DefaultABCThresholds)
		require.NoError(t, err)
		// cumulative shares: 0.70, 0.90, 0.96, 1.00
		assert.Equal(t, domain.ClassA, classes["big"])
		assert.Equal(t, domain.ClassB, classes["mid"])
		assert.Equal(t, domain.ClassC, classes["small"])
		assert.Equal(t, domain.ClassC, classes["tail"])
	})

	t.Run("zero total value puts everything in C", func(t *testing.T) {
		items := []PortfolioItem{
			{PairKey: "a", AnnualConsumptionValue: decimal.Zero},
			{PairKey: "b", AnnualConsumptionValue: decimal.Zero},
		}

		classes, err := ClassifyPortfolio(items, DefaultABCThresholds)
		require.NoError(t, err)
		assert.Equal(t, domain.ClassC, classes["a"])
		assert.Equal(t, domain.ClassC, classes["b"])
	})

	t.Run("empty portfolio", func(t *testing.T) {
		classes, err := ClassifyPortfolio(nil, DefaultABCThresholds)
		require.NoError(t, err)
		assert.Empty(t, classes)
	})

	t.Run("invalid thresholds", func(t *testing.T) {
		_, err := ClassifyPortfolio(nil, domain.ABCThresholds{AThreshold: 0.9, BThreshold: 0.5})
		require.Error(t, err)
		assert.Equal(t, domain.KindInvalidInput, domain.KindOf(err))
	})

	t.Run("negative consumption value", func(t *testing.T) {
		items := []PortfolioItem{{PairKey: "bad", AnnualConsumptionValue: decimal.NewFromInt(-10)}}
		_, err := ClassifyPortfolio(items, DefaultABCThresholds)
		require.Error(t, err)
		assert.Equal(t, domain.KindInvalidInput, domain.KindOf(err))
	})
}
