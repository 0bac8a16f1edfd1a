// Package pricing derives selling prices from base costs and profit-margin
// specifications. Pure, deterministic, no I/O.
package pricing

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/vredrick/printify-mcp-web/internal/core/domain"
)

var one = decimal.NewFromInt(1)

// Calculate converts a base cost in minor currency units and a margin
// specification into a selling price and profit:
//
//	price = round(cost / (1 - margin)), profit = price - cost
//
// The margin is the fraction of the selling price that is profit.
func Calculate(baseCost int64, marginSpec any) (domain.PricingResult, error) {
	margin, err := ParseMargin(marginSpec)
	if err != nil {
		return domain.PricingResult{}, err
	}
	return CalculateWithMargin(baseCost, margin)
}

// CalculateWithMargin prices a cost against an already-normalized margin
// fraction. Callers pricing many variants parse the margin once.
func CalculateWithMargin(baseCost int64, margin decimal.Decimal) (domain.PricingResult, error) {
	if margin.LessThanOrEqual(decimal.Zero) || margin.GreaterThanOrEqual(one) {
		return domain.PricingResult{}, invalidMargin(margin, fmt.Errorf("margin must be in (0, 1)"))
	}

	cost := decimal.NewFromInt(baseCost)
	price := cost.Div(one.Sub(margin)).Round(0).IntPart()

	return domain.PricingResult{
		Price:  price,
		Profit: price - baseCost,
	}, nil
}

// ParseMargin normalizes a margin specification to a fraction in (0, 1).
// Two forms are supported: a raw fraction (0.5) and a percent string
// ("50%"). Bare values >= 1 are rejected rather than guessed at, since a
// fraction of 50 silently produces nonsensical prices.
func ParseMargin(spec any) (decimal.Decimal, error) {
	var margin decimal.Decimal

	switch v := spec.(type) {
	case float64:
		margin = decimal.NewFromFloat(v)
	case float32:
		margin = decimal.NewFromFloat32(v)
	case int:
		margin = decimal.NewFromInt(int64(v))
	case int64:
		margin = decimal.NewFromInt(v)
	case json.Number:
		var err error
		if margin, err = decimal.NewFromString(v.String()); err != nil {
			return decimal.Decimal{}, invalidMargin(spec, err)
		}
	case string:
		s := strings.TrimSpace(v)
		percent := strings.HasSuffix(s, "%")
		s = strings.TrimSuffix(s, "%")

		parsed, err := decimal.NewFromString(strings.TrimSpace(s))
		if err != nil {
			return decimal.Decimal{}, invalidMargin(spec, err)
		}
		margin = parsed
		if percent {
			margin = margin.Shift(-2)
		}
	default:
		return decimal.Decimal{}, invalidMargin(spec, fmt.Errorf("unsupported type %T", spec))
	}

	if margin.LessThanOrEqual(decimal.Zero) || margin.GreaterThanOrEqual(one) {
		return decimal.Decimal{}, invalidMargin(spec, fmt.Errorf("margin must be in (0, 1) after normalization, got %s", margin))
	}

	return margin, nil
}

func invalidMargin(spec any, err error) error {
	return &domain.CatalogError{
		Kind: domain.ErrValidation,
		Err:  fmt.Errorf("invalid margin %v: %w", spec, err),
	}
}
