package allocator

import (
	"slices"

	"github.com/shopspring/decimal"
)

var hundred = decimal.NewFromInt(100)

// Valued is anything carrying a current value, such as a domain.Holding
type Valued interface {
	CurrentValue() (decimal.Decimal, bool)
}

// Share is the part of a total held by one entity
type Share[E Valued] struct {
	Entity     E
	Value      decimal.Decimal
	Percentage float64
}

// CalculateAllocation breaks a total down by entity
// Logic:
//  1. Return nothing when the total is not positive
//  2. Skip entities without a value or with a value that is not positive
//  3. Express each remaining value as a percentage of the total
//  4. Sort by percentage, largest first (ties keep the input order)
//
// When total is the sum of the entity values the percentages sum to 100.
func CalculateAllocation[E Valued](entities []E, total decimal.Decimal) []Share[E] {
	if !total.IsPositive() {
		return nil
	}

	shares := make([]Share[E], 0, len(entities))
	for _, entity := range entities {
		value, ok := entity.CurrentValue()
		if !ok || !value.IsPositive() {
			continue
		}
		shares = append(shares, Share[E]{
			Entity:     entity,
			Value:      value,
			Percentage: value.Div(total).Mul(hundred).InexactFloat64(),
		})
	}

	slices.SortStableFunc(shares, func(a, b Share[E]) int {
		return b.Value.Cmp(a.Value)
	})

	return shares
}

// Total sums the current values of entities, ignoring entities without one
func Total[E Valued](entities []E) decimal.Decimal {
	total := decimal.Zero
	for _, entity := range entities {
		if value, ok := entity.CurrentValue(); ok {
			total = total.Add(value)
		}
	}
	return total
}
