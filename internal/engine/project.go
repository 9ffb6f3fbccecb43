package engine

import "github.com/shopspring/decimal"

// Fixed annual return used for every projection. Not user-configurable.
var annualGrowthFactor = decimal.RequireFromString("1.08")

// Project compounds an amount at 8% per year and rounds to two decimal
// places. Deterministic: same inputs, same output.
func Project(amount decimal.Decimal, years int) decimal.Decimal {
	if years <= 0 {
		return amount.Round(2)
	}

	factor := annualGrowthFactor.Pow(decimal.NewFromInt(int64(years)))
	return amount.Mul(factor).Round(2)
}
