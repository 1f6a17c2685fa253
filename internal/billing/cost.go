package billing

import "github.com/shopspring/decimal"

// Cost is the monetary breakdown of a rental.
type Cost struct {
	PreDiscountCharge decimal.Decimal
	DiscountAmount    decimal.Decimal
	FinalCharge       decimal.Decimal
}

// CalculateCost derives the charges from the billable day count. Only the discount
// is rounded (half-up, 2 places); the other amounts stay exact.
func CalculateCost(chargeDays int, dailyCharge, discountPercent decimal.Decimal) Cost {
	pre := decimal.NewFromInt(int64(chargeDays)).Mul(dailyCharge)
	// Round is half away from zero, which is half-up for non-negative amounts.
	discount := pre.Mul(discountPercent).Shift(-2).Round(2)
	return Cost{
		PreDiscountCharge: pre,
		DiscountAmount:    discount,
		FinalCharge:       pre.Sub(discount),
	}
}
