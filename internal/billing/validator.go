package billing

import (
	"github.com/shopspring/decimal"

	"ubertool-rental-billing/internal/domain"
)

var hundred = decimal.NewFromInt(100)

// ValidateRequest rejects a request before any date arithmetic runs.
func ValidateRequest(req domain.RentalRequest) error {
	if req.RentalDayCount < 1 {
		return domain.ErrInvalidRentalDuration
	}
	if req.DiscountPercent.IsNegative() || req.DiscountPercent.GreaterThan(hundred) {
		return domain.ErrInvalidDiscountPercent
	}
	return nil
}
