package billing

import (
	"ubertool-rental-billing/internal/domain"
	"ubertool-rental-billing/internal/logger"
)

// Engine computes rental agreements. It holds no state, so a single value can be
// shared across goroutines.
type Engine struct{}

func NewEngine() *Engine {
	return &Engine{}
}

// Compute validates the request and produces the agreement for the given policy.
// Validation errors are the only failure mode.
func (e *Engine) Compute(policy domain.ChargePolicy, req domain.RentalRequest) (domain.RentalAgreement, error) {
	if err := ValidateRequest(req); err != nil {
		return domain.RentalAgreement{}, err
	}

	checkout := ToDate(req.CheckoutDate)
	due := checkout.AddDate(0, 0, req.RentalDayCount)
	chargeDays := CountChargeDays(policy, checkout, due)
	cost := CalculateCost(chargeDays, policy.DailyCharge, req.DiscountPercent)

	logger.Debug("Rental agreement computed",
		"checkout_date", checkout.Format("2006-01-02"),
		"due_date", due.Format("2006-01-02"),
		"charge_days", chargeDays,
		"final_charge", cost.FinalCharge.StringFixed(2),
	)

	return domain.RentalAgreement{
		CheckoutDate:      checkout,
		DueDate:           due,
		RentalDayCount:    req.RentalDayCount,
		DiscountPercent:   req.DiscountPercent,
		ChargeDays:        chargeDays,
		PreDiscountCharge: cost.PreDiscountCharge,
		DiscountAmount:    cost.DiscountAmount,
		FinalCharge:       cost.FinalCharge,
	}, nil
}

// Compute is a convenience for callers that do not keep an Engine around.
func Compute(policy domain.ChargePolicy, req domain.RentalRequest) (domain.RentalAgreement, error) {
	return NewEngine().Compute(policy, req)
}
