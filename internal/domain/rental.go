package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// RentalRequest carries the inputs of a single checkout.
type RentalRequest struct {
	CheckoutDate    time.Time
	RentalDayCount  int
	DiscountPercent decimal.Decimal
}

// RentalAgreement is the computed result of a checkout. It is never mutated after
// the billing engine returns it.
type RentalAgreement struct {
	CheckoutDate      time.Time
	DueDate           time.Time
	RentalDayCount    int
	DiscountPercent   decimal.Decimal
	ChargeDays        int
	PreDiscountCharge decimal.Decimal
	DiscountAmount    decimal.Decimal
	FinalCharge       decimal.Decimal
}

// Checkout pairs an agreement with the tool it was computed for.
type Checkout struct {
	Tool      Tool
	Agreement RentalAgreement
}
