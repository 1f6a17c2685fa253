package service

import (
	"context"

	"github.com/shopspring/decimal"

	"ubertool-rental-billing/internal/domain"
)

// CheckoutInput is a checkout as entered at the counter, before parsing.
type CheckoutInput struct {
	ToolCode        string
	RentalDays      int
	DiscountPercent decimal.Decimal
	CheckoutDate    string // MM/DD/YY
}

type CheckoutService interface {
	Checkout(ctx context.Context, in CheckoutInput) (*domain.Checkout, error)
	ListTools(ctx context.Context) ([]domain.Tool, error)
}
