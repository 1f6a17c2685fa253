package utils

import (
	"fmt"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"ubertool-rental-billing/internal/domain"
)

// CheckoutDateLayout is the MM/DD/YY form clerks enter dates in.
const CheckoutDateLayout = "01/02/06"

// ParseCheckoutDate converts an MM/DD/YY string into a calendar date at UTC midnight.
func ParseCheckoutDate(s string) (time.Time, error) {
	t, err := time.Parse(CheckoutDateLayout, strings.TrimSpace(s))
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: %q", domain.ErrInvalidCheckoutDate, s)
	}
	return t, nil
}

// FormatDate renders a date as MM/DD/YY
func FormatDate(t time.Time) string {
	return t.Format(CheckoutDateLayout)
}

// FormatCurrency renders an amount as US dollars with thousands separators, e.g. $9,999.99
func FormatCurrency(amount decimal.Decimal) string {
	sign := ""
	if amount.IsNegative() {
		sign = "-"
		amount = amount.Neg()
	}

	fixed := amount.StringFixed(2)
	whole, cents, _ := strings.Cut(fixed, ".")

	var b strings.Builder
	for i, r := range whole {
		if i > 0 && (len(whole)-i)%3 == 0 {
			b.WriteByte(',')
		}
		b.WriteRune(r)
	}
	return sign + "$" + b.String() + "." + cents
}

// FormatAgreement renders the checkout as the printed rental agreement
func FormatAgreement(c domain.Checkout) string {
	a := c.Agreement
	lines := []string{
		"Tool code: " + c.Tool.Code,
		"Tool type: " + c.Tool.Type,
		"Tool brand: " + c.Tool.Brand,
		fmt.Sprintf("Rental days: %d", a.RentalDayCount),
		"Check out date: " + FormatDate(a.CheckoutDate),
		"Due date: " + FormatDate(a.DueDate),
		"Daily rental charge: " + FormatCurrency(c.Tool.Policy.DailyCharge),
		fmt.Sprintf("Charge days: %d", a.ChargeDays),
		"Pre-discount charge: " + FormatCurrency(a.PreDiscountCharge),
		"Discount percent: " + a.DiscountPercent.String() + "%",
		"Discount amount: " + FormatCurrency(a.DiscountAmount),
		"Final charge: " + FormatCurrency(a.FinalCharge),
	}
	return strings.Join(lines, "\n") + "\n"
}
