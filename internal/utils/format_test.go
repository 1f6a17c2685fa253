package utils

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"ubertool-rental-billing/internal/domain"
)

func TestParseCheckoutDate(t *testing.T) {
	t.Run("Valid date", func(t *testing.T) {
		d, err := ParseCheckoutDate("07/02/20")
		require.NoError(t, err)
		assert.Equal(t, time.Date(2020, time.July, 2, 0, 0, 0, 0, time.UTC), d)
	})

	t.Run("Surrounding whitespace", func(t *testing.T) {
		d, err := ParseCheckoutDate(" 09/03/15 ")
		require.NoError(t, err)
		assert.Equal(t, 2015, d.Year())
		assert.Equal(t, time.September, d.Month())
	})

	t.Run("Invalid format", func(t *testing.T) {
		_, err := ParseCheckoutDate("2020-07-02")
		assert.ErrorIs(t, err, domain.ErrInvalidCheckoutDate)
		assert.ErrorIs(t, err, domain.ErrInvalidArgument)
	})

	t.Run("Invalid month", func(t *testing.T) {
		_, err := ParseCheckoutDate("13/02/20")
		assert.ErrorIs(t, err, domain.ErrInvalidCheckoutDate)
	})

	t.Run("Invalid day", func(t *testing.T) {
		_, err := ParseCheckoutDate("02/30/20")
		assert.ErrorIs(t, err, domain.ErrInvalidCheckoutDate)
	})
}

func TestFormatCurrency(t *testing.T) {
	tests := []struct {
		amount   string
		expected string
	}{
		{"0", "$0.00"},
		{"1.5", "$1.50"},
		{"999.99", "$999.99"},
		{"1000", "$1,000.00"},
		{"8545.42", "$8,545.42"},
		{"1234567.891", "$1,234,567.89"},
		{"-12.3", "-$12.30"},
	}

	for _, tt := range tests {
		t.Run(tt.amount, func(t *testing.T) {
			assert.Equal(t, tt.expected, FormatCurrency(decimal.RequireFromString(tt.amount)))
		})
	}
}

func TestFormatAgreement(t *testing.T) {
	checkout := domain.Checkout{
		Tool: domain.Tool{
			Code:  "LADW",
			Type:  "Ladder",
			Brand: "Werner",
			Policy: domain.ChargePolicy{
				DailyCharge:     decimal.RequireFromString("1.99"),
				WeekdayBillable: true,
				WeekendBillable: true,
			},
		},
		Agreement: domain.RentalAgreement{
			CheckoutDate:      time.Date(2020, time.July, 2, 0, 0, 0, 0, time.UTC),
			DueDate:           time.Date(2020, time.July, 5, 0, 0, 0, 0, time.UTC),
			RentalDayCount:    3,
			DiscountPercent:   decimal.NewFromInt(10),
			ChargeDays:        2,
			PreDiscountCharge: decimal.RequireFromString("3.98"),
			DiscountAmount:    decimal.RequireFromString("0.40"),
			FinalCharge:       decimal.RequireFromString("3.58"),
		},
	}

	expected := "Tool code: LADW\n" +
		"Tool type: Ladder\n" +
		"Tool brand: Werner\n" +
		"Rental days: 3\n" +
		"Check out date: 07/02/20\n" +
		"Due date: 07/05/20\n" +
		"Daily rental charge: $1.99\n" +
		"Charge days: 2\n" +
		"Pre-discount charge: $3.98\n" +
		"Discount percent: 10%\n" +
		"Discount amount: $0.40\n" +
		"Final charge: $3.58\n"

	assert.Equal(t, expected, FormatAgreement(checkout))
}
