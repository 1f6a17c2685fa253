package domain

import "github.com/shopspring/decimal"

// ChargePolicy describes which days a tool is billed for and at what daily rate.
type ChargePolicy struct {
	DailyCharge     decimal.Decimal `json:"daily_charge"`
	WeekdayBillable bool            `json:"weekday_charge"`
	WeekendBillable bool            `json:"weekend_charge"`
	HolidayBillable bool            `json:"holiday_charge"`
}

// Tool is a catalog entry keyed by its tool code.
type Tool struct {
	Code   string       `json:"code"`
	Type   string       `json:"type"`
	Brand  string       `json:"brand"`
	Policy ChargePolicy `json:"policy"`
}
