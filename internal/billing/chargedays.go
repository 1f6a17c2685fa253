package billing

import (
	"time"

	"ubertool-rental-billing/internal/domain"
)

type dayKind struct {
	weekend bool
	holiday bool
}

// chargeRules decides, per kind of day, whether a policy bills it. Holiday
// exclusion lives only in the weekday rows: weekend billing is never reduced.
var chargeRules = map[dayKind]func(domain.ChargePolicy) bool{
	{weekend: true, holiday: false}:  func(p domain.ChargePolicy) bool { return p.WeekendBillable },
	{weekend: true, holiday: true}:   func(p domain.ChargePolicy) bool { return p.WeekendBillable },
	{weekend: false, holiday: false}: func(p domain.ChargePolicy) bool { return p.WeekdayBillable },
	{weekend: false, holiday: true}:  func(p domain.ChargePolicy) bool { return p.WeekdayBillable && p.HolidayBillable },
}

// IsChargeable classifies a single day against the policy.
func IsChargeable(policy domain.ChargePolicy, day time.Time, holidays Holidays) bool {
	kind := dayKind{weekend: IsWeekend(day), holiday: holidays.Contains(day)}
	return chargeRules[kind](policy)
}

// CountChargeDays counts billable days in (checkout, due]. The checkout day is never billed.
func CountChargeDays(policy domain.ChargePolicy, checkout, due time.Time) int {
	checkout, due = ToDate(checkout), ToDate(due)

	var holidays Holidays
	count := 0
	for d := checkout.AddDate(0, 0, 1); !d.After(due); d = d.AddDate(0, 0, 1) {
		// a rental can straddle one or more new years
		if holidays.Year != d.Year() {
			holidays = HolidaysFor(d.Year())
		}
		if IsChargeable(policy, d, holidays) {
			count++
		}
	}
	return count
}
