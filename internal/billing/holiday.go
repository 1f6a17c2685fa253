package billing

import (
	"time"

	"github.com/rickar/cal/v2"
	"github.com/rickar/cal/v2/us"
)

// Holidays holds the observed billing holidays for one calendar year.
type Holidays struct {
	Year            int
	LaborDay        time.Time
	IndependenceDay time.Time
}

// Contains reports whether d falls on one of the observed holidays.
func (h Holidays) Contains(d time.Time) bool {
	d = ToDate(d)
	return d.Equal(h.LaborDay) || d.Equal(h.IndependenceDay)
}

// LaborDay returns the first Monday of September in the given year.
func LaborDay(year int) time.Time {
	return observed(us.LaborDay, year)
}

// ObservedIndependenceDay returns the weekday on which July 4th is observed:
// the preceding Friday when it falls on a Saturday, the following Monday on a Sunday.
func ObservedIndependenceDay(year int) time.Time {
	return observed(us.IndependenceDay, year)
}

// HolidaysFor resolves every billing holiday of the year.
func HolidaysFor(year int) Holidays {
	return Holidays{
		Year:            year,
		LaborDay:        LaborDay(year),
		IndependenceDay: ObservedIndependenceDay(year),
	}
}

func observed(h *cal.Holiday, year int) time.Time {
	_, obs := h.Calc(year)
	return ToDate(obs)
}

// ToDate strips the time of day, keeping the calendar date as UTC midnight.
func ToDate(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

// IsWeekend reports whether d is a Saturday or Sunday.
func IsWeekend(d time.Time) bool {
	wd := d.Weekday()
	return wd == time.Saturday || wd == time.Sunday
}
