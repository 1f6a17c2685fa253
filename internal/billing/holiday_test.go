package billing

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func TestLaborDay(t *testing.T) {
	tests := []struct {
		year     int
		expected time.Time
	}{
		{2015, date(2015, time.September, 7)},
		{2020, date(2020, time.September, 7)},
		{2021, date(2021, time.September, 6)},
		{2023, date(2023, time.September, 4)},
		{2024, date(2024, time.September, 2)},
		{2025, date(2025, time.September, 1)}, // September 1st itself is a Monday
		{2026, date(2026, time.September, 7)}, // latest possible
	}

	for _, tt := range tests {
		t.Run(tt.expected.Format("2006"), func(t *testing.T) {
			assert.Equal(t, tt.expected, LaborDay(tt.year))
		})
	}
}

func TestLaborDay_FirstMondayOfSeptember(t *testing.T) {
	for year := 1990; year <= 2060; year++ {
		var firstMonday time.Time
		for d := date(year, time.September, 1); d.Day() <= 7; d = d.AddDate(0, 0, 1) {
			if d.Weekday() == time.Monday {
				firstMonday = d
				break
			}
		}
		assert.Equal(t, firstMonday, LaborDay(year), "year %d", year)
	}
}

func TestObservedIndependenceDay(t *testing.T) {
	t.Run("Saturday observed on Friday", func(t *testing.T) {
		assert.Equal(t, date(2015, time.July, 3), ObservedIndependenceDay(2015))
		assert.Equal(t, date(2020, time.July, 3), ObservedIndependenceDay(2020))
		assert.Equal(t, date(2026, time.July, 3), ObservedIndependenceDay(2026))
	})

	t.Run("Sunday observed on Monday", func(t *testing.T) {
		assert.Equal(t, date(2021, time.July, 5), ObservedIndependenceDay(2021))
		assert.Equal(t, date(2027, time.July, 5), ObservedIndependenceDay(2027))
	})

	t.Run("Weekday observed on the day", func(t *testing.T) {
		assert.Equal(t, date(2023, time.July, 4), ObservedIndependenceDay(2023))
		assert.Equal(t, date(2024, time.July, 4), ObservedIndependenceDay(2024))
	})

	t.Run("Always a weekday", func(t *testing.T) {
		for year := 1990; year <= 2060; year++ {
			assert.False(t, IsWeekend(ObservedIndependenceDay(year)), "year %d", year)
		}
	})
}

func TestHolidays_Contains(t *testing.T) {
	h := HolidaysFor(2020)
	assert.Equal(t, 2020, h.Year)
	assert.True(t, h.Contains(date(2020, time.July, 3)))
	assert.True(t, h.Contains(time.Date(2020, time.September, 7, 15, 30, 0, 0, time.UTC)))
	assert.False(t, h.Contains(date(2020, time.July, 4)))
	assert.False(t, h.Contains(date(2021, time.July, 3)))
}

func TestToDate(t *testing.T) {
	loc := time.FixedZone("UTC-7", -7*60*60)
	in := time.Date(2020, time.July, 2, 23, 59, 0, 0, loc)
	assert.Equal(t, date(2020, time.July, 2), ToDate(in))
}
