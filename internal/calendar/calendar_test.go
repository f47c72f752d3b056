package calendar

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAt(t *testing.T) {
	// 1 January 2016 falls deep inside the Jalali year 1394, where
	// every conversion algorithm agrees: Dey 11th.
	d := At(time.Date(2016, 1, 1, 12, 0, 0, 0, time.UTC))
	assert.Equal(t, Date{Year: 1394, Month: 10, Day: 11}, d)

	// 7 July 2025 = Tir 16th, 1404 (Nowruz 1404 was 21 March 2025).
	d = At(time.Date(2025, 7, 7, 12, 0, 0, 0, time.UTC))
	assert.Equal(t, Date{Year: 1404, Month: 4, Day: 16}, d)
}

func TestTargetsAtMidMonth(t *testing.T) {
	// Mid-month, mid-year: no rollover anywhere.
	targets := TargetsAt(time.Date(2025, 7, 7, 12, 0, 0, 0, time.UTC))

	assert.Equal(t, Date{Year: 1404, Month: 4, Day: 16}, targets.Today)
	assert.Equal(t, Date{Year: 1404, Month: 4, Day: 17}, targets.Tomorrow)
	assert.Equal(t, Date{Year: 1404, Month: 4, Day: 23}, targets.NextWeek)
}

// The critical case: today + 7 days crossing the Esfand → Farvardin
// boundary must roll month AND year, not wrap the day-of-month.
//
// 13 March 2024 is Esfand 23rd, 1402 — a common year, so Esfand has 29
// days and the year ends on 19 March. Seven days later is 20 March
// 2024, which is Nowruz: Farvardin 1st, 1403.
func TestTargetsAtYearRollover(t *testing.T) {
	targets := TargetsAt(time.Date(2024, 3, 13, 12, 0, 0, 0, time.UTC))

	require.Equal(t, Date{Year: 1402, Month: 12, Day: 23}, targets.Today)
	assert.Equal(t, Date{Year: 1402, Month: 12, Day: 24}, targets.Tomorrow)
	assert.Equal(t, Date{Year: 1403, Month: 1, Day: 1}, targets.NextWeek)
}

// Tomorrow across a month boundary inside the year: Shahrivar (month 6)
// has 31 days, so the day after Shahrivar 31st is Mehr 1st.
//
// 22 September 2025 = Shahrivar 31st, 1404.
func TestTargetsAtMonthRollover(t *testing.T) {
	targets := TargetsAt(time.Date(2025, 9, 22, 12, 0, 0, 0, time.UTC))

	require.Equal(t, Date{Year: 1404, Month: 6, Day: 31}, targets.Today)
	assert.Equal(t, Date{Year: 1404, Month: 7, Day: 1}, targets.Tomorrow)
	assert.Equal(t, Date{Year: 1404, Month: 7, Day: 7}, targets.NextWeek)
}

func TestMonthName(t *testing.T) {
	for m := 1; m <= 12; m++ {
		assert.NotEmpty(t, MonthName(m))
	}
	assert.Empty(t, MonthName(0))
	assert.Empty(t, MonthName(13))
	assert.Empty(t, MonthName(-1))
}
