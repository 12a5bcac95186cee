package hours

import (
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/odit-bit/bizclock/biz/faults"
	"github.com/odit-bit/bizclock/biz/holiday"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var nyc, _ = time.LoadLocation("America/New_York")

// fixedCal marks specific dates as holidays, keyed by YYYY-MM-DD.
type fixedCal map[string]string

func (f fixedCal) Holiday(t time.Time) (holiday.Info, bool) {
	name, ok := f[t.Format("2006-01-02")]
	if !ok {
		return holiday.Info{}, false
	}
	return holiday.Info{
		Name: name,
		Date: time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location()),
	}, true
}

func (f fixedCal) Upcoming(from time.Time, days int) []holiday.Observance {
	var out []holiday.Observance
	for i := 0; i <= days; i++ {
		d := from.AddDate(0, 0, i)
		if info, ok := f.Holiday(d); ok {
			out = append(out, holiday.Observance{Name: info.Name, Date: info.Date, DaysFromNow: i})
		}
	}
	return out
}

// 2026-02-01 is a Sunday, so Feb 3 is a Tuesday, Feb 7 a Saturday.

func Test_checkAvailability_open(t *testing.T) {
	e := NewEngine(fixedCal{})

	now := time.Date(2026, 2, 3, 10, 0, 0, 0, nyc)
	av, err := e.CheckAvailability("America/New_York", Dental, now)
	require.NoError(t, err)

	assert.True(t, av.IsOpen)
	assert.Contains(t, av.Reasoning, "open until")
	require.NotNil(t, av.NextClose)
	assert.Equal(t, time.Date(2026, 2, 3, 17, 0, 0, 0, nyc), *av.NextClose)
	assert.Nil(t, av.NextOpen)
	assert.Nil(t, av.Holiday)
}

func Test_checkAvailability_before_open(t *testing.T) {
	e := NewEngine(fixedCal{})

	now := time.Date(2026, 2, 3, 7, 0, 0, 0, nyc)
	av, err := e.CheckAvailability("America/New_York", Dental, now)
	require.NoError(t, err)

	assert.False(t, av.IsOpen)
	require.NotNil(t, av.NextOpen)
	assert.Equal(t, time.Date(2026, 2, 3, 8, 0, 0, 0, nyc), *av.NextOpen)
}

func Test_checkAvailability_after_close(t *testing.T) {
	e := NewEngine(fixedCal{})

	now := time.Date(2026, 2, 3, 18, 0, 0, 0, nyc)
	av, err := e.CheckAvailability("America/New_York", Dental, now)
	require.NoError(t, err)

	assert.False(t, av.IsOpen)
	require.NotNil(t, av.NextOpen)
	assert.Equal(t, time.Date(2026, 2, 4, 8, 0, 0, 0, nyc), *av.NextOpen)
}

func Test_checkAvailability_weekly_closure(t *testing.T) {
	e := NewEngine(fixedCal{})

	now := time.Date(2026, 2, 8, 10, 0, 0, 0, nyc) // Sunday
	av, err := e.CheckAvailability("America/New_York", Dental, now)
	require.NoError(t, err)

	assert.False(t, av.IsOpen)
	assert.Contains(t, av.Reasoning, "Sunday")
	require.NotNil(t, av.NextOpen)
	assert.Equal(t, time.Date(2026, 2, 9, 8, 0, 0, 0, nyc), *av.NextOpen)
}

func Test_checkAvailability_holiday_beats_weekday(t *testing.T) {
	e := NewEngine(fixedCal{"2026-02-03": "Founders Day"})

	now := time.Date(2026, 2, 3, 10, 0, 0, 0, nyc)
	av, err := e.CheckAvailability("America/New_York", Dental, now)
	require.NoError(t, err)

	assert.False(t, av.IsOpen)
	assert.Contains(t, av.Reasoning, "Founders Day")
	require.NotNil(t, av.Holiday)
	require.NotNil(t, av.NextOpen)
	assert.Equal(t, time.Date(2026, 2, 4, 8, 0, 0, 0, nyc), *av.NextOpen)
}

func Test_checkAvailability_holiday_beats_weekly_closure(t *testing.T) {
	// a holiday landing on a closed Sunday is reported as the holiday
	e := NewEngine(fixedCal{"2026-02-08": "Founders Day"})

	now := time.Date(2026, 2, 8, 10, 0, 0, 0, nyc)
	av, err := e.CheckAvailability("America/New_York", Dental, now)
	require.NoError(t, err)

	assert.Contains(t, av.Reasoning, "Founders Day")
	assert.NotNil(t, av.Holiday)
}

func Test_checkAvailability_next_open_skips_holidays(t *testing.T) {
	e := NewEngine(fixedCal{"2026-02-04": "Founders Day"})

	now := time.Date(2026, 2, 3, 18, 0, 0, 0, nyc)
	av, err := e.CheckAvailability("America/New_York", Dental, now)
	require.NoError(t, err)

	require.NotNil(t, av.NextOpen)
	assert.Equal(t, time.Date(2026, 2, 5, 8, 0, 0, 0, nyc), *av.NextOpen)
}

func Test_checkAvailability_next_open_scan_cap(t *testing.T) {
	// every weekday in the scan window is a holiday; weekends are
	// weekly-closed already
	cal := fixedCal{}
	for i := 1; i <= nextOpenScanDays; i++ {
		d := time.Date(2026, 2, 3, 0, 0, 0, 0, nyc).AddDate(0, 0, i)
		cal[d.Format("2006-01-02")] = fmt.Sprintf("holiday %d", i)
	}
	e := NewEngine(cal)

	now := time.Date(2026, 2, 3, 18, 0, 0, 0, nyc)
	av, err := e.CheckAvailability("America/New_York", Dental, now)
	require.NoError(t, err)
	assert.Nil(t, av.NextOpen)
}

func Test_checkAvailability_medical_saturday(t *testing.T) {
	e := NewEngine(fixedCal{})
	now := time.Date(2026, 2, 7, 10, 0, 0, 0, nyc) // Saturday

	av, err := e.CheckAvailability("America/New_York", Medical, now)
	require.NoError(t, err)
	assert.True(t, av.IsOpen)

	av, err = e.CheckAvailability("America/New_York", Dental, now)
	require.NoError(t, err)
	assert.False(t, av.IsOpen)
}

func Test_checkAvailability_unknown_type_falls_back(t *testing.T) {
	e := NewEngine(fixedCal{})
	now := time.Date(2026, 2, 3, 10, 0, 0, 0, nyc)

	fallback, err := e.CheckAvailability("America/New_York", BusinessType("veterinary"), now)
	require.NoError(t, err)
	dental, err := e.CheckAvailability("America/New_York", Dental, now)
	require.NoError(t, err)
	assert.Equal(t, dental, fallback)
}

func Test_checkAvailability_converts_instant_to_zone(t *testing.T) {
	e := NewEngine(fixedCal{})

	// 15:00 UTC is 10:00 in New York during winter
	now := time.Date(2026, 2, 3, 15, 0, 0, 0, time.UTC)
	av, err := e.CheckAvailability("America/New_York", Dental, now)
	require.NoError(t, err)
	assert.True(t, av.IsOpen)
}

func Test_checkAvailability_idempotent(t *testing.T) {
	e := NewEngine(fixedCal{"2026-02-16": "Founders Day"})
	now := time.Date(2026, 2, 3, 10, 0, 0, 0, nyc)

	a, err := e.CheckAvailability("America/New_York", Dental, now)
	require.NoError(t, err)
	b, err := e.CheckAvailability("America/New_York", Dental, now)
	require.NoError(t, err)
	assert.Equal(t, a, b)
	assert.Len(t, a.UpcomingHolidays, 1)
}

func Test_checkAvailability_unknown_zone(t *testing.T) {
	e := NewEngine(fixedCal{})
	_, err := e.CheckAvailability("Mars/Olympus", Dental, time.Now())
	require.Error(t, err)

	var terr *faults.TimezoneError
	assert.True(t, errors.As(err, &terr))
}

func Test_dateAvailable(t *testing.T) {
	e := NewEngine(fixedCal{
		"2026-02-04": "Founders Day", // Wednesday
		"2026-02-08": "Founders Eve", // Sunday
	})

	t.Run("open weekday", func(t *testing.T) {
		dc, err := e.DateAvailable(time.Date(2026, 2, 3, 0, 0, 0, 0, nyc), "America/New_York", Dental)
		require.NoError(t, err)
		assert.True(t, dc.Available)
		assert.Empty(t, dc.Reason)
	})

	t.Run("weekday holiday", func(t *testing.T) {
		dc, err := e.DateAvailable(time.Date(2026, 2, 4, 0, 0, 0, 0, nyc), "America/New_York", Dental)
		require.NoError(t, err)
		assert.False(t, dc.Available)
		assert.Contains(t, dc.Reason, "Founders Day")
		assert.NotNil(t, dc.Holiday)
	})

	t.Run("weekly closure wins over holiday", func(t *testing.T) {
		dc, err := e.DateAvailable(time.Date(2026, 2, 8, 0, 0, 0, 0, nyc), "America/New_York", Dental)
		require.NoError(t, err)
		assert.False(t, dc.Available)
		assert.Contains(t, dc.Reason, "Sunday")
		assert.Nil(t, dc.Holiday)
	})
}

func Test_nextBusinessDay(t *testing.T) {
	t.Run("today counts even late in the day", func(t *testing.T) {
		e := NewEngine(fixedCal{})
		bd, err := e.NextBusinessDay("America/New_York", Dental, time.Date(2026, 2, 3, 23, 0, 0, 0, nyc))
		require.NoError(t, err)
		require.NotNil(t, bd)
		assert.Equal(t, 0, bd.DaysFromNow)
		assert.Equal(t, "08:00", bd.Open)
		assert.Equal(t, "17:00", bd.Close)
	})

	t.Run("weekend rolls to monday", func(t *testing.T) {
		e := NewEngine(fixedCal{})
		bd, err := e.NextBusinessDay("America/New_York", Dental, time.Date(2026, 2, 7, 10, 0, 0, 0, nyc))
		require.NoError(t, err)
		require.NotNil(t, bd)
		assert.Equal(t, 2, bd.DaysFromNow)
		assert.Equal(t, time.Date(2026, 2, 9, 0, 0, 0, 0, nyc), bd.Date)
	})

	t.Run("monday holiday rolls to tuesday", func(t *testing.T) {
		e := NewEngine(fixedCal{"2026-02-09": "Founders Day"})
		bd, err := e.NextBusinessDay("America/New_York", Dental, time.Date(2026, 2, 7, 10, 0, 0, 0, nyc))
		require.NoError(t, err)
		require.NotNil(t, bd)
		assert.Equal(t, 3, bd.DaysFromNow)
		assert.Equal(t, time.Date(2026, 2, 10, 0, 0, 0, 0, nyc), bd.Date)
	})

	t.Run("nil when scan exhausts", func(t *testing.T) {
		cal := fixedCal{}
		start := time.Date(2026, 2, 7, 10, 0, 0, 0, nyc)
		for i := 0; i <= businessDayScanDays; i++ {
			cal[start.AddDate(0, 0, i).Format("2006-01-02")] = "shutdown"
		}
		e := NewEngine(cal)
		bd, err := e.NextBusinessDay("America/New_York", Dental, start)
		require.NoError(t, err)
		assert.Nil(t, bd)
	})
}
