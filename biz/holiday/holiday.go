// Package holiday answers "is this date an observed public holiday"
// per jurisdiction. The actual holiday rules come from rickar/cal; the
// engine only sees the narrow Calendar interface so tests can swap in a
// fixed calendar.
package holiday

import (
	"time"

	"github.com/odit-bit/bizclock/biz/postal"
	"github.com/rickar/cal/v2"
	"github.com/rickar/cal/v2/ca"
	"github.com/rickar/cal/v2/us"
)

// Info describes the observed holiday on a single date.
type Info struct {
	Name     string
	Date     time.Time
	Observed bool // true when the statutory date fell on a weekend and shifted
}

// Observance is an upcoming holiday relative to a reference date.
type Observance struct {
	Name        string
	Date        time.Time
	DaysFromNow int
}

type Calendar interface {
	// Holiday reports the observed holiday on t's calendar date, if any.
	Holiday(t time.Time) (Info, bool)
	// Upcoming lists observed holidays in [from, from+days], ascending.
	Upcoming(from time.Time, days int) []Observance
}

// Jurisdiction wraps a rickar/cal business calendar for one country.
type Jurisdiction struct {
	cal *cal.BusinessCalendar
}

var (
	usCal = newJurisdiction(us.Holidays...)
	caCal = newJurisdiction(ca.Holidays...)
)

// ForCountry returns the shared calendar for a postal-code country.
func ForCountry(k postal.Kind) Calendar {
	if k == postal.KindCA {
		return caCal
	}
	return usCal
}

func newJurisdiction(holidays ...*cal.Holiday) *Jurisdiction {
	c := cal.NewBusinessCalendar()
	c.AddHoliday(holidays...)
	return &Jurisdiction{cal: c}
}

func (j *Jurisdiction) Holiday(t time.Time) (Info, bool) {
	actual, observed, h := j.cal.IsHoliday(t)
	if h == nil || (!actual && !observed) {
		return Info{}, false
	}
	return Info{
		Name:     h.Name,
		Date:     midnight(t),
		Observed: observed && !actual,
	}, true
}

func (j *Jurisdiction) Upcoming(from time.Time, days int) []Observance {
	var out []Observance
	for i := 0; i <= days; i++ {
		d := from.AddDate(0, 0, i)
		info, ok := j.Holiday(d)
		if !ok {
			continue
		}
		out = append(out, Observance{
			Name:        info.Name,
			Date:        info.Date,
			DaysFromNow: i,
		})
	}
	return out
}

func midnight(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}
