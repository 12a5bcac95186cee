package hours

import (
	"fmt"
	"time"

	"github.com/odit-bit/bizclock/biz/holiday"
)

// Voice formatting stays out of the engine so the availability math is
// language-agnostic. Everything here renders structured results into
// sentences an agent can read aloud.

// ClockTime renders t's wall clock in 12- or 24-hour style.
func ClockTime(t time.Time, format string) string {
	if format == "24" {
		return t.Format("15:04")
	}
	return t.Format("3:04 PM")
}

// Sentence renders av for speech. abbrev is the zone abbreviation at
// now (e.g. "EST").
func Sentence(av Availability, now time.Time, abbrev string) string {
	if av.IsOpen {
		if av.NextClose != nil {
			return fmt.Sprintf("We are currently open! We close %s at %s %s.",
				DayPhrase(now, *av.NextClose), ClockTime(*av.NextClose, "12"), abbrev)
		}
		return "We are currently open!"
	}

	s := "We are currently closed."
	switch {
	case av.Holiday != nil:
		s = fmt.Sprintf("We are closed today for %s.", av.Holiday.Name)
	case av.Today.Closed:
		s = fmt.Sprintf("We are closed on %ss.", now.Weekday())
	case av.NextOpen != nil && sameDate(now, *av.NextOpen):
		return fmt.Sprintf("We are not open yet. We open today at %s %s.",
			ClockTime(*av.NextOpen, "12"), abbrev)
	}

	if av.NextOpen == nil {
		return s + " Please contact us directly to confirm availability."
	}
	return fmt.Sprintf("%s We reopen %s at %s %s.",
		s, DayPhrase(now, *av.NextOpen), ClockTime(*av.NextOpen, "12"), abbrev)
}

// HolidayCallout returns a spoken note for the nearest upcoming holiday
// within the given number of days, or "" when none is close enough.
// Today's holiday is skipped; it is already the headline.
func HolidayCallout(upcoming []holiday.Observance, withinDays int) string {
	for _, h := range upcoming {
		if h.DaysFromNow == 0 {
			continue
		}
		if h.DaysFromNow <= withinDays {
			return fmt.Sprintf("Please note we will be closed for %s on %s.",
				h.Name, h.Date.Format("Monday, January 2"))
		}
	}
	return ""
}

// DatePhrase renders a date the way a person would say it.
func DatePhrase(t time.Time) string {
	return t.Format("Monday, January 2, 2006")
}

// DayPhrase renders t relative to now: "today", "tomorrow", or the
// weekday and date.
func DayPhrase(now, t time.Time) string {
	switch daysBetween(now, t) {
	case 0:
		return "today"
	case 1:
		return "tomorrow"
	default:
		return t.Format("Monday, January 2")
	}
}

func daysBetween(a, b time.Time) int {
	ad := time.Date(a.Year(), a.Month(), a.Day(), 0, 0, 0, 0, time.UTC)
	bd := time.Date(b.Year(), b.Month(), b.Day(), 0, 0, 0, 0, time.UTC)
	return int(bd.Sub(ad) / (24 * time.Hour))
}

func sameDate(a, b time.Time) bool {
	return a.Year() == b.Year() && a.YearDay() == b.YearDay()
}
