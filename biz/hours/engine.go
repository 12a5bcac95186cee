// Package hours computes open/closed status for a business type in a
// timezone, folding public holidays into the weekly schedule.
package hours

import (
	"fmt"
	"time"

	"github.com/odit-bit/bizclock/biz/faults"
	"github.com/odit-bit/bizclock/biz/holiday"
)

const (
	// nextOpenScanDays caps the forward scan for the next open instant;
	// wide enough to span a weekend glued to a holiday cluster.
	nextOpenScanDays = 14
	// businessDayScanDays caps the next-business-day scan.
	businessDayScanDays = 30
	// upcomingWindowDays is the holiday lookahead attached to every
	// availability result.
	upcomingWindowDays = 30
)

// Engine evaluates the immutable weekly schedules against a holiday
// calendar. It holds no mutable state; every method is a pure function
// of its arguments.
type Engine struct {
	schedules map[BusinessType]WeeklySchedule
	calendar  holiday.Calendar
}

type Option func(*Engine)

// WithSchedules replaces the embedded schedule tables.
func WithSchedules(s map[BusinessType]WeeklySchedule) Option {
	return func(e *Engine) { e.schedules = s }
}

func NewEngine(c holiday.Calendar, opts ...Option) *Engine {
	e := &Engine{schedules: defaultSchedules, calendar: c}
	for _, o := range opts {
		o(e)
	}
	return e
}

// Availability is the full open/closed answer for one instant. Computed
// fresh per request, never cached.
type Availability struct {
	IsOpen           bool                 `json:"isOpen"`
	Reasoning        string               `json:"reasoning"`
	NextOpen         *time.Time           `json:"nextOpen,omitempty"`
	NextClose        *time.Time           `json:"nextClose,omitempty"`
	Today            DayWindow            `json:"today"`
	Holiday          *holiday.Info        `json:"holiday,omitempty"`
	UpcomingHolidays []holiday.Observance `json:"upcomingHolidays"`
}

// DateCheck answers whether a specific calendar day takes appointments.
type DateCheck struct {
	Available bool          `json:"isAvailable"`
	Reason    string        `json:"reason,omitempty"`
	Holiday   *holiday.Info `json:"holiday,omitempty"`
}

// BusinessDay is the first day open for business at or after a start
// date.
type BusinessDay struct {
	Date        time.Time `json:"date"`
	Open        string    `json:"openTime"`
	Close       string    `json:"closeTime"`
	DaysFromNow int       `json:"daysFromNow"`
}

func (e *Engine) schedule(bt BusinessType) WeeklySchedule {
	if s, ok := e.schedules[bt]; ok {
		return s
	}
	return e.schedules[DefaultType]
}

// CheckAvailability reports open/closed status at now in the given
// zone. A holiday wins over a weekly closure when both fall on today.
func (e *Engine) CheckAvailability(zoneID string, bt BusinessType, now time.Time) (Availability, error) {
	loc, err := time.LoadLocation(zoneID)
	if err != nil {
		return Availability{}, faults.Timezonef("unknown zone %q: %v", zoneID, err)
	}
	now = now.In(loc)

	sched := e.schedule(bt)
	win := sched[now.Weekday()]
	av := Availability{
		Today:            win,
		UpcomingHolidays: e.calendar.Upcoming(now, upcomingWindowDays),
	}

	if info, ok := e.calendar.Holiday(now); ok {
		av.Holiday = &info
		av.Reasoning = fmt.Sprintf("closed today for %s", info.Name)
		av.NextOpen = e.nextOpen(sched, now)
		return av, nil
	}

	if win.Closed {
		av.Reasoning = fmt.Sprintf("closed on %ss", now.Weekday())
		av.NextOpen = e.nextOpen(sched, now)
		return av, nil
	}

	open := onDate(now, win.Open)
	close := onDate(now, win.Close)
	switch {
	case now.Before(open):
		av.Reasoning = fmt.Sprintf("opens today at %s", win.Open)
		av.NextOpen = &open
	case now.After(close):
		av.Reasoning = fmt.Sprintf("closed today at %s", win.Close)
		av.NextOpen = e.nextOpen(sched, now)
	default:
		av.IsOpen = true
		av.Reasoning = fmt.Sprintf("open until %s", win.Close)
		av.NextClose = &close
	}
	return av, nil
}

// nextOpen scans forward from the day after ref for the first day that
// is neither weekly-closed nor a holiday, and returns that day's open
// instant. Nil when the cap is exhausted; callers phrase that as
// "contact us directly", not as an error.
func (e *Engine) nextOpen(sched WeeklySchedule, ref time.Time) *time.Time {
	for i := 1; i <= nextOpenScanDays; i++ {
		day := ref.AddDate(0, 0, i)
		win := sched[day.Weekday()]
		if win.Closed {
			continue
		}
		if _, ok := e.calendar.Holiday(day); ok {
			continue
		}
		t := onDate(day, win.Open)
		return &t
	}
	return nil
}

// DateAvailable reports whether date takes appointments. Unlike
// CheckAvailability's today branch, the weekly closure is checked first
// here; a Sunday holiday reports the Sunday closure.
func (e *Engine) DateAvailable(date time.Time, zoneID string, bt BusinessType) (DateCheck, error) {
	loc, err := time.LoadLocation(zoneID)
	if err != nil {
		return DateCheck{}, faults.Timezonef("unknown zone %q: %v", zoneID, err)
	}
	date = date.In(loc)

	win := e.schedule(bt)[date.Weekday()]
	if win.Closed {
		return DateCheck{
			Reason: fmt.Sprintf("we are closed on %ss", date.Weekday()),
		}, nil
	}
	if info, ok := e.calendar.Holiday(date); ok {
		return DateCheck{
			Reason:  fmt.Sprintf("we are closed for %s", info.Name),
			Holiday: &info,
		}, nil
	}
	return DateCheck{Available: true}, nil
}

// NextBusinessDay returns the first business day at or after start,
// with its configured hours and offset in days. Day zero qualifies on
// its weekday and holiday status alone; the scan does not consider
// whether start's clock is already past closing. Nil when nothing
// qualifies within the cap, which is a normal outcome.
func (e *Engine) NextBusinessDay(zoneID string, bt BusinessType, start time.Time) (*BusinessDay, error) {
	loc, err := time.LoadLocation(zoneID)
	if err != nil {
		return nil, faults.Timezonef("unknown zone %q: %v", zoneID, err)
	}
	start = start.In(loc)

	sched := e.schedule(bt)
	for i := 0; i <= businessDayScanDays; i++ {
		day := start.AddDate(0, 0, i)
		win := sched[day.Weekday()]
		if win.Closed {
			continue
		}
		if _, ok := e.calendar.Holiday(day); ok {
			continue
		}
		return &BusinessDay{
			Date:        time.Date(day.Year(), day.Month(), day.Day(), 0, 0, 0, 0, loc),
			Open:        win.Open,
			Close:       win.Close,
			DaysFromNow: i,
		}, nil
	}
	return nil, nil
}
