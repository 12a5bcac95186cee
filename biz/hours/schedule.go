package hours

import (
	_ "embed"
	"fmt"
	"time"

	"gopkg.in/yaml.v3"
)

type BusinessType string

const (
	Dental  BusinessType = "dental"
	Medical BusinessType = "medical"
	General BusinessType = "general"

	DefaultType = Dental
)

// DayWindow is one day's configured hours. Closed days still carry
// parseable open/close times so a day can be re-opened by flipping the
// flag without inventing hours.
type DayWindow struct {
	Open   string `yaml:"open" json:"open"`
	Close  string `yaml:"close" json:"close"`
	Closed bool   `yaml:"closed" json:"closed"`
}

// WeeklySchedule maps every weekday to its window. Immutable after
// parse.
type WeeklySchedule map[time.Weekday]DayWindow

//go:embed schedules.yaml
var schedulesYAML []byte

var defaultSchedules = mustParseSchedules(schedulesYAML)

var weekdayNames = map[string]time.Weekday{
	"sunday":    time.Sunday,
	"monday":    time.Monday,
	"tuesday":   time.Tuesday,
	"wednesday": time.Wednesday,
	"thursday":  time.Thursday,
	"friday":    time.Friday,
	"saturday":  time.Saturday,
}

// ParseSchedules reads the per-business-type weekly tables and enforces
// the schedule invariants: all seven days present, times parse as
// HH:MM, open strictly before close on any day not marked closed.
func ParseSchedules(raw []byte) (map[BusinessType]WeeklySchedule, error) {
	var doc map[BusinessType]map[string]DayWindow
	if err := yaml.Unmarshal(raw, &doc); err != nil {
		return nil, fmt.Errorf("hours: parse schedules: %w", err)
	}

	out := make(map[BusinessType]WeeklySchedule, len(doc))
	for bt, days := range doc {
		ws := make(WeeklySchedule, 7)
		for name, win := range days {
			wd, ok := weekdayNames[name]
			if !ok {
				return nil, fmt.Errorf("hours: %s: unknown weekday %q", bt, name)
			}
			if err := win.validate(); err != nil {
				return nil, fmt.Errorf("hours: %s %s: %w", bt, name, err)
			}
			ws[wd] = win
		}
		for d := time.Sunday; d <= time.Saturday; d++ {
			if _, ok := ws[d]; !ok {
				return nil, fmt.Errorf("hours: %s: missing %s", bt, d)
			}
		}
		out[bt] = ws
	}
	return out, nil
}

func mustParseSchedules(raw []byte) map[BusinessType]WeeklySchedule {
	s, err := ParseSchedules(raw)
	if err != nil {
		panic(err)
	}
	for _, bt := range []BusinessType{Dental, Medical, General} {
		if _, ok := s[bt]; !ok {
			panic(fmt.Sprintf("hours: embedded schedules missing %s", bt))
		}
	}
	return s
}

func (w DayWindow) validate() error {
	open, err := parseClock(w.Open)
	if err != nil {
		return fmt.Errorf("bad open time %q", w.Open)
	}
	close, err := parseClock(w.Close)
	if err != nil {
		return fmt.Errorf("bad close time %q", w.Close)
	}
	if !w.Closed && !open.Before(close) {
		return fmt.Errorf("open %s must be before close %s", w.Open, w.Close)
	}
	return nil
}

func parseClock(s string) (time.Time, error) {
	return time.Parse("15:04", s)
}

// onDate places a HH:MM clock string onto day's calendar date in day's
// location. The string is validated at schedule load.
func onDate(day time.Time, clock string) time.Time {
	t, _ := parseClock(clock)
	return time.Date(day.Year(), day.Month(), day.Day(), t.Hour(), t.Minute(), 0, 0, day.Location())
}
