// Package hourstool serves the business-hours tools: open/closed
// status, per-date availability, and next-available-day lookup.
package hourstool

import (
	"context"
	"fmt"
	"time"

	"github.com/odit-bit/bizclock/biz/faults"
	"github.com/odit-bit/bizclock/biz/holiday"
	"github.com/odit-bit/bizclock/biz/hours"
	"github.com/odit-bit/bizclock/biz/postal"
	"github.com/odit-bit/bizclock/biz/timezone"
	"github.com/odit-bit/bizclock/biz/tool"
)

const Namespace = "hours"

// holidayCalloutDays is how close an upcoming holiday must be before
// check_business_hours mentions it unprompted.
const holidayCalloutDays = 7

func init() {
	tool.Register(Namespace, New)
}

type Hours struct {
	now   func() time.Time
	tools []*tool.Tool
}

type hoursArgs struct {
	ZipCode      string `json:"zipCode" jsonschema:"description=US ZIP or Canadian postal code"`
	BusinessType string `json:"businessType,omitempty" jsonschema:"description=Schedule to check,enum=dental,enum=medical,enum=general,default=dental"`
}

type dateArgs struct {
	ZipCode      string `json:"zipCode" jsonschema:"description=US ZIP or Canadian postal code"`
	Date         string `json:"date" jsonschema:"description=Calendar date as YYYY-MM-DD"`
	BusinessType string `json:"businessType,omitempty" jsonschema:"description=Schedule to check,enum=dental,enum=medical,enum=general,default=dental"`
}

func New(cfg tool.Config) (tool.Provider, error) {
	h := &Hours{now: time.Now}

	check, err := tool.New(
		"check_business_hours",
		"Whether the business is open right now for a postal code, with next open or close time and holiday notes.",
		&hoursArgs{},
		h.checkBusinessHours,
	)
	if err != nil {
		return nil, err
	}
	avail, err := tool.New(
		"check_date_availability",
		"Whether a specific date is available for appointments.",
		&dateArgs{},
		h.checkDateAvailability,
	)
	if err != nil {
		return nil, err
	}
	next, err := tool.New(
		"get_next_available_day",
		"The next day the business is open, within 30 days.",
		&hoursArgs{},
		h.nextAvailableDay,
	)
	if err != nil {
		return nil, err
	}

	h.tools = []*tool.Tool{check, avail, next}
	return h, nil
}

func (h *Hours) Tools() []*tool.Tool {
	return h.tools
}

func engineFor(k postal.Kind) *hours.Engine {
	return hours.NewEngine(holiday.ForCountry(k))
}

func businessType(args map[string]any) hours.BusinessType {
	if s, _ := args["businessType"].(string); s != "" {
		return hours.BusinessType(s)
	}
	return hours.DefaultType
}

func (h *Hours) checkBusinessHours(ctx context.Context, args map[string]any) (*tool.Result, error) {
	zip, _ := args["zipCode"].(string)

	now := h.now()
	m, err := timezone.Resolve(zip, now)
	if err != nil {
		return nil, err
	}

	eng := engineFor(m.Country)
	av, err := eng.CheckAvailability(m.ZoneID, businessType(args), now)
	if err != nil {
		return nil, err
	}

	text := hours.Sentence(av, now.In(m.Location), m.Abbreviation)
	if callout := hours.HolidayCallout(av.UpcomingHolidays, holidayCalloutDays); callout != "" {
		text += " " + callout
	}

	return &tool.Result{Text: text, Data: av}, nil
}

func (h *Hours) checkDateAvailability(ctx context.Context, args map[string]any) (*tool.Result, error) {
	zip, _ := args["zipCode"].(string)
	dateStr, _ := args["date"].(string)

	now := h.now()
	m, err := timezone.Resolve(zip, now)
	if err != nil {
		return nil, err
	}

	date, err := time.ParseInLocation("2006-01-02", dateStr, m.Location)
	if err != nil {
		return nil, faults.Validationf(dateStr, "date must be YYYY-MM-DD")
	}

	eng := engineFor(m.Country)
	dc, err := eng.DateAvailable(date, m.ZoneID, businessType(args))
	if err != nil {
		return nil, err
	}

	var text string
	if dc.Available {
		text = fmt.Sprintf("Yes, %s is available for appointments.", hours.DatePhrase(date))
	} else {
		text = fmt.Sprintf("No, %s is not available: %s.", hours.DatePhrase(date), dc.Reason)
	}
	return &tool.Result{Text: text, Data: dc}, nil
}

func (h *Hours) nextAvailableDay(ctx context.Context, args map[string]any) (*tool.Result, error) {
	zip, _ := args["zipCode"].(string)

	now := h.now()
	m, err := timezone.Resolve(zip, now)
	if err != nil {
		return nil, err
	}

	eng := engineFor(m.Country)
	bd, err := eng.NextBusinessDay(m.ZoneID, businessType(args), now)
	if err != nil {
		return nil, err
	}
	if bd == nil {
		// Normal outcome, not an error: the caller is told to reach out.
		return &tool.Result{
			Text: "I couldn't find an available day in the next 30 days. Please contact us directly to schedule.",
			Data: map[string]any{"found": false},
		}, nil
	}

	text := fmt.Sprintf("Our next available day is %s, open %s to %s.",
		hours.DayPhrase(now.In(m.Location), bd.Date), bd.Open, bd.Close)
	return &tool.Result{Text: text, Data: bd}, nil
}
