// Package clocktool serves local-time and timezone tools keyed by
// postal code.
package clocktool

import (
	"context"
	"fmt"
	"time"

	"github.com/odit-bit/bizclock/biz/holiday"
	"github.com/odit-bit/bizclock/biz/hours"
	"github.com/odit-bit/bizclock/biz/timezone"
	"github.com/odit-bit/bizclock/biz/tool"
)

const Namespace = "clock"

func init() {
	tool.Register(Namespace, New)
}

type Clock struct {
	now   func() time.Time
	tools []*tool.Tool
}

type timeArgs struct {
	ZipCode string `json:"zipCode" jsonschema:"description=US ZIP or Canadian postal code"`
	Format  string `json:"format,omitempty" jsonschema:"description=Clock style,enum=12,enum=24,default=12"`
}

type tzArgs struct {
	ZipCode string `json:"zipCode" jsonschema:"description=US ZIP or Canadian postal code"`
}

func New(cfg tool.Config) (tool.Provider, error) {
	c := &Clock{now: time.Now}

	bt, err := tool.New(
		"get_business_time",
		"Current local time, date and holiday context for a US or Canadian postal code.",
		&timeArgs{},
		c.businessTime,
	)
	if err != nil {
		return nil, err
	}
	tz, err := tool.New(
		"get_timezone_info",
		"Timezone name, UTC offset and DST status for a US or Canadian postal code.",
		&tzArgs{},
		c.timezoneInfo,
	)
	if err != nil {
		return nil, err
	}

	c.tools = []*tool.Tool{bt, tz}
	return c, nil
}

func (c *Clock) Tools() []*tool.Tool {
	return c.tools
}

func (c *Clock) businessTime(ctx context.Context, args map[string]any) (*tool.Result, error) {
	zip, _ := args["zipCode"].(string)
	format, _ := args["format"].(string)
	if format == "" {
		format = "12"
	}

	now := c.now()
	m, err := timezone.Resolve(zip, now)
	if err != nil {
		return nil, err
	}
	local := now.In(m.Location)
	cal := holiday.ForCountry(m.Country)

	var today *holiday.Info
	if info, ok := cal.Holiday(local); ok {
		today = &info
	}
	upcoming := cal.Upcoming(local, 30)

	text := fmt.Sprintf("It is %s %s on %s.",
		hours.ClockTime(local, format), m.Abbreviation, hours.DatePhrase(local))
	if today != nil {
		text += fmt.Sprintf(" Today is %s.", today.Name)
	}

	return &tool.Result{
		Text: text,
		Data: map[string]any{
			"time":         hours.ClockTime(local, format),
			"timezone":     m.ZoneID,
			"abbreviation": m.Abbreviation,
			"date": map[string]any{
				"year":    local.Year(),
				"month":   int(local.Month()),
				"day":     local.Day(),
				"weekday": local.Weekday().String(),
			},
			"isDST":            local.IsDST(),
			"holiday":          today,
			"upcomingHolidays": upcoming,
		},
	}, nil
}

func (c *Clock) timezoneInfo(ctx context.Context, args map[string]any) (*tool.Result, error) {
	zip, _ := args["zipCode"].(string)

	now := c.now()
	m, err := timezone.Resolve(zip, now)
	if err != nil {
		return nil, err
	}
	local := now.In(m.Location)
	cal := holiday.ForCountry(m.Country)

	var today *holiday.Info
	if info, ok := cal.Holiday(local); ok {
		today = &info
	}

	text := fmt.Sprintf("The timezone for %s is %s (%s), UTC offset %s.",
		zip, m.ZoneID, m.Abbreviation, local.Format("-07:00"))
	if local.IsDST() {
		text += " Daylight saving time is in effect."
	}
	if today != nil {
		text += fmt.Sprintf(" Today is %s.", today.Name)
	}

	return &tool.Result{
		Text: text,
		Data: map[string]any{
			"timezone":     m.ZoneID,
			"abbreviation": m.Abbreviation,
			"utcOffset":    local.Format("-07:00"),
			"isDST":        local.IsDST(),
			"date": map[string]any{
				"year":    local.Year(),
				"month":   int(local.Month()),
				"day":     local.Day(),
				"weekday": local.Weekday().String(),
			},
			"holiday":          today,
			"upcomingHolidays": cal.Upcoming(local, 30),
		},
	}, nil
}
