// Package timezone maps postal-code prefixes to IANA zones via static
// tables. Offset and DST computation stay with the Go tzdata; this
// package only chooses the zone.
package timezone

import (
	"time"

	"github.com/odit-bit/bizclock/biz/faults"
	"github.com/odit-bit/bizclock/biz/postal"
)

// Mapping is the resolved timezone for a postal code. Abbreviation
// depends on the instant passed to Resolve (EST vs EDT).
type Mapping struct {
	ZoneID       string
	Abbreviation string
	Country      postal.Kind
	Location     *time.Location
}

// ZIP leading digit to zone. Coarse on purpose: the voice agent needs
// the caller's clock, not a surveyor's.
var usZones = map[string]string{
	"0": "America/New_York",
	"1": "America/New_York",
	"2": "America/New_York",
	"3": "America/New_York",
	"4": "America/Detroit",
	"5": "America/Chicago",
	"6": "America/Chicago",
	"7": "America/Chicago",
	"8": "America/Denver",
	"9": "America/Los_Angeles",
}

// Forward sortation area leading letter to zone. Territories are folded
// into the nearest provincial zone.
var caZones = map[string]string{
	"A": "America/St_Johns",
	"B": "America/Halifax",
	"C": "America/Halifax",
	"E": "America/Moncton",
	"G": "America/Toronto",
	"H": "America/Toronto",
	"J": "America/Toronto",
	"K": "America/Toronto",
	"L": "America/Toronto",
	"M": "America/Toronto",
	"N": "America/Toronto",
	"P": "America/Toronto",
	"R": "America/Winnipeg",
	"S": "America/Regina",
	"T": "America/Edmonton",
	"V": "America/Vancouver",
	"X": "America/Edmonton",
	"Y": "America/Vancouver",
}

// Resolve classifies code and looks its prefix up in the static tables.
// A classifier failure surfaces as *faults.ValidationError; a prefix or
// zone miss (unreachable through Classify) as *faults.TimezoneError.
func Resolve(code string, now time.Time) (Mapping, error) {
	pc, err := postal.Classify(code)
	if err != nil {
		return Mapping{}, err
	}

	table := usZones
	if pc.Kind == postal.KindCA {
		table = caZones
	}
	zone, ok := table[pc.Prefix]
	if !ok {
		return Mapping{}, faults.Timezonef("no zone mapped for prefix %q", pc.Prefix)
	}

	loc, err := time.LoadLocation(zone)
	if err != nil {
		return Mapping{}, faults.Timezonef("unknown zone %q: %v", zone, err)
	}

	return Mapping{
		ZoneID:       zone,
		Abbreviation: now.In(loc).Format("MST"),
		Country:      pc.Kind,
		Location:     loc,
	}, nil
}
