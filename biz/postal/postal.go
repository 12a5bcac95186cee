// Package postal classifies US ZIP and Canadian postal codes and
// extracts the region prefix the timezone tables are keyed on.
package postal

import (
	"regexp"
	"strings"

	"github.com/odit-bit/bizclock/biz/faults"
)

type Kind string

const (
	KindUS Kind = "US"
	KindCA Kind = "CA"
)

// Code is a normalized, classified postal code.
type Code struct {
	Kind       Kind
	Prefix     string
	Normalized string
}

var (
	// NNNNN or NNNNN-NNNN
	usPattern = regexp.MustCompile(`^[0-9]{5}(-[0-9]{4})?$`)
	// A1A 1A1, internal space optional. D, F, I, O, Q, U, W, Z never
	// lead a forward sortation area.
	caPattern = regexp.MustCompile(`^[ABCEGHJKLMNPRSTVXY][0-9][A-Z] ?[0-9][A-Z][0-9]$`)
)

// Classify trims and upper-cases raw, then matches it against the US
// and Canadian patterns. Normalization is idempotent: classifying
// Code.Normalized again yields the same Code.
func Classify(raw string) (Code, error) {
	code := strings.ToUpper(strings.TrimSpace(raw))
	switch {
	case usPattern.MatchString(code):
		return Code{Kind: KindUS, Prefix: code[:1], Normalized: code}, nil
	case caPattern.MatchString(code):
		return Code{Kind: KindCA, Prefix: code[:1], Normalized: code}, nil
	}
	return Code{}, faults.Validationf(raw, "not a US ZIP or Canadian postal code")
}
