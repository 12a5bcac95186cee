package timezone

import (
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/odit-bit/bizclock/biz/faults"
	"github.com/odit-bit/bizclock/biz/postal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var winter = time.Date(2026, 2, 3, 15, 0, 0, 0, time.UTC)

func Test_resolve_us_zones(t *testing.T) {
	zones := map[string]bool{}
	for d := 0; d <= 9; d++ {
		code := fmt.Sprintf("%d3067", d)
		m, err := Resolve(code, winter)
		require.NoError(t, err)
		assert.Equal(t, postal.KindUS, m.Country)
		zones[m.ZoneID] = true
	}
	// chosen solely by leading digit
	assert.Len(t, zones, 5)
}

func Test_resolve_ca_zones(t *testing.T) {
	zones := map[string]bool{}
	for letter := range caZones {
		m, err := Resolve(letter+"1A 1A1", winter)
		require.NoError(t, err)
		assert.Equal(t, postal.KindCA, m.Country)
		zones[m.ZoneID] = true
	}
	assert.Len(t, zones, 8)
}

func Test_resolve_ignores_trailing_digits(t *testing.T) {
	a, err := Resolve("30000", winter)
	require.NoError(t, err)
	b, err := Resolve("39999-4321", winter)
	require.NoError(t, err)
	assert.Equal(t, a.ZoneID, b.ZoneID)
	assert.Equal(t, "America/New_York", a.ZoneID)
}

func Test_resolve_abbreviation_follows_dst(t *testing.T) {
	m, err := Resolve("33067", winter)
	require.NoError(t, err)
	assert.Equal(t, "EST", m.Abbreviation)

	summer := time.Date(2026, 7, 15, 15, 0, 0, 0, time.UTC)
	m, err = Resolve("33067", summer)
	require.NoError(t, err)
	assert.Equal(t, "EDT", m.Abbreviation)
}

func Test_resolve_invalid_is_validation_error(t *testing.T) {
	for _, input := range []string{"", "123", "ABCDE", "D1A 1A1"} {
		_, err := Resolve(input, winter)
		require.Error(t, err)

		var verr *faults.ValidationError
		var terr *faults.TimezoneError
		assert.True(t, errors.As(err, &verr), "want ValidationError for %q, got %T", input, err)
		assert.False(t, errors.As(err, &terr), "must not be TimezoneError for %q", input)
	}
}

func Test_tables_are_loadable(t *testing.T) {
	for prefix, zone := range usZones {
		_, err := time.LoadLocation(zone)
		require.NoError(t, err, "us prefix %s", prefix)
	}
	for prefix, zone := range caZones {
		_, err := time.LoadLocation(zone)
		require.NoError(t, err, "ca prefix %s", prefix)
	}
}
