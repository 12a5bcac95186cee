package postal

import (
	"errors"
	"testing"

	"github.com/odit-bit/bizclock/biz/faults"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func Test_classify(t *testing.T) {
	testCases := []struct {
		name       string
		input      string
		kind       Kind
		prefix     string
		normalized string
	}{
		{name: "zip", input: "33067", kind: KindUS, prefix: "3", normalized: "33067"},
		{name: "zip plus four", input: "90210-1234", kind: KindUS, prefix: "9", normalized: "90210-1234"},
		{name: "zip padded", input: "  02134 ", kind: KindUS, prefix: "0", normalized: "02134"},
		{name: "postal with space", input: "K1A 0B1", kind: KindCA, prefix: "K", normalized: "K1A 0B1"},
		{name: "postal without space", input: "M5V3L9", kind: KindCA, prefix: "M", normalized: "M5V3L9"},
		{name: "postal lowercase", input: "v6b 1a1", kind: KindCA, prefix: "V", normalized: "V6B 1A1"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			code, err := Classify(tc.input)
			require.NoError(t, err)
			assert.Equal(t, tc.kind, code.Kind)
			assert.Equal(t, tc.prefix, code.Prefix)
			assert.Equal(t, tc.normalized, code.Normalized)

			// normalization is idempotent
			again, err := Classify(code.Normalized)
			require.NoError(t, err)
			assert.Equal(t, code, again)
		})
	}
}

func Test_classify_invalid(t *testing.T) {
	for _, input := range []string{
		"",
		"123",
		"ABCDE",
		"123456",
		"33067-12",
		"D1A 1A1", // D never leads a forward sortation area
		"K1A-0B1",
		"K11 0B1",
	} {
		t.Run(input, func(t *testing.T) {
			_, err := Classify(input)
			require.Error(t, err)

			var verr *faults.ValidationError
			assert.True(t, errors.As(err, &verr), "want ValidationError, got %T", err)
		})
	}
}
