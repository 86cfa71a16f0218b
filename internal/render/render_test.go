package render

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/viant/idgen"
)

func TestFormat(t *testing.T) {
	id := idgen.FromBits(1, -1)
	var testCases = []struct {
		description string
		format      string
		expect      string
		expectErr   bool
	}{
		{description: "uuid", format: FormatUUID, expect: "00000000-0000-0001-ffff-ffffffffffff"},
		{description: "hex", format: FormatHex, expect: "0000000000000001ffffffffffffffff"},
		{description: "bits", format: FormatBits, expect: "1 -1"},
		{description: "unknown", format: "base58", expectErr: true},
	}

	for _, testCase := range testCases {
		actual, err := Format(id, testCase.format)
		if testCase.expectErr {
			assert.True(t, errors.Is(err, ErrUnknownFormat), testCase.description)
			assert.True(t, errors.Is(Validate(testCase.format), ErrUnknownFormat), testCase.description)
			continue
		}
		assert.Nil(t, err, testCase.description)
		assert.Nil(t, Validate(testCase.format), testCase.description)
		assert.Equal(t, testCase.expect, actual, testCase.description)
	}
}
