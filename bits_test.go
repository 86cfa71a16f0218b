package idgen

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFold(t *testing.T) {
	var testCases = []struct {
		description string
		input       []byte
		expect      int64
	}{
		{description: "one", input: []byte{0, 0, 0, 0, 0, 0, 0, 1}, expect: 1},
		{description: "eight zero bytes then one", input: []byte{0, 0, 0, 0, 0, 0, 0, 0, 1}, expect: 1},
		{description: "all ones", input: []byte{0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff}, expect: -1},
		{description: "min", input: []byte{0x80, 0, 0, 0, 0, 0, 0, 0}, expect: math.MinInt64},
		{description: "max", input: []byte{0x7f, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff}, expect: math.MaxInt64},
		{description: "ordered", input: []byte{1, 2, 3, 4, 5, 6, 7, 8}, expect: 0x0102030405060708},
		{description: "empty", input: nil, expect: 0},
	}

	for _, testCase := range testCases {
		assert.EqualValues(t, testCase.expect, fold(testCase.input), testCase.description)
	}
}

func TestFromBits(t *testing.T) {
	id := FromBits(1, -1)
	assert.Equal(t, "00000000-0000-0001-ffff-ffffffffffff", id.String())

	hi, lo := Bits(id)
	assert.EqualValues(t, 1, hi)
	assert.EqualValues(t, -1, lo)

	hi, lo = Bits(FromBits(math.MinInt64, 0x0102030405060708))
	assert.EqualValues(t, int64(math.MinInt64), hi)
	assert.EqualValues(t, 0x0102030405060708, lo)
}
