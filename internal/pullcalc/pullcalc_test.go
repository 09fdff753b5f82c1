package pullcalc

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCalculate(t *testing.T) {
	type testCase struct {
		crystals, tens, singles float64
		expect                  string
	}

	testCases := []testCase{
		{3000, 0, 0, "Total: 10 pulls (3.33%)"},
		{300, 0, 0, "Total: 1 pulls (0.33%)"},
		{0, 1, 5, "Total: 15 pulls (5.00%)"},
		{3450, 2, 3, "Total: 34 pulls (11.33%)"},
		{0, 0, 0, "Total: 0 pulls (0.00%)"},
		{299, 0, 0, "Total: 0 pulls (0.00%)"},
		{90000, 0, 0, "Total: 300 pulls (100.00%)"},
	}

	for _, tc := range testCases {
		assert.Equal(t, tc.expect, Calculate(tc.crystals, tc.tens, tc.singles),
			"crystals=%v tens=%v singles=%v", tc.crystals, tc.tens, tc.singles)
	}
}

func TestCompute(t *testing.T) {
	r := Compute(3450, 2, 3)
	assert.Equal(t, 34, r.TotalPulls)
	assert.InDelta(t, 11.333, r.SparkPercentage, 0.001)
}

func TestParseAmount(t *testing.T) {
	cases := map[string]float64{
		"3000":  3000,
		" 12 ":  12,
		"1.5":   1.5,
		"":      0,
		"abc":   0,
		"-5":    0,
		"NaN":   0,
		"+Inf":  0,
		"1e400": 0,
	}
	for in, want := range cases {
		assert.Equal(t, want, ParseAmount(in), "input %q", in)
	}
}
