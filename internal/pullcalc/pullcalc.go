// Package pullcalc converts gacha currency into a pull count and the
// resulting progress towards a spark.
package pullcalc

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

const (
	CrystalsPerTenPull    = 3000
	CrystalsPerSinglePull = 300
	// SparkThreshold is the number of pulls after which a spark is granted.
	SparkThreshold = 300
)

type Result struct {
	TotalPulls      int     `json:"totalPulls"`
	SparkPercentage float64 `json:"sparkPercentage"`
}

// Display renders r as "Total: 34 pulls (11.33%)".
func (r Result) Display() string {
	return fmt.Sprintf("Total: %d pulls (%.2f%%)", r.TotalPulls, r.SparkPercentage)
}

// Compute expects non-negative, finite inputs; see ParseAmount. Fractional
// ticket counts are truncated together with the total.
func Compute(crystals, tenPullTickets, singlePullTickets float64) Result {
	tens := math.Floor(crystals / CrystalsPerTenPull)
	singles := math.Floor(math.Mod(crystals, CrystalsPerTenPull) / CrystalsPerSinglePull)

	total := int(math.Floor(10*tens + singles + 10*tenPullTickets + singlePullTickets))
	return Result{
		TotalPulls:      total,
		SparkPercentage: 100 * float64(total) / SparkThreshold,
	}
}

func Calculate(crystals, tenPullTickets, singlePullTickets float64) string {
	return Compute(crystals, tenPullTickets, singlePullTickets).Display()
}

// ParseAmount sanitises user input for Compute: anything that is not a
// finite, non-negative number counts as zero.
func ParseAmount(s string) float64 {
	v, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil || math.IsNaN(v) || math.IsInf(v, 0) || v < 0 {
		return 0
	}
	return v
}
