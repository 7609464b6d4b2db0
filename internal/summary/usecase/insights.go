package usecase

import (
	"fmt"
	"math"
	"strings"
)

// Insights returns the calorie line followed by the consistency line.
func Insights(avg float64, target, days int) string {
	lines := make([]string, 0, 2)

	diff := avg - float64(target)
	switch {
	case math.Abs(diff) < OnTrackToleranceKcal:
		lines = append(lines, InsightOnTrack)
	case diff > 0:
		lines = append(lines, fmt.Sprintf(InsightOver, diff))
	default:
		lines = append(lines, fmt.Sprintf(InsightUnder, math.Abs(diff)))
	}

	if days < ConsistentDays {
		lines = append(lines, InsightLogMore)
	} else {
		lines = append(lines, fmt.Sprintf(InsightGreatLogging, days))
	}

	return strings.Join(lines, "\n")
}
