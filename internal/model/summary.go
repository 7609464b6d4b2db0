package model

import (
	"strings"
	"time"
)

// Period is the window a summary covers, counted back from now.
type Period string

const (
	PeriodDaily   Period = "daily"
	PeriodWeekly  Period = "weekly"
	PeriodMonthly Period = "monthly"

	DefaultPeriod      = PeriodWeekly
	DefaultSummaryDays = 7
)

// Periods lists every accepted summary period.
var Periods = []Period{PeriodDaily, PeriodWeekly, PeriodMonthly}

// ParsePeriod validates s, returning DefaultPeriod for an empty string.
func ParsePeriod(s string) (Period, error) {
	if s == "" {
		return DefaultPeriod, nil
	}
	p := Period(strings.ToLower(strings.TrimSpace(s)))
	for _, v := range Periods {
		if v == p {
			return p, nil
		}
	}
	return "", ErrInvalidSummaryPeriod
}

// Range returns [now - window, now] for p. Unknown periods use the monthly window.
func (p Period) Range(now time.Time) (time.Time, time.Time) {
	switch p {
	case PeriodDaily:
		return now.AddDate(0, 0, -1), now
	case PeriodWeekly:
		return now.AddDate(0, 0, -DefaultSummaryDays), now
	default:
		return now.AddDate(0, 0, -30), now
	}
}

// Title is the capitalized period name, e.g. "Weekly".
func (p Period) Title() string {
	if p == "" {
		return ""
	}
	s := string(p)
	return strings.ToUpper(s[:1]) + s[1:]
}

// Summary is the aggregate view of a user's food logs over a period.
type Summary struct {
	AvgCalories    float64 `json:"avg_calories"`
	TotalCalories  int     `json:"total_calories"`
	DaysLogged     int     `json:"days_logged"`
	GoalAdherence  float64 `json:"goal_adherence"`
	TargetCalories int     `json:"target_calories"`
	Insights       string  `json:"insights"`
}
