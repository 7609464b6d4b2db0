package reminder

// MealInput schedules a meal log reminder. Time is either RFC3339 or a 24h
// "HH:MM" clock, in which case Day ("today", "tomorrow", "next friday", ...)
// picks the date and defaults to today.
type MealInput struct {
	UserID   string
	MealType string
	Time     string
	Day      string
}

// WeeklyInput schedules the weekly summary. DayOfWeek counts from Monday = 0.
type WeeklyInput struct {
	UserID    string
	DayOfWeek int
}
