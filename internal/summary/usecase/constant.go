package usecase

const (
	InsightNoData        = "No data logged for this period."
	InsightOnTrack       = "✅ You're right on track with your calorie goal!"
	InsightOver          = "⚠️ You're averaging %.0f calories over your goal."
	InsightUnder         = "📉 You're averaging %.0f calories under your goal."
	InsightLogMore       = "💡 Try to log more consistently for better tracking."
	InsightGreatLogging  = "🎉 Great job logging %d days!"
	OnTrackToleranceKcal = 100
	ConsistentDays       = 5
)
