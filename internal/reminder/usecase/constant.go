package usecase

const (
	mealTitleFormat       = "Log your %s"
	mealDescriptionFormat = "Don't forget to log your %s in the Fitness AI Agent!"

	weeklyTitle       = "Weekly Fitness Summary"
	weeklyDescription = "Check out your weekly fitness progress!"
)
