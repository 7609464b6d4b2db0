package telegram

import "time"

const (
	userIDPrefix   = "telegram_"
	processTimeout = 2 * time.Minute

	commandStart = "/start"
	commandHelp  = "/help"

	replyStart = "👋 Welcome to the Fitness AI Agent!\n\n" +
		"Tell me what you ate and I'll estimate the calories and keep a log. " +
		"You can also set a goal or ask for a summary.\n\n" +
		"Example: \"I had 2 eggs and a slice of toast for breakfast\""
	replyHelp = "How to use:\n\n" +
		"• Log food: \"I ate a bowl of oatmeal with a banana\"\n" +
		"• Set a goal: \"I want to lose weight, 1800 calories a day\"\n" +
		"• Get a summary: \"How did I do this week?\""
	replyFailed = "Sorry, something went wrong while processing your message. Please try again."
)
