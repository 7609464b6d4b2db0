package conversation

import "errors"

var (
	ErrUserIDRequired    = errors.New("user id is required")
	ErrMessageTooLong    = errors.New("message is too long")
	ErrIntentAlreadySet  = errors.New("intent already set")
	ErrIllegalTransition = errors.New("illegal stage transition")
)
