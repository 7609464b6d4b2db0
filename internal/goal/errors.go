package goal

import "errors"

var (
	ErrGoalNotFound   = errors.New("no goal found for user")
	ErrUserIDRequired = errors.New("user id is required")
)
