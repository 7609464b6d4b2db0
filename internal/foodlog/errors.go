package foodlog

import "errors"

var (
	ErrUserIDRequired = errors.New("user id is required")
	ErrNoFoodItems    = errors.New("no food items to estimate")
	ErrEstimateFailed = errors.New("calorie estimation failed")
)
