package repository

import "errors"

var (
	ErrFailedToInsert = errors.New("failed to insert food log")
	ErrFailedToList   = errors.New("failed to list food logs")
	ErrFailedToDecode = errors.New("failed to decode food log")
)
