package conversation

import "context"

// UseCase turns one inbound message into a reply.
type UseCase interface {
	// HandleMessage always returns a Result with a non-empty Response. The
	// error is a *model.ValidationError when the input was rejected before
	// any processing; every other failure is reported through Result.Status.
	HandleMessage(ctx context.Context, userID, message string) (Result, error)
}
