package gcalendar

import "context"

// ICalendar is the subset of the Calendar API the reminder engine uses.
type ICalendar interface {
	CreateEvent(ctx context.Context, req CreateEventRequest) (*Event, error)
	ListEvents(ctx context.Context, req ListEventsRequest) ([]Event, error)
	DeleteEvent(ctx context.Context, calendarID, eventID string) error
}

var _ ICalendar = (*Client)(nil)
