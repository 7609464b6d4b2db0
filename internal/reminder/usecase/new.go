package usecase

import (
	"time"

	"fitness-agent/internal/reminder"
	"fitness-agent/internal/reminder/repository"
	"fitness-agent/pkg/datemath"
	"fitness-agent/pkg/gcalendar"
	"fitness-agent/pkg/log"
)

type implUseCase struct {
	l          log.Logger
	cal        gcalendar.ICalendar
	repo       repository.Repository
	dates      *datemath.Parser
	calendarID string
	now        func() time.Time
}

var _ reminder.UseCase = (*implUseCase)(nil)

// New creates the reminder UseCase. Times without a zone are read in the
// parser's timezone, which is also the timezone of the calendar events.
func New(l log.Logger, cal gcalendar.ICalendar, repo repository.Repository, dates *datemath.Parser, calendarID string) *implUseCase {
	if calendarID == "" {
		calendarID = gcalendar.DefaultCalendarID
	}
	return &implUseCase{
		l:          l,
		cal:        cal,
		repo:       repo,
		dates:      dates,
		calendarID: calendarID,
		now:        time.Now,
	}
}
