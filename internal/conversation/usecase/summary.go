package usecase

import (
	"context"
	"fmt"
	"strings"

	"fitness-agent/internal/conversation"
	"fitness-agent/internal/model"
)

func (uc *implUseCase) summarize(ctx context.Context, st *conversation.State) model.Stage {
	p := DetectPeriod(st.Message())
	st.SummaryPeriod = &p

	s, err := uc.summary.ForPeriod(ctx, st.UserID(), p)
	if err != nil {
		uc.l.Errorf(ctx, "%s: ForPeriod: %v", LogPrefixSummary, err)
		st.Fail(err, ResponseFailed)
		return ""
	}
	st.SummaryData = &s
	st.SetMeta(MetaPeriod, p)
	st.SetMeta(MetaSummary, s)

	st.Response = fmt.Sprintf(ResponseSummary, p.Title(), s.DaysLogged, s.AvgCalories, s.GoalAdherence, s.Insights)
	return ""
}

// DetectPeriod picks the summary window a message asks for. Weekly unless
// the message mentions a day or a month.
func DetectPeriod(message string) model.Period {
	m := strings.ToLower(message)
	switch {
	case strings.Contains(m, "daily"), strings.Contains(m, "today"):
		return model.PeriodDaily
	case strings.Contains(m, "monthly"), strings.Contains(m, "month"):
		return model.PeriodMonthly
	default:
		return model.DefaultPeriod
	}
}
