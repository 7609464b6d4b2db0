package http

import (
	"github.com/gin-gonic/gin"

	"fitness-agent/internal/model"
)

type getReq struct {
	UserID string
	Period model.Period
}

func (h *handler) processGetReq(c *gin.Context) (getReq, error) {
	req := getReq{UserID: c.Param("user_id")}
	if req.UserID == "" {
		return req, errUserIDMissing
	}
	p, err := model.ParsePeriod(c.Query("period"))
	if err != nil {
		return req, errWrongPeriod
	}
	req.Period = p
	return req, nil
}

type summaryResp struct {
	Period         string  `json:"period"`
	AvgCalories    float64 `json:"avg_calories"`
	TotalCalories  int     `json:"total_calories"`
	DaysLogged     int     `json:"days_logged"`
	GoalAdherence  float64 `json:"goal_adherence"`
	TargetCalories int     `json:"target_calories"`
	Insights       string  `json:"insights"`
}

func (h *handler) newSummaryResp(p model.Period, s model.Summary) summaryResp {
	return summaryResp{
		Period:         string(p),
		AvgCalories:    s.AvgCalories,
		TotalCalories:  s.TotalCalories,
		DaysLogged:     s.DaysLogged,
		GoalAdherence:  s.GoalAdherence,
		TargetCalories: s.TargetCalories,
		Insights:       s.Insights,
	}
}
