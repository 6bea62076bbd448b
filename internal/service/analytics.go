package service

import (
	"context"
	"net/http"
	"time"

	"github.com/chiragSahani/copilot-inbox/internal/model"
	"github.com/chiragSahani/copilot-inbox/internal/simulator"
)

// GetAnalyticsData synthesizes dashboard series: 30 daily points plus
// aggregate splits. The shape is stable; the values are random on every
// call. This is UI filler, not a reproducible computation.
func (s *DataService) GetAnalyticsData(ctx context.Context) model.Response[*model.AnalyticsData] {
	if err := s.sim.Delay(ctx, simulator.Default); err != nil {
		return model.Fail[*model.AnalyticsData](http.StatusInternalServerError, "request cancelled")
	}

	if s.failInjected("get_analytics_data") {
		return model.Fail[*model.AnalyticsData](http.StatusInternalServerError, "Failed to fetch analytics data")
	}

	today := time.Now()

	conversationData := make([]model.ConversationPoint, 30)
	responseTimeData := make([]model.ResponseTimePoint, 30)
	for i := 0; i < 30; i++ {
		date := today.AddDate(0, 0, -(29 - i)).Format("2006-01-02")
		conversationData[i] = model.ConversationPoint{
			Date:     date,
			Total:    s.randInt(5, 24),
			Resolved: s.randInt(3, 17),
		}
		responseTimeData[i] = model.ResponseTimePoint{
			Date: date,
			Time: s.randFloat(1, 6),
		}
	}

	data := &model.AnalyticsData{
		ConversationData: conversationData,
		ResponseTimeData: responseTimeData,
		CategoryDistribution: model.CategoryDistribution{
			Support: s.randInt(30, 59),
			Orders:  s.randInt(20, 39),
			General: s.randInt(10, 29),
		},
		SatisfactionData: model.SatisfactionData{
			VerySatisfied:    s.randInt(30, 49),
			Satisfied:        s.randInt(20, 39),
			Neutral:          s.randInt(5, 14),
			Dissatisfied:     s.randInt(3, 7),
			VeryDissatisfied: s.randInt(1, 3),
		},
		AIUsageData: model.AIUsageData{
			TotalQueries:     s.randInt(1000, 1499),
			AverageQueryTime: s.randFloat(1, 3),
			TopQueries: []model.QueryCount{
				{Query: "How do I get a refund?", Count: s.randInt(50, 99)},
				{Query: "Where is my order?", Count: s.randInt(40, 79)},
				{Query: "How to reset password?", Count: s.randInt(30, 59)},
				{Query: "Return policy", Count: s.randInt(25, 49)},
				{Query: "Shipping options", Count: s.randInt(20, 39)},
			},
			AIAccuracy: s.randFloat(85, 95),
		},
	}

	return model.OK(http.StatusOK, data)
}
