package model

// AnalyticsData is dashboard filler: pseudo-random but shaped series and
// aggregates. Deterministic only in shape, not values.
type AnalyticsData struct {
	ConversationData     []ConversationPoint  `json:"conversation_data"`
	ResponseTimeData     []ResponseTimePoint  `json:"response_time_data"`
	CategoryDistribution CategoryDistribution `json:"category_distribution"`
	SatisfactionData     SatisfactionData     `json:"satisfaction_data"`
	AIUsageData          AIUsageData          `json:"ai_usage_data"`
}

// ConversationPoint is one day of conversation volume.
type ConversationPoint struct {
	Date     string `json:"date"`
	Total    int    `json:"total"`
	Resolved int    `json:"resolved"`
}

// ResponseTimePoint is one day of average first-response time, in minutes.
type ResponseTimePoint struct {
	Date string  `json:"date"`
	Time float64 `json:"time"`
}

// CategoryDistribution is the percentage split of conversations by
// category.
type CategoryDistribution struct {
	Support int `json:"support"`
	Orders  int `json:"orders"`
	General int `json:"general"`
}

// SatisfactionData is the percentage split of CSAT responses.
type SatisfactionData struct {
	VerySatisfied    int `json:"very_satisfied"`
	Satisfied        int `json:"satisfied"`
	Neutral          int `json:"neutral"`
	Dissatisfied     int `json:"dissatisfied"`
	VeryDissatisfied int `json:"very_dissatisfied"`
}

// AIUsageData summarizes assistant usage.
type AIUsageData struct {
	TotalQueries     int          `json:"total_queries"`
	AverageQueryTime float64      `json:"average_query_time"`
	TopQueries       []QueryCount `json:"top_queries"`
	AIAccuracy       float64      `json:"ai_accuracy"`
}

// QueryCount is one popular assistant query with its frequency.
type QueryCount struct {
	Query string `json:"query"`
	Count int    `json:"count"`
}
