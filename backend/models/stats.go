package models

import "time"

// Stats are derived from a Progress record on every read; nothing here is
// authoritative state.
type Stats struct {
	TotalDays      int `json:"totalDays"`
	CompletedDays  int `json:"completedDays"`
	CompletionRate int `json:"completionRate"`
	CurrentStreak  int `json:"currentStreak"`
	DsaCompleted   int `json:"dsaCompleted"`
	DevCompleted   int `json:"devCompleted"`
	DaysRemaining  int `json:"daysRemaining"`
}

type ChartDataset struct {
	Label string `json:"label,omitempty"`
	Data  []int  `json:"data"`
}

type ChartData struct {
	Labels   []string       `json:"labels"`
	Datasets []ChartDataset `json:"datasets"`
}

type Analytics struct {
	Stats        Stats     `json:"stats"`
	Weekly       ChartData `json:"weekly"`
	Distribution ChartData `json:"distribution"`
}

// StatsSnapshot is the daily materialization written to stats/{uid}.
type StatsSnapshot struct {
	Stats       Stats     `json:"stats"`
	GeneratedAt time.Time `json:"generatedAt"`
}
