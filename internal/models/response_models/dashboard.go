package response_models

import (
	"time"

	"jejuquiz/internal/models/db_models"
)

// DashboardData is the chart-ready payload for the result dashboard page.
type DashboardData struct {
	// BarChartData entries carry dynamic keys: the question title under
	// "name", one count per option label, and "total".
	BarChartData []map[string]interface{} `json:"barChartData"`
	PieChartData []PieSlice               `json:"pieChartData"`
	// QuestionStats maps question id -> selected option -> count.
	QuestionStats     map[int]map[string]int   `json:"questionStats"`
	FinalResultStats  map[string]int           `json:"finalResultStats"`
	TotalResponses    int                      `json:"totalResponses"`
	DetailedResponses []db_models.QuizResponse `json:"detailedResponses"`
	LastUpdated       time.Time                `json:"lastUpdated"`
}

type PieSlice struct {
	Name  string `json:"name"`
	Value int    `json:"value"`
	Fill  string `json:"fill"`
}
