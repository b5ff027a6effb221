package response_models

import (
	"time"

	"jejuquiz/internal/models/db_models"
)

// QuizResultResponse is returned once a session is scored and saved.
type QuizResultResponse struct {
	SessionID   string    `json:"session_id"`
	FinalResult string    `json:"final_result"`
	TypeName    string    `json:"type_name"`
	CompletedAt time.Time `json:"completed_at"`
}

// SessionData bundles everything recorded for one quiz session.
type SessionData struct {
	SessionID string                   `json:"session_id"`
	Responses []db_models.QuizResponse `json:"responses"`
	Result    *db_models.QuizResult    `json:"result"`
}

// QuizStats is the sessionless view of /api/quiz/data.
type QuizStats struct {
	TotalCount    int64                  `json:"totalCount"`
	RecentResults []db_models.QuizResult `json:"recentResults"`
	ResultStats   map[string]int         `json:"resultStats"`
}
