package db_models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// QuizResult is written once per completed quiz session. FinalResult is a
// dash-joined 3-letter code ("A-C-E"); Answers keeps the serialized
// per-axis choice lists for later inspection.
type QuizResult struct {
	ID          uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	SessionID   string    `gorm:"index" json:"session_id"`
	FinalResult string    `json:"final_result"`
	Answers     string    `json:"answers"`
	CompletedAt time.Time `json:"completed_at"`
}

func (QuizResult) TableName() string {
	return "quiz_results"
}

func (r *QuizResult) BeforeCreate(tx *gorm.DB) error {
	if r.ID == uuid.Nil {
		r.ID = uuid.New()
	}
	if r.CompletedAt.IsZero() {
		r.CompletedAt = time.Now().UTC()
	}
	return nil
}
