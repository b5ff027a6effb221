package db_models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// QuizResponse is one answered question. Rows are insert-only and retained
// indefinitely.
type QuizResponse struct {
	ID             uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	SessionID      string    `gorm:"index" json:"session_id"`
	QuestionID     int       `json:"question_id"`
	Axis           string    `json:"axis"`
	SelectedOption string    `json:"selected_option"`
	QuestionText   string    `json:"question_text"`
	CreatedAt      time.Time `json:"created_at"`
}

func (QuizResponse) TableName() string {
	return "quiz_responses"
}

func (r *QuizResponse) BeforeCreate(tx *gorm.DB) error {
	if r.ID == uuid.Nil {
		r.ID = uuid.New()
	}
	if r.CreatedAt.IsZero() {
		r.CreatedAt = time.Now().UTC()
	}
	return nil
}
