package repositories

import (
	"context"

	"gorm.io/gorm"

	"jejuquiz/internal/models/db_models"
)

// ResponseOptionRow is the slim projection the dashboard reduces over.
type ResponseOptionRow struct {
	QuestionID     int    `gorm:"column:question_id"`
	SelectedOption string `gorm:"column:selected_option"`
}

type DashboardRepositoryInterface interface {
	ResponseOptions(ctx context.Context) ([]ResponseOptionRow, error)
	FinalResults(ctx context.Context) ([]string, error)
	RecentResponses(ctx context.Context, limit int) ([]db_models.QuizResponse, error)
}

func NewDashboardRepository(db *gorm.DB) DashboardRepositoryInterface {
	return &DashboardRepository{db: db}
}

type DashboardRepository struct {
	db *gorm.DB
}

func (d *DashboardRepository) ResponseOptions(ctx context.Context) ([]ResponseOptionRow, error) {
	var rows []ResponseOptionRow
	err := d.db.WithContext(ctx).
		Model(&db_models.QuizResponse{}).
		Select("question_id, selected_option").
		Find(&rows).Error
	if err != nil {
		return nil, err
	}
	return rows, nil
}

// FinalResults returns every recorded result code in completion order.
func (d *DashboardRepository) FinalResults(ctx context.Context) ([]string, error) {
	var codes []string
	err := d.db.WithContext(ctx).
		Model(&db_models.QuizResult{}).
		Order("completed_at ASC").
		Pluck("final_result", &codes).Error
	if err != nil {
		return nil, err
	}
	return codes, nil
}

func (d *DashboardRepository) RecentResponses(ctx context.Context, limit int) ([]db_models.QuizResponse, error) {
	var responses []db_models.QuizResponse
	err := d.db.WithContext(ctx).
		Order("created_at DESC").
		Limit(limit).
		Find(&responses).Error
	if err != nil {
		return nil, err
	}
	return responses, nil
}
