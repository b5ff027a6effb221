package repositories

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"jejuquiz/internal/models/db_models"
)

type QuizRepositoryInterface interface {
	InsertResponse(ctx context.Context, response *db_models.QuizResponse) error
	InsertResult(ctx context.Context, result *db_models.QuizResult) error

	ResponsesBySession(ctx context.Context, sessionID string) ([]db_models.QuizResponse, error)
	ResultBySession(ctx context.Context, sessionID string) (*db_models.QuizResult, error)
	RecentResults(ctx context.Context, limit int) ([]db_models.QuizResult, error)
	CountResults(ctx context.Context) (int64, error)

	DeleteSession(ctx context.Context, sessionID string) error
	DeleteResponse(ctx context.Context, responseID string) error
}

func NewQuizRepository(db *gorm.DB) QuizRepositoryInterface {
	return &QuizRepository{db: db}
}

type QuizRepository struct {
	db *gorm.DB
}

func (q *QuizRepository) InsertResponse(ctx context.Context, response *db_models.QuizResponse) error {
	return q.db.WithContext(ctx).Create(response).Error
}

func (q *QuizRepository) InsertResult(ctx context.Context, result *db_models.QuizResult) error {
	return q.db.WithContext(ctx).Create(result).Error
}

func (q *QuizRepository) ResponsesBySession(ctx context.Context, sessionID string) ([]db_models.QuizResponse, error) {
	var responses []db_models.QuizResponse
	err := q.db.WithContext(ctx).
		Where("session_id = ?", sessionID).
		Order("question_id ASC").
		Find(&responses).Error
	if err != nil {
		return nil, err
	}
	return responses, nil
}

func (q *QuizRepository) ResultBySession(ctx context.Context, sessionID string) (*db_models.QuizResult, error) {
	var result db_models.QuizResult
	err := q.db.WithContext(ctx).
		Where("session_id = ?", sessionID).
		First(&result).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &result, nil
}

func (q *QuizRepository) RecentResults(ctx context.Context, limit int) ([]db_models.QuizResult, error) {
	var results []db_models.QuizResult
	err := q.db.WithContext(ctx).
		Order("completed_at DESC").
		Limit(limit).
		Find(&results).Error
	if err != nil {
		return nil, err
	}
	return results, nil
}

func (q *QuizRepository) CountResults(ctx context.Context) (int64, error) {
	var n int64
	err := q.db.WithContext(ctx).Model(&db_models.QuizResult{}).Count(&n).Error
	return n, err
}

// DeleteSession removes every trace of a session: all per-question
// responses and the final result, in one transaction.
func (q *QuizRepository) DeleteSession(ctx context.Context, sessionID string) error {
	return q.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("session_id = ?", sessionID).Delete(&db_models.QuizResponse{}).Error; err != nil {
			return err
		}
		return tx.Where("session_id = ?", sessionID).Delete(&db_models.QuizResult{}).Error
	})
}

func (q *QuizRepository) DeleteResponse(ctx context.Context, responseID string) error {
	return q.db.WithContext(ctx).
		Where("id = ?", responseID).
		Delete(&db_models.QuizResponse{}).Error
}
