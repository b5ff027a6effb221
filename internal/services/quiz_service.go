package services

import (
	"context"
	"encoding/json"
	"log"
	"strings"

	"jejuquiz/internal/models/db_models"
	"jejuquiz/internal/models/request_models"
	"jejuquiz/internal/models/response_models"
	"jejuquiz/internal/repositories"
	"jejuquiz/pkg/utils"
)

// The three personality axes, each collapsed from three questions into a
// single letter.
var axisOrder = [3]string{"X", "Y", "Z"}

var axisOptions = map[string][2]string{
	"X": {"A", "B"}, // 여행 스타일: 계획형 vs 즉흥형
	"Y": {"C", "D"}, // 에너지 방식: 차분형 vs 활동형
	"Z": {"E", "F"}, // 중심 관심사: 체험형 vs 감성형
}

// CalculateResult collapses the per-axis answer lists into a dash-joined
// 3-letter code. Each axis is a majority vote between its two letters.
// A tie resolves to the axis's second letter: the launched scoring is
// literally "first-count > second-count ? first : second", and that
// behavior is kept as-is. With three answers per axis a tie cannot occur
// for well-formed input.
func CalculateResult(answers map[string][]string) string {
	letters := make([]string, 0, len(axisOrder))
	for _, axis := range axisOrder {
		options := axisOptions[axis]
		var firstCount, secondCount int
		for _, picked := range answers[axis] {
			switch picked {
			case options[0]:
				firstCount++
			case options[1]:
				secondCount++
			}
		}
		if firstCount > secondCount {
			letters = append(letters, options[0])
		} else {
			letters = append(letters, options[1])
		}
	}
	return strings.Join(letters, "-")
}

type QuizServiceInterface interface {
	SaveResponse(ctx context.Context, req request_models.QuizAnswerRequest) error
	CompleteQuiz(ctx context.Context, req request_models.QuizCompleteRequest) (*response_models.QuizResultResponse, error)
	GetSessionData(ctx context.Context, sessionID string) (*response_models.SessionData, error)
	GetStats(ctx context.Context) (*response_models.QuizStats, error)
	DeleteSession(ctx context.Context, sessionID string) error
	DeleteResponse(ctx context.Context, responseID string) error
}

type QuizService struct {
	quizRepo repositories.QuizRepositoryInterface
}

func NewQuizService(quizRepo repositories.QuizRepositoryInterface) QuizServiceInterface {
	return &QuizService{
		quizRepo: quizRepo,
	}
}

func (q *QuizService) SaveResponse(ctx context.Context, req request_models.QuizAnswerRequest) error {
	if req.SessionID == "" || req.QuestionID < 1 || req.QuestionID > 9 {
		return utils.ErrInvalidRequest
	}

	options, ok := axisOptions[req.Axis]
	if !ok {
		return utils.ErrInvalidRequest
	}
	if req.SelectedOption != options[0] && req.SelectedOption != options[1] {
		return utils.ErrInvalidRequest
	}

	response := db_models.QuizResponse{
		SessionID:      req.SessionID,
		QuestionID:     req.QuestionID,
		Axis:           req.Axis,
		SelectedOption: req.SelectedOption,
		QuestionText:   req.QuestionText,
	}

	if err := q.quizRepo.InsertResponse(ctx, &response); err != nil {
		log.Printf("quiz response insert failed: %v", err)
		return utils.ErrDatabaseError
	}
	return nil
}

func (q *QuizService) CompleteQuiz(ctx context.Context, req request_models.QuizCompleteRequest) (*response_models.QuizResultResponse, error) {
	if req.SessionID == "" || len(req.Answers) == 0 {
		return nil, utils.ErrInvalidRequest
	}

	finalResult := CalculateResult(req.Answers)

	serialized, err := json.Marshal(req.Answers)
	if err != nil {
		return nil, utils.ErrInvalidRequest
	}

	result := db_models.QuizResult{
		SessionID:   req.SessionID,
		FinalResult: finalResult,
		Answers:     string(serialized),
	}

	if err := q.quizRepo.InsertResult(ctx, &result); err != nil {
		log.Printf("quiz result insert failed: %v", err)
		return nil, utils.ErrDatabaseError
	}

	return &response_models.QuizResultResponse{
		SessionID:   result.SessionID,
		FinalResult: result.FinalResult,
		TypeName:    utils.TypeName(result.FinalResult),
		CompletedAt: result.CompletedAt,
	}, nil
}

func (q *QuizService) GetSessionData(ctx context.Context, sessionID string) (*response_models.SessionData, error) {
	if sessionID == "" {
		return nil, utils.ErrInvalidRequest
	}

	responses, err := q.quizRepo.ResponsesBySession(ctx, sessionID)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}

	result, err := q.quizRepo.ResultBySession(ctx, sessionID)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}

	if len(responses) == 0 && result == nil {
		return nil, utils.ErrSessionNotFound
	}

	return &response_models.SessionData{
		SessionID: sessionID,
		Responses: responses,
		Result:    result,
	}, nil
}

func (q *QuizService) GetStats(ctx context.Context) (*response_models.QuizStats, error) {
	recent, err := q.quizRepo.RecentResults(ctx, 50)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}

	total, err := q.quizRepo.CountResults(ctx)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}

	stats := make(map[string]int)
	for _, result := range recent {
		stats[result.FinalResult]++
	}

	return &response_models.QuizStats{
		TotalCount:    total,
		RecentResults: recent,
		ResultStats:   stats,
	}, nil
}

func (q *QuizService) DeleteSession(ctx context.Context, sessionID string) error {
	if sessionID == "" {
		return utils.ErrInvalidRequest
	}
	if err := q.quizRepo.DeleteSession(ctx, sessionID); err != nil {
		log.Printf("session delete failed: %v", err)
		return utils.ErrDatabaseError
	}
	return nil
}

func (q *QuizService) DeleteResponse(ctx context.Context, responseID string) error {
	if responseID == "" {
		return utils.ErrInvalidRequest
	}
	if err := q.quizRepo.DeleteResponse(ctx, responseID); err != nil {
		log.Printf("response delete failed: %v", err)
		return utils.ErrDatabaseError
	}
	return nil
}
