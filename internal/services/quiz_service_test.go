package services

import (
	"context"
	"encoding/json"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"jejuquiz/internal/models/db_models"
	"jejuquiz/internal/models/request_models"
	"jejuquiz/pkg/utils"
)

type fakeQuizRepo struct {
	responses []db_models.QuizResponse
	results   []db_models.QuizResult

	sessionResponses []db_models.QuizResponse
	sessionResult    *db_models.QuizResult
	recent           []db_models.QuizResult
	count            int64

	deletedSessions  []string
	deletedResponses []string

	err error
}

func (f *fakeQuizRepo) InsertResponse(_ context.Context, response *db_models.QuizResponse) error {
	if f.err != nil {
		return f.err
	}
	f.responses = append(f.responses, *response)
	return nil
}

func (f *fakeQuizRepo) InsertResult(_ context.Context, result *db_models.QuizResult) error {
	if f.err != nil {
		return f.err
	}
	f.results = append(f.results, *result)
	return nil
}

func (f *fakeQuizRepo) ResponsesBySession(_ context.Context, _ string) ([]db_models.QuizResponse, error) {
	return f.sessionResponses, f.err
}

func (f *fakeQuizRepo) ResultBySession(_ context.Context, _ string) (*db_models.QuizResult, error) {
	return f.sessionResult, f.err
}

func (f *fakeQuizRepo) RecentResults(_ context.Context, limit int) ([]db_models.QuizResult, error) {
	if f.err != nil {
		return nil, f.err
	}
	if len(f.recent) > limit {
		return f.recent[:limit], nil
	}
	return f.recent, nil
}

func (f *fakeQuizRepo) CountResults(_ context.Context) (int64, error) {
	return f.count, f.err
}

func (f *fakeQuizRepo) DeleteSession(_ context.Context, sessionID string) error {
	if f.err != nil {
		return f.err
	}
	f.deletedSessions = append(f.deletedSessions, sessionID)
	return nil
}

func (f *fakeQuizRepo) DeleteResponse(_ context.Context, responseID string) error {
	if f.err != nil {
		return f.err
	}
	f.deletedResponses = append(f.deletedResponses, responseID)
	return nil
}

func fullAnswers(x, y, z string) map[string][]string {
	return map[string][]string{
		"X": {x, x, x},
		"Y": {y, y, y},
		"Z": {z, z, z},
	}
}

func TestCalculateResult_AllEightCodes(t *testing.T) {
	cases := []struct {
		x, y, z string
		want    string
	}{
		{"A", "C", "E", "A-C-E"},
		{"A", "C", "F", "A-C-F"},
		{"A", "D", "E", "A-D-E"},
		{"A", "D", "F", "A-D-F"},
		{"B", "C", "E", "B-C-E"},
		{"B", "C", "F", "B-C-F"},
		{"B", "D", "E", "B-D-E"},
		{"B", "D", "F", "B-D-F"},
	}
	for _, tc := range cases {
		got := CalculateResult(fullAnswers(tc.x, tc.y, tc.z))
		assert.Equal(t, tc.want, got)
		assert.Contains(t, utils.TypeMapping, got)
	}
}

func TestCalculateResult_MajorityPerAxis(t *testing.T) {
	answers := map[string][]string{
		"X": {"A", "B", "A"},
		"Y": {"D", "C", "D"},
		"Z": {"F", "F", "E"},
	}
	assert.Equal(t, "A-D-F", CalculateResult(answers))
}

func TestCalculateResult_TieGoesToSecondLetter(t *testing.T) {
	answers := map[string][]string{
		"X": {"A", "B"},
		"Y": {"C", "D"},
		"Z": {"E", "F"},
	}
	assert.Equal(t, "B-D-F", CalculateResult(answers))
}

func TestCalculateResult_MissingAxisDefaultsToSecondLetter(t *testing.T) {
	answers := map[string][]string{
		"X": {"A", "A", "A"},
	}
	assert.Equal(t, "A-D-F", CalculateResult(answers))
}

func TestSaveResponse_RejectsBadInput(t *testing.T) {
	svc := NewQuizService(&fakeQuizRepo{})
	ctx := context.Background()

	cases := []request_models.QuizAnswerRequest{
		{SessionID: "", QuestionID: 1, Axis: "X", SelectedOption: "A"},
		{SessionID: "s1", QuestionID: 0, Axis: "X", SelectedOption: "A"},
		{SessionID: "s1", QuestionID: 10, Axis: "X", SelectedOption: "A"},
		{SessionID: "s1", QuestionID: 1, Axis: "W", SelectedOption: "A"},
		{SessionID: "s1", QuestionID: 1, Axis: "X", SelectedOption: "C"},
	}
	for _, req := range cases {
		assert.ErrorIs(t, svc.SaveResponse(ctx, req), utils.ErrInvalidRequest)
	}
}

func TestSaveResponse_PersistsRow(t *testing.T) {
	repo := &fakeQuizRepo{}
	svc := NewQuizService(repo)

	err := svc.SaveResponse(context.Background(), request_models.QuizAnswerRequest{
		SessionID:      "s1",
		QuestionID:     4,
		Axis:           "Y",
		SelectedOption: "D",
		QuestionText:   "여유로운 오전",
	})
	require.NoError(t, err)
	require.Len(t, repo.responses, 1)
	assert.Equal(t, "s1", repo.responses[0].SessionID)
	assert.Equal(t, 4, repo.responses[0].QuestionID)
	assert.Equal(t, "D", repo.responses[0].SelectedOption)
}

func TestCompleteQuiz_ScoresAndPersists(t *testing.T) {
	repo := &fakeQuizRepo{}
	svc := NewQuizService(repo)

	res, err := svc.CompleteQuiz(context.Background(), request_models.QuizCompleteRequest{
		SessionID: "s1",
		Answers:   fullAnswers("A", "C", "F"),
	})
	require.NoError(t, err)
	assert.Equal(t, "A-C-F", res.FinalResult)
	assert.Equal(t, "힐링형", res.TypeName)

	require.Len(t, repo.results, 1)
	assert.Equal(t, "A-C-F", repo.results[0].FinalResult)

	var stored map[string][]string
	require.NoError(t, json.Unmarshal([]byte(repo.results[0].Answers), &stored))
	assert.Equal(t, []string{"C", "C", "C"}, stored["Y"])
}

func TestCompleteQuiz_RejectsEmptyInput(t *testing.T) {
	svc := NewQuizService(&fakeQuizRepo{})
	ctx := context.Background()

	_, err := svc.CompleteQuiz(ctx, request_models.QuizCompleteRequest{SessionID: "", Answers: fullAnswers("A", "C", "E")})
	assert.ErrorIs(t, err, utils.ErrInvalidRequest)

	_, err = svc.CompleteQuiz(ctx, request_models.QuizCompleteRequest{SessionID: "s1"})
	assert.ErrorIs(t, err, utils.ErrInvalidRequest)
}

func TestGetSessionData_NotFoundWhenEmpty(t *testing.T) {
	svc := NewQuizService(&fakeQuizRepo{})
	_, err := svc.GetSessionData(context.Background(), "missing")
	assert.ErrorIs(t, err, utils.ErrSessionNotFound)
}

func TestGetSessionData_ReturnsResponsesWithoutResult(t *testing.T) {
	repo := &fakeQuizRepo{
		sessionResponses: []db_models.QuizResponse{
			{SessionID: "s1", QuestionID: 1, Axis: "X", SelectedOption: "A"},
		},
	}
	svc := NewQuizService(repo)

	data, err := svc.GetSessionData(context.Background(), "s1")
	require.NoError(t, err)
	assert.Equal(t, "s1", data.SessionID)
	assert.Len(t, data.Responses, 1)
	assert.Nil(t, data.Result)
}

func TestGetStats_AggregatesRecentResults(t *testing.T) {
	repo := &fakeQuizRepo{
		recent: []db_models.QuizResult{
			{FinalResult: "A-C-E"},
			{FinalResult: "A-C-E"},
			{FinalResult: "B-D-F"},
		},
		count: 41,
	}
	svc := NewQuizService(repo)

	stats, err := svc.GetStats(context.Background())
	require.NoError(t, err)
	assert.Equal(t, int64(41), stats.TotalCount)
	assert.Equal(t, 2, stats.ResultStats["A-C-E"])
	assert.Equal(t, 1, stats.ResultStats["B-D-F"])
}

func TestDeletes_ValidateAndDelegate(t *testing.T) {
	repo := &fakeQuizRepo{}
	svc := NewQuizService(repo)
	ctx := context.Background()

	assert.ErrorIs(t, svc.DeleteSession(ctx, ""), utils.ErrInvalidRequest)
	assert.ErrorIs(t, svc.DeleteResponse(ctx, ""), utils.ErrInvalidRequest)

	require.NoError(t, svc.DeleteSession(ctx, "s1"))
	require.NoError(t, svc.DeleteResponse(ctx, "r1"))
	assert.Equal(t, []string{"s1"}, repo.deletedSessions)
	assert.Equal(t, []string{"r1"}, repo.deletedResponses)
}

func TestQuizService_MasksRepositoryErrors(t *testing.T) {
	repo := &fakeQuizRepo{err: errors.New("connection refused")}
	svc := NewQuizService(repo)
	ctx := context.Background()

	err := svc.SaveResponse(ctx, request_models.QuizAnswerRequest{
		SessionID: "s1", QuestionID: 1, Axis: "X", SelectedOption: "A",
	})
	assert.ErrorIs(t, err, utils.ErrDatabaseError)

	_, err = svc.GetStats(ctx)
	assert.ErrorIs(t, err, utils.ErrDatabaseError)
}
