package controllers

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"jejuquiz/internal/models/request_models"
	"jejuquiz/internal/models/response_models"
	"jejuquiz/pkg/utils"
)

type stubCourseService struct {
	course  *response_models.Course
	err     error
	lastReq request_models.CourseRequest
}

func (s *stubCourseService) GenerateCourse(_ context.Context, req request_models.CourseRequest) (*response_models.Course, error) {
	s.lastReq = req
	return s.course, s.err
}

func newCourseRouter(svc *stubCourseService) *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.POST("/api/courses/generate", NewCourseController(svc).GenerateCourseHandler)
	return router
}

func postJSON(t *testing.T, router *gin.Engine, path, body string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func TestGenerateCourseHandler_Success(t *testing.T) {
	svc := &stubCourseService{
		course: &response_models.Course{
			Title:    "감성 충전 제주",
			Duration: "1박 2일",
		},
	}
	router := newCourseRouter(svc)

	w := postJSON(t, router, "/api/courses/generate", `{
		"userType": "힐링형",
		"character": "쉼돌이",
		"preferences": {"duration": "1박 2일", "budget": "보통"}
	}`)

	require.Equal(t, http.StatusOK, w.Code)

	var body response_models.CourseResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.True(t, body.Success)
	assert.Equal(t, "힐링형", body.UserType)
	require.NotNil(t, body.Course)
	assert.Equal(t, "감성 충전 제주", body.Course.Title)
	assert.NotEmpty(t, body.GeneratedAt)

	assert.Equal(t, "1박 2일", svc.lastReq.Preferences.Duration)
}

func TestGenerateCourseHandler_MissingUserType(t *testing.T) {
	svc := &stubCourseService{}
	router := newCourseRouter(svc)

	w := postJSON(t, router, "/api/courses/generate", `{"character": "쉼돌이"}`)

	require.Equal(t, http.StatusBadRequest, w.Code)

	var body map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, false, body["success"])
	assert.Equal(t, "사용자 유형 정보가 필요합니다.", body["error"])
}

func TestGenerateCourseHandler_MalformedBody(t *testing.T) {
	router := newCourseRouter(&stubCourseService{})

	w := postJSON(t, router, "/api/courses/generate", `{"userType": `)

	require.Equal(t, http.StatusBadRequest, w.Code)

	var body map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, "요청 형식이 올바르지 않습니다.", body["error"])
}

func TestGenerateCourseHandler_UpstreamFailure(t *testing.T) {
	svc := &stubCourseService{err: utils.ErrAIUnavailable}
	router := newCourseRouter(svc)

	w := postJSON(t, router, "/api/courses/generate", `{"userType": "힐링형", "character": "쉼돌이"}`)

	require.Equal(t, http.StatusInternalServerError, w.Code)

	var body map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, "AI 서비스에 연결할 수 없습니다.", body["error"])
}
