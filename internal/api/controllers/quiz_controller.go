package controllers

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"jejuquiz/internal/models/request_models"
	"jejuquiz/internal/services"
	"jejuquiz/pkg/utils"
)

type QuizController struct {
	quizService services.QuizServiceInterface
}

func NewQuizController(quizService services.QuizServiceInterface) *QuizController {
	return &QuizController{
		quizService: quizService,
	}
}

// SaveResponseHandler handles POST /api/quiz/responses, one row per
// answered question.
func (q *QuizController) SaveResponseHandler(c *gin.Context) {
	var req request_models.QuizAnswerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "요청 형식이 올바르지 않습니다.")
		return
	}

	if err := q.quizService.SaveResponse(c.Request.Context(), req); err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true})
}

// CompleteQuizHandler handles POST /api/quiz/complete: scores the session
// and records the final result.
func (q *QuizController) CompleteQuizHandler(c *gin.Context) {
	var req request_models.QuizCompleteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "요청 형식이 올바르지 않습니다.")
		return
	}

	result, err := q.quizService.CompleteQuiz(c.Request.Context(), req)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"data":    result,
	})
}

// GetQuizDataHandler handles GET /api/quiz/data. With a session_id query
// it returns that session's rows; without one it returns overall stats.
func (q *QuizController) GetQuizDataHandler(c *gin.Context) {
	sessionID := c.Query("session_id")

	if sessionID != "" {
		data, err := q.quizService.GetSessionData(c.Request.Context(), sessionID)
		if err != nil {
			utils.HandleServiceError(c, err)
			return
		}
		c.JSON(http.StatusOK, gin.H{"success": true, "data": data})
		return
	}

	stats, err := q.quizService.GetStats(c.Request.Context())
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "data": stats})
}

// DeleteResponseHandler handles DELETE /api/quiz/responses. session_id
// removes a whole session (responses and result); response_id removes a
// single response row.
func (q *QuizController) DeleteResponseHandler(c *gin.Context) {
	sessionID := c.Query("session_id")
	responseID := c.Query("response_id")

	if sessionID == "" && responseID == "" {
		utils.RespondError(c, http.StatusBadRequest, "session_id 또는 response_id가 필요합니다.")
		return
	}

	if sessionID != "" {
		if err := q.quizService.DeleteSession(c.Request.Context(), sessionID); err != nil {
			utils.HandleServiceError(c, err)
			return
		}
		c.JSON(http.StatusOK, gin.H{
			"success": true,
			"message": fmt.Sprintf("세션 %s 전체가 삭제되었습니다.", sessionID),
		})
		return
	}

	if err := q.quizService.DeleteResponse(c.Request.Context(), responseID); err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": fmt.Sprintf("응답 %s가 삭제되었습니다.", responseID),
	})
}
