package utils

import (
	"errors"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
)

// Error bodies keep the field names the quiz frontend already consumes:
// {"success": false, "error": "...", "details": ...}.

func RespondError(c *gin.Context, code int, message string) {
	c.JSON(code, gin.H{
		"success": false,
		"error":   message,
	})
}

func RespondErrorWithDetails(c *gin.Context, code int, message string, details interface{}) {
	c.JSON(code, gin.H{
		"success": false,
		"error":   message,
		"details": details,
	})
}

func HandleServiceError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, ErrInvalidRequest):
		RespondError(c, http.StatusBadRequest, "필수 입력값이 누락되었습니다.")
	case errors.Is(err, ErrSessionNotFound):
		RespondError(c, http.StatusNotFound, "세션 데이터를 찾을 수 없습니다.")
	case errors.Is(err, ErrAIUnavailable):
		log.Printf("AI upstream error: %v", err)
		RespondError(c, http.StatusInternalServerError, "AI 서비스에 연결할 수 없습니다.")
	case errors.Is(err, ErrAIResponseShape):
		log.Printf("AI response shape error: %v", err)
		RespondError(c, http.StatusInternalServerError, "AI 응답을 처리할 수 없습니다.")
	case errors.Is(err, ErrDatabaseError):
		log.Printf("Database error: %v", err)
		RespondErrorWithDetails(c, http.StatusInternalServerError, "데이터 조회 실패", err.Error())
	default:
		log.Printf("Unknown error: %v", err)
		RespondErrorWithDetails(c, http.StatusInternalServerError, "서버 오류", err.Error())
	}
}
