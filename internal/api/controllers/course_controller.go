package controllers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"jejuquiz/internal/models/request_models"
	"jejuquiz/internal/models/response_models"
	"jejuquiz/internal/services"
	"jejuquiz/pkg/utils"
)

type CourseController struct {
	courseService services.CourseServiceInterface
}

func NewCourseController(courseService services.CourseServiceInterface) *CourseController {
	return &CourseController{
		courseService: courseService,
	}
}

// GenerateCourseHandler handles POST /api/courses/generate. AI parse
// failures never reach here; the service degrades to the fallback course
// instead.
func (cc *CourseController) GenerateCourseHandler(c *gin.Context) {
	var req request_models.CourseRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "요청 형식이 올바르지 않습니다.")
		return
	}

	if req.UserType == "" || req.Character == "" {
		utils.RespondError(c, http.StatusBadRequest, "사용자 유형 정보가 필요합니다.")
		return
	}

	course, err := cc.courseService.GenerateCourse(c.Request.Context(), req)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, response_models.CourseResponse{
		Success:     true,
		Course:      course,
		UserType:    req.UserType,
		GeneratedAt: time.Now().UTC().Format(time.RFC3339),
	})
}
