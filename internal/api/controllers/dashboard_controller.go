package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"jejuquiz/internal/services"
	"jejuquiz/pkg/utils"
)

type DashboardController struct {
	dashboardService services.DashboardServiceInterface
}

func NewDashboardController(dashboardService services.DashboardServiceInterface) *DashboardController {
	return &DashboardController{
		dashboardService: dashboardService,
	}
}

// GetDashboardHandler handles GET /api/dashboard with the chart-ready
// aggregates for the result dashboard page.
func (d *DashboardController) GetDashboardHandler(c *gin.Context) {
	data, err := d.dashboardService.BuildDashboard(c.Request.Context())
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"data":    data,
	})
}
