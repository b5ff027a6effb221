package dashboard_fx

import (
	"go.uber.org/fx"
	"gorm.io/gorm"

	"jejuquiz/internal/api/controllers"
	"jejuquiz/internal/repositories"
	"jejuquiz/internal/services"
)

var Module = fx.Provide(
	ProvideDashboardRepository,
	ProvideDashboardService,
	ProvideDashboardController)

func ProvideDashboardRepository(db *gorm.DB) repositories.DashboardRepositoryInterface {
	return repositories.NewDashboardRepository(db)
}

func ProvideDashboardService(dashboardRepo repositories.DashboardRepositoryInterface) services.DashboardServiceInterface {
	return services.NewDashboardService(dashboardRepo)
}

func ProvideDashboardController(dashboardService services.DashboardServiceInterface) *controllers.DashboardController {
	return controllers.NewDashboardController(dashboardService)
}
