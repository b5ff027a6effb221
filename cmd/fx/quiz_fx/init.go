package quiz_fx

import (
	"go.uber.org/fx"
	"gorm.io/gorm"

	"jejuquiz/internal/api/controllers"
	"jejuquiz/internal/repositories"
	"jejuquiz/internal/services"
)

var Module = fx.Provide(
	ProvideQuizRepository,
	ProvideQuizService,
	ProvideQuizController)

func ProvideQuizRepository(db *gorm.DB) repositories.QuizRepositoryInterface {
	return repositories.NewQuizRepository(db)
}

func ProvideQuizService(quizRepo repositories.QuizRepositoryInterface) services.QuizServiceInterface {
	return services.NewQuizService(quizRepo)
}

func ProvideQuizController(quizService services.QuizServiceInterface) *controllers.QuizController {
	return controllers.NewQuizController(quizService)
}
