package main

import (
	"context"
	"log"
	"os"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"go.uber.org/fx"

	"jejuquiz/cmd/fx/course_fx"
	"jejuquiz/cmd/fx/dashboard_fx"
	"jejuquiz/cmd/fx/datasets_fx"
	"jejuquiz/cmd/fx/db_fx"
	"jejuquiz/cmd/fx/quiz_fx"
	"jejuquiz/cmd/fx/system_fx"
	"jejuquiz/internal/api/controllers"
	"jejuquiz/pkg/middleware"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using process environment")
	}

	app := fx.New(
		db_fx.Module,
		datasets_fx.Module,
		quiz_fx.Module,
		course_fx.Module,
		dashboard_fx.Module,
		system_fx.Module,

		fx.Provide(ProvideRouter),
		fx.Invoke(StartServer),
	)

	app.Run()
}

func StartServer(lc fx.Lifecycle, engine *gin.Engine) {
	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			go func() {
				port := os.Getenv("PORT")
				if port == "" {
					port = "8080"
				}
				log.Printf("Starting HTTP server at :%s", port)
				if err := engine.Run(":" + port); err != nil {
					log.Fatalf("Failed to start server: %v", err)
				}
			}()
			return nil
		},
		OnStop: func(ctx context.Context) error {
			log.Println("Stopping HTTP server")
			return nil
		},
	})
}

func ProvideRouter(
	quizController *controllers.QuizController,
	courseController *controllers.CourseController,
	dashboardController *controllers.DashboardController,
	systemController *controllers.SystemController) *gin.Engine {

	r := gin.Default()
	r.Use(gin.Logger())
	r.Use(gin.Recovery())
	r.Use(middleware.CORSMiddleware())
	r.Use(middleware.TraceIDMiddleware())

	RegisterRoutes(r, quizController, courseController, dashboardController, systemController)

	return r
}

func RegisterRoutes(r *gin.Engine,
	quizController *controllers.QuizController,
	courseController *controllers.CourseController,
	dashboardController *controllers.DashboardController,
	systemController *controllers.SystemController) {

	api := r.Group("/api")

	quizGroup := api.Group("/quiz")
	quizGroup.POST("/responses", quizController.SaveResponseHandler)
	quizGroup.POST("/complete", quizController.CompleteQuizHandler)
	quizGroup.GET("/data", quizController.GetQuizDataHandler)
	quizGroup.DELETE("/responses", quizController.DeleteResponseHandler)

	api.POST("/courses/generate", courseController.GenerateCourseHandler)
	api.GET("/dashboard", dashboardController.GetDashboardHandler)
	api.GET("/restaurants", systemController.RestaurantsHandler)
	api.GET("/check-env", systemController.CheckEnvHandler)

	r.GET("/sitemap.xml", systemController.SitemapHandler)
}
