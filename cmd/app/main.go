package main

import (
	"context"
	"log"
	"os"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"go.uber.org/fx"

	"essentia/cmd/fx/catalogfx"
	"essentia/cmd/fx/dbfx"
	"essentia/cmd/fx/profilefx"
	"essentia/cmd/fx/questionfx"
	"essentia/cmd/fx/recommendfx"
	"essentia/internal/api/controllers"
	"essentia/pkg/middleware"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, relying on environment")
	}

	app := fx.New(
		dbfx.Module,
		catalogfx.Module,
		questionfx.Module,
		profilefx.Module,
		recommendfx.Module,

		fx.Invoke(StartServer),
		fx.Provide(ProvideRouter),
	)

	app.Run()
}

func StartServer(lc fx.Lifecycle, engine *gin.Engine) {
	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			go func() {
				log.Println("Starting HTTP server at ${PORT}")
				if err := engine.Run(":" + os.Getenv("PORT")); err != nil {
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
	profilesController *controllers.ProfilesController,
	recommendationsController *controllers.RecommendationsController,
	questionsController *controllers.QuestionsController) *gin.Engine {

	r := gin.Default()
	r.Use(gin.Logger())
	r.Use(gin.Recovery())
	r.Use(middleware.CORSMiddleware())
	r.Use(middleware.TraceIDMiddleware())

	RegisterRoutes(r, profilesController, recommendationsController, questionsController)

	return r
}

func RegisterRoutes(r *gin.Engine,
	profilesController *controllers.ProfilesController,
	recommendationsController *controllers.RecommendationsController,
	questionsController *controllers.QuestionsController) {

	profilesGroup := r.Group("/profiles")
	profilesGroup.Use(middleware.JWTAuthMiddleware())
	profilesGroup.POST("", profilesController.CreateProfile)
	profilesGroup.GET("", profilesController.ListProfiles)
	profilesGroup.DELETE("/:id", profilesController.DeleteProfile)
	profilesGroup.PUT("/reorder", profilesController.ReorderProfiles)

	recommendationsGroup := r.Group("/recommendations")
	recommendationsGroup.POST("", recommendationsController.Recommend)
	recommendationsGroup.POST("/gift", recommendationsController.RecommendGift)

	questionsGroup := r.Group("/questions")
	questionsGroup.GET("/:flowId", questionsController.GetQuestionsByFlow)
}
