package main

import (
	"context"
	"log"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"go.uber.org/fx"
	"go.uber.org/zap"

	"tripforge/cmd/fx/account_fx"
	"tripforge/cmd/fx/catalog_fx"
	"tripforge/cmd/fx/controllers_fx"
	"tripforge/cmd/fx/db_fx"
	"tripforge/cmd/fx/planner_fx"
	"tripforge/cmd/fx/prompt_fx"
	"tripforge/internal/api/controllers"
	"tripforge/internal/config"
	"tripforge/pkg/middleware"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, reading configuration from environment")
	}

	app := fx.New(
		fx.Provide(config.Load),
		fx.Provide(provideLogger),
		db_fx.Module,
		account_fx.Module,
		catalog_fx.Module,
		planner_fx.Module,
		prompt_fx.Module,
		controllers_fx.Module,

		fx.Provide(ProvideRouter),
		fx.Invoke(StartServer),
	)

	app.Run()
}

func provideLogger() (*zap.Logger, error) {
	return zap.NewProduction()
}

func StartServer(lc fx.Lifecycle, engine *gin.Engine, cfg *config.Config, logger *zap.Logger) {
	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			go func() {
				logger.Info("Starting HTTP server", zap.String("port", cfg.Server.Port))
				if err := engine.Run(":" + cfg.Server.Port); err != nil {
					logger.Fatal("Failed to start server", zap.Error(err))
				}
			}()
			return nil
		},
		OnStop: func(ctx context.Context) error {
			logger.Info("Stopping HTTP server")
			return logger.Sync()
		},
	})
}

func ProvideRouter(
	accountController *controllers.AccountController,
	catalogController *controllers.CatalogController,
	plannerController *controllers.PlannerController,
	tripController *controllers.TripController,
	promptController *controllers.PromptController) *gin.Engine {

	r := gin.Default()
	r.Use(middleware.TraceIDMiddleware())
	r.Use(middleware.CORSMiddleware())

	RegisterRoutes(r, accountController, catalogController, plannerController, tripController, promptController)

	return r
}

func RegisterRoutes(r *gin.Engine,
	accountController *controllers.AccountController,
	catalogController *controllers.CatalogController,
	plannerController *controllers.PlannerController,
	tripController *controllers.TripController,
	promptController *controllers.PromptController) {

	v1 := r.Group("/api/v1")

	accountGroup := v1.Group("/accounts")
	accountGroup.POST("/signup", accountController.SignUp)
	accountGroup.POST("/login", accountController.Login)

	catalogGroup := v1.Group("/catalog")
	catalogGroup.GET("/hotels", catalogController.Hotels)
	catalogGroup.GET("/cars", catalogController.Cars)
	catalogGroup.GET("/attractions", catalogController.Attractions)
	catalogGroup.GET("/restaurants", catalogController.Restaurants)

	plannerGroup := v1.Group("/planner")
	plannerGroup.POST("/plans", plannerController.BuildPlans)
	plannerGroup.POST("/itinerary", plannerController.BuildItinerary)
	plannerGroup.POST("/parse", plannerController.ParseAndPlan)

	v1.POST("/chat", promptController.Chat)

	tripGroup := v1.Group("/trips")
	tripGroup.Use(middleware.JWTAuthMiddleware())
	tripGroup.POST("", tripController.SaveTrip)
	tripGroup.GET("", tripController.ListTrips)
}
