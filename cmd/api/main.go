package main

import (
	"log"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"lubritrack/internal/config"
	"lubritrack/internal/database"
	"lubritrack/internal/middleware"
	"lubritrack/internal/modules/equipment"
	"lubritrack/internal/modules/health"
	"lubritrack/internal/modules/lubrication"
	"lubritrack/internal/repository"
)

func main() {
	// .env is optional; real deployments set variables directly.
	_ = godotenv.Load()

	cfg, err := config.Load(".")
	if err != nil {
		log.Fatal(err)
	}

	db, err := database.Connect(cfg.Database.DSN)
	if err != nil {
		log.Fatal(err)
	}
	if err := database.Migrate(db); err != nil {
		log.Fatal(err)
	}

	equipmentRepo := repository.NewEquipmentRepository(db)
	planRepo := repository.NewPlanRepository(db)
	historyRepo := repository.NewHistoryRepository(db)

	equipmentService := equipment.NewService(equipmentRepo, planRepo, historyRepo)
	equipmentHandler := equipment.NewHandler(equipmentService)

	lubricationService := lubrication.NewService(planRepo, historyRepo)
	lubricationHandler := lubrication.NewHandler(lubricationService, cfg.Lubrication.DefaultWindowDays)

	healthHandler := health.NewHandler(db)

	r := gin.New()
	r.Use(gin.Logger())
	r.Use(middleware.ErrorLogger())
	r.Use(middleware.CORS(cfg.Server.CORSOrigins))
	r.Use(middleware.Metrics())

	r.GET("/metrics", gin.WrapH(promhttp.Handler()))

	api := r.Group("/api")
	{
		equipmentHandler.RegisterRoutes(api)
		lubricationHandler.RegisterRoutes(api)
		healthHandler.RegisterRoutes(api)
	}

	log.Printf("lubritrack API listening on :%s", cfg.Server.Port)
	if err := r.Run(":" + cfg.Server.Port); err != nil {
		log.Fatal(err)
	}
}
