package routes

import (
	"CarePoint/config"
	"CarePoint/controllers"
	"CarePoint/middlewares"
	"CarePoint/storage"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// NewRouter assembles the gin engine from already-wired controllers.
// Construction of repositories and services happens in main, so tests can
// call this with fake-backed controllers.
func NewRouter(cfg *config.AppConfig,
	patients *controllers.PatientController,
	bills *controllers.BillController,
	summaries *controllers.DoctorSummaryController,
) *gin.Engine {
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(middlewares.LoggingMiddleware())
	router.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization"},
		AllowCredentials: true,
	}))
	router.Use(middlewares.NewRateLimiterMiddleware(middlewares.RateLimiterConfig{
		RequestsPerSecond: cfg.RatePerSec,
		Burst:             cfg.RateBurst,
	}))

	router.Static(storage.PublicPrefix, cfg.UploadDir)

	patients.Register(router)
	bills.Register(router)
	summaries.Register(router)

	return router
}
