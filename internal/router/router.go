package router

import (
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"github.com/jhpark/safedine-backend/config"
	"github.com/jhpark/safedine-backend/internal/app/controller"
	"github.com/jhpark/safedine-backend/internal/middleware"
)

type Router struct {
	establishmentController *controller.EstablishmentController
	inspectionController    *controller.InspectionController
	reportController        *controller.ReportController
	config                  *config.Config
}

func NewRouter(
	establishmentController *controller.EstablishmentController,
	inspectionController *controller.InspectionController,
	reportController *controller.ReportController,
	cfg *config.Config,
) *Router {
	return &Router{
		establishmentController: establishmentController,
		inspectionController:    inspectionController,
		reportController:        reportController,
		config:                  cfg,
	}
}

func (r *Router) Setup() *gin.Engine {
	gin.SetMode(r.config.Server.GinMode)

	router := gin.New()

	router.Use(gin.Recovery())
	router.Use(middleware.LoggingMiddleware())
	router.Use(cors.New(cors.Config{
		AllowOrigins:     r.config.CORS.AllowedOrigins,
		AllowMethods:     []string{"GET", "POST", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "Cache-Control", "X-Requested-With"},
		AllowCredentials: true,
	}))

	router.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{
			"status":  "healthy",
			"message": "SAFEDINE API is running",
		})
	})

	v1 := router.Group("/api/v1")
	{
		establishments := v1.Group("/establishments")
		{
			// Static paths must be registered before the :id wildcard.
			establishments.GET("/search", r.establishmentController.Search)
			establishments.GET("/suggestions", r.establishmentController.Suggestions)
			establishments.GET("/:id", r.establishmentController.GetByID)
			establishments.GET("/:id/inspections", r.inspectionController.ListByEstablishment)
			establishments.POST("", r.establishmentController.Create)
			establishments.POST("/:id/certifications", r.establishmentController.AddCertification)
			establishments.POST("/:id/safety-features", r.establishmentController.AddSafetyFeature)
		}

		inspections := v1.Group("/inspections")
		{
			inspections.GET("/:id", r.inspectionController.GetByID)
			inspections.POST("", r.inspectionController.Create)
			inspections.POST("/:id/violations", r.inspectionController.AddViolation)
		}

		reports := v1.Group("/reports")
		{
			reports.GET("/registry", r.reportController.GetRegistry)
		}
	}

	return router
}
