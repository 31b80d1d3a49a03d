package routes

import (
	"herdbook-backend/internal/api/handlers"
	"herdbook-backend/internal/api/middleware"
	"herdbook-backend/internal/config"
	"herdbook-backend/internal/gestation"
	"herdbook-backend/internal/repository"
	"herdbook-backend/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"gorm.io/gorm"
)

// SetupRoutes configures all the routes for the application
func SetupRoutes(db *gorm.DB, cfg *config.Config) *gin.Engine {
	router := gin.New()

	router.Use(middleware.Logger())
	router.Use(middleware.Recovery())
	router.Use(middleware.RequestID())
	router.Use(middleware.CORS(cfg))

	validator := validator.New()
	gestationTable := gestation.DefaultTable()

	// Initialize repositories
	animalRepo := repository.NewAnimalRepository(db)
	programRepo := repository.NewBreedingProgramRepository(db)
	groupRepo := repository.NewBreedingGroupRepository(db)
	memberRepo := repository.NewBreedingGroupMemberRepository(db)
	planRepo := repository.NewBreedingPlanRepository(db)

	// Initialize services
	animalService := service.NewAnimalService(animalRepo, validator)
	programService := service.NewBreedingProgramService(programRepo, validator)
	groupService := service.NewBreedingGroupService(db, groupRepo, memberRepo, animalRepo, programRepo, gestationTable, validator)
	memberService := service.NewBreedingGroupMemberService(db, groupRepo, memberRepo, animalRepo, planRepo, gestationTable, validator)
	planService := service.NewBreedingPlanService(planRepo)

	// Initialize handlers
	healthHandler := handlers.NewHealthHandler(db)
	animalHandler := handlers.NewAnimalHandler(animalService)
	programHandler := handlers.NewBreedingProgramHandler(programService)
	groupHandler := handlers.NewBreedingGroupHandler(groupService)
	memberHandler := handlers.NewBreedingGroupMemberHandler(memberService)
	planHandler := handlers.NewBreedingPlanHandler(planService)

	// Health check routes
	router.GET("/health", healthHandler.Health)
	router.GET("/health/ready", healthHandler.Ready)
	router.GET("/health/live", healthHandler.Live)

	// Swagger documentation route
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// API v1 routes - all endpoints are tenant scoped
	v1 := router.Group("/api/v1")
	v1.Use(middleware.OrganizationID())
	{
		// Animal routes
		animals := v1.Group("/animals")
		{
			animals.GET("", animalHandler.ListAnimals)
			animals.POST("", animalHandler.CreateAnimal)
			animals.GET("/:id", animalHandler.GetAnimal)
			animals.PUT("/:id", animalHandler.UpdateAnimal)
			animals.DELETE("/:id", animalHandler.DeleteAnimal)
		}

		// Breeding program routes
		programs := v1.Group("/breeding-programs")
		{
			programs.GET("", programHandler.ListPrograms)
			programs.POST("", programHandler.CreateProgram)
			programs.GET("/:id", programHandler.GetProgram)
			programs.PUT("/:id", programHandler.UpdateProgram)
			programs.DELETE("/:id", programHandler.DeleteProgram)
		}

		// Breeding group routes
		groups := v1.Group("/breeding-groups")
		{
			groups.GET("", groupHandler.ListBreedingGroups)
			groups.POST("", groupHandler.CreateBreedingGroup)
			groups.GET("/:id", groupHandler.GetBreedingGroup)
			groups.PUT("/:id", groupHandler.UpdateBreedingGroup)
			groups.DELETE("/:id", groupHandler.DeleteBreedingGroup)
			groups.POST("/:id/end-exposure", groupHandler.EndExposure)

			// Member sub-routes
			groups.GET("/:id/members", memberHandler.ListMembers)
			groups.POST("/:id/members", memberHandler.AddMember)
			groups.POST("/:id/members/bulk", memberHandler.AddMembersBulk)
			groups.DELETE("/:id/members/:damId", memberHandler.RemoveMember)
			groups.PUT("/:id/members/:damId/status", memberHandler.SetMemberStatus)
			groups.POST("/:id/members/:damId/confirm-pregnancy", memberHandler.ConfirmPregnancy)
			groups.POST("/:id/members/:damId/not-pregnant", memberHandler.MarkNotPregnant)
			groups.POST("/:id/members/:damId/birth", memberHandler.RecordBirth)
		}

		// Breeding plan routes
		plans := v1.Group("/breeding-plans")
		{
			plans.GET("", planHandler.ListPlans)
			plans.GET("/:id", planHandler.GetPlan)
		}
	}

	// Catch-all route for undefined endpoints
	router.NoRoute(func(c *gin.Context) {
		c.JSON(404, gin.H{
			"error":      "Endpoint not found",
			"path":       c.Request.URL.Path,
			"method":     c.Request.Method,
			"request_id": c.GetString("request_id"),
		})
	})

	return router
}

// SetupHealthRoutes sets up only health check routes (useful for testing)
func SetupHealthRoutes(db *gorm.DB) *gin.Engine {
	router := gin.New()
	router.Use(middleware.Logger())
	router.Use(middleware.Recovery())

	healthHandler := handlers.NewHealthHandler(db)
	router.GET("/health", healthHandler.Health)
	router.GET("/health/ready", healthHandler.Ready)
	router.GET("/health/live", healthHandler.Live)

	return router
}
