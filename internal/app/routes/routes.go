package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/edulink/outreach-admin/internal/app/controllers"
	"github.com/edulink/outreach-admin/internal/app/models"
	"github.com/edulink/outreach-admin/internal/app/models/dto"
	"github.com/edulink/outreach-admin/internal/middleware"
)

// SetupRouter configures all application routes
func SetupRouter(
	router *gin.Engine,
	authController *controllers.AuthController,
	sponsorController *controllers.SponsorController,
	schoolController *controllers.SchoolController,
	instructorController *controllers.InstructorController,
	programController *controllers.ProgramController,
	scheduleController *controllers.ScheduleController,
	matchingController *controllers.MatchingController,
	settlementController *controllers.SettlementController,
	authMiddleware *middleware.AuthMiddleware,
) {
	// API version group
	v1 := router.Group("/api/v1")

	// --- Public Auth routes ---
	auth := v1.Group("/auth")
	{
		auth.POST("/login", authController.Login)
		auth.POST("/refresh", authController.RefreshToken)
	}

	// --- Authenticated Routes Group ---
	authenticated := v1.Group("")
	authenticated.Use(authMiddleware.JWTAuth())
	{
		authenticated.GET("/auth/profile", authController.GetProfile)

		// Sponsor routes
		sponsors := authenticated.Group("/sponsors")
		{
			sponsors.GET("", sponsorController.GetAllSponsors)
			sponsors.GET("/:id", sponsorController.GetSponsorByID)
			sponsors.POST("", sponsorController.CreateSponsor)
			sponsors.PUT("/:id", sponsorController.UpdateSponsor)

			// Destructive directory operations require the admin role
			sponsorsAdminProtected := sponsors.Group("")
			sponsorsAdminProtected.Use(authMiddleware.RoleRequired(string(models.RoleAdmin)))
			{
				sponsorsAdminProtected.DELETE("/:id", sponsorController.DeleteSponsor)
			}
		}

		// School routes
		schools := authenticated.Group("/schools")
		{
			schools.GET("", schoolController.GetAllSchools)
			schools.GET("/:id", schoolController.GetSchoolByID)
			schools.POST("", schoolController.CreateSchool)
			schools.PUT("/:id", schoolController.UpdateSchool)

			schoolsAdminProtected := schools.Group("")
			schoolsAdminProtected.Use(authMiddleware.RoleRequired(string(models.RoleAdmin)))
			{
				schoolsAdminProtected.DELETE("/:id", schoolController.DeleteSchool)
			}
		}

		// Instructor routes
		instructors := authenticated.Group("/instructors")
		{
			instructors.GET("", instructorController.GetAllInstructors)
			instructors.GET("/:id", instructorController.GetInstructorByID)
			instructors.POST("", instructorController.CreateInstructor)
			instructors.PUT("/:id", instructorController.UpdateInstructor)

			instructorsAdminProtected := instructors.Group("")
			instructorsAdminProtected.Use(authMiddleware.RoleRequired(string(models.RoleAdmin)))
			{
				instructorsAdminProtected.DELETE("/:id", instructorController.DeleteInstructor)
			}
		}

		// Program routes, including nested round management
		programs := authenticated.Group("/programs")
		{
			programs.GET("", programController.GetAllPrograms)
			programs.GET("/:id", programController.GetProgramByID)
			programs.POST("", programController.CreateProgram)
			programs.PUT("/:id", programController.UpdateProgram)
			programs.DELETE("/:id", programController.DeleteProgram)

			programs.POST("/:id/rounds", programController.AddRound)
			programs.PUT("/:id/rounds/:roundId", programController.UpdateRound)
			programs.DELETE("/:id/rounds/:roundId", programController.DeleteRound)
		}

		// Schedule routes, conflict detection is advisory
		schedules := authenticated.Group("/schedules")
		{
			schedules.GET("", scheduleController.GetEntries)
			schedules.GET("/:id", scheduleController.GetEntryByID)
			schedules.POST("", scheduleController.CreateEntry)
			schedules.PUT("/:id", scheduleController.UpdateEntry)
			schedules.DELETE("/:id", scheduleController.DeleteEntry)

			schedules.POST("/check-conflicts", scheduleController.CheckConflicts)
			schedules.GET("/:id/conflicts", scheduleController.GetConflicts)
		}

		// Matching routes
		matchings := authenticated.Group("/matchings")
		{
			matchings.GET("", matchingController.GetAllMatchings)
			matchings.GET("/recommendations", matchingController.GetRecommendations)
			matchings.GET("/:id", matchingController.GetMatchingByID)
			matchings.POST("", matchingController.CreateMatching)
			matchings.PATCH("/:id/status", matchingController.UpdateMatchingStatus)
			matchings.POST("/:id/cancel", matchingController.CancelMatching)
		}

		// Settlement routes
		settlements := authenticated.Group("/settlements")
		{
			settlements.GET("", settlementController.GetAllSettlements)
			settlements.GET("/:id", settlementController.GetSettlementByID)
			settlements.POST("", settlementController.Submit)
			settlements.POST("/calculate", settlementController.Calculate)
			settlements.PATCH("/:id/status", settlementController.UpdateSettlementStatus)

			// Proof file management
			settlements.POST("/:id/files", settlementController.UploadProofFile)
			settlements.GET("/:id/files", settlementController.GetProofFiles)
			settlements.DELETE("/:id/files/:fileId", settlementController.DeleteProofFile)
		}
	}

	// Health check endpoint (public)
	v1.GET("/health", func(c *gin.Context) {
		c.JSON(200, dto.APIResponse{
			Data: gin.H{"status": "ok"},
		})
	})

	// Swagger routes are set up in bootstrap.go already
}
