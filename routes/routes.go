package routes

import (
	"school-outreach-api/controllers"
	"school-outreach-api/middleware"
	"school-outreach-api/models"

	"github.com/gin-gonic/gin"
)

func SetupRoutes(router *gin.Engine) {
	// API v1 group
	v1 := router.Group("/api/v1")
	{
		// Public routes
		public := v1.Group("")
		{
			// Authentication and onboarding
			public.POST("/login", controllers.Login)
			public.POST("/register-school", controllers.RegisterSchool)

			// Chapters are public for the registration form
			public.GET("/chapters", controllers.GetChapters)

			// Health check
			public.GET("/health", func(c *gin.Context) {
				c.JSON(200, gin.H{
					"status":  "ok",
					"message": "School Outreach API is running",
				})
			})
		}

		// Protected routes (require authentication)
		protected := v1.Group("")
		protected.Use(middleware.AuthMiddleware())
		{
			// User profile
			protected.GET("/profile", controllers.GetProfile)
			protected.PUT("/change-password", controllers.ChangePassword)

			// Dashboard
			protected.GET("/dashboard/stats", controllers.GetDashboardStats)

			// Chapters (admin manages)
			chapters := protected.Group("/chapters")
			{
				chapters.POST("", middleware.RequireRole(models.RoleAdmin), controllers.CreateChapter)
				chapters.PUT("/:id", middleware.RequireRole(models.RoleAdmin), controllers.UpdateChapter)
				chapters.DELETE("/:id", middleware.RequireRole(models.RoleAdmin), controllers.DeleteChapter)
			}

			// Schools
			schools := protected.Group("/schools")
			{
				schools.GET("", middleware.RequireRole(models.RoleEvaluator, models.RoleAdmin), controllers.GetSchools)
				schools.GET("/:id", middleware.RequireRole(models.RoleEvaluator, models.RoleAdmin), controllers.GetSchool)

				// Only admin can approve/reject registrations
				schools.POST("/:id/approve", middleware.RequireRole(models.RoleAdmin), controllers.ApproveSchool)
				schools.POST("/:id/reject", middleware.RequireRole(models.RoleAdmin), controllers.RejectSchool)
			}

			// Activities
			events := protected.Group("/events")
			{
				events.GET("", controllers.GetEvents)
				events.GET("/:id", controllers.GetEvent)

				// Only admin can manage activities and assignments
				events.POST("", middleware.RequireRole(models.RoleAdmin), controllers.CreateEvent)
				events.PUT("/:id", middleware.RequireRole(models.RoleAdmin), controllers.UpdateEvent)
				events.DELETE("/:id", middleware.RequireRole(models.RoleAdmin), controllers.DeleteEvent)
				events.POST("/:id/assign", middleware.RequireRole(models.RoleAdmin), controllers.AssignEvent)
			}

			// Activities assigned to the calling school
			protected.GET("/assigned-events", middleware.RequireRole(models.RoleSchool), controllers.GetAssignedEvents)

			// Submissions
			submissions := protected.Group("/submissions")
			{
				submissions.GET("", controllers.GetSubmissions)
				submissions.GET("/:id", controllers.GetSubmission)

				// Only school accounts submit and attach evidence
				submissions.POST("", middleware.RequireRole(models.RoleSchool), controllers.CreateSubmission)
				submissions.POST("/:id/media", middleware.RequireRole(models.RoleSchool), controllers.UploadSubmissionMedia)
				submissions.POST("/:id/publications", middleware.RequireRole(models.RoleSchool), controllers.AddPublication)

				// Review actions require evaluator or admin role
				submissions.POST("/:id/approve", middleware.RequireRole(models.RoleEvaluator, models.RoleAdmin), controllers.ApproveSubmission)
				submissions.POST("/:id/request-revision", middleware.RequireRole(models.RoleEvaluator, models.RoleAdmin), controllers.RequestRevision)
				submissions.POST("/:id/reject", middleware.RequireRole(models.RoleEvaluator, models.RoleAdmin), controllers.RejectSubmission)
				submissions.GET("/:id/reviews", middleware.RequireRole(models.RoleEvaluator, models.RoleAdmin), controllers.GetReviewHistory)
			}

			// Leaderboard (all authenticated users)
			protected.GET("/leaderboard", controllers.GetLeaderboard)

			// Reports
			protected.GET("/reports/rankings", middleware.RequireRole(models.RoleAdmin), controllers.GetRankingsReport)

			// Certificates
			certificates := protected.Group("/certificates")
			{
				certificates.GET("", controllers.GetCertificates)
				certificates.GET("/:id/download", controllers.DownloadCertificate)
				certificates.POST("/issue", middleware.RequireRole(models.RoleAdmin), controllers.IssueCertificate)
			}

			// Donations (admin only)
			donations := protected.Group("/donations")
			donations.Use(middleware.RequireRole(models.RoleAdmin))
			{
				donations.GET("", controllers.GetDonations)
				donations.POST("", controllers.CreateDonation)
				donations.PUT("/:id/status", controllers.UpdateDonationStatus)
				donations.GET("/summary", controllers.GetDonationSummary)
				donations.GET("/donors", controllers.GetDonors)
				donations.POST("/donors", controllers.CreateDonor)
			}
		}
	}
}
