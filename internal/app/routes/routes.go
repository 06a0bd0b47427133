package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/skilllink/skilllink/internal/app/controllers"
	"github.com/skilllink/skilllink/internal/app/models"
	"github.com/skilllink/skilllink/internal/middleware"
)

// SetupRouter configures all application routes
func SetupRouter(
	router *gin.Engine,
	authController *controllers.AuthController,
	requestsController *controllers.RequestsController,
	skillsController *controllers.SkillsController,
	sessionsController *controllers.SessionsController,
	adminController *controllers.AdminController,
	authMiddleware *middleware.AuthMiddleware,
) {
	api := router.Group("/api")

	// --- Auth routes ---
	auth := api.Group("/auth")
	{
		auth.POST("/register", authController.Register)
		auth.POST("/login", authController.Login)
		auth.GET("/verify-email", authController.VerifyEmail)
		auth.GET("/by-userId/:id", authController.GetUserByID)

		authProtected := auth.Group("")
		authProtected.Use(authMiddleware.JWTAuth())
		{
			authProtected.GET("/me", authController.Me)
			authProtected.GET("/profile", authController.GetProfile)
			authProtected.PUT("/profile", authController.UpdateProfile)
			authProtected.PUT("/teach-mode", authController.UpdateTeachMode)
			authProtected.PUT("/active", authController.SetActive)
			authProtected.DELETE("/delete", authController.DeleteUser)
		}
	}

	// --- Request board and acceptance workflow ---
	requests := api.Group("/requests")
	{
		requests.GET("", requestsController.GetAllRequests)
		requests.GET("/search", requestsController.SearchRequests)
		requests.GET("/by-requestId/:id", requestsController.GetRequestByID)
		requests.GET("/by-learnerId/:id", requestsController.GetRequestsByLearnerID)

		requestsProtected := requests.Group("")
		requestsProtected.Use(authMiddleware.JWTAuth())
		{
			requestsProtected.POST("", requestsController.CreateRequest)
			requestsProtected.PUT("/:id", requestsController.UpdateRequest)
			requestsProtected.PATCH("/:id", requestsController.UpdateRequestStatus)
			requestsProtected.DELETE("/:id", requestsController.DeleteRequest)

			requestsProtected.POST("/:id/accept", requestsController.AcceptRequest)
			requestsProtected.GET("/:id/accepted-status", requestsController.GetAcceptedStatus)
			requestsProtected.GET("/accepted", requestsController.GetAcceptedRequests)
			requestsProtected.GET("/accepted/requester", requestsController.GetAcceptancesOfMyRequests)
			requestsProtected.POST("/accepted/:id/schedule", requestsController.ScheduleMeeting)
			requestsProtected.PATCH("/accepted/:id", requestsController.UpdateAcceptanceStatus)
		}
	}

	// --- Skill catalog ---
	skills := api.Group("/skills")
	{
		skills.GET("/user/:userId", skillsController.GetUserSkills)
		skills.GET("/suggest", skillsController.SuggestSkills)
		skills.GET("/filter", skillsController.FilterTutorsBySkill)

		skillsProtected := skills.Group("")
		skillsProtected.Use(authMiddleware.JWTAuth())
		{
			skillsProtected.POST("/add", skillsController.AddSkill)
			skillsProtected.DELETE("/:userId/:skillId", skillsController.DeleteUserSkill)
		}
	}

	// --- Session records ---
	sessions := api.Group("/sessions")
	{
		sessions.GET("", sessionsController.GetAllSessions)
		sessions.GET("/by-sessionId/:id", sessionsController.GetSessionByID)
		sessions.GET("/by-tutorId/:id", sessionsController.GetSessionsByTutorID)

		sessionsProtected := sessions.Group("")
		sessionsProtected.Use(authMiddleware.JWTAuth())
		{
			sessionsProtected.POST("", sessionsController.CreateSession)
			sessionsProtected.PATCH("/:id", sessionsController.UpdateSessionStatus)
			sessionsProtected.DELETE("/:id", sessionsController.DeleteSession)
		}
	}

	// --- Admin routes ---
	admin := api.Group("/admin")
	admin.Use(authMiddleware.JWTAuth(), authMiddleware.RoleRequired(models.RoleAdmin))
	{
		admin.GET("/users", adminController.GetUsers)
		admin.PUT("/users/:id/active", adminController.SetUserActive)
		admin.PUT("/users/:id/role", adminController.SetUserRole)
	}
}
