package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/yigit/courseplan/internal/app/controllers"
	"github.com/yigit/courseplan/internal/app/models/dto"
	"github.com/yigit/courseplan/internal/middleware"
)

// SetupRouter configures all application routes
func SetupRouter(
	router *gin.Engine,
	authController *controllers.AuthController,
	catalogController *controllers.CatalogController,
	planController *controllers.PlanController,
	authMiddleware *middleware.AuthMiddleware,
) {
	// API version group
	v1 := router.Group("/api/v1")

	// --- Public catalog routes ---
	courses := v1.Group("/courses")
	{
		courses.GET("", catalogController.GetCourses)
		courses.GET("/:code", catalogController.GetCourseByCode)
		courses.GET("/:code/requirements", catalogController.GetCourseRequirements)
	}

	// --- Public auth routes ---
	auth := v1.Group("/auth")
	{
		auth.POST("/register", authController.Register)
		auth.POST("/login", authController.Login)
		auth.POST("/refresh", authController.RefreshToken)
	}

	// --- Authenticated routes ---
	authenticated := v1.Group("")
	authenticated.Use(authMiddleware.JWTAuth())
	{
		authenticated.POST("/auth/logout", authController.Logout)
		authenticated.GET("/auth/me", authController.GetProfile)

		plans := authenticated.Group("/plans")
		{
			plans.POST("", planController.CreatePlan)
			plans.GET("", planController.GetPlans)
			plans.GET("/:id", planController.GetPlanByID)
			plans.PUT("/:id", planController.UpdatePlan)
			plans.DELETE("/:id", planController.DeletePlan)

			plans.GET("/:id/validation", planController.ValidatePlan)
			plans.POST("/:id/placements", planController.PlaceCourse)
			plans.PUT("/:id/placements/:code", planController.MoveCourse)
			plans.DELETE("/:id/placements/:code", planController.RemoveCourse)
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
