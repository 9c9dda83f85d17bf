package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/yigit/devcamper/internal/app/controllers"
	"github.com/yigit/devcamper/internal/middleware"
)

// SetupRouter configures all application routes
func SetupRouter(
	router *gin.Engine,
	bootcampController *controllers.BootcampController,
	courseController *controllers.CourseController,
	healthController *controllers.HealthController,
) {
	h := middleware.Handle

	// API version group
	v1 := router.Group("/api/v1")

	v1.GET("/health", h(healthController.Health))

	bootcamps := v1.Group("/bootcamps")
	{
		bootcamps.GET("", h(bootcampController.GetBootcamps))
		bootcamps.POST("", h(bootcampController.CreateBootcamp))
		bootcamps.GET("/radius/:zipcode/:distance", h(bootcampController.GetBootcampsInRadius))
		bootcamps.GET("/:id", h(bootcampController.GetBootcamp))
		bootcamps.PUT("/:id", h(bootcampController.UpdateBootcamp))
		bootcamps.DELETE("/:id", h(bootcampController.DeleteBootcamp))

		// Nested course routes share the :id wildcard name with the bootcamp routes
		bootcamps.GET("/:id/courses", h(courseController.GetBootcampCourses))
		bootcamps.POST("/:id/courses", h(courseController.CreateCourse))
	}

	courses := v1.Group("/courses")
	{
		courses.GET("", h(courseController.GetCourses))
		courses.GET("/:id", h(courseController.GetCourse))
		courses.PUT("/:id", h(courseController.UpdateCourse))
		courses.DELETE("/:id", h(courseController.DeleteCourse))
	}
}
