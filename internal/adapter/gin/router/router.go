package router

import (
	"net/http"

	"user-rest-service/internal/adapter/gin/handler"
	"user-rest-service/internal/adapter/gin/middleware"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// SetupRouter configures and returns a Gin router with all routes and middleware
func SetupRouter(
	userHandler *handler.UserHandler,
	rateLimiter *middleware.RateLimiter,
	apiKey string,
	log *zap.Logger,
) *gin.Engine {
	gin.SetMode(gin.ReleaseMode)

	router := gin.New()

	// Global middleware
	router.Use(middleware.Recovery(log))
	router.Use(middleware.Logger(log))
	router.Use(rateLimiter.Middleware())

	// Health check endpoint
	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status":  "healthy",
			"service": "user-rest-service",
		})
	})

	users := router.Group("/users")
	{
		users.POST("", userHandler.CreateUser)
		users.GET("", userHandler.ListUsers)
		// Static route must be registered alongside the :id routes; gin
		// resolves it before the parameterized siblings.
		users.GET("/protected", middleware.APIKeyAuth(apiKey, log), userHandler.Protected)
		users.GET("/:id", userHandler.GetUser)
		users.PUT("/:id", userHandler.UpdateUser)
		users.DELETE("/:id", userHandler.DeleteUser)
	}

	// Diagnostic routes exercising the error-mapping path. No business logic.
	test := router.Group("/test")
	{
		test.GET("/exception", func(c *gin.Context) {
			panic("deliberate test exception")
		})
		test.GET("/notfound", func(c *gin.Context) {
			c.JSON(http.StatusNotFound, handler.ErrorResponse{
				Error:   "not_found",
				Message: "deliberate not found",
			})
		})
		test.GET("/badrequest", func(c *gin.Context) {
			c.JSON(http.StatusBadRequest, handler.ErrorResponse{
				Error:   "invalid_request",
				Message: "deliberate bad request",
			})
		})
	}

	return router
}
