package router

import (
	"github.com/gin-gonic/gin"

	"doclens/internal/handler"
	"doclens/internal/middleware"
)

// Setup configures the Gin engine with all routes and middleware.
func Setup(
	analysisH *handler.AnalysisHandler,
	healthH *handler.HealthHandler,
	allowedOrigins []string,
) *gin.Engine {
	r := gin.New()

	// Global middleware
	r.Use(middleware.Recovery())
	r.Use(middleware.RequestID())
	r.Use(middleware.Logger())
	r.Use(middleware.CORS(allowedOrigins))

	// Health check
	r.GET("/healthz", healthH.Liveness)

	v1 := r.Group("/api/v1")
	v1.POST("/classify", analysisH.Classify)
	v1.POST("/extract", analysisH.Extract)
	v1.POST("/analyze", analysisH.Analyze)
	v1.POST("/card-details", analysisH.CardDetails)
	v1.GET("/types", analysisH.Types)

	return r
}
