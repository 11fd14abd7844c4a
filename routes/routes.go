package routes

import (
	"time"

	"cityconnect/handlers"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// RegisterChatRoutes registers the chatbot assistant endpoints.
func RegisterChatRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/chat/sessions")
	{
		api.POST("", hb.StartChatSession)
		api.GET("/:sessionID", hb.GetChatSession)
		api.POST("/:sessionID/messages", hb.PostChatMessage)
		api.DELETE("/:sessionID", hb.EndChatSession)
	}
}

// RegisterParkRoutes registers park browsing and amenity endpoints.
func RegisterParkRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	parksGroup := r.Group("/api/parks")
	{
		parksGroup.GET("", hb.ListParks)
		parksGroup.GET("/:park/availability", hb.GetAvailability)
		parksGroup.GET("/:park/amenities", hb.GetParkAmenities)
		parksGroup.GET("/:park/description", hb.DescribePark)
	}

	r.GET("/api/schedule", hb.ListSchedule)

	amenities := r.Group("/api/amenities")
	{
		amenities.GET("/search", hb.SearchAmenities)
		amenities.GET("/filter", hb.FilterAmenities)
	}
}

// RegisterReservationRoutes registers the direct booking form.
func RegisterReservationRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	r.POST("/api/reservations", hb.CreateReservation)
}

// RegisterIssueRoutes registers issue reporting.
func RegisterIssueRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	issues := r.Group("/api/issues")
	{
		issues.POST("", hb.ReportIssue)
		issues.GET("", hb.ListIssues)
	}
}

// RegisterHealthRoute registers a health-check endpoint.
func RegisterHealthRoute(r *gin.Engine, hb *handlers.HandlerBundle) {
	r.GET("/health", hb.Health)
}

// RegisterRoutes centralizes registration of all endpoints and middleware.
func RegisterRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: false,
		MaxAge:           12 * time.Hour,
	}))

	RegisterChatRoutes(r, hb)
	RegisterParkRoutes(r, hb)
	RegisterReservationRoutes(r, hb)
	RegisterIssueRoutes(r, hb)
	RegisterHealthRoute(r, hb)
}
