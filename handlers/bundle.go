// File: handlers/bundle.go
package handlers

import "github.com/gin-gonic/gin"

// HandlerBundle groups all endpoint handlers into one struct.
type HandlerBundle struct {
	// Chat endpoints
	StartChatSession gin.HandlerFunc
	GetChatSession   gin.HandlerFunc
	PostChatMessage  gin.HandlerFunc
	EndChatSession   gin.HandlerFunc

	// Park endpoints
	ListParks        gin.HandlerFunc
	ListSchedule     gin.HandlerFunc
	GetAvailability  gin.HandlerFunc
	GetParkAmenities gin.HandlerFunc
	DescribePark     gin.HandlerFunc
	SearchAmenities  gin.HandlerFunc
	FilterAmenities  gin.HandlerFunc

	// Reservation endpoints
	CreateReservation gin.HandlerFunc

	// Issue endpoints
	ReportIssue gin.HandlerFunc
	ListIssues  gin.HandlerFunc

	Health gin.HandlerFunc
}
