package handlers

import (
	"errors"
	"net/http"

	"cityconnect/services/amenity"
	"cityconnect/services/parks"
	"cityconnect/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type ParkHandler struct {
	Service parks.ParkService
	Matcher amenity.Matcher
	Logger  *zap.Logger
}

func NewParkHandler(service parks.ParkService, matcher amenity.Matcher, logger *zap.Logger) *ParkHandler {
	return &ParkHandler{Service: service, Matcher: matcher, Logger: logger}
}

func (h *ParkHandler) parkError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, parks.ErrUnknownPark):
		utils.JSONError(c, http.StatusNotFound, "Park not found", err.Error())
	case errors.Is(err, parks.ErrInvalidDate),
		errors.Is(err, parks.ErrInvalidIssueType),
		errors.Is(err, parks.ErrMissingDescription):
		utils.JSONError(c, http.StatusBadRequest, "Invalid request", err.Error())
	case errors.Is(err, parks.ErrAssistantOffline):
		utils.JSONError(c, http.StatusServiceUnavailable, "Assistant unavailable", err.Error())
	default:
		h.Logger.Error("Park request failed", zap.Error(err))
		utils.JSONError(c, http.StatusInternalServerError, "Park request failed", err.Error())
	}
}

func (h *ParkHandler) ListParks(c *gin.Context) {
	names, err := h.Service.ListParks(c.Request.Context())
	if err != nil {
		h.parkError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"parks": names})
}

// ListSchedule returns every schedule entry with its booking status.
func (h *ParkHandler) ListSchedule(c *gin.Context) {
	entries, err := h.Service.ListSchedule(c.Request.Context())
	if err != nil {
		h.parkError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"count": len(entries), "entries": entries})
}

// GetAvailability returns available dates, or slots when ?date= is given.
func (h *ParkHandler) GetAvailability(c *gin.Context) {
	avail, err := h.Service.Availability(c.Request.Context(), c.Param("park"), c.Query("date"))
	if err != nil {
		h.parkError(c, err)
		return
	}
	c.JSON(http.StatusOK, avail)
}

func (h *ParkHandler) GetParkAmenities(c *gin.Context) {
	park := c.Param("park")
	has, err := h.Service.ParkAmenities(c.Request.Context(), park)
	if err != nil {
		h.parkError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"park": park, "amenities": has})
}

func (h *ParkHandler) DescribePark(c *gin.Context) {
	desc, err := h.Service.DescribePark(c.Request.Context(), c.Param("park"))
	if err != nil {
		h.parkError(c, err)
		return
	}
	c.JSON(http.StatusOK, desc)
}

// SearchAmenities runs the chat keyword matcher over ?q=.
func (h *ParkHandler) SearchAmenities(c *gin.Context) {
	q := c.Query("q")
	if q == "" {
		utils.JSONError(c, http.StatusBadRequest, "Invalid request", "missing q parameter")
		return
	}
	res, err := h.Matcher.Search(c.Request.Context(), q)
	if err != nil {
		h.parkError(c, err)
		return
	}
	c.JSON(http.StatusOK, res)
}

// FilterAmenities keeps parks having every ?amenity= value.
func (h *ParkHandler) FilterAmenities(c *gin.Context) {
	res, err := h.Matcher.Filter(c.Request.Context(), c.QueryArray("amenity"))
	if err != nil {
		h.parkError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"count":  len(res.Parks),
		"parks":  res.Parks,
		"points": res.Points,
	})
}
