package handlers

import (
	"errors"
	"net/http"

	"cityconnect/models"
	"cityconnect/services/booking"
	"cityconnect/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type ReservationHandler struct {
	Service booking.ReservationService
	Logger  *zap.Logger
}

func NewReservationHandler(service booking.ReservationService, logger *zap.Logger) *ReservationHandler {
	return &ReservationHandler{Service: service, Logger: logger}
}

// CreateReservation is the direct booking form.
func (h *ReservationHandler) CreateReservation(c *gin.Context) {
	var req models.ReservationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "Invalid request payload", err.Error())
		return
	}

	conf, err := h.Service.Book(c.Request.Context(), req)
	if err != nil {
		var bErr *booking.BookingError
		message := err.Error()
		if errors.As(err, &bErr) {
			message = bErr.Message
		}
		switch {
		case errors.Is(err, booking.ErrMissingContact),
			errors.Is(err, booking.ErrInvalidDate),
			errors.Is(err, booking.ErrPastDate):
			utils.JSONError(c, http.StatusBadRequest, "Reservation rejected", message)
		case errors.Is(err, booking.ErrSlotUnavailable):
			utils.JSONError(c, http.StatusConflict, "Time slot unavailable", message)
		default:
			h.Logger.Error("Reservation failed", zap.Error(err))
			utils.JSONError(c, http.StatusInternalServerError, "Reservation failed", message)
		}
		return
	}
	c.JSON(http.StatusCreated, conf)
}
