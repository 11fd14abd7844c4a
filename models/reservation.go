package models

import "strings"

// ReservationRecord is one row of the append-only reservation log.
type ReservationRecord struct {
	Name     string `json:"name" bson:"name"`
	Email    string `json:"email" bson:"email"`
	Phone    string `json:"phone" bson:"phone"`
	ParkName string `json:"parkName" bson:"park_name"`
	Date     string `json:"date" bson:"date"`
	TimeSlot string `json:"timeSlot" bson:"time_slot"`
}

// ReservationRequest is the direct-form booking input.
type ReservationRequest struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Phone    string `json:"phone"`
	ParkName string `json:"parkName" binding:"required"`
	Date     string `json:"date" binding:"required"`
	TimeSlot string `json:"timeSlot" binding:"required"`
}

// MissingContactFields lists the contact fields left blank.
func (r ReservationRequest) MissingContactFields() []string {
	var missing []string
	if strings.TrimSpace(r.Name) == "" {
		missing = append(missing, "name")
	}
	if strings.TrimSpace(r.Email) == "" {
		missing = append(missing, "email")
	}
	if strings.TrimSpace(r.Phone) == "" {
		missing = append(missing, "phone")
	}
	return missing
}

// ReservationConfirmation is returned after a successful booking.
type ReservationConfirmation struct {
	Reservation ReservationRecord `json:"reservation"`
	Message     string            `json:"message"`
}

// ConfirmationPayload is the queued "confirmation email" task body.
type ConfirmationPayload struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	ParkName string `json:"parkName"`
	Date     string `json:"date"`
	TimeSlot string `json:"timeSlot"`
}
