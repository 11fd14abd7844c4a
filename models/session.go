package models

import (
	"fmt"
	"time"
)

// BookingStage is the cursor over the fields the booking dialogue still needs.
type BookingStage int

const (
	StageNone BookingStage = iota
	StageName
	StageEmail
	StagePhone
	StagePark
	StageDate
	StageTimeSlot
)

var stageNames = map[BookingStage]string{
	StageNone:     "none",
	StageName:     "name",
	StageEmail:    "email",
	StagePhone:    "phone",
	StagePark:     "park",
	StageDate:     "date",
	StageTimeSlot: "time_slot",
}

func (s BookingStage) String() string {
	if n, ok := stageNames[s]; ok {
		return n
	}
	return fmt.Sprintf("stage(%d)", int(s))
}

// Next returns the stage that follows s. TIME_SLOT wraps back to NONE.
func (s BookingStage) Next() BookingStage {
	if s == StageTimeSlot {
		return StageNone
	}
	return s + 1
}

func (s BookingStage) MarshalText() ([]byte, error) {
	if _, ok := stageNames[s]; !ok {
		return nil, fmt.Errorf("invalid booking stage %d", int(s))
	}
	return []byte(s.String()), nil
}

func (s *BookingStage) UnmarshalText(b []byte) error {
	for stage, name := range stageNames {
		if name == string(b) {
			*s = stage
			return nil
		}
	}
	return fmt.Errorf("invalid booking stage %q", string(b))
}

// ReservationDraft is the reservation being filled in over several turns.
type ReservationDraft struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Phone    string `json:"phone"`
	Park     string `json:"park"`
	Date     string `json:"date"`
	TimeSlot string `json:"timeSlot"`
}

// With returns a copy of the draft with the field collected at stage set to value.
func (d ReservationDraft) With(stage BookingStage, value string) ReservationDraft {
	switch stage {
	case StageName:
		d.Name = value
	case StageEmail:
		d.Email = value
	case StagePhone:
		d.Phone = value
	case StagePark:
		d.Park = value
	case StageDate:
		d.Date = value
	case StageTimeSlot:
		d.TimeSlot = value
	}
	return d
}

func (d ReservationDraft) IsEmpty() bool {
	return d == ReservationDraft{}
}

// Record converts a completed draft into a log entry.
func (d ReservationDraft) Record() ReservationRecord {
	return ReservationRecord{
		Name:     d.Name,
		Email:    d.Email,
		Phone:    d.Phone,
		ParkName: d.Park,
		Date:     d.Date,
		TimeSlot: d.TimeSlot,
	}
}

// ChatSession is everything one conversation owns between requests.
type ChatSession struct {
	ID        string           `json:"id"`
	Stage     BookingStage     `json:"stage"`
	Draft     ReservationDraft `json:"draft"`
	Turns     []Turn           `json:"turns"`
	CreatedAt time.Time        `json:"createdAt"`
	UpdatedAt time.Time        `json:"updatedAt"`
}

func (s *ChatSession) Append(t Turn) {
	s.Turns = append(s.Turns, t)
}

// ChatRequest is the body of a chat message post.
type ChatRequest struct {
	Text string `json:"text" binding:"required"`
}

// ChatResponse returns the turns produced by one message plus the resulting stage.
type ChatResponse struct {
	SessionID string       `json:"sessionId"`
	Stage     BookingStage `json:"stage"`
	Turns     []TurnView   `json:"turns"`
}
