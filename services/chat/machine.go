package chat

import (
	"strings"

	"cityconnect/models"
)

// Action is the side effect a transition asks the service to perform.
type Action int

const (
	// ActionReply needs nothing further: Reply is the assistant's answer.
	ActionReply Action = iota
	// ActionListDates lists available dates for the draft's park.
	ActionListDates
	// ActionListSlots lists available slots for the draft's park and date.
	ActionListSlots
	// ActionCommit books the completed draft.
	ActionCommit
	// ActionSearch runs the amenity search and falls back to assistant chat.
	ActionSearch
)

func (a Action) String() string {
	switch a {
	case ActionReply:
		return "reply"
	case ActionListDates:
		return "list_dates"
	case ActionListSlots:
		return "list_slots"
	case ActionCommit:
		return "commit"
	case ActionSearch:
		return "search"
	}
	return "unknown"
}

// Transition is the outcome of feeding one user message to the booking dialogue.
type Transition struct {
	Stage  models.BookingStage
	Draft  models.ReservationDraft
	Action Action
	Reply  string
}

// TriggerWords start a booking when no booking is in progress.
var TriggerWords = []string{"reservation", "book", "schedule", "reserve"}

const availabilityWord = "available"

func IsBookingTrigger(text string) bool {
	lower := strings.ToLower(text)
	for _, w := range TriggerWords {
		if strings.Contains(lower, w) {
			return true
		}
	}
	return false
}

func asksAvailability(text string) bool {
	return strings.Contains(strings.ToLower(text), availabilityWord)
}

// Advance is the booking dialogue's transition function. It has no side
// effects: field stages store the raw input and move one stage forward, the DATE
// and TIME_SLOT stages loop on availability questions, and everything else is
// handed back to the caller through Action.
func Advance(stage models.BookingStage, draft models.ReservationDraft, input string) Transition {
	switch stage {
	case models.StageNone:
		if IsBookingTrigger(input) {
			return Transition{Stage: models.StageName, Draft: models.ReservationDraft{}, Action: ActionReply, Reply: PromptFor(models.StageName)}
		}
		return Transition{Stage: models.StageNone, Draft: draft, Action: ActionSearch}

	case models.StageName, models.StageEmail, models.StagePhone, models.StagePark:
		next := stage.Next()
		return Transition{Stage: next, Draft: draft.With(stage, input), Action: ActionReply, Reply: PromptFor(next)}

	case models.StageDate:
		if asksAvailability(input) {
			return Transition{Stage: models.StageDate, Draft: draft, Action: ActionListDates}
		}
		return Transition{Stage: models.StageTimeSlot, Draft: draft.With(models.StageDate, input), Action: ActionReply, Reply: PromptFor(models.StageTimeSlot)}

	case models.StageTimeSlot:
		if asksAvailability(input) {
			return Transition{Stage: models.StageTimeSlot, Draft: draft, Action: ActionListSlots}
		}
		return Transition{Stage: models.StageNone, Draft: draft.With(models.StageTimeSlot, input), Action: ActionCommit}
	}

	// A stage this version does not know: drop the booking.
	return Transition{Stage: models.StageNone, Draft: models.ReservationDraft{}, Action: ActionSearch}
}
