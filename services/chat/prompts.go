package chat

import (
	"fmt"
	"strings"

	"cityconnect/models"
)

var stagePrompts = map[models.BookingStage]string{
	models.StageName:     "Sure! Let's make a reservation. What's your full name?",
	models.StageEmail:    "Great! Now, what's your email address?",
	models.StagePhone:    "Thanks! Could you also provide your phone number?",
	models.StagePark:     "Which park would you like to reserve?",
	models.StageDate:     "What date would you like to book? (Format: YYYY-MM-DD, or ask what's available)",
	models.StageTimeSlot: "Lastly, what time slot would you like? (You can ask what's available)",
}

// PromptFor is the question that asks for the field collected at stage.
func PromptFor(stage models.BookingStage) string {
	return stagePrompts[stage]
}

const (
	msgNoDates          = "😢 Sorry, no available dates for that park."
	msgNoSlots          = "😢 No available time slots for that date."
	msgAssistantOffline = "Sorry, I can't connect right now. Please try again in a moment."
	msgScheduleOffline  = "Sorry, I couldn't reach the park schedule just now. Please try again."
	msgCommitFailed     = "Sorry, I couldn't save your reservation just now. Please send the time slot again."
)

func msgAvailableDates(park string, dates []string) string {
	return fmt.Sprintf("📅 Available dates for %s are: %s.\n\nPlease pick one.", park, strings.Join(dates, ", "))
}

func msgAvailableSlots(park, date string, slots []string) string {
	return fmt.Sprintf("⏰ Available time slots for %s on %s: %s.\n\nPlease pick one.", park, date, strings.Join(slots, ", "))
}

func msgBadDate(date string) string {
	return fmt.Sprintf("⚠️ I couldn't read the date %q. Please enter the date again in YYYY-MM-DD format.", date)
}

func msgConfirmed(r models.ReservationRecord) string {
	return fmt.Sprintf("✅ Your reservation for %s on %s at %s has been recorded! You will be receiving a confirmation email shortly.",
		r.ParkName, r.Date, r.TimeSlot)
}

func msgParkMap(parks []string) string {
	return fmt.Sprintf("🏡 Here's a map of the parks that match your request! 📍\n\n🗺️ Parks: %s\n\nFeel free to ask if you'd like help booking one!",
		strings.Join(parks, ", "))
}
