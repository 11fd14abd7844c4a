package scheduleRepo

import (
	"sort"
	"strings"
	"time"

	"cityconnect/models"
)

// parkNames returns distinct park names in first-seen order.
func parkNames(entries []models.ScheduleEntry) []string {
	seen := make(map[string]bool)
	var parks []string
	for _, e := range entries {
		name := strings.TrimSpace(e.ParkName)
		if name == "" || seen[name] {
			continue
		}
		seen[name] = true
		parks = append(parks, name)
	}
	return parks
}

// availableDates returns the distinct available dates for park, ascending, as YYYY-MM-DD.
func availableDates(entries []models.ScheduleEntry, park string) []string {
	seen := make(map[string]bool)
	var days []time.Time
	for _, e := range entries {
		if e.Status != models.SlotAvailable || !strings.EqualFold(strings.TrimSpace(e.ParkName), strings.TrimSpace(park)) {
			continue
		}
		d, ok := e.ParsedDate()
		if !ok {
			continue
		}
		key := d.Format(models.DateLayout)
		if seen[key] {
			continue
		}
		seen[key] = true
		days = append(days, d)
	}
	sort.Slice(days, func(i, j int) bool { return days[i].Before(days[j]) })

	dates := make([]string, 0, len(days))
	for _, d := range days {
		dates = append(dates, d.Format(models.DateLayout))
	}
	return dates
}

// availableSlots returns the distinct available slots for (park, day) in schedule order.
func availableSlots(entries []models.ScheduleEntry, park string, day time.Time) []string {
	seen := make(map[string]bool)
	var slots []string
	for _, e := range entries {
		if e.Status != models.SlotAvailable || !strings.EqualFold(strings.TrimSpace(e.ParkName), strings.TrimSpace(park)) {
			continue
		}
		d, ok := e.ParsedDate()
		if !ok || !models.SameDay(d, day) {
			continue
		}
		slot := strings.TrimSpace(e.TimeSlot)
		if seen[slot] {
			continue
		}
		seen[slot] = true
		slots = append(slots, slot)
	}
	return slots
}

// markBooked flips the first matching available entry in place.
func markBooked(entries []models.ScheduleEntry, park string, day time.Time, slot string) bool {
	for i := range entries {
		if entries[i].Status == models.SlotAvailable && entries[i].Matches(park, day, slot) {
			entries[i].Status = models.SlotBooked
			return true
		}
	}
	return false
}
