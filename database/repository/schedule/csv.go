package scheduleRepo

import (
	"context"
	"strings"
	"time"

	"cityconnect/database"
	"cityconnect/models"
)

var scheduleHeader = []string{"park_name", "date", "time_slot", "status"}

type csvScheduleRepo struct {
	path string
}

// NewCSVScheduleRepo returns a ScheduleRepository that re-reads the whole file on
// every call and rewrites it on every change.
func NewCSVScheduleRepo(path string) ScheduleRepository {
	return &csvScheduleRepo{path: path}
}

func (r *csvScheduleRepo) ReadAll(ctx context.Context) ([]models.ScheduleEntry, error) {
	t, err := database.ReadTable(r.path, scheduleHeader)
	if err != nil {
		return nil, err
	}
	entries := make([]models.ScheduleEntry, 0, len(t.Rows))
	for _, row := range t.Rows {
		date := t.Get(row, "date")
		// Files that were appended to with headers repeat the header row.
		if date == "date" {
			continue
		}
		entries = append(entries, models.ScheduleEntry{
			ParkName: t.Get(row, "park_name"),
			Date:     date,
			TimeSlot: t.Get(row, "time_slot"),
			Status:   models.SlotStatus(strings.ToLower(t.Get(row, "status"))),
		})
	}
	return entries, nil
}

func (r *csvScheduleRepo) WriteAll(ctx context.Context, entries []models.ScheduleEntry) error {
	lock := database.FileLock(r.path)
	lock.Lock()
	defer lock.Unlock()
	return r.write(entries)
}

func (r *csvScheduleRepo) write(entries []models.ScheduleEntry) error {
	t := database.Table{Header: scheduleHeader, Rows: make([][]string, 0, len(entries))}
	for _, e := range entries {
		t.Rows = append(t.Rows, []string{e.ParkName, e.Date, e.TimeSlot, string(e.Status)})
	}
	return database.WriteTable(r.path, t)
}

func (r *csvScheduleRepo) ListParks(ctx context.Context) ([]string, error) {
	entries, err := r.ReadAll(ctx)
	if err != nil {
		return nil, err
	}
	return parkNames(entries), nil
}

func (r *csvScheduleRepo) AvailableDates(ctx context.Context, park string) ([]string, error) {
	entries, err := r.ReadAll(ctx)
	if err != nil {
		return nil, err
	}
	return availableDates(entries, park), nil
}

func (r *csvScheduleRepo) AvailableSlots(ctx context.Context, park string, day time.Time) ([]string, error) {
	entries, err := r.ReadAll(ctx)
	if err != nil {
		return nil, err
	}
	return availableSlots(entries, park, day), nil
}

// MarkBooked reads, flips and rewrites under the in-process file lock. Another
// process rewriting the same file concurrently can still lose this update.
func (r *csvScheduleRepo) MarkBooked(ctx context.Context, park string, day time.Time, slot string) (bool, error) {
	lock := database.FileLock(r.path)
	lock.Lock()
	defer lock.Unlock()

	entries, err := r.ReadAll(ctx)
	if err != nil {
		return false, err
	}
	if !markBooked(entries, park, day, slot) {
		return false, nil
	}
	if err := r.write(entries); err != nil {
		return false, err
	}
	return true, nil
}
