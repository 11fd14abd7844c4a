package reservationRepo

import (
	"context"

	"cityconnect/database"
	"cityconnect/models"
)

var logHeader = []string{"name", "email", "phone", "park_name", "date", "time_slot"}

type csvReservationRepo struct {
	path string
}

func NewCSVReservationRepo(path string) ReservationRepository {
	return &csvReservationRepo{path: path}
}

func (r *csvReservationRepo) ReadAll(ctx context.Context) ([]models.ReservationRecord, error) {
	t, err := database.ReadTable(r.path, logHeader)
	if err != nil {
		return nil, err
	}
	records := make([]models.ReservationRecord, 0, len(t.Rows))
	for _, row := range t.Rows {
		records = append(records, models.ReservationRecord{
			Name:     t.Get(row, "name"),
			Email:    t.Get(row, "email"),
			Phone:    t.Get(row, "phone"),
			ParkName: t.Get(row, "park_name"),
			Date:     t.Get(row, "date"),
			TimeSlot: t.Get(row, "time_slot"),
		})
	}
	return records, nil
}

func (r *csvReservationRepo) WriteAll(ctx context.Context, records []models.ReservationRecord) error {
	lock := database.FileLock(r.path)
	lock.Lock()
	defer lock.Unlock()
	return r.write(records)
}

func (r *csvReservationRepo) write(records []models.ReservationRecord) error {
	t := database.Table{Header: logHeader, Rows: make([][]string, 0, len(records))}
	for _, rec := range records {
		t.Rows = append(t.Rows, []string{rec.Name, rec.Email, rec.Phone, rec.ParkName, rec.Date, rec.TimeSlot})
	}
	return database.WriteTable(r.path, t)
}

// Append re-reads the log and rewrites it with the new record at the end.
func (r *csvReservationRepo) Append(ctx context.Context, record models.ReservationRecord) error {
	lock := database.FileLock(r.path)
	lock.Lock()
	defer lock.Unlock()

	records, err := r.ReadAll(ctx)
	if err != nil {
		return err
	}
	return r.write(append(records, record))
}
