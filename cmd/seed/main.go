// File: cityconnect/cmd/seed/main.go
//
// seed copies the CSV schedule and reservation log into MongoDB so the server
// can run with STORE_DRIVER=mongo. Existing collections are replaced.
package main

import (
	"context"
	"time"

	"cityconnect/config"
	"cityconnect/database"
	reservationRepo "cityconnect/database/repository/reservation"
	scheduleRepo "cityconnect/database/repository/schedule"
	"cityconnect/utils"

	"go.uber.org/zap"
)

func main() {
	config.LoadConfig()
	logger := utils.GetLogger()
	defer logger.Sync()

	if err := database.InitDB(); err != nil {
		logger.Sugar().Fatalf("seed: %v", err)
	}
	defer database.CloseDB(context.Background())

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Minute)
	defer cancel()

	db := database.Database()

	schedulePath := config.DataPath(config.AppConfig.ScheduleFile)
	entries, err := scheduleRepo.NewCSVScheduleRepo(schedulePath).ReadAll(ctx)
	if err != nil {
		logger.Sugar().Fatalf("seed: read schedule: %v", err)
	}
	if err := scheduleRepo.NewMongoScheduleRepo(db).WriteAll(ctx, entries); err != nil {
		logger.Sugar().Fatalf("seed: write schedule: %v", err)
	}
	logger.Info("Schedule seeded", zap.String("from", schedulePath), zap.Int("entries", len(entries)))

	logPath := config.DataPath(config.AppConfig.ReservationsFile)
	records, err := reservationRepo.NewCSVReservationRepo(logPath).ReadAll(ctx)
	if err != nil {
		logger.Sugar().Fatalf("seed: read reservations: %v", err)
	}
	if err := reservationRepo.NewMongoReservationRepo(db).WriteAll(ctx, records); err != nil {
		logger.Sugar().Fatalf("seed: write reservations: %v", err)
	}
	logger.Info("Reservation log seeded", zap.String("from", logPath), zap.Int("records", len(records)))
}
