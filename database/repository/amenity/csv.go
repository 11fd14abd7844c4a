package amenityRepo

import (
	"context"
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"

	"cityconnect/database"
	"cityconnect/models"
)

const amenityParkColumn = "Park"

var locationHeader = []string{"Park Name", "Latitude", "Longitude"}

type csvAmenityRepo struct {
	amenitiesPath string
	locationsPath string
}

func NewCSVAmenityRepo(amenitiesPath, locationsPath string) AmenityRepository {
	return &csvAmenityRepo{amenitiesPath: amenitiesPath, locationsPath: locationsPath}
}

func (r *csvAmenityRepo) Amenities(ctx context.Context) (models.AmenityTable, error) {
	t, err := database.ReadTable(r.amenitiesPath, []string{amenityParkColumn})
	if err != nil {
		return models.AmenityTable{}, err
	}
	if t.Index(amenityParkColumn) < 0 {
		return models.AmenityTable{}, fmt.Errorf("%s: missing %q column", r.amenitiesPath, amenityParkColumn)
	}

	table := models.AmenityTable{}
	for _, h := range t.Header {
		if h != amenityParkColumn && h != "" {
			table.Columns = append(table.Columns, h)
		}
	}
	for _, row := range t.Rows {
		park := t.Get(row, amenityParkColumn)
		if park == "" {
			continue
		}
		flags := make(map[string]bool, len(table.Columns))
		for _, col := range table.Columns {
			flags[col] = parseFlag(t.Get(row, col))
		}
		table.Rows = append(table.Rows, models.ParkAmenities{Park: park, Flags: flags})
	}
	return table, nil
}

func parseFlag(v string) bool {
	if b, err := strconv.ParseBool(v); err == nil {
		return b
	}
	switch strings.ToLower(v) {
	case "yes", "y":
		return true
	}
	return false
}

// Locations reads the locations file. The built-in coordinates are used only
// when the file does not exist; a park the file leaves out has no location.
func (r *csvAmenityRepo) Locations(ctx context.Context) ([]models.ParkLocation, error) {
	if _, err := os.Stat(r.locationsPath); errors.Is(err, os.ErrNotExist) {
		return append([]models.ParkLocation(nil), DefaultLocations...), nil
	}
	t, err := database.ReadTable(r.locationsPath, locationHeader)
	if err != nil {
		return nil, err
	}

	var locations []models.ParkLocation
	for _, row := range t.Rows {
		name := t.Get(row, "Park Name")
		lat, latErr := strconv.ParseFloat(t.Get(row, "Latitude"), 64)
		lon, lonErr := strconv.ParseFloat(t.Get(row, "Longitude"), 64)
		if name == "" || latErr != nil || lonErr != nil {
			continue
		}
		locations = append(locations, models.ParkLocation{ParkName: name, Latitude: lat, Longitude: lon})
	}
	return locations, nil
}
