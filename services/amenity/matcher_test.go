package amenity

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	amenityRepo "cityconnect/database/repository/amenity"
	"cityconnect/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeAmenityRepo struct {
	table     models.AmenityTable
	locations []models.ParkLocation
	err       error
}

func (f *fakeAmenityRepo) Amenities(ctx context.Context) (models.AmenityTable, error) {
	return f.table, f.err
}

func (f *fakeAmenityRepo) Locations(ctx context.Context) ([]models.ParkLocation, error) {
	return f.locations, f.err
}

func row(park string, flags ...string) models.ParkAmenities {
	m := make(map[string]bool)
	for _, f := range flags {
		m[f] = true
	}
	return models.ParkAmenities{Park: park, Flags: m}
}

func newFakeRepo() *fakeAmenityRepo {
	return &fakeAmenityRepo{
		table: models.AmenityTable{
			Columns: []string{"BBQ", "Playground", "Tennis Courts"},
			Rows: []models.ParkAmenities{
				row("River Glen Park", "Playground", "BBQ"),
				row("Roosevelt Park", "Playground", "Tennis Courts", "BBQ"),
				row("Watson Park", "Tennis Courts"),
				row("Hidden Park", "Playground", "Tennis Courts", "BBQ"),
				row("Cataldi Park", "Tennis Courts", "BBQ"),
			},
		},
		locations: []models.ParkLocation{
			{ParkName: "Cataldi Park", Latitude: 37.27, Longitude: -121.93},
			{ParkName: "River Glen Park", Latitude: 37.36, Longitude: -121.90},
			{ParkName: "Roosevelt Park", Latitude: 37.35, Longitude: -121.89},
			{ParkName: "Watson Park", Latitude: 37.36, Longitude: -121.92},
		},
	}
}

func TestMentioned(t *testing.T) {
	m := NewMatcher(newFakeRepo())
	tests := []struct {
		text string
		want []string
	}{
		{"tennis and bbq", []string{"BBQ", "Tennis Courts"}},
		{"Any place to BARBECUE?", []string{"BBQ"}},
		{"where is the nearest bathroom", []string{"Restroom"}},
		{"does River Glen Park have a playground", []string{"Playground"}},
		{"what time is it", nil},
	}
	for _, tt := range tests {
		t.Run(tt.text, func(t *testing.T) {
			assert.Equal(t, tt.want, m.Mentioned(tt.text))
		})
	}
}

func TestSearch_AndAcrossAmenities(t *testing.T) {
	m := NewMatcher(newFakeRepo())

	res, err := m.Search(context.Background(), "tennis and bbq")
	require.NoError(t, err)

	// Hidden Park qualifies but has no location, so the inner join drops it.
	assert.Equal(t, []string{"Roosevelt Park", "Cataldi Park"}, res.Parks)
	require.Len(t, res.Points, 2)
	assert.Equal(t, models.MapPoint{ParkName: "Roosevelt Park", Lat: 37.35, Lon: -121.89}, res.Points[0])
}

func TestSearch_NoKeyword(t *testing.T) {
	repo := newFakeRepo()
	repo.err = errors.New("must not be read")
	m := NewMatcher(repo)

	res, err := m.Search(context.Background(), "hello there")
	require.NoError(t, err)
	assert.Empty(t, res.Parks)
	assert.Empty(t, res.Points)
}

func TestSearch_Playground(t *testing.T) {
	m := NewMatcher(newFakeRepo())
	res, err := m.Search(context.Background(), "does river glen park have a playground")
	require.NoError(t, err)
	assert.Contains(t, res.Parks, "River Glen Park")
	assert.NotContains(t, res.Parks, "Watson Park")
}

func TestFilter(t *testing.T) {
	m := NewMatcher(newFakeRepo())

	// No column for Skate Park: the amenity is ignored rather than excluding everything.
	res, err := m.Filter(context.Background(), []string{"Skate Park", "Playground"})
	require.NoError(t, err)
	assert.Equal(t, []string{"River Glen Park", "Roosevelt Park"}, res.Parks)

	all, err := m.Filter(context.Background(), nil)
	require.NoError(t, err)
	assert.Len(t, all.Parks, 4)
}

func TestFilter_RepoError(t *testing.T) {
	repo := newFakeRepo()
	repo.err = errors.New("file locked")
	_, err := NewMatcher(repo).Filter(context.Background(), []string{"BBQ"})
	assert.Error(t, err)
}

func TestParkAmenities(t *testing.T) {
	m := NewMatcher(newFakeRepo())

	has, err := m.ParkAmenities(context.Background(), "roosevelt park")
	require.NoError(t, err)
	assert.Equal(t, []string{"BBQ", "Playground", "Tennis Courts"}, has)

	_, err = m.ParkAmenities(context.Background(), "Nowhere Park")
	assert.ErrorIs(t, err, ErrUnknownPark)
}

func TestSearch_CSVDropsParksWithoutLocation(t *testing.T) {
	dir := t.TempDir()
	amenities := filepath.Join(dir, "Park_amenities.csv")
	locations := filepath.Join(dir, "Park_location.csv")
	require.NoError(t, os.WriteFile(amenities, []byte(
		"Park,Tennis Courts\n"+
			"Roosevelt Park,True\n"+
			"Cataldi Park,True\n"), 0o644))
	require.NoError(t, os.WriteFile(locations, []byte(
		"Park Name,Latitude,Longitude\n"+
			"Roosevelt Park,37.35,-121.89\n"), 0o644))

	m := NewMatcher(amenityRepo.NewCSVAmenityRepo(amenities, locations))
	res, err := m.Search(context.Background(), "tennis")
	require.NoError(t, err)

	// Cataldi Park has the amenity and built-in coordinates, but the file has no row for it.
	assert.Equal(t, []string{"Roosevelt Park"}, res.Parks)
	assert.Equal(t, []models.MapPoint{{ParkName: "Roosevelt Park", Lat: 37.35, Lon: -121.89}}, res.Points)
}
