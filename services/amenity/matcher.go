package amenity

import (
	"context"
	"fmt"
	"strings"

	amenityRepo "cityconnect/database/repository/amenity"
	"cityconnect/models"
)

// Keyword maps one amenity column to the words that mention it.
type Keyword struct {
	Amenity  string
	Triggers []string
}

// Keywords is the fixed trigger table, in column order.
var Keywords = []Keyword{
	{Amenity: "BBQ", Triggers: []string{"bbq", "barbecue"}},
	{Amenity: "Basketball Court", Triggers: []string{"basketball"}},
	{Amenity: "Playground", Triggers: []string{"playground"}},
	{Amenity: "Restroom", Triggers: []string{"restroom", "bathroom", "toilet"}},
	{Amenity: "Tennis Courts", Triggers: []string{"tennis"}},
	{Amenity: "Volleyball", Triggers: []string{"volleyball"}},
	{Amenity: "Skate Park", Triggers: []string{"skate park", "skating"}},
	{Amenity: "Soccer Field", Triggers: []string{"soccer"}},
	{Amenity: "Pickleball", Triggers: []string{"pickleball"}},
}

// Result is a set of qualifying parks joined with their coordinates.
type Result struct {
	Amenities []string          `json:"amenities"`
	Parks     []string          `json:"parks"`
	Points    []models.MapPoint `json:"points"`
}

// Matcher turns free text or explicit selections into map-ready park lists.
type Matcher interface {
	Mentioned(text string) []string
	Search(ctx context.Context, text string) (*Result, error)
	Filter(ctx context.Context, required []string) (*Result, error)
	ParkAmenities(ctx context.Context, park string) ([]string, error)
}

type DefaultMatcher struct {
	Repo amenityRepo.AmenityRepository
}

func NewMatcher(repo amenityRepo.AmenityRepository) *DefaultMatcher {
	return &DefaultMatcher{Repo: repo}
}

// Mentioned returns the amenities whose keywords occur in text.
func (m *DefaultMatcher) Mentioned(text string) []string {
	lower := strings.ToLower(text)
	var found []string
	for _, k := range Keywords {
		for _, trigger := range k.Triggers {
			if strings.Contains(lower, trigger) {
				found = append(found, k.Amenity)
				break
			}
		}
	}
	return found
}

// Search matches text against the keyword table. No recognized keyword gives an
// empty result and no error.
func (m *DefaultMatcher) Search(ctx context.Context, text string) (*Result, error) {
	mentioned := m.Mentioned(text)
	if len(mentioned) == 0 {
		return &Result{}, nil
	}
	return m.Filter(ctx, mentioned)
}

// Filter keeps parks that have every required amenity. Amenities the table has
// no column for are ignored. An empty selection keeps every park.
func (m *DefaultMatcher) Filter(ctx context.Context, required []string) (*Result, error) {
	table, err := m.Repo.Amenities(ctx)
	if err != nil {
		return nil, fmt.Errorf("load amenities: %w", err)
	}
	locations, err := m.Repo.Locations(ctx)
	if err != nil {
		return nil, fmt.Errorf("load park locations: %w", err)
	}

	var applied []string
	for _, a := range required {
		if table.HasColumn(a) {
			applied = append(applied, a)
		}
	}

	byPark := make(map[string]models.ParkLocation, len(locations))
	for _, loc := range locations {
		if _, dup := byPark[loc.ParkName]; !dup {
			byPark[loc.ParkName] = loc
		}
	}

	res := &Result{Amenities: append([]string(nil), required...)}
	for _, row := range table.Rows {
		if !hasAll(row, applied) {
			continue
		}
		loc, ok := byPark[row.Park]
		if !ok {
			continue
		}
		res.Parks = append(res.Parks, row.Park)
		res.Points = append(res.Points, models.MapPoint{ParkName: row.Park, Lat: loc.Latitude, Lon: loc.Longitude})
	}
	return res, nil
}

func hasAll(row models.ParkAmenities, amenities []string) bool {
	for _, a := range amenities {
		if !row.Has(a) {
			return false
		}
	}
	return true
}

// ParkAmenities lists the amenities a park has, in column order.
func (m *DefaultMatcher) ParkAmenities(ctx context.Context, park string) ([]string, error) {
	table, err := m.Repo.Amenities(ctx)
	if err != nil {
		return nil, fmt.Errorf("load amenities: %w", err)
	}
	for _, row := range table.Rows {
		if !strings.EqualFold(row.Park, strings.TrimSpace(park)) {
			continue
		}
		var has []string
		for _, col := range table.Columns {
			if row.Has(col) {
				has = append(has, col)
			}
		}
		return has, nil
	}
	return nil, ErrUnknownPark
}
