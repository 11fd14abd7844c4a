package models

import (
	"fmt"
	"strings"
	"time"
)

// DateLayout is the canonical YYYY-MM-DD form used for schedule dates.
const DateLayout = "2006-01-02"

type SlotStatus string

const (
	SlotAvailable SlotStatus = "available"
	SlotBooked    SlotStatus = "booked"
)

// ScheduleEntry is one bookable (park, date, time slot) row.
type ScheduleEntry struct {
	ParkName string     `json:"parkName" bson:"park_name"`
	Date     string     `json:"date" bson:"date"`
	TimeSlot string     `json:"timeSlot" bson:"time_slot"`
	Status   SlotStatus `json:"status" bson:"status"`
}

// ParsedDate returns the entry date, or false when it cannot be read.
func (e ScheduleEntry) ParsedDate() (time.Time, bool) {
	t, err := ParseScheduleDate(e.Date)
	return t, err == nil
}

// Matches reports whether the entry is for park (case-insensitive), day and slot.
func (e ScheduleEntry) Matches(park string, day time.Time, slot string) bool {
	if !strings.EqualFold(strings.TrimSpace(e.ParkName), strings.TrimSpace(park)) {
		return false
	}
	if strings.TrimSpace(e.TimeSlot) != strings.TrimSpace(slot) {
		return false
	}
	d, ok := e.ParsedDate()
	return ok && SameDay(d, day)
}

var scheduleDateLayouts = []string{
	DateLayout,
	"2006-01-02 15:04:05",
	"2006-01-02T15:04:05",
	"2006/01/02",
	"1/2/2006",
	"01/02/2006",
}

// ParseScheduleDate reads the date forms found in schedule files.
func ParseScheduleDate(s string) (time.Time, error) {
	s = strings.TrimSpace(s)
	for _, layout := range scheduleDateLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t, nil
		}
	}
	return time.Time{}, fmt.Errorf("unrecognized date %q", s)
}

// ParseUserDate reads a date typed by a user; only YYYY-MM-DD is accepted.
func ParseUserDate(s string) (time.Time, error) {
	t, err := time.Parse(DateLayout, strings.TrimSpace(s))
	if err != nil {
		return time.Time{}, fmt.Errorf("date %q is not in YYYY-MM-DD format", s)
	}
	return t, nil
}

func SameDay(a, b time.Time) bool {
	ay, am, ad := a.Date()
	by, bm, bd := b.Date()
	return ay == by && am == bm && ad == bd
}

// ParkAmenities is one row of the amenity table.
type ParkAmenities struct {
	Park  string          `json:"park"`
	Flags map[string]bool `json:"flags"`
}

// Has reports whether the park has the amenity set.
func (p ParkAmenities) Has(amenity string) bool {
	return p.Flags[amenity]
}

// AmenityTable is the amenity table together with its flag columns, in file order.
type AmenityTable struct {
	Columns []string        `json:"columns"`
	Rows    []ParkAmenities `json:"rows"`
}

// HasColumn reports whether the table carries the amenity at all.
func (t AmenityTable) HasColumn(amenity string) bool {
	for _, c := range t.Columns {
		if c == amenity {
			return true
		}
	}
	return false
}

// ParkLocation holds a park's coordinates.
type ParkLocation struct {
	ParkName  string  `json:"parkName"`
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
}

// MapPoint is a map-ready row.
type MapPoint struct {
	ParkName string  `json:"parkName" bson:"park_name"`
	Lat      float64 `json:"lat" bson:"lat"`
	Lon      float64 `json:"lon" bson:"lon"`
}

// ParkAvailability answers an availability query: dates when no date was given, slots otherwise.
type ParkAvailability struct {
	Park  string   `json:"park"`
	Date  string   `json:"date,omitempty"`
	Dates []string `json:"dates,omitempty"`
	Slots []string `json:"slots,omitempty"`
}

// ParkDescription is the assistant-written blurb for one park.
type ParkDescription struct {
	Park        string   `json:"park"`
	Amenities   []string `json:"amenities"`
	Description string   `json:"description"`
}
