package amenityRepo

import "cityconnect/models"

// DefaultLocations are the coordinates of the San Jose parks served by the app.
var DefaultLocations = []models.ParkLocation{
	{ParkName: "River Glen Park", Latitude: 37.3639, Longitude: -121.9010},
	{ParkName: "Roosevelt Park", Latitude: 37.3500, Longitude: -121.8934},
	{ParkName: "Watson Park", Latitude: 37.3668, Longitude: -121.9245},
	{ParkName: "Almaden Lake Park", Latitude: 37.2143, Longitude: -121.8233},
	{ParkName: "Happy Hollow Park", Latitude: 37.3040, Longitude: -121.8605},
	{ParkName: "Emma Prusch Farm Park", Latitude: 37.3252, Longitude: -121.8206},
	{ParkName: "Overfelt Gardens", Latitude: 37.3640, Longitude: -121.8773},
	{ParkName: "Municipal Rose Garden", Latitude: 37.2735, Longitude: -121.8866},
	{ParkName: "Willow Glen Park", Latitude: 37.3058, Longitude: -121.8847},
	{ParkName: "Cataldi Park", Latitude: 37.2746, Longitude: -121.9331},
}
