package models

import "time"

// Location represents a geographical location with latitude and longitude
type Location struct {
	Latitude  float64   `json:"latitude" db:"latitude"`
	Longitude float64   `json:"longitude" db:"longitude"`
	Address   string    `json:"address,omitempty" db:"address"`
	Timestamp time.Time `json:"timestamp" db:"timestamp"`
}

// IsValid checks that the coordinates are within range
func (l Location) IsValid() bool {
	return l.Latitude >= -90 && l.Latitude <= 90 &&
		l.Longitude >= -180 && l.Longitude <= 180
}

// NearbyDriver is a driver returned from a geo radius search, ordered by
// ascending distance from the search point
type NearbyDriver struct {
	DriverID   string  `json:"driver_id"`
	DistanceKm float64 `json:"distance_km"`
	Latitude   float64 `json:"latitude"`
	Longitude  float64 `json:"longitude"`
}
