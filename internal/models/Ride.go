package models

import "gorm.io/gorm"

// Ride statuses. The status column only ever holds one of these.
const (
	RideRequested = "requested"
	RideAccepted  = "accepted"
	RideCompleted = "completed"
	RideCancelled = "cancelled"
)

// ValidRideStatus reports whether s is one of the known ride statuses.
func ValidRideStatus(s string) bool {
	switch s {
	case RideRequested, RideAccepted, RideCompleted, RideCancelled:
		return true
	}
	return false
}

type Ride struct {
	gorm.Model
	Pickup      string  `json:"pickup"`
	Destination string  `json:"destination"`
	PassengerID uint    `json:"passenger_id" gorm:"index"` // set at creation, never changes
	DriverID    uint    `json:"driver_id"`                 // zero until a driver accepts
	Status      string  `json:"status"`
	Fare        float64 `json:"fare"`
	Distance    float64 `json:"distance"` // km, straight-line when derived from coordinates
}
