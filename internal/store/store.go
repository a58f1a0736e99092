package store

import (
	"errors"

	"my_taxi/internal/models"
)

var (
	// ErrNotFound is returned by single-record lookups with no match.
	ErrNotFound = errors.New("record not found")
	// ErrDuplicateEmail is returned when a create or update would reuse
	// an email that another user already owns.
	ErrDuplicateEmail = errors.New("email already in use")
)

// UserPatch is a partial user update. Nil fields are left untouched.
// Password, when set, must already be hashed by the caller.
type UserPatch struct {
	Name     *string
	Email    *string
	Phone    *string
	Password *string
}

// PassengerStats is one row of the per-user ride aggregation.
type PassengerStats struct {
	Name        string  `json:"name"`
	TotalRides  int     `json:"total_rides"`
	TotalFare   float64 `json:"total_fare"`
	AvgDistance float64 `json:"avg_distance"`
}

// Store is the storage-access capability handed to the controllers.
// Update and delete operations report the number of affected rows;
// zero means no matching record existed.
type Store interface {
	CreateUser(u *models.User) error
	UserByEmail(email string) (*models.User, error)
	UserByID(id uint) (*models.User, error)
	UsersByRole(role string) ([]models.User, error)
	UpdateUser(id uint, patch UserPatch) (int64, error)
	DeleteUser(id uint) (int64, error)

	CreateRide(r *models.Ride) error
	Rides() ([]models.Ride, error)
	UpdateRideStatus(id uint, status string, driverID uint) (int64, error)
	DeleteRide(id uint) (int64, error)

	// PassengerRideStats joins users to their rides and aggregates per
	// user. Users with no rides are omitted (inner-join semantics);
	// avg_distance is rounded to 2 decimals, half away from zero.
	PassengerRideStats() ([]PassengerStats, error)
}
