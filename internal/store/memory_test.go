package store

import (
	"errors"
	"math"
	"testing"

	"my_taxi/internal/models"
)

func TestCreateUserDuplicateEmail(t *testing.T) {
	s := NewMemStore()

	if err := s.CreateUser(&models.User{Email: "a@x.com", Role: models.RolePassenger}); err != nil {
		t.Fatalf("first create: %v", err)
	}
	err := s.CreateUser(&models.User{Email: "a@x.com", Role: models.RoleDriver})
	if !errors.Is(err, ErrDuplicateEmail) {
		t.Errorf("second create: err = %v, want ErrDuplicateEmail", err)
	}
}

func TestUpdateUserEmailConflict(t *testing.T) {
	s := NewMemStore()
	a := models.User{Email: "a@x.com"}
	b := models.User{Email: "b@x.com"}
	s.CreateUser(&a)
	s.CreateUser(&b)

	taken := "a@x.com"
	if _, err := s.UpdateUser(b.ID, UserPatch{Email: &taken}); !errors.Is(err, ErrDuplicateEmail) {
		t.Errorf("err = %v, want ErrDuplicateEmail", err)
	}
}

func TestUpdateRideStatusMissing(t *testing.T) {
	s := NewMemStore()

	n, err := s.UpdateRideStatus(99, models.RideAccepted, 1)
	if err != nil {
		t.Fatalf("UpdateRideStatus: %v", err)
	}
	if n != 0 {
		t.Errorf("affected = %d, want 0", n)
	}
}

func TestUpdateRideStatusAssignsDriver(t *testing.T) {
	s := NewMemStore()
	ride := models.Ride{PassengerID: 1, Status: models.RideRequested}
	s.CreateRide(&ride)

	n, err := s.UpdateRideStatus(ride.ID, models.RideAccepted, 5)
	if err != nil || n != 1 {
		t.Fatalf("UpdateRideStatus = (%d, %v), want (1, nil)", n, err)
	}

	rides, _ := s.Rides()
	if rides[0].Status != models.RideAccepted || rides[0].DriverID != 5 {
		t.Errorf("ride = %+v, want accepted with driver 5", rides[0])
	}
}

func TestPassengerRideStats(t *testing.T) {
	s := NewMemStore()
	alice := models.User{Name: "Alice", Email: "alice@x.com", Role: models.RolePassenger}
	bob := models.User{Name: "Bob", Email: "bob@x.com", Role: models.RolePassenger}
	s.CreateUser(&alice)
	s.CreateUser(&bob)

	s.CreateRide(&models.Ride{PassengerID: alice.ID, Fare: 10, Distance: 10.5})
	s.CreateRide(&models.Ride{PassengerID: alice.ID, Fare: 20, Distance: 10.2})

	stats, err := s.PassengerRideStats()
	if err != nil {
		t.Fatalf("PassengerRideStats: %v", err)
	}

	// Bob has no rides and must not appear.
	if len(stats) != 1 {
		t.Fatalf("len(stats) = %d, want 1", len(stats))
	}
	got := stats[0]
	if got.Name != "Alice" {
		t.Errorf("Name = %q, want Alice", got.Name)
	}
	if got.TotalRides != 2 {
		t.Errorf("TotalRides = %d, want 2", got.TotalRides)
	}
	if math.Abs(got.TotalFare-30) > 1e-9 {
		t.Errorf("TotalFare = %v, want 30", got.TotalFare)
	}
	if math.Abs(got.AvgDistance-10.35) > 1e-9 {
		t.Errorf("AvgDistance = %v, want 10.35", got.AvgDistance)
	}
}

func TestAvgDistanceRoundsHalfAwayFromZero(t *testing.T) {
	s := NewMemStore()
	u := models.User{Name: "A", Email: "a@x.com"}
	s.CreateUser(&u)
	// mean = 10.125 exactly -> rounds up to 10.13, not down to 10.12
	s.CreateRide(&models.Ride{PassengerID: u.ID, Distance: 10.25})
	s.CreateRide(&models.Ride{PassengerID: u.ID, Distance: 10.00})

	stats, err := s.PassengerRideStats()
	if err != nil {
		t.Fatalf("PassengerRideStats: %v", err)
	}
	if math.Abs(stats[0].AvgDistance-10.13) > 1e-9 {
		t.Errorf("AvgDistance = %v, want 10.13", stats[0].AvgDistance)
	}
}

func TestDeleteCounts(t *testing.T) {
	s := NewMemStore()
	u := models.User{Email: "a@x.com"}
	s.CreateUser(&u)

	if n, _ := s.DeleteUser(u.ID); n != 1 {
		t.Errorf("first delete = %d, want 1", n)
	}
	if n, _ := s.DeleteUser(u.ID); n != 0 {
		t.Errorf("second delete = %d, want 0", n)
	}
	if n, _ := s.DeleteRide(12); n != 0 {
		t.Errorf("missing ride delete = %d, want 0", n)
	}
}
