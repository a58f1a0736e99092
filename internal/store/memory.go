package store

import (
	"math"
	"sort"
	"sync"

	"my_taxi/internal/models"
)

// MemStore is an in-memory Store used by tests. It mirrors the
// GormStore contract, including sentinel errors and rounding.
type MemStore struct {
	mu         sync.Mutex
	users      map[uint]*models.User
	rides      map[uint]*models.Ride
	nextUserID uint
	nextRideID uint
	ops        int
}

func NewMemStore() *MemStore {
	return &MemStore{
		users:      make(map[uint]*models.User),
		rides:      make(map[uint]*models.Ride),
		nextUserID: 1,
		nextRideID: 1,
	}
}

// Ops returns the number of store calls made so far. Tests use it to
// prove malformed ids are rejected before any lookup happens.
func (s *MemStore) Ops() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.ops
}

func (s *MemStore) CreateUser(u *models.User) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.ops++

	for _, existing := range s.users {
		if existing.Email == u.Email {
			return ErrDuplicateEmail
		}
	}
	u.ID = s.nextUserID
	s.nextUserID++
	cp := *u
	s.users[u.ID] = &cp
	return nil
}

func (s *MemStore) UserByEmail(email string) (*models.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.ops++

	for _, u := range s.users {
		if u.Email == email {
			cp := *u
			return &cp, nil
		}
	}
	return nil, ErrNotFound
}

func (s *MemStore) UserByID(id uint) (*models.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.ops++

	u, ok := s.users[id]
	if !ok {
		return nil, ErrNotFound
	}
	cp := *u
	return &cp, nil
}

func (s *MemStore) UsersByRole(role string) ([]models.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.ops++

	var out []models.User
	for _, u := range s.users {
		if u.Role == role {
			out = append(out, *u)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (s *MemStore) UpdateUser(id uint, patch UserPatch) (int64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.ops++

	u, ok := s.users[id]
	if !ok {
		return 0, nil
	}
	if patch.Email != nil {
		for otherID, other := range s.users {
			if otherID != id && other.Email == *patch.Email {
				return 0, ErrDuplicateEmail
			}
		}
		u.Email = *patch.Email
	}
	if patch.Name != nil {
		u.Name = *patch.Name
	}
	if patch.Phone != nil {
		u.Phone = *patch.Phone
	}
	if patch.Password != nil {
		u.Password = *patch.Password
	}
	return 1, nil
}

func (s *MemStore) DeleteUser(id uint) (int64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.ops++

	if _, ok := s.users[id]; !ok {
		return 0, nil
	}
	delete(s.users, id)
	return 1, nil
}

func (s *MemStore) CreateRide(r *models.Ride) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.ops++

	r.ID = s.nextRideID
	s.nextRideID++
	cp := *r
	s.rides[r.ID] = &cp
	return nil
}

func (s *MemStore) Rides() ([]models.Ride, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.ops++

	var out []models.Ride
	for _, r := range s.rides {
		out = append(out, *r)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (s *MemStore) UpdateRideStatus(id uint, status string, driverID uint) (int64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.ops++

	r, ok := s.rides[id]
	if !ok {
		return 0, nil
	}
	r.Status = status
	r.DriverID = driverID
	return 1, nil
}

func (s *MemStore) DeleteRide(id uint) (int64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.ops++

	if _, ok := s.rides[id]; !ok {
		return 0, nil
	}
	delete(s.rides, id)
	return 1, nil
}

func (s *MemStore) PassengerRideStats() ([]PassengerStats, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.ops++

	type acc struct {
		count    int
		fare     float64
		distance float64
	}
	byUser := make(map[uint]*acc)
	for _, r := range s.rides {
		a, ok := byUser[r.PassengerID]
		if !ok {
			a = &acc{}
			byUser[r.PassengerID] = a
		}
		a.count++
		a.fare += r.Fare
		a.distance += r.Distance
	}

	var stats []PassengerStats
	for id, u := range s.users {
		a, ok := byUser[id]
		if !ok {
			continue // no rides, inner-join semantics
		}
		avg := a.distance / float64(a.count)
		stats = append(stats, PassengerStats{
			Name:        u.Name,
			TotalRides:  a.count,
			TotalFare:   a.fare,
			AvgDistance: math.Round(avg*100) / 100,
		})
	}
	return stats, nil
}
