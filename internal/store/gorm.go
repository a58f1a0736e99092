package store

import (
	"errors"

	"github.com/lib/pq"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"my_taxi/internal/models"
)

// GormStore is the Postgres-backed Store implementation.
type GormStore struct {
	db *gorm.DB
}

// Open connects to Postgres and migrates the schema.
func Open(dsn string) (*GormStore, error) {
	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{TranslateError: true})
	if err != nil {
		return nil, err
	}
	if err := db.AutoMigrate(&models.User{}, &models.Ride{}); err != nil {
		return nil, err
	}
	return &GormStore{db: db}, nil
}

// Close releases the underlying connection pool.
func (s *GormStore) Close() error {
	sqlDB, err := s.db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}

// isDuplicate detects a unique-constraint violation.
func isDuplicate(err error) bool {
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return true
	}
	var pgErr *pq.Error
	if errors.As(err, &pgErr) && pgErr.Code == "23505" {
		return true
	}
	return false
}

func (s *GormStore) CreateUser(u *models.User) error {
	if err := s.db.Create(u).Error; err != nil {
		if isDuplicate(err) {
			return ErrDuplicateEmail
		}
		return err
	}
	return nil
}

func (s *GormStore) UserByEmail(email string) (*models.User, error) {
	var user models.User
	if err := s.db.Where("email = ?", email).First(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &user, nil
}

func (s *GormStore) UserByID(id uint) (*models.User, error) {
	var user models.User
	if err := s.db.First(&user, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &user, nil
}

func (s *GormStore) UsersByRole(role string) ([]models.User, error) {
	var users []models.User
	if err := s.db.Where("role = ?", role).Find(&users).Error; err != nil {
		return nil, err
	}
	return users, nil
}

func (s *GormStore) UpdateUser(id uint, patch UserPatch) (int64, error) {
	updates := map[string]interface{}{}
	if patch.Name != nil {
		updates["name"] = *patch.Name
	}
	if patch.Email != nil {
		updates["email"] = *patch.Email
	}
	if patch.Phone != nil {
		updates["phone"] = *patch.Phone
	}
	if patch.Password != nil {
		updates["password"] = *patch.Password
	}
	if len(updates) == 0 {
		return 0, nil
	}

	res := s.db.Model(&models.User{}).Where("id = ?", id).Updates(updates)
	if res.Error != nil {
		if isDuplicate(res.Error) {
			return 0, ErrDuplicateEmail
		}
		return 0, res.Error
	}
	return res.RowsAffected, nil
}

func (s *GormStore) DeleteUser(id uint) (int64, error) {
	res := s.db.Delete(&models.User{}, id)
	return res.RowsAffected, res.Error
}

func (s *GormStore) CreateRide(r *models.Ride) error {
	return s.db.Create(r).Error
}

func (s *GormStore) Rides() ([]models.Ride, error) {
	var rides []models.Ride
	if err := s.db.Find(&rides).Error; err != nil {
		return nil, err
	}
	return rides, nil
}

// UpdateRideStatus sets status and driver in a single update; the store's
// row-level atomicity is the only transactional guarantee relied on.
func (s *GormStore) UpdateRideStatus(id uint, status string, driverID uint) (int64, error) {
	res := s.db.Model(&models.Ride{}).Where("id = ?", id).
		Updates(map[string]interface{}{"status": status, "driver_id": driverID})
	return res.RowsAffected, res.Error
}

func (s *GormStore) DeleteRide(id uint) (int64, error) {
	res := s.db.Delete(&models.Ride{}, id)
	return res.RowsAffected, res.Error
}

func (s *GormStore) PassengerRideStats() ([]PassengerStats, error) {
	var stats []PassengerStats
	// Inner join: users without rides drop out. Postgres ROUND on
	// numeric rounds half away from zero, matching the memory store.
	err := s.db.Raw(`
		SELECT u.name AS name,
		       COUNT(r.id) AS total_rides,
		       COALESCE(SUM(r.fare), 0) AS total_fare,
		       ROUND(AVG(r.distance)::numeric, 2) AS avg_distance
		FROM users u
		JOIN rides r ON r.passenger_id = u.id AND r.deleted_at IS NULL
		WHERE u.deleted_at IS NULL
		GROUP BY u.id, u.name`).Scan(&stats).Error
	if err != nil {
		return nil, err
	}
	return stats, nil
}
