package services

import (
	"errors"
	"fmt"
	"time"

	"github.com/Vinh124567/backend-hotel-booking-sub000/models"
	"gorm.io/gorm"
)

// AvailabilityService answers "is there a free unit of this room type for
// these dates" by counting overlapping active bookings against the room
// type's pool size. Reads only, no locks taken: two concurrent callers can
// both see a free slot. Confirmation re-checks to narrow that window.
type AvailabilityService struct {
	db *gorm.DB
}

func NewAvailabilityService(db *gorm.DB) *AvailabilityService {
	return &AvailabilityService{db: db}
}

// IsAvailable reports whether the room type has a free unit for the
// half-open interval [checkIn, checkOut).
func (s *AvailabilityService) IsAvailable(roomTypeID uint, checkIn, checkOut time.Time) (bool, error) {
	return s.check(roomTypeID, checkIn, checkOut, 0)
}

// IsAvailableExcluding runs the same count but skips the booking's own row,
// so a pending booking does not collide with itself at confirmation time.
func (s *AvailabilityService) IsAvailableExcluding(b *models.Booking) (bool, error) {
	return s.check(b.RoomTypeID, b.CheckIn, b.CheckOut, b.ID)
}

func (s *AvailabilityService) check(roomTypeID uint, checkIn, checkOut time.Time, excludeID uint) (bool, error) {
	var roomType models.RoomType
	if err := s.db.First(&roomType, roomTypeID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return false, fmt.Errorf("room type %d: %w", roomTypeID, ErrNotFound)
		}
		return false, err
	}

	count, err := s.CountOverlapping(roomTypeID, checkIn, checkOut, excludeID)
	if err != nil {
		return false, err
	}

	return count < int64(roomType.PoolSize), nil
}

// CountOverlapping counts bookings of the room type that still hold capacity
// and intersect [checkIn, checkOut). Pass excludeID 0 to count everything.
func (s *AvailabilityService) CountOverlapping(roomTypeID uint, checkIn, checkOut time.Time, excludeID uint) (int64, error) {
	query := s.db.Model(&models.Booking{}).
		Where("room_type_id = ?", roomTypeID).
		Where("status NOT IN ?", models.InactiveBookingStatuses).
		Where("check_in < ? AND check_out > ?", checkOut, checkIn)

	if excludeID != 0 {
		query = query.Where("id <> ?", excludeID)
	}

	var count int64
	if err := query.Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}
