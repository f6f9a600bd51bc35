package services

import (
	"errors"
	"fmt"
	"time"

	"github.com/Vinh124567/backend-hotel-booking-sub000/metrics"
	"github.com/Vinh124567/backend-hotel-booking-sub000/models"
	"gorm.io/gorm"
)

// BookingService implements booking creation and the lifecycle transitions
// pending -> confirmed -> checked_in -> checked_out, with cancelled,
// no_show and expired as alternate terminals. Confirmation itself belongs
// to the Reconciler; everything else is here.
type BookingService struct {
	db       *gorm.DB
	checker  *AvailabilityService
	notifier *NotificationService
}

func NewBookingService(db *gorm.DB, checker *AvailabilityService, notifier *NotificationService) *BookingService {
	return &BookingService{db: db, checker: checker, notifier: notifier}
}

type CreateBookingInput struct {
	RoomTypeID      uint
	CheckIn         time.Time
	CheckOut        time.Time
	Guests          int
	TotalPrice      float64
	SpecialRequests string
}

// dateOnly truncates to midnight UTC; bookings carry dates, not instants.
func dateOnly(t time.Time) time.Time {
	y, m, d := t.UTC().Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// Create validates and persists a new pending booking. Validation fails
// before anything is written; capacity is only read-checked here, the
// binding check happens again at confirmation time.
func (s *BookingService) Create(userID uint, in CreateBookingInput) (*models.Booking, error) {
	checkIn := dateOnly(in.CheckIn)
	checkOut := dateOnly(in.CheckOut)
	today := dateOnly(time.Now())

	if !checkIn.Before(checkOut) {
		return nil, fmt.Errorf("%w: check-in must be before check-out", ErrInvalidInput)
	}
	if checkIn.Before(today) {
		return nil, fmt.Errorf("%w: check-in must not be in the past", ErrInvalidInput)
	}
	if in.Guests <= 0 {
		return nil, fmt.Errorf("%w: guest count must be positive", ErrInvalidInput)
	}
	if in.TotalPrice <= 0 {
		return nil, fmt.Errorf("%w: total price must be positive", ErrInvalidInput)
	}

	available, err := s.checker.IsAvailable(in.RoomTypeID, checkIn, checkOut)
	if err != nil {
		return nil, err
	}
	if !available {
		return nil, ErrCapacity
	}

	booking := models.Booking{
		UserID:          userID,
		RoomTypeID:      in.RoomTypeID,
		CheckIn:         checkIn,
		CheckOut:        checkOut,
		Guests:          in.Guests,
		TotalPrice:      in.TotalPrice,
		SpecialRequests: in.SpecialRequests,
		Status:          models.BookingPending,
		CreatedAt:       time.Now(),
	}

	if err := s.db.Create(&booking).Error; err != nil {
		return nil, err
	}

	metrics.BookingsCreated.Inc()
	return &booking, nil
}

func (s *BookingService) get(bookingID uint) (*models.Booking, error) {
	var booking models.Booking
	if err := s.db.First(&booking, bookingID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("booking %d: %w", bookingID, ErrNotFound)
		}
		return nil, err
	}
	return &booking, nil
}

// Cancel lets the owning user cancel a pending or confirmed booking while
// at least one whole day remains before check-in. The day count is a date
// subtraction, not an hour-exact cutoff.
func (s *BookingService) Cancel(userID, bookingID uint) (*models.Booking, error) {
	booking, err := s.get(bookingID)
	if err != nil {
		return nil, err
	}
	if booking.UserID != userID {
		return nil, fmt.Errorf("booking %d: %w", bookingID, ErrForbidden)
	}

	switch booking.Status {
	case models.BookingPending, models.BookingConfirmed:
	default:
		return nil, &StateError{Current: booking.Status, Op: "cancel"}
	}

	daysUntil := int(booking.CheckIn.Sub(dateOnly(time.Now())).Hours() / 24)
	if daysUntil < 1 {
		return nil, ErrCancelWindow
	}

	booking.Status = models.BookingCancelled
	if err := s.db.Save(booking).Error; err != nil {
		return nil, err
	}

	s.notifier.BookingCancelled(booking)
	return booking, nil
}

// CheckIn moves a pending or confirmed booking to checked_in. Permitted
// from the check-in date up to one day past it. An optional physical room
// of the booked type may be assigned.
func (s *BookingService) CheckIn(bookingID uint, roomID *uint) (*models.Booking, error) {
	booking, err := s.get(bookingID)
	if err != nil {
		return nil, err
	}

	switch booking.Status {
	case models.BookingPending, models.BookingConfirmed:
	default:
		return nil, &StateError{Current: booking.Status, Op: "check in"}
	}

	today := dateOnly(time.Now())
	if today.Before(booking.CheckIn) || today.After(booking.CheckIn.AddDate(0, 0, 1)) {
		return nil, fmt.Errorf("%w: check-in is only allowed on the check-in date or the day after", ErrInvalidInput)
	}

	if roomID != nil {
		var room models.Room
		if err := s.db.First(&room, *roomID).Error; err != nil {
			return nil, fmt.Errorf("room %d: %w", *roomID, ErrNotFound)
		}
		if room.RoomTypeID != booking.RoomTypeID {
			return nil, fmt.Errorf("%w: room %d is not of the booked type", ErrInvalidInput, *roomID)
		}
		booking.RoomID = roomID
	}

	booking.Status = models.BookingCheckedIn
	if err := s.db.Save(booking).Error; err != nil {
		return nil, err
	}

	s.notifier.GuestCheckedIn(booking)
	return booking, nil
}

// CheckOut closes a checked-in booking. Permitted from the check-in date
// through the check-out date inclusive.
func (s *BookingService) CheckOut(bookingID uint) (*models.Booking, error) {
	booking, err := s.get(bookingID)
	if err != nil {
		return nil, err
	}

	if booking.Status != models.BookingCheckedIn {
		return nil, &StateError{Current: booking.Status, Op: "check out"}
	}

	today := dateOnly(time.Now())
	if today.Before(booking.CheckIn) || today.After(booking.CheckOut) {
		return nil, fmt.Errorf("%w: check-out is only allowed between the check-in and check-out dates", ErrInvalidInput)
	}

	booking.Status = models.BookingCheckedOut
	if err := s.db.Save(booking).Error; err != nil {
		return nil, err
	}
	return booking, nil
}

// MarkNoShow flags a confirmed booking whose guest never arrived.
func (s *BookingService) MarkNoShow(bookingID uint) (*models.Booking, error) {
	booking, err := s.get(bookingID)
	if err != nil {
		return nil, err
	}

	if booking.Status != models.BookingConfirmed {
		return nil, &StateError{Current: booking.Status, Op: "mark no-show on"}
	}

	booking.Status = models.BookingNoShow
	if err := s.db.Save(booking).Error; err != nil {
		return nil, err
	}

	s.notifier.GuestNoShow(booking)
	return booking, nil
}
