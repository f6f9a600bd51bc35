package services

import (
	"errors"
	"testing"

	"github.com/Vinh124567/backend-hotel-booking-sub000/models"
	"gorm.io/gorm"
)

func newBookingService(db *gorm.DB) *BookingService {
	checker := NewAvailabilityService(db)
	notifier := NewNotificationService(db)
	return NewBookingService(db, checker, notifier)
}

func countBookings(t *testing.T, db *gorm.DB) int64 {
	t.Helper()
	var n int64
	if err := db.Model(&models.Booking{}).Count(&n).Error; err != nil {
		t.Fatalf("counting bookings: %v", err)
	}
	return n
}

func TestCreateRejectsInvalidInput(t *testing.T) {
	db := setupTestDB(t)
	svc := newBookingService(db)
	rt := seedRoomType(t, db, 5)
	user := seedUser(t, db)

	base := CreateBookingInput{
		RoomTypeID: rt.ID,
		CheckIn:    daysFromNow(7),
		CheckOut:   daysFromNow(9),
		Guests:     2,
		TotalPrice: 1000000,
	}

	cases := []struct {
		name   string
		mutate func(in *CreateBookingInput)
	}{
		{"equal dates", func(in *CreateBookingInput) { in.CheckOut = in.CheckIn }},
		{"inverted dates", func(in *CreateBookingInput) { in.CheckIn, in.CheckOut = in.CheckOut, in.CheckIn }},
		{"past check-in", func(in *CreateBookingInput) {
			in.CheckIn = daysFromNow(-1)
			in.CheckOut = daysFromNow(1)
		}},
		{"zero guests", func(in *CreateBookingInput) { in.Guests = 0 }},
		{"zero price", func(in *CreateBookingInput) { in.TotalPrice = 0 }},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			in := base
			tc.mutate(&in)

			_, err := svc.Create(user.ID, in)
			if !errors.Is(err, ErrInvalidInput) {
				t.Fatalf("expected ErrInvalidInput, got %v", err)
			}
		})
	}

	if n := countBookings(t, db); n != 0 {
		t.Fatalf("validation failures must not persist anything, found %d bookings", n)
	}
}

func TestCreatePendingBooking(t *testing.T) {
	db := setupTestDB(t)
	svc := newBookingService(db)
	rt := seedRoomType(t, db, 5)
	user := seedUser(t, db)

	booking, err := svc.Create(user.ID, CreateBookingInput{
		RoomTypeID: rt.ID,
		CheckIn:    daysFromNow(7),
		CheckOut:   daysFromNow(9),
		Guests:     2,
		TotalPrice: 1000000,
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if booking.Status != models.BookingPending {
		t.Fatalf("new booking must be pending, got %s", booking.Status)
	}
	if booking.CreatedAt.IsZero() {
		t.Fatal("booking date must be set")
	}
}

func TestCreateRefusedAtCapacity(t *testing.T) {
	db := setupTestDB(t)
	svc := newBookingService(db)
	rt := seedRoomType(t, db, 1)
	user := seedUser(t, db)

	seedBooking(t, db, user.ID, rt.ID, daysFromNow(7), daysFromNow(9), models.BookingConfirmed)

	_, err := svc.Create(user.ID, CreateBookingInput{
		RoomTypeID: rt.ID,
		CheckIn:    daysFromNow(7),
		CheckOut:   daysFromNow(9),
		Guests:     2,
		TotalPrice: 1000000,
	})
	if !errors.Is(err, ErrCapacity) {
		t.Fatalf("expected ErrCapacity, got %v", err)
	}
}

func TestCancelWindowBoundary(t *testing.T) {
	db := setupTestDB(t)
	svc := newBookingService(db)
	rt := seedRoomType(t, db, 5)
	user := seedUser(t, db)

	// Exactly one day before check-in: allowed.
	b1 := seedBooking(t, db, user.ID, rt.ID, daysFromNow(1), daysFromNow(3), models.BookingConfirmed)
	cancelled, err := svc.Cancel(user.ID, b1.ID)
	if err != nil {
		t.Fatalf("cancel at one-day boundary must be allowed: %v", err)
	}
	if cancelled.Status != models.BookingCancelled {
		t.Fatalf("expected cancelled, got %s", cancelled.Status)
	}

	// Check-in today: refused.
	b2 := seedBooking(t, db, user.ID, rt.ID, daysFromNow(0), daysFromNow(2), models.BookingConfirmed)
	if _, err := svc.Cancel(user.ID, b2.ID); !errors.Is(err, ErrCancelWindow) {
		t.Fatalf("expected ErrCancelWindow, got %v", err)
	}
}

func TestCancelOwnership(t *testing.T) {
	db := setupTestDB(t)
	svc := newBookingService(db)
	rt := seedRoomType(t, db, 5)
	owner := seedUser(t, db)
	stranger := seedUser(t, db)

	b := seedBooking(t, db, owner.ID, rt.ID, daysFromNow(7), daysFromNow(9), models.BookingPending)

	if _, err := svc.Cancel(stranger.ID, b.ID); !errors.Is(err, ErrForbidden) {
		t.Fatalf("expected ErrForbidden, got %v", err)
	}
}

func TestCancelTerminalStates(t *testing.T) {
	db := setupTestDB(t)
	svc := newBookingService(db)
	rt := seedRoomType(t, db, 5)
	user := seedUser(t, db)

	for _, status := range []models.BookingStatus{
		models.BookingCancelled, models.BookingCheckedIn, models.BookingCheckedOut,
	} {
		b := seedBooking(t, db, user.ID, rt.ID, daysFromNow(7), daysFromNow(9), status)

		_, err := svc.Cancel(user.ID, b.ID)
		var stateErr *StateError
		if !errors.As(err, &stateErr) {
			t.Fatalf("status %s: expected StateError, got %v", status, err)
		}
		if stateErr.Current != status {
			t.Fatalf("state error must name the current status, got %s", stateErr.Current)
		}
	}
}

func TestCheckInAndOutFlow(t *testing.T) {
	db := setupTestDB(t)
	svc := newBookingService(db)
	rt := seedRoomType(t, db, 5)
	user := seedUser(t, db)

	room := models.Room{RoomTypeID: rt.ID, RoomNumber: "101", Floor: 1}
	if err := db.Create(&room).Error; err != nil {
		t.Fatalf("seeding room: %v", err)
	}

	// Check-in date is today, check-out in two days.
	b := seedBooking(t, db, user.ID, rt.ID, daysFromNow(0), daysFromNow(2), models.BookingConfirmed)

	checkedIn, err := svc.CheckIn(b.ID, &room.ID)
	if err != nil {
		t.Fatalf("check-in on the check-in date must succeed: %v", err)
	}
	if checkedIn.Status != models.BookingCheckedIn {
		t.Fatalf("expected checked_in, got %s", checkedIn.Status)
	}
	if checkedIn.RoomID == nil || *checkedIn.RoomID != room.ID {
		t.Fatal("assigned room must be recorded")
	}

	checkedOut, err := svc.CheckOut(b.ID)
	if err != nil {
		t.Fatalf("check-out within the stay must succeed: %v", err)
	}
	if checkedOut.Status != models.BookingCheckedOut {
		t.Fatalf("expected checked_out, got %s", checkedOut.Status)
	}
}

func TestCheckInTooEarly(t *testing.T) {
	db := setupTestDB(t)
	svc := newBookingService(db)
	rt := seedRoomType(t, db, 5)
	user := seedUser(t, db)

	b := seedBooking(t, db, user.ID, rt.ID, daysFromNow(3), daysFromNow(5), models.BookingConfirmed)

	if _, err := svc.CheckIn(b.ID, nil); !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput for early check-in, got %v", err)
	}
}

func TestCheckOutRequiresCheckedIn(t *testing.T) {
	db := setupTestDB(t)
	svc := newBookingService(db)
	rt := seedRoomType(t, db, 5)
	user := seedUser(t, db)

	b := seedBooking(t, db, user.ID, rt.ID, daysFromNow(0), daysFromNow(2), models.BookingConfirmed)

	_, err := svc.CheckOut(b.ID)
	var stateErr *StateError
	if !errors.As(err, &stateErr) {
		t.Fatalf("expected StateError, got %v", err)
	}
}

func TestMarkNoShow(t *testing.T) {
	db := setupTestDB(t)
	svc := newBookingService(db)
	rt := seedRoomType(t, db, 5)
	user := seedUser(t, db)

	b := seedBooking(t, db, user.ID, rt.ID, daysFromNow(0), daysFromNow(2), models.BookingConfirmed)

	updated, err := svc.MarkNoShow(b.ID)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if updated.Status != models.BookingNoShow {
		t.Fatalf("expected no_show, got %s", updated.Status)
	}

	// Only confirmed bookings can be no-showed.
	pending := seedBooking(t, db, user.ID, rt.ID, daysFromNow(0), daysFromNow(2), models.BookingPending)
	_, err = svc.MarkNoShow(pending.ID)
	var stateErr *StateError
	if !errors.As(err, &stateErr) {
		t.Fatalf("expected StateError, got %v", err)
	}
}
