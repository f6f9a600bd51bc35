package services

import (
	"testing"
	"time"

	"github.com/Vinh124567/backend-hotel-booking-sub000/config"
	"github.com/Vinh124567/backend-hotel-booking-sub000/models"
	"gorm.io/gorm"
)

func newTestSweeper(db *gorm.DB) *Sweeper {
	return NewSweeper(db, config.SweeperConfig{
		Interval:      config.Duration(time.Minute),
		PendingCutoff: config.Duration(time.Minute),
		PaymentCutoff: config.Duration(15 * time.Minute),
	})
}

func TestSweepCancelsStalePendingHolds(t *testing.T) {
	db := setupTestDB(t)
	sweeper := newTestSweeper(db)
	checker := NewAvailabilityService(db)
	rt := seedRoomType(t, db, 1)
	user := seedUser(t, db)

	stale := seedBooking(t, db, user.ID, rt.ID, date("2025-06-01"), date("2025-06-03"), models.BookingPending)
	if err := db.Model(stale).Update("created_at", time.Now().Add(-2*time.Minute)).Error; err != nil {
		t.Fatalf("backdating booking: %v", err)
	}

	fresh := seedBooking(t, db, user.ID, rt.ID, date("2025-07-01"), date("2025-07-03"), models.BookingPending)

	if err := sweeper.SweepOnce(); err != nil {
		t.Fatalf("sweep failed: %v", err)
	}

	if got := reloadBooking(t, db, stale.ID).Status; got != models.BookingCancelled {
		t.Fatalf("stale hold must be cancelled, got %s", got)
	}
	if got := reloadBooking(t, db, fresh.ID).Status; got != models.BookingPending {
		t.Fatalf("fresh hold must survive the sweep, got %s", got)
	}

	// The freed slot is visible immediately.
	ok, err := checker.IsAvailable(rt.ID, date("2025-06-01"), date("2025-06-03"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !ok {
		t.Fatal("sweeping must free capacity for the swept dates")
	}
}

func TestSweepIgnoresConfirmedBookings(t *testing.T) {
	db := setupTestDB(t)
	sweeper := newTestSweeper(db)
	rt := seedRoomType(t, db, 1)
	user := seedUser(t, db)

	confirmed := seedBooking(t, db, user.ID, rt.ID, date("2025-06-01"), date("2025-06-03"), models.BookingConfirmed)
	if err := db.Model(confirmed).Update("created_at", time.Now().Add(-time.Hour)).Error; err != nil {
		t.Fatalf("backdating booking: %v", err)
	}

	if err := sweeper.SweepOnce(); err != nil {
		t.Fatalf("sweep failed: %v", err)
	}

	if got := reloadBooking(t, db, confirmed.ID).Status; got != models.BookingConfirmed {
		t.Fatalf("sweep must only touch pending bookings, got %s", got)
	}
}

func TestSweepExpiresStalePayments(t *testing.T) {
	db := setupTestDB(t)
	sweeper := newTestSweeper(db)
	rt := seedRoomType(t, db, 1)
	user := seedUser(t, db)

	b := seedBooking(t, db, user.ID, rt.ID, date("2025-06-01"), date("2025-06-03"), models.BookingConfirmed)

	payment := models.Payment{
		BookingID: b.ID,
		Amount:    300000,
		Type:      models.PaymentDeposit,
		Status:    models.PaymentPending,
		OrderID:   "BK-TEST-1",
		RequestID: "req-1",
	}
	if err := db.Create(&payment).Error; err != nil {
		t.Fatalf("seeding payment: %v", err)
	}
	if err := db.Model(&payment).Update("created_at", time.Now().Add(-time.Hour)).Error; err != nil {
		t.Fatalf("backdating payment: %v", err)
	}

	if err := sweeper.SweepOnce(); err != nil {
		t.Fatalf("sweep failed: %v", err)
	}

	var reloaded models.Payment
	if err := db.First(&reloaded, payment.ID).Error; err != nil {
		t.Fatalf("reloading payment: %v", err)
	}
	if reloaded.Status != models.PaymentExpired {
		t.Fatalf("stale pending payment must expire, got %s", reloaded.Status)
	}

	var histories []models.PaymentHistory
	if err := db.Where("payment_id = ?", payment.ID).Find(&histories).Error; err != nil {
		t.Fatalf("loading histories: %v", err)
	}
	if len(histories) != 1 || histories[0].Status != models.PaymentExpired {
		t.Fatalf("expiry must append exactly one ledger entry, got %+v", histories)
	}
}
