package services

import (
	"context"
	"log"
	"time"

	"github.com/Vinh124567/backend-hotel-booking-sub000/config"
	"github.com/Vinh124567/backend-hotel-booking-sub000/metrics"
	"github.com/Vinh124567/backend-hotel-booking-sub000/models"
	"gorm.io/gorm"
)

// Sweeper periodically cancels pending bookings that were never confirmed
// within the cutoff and expires stale unpaid payment intents. Each run is a
// single transaction: on failure nothing is half-cancelled and the next
// tick retries. Errors are logged and counted, never propagated.
type Sweeper struct {
	db            *gorm.DB
	interval      time.Duration
	pendingCutoff time.Duration
	paymentCutoff time.Duration
}

func NewSweeper(db *gorm.DB, cfg config.SweeperConfig) *Sweeper {
	return &Sweeper{
		db:            db,
		interval:      cfg.Interval.Std(),
		pendingCutoff: cfg.PendingCutoff.Std(),
		paymentCutoff: cfg.PaymentCutoff.Std(),
	}
}

func (s *Sweeper) Start(ctx context.Context) {
	go func() {
		ticker := time.NewTicker(s.interval)
		defer ticker.Stop()
		for {
			select {
			case <-ctx.Done():
				return
			case <-ticker.C:
				if err := s.SweepOnce(); err != nil {
					metrics.SweeperErrors.Inc()
					log.Printf("sweep failed: %v", err)
				}
			}
		}
	}()
}

// SweepOnce runs one sweep pass. Exposed so the scheduler and tests share
// the same path.
func (s *Sweeper) SweepOnce() error {
	now := time.Now()

	return s.db.Transaction(func(tx *gorm.DB) error {
		res := tx.Model(&models.Booking{}).
			Where("status = ? AND created_at < ?", models.BookingPending, now.Add(-s.pendingCutoff)).
			Update("status", models.BookingCancelled)
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected > 0 {
			metrics.SweeperCancelled.Add(float64(res.RowsAffected))
			log.Printf("sweep cancelled %d stale pending bookings", res.RowsAffected)
		}

		var stale []models.Payment
		if err := tx.Where("status = ? AND created_at < ?", models.PaymentPending, now.Add(-s.paymentCutoff)).
			Find(&stale).Error; err != nil {
			return err
		}
		for i := range stale {
			if err := tx.Model(&stale[i]).Update("status", models.PaymentExpired).Error; err != nil {
				return err
			}
			history := models.PaymentHistory{
				PaymentID:   stale[i].ID,
				Status:      models.PaymentExpired,
				Amount:      stale[i].Amount,
				Description: "payment QR expired before completion",
			}
			if err := tx.Create(&history).Error; err != nil {
				return err
			}
		}
		if len(stale) > 0 {
			metrics.SweeperPaymentsExpired.Add(float64(len(stale)))
		}

		return nil
	})
}
