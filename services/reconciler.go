package services

import (
	"context"
	"log"

	"github.com/Vinh124567/backend-hotel-booking-sub000/metrics"
	"github.com/Vinh124567/backend-hotel-booking-sub000/models"
	"gorm.io/gorm"
)

// Reconciler consumes payment-success signals and moves the paid booking
// from pending to confirmed after re-checking capacity. The signal channel
// decouples payment persistence from confirmation, so a slow or failing
// confirmation never blocks the IPN write path.
//
// Idempotency is part of the contract: a replayed signal for a booking that
// is no longer pending is a logged no-op, never an error or a
// double-transition. All failures are contained here; nothing panics out of
// the worker.
type Reconciler struct {
	db      *gorm.DB
	checker *AvailabilityService
	signals chan uint
}

func NewReconciler(db *gorm.DB, checker *AvailabilityService) *Reconciler {
	return &Reconciler{
		db:      db,
		checker: checker,
		signals: make(chan uint, 128),
	}
}

// NotifyPaymentSuccess queues a booking id for reconciliation.
// Fire-and-forget: if the buffer is full the signal is dropped with a log
// line; the booking stays pending and needs manual attention.
func (r *Reconciler) NotifyPaymentSuccess(bookingID uint) {
	select {
	case r.signals <- bookingID:
	default:
		metrics.ReconcilerErrors.Inc()
		log.Printf("reconciler queue full, dropping signal for booking %d", bookingID)
	}
}

func (r *Reconciler) Start(ctx context.Context) {
	go func() {
		for {
			select {
			case <-ctx.Done():
				return
			case id := <-r.signals:
				r.Reconcile(id)
			}
		}
	}()
}

// Reconcile processes one payment-success signal.
func (r *Reconciler) Reconcile(bookingID uint) {
	defer func() {
		if rec := recover(); rec != nil {
			metrics.ReconcilerErrors.Inc()
			log.Printf("reconciler panic for booking %d: %v", bookingID, rec)
		}
	}()

	var booking models.Booking
	if err := r.db.First(&booking, bookingID).Error; err != nil {
		metrics.ReconcilerErrors.Inc()
		log.Printf("reconciler: booking %d not loadable: %v", bookingID, err)
		return
	}

	if booking.Status != models.BookingPending {
		metrics.ReconcilerSkipped.Inc()
		log.Printf("reconciler: booking %d is %s, nothing to do", bookingID, booking.Status)
		return
	}

	available, err := r.checker.IsAvailableExcluding(&booking)
	if err != nil {
		metrics.ReconcilerErrors.Inc()
		log.Printf("reconciler: availability check failed for booking %d: %v", bookingID, err)
		return
	}
	if !available {
		// Capacity was taken between creation and payment. The booking
		// stays pending for manual resolution; no automatic refund.
		metrics.ReconcilerConflicts.Inc()
		log.Printf("reconciler: capacity exhausted, refusing to confirm booking %d", bookingID)
		return
	}

	booking.Status = models.BookingConfirmed
	if err := r.db.Save(&booking).Error; err != nil {
		metrics.ReconcilerErrors.Inc()
		log.Printf("reconciler: failed to confirm booking %d: %v", bookingID, err)
		return
	}

	metrics.BookingsConfirmed.Inc()
	log.Printf("reconciler: booking %d confirmed", bookingID)
}
