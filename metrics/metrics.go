package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Background jobs swallow their errors by design of the request/response
// split, so the counters below are the only visible trace of failures.
var (
	BookingsCreated = promauto.NewCounter(prometheus.CounterOpts{
		Name: "hotel_bookings_created_total",
		Help: "Total number of bookings created",
	})

	BookingsConfirmed = promauto.NewCounter(prometheus.CounterOpts{
		Name: "hotel_bookings_confirmed_total",
		Help: "Total number of bookings confirmed by the payment reconciler",
	})

	SweeperCancelled = promauto.NewCounter(prometheus.CounterOpts{
		Name: "hotel_sweeper_cancelled_total",
		Help: "Total number of stale pending bookings cancelled by the sweeper",
	})

	SweeperPaymentsExpired = promauto.NewCounter(prometheus.CounterOpts{
		Name: "hotel_sweeper_payments_expired_total",
		Help: "Total number of pending payments expired by the sweeper",
	})

	SweeperErrors = promauto.NewCounter(prometheus.CounterOpts{
		Name: "hotel_sweeper_errors_total",
		Help: "Total number of sweep runs that failed and rolled back",
	})

	ReconcilerConflicts = promauto.NewCounter(prometheus.CounterOpts{
		Name: "hotel_reconciler_conflicts_total",
		Help: "Confirmations refused because capacity was exhausted at confirmation time",
	})

	ReconcilerErrors = promauto.NewCounter(prometheus.CounterOpts{
		Name: "hotel_reconciler_errors_total",
		Help: "Reconciliation attempts that failed for reasons other than capacity",
	})

	ReconcilerSkipped = promauto.NewCounter(prometheus.CounterOpts{
		Name: "hotel_reconciler_skipped_total",
		Help: "Payment-success signals ignored because the booking was not pending",
	})
)
