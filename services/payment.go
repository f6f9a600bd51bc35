package services

import (
	"encoding/json"
	"errors"
	"fmt"
	"math"
	"strings"
	"time"

	"github.com/Vinh124567/backend-hotel-booking-sub000/models"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// depositRate is the share of the total charged for a deposit payment.
const depositRate = 0.3

// PaymentService creates gateway payment intents for bookings and applies
// verified gateway callbacks. A payment is immutable once paid; every
// status change appends a PaymentHistory row.
type PaymentService struct {
	db         *gorm.DB
	gateway    Gateway
	reconciler *Reconciler
	notifier   *NotificationService
}

func NewPaymentService(db *gorm.DB, gateway Gateway, reconciler *Reconciler, notifier *NotificationService) *PaymentService {
	return &PaymentService{db: db, gateway: gateway, reconciler: reconciler, notifier: notifier}
}

func (s *PaymentService) paidTotal(bookingID uint) (float64, error) {
	var total float64
	err := s.db.Model(&models.Payment{}).
		Where("booking_id = ? AND status = ?", bookingID, models.PaymentPaid).
		Select("COALESCE(SUM(amount), 0)").Scan(&total).Error
	return total, err
}

// CreateIntent opens a pending payment for the booking and asks the gateway
// for a payUrl/QR. Owner-checked; amount depends on the payment type.
func (s *PaymentService) CreateIntent(userID, bookingID uint, ptype models.PaymentType) (*models.Payment, error) {
	var booking models.Booking
	if err := s.db.First(&booking, bookingID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("booking %d: %w", bookingID, ErrNotFound)
		}
		return nil, err
	}
	if booking.UserID != userID {
		return nil, fmt.Errorf("booking %d: %w", bookingID, ErrForbidden)
	}

	switch booking.Status {
	case models.BookingPending, models.BookingConfirmed:
	default:
		return nil, &StateError{Current: booking.Status, Op: "pay for"}
	}

	var amount float64
	switch ptype {
	case models.PaymentDeposit:
		amount = math.Round(booking.TotalPrice * depositRate)
	case models.PaymentFull:
		amount = booking.TotalPrice
	case models.PaymentRemainder:
		paid, err := s.paidTotal(bookingID)
		if err != nil {
			return nil, err
		}
		amount = booking.TotalPrice - paid
	default:
		return nil, fmt.Errorf("%w: unsupported payment type %q", ErrInvalidInput, ptype)
	}
	if amount <= 0 {
		return nil, fmt.Errorf("%w: nothing left to pay on booking %d", ErrInvalidInput, bookingID)
	}

	orderID := fmt.Sprintf("BK%d-%s", bookingID, strings.ToUpper(uuid.NewString()[:8]))
	requestID := uuid.NewString()
	orderInfo := fmt.Sprintf("Thanh toan dat phong #%d", bookingID)

	intent, err := s.gateway.CreatePaymentIntent(orderID, requestID, int64(amount), orderInfo)
	if err != nil {
		return nil, err
	}

	payment := models.Payment{
		BookingID: bookingID,
		Amount:    amount,
		Type:      ptype,
		Status:    models.PaymentPending,
		OrderID:   orderID,
		RequestID: requestID,
		PayURL:    intent.PayURL,
		QRCodeURL: intent.QRCodeURL,
		CreatedAt: time.Now(),
	}

	err = s.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&payment).Error; err != nil {
			return err
		}
		history := models.PaymentHistory{
			PaymentID:   payment.ID,
			Status:      models.PaymentPending,
			Amount:      amount,
			Description: fmt.Sprintf("%s payment intent created", ptype),
		}
		return tx.Create(&history).Error
	})
	if err != nil {
		return nil, err
	}

	return &payment, nil
}

// HandleIPN applies a gateway callback. Signature must verify; replays for
// an already-paid order are no-ops so the endpoint stays idempotent. On a
// verified success the payment turns paid, a ledger row is appended, the
// admin is notified and the reconciler is signalled.
func (s *PaymentService) HandleIPN(ipn IPNRequest) error {
	if !s.gateway.VerifyIPN(ipn) {
		return fmt.Errorf("%w: bad IPN signature for order %s", ErrForbidden, ipn.OrderID)
	}

	var payment models.Payment
	if err := s.db.First(&payment, "order_id = ?", ipn.OrderID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return fmt.Errorf("payment for order %s: %w", ipn.OrderID, ErrNotFound)
		}
		return err
	}

	if payment.Status != models.PaymentPending {
		// Replayed or late callback; the first one already settled it.
		return nil
	}

	raw, err := json.Marshal(ipn)
	if err != nil {
		return err
	}

	newStatus := models.PaymentPaid
	description := "gateway confirmed payment"
	if ipn.ResultCode != 0 {
		newStatus = models.PaymentCancelled
		description = fmt.Sprintf("gateway rejected payment (%d): %s", ipn.ResultCode, ipn.Message)
	}

	err = s.db.Transaction(func(tx *gorm.DB) error {
		updates := map[string]interface{}{
			"status":         newStatus,
			"transaction_id": fmt.Sprintf("%d", ipn.TransID),
			"raw_ipn":        raw,
		}
		if err := tx.Model(&payment).Updates(updates).Error; err != nil {
			return err
		}
		history := models.PaymentHistory{
			PaymentID:   payment.ID,
			Status:      newStatus,
			Amount:      payment.Amount,
			Description: description,
		}
		return tx.Create(&history).Error
	})
	if err != nil {
		return err
	}

	if newStatus != models.PaymentPaid {
		return nil
	}

	var booking models.Booking
	if err := s.db.First(&booking, payment.BookingID).Error; err == nil {
		if payment.Type == models.PaymentDeposit {
			s.notifier.DepositPaid(&booking, payment.Amount)
		} else {
			s.notifier.FullPaymentPaid(&booking, payment.Amount)
		}
	}

	s.reconciler.NotifyPaymentSuccess(payment.BookingID)
	return nil
}

// SyncStatus reports the payment's current status, falling back to a
// gateway query while the callback has not arrived. A gateway-confirmed
// payment settles the same way a verified IPN does.
func (s *PaymentService) SyncStatus(userID, paymentID uint) (*models.Payment, error) {
	var payment models.Payment
	if err := s.db.First(&payment, paymentID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("payment %d: %w", paymentID, ErrNotFound)
		}
		return nil, err
	}

	var booking models.Booking
	if err := s.db.First(&booking, payment.BookingID).Error; err != nil {
		return nil, err
	}
	if booking.UserID != userID {
		return nil, fmt.Errorf("payment %d: %w", paymentID, ErrForbidden)
	}

	if payment.Status != models.PaymentPending {
		return &payment, nil
	}

	paid, err := s.gateway.QueryStatus(payment.OrderID, payment.RequestID)
	if err != nil {
		return nil, err
	}
	if !paid {
		return &payment, nil
	}

	err = s.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Model(&payment).Update("status", models.PaymentPaid).Error; err != nil {
			return err
		}
		history := models.PaymentHistory{
			PaymentID:   payment.ID,
			Status:      models.PaymentPaid,
			Amount:      payment.Amount,
			Description: "gateway query confirmed payment",
		}
		return tx.Create(&history).Error
	})
	if err != nil {
		return nil, err
	}
	payment.Status = models.PaymentPaid

	if payment.Type == models.PaymentDeposit {
		s.notifier.DepositPaid(&booking, payment.Amount)
	} else {
		s.notifier.FullPaymentPaid(&booking, payment.Amount)
	}
	s.reconciler.NotifyPaymentSuccess(payment.BookingID)

	return &payment, nil
}
