package services

import (
	"fmt"
	"log"

	"github.com/Vinh124567/backend-hotel-booking-sub000/models"
	"gorm.io/gorm"
)

// NotificationService writes human-readable event records for the admin
// panel. All writes are best-effort: a failed insert is logged and dropped,
// never surfaced to the operation that triggered it.
type NotificationService struct {
	db *gorm.DB
}

func NewNotificationService(db *gorm.DB) *NotificationService {
	return &NotificationService{db: db}
}

func (ns *NotificationService) record(t models.NotificationType, title, message string, bookingID uint) {
	n := models.Notification{
		Type:      t,
		Title:     title,
		Message:   message,
		BookingID: &bookingID,
	}
	if err := ns.db.Create(&n).Error; err != nil {
		log.Printf("notification write failed (%s, booking %d): %v", t, bookingID, err)
	}
}

func (ns *NotificationService) BookingCancelled(b *models.Booking) {
	ns.record(models.NotifyCancellation, "Booking cancelled",
		fmt.Sprintf("Booking #%d (%s - %s) was cancelled", b.ID,
			b.CheckIn.Format("2006-01-02"), b.CheckOut.Format("2006-01-02")), b.ID)
}

func (ns *NotificationService) DepositPaid(b *models.Booking, amount float64) {
	ns.record(models.NotifyDeposit, "Deposit received",
		fmt.Sprintf("Deposit of %.2f received for booking #%d", amount, b.ID), b.ID)
}

func (ns *NotificationService) FullPaymentPaid(b *models.Booking, amount float64) {
	ns.record(models.NotifyFullPayment, "Payment received",
		fmt.Sprintf("Full payment of %.2f received for booking #%d", amount, b.ID), b.ID)
}

func (ns *NotificationService) GuestCheckedIn(b *models.Booking) {
	ns.record(models.NotifyCheckIn, "Guest checked in",
		fmt.Sprintf("Guest checked in for booking #%d", b.ID), b.ID)
}

func (ns *NotificationService) GuestNoShow(b *models.Booking) {
	ns.record(models.NotifyNoShow, "No-show",
		fmt.Sprintf("Guest did not arrive for booking #%d", b.ID), b.ID)
}
