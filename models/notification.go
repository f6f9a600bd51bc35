package models

import "time"

type NotificationType string

const (
	NotifyCancellation NotificationType = "cancellation"
	NotifyDeposit      NotificationType = "deposit"
	NotifyFullPayment  NotificationType = "full_payment"
	NotifyCheckIn      NotificationType = "check_in"
	NotifyNoShow       NotificationType = "no_show"
)

// Notification is a human-readable event record for the admin panel.
// Writes are best-effort; failures never propagate to the triggering operation.
type Notification struct {
	ID        uint             `gorm:"primaryKey" json:"id"`
	Type      NotificationType `gorm:"type:varchar(30);index" json:"type"`
	Title     string           `gorm:"size:200" json:"title"`
	Message   string           `gorm:"type:text" json:"message"`
	BookingID *uint            `gorm:"index" json:"booking_id,omitempty"`
	Read      bool             `gorm:"default:false;index" json:"read"`
	CreatedAt time.Time        `gorm:"autoCreateTime;index" json:"created_at"`
}
