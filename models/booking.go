package models

import "time"

type BookingStatus string

const (
	BookingPending    BookingStatus = "pending"
	BookingConfirmed  BookingStatus = "confirmed"
	BookingCheckedIn  BookingStatus = "checked_in"
	BookingCheckedOut BookingStatus = "checked_out"
	BookingCancelled  BookingStatus = "cancelled"
	BookingNoShow     BookingStatus = "no_show"
	BookingExpired    BookingStatus = "expired"
)

// InactiveBookingStatuses do not hold capacity: overlap counts skip them.
var InactiveBookingStatuses = []BookingStatus{BookingCancelled, BookingNoShow, BookingExpired}

type Booking struct {
	ID     uint `gorm:"primaryKey" json:"id"`
	UserID uint `gorm:"index;constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"user_id"`
	User   User `gorm:"foreignKey:UserID" json:"user"`

	RoomTypeID uint     `gorm:"index;constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"room_type_id"`
	RoomType   RoomType `gorm:"foreignKey:RoomTypeID" json:"room_type"`

	// [CheckIn, CheckOut) half-open; dates only, midnight UTC.
	CheckIn  time.Time `gorm:"not null;index" json:"check_in"`
	CheckOut time.Time `gorm:"not null;index" json:"check_out"`

	Guests          int           `json:"guests"`
	TotalPrice      float64       `gorm:"type:decimal(12,2)" json:"total_price"`
	Status          BookingStatus `gorm:"type:varchar(20);default:'pending';index" json:"status"`
	SpecialRequests string        `gorm:"type:text" json:"special_requests,omitempty"`

	// RoomID is the physical unit assigned at check-in, if any.
	RoomID *uint `gorm:"index" json:"room_id,omitempty"`
	Room   *Room `gorm:"foreignKey:RoomID" json:"room,omitempty"`

	CreatedAt time.Time `gorm:"autoCreateTime;index" json:"created_at"`
	UpdatedAt time.Time `gorm:"autoUpdateTime" json:"updated_at"`

	Payments []Payment `gorm:"foreignKey:BookingID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"payments,omitempty"`
}
