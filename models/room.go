package models

import (
	"time"

	"gorm.io/gorm"
)

type RoomType struct {
	ID          uint   `gorm:"primaryKey" json:"id"`
	HotelID     uint   `gorm:"index;not null" json:"hotel_id"`
	Name        string `gorm:"size:100;not null" json:"name"`
	Description string `gorm:"type:text" json:"description"`
	MaxGuests   int    `json:"max_guests"`
	// PoolSize is the number of interchangeable units of this type.
	// Capacity math counts overlapping bookings against this value.
	PoolSize      int            `gorm:"not null;default:0" json:"pool_size"`
	PricePerNight float64        `gorm:"type:decimal(12,2)" json:"price_per_night"`
	Rooms         []Room         `gorm:"foreignKey:RoomTypeID" json:"rooms,omitempty"`
	CreatedAt     time.Time      `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt     time.Time      `gorm:"autoUpdateTime" json:"updated_at"`
	DeletedAt     gorm.DeletedAt `gorm:"index" json:"deleted_at,omitempty"`
}

// Room is a physical unit, used for display and check-in assignment only.
// Availability is decided per room type, not per room.
type Room struct {
	ID         uint      `gorm:"primaryKey" json:"id"`
	RoomTypeID uint      `gorm:"index;not null" json:"room_type_id"`
	RoomNumber string    `gorm:"size:20;not null" json:"room_number"`
	Floor      int       `json:"floor"`
	CreatedAt  time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt  time.Time `gorm:"autoUpdateTime" json:"updated_at"`
}
