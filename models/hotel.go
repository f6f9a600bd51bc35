package models

import (
	"time"

	"gorm.io/gorm"
)

type Hotel struct {
	ID          uint           `gorm:"primaryKey" json:"id"`
	Name        string         `gorm:"size:200;not null" json:"name"`
	Address     string         `gorm:"size:300" json:"address"`
	City        string         `gorm:"size:100;index" json:"city"`
	Description string         `gorm:"type:text" json:"description"`
	StarRating  int            `gorm:"default:0" json:"star_rating"`
	ImageURL    string         `json:"image_url,omitempty"`
	RoomTypes   []RoomType     `gorm:"foreignKey:HotelID" json:"room_types,omitempty"`
	CreatedAt   time.Time      `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt   time.Time      `gorm:"autoUpdateTime" json:"updated_at"`
	DeletedAt   gorm.DeletedAt `gorm:"index" json:"deleted_at,omitempty"`
}

type Review struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	UserID    uint      `gorm:"index;constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"user_id"`
	User      User      `gorm:"foreignKey:UserID" json:"user"`
	HotelID   uint      `gorm:"index;constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"hotel_id"`
	Rating    int       `gorm:"not null" json:"rating"` // 1..5
	Comment   string    `gorm:"type:text" json:"comment"`
	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt time.Time `gorm:"autoUpdateTime" json:"updated_at"`
}

type Favorite struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	UserID    uint      `gorm:"index:idx_user_hotel,unique;constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"user_id"`
	HotelID   uint      `gorm:"index:idx_user_hotel,unique;constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"hotel_id"`
	Hotel     Hotel     `gorm:"foreignKey:HotelID" json:"hotel"`
	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`
}
