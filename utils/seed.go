package utils

import (
	"github.com/Vinh124567/backend-hotel-booking-sub000/models"
	"gorm.io/gorm"
)

func SeedDummyHotels(db *gorm.DB) {
	hotels := []models.Hotel{
		{
			Name:       "Riverside Grand Hotel",
			Address:    "12 Bach Dang",
			City:       "Da Nang",
			StarRating: 5,
			RoomTypes: []models.RoomType{
				{Name: "Standard Double", MaxGuests: 2, PoolSize: 5, PricePerNight: 850000,
					Rooms: []models.Room{
						{RoomNumber: "101", Floor: 1},
						{RoomNumber: "102", Floor: 1},
						{RoomNumber: "201", Floor: 2},
						{RoomNumber: "202", Floor: 2},
						{RoomNumber: "203", Floor: 2},
					}},
				{Name: "Deluxe River View", MaxGuests: 3, PoolSize: 3, PricePerNight: 1450000,
					Rooms: []models.Room{
						{RoomNumber: "301", Floor: 3},
						{RoomNumber: "302", Floor: 3},
						{RoomNumber: "303", Floor: 3},
					}},
			},
		},
		{
			Name:       "Old Quarter Boutique",
			Address:    "45 Hang Bac",
			City:       "Ha Noi",
			StarRating: 4,
			RoomTypes: []models.RoomType{
				{Name: "Classic Queen", MaxGuests: 2, PoolSize: 4, PricePerNight: 700000,
					Rooms: []models.Room{
						{RoomNumber: "A1", Floor: 1},
						{RoomNumber: "A2", Floor: 1},
						{RoomNumber: "B1", Floor: 2},
						{RoomNumber: "B2", Floor: 2},
					}},
			},
		},
	}

	for _, h := range hotels {
		var existing models.Hotel
		if err := db.Where("name = ?", h.Name).First(&existing).Error; err != nil {
			db.Create(&h)
		}
	}
}
