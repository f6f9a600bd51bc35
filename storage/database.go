package storage

import (
	"log"

	"github.com/Vinh124567/backend-hotel-booking-sub000/config"
	"github.com/Vinh124567/backend-hotel-booking-sub000/models"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

var DB *gorm.DB

func ConnectDatabase(cfg config.DatabaseConfig) *gorm.DB {
	db, err := gorm.Open(postgres.Open(cfg.DSN()), &gorm.Config{})
	if err != nil {
		log.Panic("error connecting to db: " + err.Error())
	}

	DB = db
	return db
}

func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&models.User{},
		&models.RefreshToken{},
		&models.Hotel{},
		&models.RoomType{},
		&models.Room{},
		&models.Booking{},
		&models.Payment{},
		&models.PaymentHistory{},
		&models.Review{},
		&models.Favorite{},
		&models.Notification{},
	)
}
