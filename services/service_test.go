package services

import (
	"fmt"
	"testing"
	"time"

	"github.com/Vinh124567/backend-hotel-booking-sub000/models"
	"github.com/Vinh124567/backend-hotel-booking-sub000/storage"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", t.Name())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("opening test db: %v", err)
	}

	if err := storage.Migrate(db); err != nil {
		t.Fatalf("migrating test db: %v", err)
	}
	return db
}

func seedRoomType(t *testing.T, db *gorm.DB, poolSize int) *models.RoomType {
	t.Helper()

	hotel := models.Hotel{Name: "Test Hotel", City: "Hue"}
	if err := db.Create(&hotel).Error; err != nil {
		t.Fatalf("seeding hotel: %v", err)
	}

	rt := models.RoomType{
		HotelID:       hotel.ID,
		Name:          "Standard",
		MaxGuests:     2,
		PoolSize:      poolSize,
		PricePerNight: 500000,
	}
	if err := db.Create(&rt).Error; err != nil {
		t.Fatalf("seeding room type: %v", err)
	}
	return &rt
}

func seedUser(t *testing.T, db *gorm.DB) *models.User {
	t.Helper()

	user := models.User{
		FullName: "Test Guest",
		Email:    fmt.Sprintf("guest-%d@example.com", time.Now().UnixNano()),
		Password: "x",
	}
	if err := db.Create(&user).Error; err != nil {
		t.Fatalf("seeding user: %v", err)
	}
	return &user
}

// seedBooking inserts a booking directly, bypassing the creation-time
// capacity check, so tests can stage arbitrary occupancy.
func seedBooking(t *testing.T, db *gorm.DB, userID, roomTypeID uint, checkIn, checkOut time.Time, status models.BookingStatus) *models.Booking {
	t.Helper()

	b := models.Booking{
		UserID:     userID,
		RoomTypeID: roomTypeID,
		CheckIn:    dateOnly(checkIn),
		CheckOut:   dateOnly(checkOut),
		Guests:     2,
		TotalPrice: 1000000,
		Status:     status,
	}
	if err := db.Create(&b).Error; err != nil {
		t.Fatalf("seeding booking: %v", err)
	}
	return &b
}

func date(s string) time.Time {
	d, err := time.Parse("2006-01-02", s)
	if err != nil {
		panic(err)
	}
	return d
}

func daysFromNow(n int) time.Time {
	return dateOnly(time.Now()).AddDate(0, 0, n)
}
