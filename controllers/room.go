package controllers

import (
	"net/http"
	"time"

	"github.com/Vinh124567/backend-hotel-booking-sub000/models"
	"github.com/Vinh124567/backend-hotel-booking-sub000/services"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

func GetHotelRoomTypes(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		hotelID := c.Param("id")

		var roomTypes []models.RoomType
		if err := db.Where("hotel_id = ?", hotelID).Find(&roomTypes).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch room types"})
			return
		}

		c.JSON(http.StatusOK, roomTypes)
	}
}

// CheckAvailability answers the public "is this room type free" probe:
// GET /api/room-types/:id/availability?check_in=...&check_out=...
func CheckAvailability(checker *services.AvailabilityService) gin.HandlerFunc {
	return func(c *gin.Context) {
		var roomTypeID uint
		if err := bindIDParam(c, &roomTypeID); err != nil {
			return
		}

		checkIn, err := time.Parse("2006-01-02", c.Query("check_in"))
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "check_in must be YYYY-MM-DD"})
			return
		}
		checkOut, err := time.Parse("2006-01-02", c.Query("check_out"))
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "check_out must be YYYY-MM-DD"})
			return
		}
		if !checkIn.Before(checkOut) {
			c.JSON(http.StatusBadRequest, gin.H{"error": "check_in must be before check_out"})
			return
		}

		available, err := checker.IsAvailable(roomTypeID, checkIn, checkOut)
		if err != nil {
			respondServiceError(c, err)
			return
		}

		c.JSON(http.StatusOK, gin.H{
			"room_type_id": roomTypeID,
			"check_in":     checkIn.Format("2006-01-02"),
			"check_out":    checkOut.Format("2006-01-02"),
			"available":    available,
		})
	}
}

// Admin: create room type under a hotel
func AdminAddRoomType(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var rt models.RoomType
		if err := c.ShouldBindJSON(&rt); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		if rt.HotelID == 0 || rt.PoolSize <= 0 {
			c.JSON(http.StatusBadRequest, gin.H{"error": "hotel_id and a positive pool_size are required"})
			return
		}

		var hotel models.Hotel
		if err := db.First(&hotel, rt.HotelID).Error; err != nil {
			c.JSON(http.StatusNotFound, gin.H{"error": "Hotel not found"})
			return
		}

		if err := db.Create(&rt).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			return
		}

		invalidateHotelCache()
		c.JSON(http.StatusCreated, gin.H{"room_type": rt})
	}
}

// Admin: update room type (pool size changes affect future capacity checks)
func AdminUpdateRoomType(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.Param("id")

		var rt models.RoomType
		if err := db.First(&rt, id).Error; err != nil {
			c.JSON(http.StatusNotFound, gin.H{"error": "Room type not found"})
			return
		}

		var body models.RoomType
		if err := c.ShouldBindJSON(&body); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		if body.PoolSize <= 0 {
			c.JSON(http.StatusBadRequest, gin.H{"error": "pool_size must be positive"})
			return
		}

		rt.Name = body.Name
		rt.Description = body.Description
		rt.MaxGuests = body.MaxGuests
		rt.PoolSize = body.PoolSize
		rt.PricePerNight = body.PricePerNight

		if err := db.Save(&rt).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update room type"})
			return
		}

		invalidateHotelCache()
		c.JSON(http.StatusOK, gin.H{"room_type": rt})
	}
}

// Admin: add physical room to a room type
func AdminAddRoom(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var room models.Room
		if err := c.ShouldBindJSON(&room); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}

		var rt models.RoomType
		if err := db.First(&rt, room.RoomTypeID).Error; err != nil {
			c.JSON(http.StatusNotFound, gin.H{"error": "Room type not found"})
			return
		}

		if err := db.Create(&room).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			return
		}

		c.JSON(http.StatusCreated, gin.H{"room": room})
	}
}

// Admin: delete physical room
func AdminDeleteRoom(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.Param("id")

		if err := db.Delete(&models.Room{}, id).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete room"})
			return
		}

		c.JSON(http.StatusOK, gin.H{"message": "Room deleted"})
	}
}
