package controllers

import (
	"net/http"
	"time"

	"github.com/Vinh124567/backend-hotel-booking-sub000/models"
	"github.com/Vinh124567/backend-hotel-booking-sub000/services"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

func CreateBooking(db *gorm.DB, bookings *services.BookingService) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req struct {
			RoomTypeID      uint    `json:"room_type_id" binding:"required"`
			CheckIn         string  `json:"check_in" binding:"required"`
			CheckOut        string  `json:"check_out" binding:"required"`
			Guests          int     `json:"guests" binding:"required"`
			TotalPrice      float64 `json:"total_price" binding:"required"`
			SpecialRequests string  `json:"special_requests"`
		}

		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid booking data"})
			return
		}

		userID, ok := currentUserID(c)
		if !ok {
			return
		}

		checkIn, err := time.Parse("2006-01-02", req.CheckIn)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "check_in must be YYYY-MM-DD"})
			return
		}
		checkOut, err := time.Parse("2006-01-02", req.CheckOut)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "check_out must be YYYY-MM-DD"})
			return
		}

		booking, err := bookings.Create(userID, services.CreateBookingInput{
			RoomTypeID:      req.RoomTypeID,
			CheckIn:         checkIn,
			CheckOut:        checkOut,
			Guests:          req.Guests,
			TotalPrice:      req.TotalPrice,
			SpecialRequests: req.SpecialRequests,
		})
		if err != nil {
			respondServiceError(c, err)
			return
		}

		var fullBooking models.Booking
		if err := db.Preload("User").Preload("RoomType").First(&fullBooking, booking.ID).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch booking details"})
			return
		}

		c.JSON(http.StatusCreated, gin.H{
			"message": "Booking created successfully",
			"booking": fullBooking,
		})
	}
}

func GetBookingDetailsUser(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, ok := currentUserID(c)
		if !ok {
			return
		}

		id := c.Param("id")

		var booking models.Booking
		if err := db.Preload("RoomType").Preload("Room").Preload("Payments").Preload("Payments.Histories").
			First(&booking, id).Error; err != nil {
			c.JSON(http.StatusNotFound, gin.H{"error": "Booking not found"})
			return
		}

		if booking.UserID != userID {
			c.JSON(http.StatusForbidden, gin.H{"error": "Not your booking"})
			return
		}

		c.JSON(http.StatusOK, booking)
	}
}

func GetUserBookings(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, ok := currentUserID(c)
		if !ok {
			return
		}

		var bookings []models.Booking
		if err := db.Preload("RoomType").Where("user_id = ?", userID).
			Order("created_at desc").Find(&bookings).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch user bookings"})
			return
		}

		c.JSON(http.StatusOK, bookings)
	}
}

func CancelBooking(bookings *services.BookingService) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, ok := currentUserID(c)
		if !ok {
			return
		}

		var bookingID uint
		if err := bindIDParam(c, &bookingID); err != nil {
			return
		}

		booking, err := bookings.Cancel(userID, bookingID)
		if err != nil {
			respondServiceError(c, err)
			return
		}

		c.JSON(http.StatusOK, gin.H{
			"message": "Booking cancelled",
			"booking": booking,
		})
	}
}
