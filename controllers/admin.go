package controllers

import (
	"net/http"

	"github.com/Vinh124567/backend-hotel-booking-sub000/models"
	"github.com/Vinh124567/backend-hotel-booking-sub000/services"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// Admin: list all bookings (with optional status filter and user search)
func GetAllBookings(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var bookings []models.Booking

		search := c.Query("search")
		status := c.Query("status")

		query := db.Preload("User").Preload("RoomType").Preload("Payments").Order("created_at desc")

		if status != "" {
			query = query.Where("status = ?", status)
		}

		if search != "" {
			query = query.Joins("JOIN users ON users.id = bookings.user_id").
				Where("LOWER(users.full_name) LIKE LOWER(?) OR LOWER(users.email) LIKE LOWER(?)", "%"+search+"%", "%"+search+"%")
		}

		if err := query.Find(&bookings).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch bookings"})
			return
		}

		c.JSON(http.StatusOK, gin.H{"bookings": bookings})
	}
}

// Admin: check guest in, optionally assigning a physical room
func AdminCheckIn(bookings *services.BookingService) gin.HandlerFunc {
	return func(c *gin.Context) {
		var bookingID uint
		if err := bindIDParam(c, &bookingID); err != nil {
			return
		}

		var body struct {
			RoomID *uint `json:"room_id"`
		}
		// Body is optional; check-in without room assignment is fine.
		_ = c.ShouldBindJSON(&body)

		booking, err := bookings.CheckIn(bookingID, body.RoomID)
		if err != nil {
			respondServiceError(c, err)
			return
		}

		c.JSON(http.StatusOK, gin.H{"message": "Guest checked in", "booking": booking})
	}
}

// Admin: check guest out
func AdminCheckOut(bookings *services.BookingService) gin.HandlerFunc {
	return func(c *gin.Context) {
		var bookingID uint
		if err := bindIDParam(c, &bookingID); err != nil {
			return
		}

		booking, err := bookings.CheckOut(bookingID)
		if err != nil {
			respondServiceError(c, err)
			return
		}

		c.JSON(http.StatusOK, gin.H{"message": "Guest checked out", "booking": booking})
	}
}

// Admin: mark a confirmed booking as no-show
func AdminMarkNoShow(bookings *services.BookingService) gin.HandlerFunc {
	return func(c *gin.Context) {
		var bookingID uint
		if err := bindIDParam(c, &bookingID); err != nil {
			return
		}

		booking, err := bookings.MarkNoShow(bookingID)
		if err != nil {
			respondServiceError(c, err)
			return
		}

		c.JSON(http.StatusOK, gin.H{"message": "Booking marked as no-show", "booking": booking})
	}
}

// Admin: notification feed
func GetNotifications(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var notifications []models.Notification

		query := db.Order("created_at desc").Limit(100)
		if c.Query("unread") == "true" {
			query = query.Where("read = false")
		}

		if err := query.Find(&notifications).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch notifications"})
			return
		}

		c.JSON(http.StatusOK, gin.H{"notifications": notifications})
	}
}

func MarkNotificationRead(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.Param("id")

		var n models.Notification
		if err := db.First(&n, id).Error; err != nil {
			c.JSON(http.StatusNotFound, gin.H{"error": "Notification not found"})
			return
		}

		n.Read = true
		if err := db.Save(&n).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update notification"})
			return
		}

		c.JSON(http.StatusOK, gin.H{"notification": n})
	}
}

// Admin: list users
func GetAllUsers(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var users []models.User
		if err := db.Where("deleted = false").Order("created_at desc").Find(&users).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch users"})
			return
		}

		c.JSON(http.StatusOK, gin.H{"users": users})
	}
}

// Admin: block/unblock user
func BlockUser(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.Param("id")

		var body struct {
			Blocked bool `json:"blocked"`
		}
		if err := c.ShouldBindJSON(&body); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request"})
			return
		}

		var user models.User
		if err := db.First(&user, id).Error; err != nil {
			c.JSON(http.StatusNotFound, gin.H{"error": "User not found"})
			return
		}

		user.Blocked = body.Blocked
		if err := db.Save(&user).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update user"})
			return
		}

		c.JSON(http.StatusOK, gin.H{"message": "User updated", "user": user})
	}
}
