package controllers

import (
	"net/http"

	"github.com/Vinh124567/backend-hotel-booking-sub000/models"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type AnalyticsController struct {
	DB *gorm.DB
}

func (ac *AnalyticsController) GetDailyRevenue(c *gin.Context) {
	type RevenueData struct {
		Date    string  `json:"date"`
		Revenue float64 `json:"revenue"`
	}

	var results []RevenueData

	ac.DB.
		Model(&models.Payment{}).
		Select("TO_CHAR(created_at, 'YYYY-MM-DD') as date, SUM(amount) as revenue").
		Where("status = ?", models.PaymentPaid).
		Group("TO_CHAR(created_at, 'YYYY-MM-DD')").
		Order("TO_CHAR(created_at, 'YYYY-MM-DD') ASC").
		Limit(7).
		Scan(&results)

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"data":    results,
	})
}

func (ac *AnalyticsController) GetBookingsPerHotel(c *gin.Context) {
	type HotelData struct {
		Hotel    string `json:"hotel"`
		Bookings int64  `json:"bookings"`
	}

	var results []HotelData

	ac.DB.Table("bookings").
		Select("hotels.name as hotel, COUNT(bookings.id) as bookings").
		Joins("JOIN room_types ON room_types.id = bookings.room_type_id").
		Joins("JOIN hotels ON hotels.id = room_types.hotel_id").
		Group("hotels.name").
		Order("bookings DESC").
		Limit(7).
		Scan(&results)

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"data":    results,
	})
}

func (ac *AnalyticsController) GetDashboardStats(c *gin.Context) {
	var userCount, hotelCount, bookingCount, pendingCount int64

	ac.DB.Model(&models.User{}).Count(&userCount)
	ac.DB.Model(&models.Hotel{}).Count(&hotelCount)
	ac.DB.Model(&models.Booking{}).Count(&bookingCount)
	ac.DB.Model(&models.Booking{}).Where("status = ?", models.BookingPending).Count(&pendingCount)

	c.JSON(http.StatusOK, gin.H{
		"success":          true,
		"total_users":      userCount,
		"total_hotels":     hotelCount,
		"total_bookings":   bookingCount,
		"pending_bookings": pendingCount,
	})
}
