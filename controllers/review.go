package controllers

import (
	"net/http"

	"github.com/Vinh124567/backend-hotel-booking-sub000/models"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

func CreateReview(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, ok := currentUserID(c)
		if !ok {
			return
		}

		var req struct {
			HotelID uint   `json:"hotel_id" binding:"required"`
			Rating  int    `json:"rating" binding:"required,min=1,max=5"`
			Comment string `json:"comment"`
		}
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}

		var hotel models.Hotel
		if err := db.First(&hotel, req.HotelID).Error; err != nil {
			c.JSON(http.StatusNotFound, gin.H{"error": "Hotel not found"})
			return
		}

		review := models.Review{
			UserID:  userID,
			HotelID: req.HotelID,
			Rating:  req.Rating,
			Comment: req.Comment,
		}
		if err := db.Create(&review).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create review"})
			return
		}

		c.JSON(http.StatusCreated, gin.H{"review": review})
	}
}

func GetHotelReviews(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		hotelID := c.Param("id")

		var reviews []models.Review
		if err := db.Preload("User").Where("hotel_id = ?", hotelID).
			Order("created_at desc").Find(&reviews).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch reviews"})
			return
		}

		c.JSON(http.StatusOK, reviews)
	}
}

func DeleteReview(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, ok := currentUserID(c)
		if !ok {
			return
		}

		id := c.Param("id")

		var review models.Review
		if err := db.First(&review, id).Error; err != nil {
			c.JSON(http.StatusNotFound, gin.H{"error": "Review not found"})
			return
		}
		if review.UserID != userID {
			c.JSON(http.StatusForbidden, gin.H{"error": "Not your review"})
			return
		}

		if err := db.Delete(&review).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete review"})
			return
		}

		c.JSON(http.StatusOK, gin.H{"message": "Review deleted"})
	}
}
