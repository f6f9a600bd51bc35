package controllers

import (
	"net/http"

	"github.com/Vinh124567/backend-hotel-booking-sub000/models"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

func AddFavorite(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, ok := currentUserID(c)
		if !ok {
			return
		}

		var req struct {
			HotelID uint `json:"hotel_id" binding:"required"`
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

		var existing models.Favorite
		if err := db.Where("user_id = ? AND hotel_id = ?", userID, req.HotelID).First(&existing).Error; err == nil {
			c.JSON(http.StatusOK, gin.H{"favorite": existing})
			return
		}

		fav := models.Favorite{UserID: userID, HotelID: req.HotelID}
		if err := db.Create(&fav).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to add favorite"})
			return
		}

		c.JSON(http.StatusCreated, gin.H{"favorite": fav})
	}
}

func GetFavorites(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, ok := currentUserID(c)
		if !ok {
			return
		}

		var favorites []models.Favorite
		if err := db.Preload("Hotel").Where("user_id = ?", userID).Find(&favorites).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch favorites"})
			return
		}

		c.JSON(http.StatusOK, favorites)
	}
}

func RemoveFavorite(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, ok := currentUserID(c)
		if !ok {
			return
		}

		hotelID := c.Param("id")

		if err := db.Where("user_id = ? AND hotel_id = ?", userID, hotelID).
			Delete(&models.Favorite{}).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to remove favorite"})
			return
		}

		c.JSON(http.StatusOK, gin.H{"message": "Favorite removed"})
	}
}
