package controllers

import (
	"context"
	"encoding/json"
	"net/http"
	"strings"
	"time"

	"github.com/Vinh124567/backend-hotel-booking-sub000/models"
	"github.com/Vinh124567/backend-hotel-booking-sub000/storage"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

const hotelListCacheKey = "hotels:list"

// GetHotels serves the public hotel list, cached in redis for a minute.
func GetHotels(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx := context.Background()
		city := c.Query("city")

		cacheKey := hotelListCacheKey
		if city != "" {
			cacheKey += ":" + strings.ToLower(city)
		}

		if storage.Redis != nil {
			if cached, err := storage.Redis.Get(ctx, cacheKey).Result(); err == nil {
				c.Data(http.StatusOK, "application/json", []byte(cached))
				return
			}
		}

		query := db.Preload("RoomTypes")
		if city != "" {
			query = query.Where("LOWER(city) = LOWER(?)", city)
		}

		var hotels []models.Hotel
		if err := query.Find(&hotels).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch hotels"})
			return
		}

		if storage.Redis != nil {
			if payload, err := json.Marshal(hotels); err == nil {
				storage.Redis.Set(ctx, cacheKey, payload, time.Minute)
			}
		}

		c.JSON(http.StatusOK, hotels)
	}
}

func GetHotelDetails(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.Param("id")

		var hotel models.Hotel
		if err := db.Preload("RoomTypes").Preload("RoomTypes.Rooms").First(&hotel, id).Error; err != nil {
			c.JSON(http.StatusNotFound, gin.H{"error": "Hotel not found"})
			return
		}

		c.JSON(http.StatusOK, hotel)
	}
}

func invalidateHotelCache() {
	if storage.Redis == nil {
		return
	}
	ctx := context.Background()
	iter := storage.Redis.Scan(ctx, 0, hotelListCacheKey+"*", 0).Iterator()
	for iter.Next(ctx) {
		storage.Redis.Del(ctx, iter.Val())
	}
}

// Admin: create hotel
func AdminAddHotel(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var h models.Hotel
		if err := c.ShouldBindJSON(&h); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		if strings.TrimSpace(h.Name) == "" {
			c.JSON(http.StatusBadRequest, gin.H{"error": "name is required"})
			return
		}
		if err := db.Create(&h).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			return
		}

		invalidateHotelCache()
		c.JSON(http.StatusCreated, gin.H{"hotel": h})
	}
}

// Admin: update hotel
func AdminUpdateHotel(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.Param("id")

		var hotel models.Hotel
		if err := db.First(&hotel, id).Error; err != nil {
			c.JSON(http.StatusNotFound, gin.H{"error": "Hotel not found"})
			return
		}

		var body models.Hotel
		if err := c.ShouldBindJSON(&body); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}

		hotel.Name = body.Name
		hotel.Address = body.Address
		hotel.City = body.City
		hotel.Description = body.Description
		hotel.StarRating = body.StarRating
		hotel.ImageURL = body.ImageURL

		if err := db.Save(&hotel).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update hotel"})
			return
		}

		invalidateHotelCache()
		c.JSON(http.StatusOK, gin.H{"hotel": hotel})
	}
}

// Admin: delete hotel
func AdminDeleteHotel(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.Param("id")

		if err := db.Delete(&models.Hotel{}, id).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete hotel"})
			return
		}

		invalidateHotelCache()
		c.JSON(http.StatusOK, gin.H{"message": "Hotel deleted"})
	}
}
