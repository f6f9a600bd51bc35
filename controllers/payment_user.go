package controllers

import (
	"net/http"

	"github.com/Vinh124567/backend-hotel-booking-sub000/models"
	"github.com/Vinh124567/backend-hotel-booking-sub000/services"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// POST /api/user/bookings/:id/payments
func InitiatePayment(payments *services.PaymentService) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, ok := currentUserID(c)
		if !ok {
			return
		}

		var bookingID uint
		if err := bindIDParam(c, &bookingID); err != nil {
			return
		}

		var req struct {
			Type string `json:"type" binding:"required"`
		}
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid payment data"})
			return
		}

		payment, err := payments.CreateIntent(userID, bookingID, models.PaymentType(req.Type))
		if err != nil {
			respondServiceError(c, err)
			return
		}

		c.JSON(http.StatusOK, gin.H{
			"message":     "Payment initiated",
			"payment_id":  payment.ID,
			"order_id":    payment.OrderID,
			"amount":      payment.Amount,
			"pay_url":     payment.PayURL,
			"qr_code_url": payment.QRCodeURL,
		})
	}
}

// POST /api/payments/momo/ipn. Gateway callback; unauthenticated but
// HMAC-verified inside the service.
func MoMoIPNHandler(payments *services.PaymentService) gin.HandlerFunc {
	return func(c *gin.Context) {
		var ipn services.IPNRequest
		if err := c.ShouldBindJSON(&ipn); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid IPN body"})
			return
		}

		if err := payments.HandleIPN(ipn); err != nil {
			respondServiceError(c, err)
			return
		}

		// MoMo expects 204 when the IPN was accepted.
		c.Status(http.StatusNoContent)
	}
}

// GET /api/user/payments/:id/status
func GetPaymentStatus(payments *services.PaymentService) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, ok := currentUserID(c)
		if !ok {
			return
		}

		var paymentID uint
		if err := bindIDParam(c, &paymentID); err != nil {
			return
		}

		payment, err := payments.SyncStatus(userID, paymentID)
		if err != nil {
			respondServiceError(c, err)
			return
		}

		c.JSON(http.StatusOK, gin.H{
			"payment_id": payment.ID,
			"order_id":   payment.OrderID,
			"status":     payment.Status,
		})
	}
}

// GET /api/user/payments
func GetUserPayments(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, ok := currentUserID(c)
		if !ok {
			return
		}

		var payments []models.Payment
		if err := db.Joins("JOIN bookings ON bookings.id = payments.booking_id").
			Where("bookings.user_id = ?", userID).
			Order("payments.created_at desc").
			Find(&payments).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch payments"})
			return
		}

		c.JSON(http.StatusOK, payments)
	}
}
