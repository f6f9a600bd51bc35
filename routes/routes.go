package routes

import (
	"github.com/Vinh124567/backend-hotel-booking-sub000/controllers"
	"github.com/Vinh124567/backend-hotel-booking-sub000/middlewares"
	"github.com/Vinh124567/backend-hotel-booking-sub000/services"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type Deps struct {
	DB           *gorm.DB
	Availability *services.AvailabilityService
	Bookings     *services.BookingService
	Payments     *services.PaymentService
}

func SetupRouter(d Deps) *gin.Engine {
	r := gin.Default()

	analytics := &controllers.AnalyticsController{DB: d.DB}

	// Public API Routes

	api := r.Group("/api")
	{
		api.POST("/signup", controllers.SignupHandler(d.DB))
		api.POST("/login", controllers.LoginHandler(d.DB))
		api.POST("/refresh", controllers.RefreshTokenHandler(d.DB))
		api.POST("/logout", controllers.LogoutHandler(d.DB))

		api.GET("/hotels", controllers.GetHotels(d.DB))
		api.GET("/hotels/:id", controllers.GetHotelDetails(d.DB))
		api.GET("/hotels/:id/room-types", controllers.GetHotelRoomTypes(d.DB))
		api.GET("/hotels/:id/reviews", controllers.GetHotelReviews(d.DB))
		api.GET("/room-types/:id/availability", controllers.CheckAvailability(d.Availability))

		// Gateway callback; verified by signature, not by session.
		api.POST("/payments/momo/ipn", controllers.MoMoIPNHandler(d.Payments))
	}

	// Protected User Routes (Require Login)

	user := r.Group("/api/user").Use(middlewares.AuthMiddleware())
	{
		user.GET("/profile", controllers.GetProfile(d.DB))
		user.PUT("/profile", controllers.UpdateProfile(d.DB))

		user.POST("/bookings", controllers.CreateBooking(d.DB, d.Bookings))
		user.GET("/bookings", controllers.GetUserBookings(d.DB))
		user.GET("/bookings/:id", controllers.GetBookingDetailsUser(d.DB))
		user.POST("/bookings/:id/cancel", controllers.CancelBooking(d.Bookings))

		user.POST("/bookings/:id/payments", controllers.InitiatePayment(d.Payments))
		user.GET("/payments", controllers.GetUserPayments(d.DB))
		user.GET("/payments/:id/status", controllers.GetPaymentStatus(d.Payments))

		user.POST("/reviews", controllers.CreateReview(d.DB))
		user.DELETE("/reviews/:id", controllers.DeleteReview(d.DB))

		user.POST("/favorites", controllers.AddFavorite(d.DB))
		user.GET("/favorites", controllers.GetFavorites(d.DB))
		user.DELETE("/favorites/:id", controllers.RemoveFavorite(d.DB))
	}

	// Admin Routes (Require Admin Access)

	admin := r.Group("/api/admin")
	admin.Use(middlewares.AuthMiddleware(), middlewares.AdminOnly())
	{
		admin.POST("/hotels", controllers.AdminAddHotel(d.DB))
		admin.PUT("/hotels/:id", controllers.AdminUpdateHotel(d.DB))
		admin.DELETE("/hotels/:id", controllers.AdminDeleteHotel(d.DB))

		admin.POST("/room-types", controllers.AdminAddRoomType(d.DB))
		admin.PUT("/room-types/:id", controllers.AdminUpdateRoomType(d.DB))
		admin.POST("/rooms", controllers.AdminAddRoom(d.DB))
		admin.DELETE("/rooms/:id", controllers.AdminDeleteRoom(d.DB))

		admin.GET("/bookings", controllers.GetAllBookings(d.DB))
		admin.POST("/bookings/:id/check-in", controllers.AdminCheckIn(d.Bookings))
		admin.POST("/bookings/:id/check-out", controllers.AdminCheckOut(d.Bookings))
		admin.POST("/bookings/:id/no-show", controllers.AdminMarkNoShow(d.Bookings))

		admin.GET("/notifications", controllers.GetNotifications(d.DB))
		admin.PUT("/notifications/:id/read", controllers.MarkNotificationRead(d.DB))

		admin.GET("/users", controllers.GetAllUsers(d.DB))
		admin.PUT("/users/:id/block", controllers.BlockUser(d.DB))

		admin.GET("/dashboard", analytics.GetDashboardStats)
		admin.GET("/analytics/revenue", analytics.GetDailyRevenue)
		admin.GET("/analytics/bookings-per-hotel", analytics.GetBookingsPerHotel)
	}

	// Fallback for Unknown Routes

	r.NoRoute(func(c *gin.Context) {
		c.JSON(404, gin.H{"error": "page not found"})
	})

	return r
}
