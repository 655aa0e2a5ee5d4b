package routes

import (
	"context"
	"net/http"

	"betravel/config"
	"betravel/controllers"
	middlewares "betravel/middleware"
	"betravel/services"
	"betravel/services/logger"

	"github.com/gin-gonic/gin"
	"github.com/olahol/melody"

	"github.com/cloudinary/cloudinary-go/v2/api/uploader"
)

func SetupRoutes(router *gin.Engine, app *config.App, tripService *services.TripService, m *melody.Melody) {
	router.Use(middlewares.ErrorHandler())

	userController := controllers.NewUserController(app.DB, app.Redis)
	authController := controllers.NewAuthController(app.DB)
	tripController := controllers.NewTripController(app.DB, app.Redis)
	bookingController := controllers.NewBookingController(app.DB, app.Redis, m)
	reviewController := controllers.NewReviewController(app.DB, app.Redis)
	dashboardController := controllers.NewDashboardController(app.DB)

	editSessionService := services.NewEditSessionService(
		services.NewRedisEditSessionStore(services.NewCache(app.Redis)),
		logger.NewDefaultLogger(logger.InfoLevel),
	)
	editSessionController := controllers.NewEditSessionController(app.DB, editSessionService, m)

	v1 := router.Group("/api/v1")

	v1.GET("/users", middlewares.AuthMiddleware(1), userController.GetUsers)
	v1.GET("/users/:id", userController.GetUserByID)
	v1.PUT("/users", middlewares.AuthMiddleware(0, 1, 2), userController.UpdateUser)
	v1.PUT("/userStatus", middlewares.AuthMiddleware(1), userController.ChangeUserStatus)
	v1.GET("/profile", middlewares.AuthMiddleware(0, 1, 2), userController.GetProfile)

	v1.GET("/verify-email", authController.VerifyEmail)
	v1.POST("/auth/login", authController.Login)
	v1.DELETE("/auth/logout", authController.Logout)
	v1.POST("/auth/register", authController.RegisterUser)
	v1.POST("/resendCode", authController.ResendVerificationCode)
	v1.POST("/forgetPassword", authController.ForgetPassword)
	v1.POST("/newPassword", authController.ResetPassword)
	v1.POST("/verifyCode", authController.VerifyCode)
	v1.POST("/auth/google", authController.AuthGoogle)

	v1.GET("/trip", tripController.GetAllTripsForUser)
	v1.GET("/trip/:id", tripController.GetTripDetail)
	v1.GET("/organizer/:id", tripController.GetTripsByOrganizer)
	v1.GET("/tripManage", middlewares.AuthMiddleware(1, 2), tripController.GetAllTrips)
	v1.POST("/trip", middlewares.AuthMiddleware(1, 2), tripController.CreateTrip)
	v1.PUT("/tripUpdate", middlewares.AuthMiddleware(1, 2), tripController.UpdateTrip)
	v1.PUT("/tripStatus", middlewares.AuthMiddleware(1, 2), tripController.ChangeTripStatus)
	v1.POST("/tripStep", middlewares.AuthMiddleware(1, 2), tripController.ValidateTripStep)

	v1.POST("/editSession", middlewares.AuthMiddleware(1, 2), editSessionController.StartEditSession)
	v1.GET("/editSession/:id", middlewares.AuthMiddleware(1, 2), editSessionController.GetEditSession)
	v1.PUT("/editSession/:id/dates", middlewares.AuthMiddleware(1, 2), editSessionController.ProposeDates)
	v1.PUT("/editSession/:id/confirm", middlewares.AuthMiddleware(1, 2), editSessionController.ConfirmDates)
	v1.PUT("/editSession/:id/cancel", middlewares.AuthMiddleware(1, 2), editSessionController.CancelDates)
	v1.PUT("/editSession/:id/itinerary", middlewares.AuthMiddleware(1, 2), editSessionController.UpdateItinerary)
	v1.DELETE("/editSession/:id", middlewares.AuthMiddleware(1, 2), editSessionController.CloseEditSession)

	// Khách chưa đăng nhập vẫn đặt được, có token thì gắn vào tài khoản,
	// không thì X-Session-ID nhóm các đặt chỗ của cùng một khách
	v1.POST("/booking", middlewares.GuestSessionMiddleware(), middlewares.OptionalAuthMiddleware(), bookingController.CreateBooking)
	v1.GET("/booking", middlewares.AuthMiddleware(1, 2), bookingController.GetBookings)
	v1.GET("/booking/:id", middlewares.AuthMiddleware(0, 1, 2), bookingController.GetBookingDetail)
	v1.PUT("/bookingUpdate", middlewares.AuthMiddleware(0, 1, 2), bookingController.ChangeBookingStatus)
	v1.GET("/bookingHistory", middlewares.AuthMiddleware(0, 1, 2), bookingController.GetBookingsByUserId)

	v1.GET("/reviews", reviewController.GetAllReviews)
	v1.POST("/reviews", middlewares.AuthMiddleware(0), reviewController.CreateReview)
	v1.GET("/reviews/:id", reviewController.GetReviewDetail)
	v1.PUT("/reviewsUpdate", middlewares.AuthMiddleware(0), reviewController.UpdateReview)

	v1.GET("/dashboard/organizer", middlewares.AuthMiddleware(1, 2), dashboardController.GetOrganizerDashboard)
	v1.GET("/dashboard/customer", middlewares.AuthMiddleware(0), dashboardController.GetCustomerDashboard)

	//thông báo
	v1.POST("/notify", middlewares.AuthMiddleware(1), tripService.NotifyAll)
	v1.POST("/notify/:userID", middlewares.AuthMiddleware(1), tripService.NotifyUser)

	v1.POST("/img/multi-upload", func(c *gin.Context) {
		form, er := c.MultipartForm()
		if er != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Không có file"})
			return
		}
		files := form.File["files"]
		if len(files) == 0 {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Không có file"})
			return
		}

		// Upload tuần tự, trả kết quả theo từng vị trí để client biết file nào lỗi
		var results []gin.H
		for i, file := range files {
			src, err := file.Open()
			if err != nil {
				results = append(results, gin.H{"index": i, "error": "Lỗi khi mở file"})
				continue
			}

			ctx := context.Background()
			resp, err := app.Cloudinary.Upload.Upload(ctx, src, uploader.UploadParams{Folder: "uploads"})
			src.Close()
			if err != nil {
				results = append(results, gin.H{"index": i, "error": "Upload thất bại"})
				continue
			}
			results = append(results, gin.H{"index": i, "url": resp.SecureURL})
		}

		c.JSON(http.StatusOK, gin.H{
			"message": "Upload thành công",
			"results": results,
		})
	})

	v1.POST("/img/upload", func(c *gin.Context) {
		file, err := c.FormFile("file")
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Không có file"})
			return
		}

		src, err := file.Open()
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Lỗi khi mở file"})
			return
		}
		defer src.Close()

		ctx := context.Background()
		resp, err := app.Cloudinary.Upload.Upload(ctx, src, uploader.UploadParams{Folder: "avatars"})
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Upload thất bại"})
			return
		}

		c.JSON(http.StatusOK, gin.H{
			"message": "Upload avatar thành công",
			"url":     resp.SecureURL,
		})
	})
}
