package api

import (
	"log"
	stdhttp "net/http"
	"time"

	intconfig "railbook/internal/config"
	h "railbook/internal/http/handlers"
	"railbook/internal/http/middleware"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

func NewRouter(env intconfig.Env) *gin.Engine {
	r := gin.New()
	r.Use(middleware.RequestID(), middleware.Logger(), gin.Recovery(), corsMiddleware(env))

	if err := r.SetTrustedProxies(nil); err != nil {
		log.Printf("warning: failed to set trusted proxies: %v", err)
	}

	r.NoRoute(func(c *gin.Context) {
		c.JSON(stdhttp.StatusNotFound, gin.H{
			"error":  "route not found",
			"path":   c.Request.URL.Path,
			"method": c.Request.Method,
		})
	})

	api := r.Group("/api")
	{
		api.GET("/health", h.Health)
		api.GET("/db-check", h.DBCheck)

		auth := api.Group("/auth")
		auth.POST("/login", h.Login)
		auth.POST("/register", h.Register)

		bookings := api.Group("/bookings")
		bookings.GET("", h.ListBookings)
		bookings.GET("/:id", h.GetBooking)
		bookings.GET("/:id/records", h.ListRecordsForBooking)
		bookings.GET("/:id/receipt", h.BookingReceipt)
		bookings.GET("/:id/refund-voucher", h.RefundVoucher)
		bookings.Use(middleware.RequireAuth())
		bookings.POST("", h.CreateBooking)
		bookings.PUT("/:id", h.UpdateBooking)
		bookings.PATCH("/:id", h.UpdateBooking)
		bookings.PATCH("/:id/status", h.ChangeBookingStatus)
		bookings.POST("/:id/refund", h.AttachBookingRefund)
		bookings.DELETE("/:id", h.DeleteBooking)

		refunds := api.Group("/refunds")
		refunds.GET("/pending", h.PendingRefunds)

		accounts := api.Group("/accounts")
		accounts.GET("", h.ListAccounts)
		accounts.GET("/usage", h.AccountUsage)
		accounts.GET("/:username", h.GetAccount)
		accounts.Use(middleware.RequireAuth())
		accounts.POST("", h.CreateAccount)
		accounts.PATCH("/:username/wallet", h.UpdateAccountWallet)
		accounts.DELETE("/:username", h.DeleteAccount)

		operators := api.Group("/handlers")
		operators.GET("", h.ListHandlers)
		operators.GET("/usage", h.HandlerUsage)
		operators.Use(middleware.RequireAuth())
		operators.POST("", h.CreateHandler)
		operators.DELETE("/:name", h.DeleteHandler)

		records := api.Group("/records")
		records.GET("", h.ListRecords)
		records.Use(middleware.RequireAuth())
		records.POST("", h.CreateRecord)
	}

	return r
}

func corsMiddleware(env intconfig.Env) gin.HandlerFunc {
	cfg := cors.Config{
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "Authorization", "X-Request-ID"},
		ExposeHeaders:    []string{"Content-Disposition", "X-Request-ID"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}
	if len(env.CORSOrigins) > 0 {
		cfg.AllowOrigins = env.CORSOrigins
	} else {
		cfg.AllowAllOrigins = true
		cfg.AllowCredentials = false
	}
	return cors.New(cfg)
}
