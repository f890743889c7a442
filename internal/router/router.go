package router

import (
	"net/http"

	"github.com/wb-go/wbf/ginext"
)

type Handler interface {
	SignUp(c *ginext.Context)
	SignIn(c *ginext.Context)
	SignInWithGoogle(c *ginext.Context)
	SignOut(c *ginext.Context)
	Session(c *ginext.Context)
	UpdateProfile(c *ginext.Context)
	ListServices(c *ginext.Context)
	GetService(c *ginext.Context)
	CreateBooking(c *ginext.Context)
	ListBookings(c *ginext.Context)
	BookingSummary(c *ginext.Context)
	GetBooking(c *ginext.Context)
	CancelBooking(c *ginext.Context)
	Pay(c *ginext.Context)
	ListPayments(c *ginext.Context)
	PaymentSummary(c *ginext.Context)
}

// InitRouter wires the public surface and the guarded group. authGuard gates
// everything an anonymous visitor must not reach.
func InitRouter(mode string, h Handler, authGuard ginext.HandlerFunc, mw ...ginext.HandlerFunc) *ginext.Engine {
	router := ginext.New(mode)
	router.Use(mw...)

	api := router.Group("/api")
	{
		auth := api.Group("/auth")
		{
			auth.POST("/register", h.SignUp)
			auth.POST("/login", h.SignIn)
			auth.POST("/google", h.SignInWithGoogle)
			auth.POST("/logout", h.SignOut)
			auth.GET("/me", h.Session)
		}

		// The catalog is browsable before signing in.
		api.GET("/services", h.ListServices)
		api.GET("/services/:id", h.GetService)

		private := api.Group("")
		private.Use(authGuard)
		{
			private.PUT("/auth/profile", h.UpdateProfile)

			private.POST("/bookings", h.CreateBooking)
			private.GET("/bookings", h.ListBookings)
			private.GET("/bookings/summary", h.BookingSummary)
			private.GET("/bookings/:id", h.GetBooking)
			private.DELETE("/bookings/:id", h.CancelBooking)
			private.POST("/bookings/:id/pay", h.Pay)

			private.GET("/payments", h.ListPayments)
			private.GET("/payments/summary", h.PaymentSummary)
		}
	}

	router.GET("/health", func(c *ginext.Context) {
		c.JSON(http.StatusOK, ginext.H{"status": "ok"})
	})

	return router
}
