// File: routes/routes.go
package routes

import (
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"golang.org/x/time/rate"

	"tutorhive/config"
	userRepo "tutorhive/database/repository/user"
	"tutorhive/handlers"
	"tutorhive/middleware"
	"tutorhive/utils"
)

// SetupRoutes wires every endpoint onto the router. Public routes carry an
// optional identity; everything mutating state sits behind AuthMiddleware.
func SetupRoutes(router *gin.Engine, h *handlers.HandlerBundle, users userRepo.UserRepository) {
	router.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: false,
		MaxAge:           12 * time.Hour,
	}))
	router.Use(utils.ErrorHandler())

	perMin := config.AppConfig.MaxRequestsPerMin
	if perMin <= 0 {
		perMin = 100
	}
	router.Use(middleware.RateLimitMiddleware(rate.Limit(float64(perMin)/60.0), perMin))

	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	api := router.Group("/api")

	// Public surface.
	auth := api.Group("/auth")
	{
		auth.POST("/register", h.Register)
		auth.POST("/login", h.Login)
	}

	public := api.Group("")
	public.Use(middleware.OptionalAuth(users))
	{
		public.GET("/listings", h.BrowseListings)
		public.GET("/listings/:id", h.GetListing)
		public.GET("/listings/:id/slots", h.GetListingSlots)
		public.GET("/jobs", h.BrowseJobs)
		public.GET("/jobs/:id", h.GetJob)
		public.GET("/users/:id", h.PublicProfile)
		public.GET("/users/:id/reviews", h.UserReviews)
		public.GET("/plans", h.ListPlans)
		public.GET("/testimonials", h.ListTestimonials)
		public.GET("/stats", h.PlatformStats)
		public.POST("/contact", h.Contact)
	}

	// Authenticated surface.
	authed := api.Group("")
	authed.Use(middleware.AuthMiddleware(users))
	{
		authed.GET("/me", h.Me)
		authed.PATCH("/me", h.UpdateProfile)
		authed.GET("/me/listings", h.MyListings)
		authed.GET("/me/bookings", h.ListMyBookings)
		authed.GET("/me/provider-bookings", h.ListProviderBookings)
		authed.GET("/me/jobs", h.MyJobs)
		authed.GET("/me/offers", h.MyOffers)
		authed.GET("/me/plan", h.CurrentPlan)
		authed.GET("/me/testimonial", h.MyTestimonial)
		authed.GET("/me/reviews", h.MyGivenReviews)

		authed.POST("/listings", middleware.RequireCapability(middleware.CapPostTutorListing), h.CreateListing)
		authed.DELETE("/listings/:id", h.DeleteListing)

		authed.POST("/bookings", h.CreateBooking)
		authed.POST("/bookings/:id/confirm", h.ConfirmBooking)
		authed.POST("/bookings/:id/cancel", h.CancelBooking)
		authed.POST("/bookings/:id/complete", h.CompleteBooking)

		authed.POST("/availability", h.AddAvailability)
		authed.GET("/availability", h.ListAvailability)
		authed.POST("/availability/:id/deactivate", h.DeactivateAvailability)
		authed.DELETE("/availability/:id", h.DeleteAvailability)

		authed.POST("/jobs", h.PostJob)
		authed.DELETE("/jobs/:id", h.DeleteJob)
		authed.POST("/jobs/:id/close", h.CloseJob)
		authed.POST("/jobs/:id/offers", middleware.RequireCapability(middleware.CapTakeJobs), h.SubmitOffer)
		authed.POST("/jobs/:id/offers/:proposalId/accept", h.AcceptOffer)

		authed.POST("/plans/:id/subscribe", h.ChangePlan)
		authed.POST("/testimonials", h.SubmitTestimonial)
		authed.POST("/reviews", h.SubmitReview)
	}
}
