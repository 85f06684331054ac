// File: main.go
package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"tutorhive/config"
	"tutorhive/cron"
	"tutorhive/database"
	availabilityRepo "tutorhive/database/repository/availability"
	bookingRepo "tutorhive/database/repository/booking"
	contactRepo "tutorhive/database/repository/contact"
	jobRepo "tutorhive/database/repository/job"
	listingRepo "tutorhive/database/repository/listing"
	reviewRepo "tutorhive/database/repository/review"
	subscriptionRepo "tutorhive/database/repository/subscription"
	testimonialRepo "tutorhive/database/repository/testimonial"
	userRepo "tutorhive/database/repository/user"
	"tutorhive/handlers"
	"tutorhive/routes"
	"tutorhive/services/job"
	"tutorhive/services/listing"
	"tutorhive/services/review"
	"tutorhive/services/scheduling"
	"tutorhive/services/subscription"
	"tutorhive/services/testimonial"
	"tutorhive/services/user"
	"tutorhive/utils"
)

func main() {
	config.LoadConfig()
	utils.InitializeLogger()
	logger := utils.GetLogger()
	defer logger.Sync()

	database.InitDB()
	utils.InitCache()

	// Repositories.
	users := userRepo.NewMongoUserRepo()
	listings := listingRepo.NewMongoListingRepo()
	availability := availabilityRepo.NewMongoAvailabilityRepo()
	bookings := bookingRepo.NewMongoBookingRepo()
	jobs := jobRepo.NewMongoJobRepo()
	subscriptions := subscriptionRepo.NewMongoSubscriptionRepo()
	testimonials := testimonialRepo.NewMongoTestimonialRepo()
	reviews := reviewRepo.NewMongoReviewRepo()
	contacts := contactRepo.NewMongoContactRepo()

	ensureIndexes(logger,
		users, listings, availability, bookings, jobs, subscriptions, testimonials, reviews, contacts)

	// Background queue.
	reminderClient := cron.NewReminderClient()
	defer reminderClient.Close()

	workerCtx, stopWorker := context.WithCancel(context.Background())
	defer stopWorker()
	go cron.StartReminderWorker(workerCtx)

	// Services.
	scheduler, err := scheduling.NewDefaultSchedulingEngine(
		availability, bookings, listings, utils.GetCacheClient(), reminderClient)
	if err != nil {
		logger.Fatal("Failed to build scheduling engine", zap.Error(err))
	}

	subscriptionSvc := subscription.NewDefaultSubscriptionService(subscriptions, users)
	seedCtx, cancelSeed := context.WithTimeout(context.Background(), 10*time.Second)
	if err := subscriptionSvc.SeedDefaultPlans(seedCtx); err != nil {
		logger.Fatal("Failed to seed subscription plans", zap.Error(err))
	}
	cancelSeed()

	bundle := &handlers.HandlerBundle{
		Scheduler:     scheduler,
		Users:         user.NewDefaultUserService(users, listings),
		Listings:      listing.NewDefaultListingService(listings, users, subscriptions),
		Jobs:          job.NewDefaultJobService(jobs, users),
		Subscriptions: subscriptionSvc,
		Testimonials:  testimonial.NewDefaultTestimonialService(testimonials, users, contacts, jobs),
		Reviews:       review.NewDefaultReviewService(reviews, bookings, jobs),
	}

	if config.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}
	router := gin.New()
	router.Use(gin.Recovery())
	routes.SetupRoutes(router, bundle, users)

	srv := &http.Server{
		Addr:    ":" + config.AppConfig.AppPort,
		Handler: router,
	}

	go func() {
		logger.Info("Server listening", zap.String("port", config.AppConfig.AppPort))
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Fatal("Server failed", zap.Error(err))
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Info("Shutting down")

	stopWorker()
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error("Forced shutdown", zap.Error(err))
	}
	if err := database.MongoClient.Disconnect(shutdownCtx); err != nil {
		logger.Error("MongoDB disconnect failed", zap.Error(err))
	}
	logger.Info("Server exited")
}

// ensureIndexes creates collection indexes on startup. Repos expose their
// index setup behind an unexported struct, so probe for it.
func ensureIndexes(logger *zap.Logger, repos ...interface{}) {
	type indexer interface {
		EnsureIndexes() error
	}
	for _, r := range repos {
		if ix, ok := r.(indexer); ok {
			if err := ix.EnsureIndexes(); err != nil {
				logger.Fatal("Failed to create indexes", zap.Error(err))
			}
		}
	}
}
