// File: handlers/bundle.go
package handlers

import (
	"tutorhive/services/job"
	"tutorhive/services/listing"
	"tutorhive/services/review"
	"tutorhive/services/scheduling"
	"tutorhive/services/subscription"
	"tutorhive/services/testimonial"
	"tutorhive/services/user"
)

// HandlerBundle groups every service the HTTP layer depends on so route
// registration takes a single argument.
type HandlerBundle struct {
	Scheduler     scheduling.Service
	Users         user.Service
	Listings      listing.Service
	Jobs          job.Service
	Subscriptions subscription.Service
	Testimonials  testimonial.Service
	Reviews       review.Service
}
