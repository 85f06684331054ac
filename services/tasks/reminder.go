// File: services/tasks/reminder.go
package tasks

import (
	"encoding/json"

	"github.com/hibiken/asynq"
)

// TypeBookingReminder identifies a booking reminder task on the queue.
const TypeBookingReminder = "booking:reminder"

// BookingReminderPayload carries everything the worker needs to announce an
// upcoming session without a database round trip.
type BookingReminderPayload struct {
	BookingID  string `json:"bookingId"`
	ProviderID string `json:"providerId"`
	StudentID  string `json:"studentId"`
	Date       string `json:"date"`
	StartTime  string `json:"startTime"`
}

// NewBookingReminderTask builds a reminder task for a confirmed booking.
func NewBookingReminderTask(payload BookingReminderPayload) (*asynq.Task, error) {
	data, err := json.Marshal(payload)
	if err != nil {
		return nil, err
	}
	return asynq.NewTask(TypeBookingReminder, data), nil
}
