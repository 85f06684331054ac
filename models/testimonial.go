package models

import "time"

// Testimonial is a platform testimonial shown on the about page. One per user.
type Testimonial struct {
	ID         string    `bson:"id" json:"id"`
	UserID     string    `bson:"userId" json:"userId"`
	Rating     int       `bson:"rating" json:"rating"` // 1..5
	Text       string    `bson:"text" json:"text"`
	RoleAtTime Role      `bson:"roleAtTime" json:"roleAtTime"`
	Approved   bool      `bson:"approved" json:"approved"`
	CreatedAt  time.Time `bson:"createdAt" json:"createdAt"`
	UpdatedAt  time.Time `bson:"updatedAt" json:"updatedAt"`
}

// ContactMessage is a message submitted through the contact form.
type ContactMessage struct {
	ID        string    `bson:"id" json:"id"`
	Name      string    `bson:"name" json:"name" binding:"required"`
	Email     string    `bson:"email" json:"email" binding:"required,email"`
	Subject   string    `bson:"subject,omitempty" json:"subject,omitempty"`
	Body      string    `bson:"body" json:"body" binding:"required"`
	CreatedAt time.Time `bson:"createdAt" json:"createdAt"`
}
