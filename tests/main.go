// Seeds a local database with demo accounts, listings and availability
// windows for manual testing. Wipes the relevant collections first; never
// point it at a real deployment.
package main

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
	"golang.org/x/crypto/bcrypt"

	"tutorhive/config"
	"tutorhive/database"
	"tutorhive/models"
)

func main() {
	config.LoadConfig()
	database.InitDB()
	db := database.DB()

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	for _, name := range []string{"users", "listings", "availability_windows", "bookings"} {
		if _, err := db.Collection(name).DeleteMany(ctx, bson.M{}); err != nil {
			log.Fatalf("Failed to clear %s: %v", name, err)
		}
	}

	hash, err := bcrypt.GenerateFromPassword([]byte("password123"), bcrypt.DefaultCost)
	if err != nil {
		log.Fatalf("Failed to hash password: %v", err)
	}

	now := time.Now()
	seedUsers := []models.User{
		{ID: uuid.New().String(), Username: "alice_tutor", Email: "alice@example.com", FirstName: "Alice", LastName: "Kim", RoleLevel: models.RoleTutor},
		{ID: uuid.New().String(), Username: "bob_mentor", Email: "bob@example.com", FirstName: "Bob", LastName: "Omondi", RoleLevel: models.RoleMentor},
		{ID: uuid.New().String(), Username: "carol_student", Email: "carol@example.com", FirstName: "Carol", LastName: "Mwangi", RoleLevel: models.RoleStudent},
	}
	for i := range seedUsers {
		seedUsers[i].PasswordHash = string(hash)
		seedUsers[i].CreatedAt = now
		seedUsers[i].UpdatedAt = now
		if _, err := db.Collection("users").InsertOne(ctx, seedUsers[i]); err != nil {
			log.Fatalf("Failed to insert user %s: %v", seedUsers[i].Username, err)
		}
	}

	listings := []models.Listing{
		{ID: uuid.New().String(), ProviderID: seedUsers[0].ID, Type: models.ListingTypeTutor, Title: "Calculus tutoring", Description: "Limits through integrals, weekly sessions.", Price: 30, RateUnit: models.RateUnitHourly, Subject: "Mathematics", Active: true, CreatedAt: now},
		{ID: uuid.New().String(), ProviderID: seedUsers[1].ID, Type: models.ListingTypeMentor, Title: "Career mentoring for new engineers", Description: "Resume reviews and interview prep.", Price: 60, RateUnit: models.RateUnitHourly, Category: "Engineering", Active: true, CreatedAt: now},
	}
	for _, l := range listings {
		if _, err := db.Collection("listings").InsertOne(ctx, l); err != nil {
			log.Fatalf("Failed to insert listing %q: %v", l.Title, err)
		}
	}

	// Alice teaches weekday mornings; Bob relies on the default open hours.
	for day := 0; day < 5; day++ {
		w := models.AvailabilityWindow{
			ID:         uuid.New().String(),
			ProviderID: seedUsers[0].ID,
			DayOfWeek:  day,
			Start:      9 * 60,
			End:        13 * 60,
			Active:     true,
			CreatedAt:  now,
		}
		if _, err := db.Collection("availability_windows").InsertOne(ctx, w); err != nil {
			log.Fatalf("Failed to insert window: %v", err)
		}
	}

	fmt.Println("Seeded demo data:")
	for _, u := range seedUsers {
		fmt.Printf("  %-14s %-20s (%s)\n", u.Username, u.Email, u.RoleLevel.String())
	}
	fmt.Println("All passwords: password123")
}
