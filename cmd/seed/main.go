package main

import (
	"log"
	"os"
	"time"

	"golang.org/x/crypto/bcrypt"

	"realestate/internal/database"
	"realestate/internal/domain/auth"
	"realestate/internal/domain/property"
)

func main() {
	dsn := os.Getenv("DATABASE_URL")
	if dsn == "" {
		dsn = "realestate.db"
	}

	db, err := database.Connect(dsn)
	if err != nil {
		log.Fatal("DB connection failed:", err)
	}

	log.Println("Running AutoMigrate...")
	if err := database.Migrate(db, &auth.User{}, &property.Property{}, &property.Image{}); err != nil {
		log.Fatal("AutoMigrate failed:", err)
	}

	// Cleanup old data (children first to avoid foreign key errors)
	log.Println("Cleaning old data...")
	db.Exec("DELETE FROM images")
	db.Exec("DELETE FROM properties")
	db.Exec("DELETE FROM users")

	// ================== USERS ==================
	log.Println("Creating users...")

	agentHash, _ := bcrypt.GenerateFromPassword([]byte("agent123"), bcrypt.DefaultCost)
	agent := auth.User{
		Email:        "agent@realestate.local",
		PasswordHash: string(agentHash),
		Role:         auth.RoleAgent,
		Name:         "Demo Agent",
		CreatedAt:    time.Now(),
	}
	if err := db.Create(&agent).Error; err != nil {
		log.Fatal("failed to create agent:", err)
	}

	buyerHash, _ := bcrypt.GenerateFromPassword([]byte("buyer123"), bcrypt.DefaultCost)
	buyer := auth.User{
		Email:        "buyer@realestate.local",
		PasswordHash: string(buyerHash),
		Role:         auth.RoleBuyer,
		Name:         "Demo Buyer",
		CreatedAt:    time.Now(),
	}
	if err := db.Create(&buyer).Error; err != nil {
		log.Fatal("failed to create buyer:", err)
	}

	// ================== PROPERTIES ==================
	log.Println("Creating properties...")

	now := time.Now()
	listings := []property.Property{
		{
			UserID: agent.ID, Title: "Sunny Family House", Description: "Detached house with a garden and garage.",
			Price: 450000, Bedrooms: 4, Bathrooms: 2, SquareMeter: 180,
			Address: "12 Oak Lane", City: "Austin", State: "TX", Zip: "73301",
			Type: property.TypeHouse, Status: property.StatusForSale,
			CreatedAt: now.Add(-72 * time.Hour),
		},
		{
			UserID: agent.ID, Title: "Downtown Apartment", Description: "Two-bedroom apartment near the center.",
			Price: 200000, Bedrooms: 2, Bathrooms: 1, SquareMeter: 75,
			Address: "88 Main St", City: "Denver", State: "CO", Zip: "80202",
			Type: property.TypeApartment, Status: property.StatusForSale,
			CreatedAt: now.Add(-48 * time.Hour),
		},
		{
			UserID: agent.ID, Title: "Seaside Villa", Description: "Villa with a pool and ocean view.",
			Price: 1250000, Bedrooms: 5, Bathrooms: 4, SquareMeter: 320,
			Address: "3 Shore Rd", City: "Miami", State: "FL", Zip: "33101",
			Type: property.TypeVilla, Status: property.StatusForRent,
			CreatedAt: now.Add(-24 * time.Hour),
		},
	}

	for i := range listings {
		if err := db.Create(&listings[i]).Error; err != nil {
			log.Fatal("failed to create property:", err)
		}
	}

	log.Printf("Seed complete: %d users, %d properties", 2, len(listings))
}
