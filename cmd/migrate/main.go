package main

import (
	"log"

	"github.com/joho/godotenv"
	"github.com/unishare/api/database"
)

// Applies the raw SQL schema without going through GORM auto-migration.
// Useful for provisioning a database before the API ever boots.
func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("Warning: .env file not found, using system environment variables")
	}

	store, err := database.Start()
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	defer store.Close()

	if err := store.InitTables(); err != nil {
		log.Fatalf("Failed to create tables: %v", err)
	}

	log.Println("Schema is up to date")
}
