package main

import (
	"flag"
	"fmt"
	"log"

	"github.com/joho/godotenv"
	_ "github.com/lib/pq"
	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"card-admin.backend/internal/config"
	"card-admin.backend/internal/infrastructure/models"
	"card-admin.backend/pkg/crypto"
)

// Offline recovery tool: resets an operator password directly against
// storage, bypassing the login path entirely.
func main() {
	username := flag.String("username", "admin", "operator username")
	password := flag.String("password", "", "new password")
	flag.Parse()

	if *password == "" {
		log.Fatal("usage: fix-admin-password -username <name> -password <new password>")
	}

	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using environment variables")
	}
	cfg := config.Load()

	var db *gorm.DB
	var err error
	if cfg.Database.Driver == "postgres" {
		db, err = gorm.Open(postgres.Open(cfg.Database.URL()), &gorm.Config{})
	} else {
		db, err = gorm.Open(sqlite.Open(cfg.Database.SQLitePath), &gorm.Config{})
	}
	if err != nil {
		log.Fatalf("failed to open database: %v", err)
	}

	hash, err := crypto.HashPassword(*password)
	if err != nil {
		log.Fatalf("failed to hash password: %v", err)
	}

	result := db.Model(&models.User{}).Where("username = ?", *username).Update("password_hash", hash)
	if result.Error != nil {
		log.Fatalf("failed to update password: %v", result.Error)
	}
	if result.RowsAffected == 0 {
		log.Fatalf("no operator named %q", *username)
	}

	fmt.Printf("password updated for %s\n", *username)
}
