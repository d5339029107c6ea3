package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"log"
	"os"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"userauth/internal/config"
	"userauth/internal/db"
	"userauth/internal/model"
	"userauth/internal/repository"
)

// SeedUserData represents one record in the seed file.
type SeedUserData struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

func main() {
	file := flag.String("file", "seed/users.json", "path to a JSON file of users to seed")
	flag.Parse()

	log.Println("Starting seed script...")

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("config: %v", err)
	}

	gormDB, err := db.NewMySQL(cfg.MySQLDSN)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	if err := gormDB.AutoMigrate(&model.User{}); err != nil {
		log.Fatalf("Failed to run migrations: %v", err)
	}

	users, err := loadSeedFile(*file)
	if err != nil {
		log.Fatalf("Failed to load seed file: %v", err)
	}
	log.Printf("Loaded %d users from %s", len(users), *file)

	userRepo := repository.NewUserRepository(gormDB)
	created, skipped, err := seedUsers(context.Background(), userRepo, users)
	if err != nil {
		log.Fatalf("Failed to seed users: %v", err)
	}

	log.Printf("Seed completed: %d created, %d already present", created, skipped)
}

// loadSeedFile reads and parses the seed JSON file.
func loadSeedFile(path string) ([]SeedUserData, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read seed file: %w", err)
	}
	var users []SeedUserData
	if err := json.Unmarshal(data, &users); err != nil {
		return nil, fmt.Errorf("parse seed file: %w", err)
	}
	return users, nil
}

// seedUsers inserts users that do not already exist, hashing each password.
func seedUsers(ctx context.Context, repo repository.UserRepository, users []SeedUserData) (created int, skipped int, err error) {
	for _, item := range users {
		existing, err := repo.FindByEmail(ctx, item.Email)
		if err != nil && err != gorm.ErrRecordNotFound {
			return created, skipped, fmt.Errorf("error checking user %s: %w", item.Email, err)
		}
		if existing != nil {
			skipped++
			continue
		}

		hash, err := bcrypt.GenerateFromPassword([]byte(item.Password), bcrypt.DefaultCost)
		if err != nil {
			return created, skipped, fmt.Errorf("error hashing password for %s: %w", item.Email, err)
		}

		user := &model.User{
			Name:         item.Name,
			Email:        item.Email,
			PasswordHash: string(hash),
		}
		if err := repo.Create(ctx, user); err != nil {
			return created, skipped, fmt.Errorf("error creating user %s: %w", item.Email, err)
		}
		created++
	}
	return created, skipped, nil
}
