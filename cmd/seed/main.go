package main

import (
	"context"
	"log"

	"github.com/joho/godotenv"
	"github.com/judoclub/clubsite/internal/bootstrap"
	"github.com/judoclub/clubsite/internal/infrastructure/config"
	passwordservice "github.com/judoclub/clubsite/internal/infrastructure/password_service"
	"github.com/judoclub/clubsite/internal/seed"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using environment variables")
	}

	cfg := config.NewConfig()
	if cfg.StorageDriver != config.StorageMongo {
		log.Fatalf("seeding needs persistent storage, STORAGE_DRIVER is %q", cfg.StorageDriver)
	}
	if cfg.MongoURI == "" || cfg.MongoDBName == "" {
		log.Fatal("MONGODB_URI and MONGODB_DB_NAME must be set")
	}

	ctx := context.Background()
	storage, err := bootstrap.OpenStorage(ctx, cfg)
	if err != nil {
		log.Fatalf("Failed to open storage: %v", err)
	}
	defer storage.Close()

	res, err := seed.Seed(ctx, storage.Repos, passwordservice.NewHasher())
	if err != nil {
		log.Fatalf("Failed to seed fixtures: %v", err)
	}
	if res.Skipped {
		log.Println("Fixtures already present, nothing to do")
		return
	}
	log.Printf("Seeded %d users, %d instructors, %d schedules, %d news, %d events, %d gallery items, %d registrations, %d messages",
		res.Users, res.Instructors, res.Schedules, res.News, res.Events, res.GalleryItems, res.Registrations, res.Messages)
}
