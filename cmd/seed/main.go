// Command seed loads a demo user with a month of daily entries and
// trains their model, for local development against an empty database.
package main

import (
	"flag"
	"log"
	"time"

	"github.com/joho/godotenv"

	"metabolicai/database"
	"metabolicai/internal/logger"
	"metabolicai/internal/ml"
	"metabolicai/internal/models"
	"metabolicai/internal/repository"
)

func main() {
	if err := godotenv.Load(); err != nil {
		if err := godotenv.Load("../../.env"); err != nil {
			log.Printf("Warning: No .env file found: %v", err)
		}
	}

	userID := flag.String("user", "demo", "User ID to seed")
	days := flag.Int("days", 30, "Number of daily entries to create")
	flag.Parse()

	database.ConnectDatabase()
	if err := database.MigrateDatabase(); err != nil {
		log.Fatalf("Failed to run database migrations: %v", err)
	}

	profileRepo := repository.NewUserProfileRepository(database.DB)
	entryRepo := repository.NewEntryRepository(database.DB)

	height := 180.0
	bodyFat := 18.0
	startWeight := 82.0
	profile := &models.UserProfile{
		UserID:        *userID,
		Age:           30,
		Gender:        "male",
		HeightCm:      &height,
		BodyFatPct:    &bodyFat,
		CurrentWeight: &startWeight,
	}
	if err := profileRepo.Upsert(profile); err != nil {
		log.Fatalf("Failed to seed profile: %v", err)
	}

	start := time.Now().AddDate(0, 0, -*days)
	for i := 0; i < *days; i++ {
		// Slow cut: weight drifts down, intake oscillates around 2200.
		weight := startWeight - 0.05*float64(i)
		calories := 2200.0 + 150.0*float64(i%3-1)
		entry := &models.Entry{
			UserID:   *userID,
			Date:     start.AddDate(0, 0, i).Format("2006-01-02"),
			Weight:   &weight,
			Calories: &calories,
		}
		if err := entryRepo.Upsert(entry); err != nil {
			log.Fatalf("Failed to seed entry %s: %v", entry.Date, err)
		}
	}

	appLog, err := logger.New("")
	if err != nil {
		log.Fatalf("Failed to initialize logger: %v", err)
	}
	defer appLog.Sync()

	predictor := ml.NewPredictor(entryRepo, profileRepo, ml.NewModelStore(""), appLog)
	status, err := predictor.Retrain(*userID)
	if err != nil {
		log.Fatalf("Failed to train seeded model: %v", err)
	}

	log.Printf("Seeded user %q with %d entries (train status: %s)", *userID, *days, status)
}
