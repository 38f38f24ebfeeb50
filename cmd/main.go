package main

import (
	"log"
	"net/http"
	"os"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"

	"metabolicai/database"
	"metabolicai/internal/controllers"
	"metabolicai/internal/logger"
	"metabolicai/internal/ml"
	"metabolicai/internal/repository"
	"metabolicai/routes"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, reading configuration from environment")
	}

	appLog, err := logger.New(os.Getenv("APP_ENV"))
	if err != nil {
		log.Fatalf("Failed to initialize logger: %v", err)
	}
	defer appLog.Sync()

	database.ConnectDatabase()
	if err := database.MigrateDatabase(); err != nil {
		appLog.Fatal("database migration failed", "error", err)
	}

	profileRepo := repository.NewUserProfileRepository(database.DB)
	entryRepo := repository.NewEntryRepository(database.DB)

	modelStore := ml.NewModelStore(os.Getenv("MODEL_DIR"))
	predictor := ml.NewPredictor(entryRepo, profileRepo, modelStore, appLog)

	profileController := controllers.NewUserProfileController(profileRepo)
	entryController := controllers.NewEntryController(entryRepo, predictor, appLog)
	predictionController := controllers.NewPredictionController(entryRepo, profileRepo, predictor)
	analyticsController := controllers.NewAnalyticsController(entryRepo, predictor)

	gin.SetMode(gin.ReleaseMode)
	router := gin.Default()
	router.Use(cors.Default())

	router.GET("/", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"message": "Welcome to MetabolicAI!",
			"version": "1.0.0",
			"status":  "healthy",
		})
	})

	routes.RegisterUserProfileRoutes(router, profileController)
	routes.RegisterEntryRoutes(router, entryController)
	routes.RegisterPredictionRoutes(router, predictionController)
	routes.RegisterAnalyticsRoutes(router, analyticsController)

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}

	server := &http.Server{
		Addr:           ":" + port,
		Handler:        router,
		ReadTimeout:    30 * time.Second,
		WriteTimeout:   30 * time.Second,
		IdleTimeout:    60 * time.Second,
		MaxHeaderBytes: 1 << 20,
	}

	appLog.Info("server starting", "port", port)
	if err := server.ListenAndServe(); err != nil {
		appLog.Fatal("server stopped", "error", err)
	}
}
