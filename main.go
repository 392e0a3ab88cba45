package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"CarePoint/cache"
	"CarePoint/config"
	"CarePoint/controllers"
	"CarePoint/database"
	"CarePoint/jobs"
	"CarePoint/repositories"
	"CarePoint/routes"
	"CarePoint/services"
	"CarePoint/storage"

	"github.com/joho/godotenv"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("Error in loading the ENV")
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load configuration: %v", err)
	}

	ctx := context.Background()

	client, db, err := database.Connect(ctx, cfg.MongoURI, cfg.MongoDB)
	if err != nil {
		log.Fatalf("failed to initialize MongoDB: %v", err)
	}
	defer client.Disconnect(context.Background())

	if err := database.EnsureIndexes(ctx, db); err != nil {
		log.Fatalf("failed to ensure indexes: %v", err)
	}

	redisClient, err := database.NewRedisClient(cfg.RedisURL)
	if err != nil {
		log.Fatalf("failed to initialize Redis client: %v", err)
	}

	patientCache, err := cache.New(redisClient)
	if err != nil {
		log.Fatalf("failed to initialize cache: %v", err)
	}

	files, err := storage.New(cfg.UploadDir)
	if err != nil {
		log.Fatalf("failed to initialize upload storage: %v", err)
	}

	patientRepo := repositories.NewPatientRepository(db, patientCache, cfg.StoreTimeout)
	billRepo := repositories.NewBillRepository(db, cfg.StoreTimeout)
	summaryRepo := repositories.NewDoctorSummaryRepository(db, cfg.StoreTimeout)

	patientService := services.NewPatientService(
		patientRepo, billRepo, summaryRepo,
		database.NewTxRunner(client),
		database.NewLocker(redisClient),
	)
	billService := services.NewBillService(billRepo)
	summaryService := services.NewDoctorSummaryService(summaryRepo)

	router := routes.NewRouter(cfg,
		controllers.NewPatientController(patientService),
		controllers.NewBillController(billService),
		controllers.NewDoctorSummaryController(summaryService, files),
	)

	sweep := jobs.StartNightlyBillSweep(billService)
	defer sweep.Stop()

	srv := &http.Server{
		Addr:           ":" + cfg.Port,
		Handler:        router,
		ReadTimeout:    30 * time.Second,
		WriteTimeout:   30 * time.Second,
		IdleTimeout:    30 * time.Second,
		MaxHeaderBytes: 1 << 20,
	}

	go func() {
		log.Println("Starting server on :" + cfg.Port)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatalf("listenAndServe(): %v", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	<-quit

	shutdownCtx, cancelShutdown := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancelShutdown()

	log.Println("Shutting down server...")
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Fatalf("server shutdown failed: %+v", err)
	}
	log.Println("Server exited gracefully")
}
