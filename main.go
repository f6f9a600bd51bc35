package main

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"

	"github.com/Vinh124567/backend-hotel-booking-sub000/config"
	"github.com/Vinh124567/backend-hotel-booking-sub000/routes"
	"github.com/Vinh124567/backend-hotel-booking-sub000/services"
	"github.com/Vinh124567/backend-hotel-booking-sub000/storage"
	"github.com/Vinh124567/backend-hotel-booking-sub000/utils"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

func main() {
	configPath := os.Getenv("CONFIG_PATH")
	if configPath == "" {
		configPath = "configs/config.yaml"
	}

	cfg, err := config.Load(configPath)
	if err != nil {
		log.Fatalf("error loading config: %v", err)
	}

	db := storage.ConnectDatabase(cfg.Database)
	if err := storage.Migrate(db); err != nil {
		log.Fatalf("migration failed: %v", err)
	}
	storage.InitializeRedis(cfg.Redis)

	utils.SeedDummyHotels(db)

	availability := services.NewAvailabilityService(db)
	notifier := services.NewNotificationService(db)
	bookings := services.NewBookingService(db, availability, notifier)
	reconciler := services.NewReconciler(db, availability)
	gateway := services.NewMoMoClient(cfg.MoMo)
	payments := services.NewPaymentService(db, gateway, reconciler, notifier)
	sweeper := services.NewSweeper(db, cfg.Sweeper)

	ctx := context.Background()
	reconciler.Start(ctx)
	sweeper.Start(ctx)

	if cfg.App.MetricsPort != 0 {
		go func() {
			mux := http.NewServeMux()
			mux.Handle("/metrics", promhttp.Handler())
			addr := fmt.Sprintf(":%d", cfg.App.MetricsPort)
			log.Printf("metrics listening on %s", addr)
			if err := http.ListenAndServe(addr, mux); err != nil {
				log.Printf("metrics server stopped: %v", err)
			}
		}()
	}

	r := routes.SetupRouter(routes.Deps{
		DB:           db,
		Availability: availability,
		Bookings:     bookings,
		Payments:     payments,
	})

	addr := fmt.Sprintf(":%d", cfg.App.Port)
	log.Printf("server running on %s", addr)
	if err := r.Run(addr); err != nil {
		log.Fatalf("server stopped: %v", err)
	}
}
