package main

import (
	"context"
	"log"
	"os"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"

	"github.com/catharsis02/usc.kiit-shopvision/internal/auth"
	"github.com/catharsis02/usc.kiit-shopvision/internal/billing"
	"github.com/catharsis02/usc.kiit-shopvision/internal/catalog"
	"github.com/catharsis02/usc.kiit-shopvision/internal/classifier"
	"github.com/catharsis02/usc.kiit-shopvision/internal/dashboard"
	"github.com/catharsis02/usc.kiit-shopvision/internal/db"
	"github.com/catharsis02/usc.kiit-shopvision/internal/franchise"
	"github.com/catharsis02/usc.kiit-shopvision/internal/router"
	"github.com/catharsis02/usc.kiit-shopvision/internal/scanner"
	"github.com/catharsis02/usc.kiit-shopvision/internal/storage"
)

func main() {

	// ───────────────────────── ENV ─────────────────────────
	if os.Getenv("APP_ENV") != "production" {
		_ = godotenv.Load()
	}

	required := []string{
		"JWT_SECRET",
		"ADMIN_USERNAME",
		"ADMIN_PASSWORD_HASH",
		"ML_API_URL",
	}
	for _, k := range required {
		if os.Getenv(k) == "" {
			log.Fatalf("Missing env var: %s", k)
		}
	}

	// ───────────────────── REPOSITORIES ─────────────────────
	// One record-store contract, two backings: in-memory for local
	// runs and tests, Postgres for production.
	var (
		franchiseRepo franchise.Repository
		billRepo      billing.Repository
	)

	switch os.Getenv("STORE_BACKEND") {
	case "", "postgres":
		if os.Getenv("DATABASE_URL") == "" {
			log.Fatal("Missing env var: DATABASE_URL")
		}
		pool := db.ConnectPostgres()
		defer pool.Close()
		franchiseRepo = franchise.NewPostgresRepository(pool)
		billRepo = billing.NewPostgresRepository(pool)
	case "memory":
		franchiseRepo = franchise.NewInMemoryRepository()
		billRepo = billing.NewInMemoryRepository()
	default:
		log.Fatalf("Unknown STORE_BACKEND: %s", os.Getenv("STORE_BACKEND"))
	}

	// ───────────────────────── STORAGE ─────────────────────────
	var scanStore scanner.ObjectStore
	if os.Getenv("R2_ENDPOINT") != "" {
		r2, err := storage.NewR2Client(context.Background())
		if err != nil {
			log.Fatal("R2 init failed:", err)
		}
		scanStore = r2
	} else {
		log.Println("R2_ENDPOINT not set, scan images will not be retained")
	}

	// ───────────────────────── SERVICES ─────────────────────────
	items := catalog.Default()

	franchiseService := franchise.NewService(franchiseRepo)
	authService := auth.NewService(
		franchiseRepo,
		os.Getenv("ADMIN_USERNAME"),
		os.Getenv("ADMIN_PASSWORD_HASH"),
	)
	scanService := scanner.NewService(
		classifier.NewClient(os.Getenv("ML_API_URL")),
		scanStore,
		items,
	)
	dashboardService := dashboard.NewService(billRepo, franchiseRepo, items)

	// ───────────────────────── GIN ─────────────────────────
	r := gin.Default()

	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"http://localhost:3000", "http://localhost:5173"},
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	router.New(r, router.Handlers{
		Auth:      auth.NewHandler(authService),
		Catalog:   catalog.NewHandler(items),
		Scanner:   scanner.NewHandler(scanService),
		Billing:   billing.NewHandler(billing.NewRegistry(), billRepo, franchiseService, items),
		Franchise: franchise.NewHandler(franchiseService),
		Dashboard: dashboard.NewHandler(dashboardService),
	})

	// ───────────────────────── START ─────────────────────────
	addr := os.Getenv("LISTEN_ADDR")
	if addr == "" {
		addr = ":8000"
	}
	log.Printf("API running at http://localhost%s", addr)
	if err := r.Run(addr); err != nil {
		log.Fatal("Failed to start server:", err)
	}
}
