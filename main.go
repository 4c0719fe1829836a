package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"strconv"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"github.com/redis/go-redis/v9"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"github.com/kroogliy/maitsevcatering-sub000/cart"
	"github.com/kroogliy/maitsevcatering-sub000/catalog"
	catalogControllers "github.com/kroogliy/maitsevcatering-sub000/controllers/catalog"
	"github.com/kroogliy/maitsevcatering-sub000/models"
	"github.com/kroogliy/maitsevcatering-sub000/routes"
)

func main() {
	log.Println("✅ Starting application...")

	// Load environment variables
	_ = godotenv.Load()

	// Catalog store: upstream client + durable Redis snapshot
	catalogURL := os.Getenv("CATALOG_API_URL")
	if catalogURL == "" {
		log.Fatal("❌ CATALOG_API_URL is required")
	}
	store := catalog.NewStore(catalog.NewClient(catalogURL), initSnapshotStore())
	store.OnRefresh(catalogControllers.BroadcastCatalogRefresh)

	// Restore the last snapshot so stale data serves instantly, then warm up
	startupCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	if store.RestoreSnapshot(startupCtx) {
		log.Printf("✅ Catalog restored from snapshot (fetched %s)", store.LastFetchTime().Format(time.RFC3339))
	}
	if err := store.Initialize(startupCtx); err != nil {
		log.Printf("⚠️ Initial catalog fetch failed, serving cached data if any: %v", err)
	}
	cancel()

	// Cart service: Postgres-backed, memory-only when the DB is unreachable
	cartSvc := cart.NewService(initCartRepository())

	// Gin setup
	r := gin.Default()

	// CORS settings
	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "Authorization", "X-API-KEY"},
		ExposeHeaders:    []string{"Content-Length", "Content-Disposition"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	// Setup routes
	routes.SetupRoutes(r, store, cartSvc)

	// Keep the catalog fresh in the background
	go startStaleRefreshLoop(store, catalogMaxAge())

	// Start server
	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}
	log.Printf("🚀 Server running on port %s...", port)
	if err := r.Run(":" + port); err != nil {
		log.Fatalf("❌ Failed to start server: %v", err)
	}
}

// initCartRepository sets up the GORM-backed cart store, degrading to the
// in-memory repository when the database cannot be reached. A broken cart
// database must not take the shop down.
func initCartRepository() cart.Repository {
	db, err := openDatabase()
	if err != nil {
		log.Printf("⚠️ Cart DB unavailable, carts are memory-only for this run: %v", err)
		return cart.NewMemoryRepository()
	}
	if err := db.AutoMigrate(&models.CartLine{}); err != nil {
		log.Printf("⚠️ Cart table migration failed, carts are memory-only for this run: %v", err)
		return cart.NewMemoryRepository()
	}
	log.Println("✅ Cart persistence connected")
	return cart.NewGormRepository(db)
}

func openDatabase() (*gorm.DB, error) {
	if databaseURL := os.Getenv("DATABASE_URL"); databaseURL != "" {
		return gorm.Open(postgres.Open(databaseURL), &gorm.Config{})
	}

	host := os.Getenv("DB_HOST")
	port := os.Getenv("DB_PORT")
	user := os.Getenv("DB_USER")
	password := os.Getenv("DB_PASSWORD")
	dbname := os.Getenv("DB_NAME")

	dsn := fmt.Sprintf(
		"host=%s user=%s password=%s dbname=%s port=%s sslmode=disable",
		host, user, password, dbname, port,
	)
	return gorm.Open(postgres.Open(dsn), &gorm.Config{})
}

// initSnapshotStore connects the Redis snapshot store; nil disables durable
// catalog persistence but the service still runs.
func initSnapshotStore() catalog.SnapshotStore {
	addr := os.Getenv("REDIS_ADDR")
	if addr == "" {
		addr = "localhost:6379"
	}
	client := redis.NewClient(&redis.Options{Addr: addr})

	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()
	if err := client.Ping(ctx).Err(); err != nil {
		log.Printf("⚠️ Redis unavailable, catalog snapshots disabled: %v", err)
		return nil
	}
	log.Println("✅ Catalog snapshot store connected")
	return catalog.NewRedisSnapshotStore(client)
}

func catalogMaxAge() time.Duration {
	if v := os.Getenv("CATALOG_MAX_AGE_MINUTES"); v != "" {
		if minutes, err := strconv.Atoi(v); err == nil && minutes > 0 {
			return time.Duration(minutes) * time.Minute
		}
		log.Printf("⚠️ Invalid CATALOG_MAX_AGE_MINUTES %q, using default", v)
	}
	return catalog.DefaultMaxAge
}

// startStaleRefreshLoop re-fetches the catalog whenever the cached copy
// outlives maxAge. Failed refreshes keep serving the cached data.
func startStaleRefreshLoop(store *catalog.Store, maxAge time.Duration) {
	ticker := time.NewTicker(time.Minute)
	defer ticker.Stop()

	for range ticker.C {
		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		wasStale := store.IsStale(maxAge)
		if _, err := store.RefreshIfStale(ctx, maxAge); err != nil {
			log.Printf("⚠️ Background catalog refresh failed: %v", err)
		} else if wasStale {
			log.Printf("✅ Catalog refreshed at %s", store.LastFetchTime().Format(time.RFC3339))
		}
		cancel()
	}
}
