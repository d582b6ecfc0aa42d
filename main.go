// This is the main entry point of the pantry application. It is responsible
// for initializing configuration, the database connection pool, services and
// handlers, setting up the HTTP router and middleware, and starting the HTTP
// server with graceful shutdown.
//
// @title Pantry API
// @version 1.0
// @description API for the pantry tracking application: accounts, pantry items, and barcode scanning.
// @BasePath /
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Type 'Bearer YOUR_JWT_TOKEN' to authorize
package main

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/joho/godotenv"
	httpSwagger "github.com/swaggo/http-swagger"

	"github.com/user/pantry-go/apperror"
	"github.com/user/pantry-go/auth"
	"github.com/user/pantry-go/config"
	"github.com/user/pantry-go/db"
	_ "github.com/user/pantry-go/docs" // Generated Swagger docs
	"github.com/user/pantry-go/pantry"
	"github.com/user/pantry-go/products"
	"github.com/user/pantry-go/stats"
)

func main() {
	// .env is a development convenience; in production variables are set
	// directly in the environment.
	if err := godotenv.Load(); err != nil {
		log.Printf("Warning: .env file not found or error loading it: %v", err)
	}

	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	pool, err := db.NewDBPool(cfg.DB)
	if err != nil {
		log.Fatalf("Failed to create database pool: %v", err)
	}
	defer pool.Close()

	if err := db.EnableExtensions(pool); err != nil {
		log.Fatalf("Failed to enable extensions: %v", err)
	}

	if err := db.RunMigrations(cfg.DB, "./migrations"); err != nil {
		log.Fatalf("Failed to run migrations: %v", err)
	}

	// Services and handlers are wired here once; each service receives the
	// pool and its collaborators explicitly.
	accountStore := auth.NewAccountStore(pool)
	authService := auth.NewAuthService(accountStore, *cfg.Auth)
	authHandlers := auth.NewHandlers(authService)

	productStore := products.NewStore(pool)
	lookupClient := products.NewOpenFoodFactsClient(*cfg.Lookup)
	productService := products.NewService(productStore, lookupClient)
	productHandlers := products.NewHandlers(productService)

	pantryService := pantry.NewPantryService(pool, productService)
	pantryHandlers := pantry.NewHandlers(pantryService)

	statsService := stats.NewStatsService(pool)
	statsHandlers := stats.NewHandlers(statsService)

	r := chi.NewRouter()

	// Chi requires all middleware to be registered before any routes.
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Timeout(60 * time.Second))

	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{"*"},
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type"},
		AllowCredentials: true,
		MaxAge:           300,
	}))

	// Panic recovery that formats the 500 through the apperror system.
	r.Use(func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
			defer func() {
				if rvr := recover(); rvr != nil {
					log.Printf("Panic: %+v", rvr)
					appErr := apperror.NewInternalError("internal server error", nil)
					auth.WriteJSON(ww, appErr.StatusCode(), appErr.ToResponse())
				}
			}()
			next.ServeHTTP(ww, r)
		})
	})

	// Health check.
	r.Get("/", func(w http.ResponseWriter, r *http.Request) {
		auth.WriteJSON(w, http.StatusOK, map[string]string{"message": "OK"})
	})

	r.Get("/swagger/*", httpSwagger.Handler(
		httpSwagger.URL("/swagger/doc.json"),
	))

	r.Route("/auth", func(r chi.Router) {
		r.Post("/register", authHandlers.HandleRegister())
		r.Post("/login", authHandlers.HandleLogin())
		r.Post("/refresh", authHandlers.HandleRefreshToken())
	})

	r.Route("/users", func(r chi.Router) {
		r.Use(authService.Middleware())
		r.Get("/me", authHandlers.HandleGetCurrentAccount())
	})

	r.Route("/pantry", func(r chi.Router) {
		r.Use(authService.Middleware())
		r.Post("/item", pantryHandlers.HandleCreateItem())
		r.Get("/item/{itemID}", pantryHandlers.HandleGetItem())
		r.Get("/items", pantryHandlers.HandleListItems())
		r.Delete("/item/{itemID}", pantryHandlers.HandleDeleteItem())
	})

	r.Route("/scan", func(r chi.Router) {
		r.Use(authService.Middleware())
		r.Get("/{barcode}", productHandlers.HandleScan())
	})

	r.Route("/products", func(r chi.Router) {
		r.Use(authService.Middleware())
		r.Get("/{barcode}", productHandlers.HandleGetKnownProduct())
		// Writing into the globally shared cache requires a verified account.
		r.With(auth.VerifiedMiddleware).Post("/", productHandlers.HandleCreateKnownProduct())
	})

	r.Route("/stats", func(r chi.Router) {
		r.Use(authService.Middleware())
		r.Get("/me", statsHandlers.HandleGetMyStats())
	})

	addr := fmt.Sprintf(":%s", cfg.Server.Port)

	srv := &http.Server{
		Addr:         addr,
		Handler:      r,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		log.Printf("Server starting on %s", addr)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("Failed to start server: %v", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Println("Server shutting down...")
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		log.Fatalf("Server shutdown failed: %v", err)
	}
	log.Println("Server stopped gracefully")
}
