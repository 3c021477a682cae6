package main

import (
	"context"
	"embed"
	"flag"
	"io/fs"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"astroloh/internal/auth"
	"astroloh/internal/config"
	"astroloh/internal/ephemeris"
	"astroloh/internal/handler"
	"astroloh/internal/hub"
	"astroloh/internal/metrics"
	"astroloh/internal/repository/sqlite"
	"astroloh/internal/service"
)

//go:embed web/*
var webFS embed.FS

func main() {
	configPath := flag.String("config", "", "config file path (overrides discovery)")
	addr := flag.String("addr", "", "HTTP listen address (overrides config)")
	dbPath := flag.String("db", "", "SQLite database path (overrides config)")
	flag.Parse()

	log.SetFlags(log.LstdFlags | log.Lshortfile)
	log.Println("Starting astroloh server...")

	// Load configuration
	var cfg *config.Config
	var loadedFrom string
	var err error
	if *configPath != "" {
		cfg, loadedFrom, err = config.LoadFromPath(*configPath)
	} else {
		cfg, loadedFrom, err = config.Load()
	}
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}
	if loadedFrom != "" {
		log.Printf("Config loaded from %s", loadedFrom)
	} else {
		log.Println("No config file found, using defaults")
	}
	if *addr != "" {
		cfg.Listen = *addr
	}
	if *dbPath != "" {
		cfg.Database.Path = *dbPath
	}

	// Initialize SQLite repository
	repo, err := sqlite.New(cfg.Database.Path)
	if err != nil {
		log.Fatalf("Failed to open database: %v", err)
	}
	defer repo.Close()
	log.Printf("Database opened: %s", cfg.Database.Path)

	// Event bus and SSE hub
	eventBus := service.NewEventBus()
	sseHub := hub.New(eventBus)
	go sseHub.Run()

	// Metrics and service
	m := metrics.New()
	chartSvc := service.NewChartService(repo, eventBus, m)

	// Ephemeris upstream (optional)
	var ephClient *ephemeris.Client
	if cfg.Ephemeris.URL != "" {
		ephClient = ephemeris.New(cfg.Ephemeris.URL, cfg.Ephemeris.Timeout)
		log.Printf("Ephemeris upstream: %s", cfg.Ephemeris.URL)
	}

	// Auth
	authMgr := auth.New(cfg.Auth.Users, cfg.Auth.SessionTTL)
	if authMgr.Enabled() {
		log.Printf("Authentication enabled for %d users", len(cfg.Auth.Users))
		go func() {
			for range time.Tick(time.Hour) {
				authMgr.Sweep()
			}
		}()
	}

	// HTTP handlers
	chartHandler := handler.NewChartHandler(chartSvc, ephClient)
	authHandler := handler.NewAuthHandler(authMgr)

	// Routes
	mux := http.NewServeMux()

	mux.HandleFunc("GET /api/charts", chartHandler.ListCharts)
	mux.HandleFunc("POST /api/charts", chartHandler.CreateChart)
	mux.HandleFunc("GET /api/charts/{id}", chartHandler.GetChart)
	mux.HandleFunc("PUT /api/charts/{id}", chartHandler.UpdateChart)
	mux.HandleFunc("DELETE /api/charts/{id}", chartHandler.DeleteChart)

	mux.HandleFunc("GET /api/charts/{id}/svg", chartHandler.RenderSVG)
	mux.HandleFunc("GET /api/charts/{id}/layout", chartHandler.Layout)
	mux.HandleFunc("GET /api/charts/{id}/description", chartHandler.Describe)
	mux.HandleFunc("GET /api/charts/{id}/panel", chartHandler.Panel)

	mux.HandleFunc("GET /api/charts/{id}/selection", chartHandler.GetSelection)
	mux.HandleFunc("POST /api/charts/{id}/hover", chartHandler.Hover)
	mux.HandleFunc("DELETE /api/charts/{id}/hover", chartHandler.Unhover)
	mux.HandleFunc("POST /api/charts/{id}/select", chartHandler.Activate)

	mux.HandleFunc("POST /api/compute", chartHandler.Compute)
	mux.HandleFunc("POST /api/import/{format}", chartHandler.Import)
	mux.HandleFunc("GET /api/charts/{id}/export/{format}", chartHandler.Export)
	mux.HandleFunc("GET /api/calendar/{year}/{month}", chartHandler.Calendar)

	mux.HandleFunc("POST /api/login", authHandler.Login)
	mux.HandleFunc("POST /api/logout", authHandler.Logout)

	mux.Handle("GET /events", sseHub)
	mux.Handle("GET /metrics", m.Handler())

	// Static files from embedded filesystem
	webContent, err := fs.Sub(webFS, "web")
	if err != nil {
		log.Fatalf("Failed to get embedded web content: %v", err)
	}
	mux.Handle("/", http.FileServer(http.FS(webContent)))

	// Apply middleware
	finalHandler := handler.Chain(mux,
		handler.Recover,
		handler.CORS,
		handler.Logger,
		handler.Instrument(m),
		handler.RequireSession(authMgr),
	)

	server := &http.Server{
		Addr:         cfg.Listen,
		Handler:      finalHandler,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 30 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		log.Printf("Server listening on %s", cfg.Listen)
		if err := server.ListenAndServe(); err != http.ErrServerClosed {
			log.Fatalf("Server error: %v", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Println("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := server.Shutdown(ctx); err != nil {
		log.Printf("Server shutdown error: %v", err)
	}

	log.Println("Server stopped")
}
