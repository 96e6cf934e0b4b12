package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gorilla/mux"
	"github.com/redis/go-redis/v9"

	"github.com/promptpilot/prompt-pilot-service/config"
	"github.com/promptpilot/prompt-pilot-service/endpoints"
	"github.com/promptpilot/prompt-pilot-service/gateway"
	"github.com/promptpilot/prompt-pilot-service/middleware"
	"github.com/promptpilot/prompt-pilot-service/session"
	"github.com/promptpilot/prompt-pilot-service/utils"
)

const ServiceName = "prompt-pilot-service"

func main() {
	// Handle version/help commands first (before flag parsing)
	if len(os.Args) > 1 {
		switch os.Args[1] {
		case "version", "--version", "-v":
			fmt.Println(utils.GetVersion().Str)
			os.Exit(0)
		case "help", "--help", "-h":
			fmt.Println("Prompt Pilot Service")
			fmt.Println()
			fmt.Println("Usage:")
			fmt.Println("  prompt-pilot-service              Start the API server")
			fmt.Println("  prompt-pilot-service version      Display version information")
			fmt.Println("  prompt-pilot-service -list        List all cached sessions")
			fmt.Println("  prompt-pilot-service -delete <pattern>  Delete cached sessions matching pattern")
			os.Exit(0)
		}
	}

	deleteCmd := flag.Bool("delete", false, "Run in delete mode")
	listCmd := flag.Bool("list", false, "List all cached sessions")
	flag.Parse()

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("FATAL: Could not load configuration: %v", err)
	}

	// Handle maintenance modes
	if *deleteCmd {
		patterns := flag.Args()
		if len(patterns) == 0 {
			fmt.Println("Usage: prompt-pilot-service -delete <pattern1> [pattern2] ...")
			fmt.Println("\nExamples:")
			fmt.Println("  prompt-pilot-service -delete '*'                # Delete all cached sessions")
			fmt.Println("  prompt-pilot-service -delete 'a1b2*'            # Delete sessions starting with a1b2")
			fmt.Println("\nFirst run with -list to see all session IDs")
			os.Exit(1)
		}
		if err := DeleteMode(cfg, patterns); err != nil {
			log.Fatalf("Delete operation failed: %v", err)
		}
		return
	}
	if *listCmd {
		if err := ListSessions(cfg); err != nil {
			log.Fatalf("List operation failed: %v", err)
		}
		return
	}

	// Build the session store. Redis is optional: without an address the
	// cache lives in process memory only.
	var store session.Store
	if cfg.Redis.Addr != "" {
		log.Println("Initializing Redis connection...")
		client, err := newRedisClient(cfg)
		if err != nil {
			log.Fatalf("FATAL: Failed to initialize Redis: %v", err)
		}
		store = session.NewRedisStore(client, time.Duration(cfg.Redis.SessionTTLHours)*time.Hour)
		log.Println("Redis connected successfully")
	} else {
		log.Println("No Redis address configured; using in-memory session cache")
		store = session.NewMemoryStore()
	}

	// The provider client is built once here and held for the process
	// lifetime; there is no re-initialization path.
	chat, err := gateway.NewOpenAIClient(&cfg.LLM)
	if err != nil {
		log.Fatalf("FATAL: Failed to initialize chat client: %v", err)
	}
	gw := gateway.New(chat)

	r := mux.NewRouter()
	r.HandleFunc("/service", endpoints.ServiceHandler(cfg)).Methods(http.MethodGet)
	r.HandleFunc("/clarify", endpoints.ClarifyHandler(gw)).Methods(http.MethodPost)
	r.HandleFunc("/roadmap", endpoints.RoadmapHandler(gw)).Methods(http.MethodPost)
	r.HandleFunc("/session", endpoints.CreateSessionHandler(store)).Methods(http.MethodPost)
	r.HandleFunc("/session/{id}", endpoints.GetSessionHandler(store)).Methods(http.MethodGet)
	r.HandleFunc("/session/{id}", endpoints.DeleteSessionHandler(store)).Methods(http.MethodDelete)
	r.HandleFunc("/session/{id}/export", endpoints.ExportSessionHandler(store)).Methods(http.MethodGet)

	srv := &http.Server{
		Addr:         fmt.Sprintf(":%d", cfg.Server.Port),
		Handler:      middleware.CorsMiddleware(r),
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 120 * time.Second, // roadmap generation is slow upstream
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		fmt.Printf("Starting %s on :%d\n", ServiceName, cfg.Server.Port)
		utils.SetHealthStatus("OK", "Service is running")
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("HTTP server crashed: %v", err)
		}
	}()

	// Wait for shutdown signal (SIGTERM from systemd or SIGINT from Ctrl+C)
	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt, syscall.SIGTERM)
	<-stop

	log.Println("Shutting down service...")
	utils.SetHealthStatus("SHUTTING_DOWN", "Service is shutting down")

	// Give the HTTP server 5 seconds to finish current requests
	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer shutdownCancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Printf("HTTP shutdown error: %v", err)
	}

	log.Println("Service exited cleanly")
}

// newRedisClient connects to the configured Redis instance and verifies the
// connection before returning.
func newRedisClient(cfg *config.Config) (*redis.Client, error) {
	client := redis.NewClient(&redis.Options{
		Addr: cfg.Redis.Addr,
		DB:   cfg.Redis.DB,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := client.Ping(ctx).Err(); err != nil {
		return nil, fmt.Errorf("failed to ping Redis at %s: %w", cfg.Redis.Addr, err)
	}
	return client, nil
}
