// Package main is the entry point for the API server.
package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/joho/godotenv"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"

	"github.com/chiragSahani/copilot-inbox/internal/client"
	"github.com/chiragSahani/copilot-inbox/internal/config"
	"github.com/chiragSahani/copilot-inbox/internal/events"
	"github.com/chiragSahani/copilot-inbox/internal/handler"
	"github.com/chiragSahani/copilot-inbox/internal/llm"
	"github.com/chiragSahani/copilot-inbox/internal/middleware"
	"github.com/chiragSahani/copilot-inbox/internal/service"
	"github.com/chiragSahani/copilot-inbox/internal/simulator"
	"github.com/chiragSahani/copilot-inbox/pkg/logger"
	"github.com/chiragSahani/copilot-inbox/pkg/tracing"
)

func main() {
	_ = godotenv.Load()

	cfg := config.Load()

	var log *zap.Logger
	var err error
	if cfg.Environment == "development" {
		log, err = logger.NewDevelopment()
	} else {
		log, err = logger.New(cfg.LogLevel)
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to create logger: %v\n", err)
		os.Exit(1)
	}
	defer log.Sync()

	log.Info("starting API server")

	ctx := context.Background()
	if cfg.TracingEnabled {
		tp, err := tracing.InitTracer(ctx, "copilot-inbox", cfg.TracingEndpoint)
		if err != nil {
			log.Warn("failed to initialize tracing", zap.Error(err))
		} else {
			defer tracing.Shutdown(ctx, tp)
		}
	}

	// Event fan-out is optional; the inbox works standalone.
	var pub events.Publisher = events.Noop{}
	var natsPub *events.NATSPublisher
	if cfg.NATSEnabled {
		natsPub, err = events.Connect(events.Config{
			URL:   cfg.NATSURL,
			Token: cfg.NATSToken,
		}, log)
		if err != nil {
			log.Warn("failed to connect to NATS, events disabled", zap.Error(err))
		} else {
			pub = natsPub
			defer natsPub.Close()
		}
	}

	var llmClient llm.Client
	provider := llm.Provider(cfg.DefaultLLM)
	apiKey := cfg.AnthropicAPIKey
	if provider == llm.ProviderOpenAI {
		apiKey = cfg.OpenAIAPIKey
	}
	if apiKey == "" {
		// Fall back to whichever provider has a key configured.
		if cfg.AnthropicAPIKey != "" {
			provider, apiKey = llm.ProviderAnthropic, cfg.AnthropicAPIKey
		} else if cfg.OpenAIAPIKey != "" {
			provider, apiKey = llm.ProviderOpenAI, cfg.OpenAIAPIKey
		}
	}
	if apiKey != "" {
		llmClient, err = llm.NewClient(provider, apiKey)
		if err != nil {
			log.Warn("failed to create LLM client, using canned responses",
				zap.String("provider", string(provider)), zap.Error(err))
		}
	}

	sim := simulator.NewNetwork(cfg.SimFailureRate)
	svc := service.New(sim, pub, cfg.JWTSecret, cfg.JWTExpiration, log)

	tokens, err := client.NewFileTokenStore(cfg.TokenDir)
	if err != nil {
		log.Warn("failed to open token store, tokens will not persist", zap.Error(err))
	}
	api := client.New(svc, tokens, log)
	api.Initialize()

	healthHandler := handler.NewHealthHandler(natsPub)
	authHandler := handler.NewAuthHandler(api, log)
	conversationHandler := handler.NewConversationHandler(api, log)
	knowledgeHandler := handler.NewKnowledgeHandler(api, log)
	notificationHandler := handler.NewNotificationHandler(api, log)
	directoryHandler := handler.NewDirectoryHandler(api, log)
	analyticsHandler := handler.NewAnalyticsHandler(api, log)
	aiHandler := handler.NewAIHandler(llmClient, api, log)

	r := chi.NewRouter()

	r.Use(chimiddleware.RequestID)
	r.Use(chimiddleware.RealIP)
	r.Use(middleware.Logging(log))
	r.Use(middleware.SecurityHeaders)
	r.Use(chimiddleware.Recoverer)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{"https://*", "http://*"},
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type", "X-Requested-With"},
		ExposedHeaders:   []string{"Link", "X-Correlation-ID"},
		AllowCredentials: true,
		MaxAge:           300,
	}))

	r.Get("/health", healthHandler.Health)
	r.Get("/ready", healthHandler.Ready)
	r.Handle("/metrics", promhttp.Handler())

	// Generation endpoints mirror the browser app's routes.
	r.Post("/api/ai", aiHandler.Generate)
	r.Post("/api/chat", aiHandler.Chat)

	r.Route("/api/v1", func(r chi.Router) {
		r.Use(middleware.Auth(cfg.JWTSecret))
		r.Use(middleware.RateLimit(cfg.RateLimitRequests, cfg.RateLimitWindow))

		r.Route("/auth", func(r chi.Router) {
			r.Post("/login", authHandler.Login)
			r.Post("/logout", authHandler.Logout)
			r.Get("/me", authHandler.Me)
		})

		r.Route("/conversations", func(r chi.Router) {
			r.Get("/", conversationHandler.List)
			r.Post("/", conversationHandler.Create)

			r.Route("/{id}", func(r chi.Router) {
				r.Get("/", conversationHandler.Get)
				r.Post("/messages", conversationHandler.AddMessage)
			})
		})

		r.Route("/knowledge", func(r chi.Router) {
			r.Get("/", knowledgeHandler.List)
			r.Get("/relevant", knowledgeHandler.Relevant)
		})

		r.Route("/notifications", func(r chi.Router) {
			r.Get("/", notificationHandler.List)
			r.Post("/{id}/read", notificationHandler.MarkRead)
		})

		r.Get("/users", directoryHandler.Users)
		r.Get("/teams", directoryHandler.Teams)
		r.Get("/analytics", analyticsHandler.Get)
	})

	server := &http.Server{
		Addr:         ":" + cfg.ServerPort,
		Handler:      r,
		ReadTimeout:  cfg.ServerReadTimeout,
		WriteTimeout: cfg.ServerWriteTimeout,
		IdleTimeout:  120 * time.Second,
	}

	go func() {
		log.Info("server listening", zap.String("port", cfg.ServerPort))
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Error("server error", zap.Error(err))
			os.Exit(1)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info("shutting down server")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		log.Error("server forced to shutdown", zap.Error(err))
	}

	log.Info("server stopped")
}
