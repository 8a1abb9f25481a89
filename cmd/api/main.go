package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/cors"
	"github.com/joho/godotenv"
	"github.com/redis/go-redis/v9"
	"github.com/veritas25/fundbooth/internal/handlers"
	"github.com/veritas25/fundbooth/internal/mailer"
	"github.com/veritas25/fundbooth/internal/payments"
	"github.com/veritas25/fundbooth/internal/repository"
	"github.com/veritas25/fundbooth/internal/service"
	"github.com/veritas25/fundbooth/pkg/config"
	"github.com/veritas25/fundbooth/pkg/database"
	"github.com/veritas25/fundbooth/pkg/events"
	"github.com/veritas25/fundbooth/pkg/logger"
	mw "github.com/veritas25/fundbooth/pkg/middleware"
)

func main() {
	if err := godotenv.Load(); err != nil {
		logger.Debug("No .env file found, using environment")
	}

	cfg := config.Load()

	// Connect to database
	ctx := context.Background()
	pool, err := database.Connect(ctx, cfg.Database)
	if err != nil {
		logger.Error("Failed to connect to database", "error", err)
		os.Exit(1)
	}
	defer pool.Close()

	// Connect to event bus
	var eventBus events.EventBus
	if bus, err := events.NewNATSEventBus(cfg.NATS.URL); err != nil {
		logger.Warn("Failed to connect to NATS, events disabled", "error", err)
	} else {
		eventBus = bus
		defer bus.Close()
	}

	// Redis for rate limiting
	var rateLimitRepo repository.RateLimitRepository
	if opts, err := redis.ParseURL(cfg.Redis.URL); err != nil {
		logger.Warn("Invalid Redis URL, rate limiting disabled", "error", err)
	} else {
		rateLimitRepo = repository.NewRateLimitRepository(redis.NewClient(opts))
	}

	// Initialize repositories
	projectRepo := repository.NewProjectRepository(pool)
	incomeRepo := repository.NewIncomeRepository(pool)
	expenseRepo := repository.NewExpenseRepository(pool)
	callBoothRepo := repository.NewCallBoothRepository(pool)

	// Payment provider
	orderClient := payments.NewRazorpayClient(cfg.Razorpay.KeyID, cfg.Razorpay.KeySecret)

	// Mailer
	var mailService mailer.Service
	switch {
	case cfg.Email.DevMode:
		mailService = mailer.NewDevMailer()
	case cfg.Email.MailerSendKey != "":
		mailService = mailer.NewMailerSend(cfg.Email.MailerSendKey, cfg.Email.FromName, cfg.Email.FromEmail)
	default:
		mailService = mailer.NewSMTPMailer(
			cfg.Email.SMTPHost, cfg.Email.SMTPPort, cfg.Email.SMTPFrom,
			cfg.Email.SMTPUser, cfg.Email.SMTPPass, cfg.Email.SMTPUseTLS,
		)
	}

	// Initialize services
	authService := service.NewAuthService(projectRepo)
	paymentService := service.NewPaymentService(
		orderClient, projectRepo, incomeRepo, mailService, eventBus,
		cfg.Razorpay.KeySecret, cfg.Razorpay.Currency,
	)
	financeService := service.NewFinanceService(incomeRepo, expenseRepo)
	callBoothService := service.NewCallBoothService(callBoothRepo)

	// Initialize handlers
	h := handlers.New(authService, paymentService, financeService, callBoothService, rateLimitRepo, cfg)

	// Setup router
	r := chi.NewRouter()

	// Middleware
	r.Use(mw.RequestID)
	r.Use(mw.ServiceName("fundbooth"))
	r.Use(mw.Logging)
	r.Use(mw.Health)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{"*"},
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type", "X-Project-Session"},
		AllowCredentials: true,
		MaxAge:           300,
	}))

	// Routes
	r.Route("/api", func(r chi.Router) {
		r.Route("/projects", func(r chi.Router) {
			r.Get("/", h.ListProjects)
			r.With(h.AuthRateLimit()).Post("/authenticate", h.Authenticate)

			// Session guard, keyed by project name like the dashboard URL.
			r.Get("/{projectName}/session", h.ValidateSession)

			// Record CRUD, keyed by project id. Authorization is delegated
			// to the session guard at the UI layer; these endpoints filter
			// by project id only. Documented trust boundary.
			r.Route("/{projectId}", func(r chi.Router) {
				r.Get("/stats", h.GetStats)

				r.Get("/income", h.ListIncome)
				r.Post("/income", h.CreateIncome)
				r.Put("/income/{incomeId}", h.UpdateIncome)
				r.Delete("/income/{incomeId}", h.DeleteIncome)

				r.Get("/expenses", h.ListExpenses)
				r.Post("/expenses", h.CreateExpense)
				r.Put("/expenses/{expenseId}", h.UpdateExpense)
				r.Delete("/expenses/{expenseId}", h.DeleteExpense)

				r.Get("/call-booth", h.ListCallBooth)
				r.Post("/call-booth", h.CreateCallBoothEntry)
				r.Put("/call-booth/{entryId}", h.UpdateCallBoothEntry)
				r.Delete("/call-booth/{entryId}", h.DeleteCallBoothEntry)
			})
		})

		r.Route("/contributions", func(r chi.Router) {
			r.Post("/create-order", h.CreateOrder)
			r.Post("/verify-payment", h.VerifyPayment)
		})
	})

	// Start server
	srv := &http.Server{
		Addr:         ":" + cfg.Server.Port,
		Handler:      r,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  cfg.Server.IdleTimeout,
	}

	// Graceful shutdown
	go func() {
		sigChan := make(chan os.Signal, 1)
		signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
		<-sigChan

		logger.Info("Shutting down...")

		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()

		if err := srv.Shutdown(ctx); err != nil {
			logger.Error("Server shutdown error", "error", err)
		}
	}()

	logger.Info("Starting fundbooth API", "port", cfg.Server.Port)
	if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		logger.Error("Server error", "error", err)
		os.Exit(1)
	}
}
