package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"time"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/joho/godotenv"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/plotvista/plotvista/internal/infra/auth"
	"github.com/plotvista/plotvista/internal/infra/database"
	"github.com/plotvista/plotvista/internal/infra/http/handlers"
	"github.com/plotvista/plotvista/internal/infra/http/middleware"
	"github.com/plotvista/plotvista/internal/infra/mail"
	"github.com/plotvista/plotvista/internal/infra/queue"
	"github.com/plotvista/plotvista/internal/usecase"
)

func main() {
	godotenv.Load()

	db, err := database.NewDBConnection(os.Getenv("DATABASE_URL"))
	if err != nil {
		log.Fatalf("failed to connect to database: %v", err)
	}
	defer db.Close()

	ctx := context.Background()

	if err := database.Migrate(ctx, db); err != nil {
		log.Fatalf("failed to run migrations: %v", err)
	}

	rabbitMQ, err := queue.NewRabbitMQ(
		envOr("RABBITMQ_USER", "guest"),
		envOr("RABBITMQ_PASS", "guest"),
		envOr("RABBITMQ_HOST", "localhost"),
		envOr("RABBITMQ_PORT", "5672"),
	)
	if err != nil {
		log.Fatalf("failed to connect to RabbitMQ: %v", err)
	}
	defer rabbitMQ.Conn.Close()
	defer rabbitMQ.Ch.Close()

	// Store and adapters
	store := database.NewStore(db)
	hasher := auth.NewBcryptHasher()
	tokens := auth.NewTokenManager(os.Getenv("JWT_SECRET"), "plotvista", 24*time.Hour)
	producer := queue.NewProducer(rabbitMQ.Conn, rabbitMQ.Ch)
	mailSender := mail.NewEmailSender(
		os.Getenv("MAIL_HOST"), 587, os.Getenv("MAIL_USER"), os.Getenv("MAIL_PASS"),
		os.Getenv("MAIL_FROM"),
	)

	if os.Getenv("SEED") == "true" {
		if err := database.Seed(ctx, store, hasher); err != nil {
			log.Fatalf("failed to seed database: %v", err)
		}
	}

	// Worker consumes recorded bookings and emails confirmations.
	worker := queue.NewWorker(rabbitMQ.Ch, mailSender)
	go worker.Start(queue.QueueName)

	// Usecases
	authSvc := usecase.NewAuthService(store.Users(), hasher, tokens)
	userSvc := usecase.NewUserService(store, hasher)
	leadSvc := usecase.NewLeadService(store)
	assignLeadUC := usecase.NewAssignLeadUseCase(store)
	projectSvc := usecase.NewProjectService(store)
	plotSvc := usecase.NewPlotService(store)
	interestSvc := usecase.NewBuyerInterestService(store)
	createBookingUC := usecase.NewCreateBookingUseCase(store, producer)
	activitySvc := usecase.NewActivityService(store)
	dashboardSvc := usecase.NewDashboardService(store)
	visibilitySvc := usecase.NewVisibilityService(store)

	// Handlers
	authHandler := handlers.NewAuthHandler(authSvc)
	userHandler := handlers.NewUserHandler(userSvc)
	leadHandler := handlers.NewLeadHandler(leadSvc, assignLeadUC, visibilitySvc)
	projectHandler := handlers.NewProjectHandler(projectSvc, visibilitySvc)
	plotHandler := handlers.NewPlotHandler(plotSvc, visibilitySvc)
	interestHandler := handlers.NewBuyerInterestHandler(interestSvc)
	bookingHandler := handlers.NewBookingHandler(createBookingUC)
	activityHandler := handlers.NewActivityHandler(activitySvc)
	dashboardHandler := handlers.NewDashboardHandler(dashboardSvc)
	healthHandler := handlers.NewHealthHandler(db, rabbitMQ.Conn)

	// Router
	r := chi.NewRouter()
	r.Use(chimiddleware.Logger)
	r.Use(middleware.Metrics)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: []string{"http://localhost:5173", "*"},
		AllowedMethods: []string{"GET", "POST", "PATCH", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders: []string{"Authorization", "Content-Type"},
	}))

	r.Get("/health", healthHandler.Handle)
	r.Handle("/metrics", promhttp.Handler())

	r.Route("/api", func(r chi.Router) {
		r.Post("/auth/login", authHandler.Login)

		r.Group(func(r chi.Router) {
			r.Use(middleware.Authenticate(tokens))

			r.Get("/leads", leadHandler.List)
			r.Get("/leads/today-followups", leadHandler.TodayFollowUps)
			r.Post("/leads", leadHandler.Create)
			r.Patch("/leads/{id}", leadHandler.Update)
			r.Delete("/leads/{id}", leadHandler.Delete)

			r.Get("/projects", projectHandler.List)
			r.Get("/projects/overview", projectHandler.Overview)

			r.Get("/plots", plotHandler.List)
			r.Get("/plots/category/{category}", plotHandler.ByCategory)
			r.Get("/plots/{id}/stats", plotHandler.Stats)

			r.Get("/buyer-interests/{plotId}", interestHandler.ListByPlot)
			r.Post("/buyer-interests", interestHandler.Create)
			r.Delete("/buyer-interests/{id}", interestHandler.Delete)

			r.Post("/payments", bookingHandler.Create)

			r.Get("/activities", activityHandler.Recent)
			r.Get("/dashboard/salesperson", dashboardHandler.Salesperson)

			r.Group(func(r chi.Router) {
				r.Use(middleware.RequireAdmin)

				r.Get("/users/salespersons", userHandler.Salespersons)
				r.Post("/users", userHandler.Create)
				r.Delete("/users/{id}", userHandler.Delete)

				r.Patch("/leads/{id}/assign", leadHandler.AssignLead)
				r.Post("/projects", projectHandler.Create)
				r.Post("/plots", plotHandler.Create)
				r.Get("/dashboard/admin", dashboardHandler.Admin)
			})
		})
	})

	port := envOr("PORT", "8080")
	log.Printf("PlotVista API listening on :%s", port)
	if err := http.ListenAndServe(":"+port, r); err != nil {
		log.Fatalf("server stopped: %v", err)
	}
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
