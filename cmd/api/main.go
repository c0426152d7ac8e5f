package main

import (
	"log"
	"net/http"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/joshkearneybbx/partnershipsportal-sub001/internal/config"
	"github.com/joshkearneybbx/partnershipsportal-sub001/internal/infra/database"
	"github.com/joshkearneybbx/partnershipsportal-sub001/internal/infra/http/handlers"
	"github.com/joshkearneybbx/partnershipsportal-sub001/internal/infra/http/middleware"
	"github.com/joshkearneybbx/partnershipsportal-sub001/internal/infra/integration/corewebhook"
	"github.com/joshkearneybbx/partnershipsportal-sub001/internal/infra/mail"
	"github.com/joshkearneybbx/partnershipsportal-sub001/internal/infra/queue"
	"github.com/joshkearneybbx/partnershipsportal-sub001/internal/usecase"
)

func main() {
	cfg := config.Load()

	db, err := database.NewDBConnection(cfg.DatabaseURL)
	if err != nil {
		log.Fatal(err)
	}
	defer db.Close()

	rabbitMQ, err := queue.NewRabbitMQ(cfg.RabbitUser, cfg.RabbitPass, cfg.RabbitHost, cfg.RabbitPort)
	if err != nil {
		log.Fatal(err)
	}
	defer rabbitMQ.Conn.Close()
	defer rabbitMQ.Ch.Close()

	// 1. Repositories
	partnerRepo := database.NewPartnerRepository(db)

	// 2. Adapters
	webhookClient := corewebhook.NewClient(cfg.PartnerWebhookURL)
	producer := queue.NewProducer(rabbitMQ.Conn, rabbitMQ.Ch)
	mailSender := mail.NewEmailSender(cfg.MailHost, cfg.MailPort, cfg.MailUser, cfg.MailPass, cfg.NotifyEmail)

	// 3. Worker (consumes signed-partner events, sends the team email)
	worker := queue.NewWorker(rabbitMQ.Ch, mailSender)
	go worker.Start(queue.QueueName)

	// 4. UseCases
	createPartnerUC := usecase.NewCreatePartnerUseCase(partnerRepo)
	updatePartnerUC := usecase.NewUpdatePartnerUseCase(partnerRepo, webhookClient, producer)

	// 5. Handlers
	partnerHandler := handlers.NewPartnerHandler(createPartnerUC, updatePartnerUC, partnerRepo)
	statsHandler := handlers.NewStatsHandler(partnerRepo)
	relayHandler := handlers.NewRelayHandler(cfg.CoreWebhookURL)
	healthHandler := handlers.NewHealthHandler(db, rabbitMQ.Conn, cfg.CoreWebhookURL)

	// 6. Router
	r := chi.NewRouter()
	r.Use(chimiddleware.Logger)
	r.Use(middleware.Metrics)
	r.Use(middleware.AuthUser)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: []string{"http://localhost:5173", "*"},
		AllowedMethods: []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
	}))

	r.Get("/health", healthHandler.Handle)
	r.Handle("/metrics", promhttp.Handler())

	r.Route("/partners", func(r chi.Router) {
		r.Post("/", partnerHandler.HandleCreate)
		r.Get("/", partnerHandler.HandleList)
		r.Get("/{id}", partnerHandler.HandleGet)
		r.Put("/{id}", partnerHandler.HandleReplace)
	})

	r.Get("/stats/pipeline", statsHandler.HandlePipeline)
	r.Get("/stats/weekly", statsHandler.HandleWeekly)

	r.Post("/api/webhook", relayHandler.Handle)

	addr := ":" + cfg.Port
	log.Printf("🔥 Partnerships portal API running on %s", addr)
	http.ListenAndServe(addr, r)
}
