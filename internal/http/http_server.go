package http

// this is entry point of the http request handlers

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"time"

	"github.com/gorilla/mux"

	"gitlab.com/void-training.net/internal/config"
	"gitlab.com/void-training.net/internal/core/ports/primary"
	auth2 "gitlab.com/void-training.net/internal/core/services/auth"
	"gitlab.com/void-training.net/internal/core/services/interaction"
	"gitlab.com/void-training.net/internal/core/services/review"
	"gitlab.com/void-training.net/internal/core/services/submission"
	"gitlab.com/void-training.net/internal/handlers/admin"
	"gitlab.com/void-training.net/internal/handlers/auth"
	"gitlab.com/void-training.net/internal/handlers/interactions"
	"gitlab.com/void-training.net/internal/handlers/response"
	"gitlab.com/void-training.net/internal/handlers/submissions"
)

type ServiceProvider struct {
	submissionService  submission.ISubmissionService
	reviewService      review.IReviewService
	interactionService interaction.IInteractionService
	discordAuth        auth2.IAuthService
	jwtProvider        primary.JWTService
}

func NewServiceProvider(
	submissionService submission.ISubmissionService,
	reviewService review.IReviewService,
	interactionService interaction.IInteractionService,
	discordAuth auth2.IAuthService,
	jwtProvider primary.JWTService,
) *ServiceProvider {
	return &ServiceProvider{
		submissionService:  submissionService,
		reviewService:      reviewService,
		interactionService: interactionService,
		discordAuth:        discordAuth,
		jwtProvider:        jwtProvider,
	}
}

type Server struct {
	router          *mux.Router
	Port            int
	ServiceName     string
	ServiceProvider ServiceProvider
	discordCfg      *config.DiscordConfig
	logger          primary.Logger
	srv             *http.Server
}

func NewServer(port int, serviceName string, serviceProvider ServiceProvider, discordCfg *config.DiscordConfig, logger primary.Logger) *Server {
	return &Server{
		Port:            port,
		ServiceName:     serviceName,
		ServiceProvider: serviceProvider,
		discordCfg:      discordCfg,
		logger:          logger,
	}
}

func (s *Server) Init() error {
	r := mux.NewRouter()

	submissions.
		NewSubmissionHandler(s.ServiceProvider.submissionService, s.logger).
		RegisterRoutes(r)
	admin.
		NewAdminHandler(s.ServiceProvider.reviewService, s.logger).
		RegisterRoutes(r)
	interactions.
		NewInteractionHandler(s.ServiceProvider.interactionService, s.discordCfg.PublicKey, s.logger).
		RegisterRoutes(r)
	auth.NewHandler(s.discordCfg, s.ServiceProvider.jwtProvider, s.logger).
		RegisterRoutes(r, s.ServiceProvider.discordAuth)

	r.HandleFunc("/", s.Root).Methods("GET")
	r.HandleFunc("/health", s.Health).Methods("GET")

	s.router = r
	return nil
}

// Root describes the API surface
func (s *Server) Root(w http.ResponseWriter, r *http.Request) {
	response.WriteSuccess(w, map[string]interface{}{
		"service": s.ServiceName,
		"endpoints": map[string]string{
			"POST /submissions":                  "Submit a completed training test",
			"GET /submissions":                   "List submissions, ?status= to filter",
			"GET /submissions/user/{userId}":     "List one user's submissions",
			"GET /submissions/{submissionId}":    "Get a submission",
			"DELETE /submissions/{submissionId}": "Delete a submission",
			"POST /admin/action":                 "Apply an accept/deny decision",
			"POST /webhook/action":               "Apply a decision from an integration",
			"GET /admin/stats":                   "Review progress summary",
			"POST /interactions":                 "Discord interaction callbacks",
			"GET /auth/discord":                  "Discord OAuth2 login",
			"GET /health":                        "Health check",
		},
	})
}

// Health reports liveness and whether the review channel is wired up
func (s *Server) Health(w http.ResponseWriter, r *http.Request) {
	response.WriteSuccess(w, map[string]interface{}{
		"status":                     "healthy",
		"timestamp":                  time.Now().UTC().Format(time.RFC3339),
		"discord_webhook_configured": s.discordCfg.WebhookURL != "",
	})
}

func (s *Server) Start(ctx context.Context) {
	s.srv = &http.Server{
		Addr:         fmt.Sprintf(":%d", s.Port),
		Handler:      s.router,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	// Start the server in a goroutine
	go func() {
		s.logger.Info("Server listening", "addr", s.srv.Addr)
		if err := s.srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			s.logger.Error("Server error", "error", err)
			os.Exit(1)
		}
	}()
}

func (s *Server) Stop(ctx context.Context) {
	s.logger.Info("Shutting down http server...")
	if s.srv == nil {
		return
	}
	if err := s.srv.Shutdown(ctx); err != nil {
		s.logger.Error("Forced shutdown", "error", err)
	}
}
