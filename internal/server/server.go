package server

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/gorilla/mux"
	"go.uber.org/zap"

	"github.com/AndrewK67/shorts-studio/internal/constants"
	"github.com/AndrewK67/shorts-studio/internal/domain"
	"github.com/AndrewK67/shorts-studio/internal/region"
	"github.com/AndrewK67/shorts-studio/internal/util"
)

// GeneratorService is the generation pipeline surface the API exposes.
type GeneratorService interface {
	GenerateTopics(ctx context.Context, req *domain.TopicGenerationRequest) (*domain.TopicGenerationResult, error)
	GenerateScripts(ctx context.Context, req *domain.ScriptGenerationRequest) (*domain.ScriptGenerationResult, error)
	GenerateBatchPlan(ctx context.Context, req *domain.BatchPlanRequest) (*domain.BatchPlanResult, error)
	Topics(ctx context.Context, projectID string) ([]*domain.Topic, error)
	Scripts(ctx context.Context, projectID string) ([]*domain.Script, error)
}

// ProfileService is the profile surface the API exposes.
type ProfileService interface {
	Save(ctx context.Context, p *domain.CreatorProfile) error
	Get(ctx context.Context, id string) (*domain.CreatorProfile, error)
	Delete(ctx context.Context, id string) error
}

type Deps struct {
	Generator   GeneratorService
	Profiles    ProfileService
	Resolver    *region.Resolver
	StorePing   func(ctx context.Context) error
	ModelStatus func() util.CircuitBreakerStatus
}

type Server struct {
	deps   Deps
	http   *http.Server
	logger *zap.Logger
}

func New(host string, port int, deps Deps, logger *zap.Logger) *Server {
	s := &Server{deps: deps, logger: logger}

	router := mux.NewRouter()
	router.Use(s.logMiddleware)

	router.HandleFunc("/healthz", s.handleHealth).Methods(http.MethodGet)

	api := router.PathPrefix("/api/v1").Subrouter()
	api.HandleFunc("/profiles", s.handleSaveProfile).Methods(http.MethodPost)
	api.HandleFunc("/profiles/{id}", s.handleGetProfile).Methods(http.MethodGet)
	api.HandleFunc("/profiles/{id}", s.handleDeleteProfile).Methods(http.MethodDelete)
	api.HandleFunc("/regions", s.handleListRegions).Methods(http.MethodGet)
	api.HandleFunc("/regions/{code}/holidays", s.handleRegionHolidays).Methods(http.MethodGet)
	api.HandleFunc("/topics/generate", s.handleGenerateTopics).Methods(http.MethodPost)
	api.HandleFunc("/projects/{id}/topics", s.handleListTopics).Methods(http.MethodGet)
	api.HandleFunc("/scripts/generate", s.handleGenerateScripts).Methods(http.MethodPost)
	api.HandleFunc("/projects/{id}/scripts", s.handleListScripts).Methods(http.MethodGet)
	api.HandleFunc("/batch-plan/generate", s.handleGenerateBatchPlan).Methods(http.MethodPost)

	s.http = &http.Server{
		Addr:         fmt.Sprintf("%s:%d", host, port),
		Handler:      router,
		ReadTimeout:  constants.ServerConfig.ReadTimeout,
		WriteTimeout: constants.ServerConfig.WriteTimeout,
		IdleTimeout:  constants.ServerConfig.IdleTimeout,
	}
	return s
}

func (s *Server) Start() error {
	s.logger.Info("HTTP server listening", zap.String("addr", s.http.Addr))
	if err := s.http.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		return err
	}
	return nil
}

func (s *Server) Shutdown(ctx context.Context) error {
	return s.http.Shutdown(ctx)
}

// Handler exposes the router for tests.
func (s *Server) Handler() http.Handler {
	return s.http.Handler
}

func (s *Server) logMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		next.ServeHTTP(w, r)
		s.logger.Debug("Request handled",
			zap.String("method", r.Method),
			zap.String("path", r.URL.Path),
			zap.Duration("elapsed", time.Since(start)))
	})
}
