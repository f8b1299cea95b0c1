package chi

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"strings"

	"github.com/go-chi/chi/v5"
	"github.com/oapi-codegen/runtime"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"

	"github.com/kailas-cloud/gamerec/internal/domain"
	"github.com/kailas-cloud/gamerec/internal/domain/game"
	"github.com/kailas-cloud/gamerec/internal/domain/recommendation"
	healthuc "github.com/kailas-cloud/gamerec/internal/usecase/health"
)

// CatalogService serves the live catalog.
type CatalogService interface {
	List(ctx context.Context) ([]game.Game, error)
	Lookup(ctx context.Context, needle string) ([]game.Game, error)
	Search(ctx context.Context, term string) ([]game.Game, error)
}

// Recommender serves recommendations. It never fails.
type Recommender interface {
	ByTitle(ctx context.Context, title string, topN int) []recommendation.Entry
	ByFeatures(ctx context.Context, text string, topN int) []recommendation.Entry
	Engine() recommendation.Engine
}

// HealthChecker aggregates component health.
type HealthChecker interface {
	Check(ctx context.Context) healthuc.Report
}

// Limits bound the n parameter of recommendation requests.
type Limits struct {
	DefaultTopN int
	MaxTopN     int
}

// Server exposes the catalog and recommendation API over chi.
type Server struct {
	catalog   CatalogService
	recommend Recommender
	health    HealthChecker
	limits    Limits
	logger    *zap.Logger
}

// NewServer creates an HTTP API server.
func NewServer(
	catalog CatalogService, recommend Recommender, health HealthChecker, limits Limits, logger *zap.Logger,
) *Server {
	if limits.DefaultTopN <= 0 {
		limits.DefaultTopN = recommendation.DefaultTopN
	}
	if limits.MaxTopN < limits.DefaultTopN {
		limits.MaxTopN = limits.DefaultTopN
	}
	return &Server{catalog: catalog, recommend: recommend, health: health, limits: limits, logger: logger}
}

// Routes mounts all endpoints on r.
func (s *Server) Routes(r chi.Router) {
	r.NotFound(func(w http.ResponseWriter, _ *http.Request) {
		writeError(w, http.StatusNotFound, "endpoint not found")
	})
	r.MethodNotAllowed(func(w http.ResponseWriter, _ *http.Request) {
		writeError(w, http.StatusMethodNotAllowed, "method not allowed")
	})
	r.Get(PathHealth, s.HealthCheck)
	r.Get(PathMetrics, s.Metrics)
	r.Route("/api", func(r chi.Router) {
		r.Get("/games", s.ListGames)
		r.Get("/games/lookup", s.LookupGames)
		r.Get("/search", s.SearchGames)
		r.Get("/recommend/title", s.RecommendByTitle)
		r.Post("/recommend/features", s.RecommendByFeatures)
	})
}

// ListGames handles GET /api/games.
func (s *Server) ListGames(w http.ResponseWriter, r *http.Request) {
	games, err := s.catalog.List(r.Context())
	if err != nil {
		s.handleDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, gamesResponse{Success: true, Count: len(games), Games: gamesToDTO(games)})
}

// LookupGames handles GET /api/games/lookup?title=.
func (s *Server) LookupGames(w http.ResponseWriter, r *http.Request) {
	var title string
	if err := runtime.BindQueryParameter("form", true, true, "title", r.URL.Query(), &title); err != nil {
		writeError(w, http.StatusBadRequest, "invalid parameter title: "+err.Error())
		return
	}

	games, err := s.catalog.Lookup(r.Context(), title)
	if err != nil {
		s.handleDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, gamesResponse{Success: true, Count: len(games), Games: gamesToDTO(games)})
}

// SearchGames handles GET /api/search?q=.
func (s *Server) SearchGames(w http.ResponseWriter, r *http.Request) {
	var term string
	if err := runtime.BindQueryParameter("form", true, true, "q", r.URL.Query(), &term); err != nil {
		writeError(w, http.StatusBadRequest, "invalid parameter q: "+err.Error())
		return
	}

	games, err := s.catalog.Search(r.Context(), term)
	if err != nil {
		s.handleDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, searchResponse{
		Success:    true,
		SearchTerm: term,
		Count:      len(games),
		Results:    gamesToDTO(games),
	})
}

// RecommendByTitle handles GET /api/recommend/title?title=&n=.
func (s *Server) RecommendByTitle(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()

	var title string
	if err := runtime.BindQueryParameter("form", true, false, "title", q, &title); err != nil {
		writeError(w, http.StatusBadRequest, "invalid parameter title: "+err.Error())
		return
	}
	title = strings.TrimSpace(title)
	if title == "" {
		writeError(w, http.StatusBadRequest, "game title is required")
		return
	}

	var n *int
	if err := runtime.BindQueryParameter("form", true, false, "n", q, &n); err != nil {
		writeError(w, http.StatusBadRequest, "invalid parameter n: "+err.Error())
		return
	}
	topN, err := s.topN(n)
	if err != nil {
		s.handleDomainError(w, err)
		return
	}

	entries := s.recommend.ByTitle(r.Context(), title, topN)
	writeJSON(w, http.StatusOK, recommendResponse{
		Success:         true,
		InputGame:       title,
		Engine:          string(s.recommend.Engine()),
		Count:           len(entries),
		Recommendations: entriesToDTO(entries),
	})
}

// RecommendByFeatures handles POST /api/recommend/features.
func (s *Server) RecommendByFeatures(w http.ResponseWriter, r *http.Request) {
	var req featuresRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body: "+err.Error())
		return
	}
	features := strings.TrimSpace(req.Features)
	if features == "" {
		writeError(w, http.StatusBadRequest, "features are required")
		return
	}
	topN, err := s.topN(req.N)
	if err != nil {
		s.handleDomainError(w, err)
		return
	}

	entries := s.recommend.ByFeatures(r.Context(), features, topN)
	writeJSON(w, http.StatusOK, recommendResponse{
		Success:         true,
		InputFeatures:   features,
		Engine:          string(s.recommend.Engine()),
		Count:           len(entries),
		Recommendations: entriesToDTO(entries),
	})
}

// HealthCheck handles GET /health.
func (s *Server) HealthCheck(w http.ResponseWriter, r *http.Request) {
	report := s.health.Check(r.Context())

	checks := make(map[string]string, len(report.Checks))
	for k, v := range report.Checks {
		checks[k] = string(v)
	}

	httpStatus := http.StatusOK
	if report.Checks["database"] == healthuc.CheckError {
		httpStatus = http.StatusServiceUnavailable
	}

	writeJSON(w, httpStatus, healthResponse{
		Status: string(report.Status),
		Engine: string(report.Engine),
		Checks: checks,
	})
}

// Metrics handles GET /metrics.
func (s *Server) Metrics(w http.ResponseWriter, r *http.Request) {
	promhttp.Handler().ServeHTTP(w, r)
}

// topN applies the default and validates the requested result size.
func (s *Server) topN(n *int) (int, error) {
	if n == nil {
		return s.limits.DefaultTopN, nil
	}
	if *n < 0 {
		return 0, domain.NewFieldError("n", "must be a non-negative integer")
	}
	if *n > s.limits.MaxTopN {
		return 0, domain.NewFieldError("n", "must not exceed "+strconv.Itoa(s.limits.MaxTopN))
	}
	return *n, nil
}

func (s *Server) handleDomainError(w http.ResponseWriter, err error) {
	var fe *domain.FieldError
	if errors.As(err, &fe) {
		writeError(w, http.StatusBadRequest, fe.Error())
		return
	}
	if errors.Is(err, domain.ErrInvalidRequest) {
		writeError(w, http.StatusBadRequest, domain.ErrInvalidRequest.Error())
		return
	}
	s.logger.Error("internal error", zap.Error(err))
	writeError(w, http.StatusInternalServerError, "internal error")
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, errorResponse{Success: false, Error: message})
}
