package server

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/gorilla/mux"
	"go.uber.org/zap"

	"github.com/AndrewK67/shorts-studio/internal/domain"
	apperrors "github.com/AndrewK67/shorts-studio/pkg/errors"
)

type errorBody struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

type errorResponse struct {
	Error errorBody `json:"error"`
}

func (s *Server) respond(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if payload != nil {
		if err := json.NewEncoder(w).Encode(payload); err != nil {
			s.logger.Error("Response encoding failed", zap.Error(err))
		}
	}
}

func (s *Server) respondError(w http.ResponseWriter, err error) {
	status := http.StatusInternalServerError
	code := "INTERNAL_ERROR"
	message := "internal error"

	if app := appErrorOf(err); app != nil {
		status = app.StatusCode
		code = app.Code
		message = app.Message
	}

	if status >= 500 {
		s.logger.Error("Request failed", zap.String("code", code), zap.Error(err))
	} else {
		s.logger.Warn("Request rejected", zap.String("code", code), zap.Error(err))
	}
	s.respond(w, status, errorResponse{Error: errorBody{Code: code, Message: message}})
}

// appErrorOf digs the embedded AppError out of the typed error chain.
func appErrorOf(err error) *apperrors.AppError {
	var parseErr *apperrors.ParseError
	if errors.As(err, &parseErr) {
		return parseErr.AppError
	}
	var validationErr *apperrors.ValidationError
	if errors.As(err, &validationErr) {
		return validationErr.AppError
	}
	var upstreamErr *apperrors.UpstreamError
	if errors.As(err, &upstreamErr) {
		return upstreamErr.AppError
	}
	var cacheErr *apperrors.CacheError
	if errors.As(err, &cacheErr) {
		return cacheErr.AppError
	}
	var storeErr *apperrors.StoreError
	if errors.As(err, &storeErr) {
		return storeErr.AppError
	}
	var configErr *apperrors.ConfigError
	if errors.As(err, &configErr) {
		return configErr.AppError
	}
	return nil
}

func (s *Server) decodeBody(w http.ResponseWriter, r *http.Request, dest any) bool {
	if err := json.NewDecoder(r.Body).Decode(dest); err != nil {
		s.respondError(w, apperrors.NewValidationError("request body is not valid JSON", "body", nil))
		return false
	}
	return true
}

// loadProfile resolves a profile reference shared by the generation
// handlers. Responds with 404 and returns nil when the profile is unknown.
func (s *Server) loadProfile(w http.ResponseWriter, r *http.Request, profileID string) *domain.CreatorProfile {
	p, err := s.deps.Profiles.Get(r.Context(), profileID)
	if err != nil {
		s.respondError(w, err)
		return nil
	}
	if p == nil {
		s.respond(w, http.StatusNotFound, errorResponse{Error: errorBody{
			Code: "NOT_FOUND", Message: "profile not found",
		}})
		return nil
	}
	return p
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	health := map[string]any{"status": "ok"}

	if s.deps.StorePing != nil {
		if err := s.deps.StorePing(r.Context()); err != nil {
			health["status"] = "degraded"
			health["store"] = err.Error()
			s.respond(w, http.StatusServiceUnavailable, health)
			return
		}
		health["store"] = "ok"
	}
	if s.deps.ModelStatus != nil {
		status := s.deps.ModelStatus()
		health["model_circuit"] = string(status.State)
	}
	s.respond(w, http.StatusOK, health)
}

func (s *Server) handleSaveProfile(w http.ResponseWriter, r *http.Request) {
	var p domain.CreatorProfile
	if !s.decodeBody(w, r, &p) {
		return
	}
	if err := s.deps.Profiles.Save(r.Context(), &p); err != nil {
		s.respondError(w, err)
		return
	}
	s.respond(w, http.StatusCreated, &p)
}

func (s *Server) handleGetProfile(w http.ResponseWriter, r *http.Request) {
	if p := s.loadProfile(w, r, mux.Vars(r)["id"]); p != nil {
		s.respond(w, http.StatusOK, p)
	}
}

func (s *Server) handleDeleteProfile(w http.ResponseWriter, r *http.Request) {
	if err := s.deps.Profiles.Delete(r.Context(), mux.Vars(r)["id"]); err != nil {
		s.respondError(w, err)
		return
	}
	s.respond(w, http.StatusNoContent, nil)
}

type regionSummary struct {
	CountryCode     string `json:"country_code"`
	CountryName     string `json:"country_name"`
	LanguageVariant string `json:"language_variant"`
	Hemisphere      string `json:"hemisphere"`
}

func (s *Server) handleListRegions(w http.ResponseWriter, r *http.Request) {
	catalog := s.deps.Resolver.Catalog()
	codes := catalog.AllCountryCodes()
	regions := make([]regionSummary, 0, len(codes))
	for _, code := range codes {
		cfg := catalog.Config(code)
		regions = append(regions, regionSummary{
			CountryCode:     cfg.CountryCode,
			CountryName:     cfg.CountryName,
			LanguageVariant: cfg.LanguageVariant,
			Hemisphere:      string(cfg.Hemisphere),
		})
	}
	s.respond(w, http.StatusOK, map[string]any{"regions": regions})
}

func (s *Server) handleRegionHolidays(w http.ResponseWriter, r *http.Request) {
	code := mux.Vars(r)["code"]
	catalog := s.deps.Resolver.Catalog()
	if !catalog.Has(code) {
		s.respond(w, http.StatusNotFound, errorResponse{Error: errorBody{
			Code: "NOT_FOUND", Message: "unknown region",
		}})
		return
	}

	cfg := catalog.Config(code)
	s.respond(w, http.StatusOK, map[string]any{
		"country_code": cfg.CountryCode,
		"holidays":     cfg.Holidays,
	})
}

type generateTopicsRequest struct {
	ProjectID    string               `json:"project_id"`
	ProfileID    string               `json:"profile_id"`
	Count        int                  `json:"count"`
	Month        int                  `json:"month"`
	Year         int                  `json:"year"`
	CustomEvents []domain.CustomEvent `json:"custom_events,omitempty"`
}

func (s *Server) handleGenerateTopics(w http.ResponseWriter, r *http.Request) {
	var body generateTopicsRequest
	if !s.decodeBody(w, r, &body) {
		return
	}
	p := s.loadProfile(w, r, body.ProfileID)
	if p == nil {
		return
	}

	result, err := s.deps.Generator.GenerateTopics(r.Context(), &domain.TopicGenerationRequest{
		ProjectID:    body.ProjectID,
		Profile:      p,
		Count:        body.Count,
		Month:        body.Month,
		Year:         body.Year,
		CustomEvents: body.CustomEvents,
	})
	if err != nil {
		s.respondError(w, err)
		return
	}
	s.respond(w, http.StatusOK, result)
}

func (s *Server) handleListTopics(w http.ResponseWriter, r *http.Request) {
	topics, err := s.deps.Generator.Topics(r.Context(), mux.Vars(r)["id"])
	if err != nil {
		s.respondError(w, err)
		return
	}
	s.respond(w, http.StatusOK, map[string]any{"topics": topics})
}

type generateScriptsRequest struct {
	ProjectID string   `json:"project_id"`
	ProfileID string   `json:"profile_id"`
	TopicIDs  []string `json:"topic_ids,omitempty"`
	Month     int      `json:"month"`
	Year      int      `json:"year"`
}

func (s *Server) handleGenerateScripts(w http.ResponseWriter, r *http.Request) {
	var body generateScriptsRequest
	if !s.decodeBody(w, r, &body) {
		return
	}
	p := s.loadProfile(w, r, body.ProfileID)
	if p == nil {
		return
	}

	topics, err := s.deps.Generator.Topics(r.Context(), body.ProjectID)
	if err != nil {
		s.respondError(w, err)
		return
	}
	if len(body.TopicIDs) > 0 {
		wanted := make(map[string]bool, len(body.TopicIDs))
		for _, id := range body.TopicIDs {
			wanted[id] = true
		}
		filtered := topics[:0]
		for _, t := range topics {
			if wanted[t.ID] {
				filtered = append(filtered, t)
			}
		}
		topics = filtered
	}

	result, err := s.deps.Generator.GenerateScripts(r.Context(), &domain.ScriptGenerationRequest{
		ProjectID: body.ProjectID,
		Profile:   p,
		Topics:    topics,
		Month:     body.Month,
		Year:      body.Year,
	})
	if err != nil {
		s.respondError(w, err)
		return
	}
	s.respond(w, http.StatusOK, result)
}

func (s *Server) handleListScripts(w http.ResponseWriter, r *http.Request) {
	scripts, err := s.deps.Generator.Scripts(r.Context(), mux.Vars(r)["id"])
	if err != nil {
		s.respondError(w, err)
		return
	}
	s.respond(w, http.StatusOK, map[string]any{"scripts": scripts})
}

type generateBatchPlanRequest struct {
	ProjectID string   `json:"project_id"`
	ProfileID string   `json:"profile_id"`
	ScriptIDs []string `json:"script_ids,omitempty"`
}

func (s *Server) handleGenerateBatchPlan(w http.ResponseWriter, r *http.Request) {
	var body generateBatchPlanRequest
	if !s.decodeBody(w, r, &body) {
		return
	}
	p := s.loadProfile(w, r, body.ProfileID)
	if p == nil {
		return
	}

	scripts, err := s.deps.Generator.Scripts(r.Context(), body.ProjectID)
	if err != nil {
		s.respondError(w, err)
		return
	}
	if len(body.ScriptIDs) > 0 {
		wanted := make(map[string]bool, len(body.ScriptIDs))
		for _, id := range body.ScriptIDs {
			wanted[id] = true
		}
		filtered := scripts[:0]
		for _, sc := range scripts {
			if wanted[sc.ID] {
				filtered = append(filtered, sc)
			}
		}
		scripts = filtered
	}

	result, err := s.deps.Generator.GenerateBatchPlan(r.Context(), &domain.BatchPlanRequest{
		ProjectID: body.ProjectID,
		Profile:   p,
		Scripts:   scripts,
	})
	if err != nil {
		s.respondError(w, err)
		return
	}
	s.respond(w, http.StatusOK, result)
}
