package server

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"go.uber.org/zap"

	"brandvoice/automation"
	"brandvoice/quality"
)

const invocationTimeout = 60 * time.Second

type Drafter interface {
	Run(ctx context.Context, recordID string) (automation.DraftResult, error)
}

type Scorer interface {
	Run(ctx context.Context, recordID string) (automation.ScoreResult, error)
}

type Reviewer interface {
	Run(ctx context.Context, recordID string) (automation.ReviewResult, error)
}

// Server exposes each invocation as a webhook.
type Server struct {
	drafter  Drafter
	scorer   Scorer
	reviewer Reviewer
	logger   *zap.Logger
}

func New(drafter Drafter, scorer Scorer, reviewer Reviewer, logger *zap.Logger) (*Server, error) {
	if drafter == nil || scorer == nil || reviewer == nil {
		return nil, errors.New("drafter, scorer and reviewer are required")
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Server{drafter: drafter, scorer: scorer, reviewer: reviewer, logger: logger}, nil
}

func (s *Server) Routes() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("POST /api/records/{id}/draft", s.handleDraft)
	mux.HandleFunc("POST /api/records/{id}/score", s.handleScore)
	mux.HandleFunc("POST /api/records/{id}/review", s.handleReview)
	mux.HandleFunc("GET /healthz", func(w http.ResponseWriter, _ *http.Request) {
		writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
	})
	return s.logMiddleware(mux)
}

// --- Handlers ---

type draftResp struct {
	TriggerID string `json:"trigger_id"`
	TargetID  string `json:"target_id"`
	UpdatedID string `json:"updated_id"`
	Chars     int    `json:"chars"`
}

type scoreResp struct {
	RecordID  string         `json:"record_id"`
	UpdatedID string         `json:"updated_id"`
	Rating    string         `json:"rating"`
	Report    quality.Report `json:"report"`
}

type reviewResp struct {
	RecordID  string `json:"record_id"`
	UpdatedID string `json:"updated_id,omitempty"`
	Analysis  string `json:"analysis"`
}

type errorResp struct {
	Kind  automation.Kind `json:"kind"`
	Error string          `json:"error"`
}

func (s *Server) handleDraft(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), invocationTimeout)
	defer cancel()
	res, err := s.drafter.Run(ctx, r.PathValue("id"))
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, draftResp{
		TriggerID: res.TriggerID,
		TargetID:  res.TargetID,
		UpdatedID: res.UpdatedID,
		Chars:     len(res.Draft.Text),
	})
}

func (s *Server) handleScore(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), invocationTimeout)
	defer cancel()
	res, err := s.scorer.Run(ctx, r.PathValue("id"))
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, scoreResp{
		RecordID:  res.RecordID,
		UpdatedID: res.UpdatedID,
		Rating:    quality.Rating(res.Report.Score),
		Report:    res.Report,
	})
}

func (s *Server) handleReview(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), invocationTimeout)
	defer cancel()
	res, err := s.reviewer.Run(ctx, r.PathValue("id"))
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, reviewResp{RecordID: res.RecordID, UpdatedID: res.UpdatedID, Analysis: res.Analysis})
}

// --- Helpers ---

func statusFor(kind automation.Kind) int {
	switch kind {
	case automation.KindNotFound:
		return http.StatusNotFound
	case automation.KindRemoteCall, automation.KindExtraction:
		return http.StatusBadGateway
	default:
		return http.StatusInternalServerError
	}
}

func writeError(w http.ResponseWriter, err error) {
	kind := automation.KindOf(err)
	writeJSON(w, statusFor(kind), errorResp{Kind: kind, Error: err.Error()})
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

type statusRecorder struct {
	http.ResponseWriter
	status int
}

func (r *statusRecorder) WriteHeader(code int) {
	r.status = code
	r.ResponseWriter.WriteHeader(code)
}

func (s *Server) logMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		rec := &statusRecorder{ResponseWriter: w, status: http.StatusOK}
		next.ServeHTTP(rec, r)
		s.logger.Info("request",
			zap.String("method", r.Method),
			zap.String("path", r.URL.Path),
			zap.Int("status", rec.status),
			zap.Duration("took", time.Since(start)))
	})
}
