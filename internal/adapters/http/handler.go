package httpadapter

import (
	"encoding/json"
	"errors"
	"net/http"
	"strings"

	"github.com/debater-ai/debater-agent/internal/app/analysis"
	"github.com/debater-ai/debater-agent/internal/domain"
	"github.com/debater-ai/debater-agent/internal/observability"
)

type Server struct {
	svc *analysis.Service
}

func NewServer(svc *analysis.Service) http.Handler {
	s := &Server{svc: svc}
	mux := http.NewServeMux()

	mux.HandleFunc("/healthz", s.handleHealthz)

	// /intent  → classify only, no agent stage runs
	// /chat    → chat turn, classifier skipped
	// /analyze → full turn: classify, then chat or the whole pipeline
	mux.HandleFunc("/intent", s.handleIntent)
	mux.HandleFunc("/chat", s.handleChat)
	mux.HandleFunc("/analyze", s.handleAnalyze)

	return chainMiddlewares(mux, withLogging, withCORS)
}

// ─────────────────────────────────────────────
// DTOs (request/response)
// ─────────────────────────────────────────────

type ideaRequest struct {
	Idea string `json:"idea"`
	// SessionID continues a conversation; omitted starts a new one and
	// the created id is echoed back.
	SessionID string `json:"session_id,omitempty"`
}

type intentResponse struct {
	Type      string `json:"type"`
	Intent    string `json:"intent"`
	SessionID string `json:"session_id"`
}

type chatResponse struct {
	Type                string `json:"type"`
	ConversationalAgent string `json:"conversationalAgent"`
	SessionID           string `json:"session_id"`
}

type analysisResponse struct {
	Type                string `json:"type"`
	ResearchAgent       string `json:"researchAgent"`
	GoodAgent           string `json:"goodAgent"`
	DevilAgent          string `json:"devilAgent"`
	FinalConclusion     string `json:"finalConclusion"`
	ConversationalAgent string `json:"conversationalAgent"`
	SessionID           string `json:"session_id"`
}

// ─────────────────────────────────────────────
// Concrete handlers
// ─────────────────────────────────────────────

func (s *Server) handleHealthz(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		methodNotAllowed(w)
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func (s *Server) handleIntent(w http.ResponseWriter, r *http.Request) {
	req, ok := decodeIdeaRequest(w, r)
	if !ok {
		return
	}

	sessionID, intent, err := s.svc.ClassifyIntent(r.Context(), analysis.TurnInput{
		SessionID: domain.SessionID(req.SessionID),
		Idea:      req.Idea,
	})
	if err != nil {
		writeError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, intentResponse{
		Type:      "intent",
		Intent:    string(intent),
		SessionID: string(sessionID),
	})
}

func (s *Server) handleChat(w http.ResponseWriter, r *http.Request) {
	req, ok := decodeIdeaRequest(w, r)
	if !ok {
		return
	}

	out, err := s.svc.ChatTurn(r.Context(), analysis.TurnInput{
		SessionID: domain.SessionID(req.SessionID),
		Idea:      req.Idea,
	})
	if err != nil {
		writeError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, chatResponse{
		Type:                "chat",
		ConversationalAgent: out.Result.Chat,
		SessionID:           string(out.SessionID),
	})
}

func (s *Server) handleAnalyze(w http.ResponseWriter, r *http.Request) {
	req, ok := decodeIdeaRequest(w, r)
	if !ok {
		return
	}

	out, err := s.svc.ProcessTurn(r.Context(), analysis.TurnInput{
		SessionID: domain.SessionID(req.SessionID),
		Idea:      req.Idea,
	})
	if err != nil {
		writeError(w, r, err)
		return
	}

	if out.Result.Intent == domain.IntentChat {
		writeJSON(w, http.StatusOK, chatResponse{
			Type:                "chat",
			ConversationalAgent: out.Result.Chat,
			SessionID:           string(out.SessionID),
		})
		return
	}

	a := out.Result.Analysis
	writeJSON(w, http.StatusOK, analysisResponse{
		Type:                "analysis",
		ResearchAgent:       a.Research,
		GoodAgent:           a.Positives,
		DevilAgent:          a.Flaws,
		FinalConclusion:     a.Synthesis,
		ConversationalAgent: a.DeliveredReply,
		SessionID:           string(out.SessionID),
	})
}

// ─────────────────────────────────────────────
// HTTP Helpers
// ─────────────────────────────────────────────

func decodeIdeaRequest(w http.ResponseWriter, r *http.Request) (ideaRequest, bool) {
	var req ideaRequest

	if r.Method != http.MethodPost {
		methodNotAllowed(w)
		return req, false
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		badRequest(w, "invalid JSON body")
		return req, false
	}
	if strings.TrimSpace(req.Idea) == "" {
		badRequest(w, "idea is required")
		return req, false
	}

	return req, true
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func badRequest(w http.ResponseWriter, msg string) {
	writeJSON(w, http.StatusBadRequest, map[string]string{
		"error": msg,
	})
}

func writeError(w http.ResponseWriter, r *http.Request, err error) {
	if errors.Is(err, domain.ErrSessionNotFound) {
		writeJSON(w, http.StatusNotFound, map[string]string{
			"error": domain.ErrSessionNotFound.Error(),
		})
		return
	}

	observability.LoggerFromContext(r.Context()).Error("turn failed", "error", err)
	writeJSON(w, http.StatusInternalServerError, map[string]string{
		"error":  "internal server error",
		"detail": err.Error(),
	})
}

func methodNotAllowed(w http.ResponseWriter) {
	writeJSON(w, http.StatusMethodNotAllowed, map[string]string{
		"error": "method not allowed",
	})
}
