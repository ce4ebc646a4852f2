package httpadapter_test

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	httpadapter "github.com/debater-ai/debater-agent/internal/adapters/http"
	"github.com/debater-ai/debater-agent/internal/adapters/llm/llmtest"
	memstore "github.com/debater-ai/debater-agent/internal/adapters/storage/memory"
	"github.com/debater-ai/debater-agent/internal/app/analysis"
	"github.com/debater-ai/debater-agent/internal/domain"
)

// scripted answers per stage, keyed on instruction markers.
func newTestServer(t *testing.T) http.Handler {
	t.Helper()

	client := &llmtest.Client{}
	client.CompleteFn = func(_ context.Context, req domain.CompletionRequest) (string, error) {
		first := req.Messages[0]
		last := req.Messages[len(req.Messages)-1]
		switch {
		case strings.Contains(last.Content, "READY or NOT_READY"):
			return "READY", nil
		case strings.Contains(first.Content, "Research Analyst Agent"):
			return "research findings", nil
		case strings.Contains(first.Content, "Good Agent"):
			return "positives list", nil
		case strings.Contains(first.Content, "Devil Agent"):
			return "flaws list", nil
		case strings.Contains(first.Content, "Response Composer Agent"):
			return "balanced synthesis", nil
		case strings.Contains(last.Content, "Deliver this information"):
			return "delivered reply", nil
		default:
			return "chat reply", nil
		}
	}

	svc := analysis.NewService(client, memstore.NewSessionStore(), "test-model")
	return httpadapter.NewServer(svc)
}

func doJSON(t *testing.T, srv http.Handler, method, path, body string) (*httptest.ResponseRecorder, map[string]any) {
	t.Helper()

	req := httptest.NewRequest(method, path, bytes.NewReader([]byte(body)))
	w := httptest.NewRecorder()
	srv.ServeHTTP(w, req)

	var decoded map[string]any
	if w.Body.Len() > 0 {
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &decoded))
	}
	return w, decoded
}

func TestHealthz(t *testing.T) {
	srv := newTestServer(t)

	req := httptest.NewRequest(http.MethodGet, "/healthz", nil)
	w := httptest.NewRecorder()
	srv.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
}

func TestAnalyzeShortInputReturnsChat(t *testing.T) {
	srv := newTestServer(t)

	w, body := doJSON(t, srv, http.MethodPost, "/analyze", `{"idea":"hello"}`)
	require.Equal(t, http.StatusOK, w.Code)

	assert.Equal(t, "chat", body["type"])
	assert.Equal(t, "chat reply", body["conversationalAgent"])
	assert.NotEmpty(t, body["session_id"])
}

func TestAnalyzeFullPipeline(t *testing.T) {
	srv := newTestServer(t)

	w, body := doJSON(t, srv, http.MethodPost, "/analyze",
		`{"idea":"a subscription box for rare houseplants"}`)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	assert.Equal(t, "analysis", body["type"])
	assert.Equal(t, "research findings", body["researchAgent"])
	assert.Equal(t, "positives list", body["goodAgent"])
	assert.Equal(t, "flaws list", body["devilAgent"])
	assert.Equal(t, "balanced synthesis", body["finalConclusion"])
	assert.Equal(t, "delivered reply", body["conversationalAgent"])
	assert.NotEmpty(t, body["session_id"])
}

func TestAnalyzeContinuesSession(t *testing.T) {
	srv := newTestServer(t)

	_, first := doJSON(t, srv, http.MethodPost, "/analyze", `{"idea":"hello"}`)
	sessionID, _ := first["session_id"].(string)
	require.NotEmpty(t, sessionID)

	w, second := doJSON(t, srv, http.MethodPost, "/analyze",
		`{"idea":"hi again","session_id":"`+sessionID+`"}`)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, sessionID, second["session_id"])
}

func TestIntentEndpoint(t *testing.T) {
	srv := newTestServer(t)

	w, body := doJSON(t, srv, http.MethodPost, "/intent",
		`{"idea":"a subscription box for rare houseplants"}`)
	require.Equal(t, http.StatusOK, w.Code)

	assert.Equal(t, "intent", body["type"])
	assert.Equal(t, "analysis", body["intent"])
}

func TestChatEndpoint(t *testing.T) {
	srv := newTestServer(t)

	w, body := doJSON(t, srv, http.MethodPost, "/chat", `{"idea":"hello there"}`)
	require.Equal(t, http.StatusOK, w.Code)

	assert.Equal(t, "chat", body["type"])
	assert.Equal(t, "chat reply", body["conversationalAgent"])
}

func TestBadRequests(t *testing.T) {
	srv := newTestServer(t)

	w, _ := doJSON(t, srv, http.MethodPost, "/analyze", `{not json`)
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w, _ = doJSON(t, srv, http.MethodPost, "/analyze", `{"idea":"   "}`)
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w, _ = doJSON(t, srv, http.MethodGet, "/analyze", ``)
	assert.Equal(t, http.StatusMethodNotAllowed, w.Code)
}

func TestUnknownSessionIs404(t *testing.T) {
	srv := newTestServer(t)

	w, body := doJSON(t, srv, http.MethodPost, "/chat",
		`{"idea":"hello there","session_id":"nope"}`)
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Equal(t, "session not found", body["error"])
}

func TestServiceErrorIs500WithDetail(t *testing.T) {
	client := &llmtest.Client{Err: &domain.ServiceError{Op: "generate content", Err: assert.AnError}}
	svc := analysis.NewService(client, memstore.NewSessionStore(), "test-model")
	srv := httpadapter.NewServer(svc)

	w, body := doJSON(t, srv, http.MethodPost, "/chat", `{"idea":"hello there"}`)
	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.Equal(t, "internal server error", body["error"])
	assert.Contains(t, body["detail"], "completion service")
}

func TestCORSPreflight(t *testing.T) {
	srv := newTestServer(t)

	req := httptest.NewRequest(http.MethodOptions, "/analyze", nil)
	w := httptest.NewRecorder()
	srv.ServeHTTP(w, req)

	assert.Equal(t, http.StatusNoContent, w.Code)
	assert.Equal(t, "*", w.Header().Get("Access-Control-Allow-Origin"))
}
