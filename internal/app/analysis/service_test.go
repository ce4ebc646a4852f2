package analysis_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/debater-ai/debater-agent/internal/adapters/llm/llmtest"
	memstore "github.com/debater-ai/debater-agent/internal/adapters/storage/memory"
	"github.com/debater-ai/debater-agent/internal/app/analysis"
	"github.com/debater-ai/debater-agent/internal/domain"
)

func newService(client *llmtest.Client) (*analysis.Service, *memstore.SessionStore) {
	store := memstore.NewSessionStore()
	return analysis.NewService(client, store, "test-model"), store
}

func TestChatTurnCreatesSession(t *testing.T) {
	svc, store := newService(&llmtest.Client{Reply: "hi there"})

	out, err := svc.ChatTurn(context.Background(), analysis.TurnInput{Idea: "hello"})
	require.NoError(t, err)

	assert.NotEmpty(t, out.SessionID)
	assert.Equal(t, domain.IntentChat, out.Result.Intent)
	assert.Equal(t, "hi there", out.Result.Chat)

	sess, err := store.GetSession(out.SessionID)
	require.NoError(t, err)
	assert.Len(t, sess.Transcript, 3)
}

func TestTurnsOnSameSessionAccumulate(t *testing.T) {
	svc, store := newService(&llmtest.Client{Reply: "reply"})

	first, err := svc.ChatTurn(context.Background(), analysis.TurnInput{Idea: "hello"})
	require.NoError(t, err)

	second, err := svc.ChatTurn(context.Background(), analysis.TurnInput{
		SessionID: first.SessionID,
		Idea:      "hey again",
	})
	require.NoError(t, err)
	assert.Equal(t, first.SessionID, second.SessionID)

	sess, err := store.GetSession(first.SessionID)
	require.NoError(t, err)
	assert.Len(t, sess.Transcript, 5, "persona plus two user/assistant pairs")
}

func TestSessionsAreIsolated(t *testing.T) {
	svc, store := newService(&llmtest.Client{Reply: "reply"})

	a, err := svc.ChatTurn(context.Background(), analysis.TurnInput{Idea: "hello"})
	require.NoError(t, err)
	b, err := svc.ChatTurn(context.Background(), analysis.TurnInput{Idea: "hello"})
	require.NoError(t, err)

	require.NotEqual(t, a.SessionID, b.SessionID)

	sessA, err := store.GetSession(a.SessionID)
	require.NoError(t, err)
	sessB, err := store.GetSession(b.SessionID)
	require.NoError(t, err)
	assert.Len(t, sessA.Transcript, 3)
	assert.Len(t, sessB.Transcript, 3)
}

func TestUnknownSessionFails(t *testing.T) {
	svc, _ := newService(&llmtest.Client{})

	_, err := svc.ProcessTurn(context.Background(), analysis.TurnInput{
		SessionID: "missing",
		Idea:      "anything at all really",
	})
	assert.ErrorIs(t, err, domain.ErrSessionNotFound)
}

func TestClassifyIntentDoesNotMutateTranscript(t *testing.T) {
	svc, store := newService(&llmtest.Client{Reply: "READY"})

	id, intent, err := svc.ClassifyIntent(context.Background(), analysis.TurnInput{
		Idea: "a subscription box for rare houseplants",
	})
	require.NoError(t, err)
	assert.Equal(t, domain.IntentAnalysis, intent)

	sess, err := store.GetSession(id)
	require.NoError(t, err)
	assert.Len(t, sess.Transcript, 1, "classification appends nothing")
}

func TestProcessTurnFullPipeline(t *testing.T) {
	// Every stage answers "READY": the classifier routes to analysis and
	// each downstream field carries the stub, proving the wiring.
	svc, store := newService(&llmtest.Client{Reply: "READY"})

	out, err := svc.ProcessTurn(context.Background(), analysis.TurnInput{
		Idea: "a subscription box for rare houseplants",
	})
	require.NoError(t, err)

	require.Equal(t, domain.IntentAnalysis, out.Result.Intent)
	require.NotNil(t, out.Result.Analysis)
	assert.Equal(t, "READY", out.Result.Analysis.DeliveredReply)

	sess, err := store.GetSession(out.SessionID)
	require.NoError(t, err)
	assert.Len(t, sess.Transcript, 5)
	assert.NotNil(t, sess.LastAnalysis)
}
