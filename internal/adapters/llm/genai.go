package llm

import (
	"context"
	"errors"
	"strings"

	"google.golang.org/genai"

	"github.com/debater-ai/debater-agent/internal/domain"
)

var errEmptyResponse = errors.New("empty response text")

// Interface compliance check.
var _ domain.CompletionClient = (*GeminiClient)(nil)

// GeminiClient implements domain.CompletionClient on the Gemini API.
type GeminiClient struct {
	client       *genai.Client
	defaultModel string
}

// NewGeminiClient creates a completion client with the given API key.
func NewGeminiClient(ctx context.Context, apiKey, defaultModel string) (*GeminiClient, error) {
	gc, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  apiKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		return nil, &domain.ServiceError{Op: "create client", Err: err}
	}

	return &GeminiClient{
		client:       gc,
		defaultModel: defaultModel,
	}, nil
}

// Complete implements domain.CompletionClient.
//
// System-role messages are folded into the model's system instruction;
// user/assistant messages become the conversation contents. The Gemini
// wire format has no inline system role, so this keeps the ordered
// transcript semantics intact while speaking the provider's dialect.
func (c *GeminiClient) Complete(ctx context.Context, req domain.CompletionRequest) (string, error) {
	model := req.Model
	if model == "" {
		model = c.defaultModel
	}

	var system []string
	var contents []*genai.Content

	for _, m := range req.Messages {
		switch m.Role {
		case domain.RoleSystem:
			system = append(system, m.Content)
		case domain.RoleAssistant:
			contents = append(contents, genai.NewContentFromText(m.Content, genai.RoleModel))
		default:
			contents = append(contents, genai.NewContentFromText(m.Content, genai.RoleUser))
		}
	}

	cfg := &genai.GenerateContentConfig{
		Temperature:     req.Temperature,
		TopP:            req.TopP,
		MaxOutputTokens: req.MaxOutputTokens,
	}
	if len(system) > 0 {
		cfg.SystemInstruction = genai.NewContentFromText(strings.Join(system, "\n\n"), genai.RoleUser)
	}

	res, err := c.client.Models.GenerateContent(ctx, model, contents, cfg)
	if err != nil {
		return "", &domain.ServiceError{Op: "generate content", Err: err}
	}

	text := res.Text()
	if text == "" {
		return "", &domain.ServiceError{Op: "generate content", Err: errEmptyResponse}
	}

	return text, nil
}
