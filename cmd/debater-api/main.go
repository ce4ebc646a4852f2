package main

import (
	"context"
	"log"
	"net/http"

	"github.com/joho/godotenv"

	httpadapter "github.com/debater-ai/debater-agent/internal/adapters/http"
	"github.com/debater-ai/debater-agent/internal/adapters/llm"
	memstore "github.com/debater-ai/debater-agent/internal/adapters/storage/memory"
	"github.com/debater-ai/debater-agent/internal/app/analysis"
	"github.com/debater-ai/debater-agent/internal/config"
	"github.com/debater-ai/debater-agent/internal/domain"
)

func main() {
	ctx := context.Background()

	// .env is optional; real env vars win either way.
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("configuration error: %v", err)
	}

	var llmClient domain.CompletionClient
	if cfg.UseMockLLM {
		log.Println("[LLM] Using MOCK completion client")
		llmClient = llm.NewMockLLM()
	} else {
		log.Println("[LLM] Using Gemini completion client, model:", cfg.ModelName)
		llmClient, err = llm.NewGeminiClient(ctx, cfg.APIKey, cfg.ModelName)
		if err != nil {
			log.Fatalf("error initializing Gemini client: %v", err)
		}
	}

	sessionStore := memstore.NewSessionStore()
	svc := analysis.NewService(llmClient, sessionStore, cfg.ModelName)

	handler := httpadapter.NewServer(svc)

	addr := ":" + cfg.Port
	log.Println("Debater API listening on", addr)
	if err := http.ListenAndServe(addr, handler); err != nil {
		log.Fatal(err)
	}
}
