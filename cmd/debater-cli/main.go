package main

import (
	"bufio"
	"context"
	"fmt"
	"log"
	"os"
	"strings"

	"github.com/joho/godotenv"

	"github.com/debater-ai/debater-agent/internal/adapters/llm"
	memstore "github.com/debater-ai/debater-agent/internal/adapters/storage/memory"
	"github.com/debater-ai/debater-agent/internal/app/analysis"
	"github.com/debater-ai/debater-agent/internal/config"
	"github.com/debater-ai/debater-agent/internal/domain"
)

func main() {
	ctx := context.Background()

	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("configuration error: %v", err)
	}

	var llmClient domain.CompletionClient
	if cfg.UseMockLLM {
		fmt.Println("(using mock completion client)")
		llmClient = llm.NewMockLLM()
	} else {
		llmClient, err = llm.NewGeminiClient(ctx, cfg.APIKey, cfg.ModelName)
		if err != nil {
			log.Fatalf("error initializing Gemini client: %v", err)
		}
	}

	svc := analysis.NewService(llmClient, memstore.NewSessionStore(), cfg.ModelName)

	fmt.Println(strings.Repeat("=", 60))
	fmt.Println("MULTI-AGENT ANALYSIS WORKFLOW")
	fmt.Println(strings.Repeat("=", 60))
	fmt.Println("\nThis system analyzes your ideas through multiple perspectives:")
	fmt.Println("  - Research Agent: historical context & evidence")
	fmt.Println("  - Positive Analysis: strengths & opportunities")
	fmt.Println("  - Flaw Finding: risks & challenges")
	fmt.Println("  - Response Composer: balanced synthesis")
	fmt.Println("  - Conversational Agent: natural, context-aware delivery")
	fmt.Println("\nType 'exit' to quit.")

	var sessionID domain.SessionID
	scanner := bufio.NewScanner(os.Stdin)

	for {
		fmt.Print("\nYour idea/question: ")
		if !scanner.Scan() {
			break
		}
		input := strings.TrimSpace(scanner.Text())

		switch strings.ToLower(input) {
		case "exit", "quit", "bye":
			fmt.Println("Goodbye! Session ended.")
			return
		case "":
			continue
		}

		out, err := svc.ProcessTurn(ctx, analysis.TurnInput{
			SessionID: sessionID,
			Idea:      input,
		})
		if err != nil {
			fmt.Fprintf(os.Stderr, "\nAn error occurred: %v\n", err)
			continue
		}
		sessionID = out.SessionID

		fmt.Println("\n" + strings.Repeat("=", 60))
		if out.Result.Intent == domain.IntentChat {
			fmt.Println("\n" + out.Result.Chat)
		} else {
			fmt.Println("\nFINAL ANALYSIS:")
			fmt.Println("\n" + out.Result.Analysis.DeliveredReply)
		}
		fmt.Println("\n" + strings.Repeat("=", 60))
	}
}
