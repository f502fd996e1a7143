package main

import (
	"context"
	"log"
	"net/http"

	httpadapter "github.com/Himanshu-coder007/Ai-Chatbot/internal/adapters/http"
	"github.com/Himanshu-coder007/Ai-Chatbot/internal/adapters/llm"
	"github.com/Himanshu-coder007/Ai-Chatbot/internal/config"
	"github.com/Himanshu-coder007/Ai-Chatbot/internal/domain"
)

func main() {
	ctx := context.Background()
	cfg := config.Load()

	var (
		client domain.CompletionClient
		err    error
	)

	if cfg.UseMockLLM {
		log.Println("[LLM] Using MOCK completion client")
		client = llm.NewMockClient()
	} else {
		log.Println("[LLM] Using Gemini completion client")
		client, err = llm.NewGeminiClient(ctx, cfg.GeminiAPIKey, cfg.ModelName)
		if err != nil {
			log.Fatalf("error initializing Gemini client: %v", err)
		}
	}

	handler := httpadapter.NewServer(client, cfg.MaxUploadMemory)

	addr := ":" + cfg.Port
	log.Println("Chatbot relay listening on", addr)
	if err := http.ListenAndServe(addr, handler); err != nil {
		log.Fatal(err)
	}
}
