package llm

import (
	"context"
	"errors"
	"log"
	"os"
)

// Client is the single narrow interface every component uses to reach a
// generative text service. Prompt in, free text out. The service may be slow
// or return malformed structure; callers must tolerate both.
type Client interface {
	Generate(ctx context.Context, prompt string) (string, error)
}

// NewFromEnv picks the provider from LLM_PROVIDER ("gemini" or "openai")
// and fails fast when the active provider's env vars are missing.
func NewFromEnv() (Client, error) {
	switch os.Getenv("LLM_PROVIDER") {
	case "", "gemini":
		if os.Getenv("GEMINI_API_KEY") == "" || os.Getenv("GEMINI_MODEL") == "" {
			return nil, errors.New("gemini provider requires GEMINI_API_KEY and GEMINI_MODEL")
		}
		log.Println("LLM_PROVIDER=gemini")
		return NewGeminiClient(), nil
	case "openai":
		if os.Getenv("OPENAI_API_KEY") == "" || os.Getenv("OPENAI_MODEL") == "" {
			return nil, errors.New("openai provider requires OPENAI_API_KEY and OPENAI_MODEL")
		}
		log.Println("LLM_PROVIDER=openai")
		return NewOpenAIClient(), nil
	default:
		return nil, errors.New("unknown LLM_PROVIDER: " + os.Getenv("LLM_PROVIDER"))
	}
}
