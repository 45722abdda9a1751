package llm

import "testing"

func TestNewFromEnvDefaultsToGemini(t *testing.T) {
	t.Setenv("LLM_PROVIDER", "")
	t.Setenv("GEMINI_API_KEY", "test-key")
	t.Setenv("GEMINI_MODEL", "gemini-test")

	client, err := NewFromEnv()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if _, ok := client.(*GeminiClient); !ok {
		t.Fatalf("expected *GeminiClient, got %T", client)
	}
}

func TestNewFromEnvFailsFastWithoutGeminiKeys(t *testing.T) {
	t.Setenv("LLM_PROVIDER", "gemini")
	t.Setenv("GEMINI_API_KEY", "")
	t.Setenv("GEMINI_MODEL", "")

	if _, err := NewFromEnv(); err == nil {
		t.Fatal("expected error for missing gemini env vars")
	}
}

func TestNewFromEnvFailsFastWithoutOpenAIKeys(t *testing.T) {
	t.Setenv("LLM_PROVIDER", "openai")
	t.Setenv("OPENAI_API_KEY", "")
	t.Setenv("OPENAI_MODEL", "")

	if _, err := NewFromEnv(); err == nil {
		t.Fatal("expected error for missing openai env vars")
	}
}

func TestNewFromEnvOpenAI(t *testing.T) {
	t.Setenv("LLM_PROVIDER", "openai")
	t.Setenv("OPENAI_API_KEY", "test-key")
	t.Setenv("OPENAI_MODEL", "gpt-test")

	client, err := NewFromEnv()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if _, ok := client.(*OpenAIClient); !ok {
		t.Fatalf("expected *OpenAIClient, got %T", client)
	}
}

func TestNewFromEnvUnknownProvider(t *testing.T) {
	t.Setenv("LLM_PROVIDER", "bard")

	if _, err := NewFromEnv(); err == nil {
		t.Fatal("expected error for unknown provider")
	}
}
