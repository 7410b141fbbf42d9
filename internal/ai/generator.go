package ai

import (
	"context"
	"errors"
	"net/http"
	"time"

	openai "github.com/sashabaranov/go-openai"
	"go.uber.org/zap"
)

var (
	// ErrTranslationDisabled means no provider key is configured.
	ErrTranslationDisabled = errors.New("translation provider not configured")
	// ErrEmptyTranslation is returned when the model answers with no text.
	ErrEmptyTranslation = errors.New("translation provider returned an empty response")
)

const (
	ProviderGemini = "gemini"
	ProviderOpenAI = "openai"
)

// Translator rewrites a composed prompt so the narrative is in English and the
// dialogue is left as written.
type Translator interface {
	Translate(ctx context.Context, text string) (string, error)
	Provider() string
}

// Generator is the OpenAI backed Translator.
type Generator struct {
	client *openai.Client
	model  string
	logger *zap.Logger
}

// NewGenerator builds an OpenAI client. baseURL may be empty to use the
// public API.
func NewGenerator(apiKey, model, baseURL string, logger *zap.Logger) *Generator {
	config := openai.DefaultConfig(apiKey)
	if baseURL != "" {
		config.BaseURL = baseURL
	}
	config.HTTPClient = &http.Client{Timeout: 60 * time.Second}
	if model == "" {
		model = openai.GPT4o
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Generator{
		client: openai.NewClientWithConfig(config),
		model:  model,
		logger: logger.Named("OpenAITranslator"),
	}
}

func (g *Generator) Provider() string { return ProviderOpenAI }
