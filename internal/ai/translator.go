package ai

import (
	"context"
	"fmt"
	"strings"

	"go.uber.org/zap"
)

// TranslatorConfig selects and configures the translation provider.
type TranslatorConfig struct {
	Provider      string
	GeminiAPIKey  string
	GeminiModel   string
	GeminiBaseURL string
	OpenAIAPIKey  string
	OpenAIModel   string
	OpenAIBaseURL string
}

// NewTranslator returns the configured provider, or ErrTranslationDisabled
// when its key is missing.
func NewTranslator(ctx context.Context, cfg TranslatorConfig, logger *zap.Logger) (Translator, error) {
	switch strings.ToLower(strings.TrimSpace(cfg.Provider)) {
	case "", ProviderGemini:
		return NewGeminiTranslator(ctx, cfg.GeminiAPIKey, cfg.GeminiModel, cfg.GeminiBaseURL, logger)
	case ProviderOpenAI:
		if cfg.OpenAIAPIKey == "" {
			return nil, ErrTranslationDisabled
		}
		return NewGenerator(cfg.OpenAIAPIKey, cfg.OpenAIModel, cfg.OpenAIBaseURL, logger), nil
	default:
		return nil, fmt.Errorf("unknown translation provider %q", cfg.Provider)
	}
}
