package ai

import (
	"context"
	"fmt"
	"strings"

	"go.uber.org/zap"
	"google.golang.org/genai"

	"magic_prompt_server/internal/ai/prompts"
	"magic_prompt_server/internal/utils"
)

const defaultGeminiModel = "gemini-1.5-pro"

// GeminiTranslator is the Translator backed by the Gemini API.
type GeminiTranslator struct {
	client *genai.Client
	model  string
	logger *zap.Logger
}

// NewGeminiTranslator creates the Gemini client. baseURL overrides the API
// endpoint and may be empty.
func NewGeminiTranslator(ctx context.Context, apiKey, model, baseURL string, logger *zap.Logger) (*GeminiTranslator, error) {
	if apiKey == "" {
		return nil, ErrTranslationDisabled
	}
	if model == "" {
		model = defaultGeminiModel
	}
	if logger == nil {
		logger = zap.NewNop()
	}

	cfg := &genai.ClientConfig{
		APIKey:  apiKey,
		Backend: genai.BackendGeminiAPI,
	}
	if baseURL != "" {
		cfg.HTTPOptions = genai.HTTPOptions{BaseURL: baseURL}
	}
	client, err := genai.NewClient(ctx, cfg)
	if err != nil {
		return nil, fmt.Errorf("failed to create Gemini client: %w", err)
	}

	return &GeminiTranslator{
		client: client,
		model:  model,
		logger: logger.Named("GeminiTranslator"),
	}, nil
}

func (t *GeminiTranslator) Provider() string { return ProviderGemini }

// Translate makes a single generateContent call with no retry.
func (t *GeminiTranslator) Translate(ctx context.Context, text string) (string, error) {
	resp, err := t.client.Models.GenerateContent(ctx, t.model, genai.Text(prompts.GetTranslatePrompt(text)), nil)
	if err != nil {
		t.logger.Warn("Gemini translation failed", zap.String("model", t.model), zap.String("reason", utils.ProviderMessage(err)))
		return "", fmt.Errorf("gemini generate content failed: %w", err)
	}

	out := strings.TrimSpace(resp.Text())
	if out == "" {
		return "", ErrEmptyTranslation
	}
	return out, nil
}
