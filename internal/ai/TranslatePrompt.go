package ai

import (
	"context"
	"fmt"
	"strings"

	openai "github.com/sashabaranov/go-openai"
	"go.uber.org/zap"

	"magic_prompt_server/internal/ai/prompts"
	"magic_prompt_server/internal/utils"
)

// Translate sends one chat completion. Failures are returned as-is, there is
// no retry.
func (g *Generator) Translate(ctx context.Context, text string) (string, error) {
	resp, err := g.client.CreateChatCompletion(
		ctx,
		openai.ChatCompletionRequest{
			Model: g.model,
			Messages: []openai.ChatCompletionMessage{
				{Role: openai.ChatMessageRoleUser, Content: prompts.GetTranslatePrompt(text)},
			},
			Temperature: 0.2,
		},
	)
	if err != nil {
		g.logger.Warn("OpenAI translation failed", zap.String("model", g.model), zap.String("reason", utils.ProviderMessage(err)))
		return "", fmt.Errorf("openai chat completion failed: %w", err)
	}

	if len(resp.Choices) == 0 || strings.TrimSpace(resp.Choices[0].Message.Content) == "" {
		g.logger.Warn("OpenAI returned empty translation", zap.Any("usage", resp.Usage))
		return "", ErrEmptyTranslation
	}

	return strings.TrimSpace(resp.Choices[0].Message.Content), nil
}
