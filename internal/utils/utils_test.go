package utils

import (
	"errors"
	"fmt"
	"testing"

	"github.com/sashabaranov/go-openai"
	"github.com/stretchr/testify/assert"
)

func TestProviderMessage(t *testing.T) {
	assert.Equal(t, "", ProviderMessage(nil))

	apiErr := &openai.APIError{HTTPStatusCode: 401, Message: "Incorrect API key provided"}
	wrapped := fmt.Errorf("openai chat completion failed: %w", apiErr)
	assert.Equal(t, "Incorrect API key provided", ProviderMessage(wrapped))
	assert.Equal(t, 401, ProviderStatus(wrapped))

	plain := errors.New("dial tcp: connection refused")
	assert.Equal(t, plain.Error(), ProviderMessage(plain))
	assert.Equal(t, 0, ProviderStatus(plain))
}

func TestIsRateLimited(t *testing.T) {
	assert.False(t, IsRateLimited(nil))
	assert.True(t, IsRateLimited(&openai.APIError{HTTPStatusCode: 429, Message: "slow down"}))
	assert.True(t, IsRateLimited(errors.New("Rate limit reached for gpt-4o")))
	assert.False(t, IsRateLimited(&openai.APIError{HTTPStatusCode: 500, Message: "boom"}))
}
