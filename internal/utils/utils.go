package utils

import (
	"errors"
	"strings"

	"github.com/sashabaranov/go-openai"
	"google.golang.org/genai"
)

// ProviderMessage extracts the human readable reason from an LLM client error.
func ProviderMessage(err error) string {
	if err == nil {
		return ""
	}
	var openAIErr *openai.APIError
	if errors.As(err, &openAIErr) {
		return openAIErr.Message
	}
	var reqErr *openai.RequestError
	if errors.As(err, &reqErr) {
		return reqErr.Error()
	}
	var geminiErr genai.APIError
	if errors.As(err, &geminiErr) {
		return geminiErr.Message
	}
	var geminiErrPtr *genai.APIError
	if errors.As(err, &geminiErrPtr) {
		return geminiErrPtr.Message
	}
	return err.Error()
}

// ProviderStatus returns the HTTP status reported by an LLM client error, or 0.
func ProviderStatus(err error) int {
	var openAIErr *openai.APIError
	if errors.As(err, &openAIErr) {
		return openAIErr.HTTPStatusCode
	}
	var reqErr *openai.RequestError
	if errors.As(err, &reqErr) {
		return reqErr.HTTPStatusCode
	}
	var geminiErr genai.APIError
	if errors.As(err, &geminiErr) {
		return geminiErr.Code
	}
	var geminiErrPtr *genai.APIError
	if errors.As(err, &geminiErrPtr) {
		return geminiErrPtr.Code
	}
	return 0
}

// IsRateLimited reports whether the provider refused the call for quota reasons.
func IsRateLimited(err error) bool {
	if err == nil {
		return false
	}
	if ProviderStatus(err) == 429 {
		return true
	}
	msg := strings.ToLower(ProviderMessage(err))
	return strings.Contains(msg, "rate limit") || strings.Contains(msg, "resource_exhausted") || strings.Contains(msg, "quota")
}
