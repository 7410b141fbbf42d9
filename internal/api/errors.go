package api

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"magic_prompt_server/internal/admin"
	"magic_prompt_server/internal/ai"
	"magic_prompt_server/internal/auth"
	"magic_prompt_server/internal/prompt"
	"magic_prompt_server/internal/store"
	"magic_prompt_server/internal/wizard"
)

// ErrorResponse is the body of every failed request.
type ErrorResponse struct {
	Error string `json:"error"`
}

var errInvalidID = errors.New("invalid id")

func (h *APIHandler) handleServiceError(c *gin.Context, err error) {
	var (
		statusCode int
		message    string
		pe         *admin.ProviderError
	)

	switch {
	case errors.Is(err, auth.ErrTokenMissing), errors.Is(err, auth.ErrTokenInvalid),
		errors.Is(err, auth.ErrTokenExpired), errors.Is(err, auth.ErrTokenMalformed):
		statusCode, message = http.StatusUnauthorized, "Not authorized"
	case errors.Is(err, auth.ErrForbidden):
		statusCode, message = http.StatusForbidden, "Forbidden"
	case errors.Is(err, wizard.ErrSessionNotFound):
		statusCode, message = http.StatusNotFound, "Wizard session not found"
	case errors.Is(err, store.ErrPromptNotFound):
		statusCode, message = http.StatusNotFound, "Prompt not found"
	case errors.Is(err, wizard.ErrNoEditableField):
		statusCode, message = http.StatusConflict, err.Error()
	case errors.Is(err, store.ErrTitleRequired), errors.Is(err, prompt.ErrUnknownVariant),
		errors.Is(err, errInvalidID):
		statusCode, message = http.StatusBadRequest, err.Error()
	case errors.Is(err, store.ErrPromptAlreadyExists):
		statusCode, message = http.StatusConflict, err.Error()
	case errors.Is(err, ai.ErrTranslationDisabled), errors.Is(err, admin.ErrNotConfigured):
		statusCode, message = http.StatusServiceUnavailable, err.Error()
	case errors.As(err, &pe):
		statusCode, message = http.StatusBadRequest, pe.Message
	default:
		h.logger.Error("Unhandled internal error", zap.String("path", c.FullPath()), zap.Error(err))
		_ = c.Error(err)
		statusCode, message = http.StatusInternalServerError, "An unexpected internal error occurred"
	}

	c.AbortWithStatusJSON(statusCode, ErrorResponse{Error: message})
}

func badRequest(c *gin.Context, message string) {
	c.AbortWithStatusJSON(http.StatusBadRequest, ErrorResponse{Error: message})
}
