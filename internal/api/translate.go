package api

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"magic_prompt_server/internal/ai"
	"magic_prompt_server/internal/utils"
)

type TranslateRequest struct {
	Prompt string `json:"prompt" binding:"required"`
}

type TranslateResponse struct {
	Translated string `json:"translated"`
	Provider   string `json:"provider"`
}

// POST /prompts/translate
func (h *APIHandler) TranslatePrompt(c *gin.Context) {
	var req TranslateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, "Invalid request body: "+err.Error())
		return
	}
	if h.translator == nil {
		h.handleServiceError(c, ai.ErrTranslationDisabled)
		return
	}

	provider := h.translator.Provider()
	out, err := h.translator.Translate(c.Request.Context(), req.Prompt)
	translationsTotal.WithLabelValues(provider, statusLabel(err)).Inc()
	if err != nil {
		h.logger.Warn("Translation failed", zap.String("provider", provider), zap.Error(err))
		switch {
		case utils.IsRateLimited(err):
			c.AbortWithStatusJSON(http.StatusTooManyRequests, ErrorResponse{Error: utils.ProviderMessage(err)})
		case errors.Is(err, ai.ErrEmptyTranslation):
			c.AbortWithStatusJSON(http.StatusBadGateway, ErrorResponse{Error: err.Error()})
		default:
			c.AbortWithStatusJSON(http.StatusInternalServerError, ErrorResponse{Error: "Translation failed: " + utils.ProviderMessage(err)})
		}
		return
	}

	c.JSON(http.StatusOK, TranslateResponse{Translated: out, Provider: provider})
}
