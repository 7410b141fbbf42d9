package api

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"magic_prompt_server/internal/auth"
	"magic_prompt_server/internal/prompt"
	"magic_prompt_server/internal/share"
	"magic_prompt_server/internal/store"
	"magic_prompt_server/internal/types"
)

// SavePromptRequest saves either the given record or the answers of a live
// wizard session. The final prompt is always composed on the server.
type SavePromptRequest struct {
	Title     string            `json:"title"`
	Record    types.FieldRecord `json:"record"`
	SessionID string            `json:"sessionId"`
}

type FavoriteResponse struct {
	ID         uuid.UUID `json:"id"`
	IsFavorite bool      `json:"is_favorite"`
}

type ShareResponse struct {
	Title string            `json:"title"`
	Text  string            `json:"text"`
	Links share.SocialLinks `json:"links"`
}

// POST /prompts
func (h *APIHandler) SavePrompt(c *gin.Context) {
	id, ok := h.identity(c)
	if !ok {
		return
	}
	var req SavePromptRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, "Invalid request body: "+err.Error())
		return
	}

	record := req.Record
	if req.SessionID != "" {
		sessionID, err := uuid.Parse(req.SessionID)
		if err != nil {
			h.handleServiceError(c, fmt.Errorf("%w: %s", errInvalidID, req.SessionID))
			return
		}
		s, err := h.sessions.Get(sessionID)
		if err != nil {
			h.handleServiceError(c, err)
			return
		}
		record = s.Record()
	}

	p, err := store.NewSavedPrompt(id.UserID, req.Title, record)
	if err != nil {
		h.handleServiceError(c, err)
		return
	}
	if err := h.prompts.Create(c.Request.Context(), p); err != nil {
		h.handleServiceError(c, err)
		return
	}
	savedPromptsTotal.Inc()
	c.JSON(http.StatusCreated, p)
}

// GET /prompts?search=
func (h *APIHandler) ListPrompts(c *gin.Context) {
	id, ok := h.identity(c)
	if !ok {
		return
	}
	prompts, err := h.prompts.ListByOwner(c.Request.Context(), id.UserID, c.Query("search"))
	if err != nil {
		h.handleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, prompts)
}

// GET /prompts/:id
func (h *APIHandler) GetPrompt(c *gin.Context) {
	if p, ok := h.ownedPrompt(c); ok {
		c.JSON(http.StatusOK, p)
	}
}

// POST /prompts/:id/favorite
func (h *APIHandler) ToggleFavorite(c *gin.Context) {
	id, ok := h.identity(c)
	if !ok {
		return
	}
	promptID, ok := h.promptID(c)
	if !ok {
		return
	}
	fav, err := h.prompts.ToggleFavorite(c.Request.Context(), id.UserID, promptID)
	if err != nil {
		h.handleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, FavoriteResponse{ID: promptID, IsFavorite: fav})
}

// DELETE /prompts/:id
func (h *APIHandler) DeletePrompt(c *gin.Context) {
	id, ok := h.identity(c)
	if !ok {
		return
	}
	promptID, ok := h.promptID(c)
	if !ok {
		return
	}
	if err := h.prompts.Delete(c.Request.Context(), id.UserID, promptID); err != nil {
		h.handleServiceError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// GET /prompts/:id/export
func (h *APIHandler) ExportPrompt(c *gin.Context) {
	p, ok := h.ownedPrompt(c)
	if !ok {
		return
	}
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", share.LibraryFilename(p.Title)))
	c.Data(http.StatusOK, "text/plain; charset=utf-8", []byte(share.LibraryExport(*p)))
}

// GET /prompts/:id/share
func (h *APIHandler) SharePrompt(c *gin.Context) {
	p, ok := h.ownedPrompt(c)
	if !ok {
		return
	}
	c.JSON(http.StatusOK, ShareResponse{
		Title: p.Title,
		Text:  share.ShareText(*p),
		Links: share.NewSocialLinks(h.publicURL),
	})
}

// POST /prompts/download composes record and returns the text file offered
// to the user right after the wizard.
func (h *APIHandler) DownloadPrompt(c *gin.Context) {
	var record types.FieldRecord
	if err := c.ShouldBindJSON(&record); err != nil {
		badRequest(c, "Invalid request body: "+err.Error())
		return
	}
	now := h.now()
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", share.DownloadFilename(now)))
	c.Data(http.StatusOK, "text/plain; charset=utf-8", []byte(share.DownloadText(prompt.Compose(record), now)))
}

func (h *APIHandler) ownedPrompt(c *gin.Context) (*types.SavedPrompt, bool) {
	id, ok := h.identity(c)
	if !ok {
		return nil, false
	}
	promptID, ok := h.promptID(c)
	if !ok {
		return nil, false
	}
	p, err := h.prompts.GetByID(c.Request.Context(), id.UserID, promptID)
	if err != nil {
		h.handleServiceError(c, err)
		return nil, false
	}
	return p, true
}

func (h *APIHandler) promptID(c *gin.Context) (uuid.UUID, bool) {
	promptID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		h.handleServiceError(c, fmt.Errorf("%w: %s", errInvalidID, c.Param("id")))
		return uuid.Nil, false
	}
	return promptID, true
}

func (h *APIHandler) identity(c *gin.Context) (*auth.Identity, bool) {
	id, ok := auth.IdentityFrom(c)
	if !ok {
		h.logger.Error("Identity missing on authenticated route", zap.String("path", c.FullPath()))
		h.handleServiceError(c, auth.ErrTokenMissing)
		return nil, false
	}
	return id, true
}
