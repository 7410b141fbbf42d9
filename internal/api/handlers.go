package api

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"magic_prompt_server/internal/admin"
	"magic_prompt_server/internal/ai"
	"magic_prompt_server/internal/prompt"
	"magic_prompt_server/internal/store"
	"magic_prompt_server/internal/types"
	"magic_prompt_server/internal/wizard"
)

// AdminUserService is the auth provider's user administration API.
type AdminUserService interface {
	ListUsers(ctx context.Context) ([]admin.User, error)
	CreateUser(ctx context.Context, email, password string) (*admin.User, error)
	UpdateUser(ctx context.Context, userID string, req admin.UpdateUserRequest) (*admin.User, error)
	DeleteUser(ctx context.Context, userID string) (json.RawMessage, error)
}

// Dependencies are the collaborators of APIHandler. Translator may be nil
// when no provider is configured.
type Dependencies struct {
	Sessions   *wizard.Store
	Prompts    store.PromptRepository
	Profiles   store.ProfileRepository
	Translator ai.Translator
	Admin      AdminUserService
	PublicURL  string
	Logger     *zap.Logger
}

// APIHandler holds dependencies for API endpoints.
type APIHandler struct {
	sessions   *wizard.Store
	prompts    store.PromptRepository
	profiles   store.ProfileRepository
	translator ai.Translator
	admin      AdminUserService
	publicURL  string
	logger     *zap.Logger
	now        func() time.Time
}

// NewAPIHandler initializes a new API handler with its dependencies.
func NewAPIHandler(deps Dependencies) *APIHandler {
	logger := deps.Logger
	if logger == nil {
		logger = zap.NewNop()
	}
	publicURL := deps.PublicURL
	if publicURL == "" {
		publicURL = "https://veo3.pt"
	}
	return &APIHandler{
		sessions:   deps.Sessions,
		prompts:    deps.Prompts,
		profiles:   deps.Profiles,
		translator: deps.Translator,
		admin:      deps.Admin,
		publicURL:  publicURL,
		logger:     logger.Named("APIHandler"),
		now:        time.Now,
	}
}

// --- Structs for API Requests/Responses ---

type CreateSessionRequest struct {
	Variant prompt.Variant `json:"variant"`
}

type SetFieldRequest struct {
	Value *string `json:"value" binding:"required"`
}

type ComposeResponse struct {
	Prompt  string                `json:"prompt"`
	Summary []prompt.SummaryEntry `json:"summary"`
}

type StepsResponse struct {
	Variant prompt.Variant `json:"variant"`
	Steps   []prompt.Step  `json:"steps"`
}

type OptionsResponse struct {
	Pov      []prompt.Option `json:"pov"`
	Style    []prompt.Option `json:"style"`
	Language []prompt.Option `json:"language"`
}

// --- Wizard ---

// POST /wizard/sessions
func (h *APIHandler) CreateSession(c *gin.Context) {
	var req CreateSessionRequest
	if err := c.ShouldBindJSON(&req); err != nil && !errors.Is(err, io.EOF) {
		badRequest(c, "Invalid request body: "+err.Error())
		return
	}
	if req.Variant == "" {
		req.Variant = prompt.Variant(c.Query("variant"))
	}

	s, err := h.sessions.Create(req.Variant)
	if err != nil {
		h.handleServiceError(c, err)
		return
	}
	view := s.View()
	wizardSessionsTotal.WithLabelValues(string(view.Variant)).Inc()
	h.logger.Debug("Wizard session started", zap.String("sessionID", view.ID.String()), zap.String("variant", string(view.Variant)))
	c.JSON(http.StatusCreated, view)
}

// GET /wizard/sessions/:id
func (h *APIHandler) GetSession(c *gin.Context) {
	s, ok := h.session(c)
	if !ok {
		return
	}
	c.JSON(http.StatusOK, s.View())
}

// PUT /wizard/sessions/:id/field
func (h *APIHandler) SetField(c *gin.Context) {
	s, ok := h.session(c)
	if !ok {
		return
	}
	var req SetFieldRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, "Invalid request body: "+err.Error())
		return
	}
	if err := s.Set(*req.Value); err != nil {
		h.handleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, s.View())
}

// POST /wizard/sessions/:id/advance
func (h *APIHandler) Advance(c *gin.Context) {
	if s, ok := h.session(c); ok {
		c.JSON(http.StatusOK, s.Advance())
	}
}

// POST /wizard/sessions/:id/retreat
func (h *APIHandler) Retreat(c *gin.Context) {
	if s, ok := h.session(c); ok {
		c.JSON(http.StatusOK, s.Retreat())
	}
}

// POST /wizard/sessions/:id/reset
func (h *APIHandler) Reset(c *gin.Context) {
	if s, ok := h.session(c); ok {
		c.JSON(http.StatusOK, s.Reset())
	}
}

// GET /wizard/sessions/:id/preview
func (h *APIHandler) Preview(c *gin.Context) {
	s, ok := h.session(c)
	if !ok {
		return
	}
	compositionsTotal.WithLabelValues("wizard").Inc()
	c.JSON(http.StatusOK, s.Preview())
}

// DELETE /wizard/sessions/:id
func (h *APIHandler) DeleteSession(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		h.handleServiceError(c, fmt.Errorf("%w: %s", errInvalidID, c.Param("id")))
		return
	}
	if err := h.sessions.Delete(id); err != nil {
		h.handleServiceError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// GET /wizard/steps?variant=
func (h *APIHandler) ListSteps(c *gin.Context) {
	variant := prompt.Variant(c.Query("variant"))
	steps, err := prompt.Steps(variant)
	if err != nil {
		h.handleServiceError(c, err)
		return
	}
	if variant == "" {
		variant = prompt.VariantFull
	}
	c.JSON(http.StatusOK, StepsResponse{Variant: variant, Steps: steps})
}

// GET /wizard/options
func (h *APIHandler) ListOptions(c *gin.Context) {
	c.JSON(http.StatusOK, OptionsResponse{
		Pov:      prompt.PovOptions(),
		Style:    prompt.StyleOptions(),
		Language: prompt.LanguageOptions(),
	})
}

// POST /prompts/compose
func (h *APIHandler) Compose(c *gin.Context) {
	var record types.FieldRecord
	if err := c.ShouldBindJSON(&record); err != nil {
		badRequest(c, "Invalid request body: "+err.Error())
		return
	}
	compositionsTotal.WithLabelValues("direct").Inc()
	c.JSON(http.StatusOK, ComposeResponse{
		Prompt:  prompt.Compose(record),
		Summary: prompt.Summary(record),
	})
}

func (h *APIHandler) session(c *gin.Context) (*wizard.Session, bool) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		h.handleServiceError(c, fmt.Errorf("%w: %s", errInvalidID, c.Param("id")))
		return nil, false
	}
	s, err := h.sessions.Get(id)
	if err != nil {
		h.handleServiceError(c, err)
		return nil, false
	}
	return s, true
}
