package api

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"magic_prompt_server/internal/admin"
	"magic_prompt_server/internal/auth"
)

type ListUsersResponse struct {
	Users []admin.User `json:"users"`
}

type CreateUserRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

type UpdateUserRequest struct {
	UserID   string `json:"userId" binding:"required"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

type DeleteUserRequest struct {
	UserID string `json:"userId" binding:"required"`
}

// GET|POST /functions/v1/list-users
func (h *APIHandler) ListUsers(c *gin.Context) {
	users, err := h.admin.ListUsers(c.Request.Context())
	adminOperationsTotal.WithLabelValues("list", statusLabel(err)).Inc()
	if err != nil {
		h.adminFailure(c, "list", err)
		return
	}
	c.JSON(http.StatusOK, ListUsersResponse{Users: users})
}

// POST /functions/v1/create-user
func (h *APIHandler) CreateUser(c *gin.Context) {
	var req CreateUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, "email and password are required")
		return
	}
	u, err := h.admin.CreateUser(c.Request.Context(), strings.TrimSpace(req.Email), req.Password)
	adminOperationsTotal.WithLabelValues("create", statusLabel(err)).Inc()
	if err != nil {
		h.adminFailure(c, "create", err)
		return
	}
	h.auditAdmin(c, "create", u.ID)
	c.JSON(http.StatusOK, u)
}

// POST /functions/v1/update-user
func (h *APIHandler) UpdateUser(c *gin.Context) {
	var req UpdateUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, "userId is required")
		return
	}
	if !validUserID(c, req.UserID) {
		return
	}
	u, err := h.admin.UpdateUser(c.Request.Context(), req.UserID, admin.UpdateUserRequest{
		Email:    strings.TrimSpace(req.Email),
		Password: req.Password,
	})
	adminOperationsTotal.WithLabelValues("update", statusLabel(err)).Inc()
	if err != nil {
		h.adminFailure(c, "update", err)
		return
	}
	h.auditAdmin(c, "update", req.UserID)
	c.JSON(http.StatusOK, u)
}

// POST /functions/v1/delete-user
func (h *APIHandler) DeleteUser(c *gin.Context) {
	var req DeleteUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, "userId is required")
		return
	}
	if !validUserID(c, req.UserID) {
		return
	}
	result, err := h.admin.DeleteUser(c.Request.Context(), req.UserID)
	adminOperationsTotal.WithLabelValues("delete", statusLabel(err)).Inc()
	if err != nil {
		h.adminFailure(c, "delete", err)
		return
	}
	h.auditAdmin(c, "delete", req.UserID)
	c.Data(http.StatusOK, "application/json; charset=utf-8", result)
}

// GET /api/users answers provider failures with 500 instead of 400.
func (h *APIHandler) ListProfiles(c *gin.Context) {
	profiles, err := h.profiles.ListProfiles(c.Request.Context())
	adminOperationsTotal.WithLabelValues("profiles", statusLabel(err)).Inc()
	if err != nil {
		h.logger.Error("Failed to list profiles", zap.Error(err))
		_ = c.Error(err)
		c.AbortWithStatusJSON(http.StatusInternalServerError, ErrorResponse{Error: providerMessage(err)})
		return
	}
	c.JSON(http.StatusOK, profiles)
}

// adminFailure answers a failed admin function with 400 and the provider's
// message, whether the provider rejected the call or could not be reached.
func (h *APIHandler) adminFailure(c *gin.Context, op string, err error) {
	h.logger.Warn("Admin user operation failed", zap.String("op", op), zap.Error(err))
	_ = c.Error(err)
	c.AbortWithStatusJSON(http.StatusBadRequest, ErrorResponse{Error: providerMessage(err)})
}

func providerMessage(err error) string {
	var pe *admin.ProviderError
	if errors.As(err, &pe) {
		return pe.Message
	}
	return err.Error()
}

// validUserID answers 400 unless raw is a uuid, so it can be used as a path segment.
func validUserID(c *gin.Context, raw string) bool {
	if _, err := uuid.Parse(raw); err != nil {
		badRequest(c, "userId must be a valid uuid")
		return false
	}
	return true
}

// MethodNotAllowed is the NoMethod handler of the router.
func MethodNotAllowed(c *gin.Context) {
	c.AbortWithStatusJSON(http.StatusMethodNotAllowed, ErrorResponse{Error: "Method not allowed"})
}

func (h *APIHandler) auditAdmin(c *gin.Context, op, target string) {
	fields := []zap.Field{zap.String("op", op), zap.String("targetUserID", target)}
	if id, ok := auth.IdentityFrom(c); ok {
		fields = append(fields, zap.String("adminID", id.UserID.String()))
	}
	h.logger.Info("Admin user operation", fields...)
}
