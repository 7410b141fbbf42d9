package auth

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

const identityKey = "auth.identity"

// Middleware guards routes that need a signed-in user or an admin.
type Middleware struct {
	verifier TokenVerifier
	admins   *AdminPolicy
	logger   *zap.Logger
}

func NewMiddleware(verifier TokenVerifier, admins *AdminPolicy, logger *zap.Logger) *Middleware {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Middleware{verifier: verifier, admins: admins, logger: logger.Named("AuthMiddleware")}
}

// RequireUser rejects requests without a valid bearer token with 401.
func (m *Middleware) RequireUser() gin.HandlerFunc {
	return func(c *gin.Context) {
		if _, ok := m.authenticate(c); !ok {
			return
		}
		c.Next()
	}
}

// RequireAdmin answers 401 without a valid token and 403 when the caller is
// not on the admin allow-list.
func (m *Middleware) RequireAdmin() gin.HandlerFunc {
	return func(c *gin.Context) {
		id, ok := m.authenticate(c)
		if !ok {
			return
		}
		if !m.admins.IsAdmin(id.Email) {
			m.logger.Warn("Admin route denied", zap.String("userID", id.UserID.String()), zap.String("path", c.FullPath()))
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"error": "Forbidden"})
			return
		}
		c.Next()
	}
}

func (m *Middleware) authenticate(c *gin.Context) (*Identity, bool) {
	token, err := bearerToken(c.GetHeader("Authorization"))
	if err == nil {
		var id *Identity
		id, err = m.verifier.VerifyToken(c.Request.Context(), token)
		if err == nil {
			c.Set(identityKey, id)
			return id, true
		}
	}

	switch {
	case errors.Is(err, ErrTokenMissing), errors.Is(err, ErrTokenInvalid),
		errors.Is(err, ErrTokenExpired), errors.Is(err, ErrTokenMalformed):
		c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Not authorized"})
	default:
		// provider unreachable
		m.logger.Error("Token verification failed", zap.Error(err))
		_ = c.Error(err)
		c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Not authorized"})
	}
	return nil, false
}

// IdentityFrom returns the identity stored by RequireUser or RequireAdmin.
func IdentityFrom(c *gin.Context) (*Identity, bool) {
	v, ok := c.Get(identityKey)
	if !ok {
		return nil, false
	}
	id, ok := v.(*Identity)
	return id, ok
}

// SetIdentity stores id on the request context.
func SetIdentity(c *gin.Context, id *Identity) {
	c.Set(identityKey, id)
}

func bearerToken(header string) (string, error) {
	if header == "" {
		return "", ErrTokenMissing
	}
	parts := strings.SplitN(header, " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") || strings.TrimSpace(parts[1]) == "" {
		return "", ErrTokenMalformed
	}
	return strings.TrimSpace(parts[1]), nil
}
