package auth

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"magic_prompt_server/internal/admin"
)

var (
	ErrTokenMissing   = errors.New("authorization token missing")
	ErrTokenInvalid   = errors.New("authorization token invalid")
	ErrTokenExpired   = errors.New("authorization token expired")
	ErrTokenMalformed = errors.New("authorization token malformed")
	ErrForbidden      = errors.New("forbidden")
)

// Identity is the authenticated caller.
type Identity struct {
	UserID uuid.UUID
	Email  string
}

// TokenVerifier turns a bearer token into an Identity.
type TokenVerifier interface {
	VerifyToken(ctx context.Context, token string) (*Identity, error)
}

// Claims are the access token claims issued by the auth provider.
type Claims struct {
	Email string `json:"email"`
	Role  string `json:"role"`
	jwt.RegisteredClaims
}

// JWTVerifier checks HS256 access tokens locally with the project's JWT secret.
type JWTVerifier struct {
	jwtSecret string
	logger    *zap.Logger
}

func NewJWTVerifier(jwtSecret string, logger *zap.Logger) (*JWTVerifier, error) {
	if jwtSecret == "" {
		return nil, errors.New("JWT secret cannot be empty")
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &JWTVerifier{
		jwtSecret: jwtSecret,
		logger:    logger.Named("JWTVerifier"),
	}, nil
}

func (v *JWTVerifier) VerifyToken(_ context.Context, tokenString string) (*Identity, error) {
	log := v.logger.With(zap.String("tokenSnippet", tokenSnippet(tokenString)))
	claims := &Claims{}

	token, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			log.Warn("Unexpected signing method", zap.Any("alg", token.Header["alg"]))
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return []byte(v.jwtSecret), nil
	})
	if err != nil {
		log.Warn("Failed to parse or verify token", zap.Error(err))
		switch {
		case errors.Is(err, jwt.ErrTokenExpired):
			return nil, ErrTokenExpired
		case errors.Is(err, jwt.ErrTokenMalformed):
			return nil, ErrTokenMalformed
		case errors.Is(err, jwt.ErrTokenSignatureInvalid):
			return nil, ErrTokenInvalid
		}
		return nil, fmt.Errorf("%w: %v", ErrTokenInvalid, err)
	}
	if !token.Valid {
		return nil, ErrTokenInvalid
	}

	userID, err := uuid.Parse(claims.Subject)
	if err != nil {
		log.Warn("Token subject is not a user id", zap.String("sub", claims.Subject))
		return nil, fmt.Errorf("%w: subject missing", ErrTokenInvalid)
	}

	log.Debug("Token verified", zap.String("userID", userID.String()), zap.String("role", claims.Role))
	return &Identity{UserID: userID, Email: claims.Email}, nil
}

// UserLookup resolves an access token against the auth provider.
type UserLookup interface {
	GetUser(ctx context.Context, accessToken string) (*admin.User, error)
}

// RemoteVerifier asks the auth provider who owns the token. It is used when
// no JWT secret is configured.
type RemoteVerifier struct {
	users  UserLookup
	logger *zap.Logger
}

func NewRemoteVerifier(users UserLookup, logger *zap.Logger) *RemoteVerifier {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &RemoteVerifier{users: users, logger: logger.Named("RemoteVerifier")}
}

func (v *RemoteVerifier) VerifyToken(ctx context.Context, tokenString string) (*Identity, error) {
	u, err := v.users.GetUser(ctx, tokenString)
	if err != nil {
		var pe *admin.ProviderError
		if errors.As(err, &pe) {
			v.logger.Warn("Auth provider rejected token",
				zap.String("tokenSnippet", tokenSnippet(tokenString)), zap.Int("status", pe.Status))
			return nil, fmt.Errorf("%w: %s", ErrTokenInvalid, pe.Message)
		}
		return nil, fmt.Errorf("verify token with auth provider: %w", err)
	}
	if u == nil {
		return nil, ErrTokenInvalid
	}
	userID, err := uuid.Parse(u.ID)
	if err != nil {
		return nil, fmt.Errorf("%w: provider returned no user", ErrTokenInvalid)
	}
	return &Identity{UserID: userID, Email: u.Email}, nil
}

// AdminPolicy is the server-side admin allow-list.
type AdminPolicy struct {
	emails map[string]struct{}
}

func NewAdminPolicy(emails []string) *AdminPolicy {
	p := &AdminPolicy{emails: make(map[string]struct{}, len(emails))}
	for _, e := range emails {
		e = strings.ToLower(strings.TrimSpace(e))
		if e != "" {
			p.emails[e] = struct{}{}
		}
	}
	return p
}

// IsAdmin matches email against the allow-list ignoring case.
func (p *AdminPolicy) IsAdmin(email string) bool {
	if p == nil {
		return false
	}
	_, ok := p.emails[strings.ToLower(strings.TrimSpace(email))]
	return ok
}

func tokenSnippet(tokenString string) string {
	limit := 15
	if len(tokenString) > limit {
		return tokenString[:limit] + "..."
	}
	return tokenString
}
