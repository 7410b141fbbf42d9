package admin

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"go.uber.org/zap"
)

// ErrNotConfigured is returned when the auth provider URL or service key is missing.
var ErrNotConfigured = errors.New("auth provider admin client not configured")

// ProviderError carries the status and message of a failed auth provider call.
type ProviderError struct {
	Status  int
	Message string
}

func (e *ProviderError) Error() string {
	return fmt.Sprintf("auth provider returned %d: %s", e.Status, e.Message)
}

// User is the subset of the auth provider's user object this service reads
// or passes back to admin callers.
type User struct {
	ID               string         `json:"id"`
	Email            string         `json:"email"`
	Role             string         `json:"role,omitempty"`
	CreatedAt        *time.Time     `json:"created_at,omitempty"`
	LastSignInAt     *time.Time     `json:"last_sign_in_at,omitempty"`
	EmailConfirmedAt *time.Time     `json:"email_confirmed_at,omitempty"`
	UserMetadata     map[string]any `json:"user_metadata,omitempty"`
	AppMetadata      map[string]any `json:"app_metadata,omitempty"`
}

// CreateUserRequest is the body sent to create a user.
type CreateUserRequest struct {
	Email        string `json:"email"`
	Password     string `json:"password"`
	EmailConfirm bool   `json:"email_confirm"`
}

// UpdateUserRequest only carries the attributes that are being changed.
type UpdateUserRequest struct {
	Email    string `json:"email,omitempty"`
	Password string `json:"password,omitempty"`
}

type listUsersResponse struct {
	Users []User `json:"users"`
}

// Client talks to the auth provider's REST API with the service-role key.
type Client struct {
	apiKey     string
	endpoint   string
	httpClient *http.Client
	logger     *zap.Logger
}

// NewClient creates an admin client for the provider at endpoint (the project
// base URL, without /auth/v1).
func NewClient(apiKey, endpoint string, logger *zap.Logger) *Client {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Client{
		apiKey:   apiKey,
		endpoint: strings.TrimRight(endpoint, "/"),
		httpClient: &http.Client{
			Timeout: 15 * time.Second,
		},
		logger: logger.Named("AdminClient"),
	}
}

// ListUsers returns every user known to the auth provider.
func (c *Client) ListUsers(ctx context.Context) ([]User, error) {
	var out listUsersResponse
	if err := c.do(ctx, http.MethodGet, "/auth/v1/admin/users", c.apiKey, nil, &out); err != nil {
		return nil, err
	}
	if out.Users == nil {
		out.Users = []User{}
	}
	return out.Users, nil
}

// CreateUser creates a user whose email is already confirmed.
func (c *Client) CreateUser(ctx context.Context, email, password string) (*User, error) {
	body := CreateUserRequest{Email: email, Password: password, EmailConfirm: true}
	var u User
	if err := c.do(ctx, http.MethodPost, "/auth/v1/admin/users", c.apiKey, body, &u); err != nil {
		return nil, err
	}
	c.logger.Info("User created", zap.String("userID", u.ID))
	return &u, nil
}

// UpdateUser changes email and/or password; empty values are left untouched.
func (c *Client) UpdateUser(ctx context.Context, userID string, req UpdateUserRequest) (*User, error) {
	var u User
	if err := c.do(ctx, http.MethodPut, "/auth/v1/admin/users/"+url.PathEscape(userID), c.apiKey, req, &u); err != nil {
		return nil, err
	}
	c.logger.Info("User updated", zap.String("userID", userID),
		zap.Bool("email", req.Email != ""), zap.Bool("password", req.Password != ""))
	return &u, nil
}

// DeleteUser removes a user. The provider's response body is returned as-is.
func (c *Client) DeleteUser(ctx context.Context, userID string) (json.RawMessage, error) {
	var raw json.RawMessage
	if err := c.do(ctx, http.MethodDelete, "/auth/v1/admin/users/"+url.PathEscape(userID), c.apiKey, nil, &raw); err != nil {
		return nil, err
	}
	if len(raw) == 0 {
		raw = json.RawMessage(`{}`)
	}
	c.logger.Info("User deleted", zap.String("userID", userID))
	return raw, nil
}

// GetUser resolves the user that owns accessToken.
func (c *Client) GetUser(ctx context.Context, accessToken string) (*User, error) {
	var u User
	if err := c.do(ctx, http.MethodGet, "/auth/v1/user", accessToken, nil, &u); err != nil {
		return nil, err
	}
	return &u, nil
}

func (c *Client) do(ctx context.Context, method, path, bearer string, in, out any) error {
	if c.apiKey == "" || c.endpoint == "" {
		return ErrNotConfigured
	}

	var body io.Reader
	if in != nil {
		jsonData, err := json.Marshal(in)
		if err != nil {
			return fmt.Errorf("failed to marshal auth provider request: %w", err)
		}
		body = bytes.NewReader(jsonData)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.endpoint+path, body)
	if err != nil {
		return fmt.Errorf("failed to create auth provider request: %w", err)
	}
	if in != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	req.Header.Set("apikey", c.apiKey)
	req.Header.Set("Authorization", "Bearer "+bearer)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("failed to send request to auth provider: %w", err)
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("failed to read auth provider response: %w", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		msg := providerMessage(respBody)
		if msg == "" {
			msg = resp.Status
		}
		c.logger.Warn("Auth provider error",
			zap.String("method", method), zap.String("path", path),
			zap.Int("status", resp.StatusCode), zap.String("message", msg))
		return &ProviderError{Status: resp.StatusCode, Message: msg}
	}

	if out == nil || len(bytes.TrimSpace(respBody)) == 0 {
		return nil
	}
	if err := json.Unmarshal(respBody, out); err != nil {
		return fmt.Errorf("failed to decode auth provider response: %w", err)
	}
	return nil
}

// providerMessage picks the human readable message out of an error body. The
// provider is not consistent about the key it uses.
func providerMessage(body []byte) string {
	var payload map[string]any
	if err := json.Unmarshal(body, &payload); err != nil {
		return strings.TrimSpace(string(body))
	}
	for _, key := range []string{"msg", "message", "error_description", "error"} {
		if s, ok := payload[key].(string); ok && s != "" {
			return s
		}
	}
	return ""
}
