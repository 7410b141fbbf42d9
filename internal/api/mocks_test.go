package api

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"

	"magic_prompt_server/internal/admin"
	"magic_prompt_server/internal/types"
)

type MockPromptRepository struct {
	mock.Mock
}

func NewMockPromptRepository(t *testing.T) *MockPromptRepository {
	m := &MockPromptRepository{}
	m.Mock.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })
	return m
}

func (m *MockPromptRepository) Create(ctx context.Context, p *types.SavedPrompt) error {
	return m.Called(ctx, p).Error(0)
}

func (m *MockPromptRepository) ListByOwner(ctx context.Context, userID uuid.UUID, search string) ([]types.SavedPrompt, error) {
	args := m.Called(ctx, userID, search)
	prompts, _ := args.Get(0).([]types.SavedPrompt)
	return prompts, args.Error(1)
}

func (m *MockPromptRepository) GetByID(ctx context.Context, userID, id uuid.UUID) (*types.SavedPrompt, error) {
	args := m.Called(ctx, userID, id)
	p, _ := args.Get(0).(*types.SavedPrompt)
	return p, args.Error(1)
}

func (m *MockPromptRepository) ToggleFavorite(ctx context.Context, userID, id uuid.UUID) (bool, error) {
	args := m.Called(ctx, userID, id)
	return args.Bool(0), args.Error(1)
}

func (m *MockPromptRepository) Delete(ctx context.Context, userID, id uuid.UUID) error {
	return m.Called(ctx, userID, id).Error(0)
}

type MockProfileRepository struct {
	mock.Mock
}

func NewMockProfileRepository(t *testing.T) *MockProfileRepository {
	m := &MockProfileRepository{}
	m.Mock.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })
	return m
}

func (m *MockProfileRepository) ListProfiles(ctx context.Context) ([]types.Profile, error) {
	args := m.Called(ctx)
	profiles, _ := args.Get(0).([]types.Profile)
	return profiles, args.Error(1)
}

type MockAdminUserService struct {
	mock.Mock
}

func NewMockAdminUserService(t *testing.T) *MockAdminUserService {
	m := &MockAdminUserService{}
	m.Mock.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })
	return m
}

func (m *MockAdminUserService) ListUsers(ctx context.Context) ([]admin.User, error) {
	args := m.Called(ctx)
	users, _ := args.Get(0).([]admin.User)
	return users, args.Error(1)
}

func (m *MockAdminUserService) CreateUser(ctx context.Context, email, password string) (*admin.User, error) {
	args := m.Called(ctx, email, password)
	u, _ := args.Get(0).(*admin.User)
	return u, args.Error(1)
}

func (m *MockAdminUserService) UpdateUser(ctx context.Context, userID string, req admin.UpdateUserRequest) (*admin.User, error) {
	args := m.Called(ctx, userID, req)
	u, _ := args.Get(0).(*admin.User)
	return u, args.Error(1)
}

func (m *MockAdminUserService) DeleteUser(ctx context.Context, userID string) (json.RawMessage, error) {
	args := m.Called(ctx, userID)
	raw, _ := args.Get(0).(json.RawMessage)
	return raw, args.Error(1)
}

type MockTranslator struct {
	mock.Mock
}

func NewMockTranslator(t *testing.T) *MockTranslator {
	m := &MockTranslator{}
	m.Mock.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })
	return m
}

func (m *MockTranslator) Translate(ctx context.Context, text string) (string, error) {
	args := m.Called(ctx, text)
	return args.String(0), args.Error(1)
}

func (m *MockTranslator) Provider() string { return "mock" }
