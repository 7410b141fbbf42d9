//go:build integration

package store

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	"go.uber.org/zap"

	"magic_prompt_server/internal/types"
)

type RepositorySuite struct {
	suite.Suite
	pgContainer *postgres.PostgresContainer
	pool        *pgxpool.Pool
	prompts     *PgPromptRepository
	profiles    *PgProfileRepository
}

func (s *RepositorySuite) SetupSuite() {
	ctx := context.Background()

	pgContainer, err := postgres.Run(ctx,
		"postgres:15-alpine",
		postgres.WithDatabase("test-db"),
		postgres.WithUsername("user"),
		postgres.WithPassword("password"),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).WithStartupTimeout(5*time.Minute),
		),
	)
	s.Require().NoError(err)
	s.pgContainer = pgContainer

	connStr, err := pgContainer.ConnectionString(ctx, "sslmode=disable")
	s.Require().NoError(err)

	s.pool, err = pgxpool.New(ctx, connStr)
	s.Require().NoError(err)
	s.Require().NoError(s.pool.Ping(ctx))

	s.Require().NoError(Bootstrap(ctx, s.pool, true, zap.NewNop()))
	// second run is a no-op
	s.Require().NoError(ApplyMigrations(s.pool, nil))
	s.Require().NoError(Bootstrap(ctx, s.pool, false, nil))

	s.prompts = NewPgPromptRepository(s.pool, nil)
	s.profiles = NewPgProfileRepository(s.pool, nil)
}

func (s *RepositorySuite) TearDownSuite() {
	if s.pool != nil {
		s.pool.Close()
	}
	if s.pgContainer != nil {
		s.Require().NoError(s.pgContainer.Terminate(context.Background()))
	}
}

func (s *RepositorySuite) SetupTest() {
	_, err := s.pool.Exec(context.Background(), `TRUNCATE prompts, profiles`)
	s.Require().NoError(err)
}

func (s *RepositorySuite) save(owner uuid.UUID, title string, r types.FieldRecord) *types.SavedPrompt {
	p, err := NewSavedPrompt(owner, title, r)
	s.Require().NoError(err)
	s.Require().NoError(s.prompts.Create(context.Background(), p))
	return p
}

func (s *RepositorySuite) TestCreateAndGet() {
	ctx := context.Background()
	owner := uuid.New()
	p := s.save(owner, "", types.FieldRecord{Scene: "Uma mulher acorda atrasada", Pov: "close-up"})

	s.NotEqual(uuid.Nil, p.ID)
	s.False(p.CreatedAt.IsZero())

	got, err := s.prompts.GetByID(ctx, owner, p.ID)
	s.Require().NoError(err)
	s.Equal("Uma mulher acorda atrasada", got.Title)
	s.Equal(p.FinalPrompt, got.FinalPrompt)
	s.Equal("", got.Style)

	_, err = s.prompts.GetByID(ctx, uuid.New(), p.ID)
	s.ErrorIs(err, ErrPromptNotFound)
}

func (s *RepositorySuite) TestListByOwnerNewestFirstWithSearch() {
	ctx := context.Background()
	owner := uuid.New()
	first := s.save(owner, "Praia ao pôr do sol", types.FieldRecord{Scene: "Ondas quebrando", Style: "golden-hour"})
	time.Sleep(10 * time.Millisecond)
	second := s.save(owner, "Cidade", types.FieldRecord{Scene: "Chuva em neon", Style: "neon-cyberpunk"})
	s.save(uuid.New(), "Outro dono", types.FieldRecord{Scene: "Praia"})

	all, err := s.prompts.ListByOwner(ctx, owner, "")
	s.Require().NoError(err)
	s.Require().Len(all, 2)
	s.Equal(second.ID, all[0].ID)
	s.Equal(first.ID, all[1].ID)

	byTitle, err := s.prompts.ListByOwner(ctx, owner, "PRAIA")
	s.Require().NoError(err)
	s.Require().Len(byTitle, 1)
	s.Equal(first.ID, byTitle[0].ID)

	byPrompt, err := s.prompts.ListByOwner(ctx, owner, "cyberpunk")
	s.Require().NoError(err)
	s.Require().Len(byPrompt, 1)
	s.Equal(second.ID, byPrompt[0].ID)

	none, err := s.prompts.ListByOwner(ctx, owner, "%")
	s.Require().NoError(err)
	s.Empty(none)
}

func (s *RepositorySuite) TestToggleFavoriteAndDelete() {
	ctx := context.Background()
	owner := uuid.New()
	p := s.save(owner, "Favorito", types.FieldRecord{Scene: "x"})

	fav, err := s.prompts.ToggleFavorite(ctx, owner, p.ID)
	s.Require().NoError(err)
	s.True(fav)
	fav, err = s.prompts.ToggleFavorite(ctx, owner, p.ID)
	s.Require().NoError(err)
	s.False(fav)

	_, err = s.prompts.ToggleFavorite(ctx, uuid.New(), p.ID)
	s.ErrorIs(err, ErrPromptNotFound)

	s.ErrorIs(s.prompts.Delete(ctx, uuid.New(), p.ID), ErrPromptNotFound)
	s.Require().NoError(s.prompts.Delete(ctx, owner, p.ID))
	s.ErrorIs(s.prompts.Delete(ctx, owner, p.ID), ErrPromptNotFound)
}

func (s *RepositorySuite) TestListProfiles() {
	ctx := context.Background()
	id1, id2 := uuid.New(), uuid.New()
	_, err := s.pool.Exec(ctx, `INSERT INTO profiles (id, email) VALUES ($1, $2), ($3, NULL)`, id1, "a@veo3.pt", id2)
	s.Require().NoError(err)

	profiles, err := s.profiles.ListProfiles(ctx)
	s.Require().NoError(err)
	s.Require().Len(profiles, 2)
	s.ElementsMatch([]types.Profile{{ID: id1, Email: "a@veo3.pt"}, {ID: id2, Email: ""}}, profiles)
}

func TestRepositorySuite(t *testing.T) {
	if testing.Short() {
		t.Skip("Skipping integration tests in short mode")
	}
	testcontainers.SkipIfProviderIsNotHealthy(t)
	suite.Run(t, new(RepositorySuite))
}
