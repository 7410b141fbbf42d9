package store

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/zap"

	"magic_prompt_server/internal/prompt"
	"magic_prompt_server/internal/types"
)

var (
	ErrPromptNotFound      = errors.New("prompt not found")
	ErrPromptAlreadyExists = errors.New("prompt already exists")
	ErrTitleRequired       = errors.New("title is required")
)

const titleFromSceneLimit = 50

const promptFields = `id, user_id, title, COALESCE(scene, ''), COALESCE(pov, ''), COALESCE(environment, ''),
	COALESCE(movements, ''), COALESCE(emotion, ''), COALESCE(sensory, ''), COALESCE(style, ''),
	COALESCE(final_prompt, ''), is_favorite, created_at`

// PromptRepository persists saved prompts. Every read and write is scoped to
// the owning user.
type PromptRepository interface {
	Create(ctx context.Context, p *types.SavedPrompt) error
	ListByOwner(ctx context.Context, userID uuid.UUID, search string) ([]types.SavedPrompt, error)
	GetByID(ctx context.Context, userID, id uuid.UUID) (*types.SavedPrompt, error)
	ToggleFavorite(ctx context.Context, userID, id uuid.UUID) (bool, error)
	Delete(ctx context.Context, userID, id uuid.UUID) error
}

// ProfileRepository reads the public profiles table.
type ProfileRepository interface {
	ListProfiles(ctx context.Context) ([]types.Profile, error)
}

// NewSavedPrompt builds the row for saving record on behalf of userID. The
// final prompt is always recomposed here; a blank title falls back to the
// start of the scene.
func NewSavedPrompt(userID uuid.UUID, title string, record types.FieldRecord) (*types.SavedPrompt, error) {
	if strings.TrimSpace(title) == "" {
		title = truncateRunes(record.Scene, titleFromSceneLimit)
	}
	if strings.TrimSpace(title) == "" {
		return nil, ErrTitleRequired
	}
	return &types.SavedPrompt{
		UserID:      userID,
		Title:       title,
		Scene:       record.Scene,
		Pov:         record.Pov,
		Environment: record.Environment,
		Movements:   record.Movements,
		Emotion:     record.Emotion,
		Sensory:     record.Sensory,
		Style:       record.Style,
		FinalPrompt: prompt.Compose(record),
	}, nil
}

func truncateRunes(s string, n int) string {
	r := []rune(s)
	if len(r) <= n {
		return s
	}
	return string(r[:n])
}

type PgPromptRepository struct {
	db     *pgxpool.Pool
	logger *zap.Logger
}

func NewPgPromptRepository(db *pgxpool.Pool, logger *zap.Logger) *PgPromptRepository {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &PgPromptRepository{db: db, logger: logger.Named("PgPromptRepository")}
}

func (r *PgPromptRepository) Create(ctx context.Context, p *types.SavedPrompt) error {
	query := `INSERT INTO prompts (user_id, title, scene, pov, environment, movements, emotion, sensory, style, final_prompt)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
		RETURNING id, is_favorite, created_at`
	err := r.db.QueryRow(ctx, query,
		p.UserID, p.Title, p.Scene, p.Pov, p.Environment, p.Movements, p.Emotion, p.Sensory, p.Style, p.FinalPrompt,
	).Scan(&p.ID, &p.IsFavorite, &p.CreatedAt)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" { // unique_violation
			return ErrPromptAlreadyExists
		}
		r.logger.Error("Failed to create prompt", zap.String("userID", p.UserID.String()), zap.Error(err))
		return fmt.Errorf("failed to create prompt: %w", err)
	}
	r.logger.Info("Prompt saved", zap.String("userID", p.UserID.String()), zap.String("promptID", p.ID.String()))
	return nil
}

// ListByOwner returns the user's prompts, newest first. A non-empty search
// keeps rows whose title or final prompt contains it, ignoring case.
func (r *PgPromptRepository) ListByOwner(ctx context.Context, userID uuid.UUID, search string) ([]types.SavedPrompt, error) {
	args := []interface{}{userID}
	var qb strings.Builder
	qb.WriteString(fmt.Sprintf(`SELECT %s FROM prompts WHERE user_id = $1`, promptFields))
	if s := strings.TrimSpace(search); s != "" {
		args = append(args, "%"+escapeLike(s)+"%")
		qb.WriteString(` AND (title ILIKE $2 OR final_prompt ILIKE $2)`)
	}
	qb.WriteString(` ORDER BY created_at DESC`)

	rows, err := r.db.Query(ctx, qb.String(), args...)
	if err != nil {
		r.logger.Error("Failed to list prompts", zap.String("userID", userID.String()), zap.Error(err))
		return nil, fmt.Errorf("failed to list prompts: %w", err)
	}
	defer rows.Close()

	prompts := make([]types.SavedPrompt, 0)
	for rows.Next() {
		var p types.SavedPrompt
		if err := scanPrompt(rows, &p); err != nil {
			return nil, fmt.Errorf("failed to scan prompt row: %w", err)
		}
		prompts = append(prompts, p)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate prompt rows: %w", err)
	}
	return prompts, nil
}

func (r *PgPromptRepository) GetByID(ctx context.Context, userID, id uuid.UUID) (*types.SavedPrompt, error) {
	query := fmt.Sprintf(`SELECT %s FROM prompts WHERE id = $1 AND user_id = $2`, promptFields)
	var p types.SavedPrompt
	if err := scanPrompt(r.db.QueryRow(ctx, query, id, userID), &p); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrPromptNotFound
		}
		r.logger.Error("Failed to get prompt", zap.String("promptID", id.String()), zap.Error(err))
		return nil, fmt.Errorf("failed to get prompt: %w", err)
	}
	return &p, nil
}

// ToggleFavorite flips is_favorite and returns the new value.
func (r *PgPromptRepository) ToggleFavorite(ctx context.Context, userID, id uuid.UUID) (bool, error) {
	query := `UPDATE prompts SET is_favorite = NOT is_favorite WHERE id = $1 AND user_id = $2 RETURNING is_favorite`
	var fav bool
	if err := r.db.QueryRow(ctx, query, id, userID).Scan(&fav); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return false, ErrPromptNotFound
		}
		r.logger.Error("Failed to toggle favorite", zap.String("promptID", id.String()), zap.Error(err))
		return false, fmt.Errorf("failed to toggle favorite: %w", err)
	}
	return fav, nil
}

func (r *PgPromptRepository) Delete(ctx context.Context, userID, id uuid.UUID) error {
	commandTag, err := r.db.Exec(ctx, `DELETE FROM prompts WHERE id = $1 AND user_id = $2`, id, userID)
	if err != nil {
		r.logger.Error("Failed to delete prompt", zap.String("promptID", id.String()), zap.Error(err))
		return fmt.Errorf("failed to delete prompt: %w", err)
	}
	if commandTag.RowsAffected() == 0 {
		return ErrPromptNotFound
	}
	r.logger.Info("Prompt deleted", zap.String("userID", userID.String()), zap.String("promptID", id.String()))
	return nil
}

type PgProfileRepository struct {
	db     *pgxpool.Pool
	logger *zap.Logger
}

func NewPgProfileRepository(db *pgxpool.Pool, logger *zap.Logger) *PgProfileRepository {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &PgProfileRepository{db: db, logger: logger.Named("PgProfileRepository")}
}

func (r *PgProfileRepository) ListProfiles(ctx context.Context) ([]types.Profile, error) {
	rows, err := r.db.Query(ctx, `SELECT id, COALESCE(email, '') FROM profiles ORDER BY created_at`)
	if err != nil {
		r.logger.Error("Failed to list profiles", zap.Error(err))
		return nil, fmt.Errorf("failed to list profiles: %w", err)
	}
	defer rows.Close()

	profiles := make([]types.Profile, 0)
	for rows.Next() {
		var p types.Profile
		if err := rows.Scan(&p.ID, &p.Email); err != nil {
			return nil, fmt.Errorf("failed to scan profile row: %w", err)
		}
		profiles = append(profiles, p)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate profile rows: %w", err)
	}
	return profiles, nil
}

func scanPrompt(row pgx.Row, p *types.SavedPrompt) error {
	return row.Scan(
		&p.ID, &p.UserID, &p.Title, &p.Scene, &p.Pov, &p.Environment,
		&p.Movements, &p.Emotion, &p.Sensory, &p.Style,
		&p.FinalPrompt, &p.IsFavorite, &p.CreatedAt,
	)
}

var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

func escapeLike(s string) string {
	return likeEscaper.Replace(s)
}
