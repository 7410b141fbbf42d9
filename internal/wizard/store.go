package wizard

import (
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/patrickmn/go-cache"

	"magic_prompt_server/internal/prompt"
)

var ErrSessionNotFound = errors.New("wizard session not found")

const defaultSessionTTL = 30 * time.Minute

// Store keeps live sessions in memory. Every Get pushes the expiry forward, so
// a session only disappears after ttl of inactivity.
type Store struct {
	sessions *cache.Cache
	ttl      time.Duration
}

func NewStore(ttl time.Duration) *Store {
	if ttl <= 0 {
		ttl = defaultSessionTTL
	}
	return &Store{
		sessions: cache.New(ttl, 2*ttl),
		ttl:      ttl,
	}
}

// Create starts a new session for variant and registers it.
func (st *Store) Create(variant prompt.Variant) (*Session, error) {
	s, err := NewSession(variant)
	if err != nil {
		return nil, err
	}
	st.sessions.Set(s.ID().String(), s, st.ttl)
	return s, nil
}

func (st *Store) Get(id uuid.UUID) (*Session, error) {
	v, ok := st.sessions.Get(id.String())
	if !ok {
		return nil, ErrSessionNotFound
	}
	// Replace fails once a concurrent Delete has removed the key.
	if err := st.sessions.Replace(id.String(), v, st.ttl); err != nil {
		return nil, ErrSessionNotFound
	}
	return v.(*Session), nil
}

func (st *Store) Delete(id uuid.UUID) error {
	if _, ok := st.sessions.Get(id.String()); !ok {
		return ErrSessionNotFound
	}
	st.sessions.Delete(id.String())
	return nil
}

// Len reports how many sessions are currently held, expired ones included
// until the janitor runs.
func (st *Store) Len() int {
	return st.sessions.ItemCount()
}
