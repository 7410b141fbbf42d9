package wizard

import (
	"errors"
	"sync"
	"time"

	"github.com/google/uuid"

	"magic_prompt_server/internal/prompt"
	"magic_prompt_server/internal/types"
)

// ErrNoEditableField is returned when a value is set while the session shows
// the preview.
var ErrNoEditableField = errors.New("no field is editable in the preview state")

// Session is one user's wizard run: the answers collected so far plus the
// step cursor. Methods are safe for concurrent use.
type Session struct {
	mu        sync.Mutex
	id        uuid.UUID
	variant   prompt.Variant
	steps     []prompt.Step
	seq       *Sequencer
	record    types.FieldRecord
	createdAt time.Time
}

// NewSession starts a session at step 1 with an empty record.
func NewSession(variant prompt.Variant) (*Session, error) {
	steps, err := prompt.Steps(variant)
	if err != nil {
		return nil, err
	}
	if variant == "" {
		variant = prompt.VariantFull
	}
	return &Session{
		id:        uuid.New(),
		variant:   variant,
		steps:     steps,
		seq:       NewSequencer(len(steps)),
		createdAt: time.Now().UTC(),
	}, nil
}

// ID identifies the session in the store.
func (s *Session) ID() uuid.UUID { return s.id }

// Set replaces the value of the field bound to the current step.
func (s *Session) Set(value string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.seq.InPreview() {
		return ErrNoEditableField
	}
	s.record.Set(s.steps[s.seq.Current()-1].Field, value)
	return nil
}

func (s *Session) Advance() View {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.seq.Advance()
	return s.viewLocked()
}

func (s *Session) Retreat() View {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.seq.Retreat()
	return s.viewLocked()
}

// Reset goes back to step 1 and clears every answer.
func (s *Session) Reset() View {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.seq.Reset()
	s.record.Reset()
	return s.viewLocked()
}

// Record returns a copy of the answers.
func (s *Session) Record() types.FieldRecord {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.record
}

// View snapshots the session for rendering.
func (s *Session) View() View {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.viewLocked()
}

// Preview composes the current answers. It works from any state; the UI only
// asks for it once the cursor reaches the terminal step.
func (s *Session) Preview() Preview {
	r := s.Record()
	return Preview{
		Prompt:  prompt.Compose(r),
		Summary: prompt.Summary(r),
	}
}

func (s *Session) viewLocked() View {
	v := View{
		ID:         s.id,
		Variant:    s.variant,
		Step:       s.seq.Current(),
		TotalSteps: s.seq.Total(),
		InPreview:  s.seq.InPreview(),
		Progress:   s.seq.Progress(),
		Record:     s.record,
		CreatedAt:  s.createdAt,
	}
	if !v.InPreview {
		step := s.steps[v.Step-1]
		v.Current = &step
	}
	return v
}

// View is the JSON shape of a session.
type View struct {
	ID         uuid.UUID         `json:"id"`
	Variant    prompt.Variant    `json:"variant"`
	Step       int               `json:"step"`
	TotalSteps int               `json:"totalSteps"`
	InPreview  bool              `json:"inPreview"`
	Progress   int               `json:"progress"`
	Current    *prompt.Step      `json:"current,omitempty"`
	Record     types.FieldRecord `json:"record"`
	CreatedAt  time.Time         `json:"createdAt"`
}

// Preview is the composed prompt plus the step summary.
type Preview struct {
	Prompt  string                `json:"prompt"`
	Summary []prompt.SummaryEntry `json:"summary"`
}
