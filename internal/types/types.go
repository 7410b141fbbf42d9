package types

import (
	"time"

	"github.com/google/uuid"
)

// Field names one answer of the wizard. The order of the constants is the
// order in which the wizard collects them.
type Field string

const (
	FieldScene           Field = "scene"
	FieldPointOfView     Field = "pov"
	FieldEnvironment     Field = "environment"
	FieldMovements       Field = "movements"
	FieldEmotion         Field = "emotion"
	FieldSensoryDetails  Field = "sensory"
	FieldVisualStyle     Field = "style"
	FieldCharacterCount  Field = "charactersCount"
	FieldDialogLanguage  Field = "dialogLanguage"
	FieldCharacterSpeech Field = "characterSpeech"
)

// Fields lists every field in collection order.
var Fields = []Field{
	FieldScene,
	FieldPointOfView,
	FieldEnvironment,
	FieldMovements,
	FieldEmotion,
	FieldSensoryDetails,
	FieldVisualStyle,
	FieldCharacterCount,
	FieldDialogLanguage,
	FieldCharacterSpeech,
}

// FieldRecord holds the answers collected by the wizard. Every field is
// optional; enumerated fields (Pov, Style, DialogLanguage) store the option key.
type FieldRecord struct {
	Scene           string `json:"scene"`
	Pov             string `json:"pov"`
	Environment     string `json:"environment"`
	Movements       string `json:"movements"`
	Emotion         string `json:"emotion"`
	Sensory         string `json:"sensory"`
	Style           string `json:"style"`
	CharactersCount string `json:"charactersCount"`
	DialogLanguage  string `json:"dialogLanguage"`
	CharacterSpeech string `json:"characterSpeech"`
}

// Get returns the value stored for f. Unknown fields read as empty.
func (r *FieldRecord) Get(f Field) string {
	if p := r.slot(f); p != nil {
		return *p
	}
	return ""
}

// Set replaces the whole value of f. It reports false for an unknown field.
func (r *FieldRecord) Set(f Field, value string) bool {
	p := r.slot(f)
	if p == nil {
		return false
	}
	*p = value
	return true
}

// Reset clears every field.
func (r *FieldRecord) Reset() {
	*r = FieldRecord{}
}

func (r *FieldRecord) slot(f Field) *string {
	switch f {
	case FieldScene:
		return &r.Scene
	case FieldPointOfView:
		return &r.Pov
	case FieldEnvironment:
		return &r.Environment
	case FieldMovements:
		return &r.Movements
	case FieldEmotion:
		return &r.Emotion
	case FieldSensoryDetails:
		return &r.Sensory
	case FieldVisualStyle:
		return &r.Style
	case FieldCharacterCount:
		return &r.CharactersCount
	case FieldDialogLanguage:
		return &r.DialogLanguage
	case FieldCharacterSpeech:
		return &r.CharacterSpeech
	}
	return nil
}

// SavedPrompt is one row of the prompts table.
type SavedPrompt struct {
	ID          uuid.UUID `json:"id"`
	UserID      uuid.UUID `json:"user_id"`
	Title       string    `json:"title"`
	Scene       string    `json:"scene"`
	Pov         string    `json:"pov"`
	Environment string    `json:"environment"`
	Movements   string    `json:"movements"`
	Emotion     string    `json:"emotion"`
	Sensory     string    `json:"sensory"`
	Style       string    `json:"style"`
	FinalPrompt string    `json:"final_prompt"`
	IsFavorite  bool      `json:"is_favorite"`
	CreatedAt   time.Time `json:"created_at"`
}

// Profile is the public projection of a user account (profiles table).
type Profile struct {
	ID    uuid.UUID `json:"id"`
	Email string    `json:"email"`
}
