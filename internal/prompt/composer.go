// Package prompt turns wizard answers into the text handed to the video model.
// Everything here is pure: no I/O, no shared mutable state.
package prompt

import (
	"strings"

	"magic_prompt_server/internal/types"
)

// DialogMarker introduces the dialogue block of a composed prompt.
const DialogMarker = "Character speaks"

const partSeparator = ", "

// Compose renders r into the final prompt. Empty fields are skipped; an
// entirely empty record yields "".
func Compose(r types.FieldRecord) string {
	parts := []string{
		r.Scene,
		PovPhrase(r.Pov),
		r.Environment,
		r.Movements,
		r.Emotion,
		r.Sensory,
		StylePhrase(r.Style),
	}

	kept := parts[:0]
	for _, p := range parts {
		if strings.TrimSpace(p) != "" {
			kept = append(kept, p)
		}
	}

	var b strings.Builder
	b.WriteString(strings.Join(kept, partSeparator))

	if strings.TrimSpace(r.CharactersCount) != "" {
		b.WriteString(partSeparator)
		b.WriteString(r.CharactersCount)
		if r.CharactersCount == "1" {
			b.WriteString(" personagem na cena")
		} else {
			b.WriteString(" personagens na cena")
		}
	}

	if strings.TrimSpace(r.DialogLanguage) != "" {
		b.WriteString("\n\n")
		b.WriteString(DialogMarker)
		b.WriteString("\n\n")
		b.WriteString(r.DialogLanguage)
		b.WriteString(": ")
	}

	if strings.TrimSpace(r.CharacterSpeech) != "" {
		b.WriteString("\n\n")
		b.WriteString(r.CharacterSpeech)
	}

	return b.String()
}

// SummaryEntry is one labelled line of the step summary shown next to the
// final prompt.
type SummaryEntry struct {
	Label string `json:"label"`
	Value string `json:"value"`
}

// Summary lists the seven scene-building answers with enumerated values
// expanded to their phrases.
func Summary(r types.FieldRecord) []SummaryEntry {
	return []SummaryEntry{
		{Label: "Cena", Value: r.Scene},
		{Label: "Ponto de Vista", Value: PovPhrase(r.Pov)},
		{Label: "Ambiente", Value: r.Environment},
		{Label: "Movimentos", Value: r.Movements},
		{Label: "Emoção", Value: r.Emotion},
		{Label: "Elementos Sensoriais", Value: r.Sensory},
		{Label: "Estilo Visual", Value: StylePhrase(r.Style)},
	}
}
