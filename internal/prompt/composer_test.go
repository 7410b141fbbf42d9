package prompt

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"magic_prompt_server/internal/types"
)

func TestCompose(t *testing.T) {
	tests := []struct {
		name   string
		record types.FieldRecord
		want   string
	}{
		{
			name:   "empty record",
			record: types.FieldRecord{},
			want:   "",
		},
		{
			name: "scene pov style and two characters",
			record: types.FieldRecord{
				Scene:           "Uma mulher acorda atrasada",
				Pov:             "close-up",
				Style:           "cinematografico",
				CharactersCount: "2",
			},
			want: "Uma mulher acorda atrasada, close-up focando nos detalhes faciais, filmado em estilo cinematográfico com luz suave, 2 personagens na cena",
		},
		{
			name:   "single character is singular",
			record: types.FieldRecord{Scene: "Um homem corre", CharactersCount: "1"},
			want:   "Um homem corre, 1 personagem na cena",
		},
		{
			name:   "style without scene",
			record: types.FieldRecord{Style: "noir"},
			want:   "film noir com contrastes dramáticos de luz e sombra",
		},
		{
			name:   "unknown pov key passes through",
			record: types.FieldRecord{Pov: "xyz"},
			want:   "xyz",
		},
		{
			name:   "whitespace-only fields are skipped",
			record: types.FieldRecord{Scene: "Cena", Environment: "   ", Movements: "\t"},
			want:   "Cena",
		},
		{
			name: "dialog language and speech",
			record: types.FieldRecord{
				Scene:           "Dois amigos conversam",
				DialogLanguage:  "english",
				CharacterSpeech: "Hello there!",
			},
			want: "Dois amigos conversam\n\nCharacter speaks\n\nenglish: \n\nHello there!",
		},
		{
			name: "all text fields in order",
			record: types.FieldRecord{
				Scene:       "a",
				Pov:         "drone-aereo",
				Environment: "b",
				Movements:   "c",
				Emotion:     "d",
				Sensory:     "e",
				Style:       "vintage",
			},
			want: "a, vista aérea de drone seguindo o movimento, b, c, d, e, cores frias, com grão de filme e estética vintage",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Compose(tt.record))
		})
	}
}

func TestCompose_Deterministic(t *testing.T) {
	r := types.FieldRecord{
		Scene:           "Uma criança brinca",
		Pov:             "plano-geral",
		Style:           "golden-hour",
		CharactersCount: "3",
		DialogLanguage:  "spanish",
		CharacterSpeech: "¡Vamos!",
	}
	assert.Equal(t, Compose(r), Compose(r))
}

func TestCompose_NoMarkerWithoutLanguage(t *testing.T) {
	r := types.FieldRecord{
		Scene:           "Character speaks",
		CharacterSpeech: "fala",
	}
	out := Compose(r)
	assert.NotContains(t, out, "\n"+DialogMarker+"\n")
}

func TestCompose_SpeechIsVerbatimSuffix(t *testing.T) {
	speech := "  Não acredito!\nSério?  "
	r := types.FieldRecord{Scene: "Cena", DialogLanguage: "portuguese", CharacterSpeech: speech}
	out := Compose(r)
	require.True(t, strings.HasSuffix(out, speech))
	assert.True(t, strings.HasSuffix(out, "\n\n"+speech))
}

func TestCompose_EnumeratedSubstitution(t *testing.T) {
	out := Compose(types.FieldRecord{Pov: "close-up"})
	assert.Equal(t, "close-up focando nos detalhes faciais", out)

	out = Compose(types.FieldRecord{Style: "unknown-style"})
	assert.Equal(t, "unknown-style", out)
}

func TestSummary(t *testing.T) {
	entries := Summary(types.FieldRecord{Scene: "Cena", Pov: "camera-alta", Style: "noir"})
	require.Len(t, entries, 7)
	assert.Equal(t, SummaryEntry{Label: "Cena", Value: "Cena"}, entries[0])
	assert.Equal(t, "câmera alta olhando para baixo", entries[1].Value)
	assert.Equal(t, "film noir com contrastes dramáticos de luz e sombra", entries[6].Value)
	assert.Empty(t, entries[2].Value)
}

func TestSteps(t *testing.T) {
	full, err := Steps(VariantFull)
	require.NoError(t, err)
	require.Len(t, full, 10)
	for i, s := range full {
		assert.Equal(t, types.Fields[i], s.Field, "step %d", i+1)
	}

	classic, err := Steps(VariantClassic)
	require.NoError(t, err)
	assert.Len(t, classic, 7)
	assert.Equal(t, types.FieldVisualStyle, classic[6].Field)

	_, err = Steps("wide")
	assert.Error(t, err)
}

func TestOptionLookups(t *testing.T) {
	for _, o := range PovOptions() {
		assert.Equal(t, o.Phrase, PovPhrase(o.Key))
	}
	for _, o := range StyleOptions() {
		assert.Equal(t, o.Phrase, StylePhrase(o.Key))
	}
	assert.Len(t, LanguageOptions(), 11)
	assert.Equal(t, "", PovPhrase(""))
}
