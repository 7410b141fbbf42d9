package prompt

import (
	"errors"
	"fmt"

	"magic_prompt_server/internal/types"
)

// ErrUnknownVariant is returned for a step list name that does not exist.
var ErrUnknownVariant = errors.New("unknown wizard variant")

// InputKind tells a renderer which control to draw for a step.
type InputKind string

const (
	InputText   InputKind = "text"
	InputSelect InputKind = "select"
	InputNumber InputKind = "number"
)

// Variant selects one of the fixed step lists.
type Variant string

const (
	// VariantFull walks through all ten fields.
	VariantFull Variant = "full"
	// VariantClassic stops after the visual style (seven steps).
	VariantClassic Variant = "classic"
)

// Step describes one wizard screen. Options is only set for select inputs.
type Step struct {
	Field       types.Field `json:"field"`
	Title       string      `json:"title"`
	Label       string      `json:"label"`
	Hint        string      `json:"hint"`
	Placeholder string      `json:"placeholder,omitempty"`
	Input       InputKind   `json:"input"`
	Options     []Option    `json:"options,omitempty"`
}

var fullSteps = []Step{
	{
		Field:       types.FieldScene,
		Title:       "Cena Cotidiana ou Emocional",
		Label:       "Descreva sua cena cotidiana ou emocional:",
		Hint:        "Pense em uma situação específica e humana. Pode ser algo cotidiano como \"acordar atrasado\" ou emocional como \"chorar de alívio\".",
		Placeholder: "Ex: Uma mulher jovem acordando atrasada, correndo pela casa procurando as chaves...",
		Input:       InputText,
	},
	{
		Field:   types.FieldPointOfView,
		Title:   "Ponto de Vista (POV)",
		Label:   "Escolha o ponto de vista da câmera:",
		Hint:    "O ponto de vista define como o espectador vai vivenciar a cena. Cada opção cria uma sensação diferente.",
		Input:   InputSelect,
		Options: povOptions,
	},
	{
		Field:       types.FieldEnvironment,
		Title:       "Ambiente",
		Label:       "Descreva o ambiente e cenário:",
		Hint:        "O ambiente ajuda a IA a posicionar corretamente o cenário. Seja específico sobre luz, espaço e atmosfera.",
		Placeholder: "Ex: em uma cozinha moderna iluminada por luz natural da manhã...",
		Input:       InputText,
	},
	{
		Field:       types.FieldMovements,
		Title:       "Movimentos Naturais",
		Label:       "Adicione movimentos humanos naturais:",
		Hint:        "Evite cenas estáticas. Pequenos gestos naturais fazem toda a diferença para parecer real.",
		Placeholder: "Ex: ela mexe no cabelo nervosamente enquanto olha o relógio...",
		Input:       InputText,
	},
	{
		Field:       types.FieldEmotion,
		Title:       "Expressão e Emoção",
		Label:       "Descreva a expressão facial ou emoção:",
		Hint:        "A expressão facial é o que conecta o espectador com o personagem. Seja sutil e específico.",
		Placeholder: "Ex: com um sorriso cansado mas aliviado no rosto...",
		Input:       InputText,
	},
	{
		Field:       types.FieldSensoryDetails,
		Title:       "Elementos Sensoriais",
		Label:       "Adicione elementos sensoriais (som, toque):",
		Hint:        "Som e toque dão profundidade à cena. Estes detalhes criam imersão total.",
		Placeholder: "Ex: som suave de chuva na janela e o tic-tac do relógio...",
		Input:       InputText,
	},
	{
		Field:   types.FieldVisualStyle,
		Title:   "Estilo Visual",
		Label:   "Escolha o estilo visual ou cinematográfico:",
		Hint:    "O estilo visual define a atmosfera geral do seu vídeo. Escolha o que melhor combina com sua história.",
		Input:   InputSelect,
		Options: styleOptions,
	},
	{
		Field:       types.FieldCharacterCount,
		Title:       "Quantidade de personagens na cena",
		Label:       "Quantidade de personagens:",
		Hint:        "Informe o número de personagens presentes na cena.",
		Placeholder: "Ex: 3",
		Input:       InputNumber,
	},
	{
		Field:   types.FieldDialogLanguage,
		Title:   "Linguagem do dialogo do video",
		Label:   "Linguagem do diálogo:",
		Hint:    "Selecione a linguagem do diálogo.",
		Input:   InputSelect,
		Options: languageOptions,
	},
	{
		Field:       types.FieldCharacterSpeech,
		Title:       "Texto do que o personagem irá falar",
		Label:       "O que o personagem vai falar:",
		Hint:        "Escreva a fala exatamente como deve ser dita. Ela não será traduzida.",
		Placeholder: "Ex: Não acredito que perdi a hora de novo!",
		Input:       InputText,
	},
}

// Steps returns the step list of v. The returned slice must not be modified.
func Steps(v Variant) ([]Step, error) {
	switch v {
	case VariantFull, "":
		return fullSteps, nil
	case VariantClassic:
		return fullSteps[:7], nil
	}
	return nil, fmt.Errorf("%w %q", ErrUnknownVariant, v)
}
