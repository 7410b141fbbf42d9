package prompts

import "fmt"

// GetTranslatePrompt asks the model to translate the narrative of a composed
// prompt into English while leaving every character line untouched.
func GetTranslatePrompt(prompt string) string {
	return fmt.Sprintf(`Você receberá um conteúdo de prompt que mistura narrativa com falas de personagens.

Seu trabalho é traduzir apenas a narrativa para o inglês, mantendo todas as falas e diálogos de personagens exatamente como estão, sem traduzir.

O conteúdo é:
"""
%s
"""

Retorne apenas o prompt traduzido, sem comentários ou explicações.`, prompt)
}
