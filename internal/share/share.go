// Package share renders prompts into the texts users download, export or post.
package share

import (
	"fmt"
	"net/url"
	"os"
	"path/filepath"
	"strings"
	"time"

	"magic_prompt_server/internal/types"
)

const (
	// SocialMessage accompanies the link on social networks.
	SocialMessage = "Acabei de criar um prompt incrível no VEO3 Magic Prompt! 🎬✨"

	dateLayout = "02/01/2006"
)

// DownloadText is the content of the file offered right after composing.
func DownloadText(finalPrompt string, createdAt time.Time) string {
	return "PROMPT VEO3 MAGIC\n" +
		"===============\n\n" +
		finalPrompt + "\n\n" +
		"---\n" +
		"Criado em: " + createdAt.Format(dateLayout) + "\n" +
		"Ferramenta: VEO3 Magic Prompt Weaver\n"
}

// DownloadFilename names the download after its creation instant in unix milliseconds.
func DownloadFilename(t time.Time) string {
	return fmt.Sprintf("veo3-prompt-%d.txt", t.UnixMilli())
}

// LibraryExport is the text export of a saved prompt from the library.
func LibraryExport(p types.SavedPrompt) string {
	var b strings.Builder
	b.WriteString("\nTÍTULO: " + p.Title + "\n\n")
	b.WriteString("PROMPT FINAL:\n" + p.FinalPrompt + "\n\n")
	b.WriteString("DETALHES:\n")
	b.WriteString("- Cena: " + p.Scene + "\n")
	b.WriteString("- POV: " + p.Pov + "\n")
	b.WriteString("- Ambiente: " + p.Environment + "\n")
	b.WriteString("- Movimentos: " + p.Movements + "\n")
	b.WriteString("- Emoção: " + p.Emotion + "\n")
	b.WriteString("- Elementos Sensoriais: " + p.Sensory + "\n")
	b.WriteString("- Estilo: " + p.Style + "\n\n")
	b.WriteString("Criado em: " + p.CreatedAt.Format(dateLayout) + "\n")
	return b.String()
}

// LibraryFilename is "<title>.txt" with path separators and control
// characters replaced.
func LibraryFilename(title string) string {
	clean := strings.Map(func(r rune) rune {
		switch {
		case r == '/' || r == '\\' || r == '"' || r < 0x20 || r == 0x7f:
			return '_'
		}
		return r
	}, strings.TrimSpace(title))
	if clean == "" {
		clean = "prompt"
	}
	return clean + ".txt"
}

// ShareText is the message handed to the native share sheet or clipboard.
func ShareText(p types.SavedPrompt) string {
	return fmt.Sprintf("Confira este prompt para VEO3: \"%s\"\n\n%s\n\nCriado com VEO3 Magic Prompt", p.Title, p.FinalPrompt)
}

// SocialLinks are the share dialogs of each supported network.
type SocialLinks struct {
	Twitter  string `json:"twitter"`
	Facebook string `json:"facebook"`
	LinkedIn string `json:"linkedin"`
}

// NewSocialLinks builds the share URLs for pageURL.
func NewSocialLinks(pageURL string) SocialLinks {
	u := encodeURIComponent(pageURL)
	return SocialLinks{
		Twitter:  "https://twitter.com/intent/tweet?text=" + encodeURIComponent(SocialMessage) + "&url=" + u,
		Facebook: "https://www.facebook.com/sharer/sharer.php?u=" + u,
		LinkedIn: "https://www.linkedin.com/sharing/share-offsite/?url=" + u,
	}
}

// WriteDownload writes the download file for finalPrompt into dir and
// returns its path.
func WriteDownload(dir, finalPrompt string, now time.Time) (string, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("failed to create output directory: %w", err)
	}
	path := filepath.Join(dir, DownloadFilename(now))
	if err := os.WriteFile(path, []byte(DownloadText(finalPrompt, now)), 0o644); err != nil {
		return "", fmt.Errorf("failed to write prompt file: %w", err)
	}
	return path, nil
}

// encodeURIComponent escapes spaces as %20 rather than '+'.
func encodeURIComponent(s string) string {
	return strings.ReplaceAll(url.QueryEscape(s), "+", "%20")
}
