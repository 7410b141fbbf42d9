package share

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"magic_prompt_server/internal/types"
)

var fixedTime = time.Date(2025, time.March, 7, 14, 30, 0, 0, time.UTC)

func TestDownloadText(t *testing.T) {
	want := "PROMPT VEO3 MAGIC\n===============\n\nUma cena, 2 personagens na cena\n\n---\nCriado em: 07/03/2025\nFerramenta: VEO3 Magic Prompt Weaver\n"
	assert.Equal(t, want, DownloadText("Uma cena, 2 personagens na cena", fixedTime))
}

func TestDownloadFilename(t *testing.T) {
	assert.Equal(t, "veo3-prompt-1741357800000.txt", DownloadFilename(fixedTime))
}

func TestLibraryExport(t *testing.T) {
	p := types.SavedPrompt{
		Title:       "Manhã",
		FinalPrompt: "final",
		Scene:       "cena",
		Pov:         "close-up",
		Style:       "noir",
		CreatedAt:   fixedTime,
	}
	want := "\nTÍTULO: Manhã\n\nPROMPT FINAL:\nfinal\n\nDETALHES:\n" +
		"- Cena: cena\n- POV: close-up\n- Ambiente: \n- Movimentos: \n- Emoção: \n" +
		"- Elementos Sensoriais: \n- Estilo: noir\n\nCriado em: 07/03/2025\n"
	assert.Equal(t, want, LibraryExport(p))
}

func TestLibraryFilename(t *testing.T) {
	assert.Equal(t, "Manhã corrida.txt", LibraryFilename("Manhã corrida"))
	assert.Equal(t, "a_b_c.txt", LibraryFilename("a/b\\c"))
	assert.Equal(t, "prompt.txt", LibraryFilename("  "))
}

func TestShareText(t *testing.T) {
	p := types.SavedPrompt{Title: "Noite", FinalPrompt: "film noir"}
	assert.Equal(t,
		"Confira este prompt para VEO3: \"Noite\"\n\nfilm noir\n\nCriado com VEO3 Magic Prompt",
		ShareText(p))
}

func TestNewSocialLinks(t *testing.T) {
	links := NewSocialLinks("https://veo3.pt/prompt?id=1&x=a b")
	enc := "https%3A%2F%2Fveo3.pt%2Fprompt%3Fid%3D1%26x%3Da%20b"
	assert.Equal(t, "https://www.facebook.com/sharer/sharer.php?u="+enc, links.Facebook)
	assert.Equal(t, "https://www.linkedin.com/sharing/share-offsite/?url="+enc, links.LinkedIn)
	assert.Contains(t, links.Twitter, "https://twitter.com/intent/tweet?text=Acabei%20de%20criar")
	assert.Contains(t, links.Twitter, "&url="+enc)
	assert.NotContains(t, links.Twitter, "+")
}

func TestWriteDownload(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "out")
	path, err := WriteDownload(dir, "texto final", fixedTime)
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(dir, "veo3-prompt-1741357800000.txt"), path)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, DownloadText("texto final", fixedTime), string(data))
}
