package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func run(t *testing.T, args ...string) (string, error) {
	t.Helper()
	root := newRootCmd()
	var out bytes.Buffer
	root.SetOut(&out)
	root.SetErr(&out)
	root.SetArgs(args)
	err := root.Execute()
	return out.String(), err
}

func TestComposeCommand(t *testing.T) {
	out, err := run(t, "compose", "--scene", "Uma mulher acordando", "--pov", "close-up", "--characters", "1")
	require.NoError(t, err)
	assert.Equal(t, "Uma mulher acordando, close-up focando nos detalhes faciais, 1 personagem na cena\n", out)
}

func TestComposeCommand_Summary(t *testing.T) {
	out, err := run(t, "compose", "--scene", "Chuva", "--style", "noir", "--summary")
	require.NoError(t, err)
	assert.Contains(t, out, "Cena: Chuva\n")
	assert.Contains(t, out, "Estilo Visual: film noir com contrastes dramáticos de luz e sombra\n")
}

func TestStepsCommand(t *testing.T) {
	out, err := run(t, "steps", "--variant", "classic")
	require.NoError(t, err)
	lines := 0
	for _, l := range strings.Split(out, "\n") {
		if strings.Contains(l, ". ") && !strings.HasPrefix(l, "      ") {
			lines++
		}
	}
	assert.Equal(t, 7, lines)
	assert.Contains(t, out, "pov-celular")

	_, err = run(t, "steps", "--variant", "bogus")
	assert.Error(t, err)
}

func TestExportCommand(t *testing.T) {
	dir := t.TempDir()
	out, err := run(t, "export", "--scene", "Pôr do sol", "--out", dir)
	require.NoError(t, err)

	path := strings.TrimSpace(out)
	assert.Equal(t, dir, filepath.Dir(path))
	assert.True(t, strings.HasPrefix(filepath.Base(path), "veo3-prompt-"))
	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "Pôr do sol")

	_, err = run(t, "export", "--out", dir)
	assert.Error(t, err)
}
