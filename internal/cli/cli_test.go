package cli_test

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yaklabco/docmorph/internal/cli"
)

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()

	root := cli.NewRootCommand(cli.BuildInfo{Version: "test", Commit: "none", Date: "today"})
	var out bytes.Buffer
	root.SetOut(&out)
	root.SetErr(&out)
	root.SetArgs(args)
	err := root.Execute()
	return out.String(), err
}

func TestFormatsCommand(t *testing.T) {
	t.Parallel()

	out, err := execute(t, "formats")
	require.NoError(t, err)

	assert.Contains(t, out, "md")
	assert.Contains(t, out, "html")
	assert.Contains(t, out, "txt")
	assert.Contains(t, out, "pdf")
	assert.Contains(t, out, "write only")
}

func TestConvertCommandMarkdownToHTML(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	input := filepath.Join(dir, "notes.md")
	output := filepath.Join(dir, "notes.html")
	require.NoError(t, os.WriteFile(input, []byte("# Title\n\nHello\n"), 0o644))

	out, err := execute(t, "convert", "-i", input, "-o", output)
	require.NoError(t, err)
	assert.Contains(t, out, "ok")

	generated, err := os.ReadFile(output)
	require.NoError(t, err)
	assert.Contains(t, string(generated), "<h1>Title</h1>")
}

func TestConvertCommandWithExplicitFormats(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	input := filepath.Join(dir, "notes.data")
	output := filepath.Join(dir, "out.data")
	require.NoError(t, os.WriteFile(input, []byte("# Title\n"), 0o644))

	_, err := execute(t, "convert", "-i", input, "-o", output, "--from", "md", "--to", "txt")
	require.NoError(t, err)

	generated, err := os.ReadFile(output)
	require.NoError(t, err)
	assert.Equal(t, "Title\n\n", string(generated))
}

func TestConvertCommandWritesImages(t *testing.T) {
	t.Parallel()

	inDir := t.TempDir()
	outDir := t.TempDir()
	pngBytes := []byte{0x89, 'P', 'N', 'G'}
	require.NoError(t, os.WriteFile(filepath.Join(inDir, "a.png"), pngBytes, 0o644))
	require.NoError(t, os.WriteFile(
		filepath.Join(inDir, "doc.md"),
		[]byte("![pic](a.png \"P\")\n"), 0o644))

	_, err := execute(t, "convert",
		"-i", filepath.Join(inDir, "doc.md"),
		"-o", filepath.Join(outDir, "doc.html"))
	require.NoError(t, err)

	written, err := os.ReadFile(filepath.Join(outDir, "image0.png"))
	require.NoError(t, err)
	assert.Equal(t, pngBytes, written)
}

func TestConvertCommandUnknownFormat(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	input := filepath.Join(dir, "notes.docx")
	require.NoError(t, os.WriteFile(input, []byte("x"), 0o644))

	_, err := execute(t, "convert", "-i", input, "-o", filepath.Join(dir, "out.html"))
	require.Error(t, err)
}

func TestConvertCommandMissingInput(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	_, err := execute(t, "convert",
		"-i", filepath.Join(dir, "absent.md"),
		"-o", filepath.Join(dir, "out.html"))
	require.Error(t, err)
}

func TestConvertCommandRequiresFlags(t *testing.T) {
	t.Parallel()

	_, err := execute(t, "convert")
	require.Error(t, err)
}

func TestVersionCommand(t *testing.T) {
	t.Parallel()

	// The version command logs to stdout directly; executing it must not
	// fail.
	_, err := execute(t, "version")
	require.NoError(t, err)
}
