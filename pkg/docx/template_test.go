package docx

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCopyTemplate(t *testing.T) {
	dir := t.TempDir()
	src := filepath.Join(dir, "template.docx")

	doc := quietDoc()
	doc.AddParagraph("template body")
	require.NoError(t, doc.SaveAs(src))

	dst := filepath.Join(dir, "out", "copy.docx")
	quiet := NewLogger(nil, LogOff)
	require.NoError(t, CopyTemplate(src, dst, quiet))

	copied, err := Open(dst, WithLogger(quiet))
	require.NoError(t, err)
	_, err = copied.FindText("template body", MatchExact)
	assert.NoError(t, err, "copy must carry the template content")
}

func TestCopyTemplateOverwrites(t *testing.T) {
	dir := t.TempDir()
	src := filepath.Join(dir, "src.bin")
	dst := filepath.Join(dir, "dst.bin")
	require.NoError(t, os.WriteFile(src, []byte("new"), 0644))
	require.NoError(t, os.WriteFile(dst, []byte("old content"), 0644))

	require.NoError(t, CopyTemplate(src, dst, NewLogger(nil, LogOff)))

	data, err := os.ReadFile(dst)
	require.NoError(t, err)
	assert.Equal(t, "new", string(data))
}

func TestCopyTemplateMissingSource(t *testing.T) {
	dir := t.TempDir()
	err := CopyTemplate(filepath.Join(dir, "absent.docx"), filepath.Join(dir, "out.docx"), NewLogger(nil, LogOff))
	require.Error(t, err)
	assert.True(t, IsDocumentError(err))
}

func TestOpenInWordProcessorMissingFile(t *testing.T) {
	err := OpenInWordProcessor(filepath.Join(t.TempDir(), "absent.docx"), "", NewLogger(nil, LogOff))
	require.Error(t, err)
	assert.True(t, IsDocumentError(err))
}

func TestOpenInWordProcessorCustomExecutable(t *testing.T) {
	dir := t.TempDir()
	target := filepath.Join(dir, "doc.docx")
	require.NoError(t, os.WriteFile(target, []byte("x"), 0644))

	err := OpenInWordProcessor(target, "true", NewLogger(nil, LogOff))
	assert.NoError(t, err, "a launchable executable must not error")

	err = OpenInWordProcessor(target, filepath.Join(dir, "no-such-binary"), NewLogger(nil, LogOff))
	require.Error(t, err)
	assert.True(t, IsDocumentError(err))
}

func TestWordProcessorCommand(t *testing.T) {
	cmd := wordProcessorCommand("soffice", "file.docx")
	assert.Contains(t, cmd.Args, "soffice")
	assert.Contains(t, cmd.Args, "file.docx")

	cmd = wordProcessorCommand("", "file.docx")
	require.NotEmpty(t, cmd.Args)
	assert.Contains(t, cmd.Args, "file.docx")
}
