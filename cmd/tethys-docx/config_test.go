package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfigMissingFile(t *testing.T) {
	cfg, err := LoadConfig(filepath.Join(t.TempDir(), "absent.toml"))
	require.NoError(t, err)
	assert.Equal(t, DefaultConfig(), cfg)
	assert.Equal(t, "info", cfg.LogLevel)
}

func TestLoadConfigParsesTOML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	content := `
template_dir = "/srv/templates"
log_level = "debug"
word_processor = "soffice"
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))

	cfg, err := LoadConfig(path)
	require.NoError(t, err)
	assert.Equal(t, "/srv/templates", cfg.TemplateDir)
	assert.Equal(t, "debug", cfg.LogLevel)
	assert.Equal(t, "soffice", cfg.WordProcessor)
}

func TestLoadConfigPartialFileKeepsDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	require.NoError(t, os.WriteFile(path, []byte(`template_dir = "/srv/templates"`), 0644))

	cfg, err := LoadConfig(path)
	require.NoError(t, err)
	assert.Equal(t, "/srv/templates", cfg.TemplateDir)
	assert.Equal(t, "info", cfg.LogLevel, "unset keys keep their defaults")
}

func TestLoadConfigInvalidTOML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	require.NoError(t, os.WriteFile(path, []byte("template_dir = [broken"), 0644))

	_, err := LoadConfig(path)
	assert.Error(t, err)
}

func TestResolveTemplate(t *testing.T) {
	cfg := &Config{TemplateDir: "/srv/templates"}

	assert.Equal(t, filepath.Join("/srv/templates", "report.docx"), cfg.resolveTemplate("report.docx"))
	assert.Equal(t, "sub/report.docx", cfg.resolveTemplate("sub/report.docx"), "paths are used as-is")

	bare := &Config{}
	assert.Equal(t, "report.docx", bare.resolveTemplate("report.docx"), "no template dir configured")
}
