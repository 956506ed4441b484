package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	opsdeckerrors "github.com/opsdeck/opsdeck/pkg/errors"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "dashboard.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestParseConfigMinimalDocumentGetsDefaults(t *testing.T) {
	t.Parallel()

	path := writeConfig(t, "version: \"1.0\"\n")

	cfg, err := ParseConfig(path)
	require.NoError(t, err)

	assert.Equal(t, DefaultTitle, cfg.Title)
	assert.Equal(t, DefaultTheme, cfg.Theme)
	assert.Equal(t, DefaultNotificationDurationMS, cfg.Notifications.DurationMS)
	assert.Equal(t, DefaultNotificationPosition, cfg.Notifications.Position)
	assert.True(t, cfg.Table.StripedEnabled())
	assert.True(t, cfg.Table.HoverEnabled())
}

func TestParseConfigFullDocument(t *testing.T) {
	t.Parallel()

	path := writeConfig(t, `
version: "1.0"
title: Fleet Operations
theme: dark
refresh_seconds: 30
notifications:
  duration_ms: 8000
  position: top-right
table:
  striped: false
panels:
  - id: overview
    title: Overview
  - id: advanced
    title: Advanced settings
    collapsed: true
    size: lg
colours:
  primary: "#2563eb"
`)

	cfg, err := ParseConfig(path)
	require.NoError(t, err)

	assert.Equal(t, "Fleet Operations", cfg.Title)
	assert.Equal(t, "dark", cfg.Theme)
	assert.Equal(t, 8000, cfg.Notifications.DurationMS)
	assert.Equal(t, "top-right", cfg.Notifications.Position)
	assert.False(t, cfg.Table.StripedEnabled())
	assert.True(t, cfg.Table.HoverEnabled())
	require.Len(t, cfg.Panels, 2)
	assert.True(t, cfg.Panels[1].Collapsed)
	assert.Equal(t, "#2563eb", cfg.Colours["primary"])
}

func TestParseConfigMissingFile(t *testing.T) {
	t.Parallel()

	_, err := ParseConfig(filepath.Join(t.TempDir(), "absent.yaml"))

	var parseErr *opsdeckerrors.ParseError
	require.ErrorAs(t, err, &parseErr)
}

func TestParseConfigMalformedYAMLReportsLine(t *testing.T) {
	t.Parallel()

	path := writeConfig(t, "version: \"1.0\"\npanels:\n  - id: [broken\n")

	_, err := ParseConfig(path)

	var parseErr *opsdeckerrors.ParseError
	require.ErrorAs(t, err, &parseErr)
	assert.Positive(t, parseErr.Line)
}

func TestParseConfigInvalidFieldsRejected(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		content string
	}{
		{"missing version", "title: Ops\n"},
		{"bad version", "version: \"one\"\n"},
		{"unknown theme", "version: \"1.0\"\ntheme: solarized\n"},
		{"unknown position", "version: \"1.0\"\nnotifications:\n  position: middle\n"},
		{"bad panel size", "version: \"1.0\"\npanels:\n  - id: a\n    title: A\n    size: huge\n"},
		{"bad panel id", "version: \"1.0\"\npanels:\n  - id: \"Bad ID\"\n    title: A\n"},
		{"bad colour", "version: \"1.0\"\ncolours:\n  primary: blue\n"},
		{"refresh out of range", "version: \"1.0\"\nrefresh_seconds: 9000\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			_, err := ParseConfig(writeConfig(t, tt.content))

			var validationErr *opsdeckerrors.ValidationError
			require.ErrorAs(t, err, &validationErr)
		})
	}
}

func TestParseConfigDuplicatePanelIDs(t *testing.T) {
	t.Parallel()

	path := writeConfig(t, `
version: "1.0"
panels:
  - id: overview
    title: Overview
  - id: overview
    title: Overview again
`)

	_, err := ParseConfig(path)

	var validationErr *opsdeckerrors.ValidationError
	require.ErrorAs(t, err, &validationErr)
	assert.Contains(t, validationErr.Message, "duplicate panel id")
}
