package main

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func runValidate(t *testing.T, args ...string) (string, error) {
	t.Helper()

	cmd := newValidateCmd(&rootFlags{})
	out := &bytes.Buffer{}
	cmd.SetOut(out)
	cmd.SetErr(out)
	cmd.SetArgs(args)

	err := cmd.Execute()
	return out.String(), err
}

func TestValidateCommandAcceptsGoodConfig(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "dashboard.yaml")
	require.NoError(t, os.WriteFile(path, []byte("version: \"1.0\"\ntheme: dark\n"), 0o644))

	out, err := runValidate(t, path)

	require.NoError(t, err)
	assert.Contains(t, out, "is valid")
	assert.Contains(t, out, "dark")
}

func TestValidateCommandRejectsBadConfig(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "dashboard.yaml")
	require.NoError(t, os.WriteFile(path, []byte("version: \"1.0\"\ntheme: solarized\n"), 0o644))

	_, err := runValidate(t, path)

	require.Error(t, err)
	assert.Contains(t, err.Error(), "validation error")
}

func TestValidateCommandRequiresPath(t *testing.T) {
	t.Parallel()

	_, err := runValidate(t)

	require.Error(t, err)
}
