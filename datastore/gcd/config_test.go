/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

package gcd

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "datastore.yaml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o600))
	return path
}

func TestLoadConfig(t *testing.T) {
	path := writeConfig(t, "projectId: acme-prod\nkeyFilename: /secrets/sa.json\nnamespace: staging\n")

	cfg, err := LoadConfig(path)
	require.NoError(t, err)
	assert.Equal(t, "acme-prod", cfg.ProjectID)
	assert.Equal(t, "/secrets/sa.json", cfg.KeyFilename)
	assert.Equal(t, "staging", cfg.Namespace)
}

func TestLoadConfigEnvFallback(t *testing.T) {
	t.Setenv(EnvProjectID, "acme-env")
	t.Setenv(EnvKeyFile, "/env/sa.json")

	cfg, err := LoadConfig("")
	require.NoError(t, err)
	assert.Equal(t, "acme-env", cfg.ProjectID)
	assert.Equal(t, "/env/sa.json", cfg.KeyFilename)
}

func TestLoadConfigFileWinsOverEnv(t *testing.T) {
	t.Setenv(EnvProjectID, "acme-env")
	path := writeConfig(t, "projectId: acme-file\n")

	cfg, err := LoadConfig(path)
	require.NoError(t, err)
	assert.Equal(t, "acme-file", cfg.ProjectID)
}

func TestLoadConfigMissingProject(t *testing.T) {
	t.Setenv(EnvProjectID, "")
	t.Setenv(EnvKeyFile, "")
	t.Setenv(EnvNamespace, "")

	_, err := LoadConfig("")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "projectId is required")
	assert.ErrorIs(t, err, ErrMissingProjectID)
}

func TestLoadConfigMissingProjectKeepsFileSettings(t *testing.T) {
	t.Setenv(EnvProjectID, "")
	path := writeConfig(t, "keyFilename: /secrets/sa.json\nnamespace: staging\n")

	cfg, err := LoadConfig(path)
	require.ErrorIs(t, err, ErrMissingProjectID)
	assert.Equal(t, "/secrets/sa.json", cfg.KeyFilename)
	assert.Equal(t, "staging", cfg.Namespace)
}

func TestLoadConfigBadFile(t *testing.T) {
	path := writeConfig(t, "projectId: [broken\n")
	_, err := LoadConfig(path)
	require.Error(t, err)
	assert.NotErrorIs(t, err, ErrMissingProjectID)
}
