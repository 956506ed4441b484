package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	opsdeckerrors "github.com/opsdeck/opsdeck/pkg/errors"
)

func validConfig() *Config {
	cfg := &Config{Version: "1.0"}
	cfg.ApplyDefaults()
	return cfg
}

func TestValidateConfigNil(t *testing.T) {
	t.Parallel()

	err := ValidateConfig(nil)

	var validationErr *opsdeckerrors.ValidationError
	require.ErrorAs(t, err, &validationErr)
}

func TestValidateConfigAccepted(t *testing.T) {
	t.Parallel()

	require.NoError(t, ValidateConfig(validConfig()))
}

func TestValidateConfigReportsYAMLStyleFieldPath(t *testing.T) {
	t.Parallel()

	cfg := validConfig()
	cfg.Notifications.Position = "sideways"

	err := ValidateConfig(cfg)

	var validationErr *opsdeckerrors.ValidationError
	require.ErrorAs(t, err, &validationErr)
	assert.Contains(t, validationErr.Field, "notifications.position")
}

func TestGetValidatorSharedInstance(t *testing.T) {
	t.Parallel()

	assert.Same(t, GetValidator(), GetValidator())
}

func TestCustomValidators(t *testing.T) {
	t.Parallel()

	v := GetValidator()

	assert.NoError(t, v.Var("#fff", "hex_colour"))
	assert.NoError(t, v.Var("#2563eb", "hex_colour"))
	assert.Error(t, v.Var("2563eb", "hex_colour"))
	assert.Error(t, v.Var("#25636", "hex_colour"))

	assert.NoError(t, v.Var("bottom-right", "corner"))
	assert.Error(t, v.Var("center", "corner"))

	assert.NoError(t, v.Var("XL", "size_variant"))
	assert.Error(t, v.Var("tiny", "size_variant"))

	assert.NoError(t, v.Var("1.0", "schema_version"))
	assert.NoError(t, v.Var("1.2.3", "schema_version"))
	assert.Error(t, v.Var("v1", "schema_version"))
}

func TestApplyDefaultsIdempotent(t *testing.T) {
	t.Parallel()

	cfg := &Config{Version: "1.0", Theme: "dark"}
	cfg.ApplyDefaults()
	cfg.ApplyDefaults()

	assert.Equal(t, "dark", cfg.Theme)
	assert.Equal(t, DefaultNotificationDurationMS, cfg.Notifications.DurationMS)
}
