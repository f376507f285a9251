package registry

import (
	"io"
	"log/slog"
	"testing"

	"github.com/launchpadhq/launchpad/pkg/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestRegistry() *Registry {
	return NewRegistry(slog.New(slog.NewTextHandler(io.Discard, nil)))
}

func TestRegistry_KindsCoverClosedSet(t *testing.T) {
	registry := newTestRegistry()

	assert.ElementsMatch(t, models.NodeKinds(), registry.Kinds())
}

func TestRegistry_IsValidKind(t *testing.T) {
	registry := newTestRegistry()

	assert.True(t, registry.IsValidKind("trigger"))
	assert.True(t, registry.IsValidKind("notification"))
	assert.False(t, registry.IsValidKind("teleporter"))
	assert.False(t, registry.IsValidKind(""))
}

func TestRegistry_DefaultsFor(t *testing.T) {
	registry := newTestRegistry()

	defaults, err := registry.DefaultsFor(models.NodeKindNotification)
	require.NoError(t, err)

	assert.Equal(t, "Send Email", defaults.Label)
	assert.Equal(t, string(models.NotificationEmail), defaults.Config[models.SubtypeConfigKey])
	assert.Equal(t, "team@example.com", defaults.Config["to"])
}

func TestRegistry_DefaultsFor_UnknownKind(t *testing.T) {
	registry := newTestRegistry()

	_, err := registry.DefaultsFor(models.NodeKind("teleporter"))
	assert.Error(t, err)
}

func TestRegistry_DefaultsFor_ReturnsCopies(t *testing.T) {
	registry := newTestRegistry()

	first, err := registry.DefaultsFor(models.NodeKindTrigger)
	require.NoError(t, err)

	first.Config["schedule"] = "*/5 * * * *"

	second, err := registry.DefaultsFor(models.NodeKindTrigger)
	require.NoError(t, err)
	assert.Equal(t, "0 9 * * *", second.Config["schedule"])
}

func TestRegistry_HealthCheck(t *testing.T) {
	registry := newTestRegistry()

	message, ok := registry.HealthCheck()
	assert.True(t, ok)
	assert.Contains(t, message, "healthy")
}

func TestValidateConfig_DefaultsPassTheirOwnSchema(t *testing.T) {
	registry := newTestRegistry()

	for _, kind := range registry.Kinds() {
		defaults, err := registry.DefaultsFor(kind)
		require.NoError(t, err)

		violations, err := registry.ValidateConfig(kind, defaults.Config)
		require.NoError(t, err)
		assert.Empty(t, violations, "kind %s default config must validate", kind)
	}
}

func TestValidateConfig_TypeViolations(t *testing.T) {
	registry := newTestRegistry()

	violations, err := registry.ValidateConfig(models.NodeKindTrigger, map[string]any{"schedule": 42})
	require.NoError(t, err)
	assert.NotEmpty(t, violations)
}

func TestValidateConfig_EnumViolations(t *testing.T) {
	registry := newTestRegistry()

	violations, err := registry.ValidateConfig(models.NodeKindAnalytics, map[string]any{"data_privacy": "everything"})
	require.NoError(t, err)
	assert.NotEmpty(t, violations)

	violations, err = registry.ValidateConfig(models.NodeKindNotification, map[string]any{models.SubtypeConfigKey: "pigeon"})
	require.NoError(t, err)
	assert.NotEmpty(t, violations)
}

func TestValidateConfig_ExtensionKeysPass(t *testing.T) {
	registry := newTestRegistry()

	violations, err := registry.ValidateConfig(models.NodeKindAction, map[string]any{
		"adjustment_type": "pause",
		"experiment_tag":  "q3-test",
	})
	require.NoError(t, err)
	assert.Empty(t, violations, "undeclared keys stay legal")
}

func TestValidateConfig_NilConfig(t *testing.T) {
	registry := newTestRegistry()

	violations, err := registry.ValidateConfig(models.NodeKindAction, nil)
	require.NoError(t, err)
	assert.Empty(t, violations)
}

func TestValidateConfig_UnknownKind(t *testing.T) {
	registry := newTestRegistry()

	_, err := registry.ValidateConfig(models.NodeKind("teleporter"), map[string]any{})
	assert.Error(t, err)
}
