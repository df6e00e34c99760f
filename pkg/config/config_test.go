package config

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	t.Setenv("PAM_CONFIG_PATH", t.TempDir())

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "pam-identity-provisioning", cfg.ProvisioningWorkflow)
	assert.Equal(t, "entitlement-update", cfg.ManagedAttributeWorkflow)
	assert.Equal(t, "Container", cfg.ContainerObjectType)
	assert.Equal(t, "PrivilegedData", cfg.PrivilegedDataObjectType)
	assert.True(t, cfg.PendingRequestGuard)
	assert.Equal(t, "default", cfg.Source("provisioning_workflow"))
}

func TestLoadFromFile(t *testing.T) {
	dir := t.TempDir()
	t.Setenv("PAM_CONFIG_PATH", dir)

	yml := "provisioning_workflow: custom-provisioning\ncontainer_object_type: Safe\n"
	require.NoError(t, os.WriteFile(filepath.Join(dir, ConfigFileName), []byte(yml), 0o644))

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "custom-provisioning", cfg.ProvisioningWorkflow)
	assert.Equal(t, "file", cfg.Source("provisioning_workflow"))
	assert.Equal(t, "Safe", cfg.ContainerObjectType)
	// Untouched values stay at defaults.
	assert.Equal(t, "entitlement-update", cfg.ManagedAttributeWorkflow)
	assert.Equal(t, "default", cfg.Source("managed_attribute_workflow"))
}

func TestEnvironmentOverridesFile(t *testing.T) {
	dir := t.TempDir()
	t.Setenv("PAM_CONFIG_PATH", dir)
	t.Setenv("PAM_PROVISIONING_WORKFLOW", "env-provisioning")

	yml := "provisioning_workflow: file-provisioning\n"
	require.NoError(t, os.WriteFile(filepath.Join(dir, ConfigFileName), []byte(yml), 0o644))

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "env-provisioning", cfg.ProvisioningWorkflow)
	assert.Equal(t, "environment", cfg.Source("provisioning_workflow"))
}

func TestPendingRequestGuardFromEnvironment(t *testing.T) {
	t.Setenv("PAM_CONFIG_PATH", t.TempDir())
	t.Setenv("PAM_PENDING_REQUEST_GUARD", "false")

	cfg, err := Load()
	require.NoError(t, err)
	assert.False(t, cfg.PendingRequestGuard)
	assert.Equal(t, "environment", cfg.Source("pending_request_guard"))
}

func TestLoadInvalidYAMLFails(t *testing.T) {
	dir := t.TempDir()
	t.Setenv("PAM_CONFIG_PATH", dir)
	require.NoError(t, os.WriteFile(filepath.Join(dir, ConfigFileName), []byte("{not yaml"), 0o644))

	_, err := Load()
	assert.Error(t, err)
}

func TestValidate(t *testing.T) {
	t.Setenv("PAM_CONFIG_PATH", t.TempDir())

	cfg, err := Load()
	require.NoError(t, err)
	assert.NoError(t, cfg.Validate())

	cfg.ManagedAttributeWorkflow = ""
	assert.Error(t, cfg.Validate())
}

func TestFormatJSON(t *testing.T) {
	t.Setenv("PAM_CONFIG_PATH", t.TempDir())

	cfg, err := Load()
	require.NoError(t, err)

	out, err := cfg.FormatJSON()
	require.NoError(t, err)

	var attrs []Attribute
	require.NoError(t, json.Unmarshal([]byte(out), &attrs))
	assert.Len(t, attrs, 5)
}

func TestFormatTextListsEveryAttribute(t *testing.T) {
	t.Setenv("PAM_CONFIG_PATH", t.TempDir())

	cfg, err := Load()
	require.NoError(t, err)

	text := cfg.FormatText()
	for _, attr := range cfg.Attributes() {
		assert.Contains(t, text, attr.Name)
	}
}
