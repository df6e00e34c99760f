package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"sync"

	"gopkg.in/yaml.v3"
)

const (
	DefaultConfigPath = "/etc/pam/config"
	ConfigFileName    = "pam.yml"
)

// PAMConfig holds all PAM provisioning configuration settings
type PAMConfig struct {
	// ProvisioningWorkflow is the workflow launched for identity access changes
	ProvisioningWorkflow string `yaml:"provisioning_workflow" json:"provisioning_workflow"`

	// ManagedAttributeWorkflow is the workflow launched for container create/update
	ManagedAttributeWorkflow string `yaml:"managed_attribute_workflow" json:"managed_attribute_workflow"`

	// ContainerObjectType is the managed-attribute object type for containers
	ContainerObjectType string `yaml:"container_object_type" json:"container_object_type"`

	// PrivilegedDataObjectType is the managed-attribute object type for privileged data
	PrivilegedDataObjectType string `yaml:"privileged_data_object_type" json:"privileged_data_object_type"`

	// PendingRequestGuard rejects container mutations while a workflow is pending
	PendingRequestGuard bool `yaml:"pending_request_guard" json:"pending_request_guard"`

	// sources tracks where each value came from
	sources map[string]string

	// configFilePath is the path to the config file
	configFilePath string
}

// Attribute represents a configuration attribute with its value and source
type Attribute struct {
	Name   string `json:"name"`
	Value  string `json:"value"`
	Source string `json:"source"`
}

// Global singleton config
var (
	globalConfig *PAMConfig
	configMu     sync.RWMutex
)

// Get returns the global configuration, loading it if necessary
func Get() *PAMConfig {
	configMu.RLock()
	if globalConfig != nil {
		configMu.RUnlock()
		return globalConfig
	}
	configMu.RUnlock()

	// Load config
	configMu.Lock()
	defer configMu.Unlock()

	if globalConfig == nil {
		cfg, err := Load()
		if err != nil {
			// Return defaults on error
			globalConfig = newDefault()
		} else {
			globalConfig = cfg
		}
	}
	return globalConfig
}

// Reload reloads the configuration from file and environment
func Reload() error {
	cfg, err := Load()
	if err != nil {
		return err
	}

	configMu.Lock()
	globalConfig = cfg
	configMu.Unlock()
	return nil
}

// newDefault returns a config with default values
func newDefault() *PAMConfig {
	return &PAMConfig{
		ProvisioningWorkflow:     "pam-identity-provisioning",
		ManagedAttributeWorkflow: "entitlement-update",
		ContainerObjectType:      "Container",
		PrivilegedDataObjectType: "PrivilegedData",
		PendingRequestGuard:      true,
		sources:                  make(map[string]string),
	}
}

// Load loads configuration from file and environment variables
// Environment variables take precedence over file values
func Load() (*PAMConfig, error) {
	config := newDefault()

	// Initialize all sources as "default"
	for _, name := range attributeNames() {
		config.sources[name] = "default"
	}

	// Determine config file path
	configPath := os.Getenv("PAM_CONFIG_PATH")
	if configPath == "" {
		configPath = DefaultConfigPath
	}
	config.configFilePath = filepath.Join(configPath, ConfigFileName)

	// Try to load from config file
	if data, err := os.ReadFile(config.configFilePath); err == nil {
		var fileConfig PAMConfig
		if err := yaml.Unmarshal(data, &fileConfig); err != nil {
			return nil, fmt.Errorf("failed to parse config file %s: %w", config.configFilePath, err)
		}
		config.applyFileConfig(&fileConfig)
	}

	// Override with environment variables
	config.applyEnvConfig()

	return config, nil
}

func attributeNames() []string {
	return []string{
		"provisioning_workflow", "managed_attribute_workflow",
		"container_object_type", "privileged_data_object_type",
		"pending_request_guard",
	}
}

func (c *PAMConfig) applyFileConfig(file *PAMConfig) {
	if file.ProvisioningWorkflow != "" {
		c.ProvisioningWorkflow = file.ProvisioningWorkflow
		c.sources["provisioning_workflow"] = "file"
	}
	if file.ManagedAttributeWorkflow != "" {
		c.ManagedAttributeWorkflow = file.ManagedAttributeWorkflow
		c.sources["managed_attribute_workflow"] = "file"
	}
	if file.ContainerObjectType != "" {
		c.ContainerObjectType = file.ContainerObjectType
		c.sources["container_object_type"] = "file"
	}
	if file.PrivilegedDataObjectType != "" {
		c.PrivilegedDataObjectType = file.PrivilegedDataObjectType
		c.sources["privileged_data_object_type"] = "file"
	}
}

func (c *PAMConfig) applyEnvConfig() {
	if val := os.Getenv("PAM_PROVISIONING_WORKFLOW"); val != "" {
		c.ProvisioningWorkflow = val
		c.sources["provisioning_workflow"] = "environment"
	}
	if val := os.Getenv("PAM_MANAGED_ATTRIBUTE_WORKFLOW"); val != "" {
		c.ManagedAttributeWorkflow = val
		c.sources["managed_attribute_workflow"] = "environment"
	}
	if val := os.Getenv("PAM_CONTAINER_OBJECT_TYPE"); val != "" {
		c.ContainerObjectType = val
		c.sources["container_object_type"] = "environment"
	}
	if val := os.Getenv("PAM_PRIVILEGED_DATA_OBJECT_TYPE"); val != "" {
		c.PrivilegedDataObjectType = val
		c.sources["privileged_data_object_type"] = "environment"
	}
	if val := os.Getenv("PAM_PENDING_REQUEST_GUARD"); val != "" {
		c.PendingRequestGuard = val == "true" || val == "1"
		c.sources["pending_request_guard"] = "environment"
	}
}

// ConfigFilePath returns the path to the config file
func (c *PAMConfig) ConfigFilePath() string {
	return c.configFilePath
}

// Source returns the source of a configuration attribute
func (c *PAMConfig) Source(name string) string {
	if c.sources == nil {
		return "default"
	}
	if s, ok := c.sources[name]; ok {
		return s
	}
	return "default"
}

// Validate validates the configuration
func (c *PAMConfig) Validate() error {
	if c.ProvisioningWorkflow == "" {
		return fmt.Errorf("provisioning_workflow must not be empty")
	}
	if c.ManagedAttributeWorkflow == "" {
		return fmt.Errorf("managed_attribute_workflow must not be empty")
	}
	if c.ContainerObjectType == "" {
		return fmt.Errorf("container_object_type must not be empty")
	}
	if c.PrivilegedDataObjectType == "" {
		return fmt.Errorf("privileged_data_object_type must not be empty")
	}
	return nil
}

// Attributes returns all configuration attributes with their values and sources
func (c *PAMConfig) Attributes() []Attribute {
	return []Attribute{
		{Name: "provisioning_workflow", Value: c.ProvisioningWorkflow, Source: c.Source("provisioning_workflow")},
		{Name: "managed_attribute_workflow", Value: c.ManagedAttributeWorkflow, Source: c.Source("managed_attribute_workflow")},
		{Name: "container_object_type", Value: c.ContainerObjectType, Source: c.Source("container_object_type")},
		{Name: "privileged_data_object_type", Value: c.PrivilegedDataObjectType, Source: c.Source("privileged_data_object_type")},
		{Name: "pending_request_guard", Value: strconv.FormatBool(c.PendingRequestGuard), Source: c.Source("pending_request_guard")},
	}
}

// FormatJSON returns a JSON representation of the configuration
// attributes with their sources.
func (c *PAMConfig) FormatJSON() (string, error) {
	out, err := json.MarshalIndent(c.Attributes(), "", "  ")
	if err != nil {
		return "", err
	}
	return string(out), nil
}

// FormatText returns a text representation of the configuration
func (c *PAMConfig) FormatText() string {
	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Config file: %s\n\n", c.configFilePath))
	sb.WriteString(fmt.Sprintf("%-32s %-30s %s\n", "NAME", "VALUE", "SOURCE"))
	sb.WriteString(fmt.Sprintf("%-32s %-30s %s\n", "----", "-----", "------"))

	for _, attr := range c.Attributes() {
		value := attr.Value
		if value == "" {
			value = "(not set)"
		}
		sb.WriteString(fmt.Sprintf("%-32s %-30s %s\n", attr.Name, value, attr.Source))
	}
	return sb.String()
}
