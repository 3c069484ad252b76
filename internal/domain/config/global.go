package config

// ConfigType decides whether the config folder lives in the workspace or in the home directory
type ConfigType string

const (
	ConfigTypeWorkspace ConfigType = "workspace"
	ConfigTypeGlobal    ConfigType = "global"
)

// GlobalConfig is the content of ~/.0L/global_config.yaml
type GlobalConfig struct {
	ConfigType ConfigType `yaml:"config_type,omitempty"`
}

// Type returns the configured type, defaulting to workspace
func (g *GlobalConfig) Type() ConfigType {
	if g == nil || g.ConfigType == "" {
		return ConfigTypeWorkspace
	}
	return g.ConfigType
}
