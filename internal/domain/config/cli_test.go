package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCliConfigProfiles(t *testing.T) {
	cfg := &CliConfig{}
	cfg.SetProfile("zeta", ProfileConfig{Network: "testnet"})
	cfg.SetProfile(DefaultProfile, ProfileConfig{Network: "mainnet"})

	assert.Equal(t, []string{"default", "zeta"}, cfg.ProfileNames())

	profile, ok := cfg.RemoveProfile(DefaultProfile)
	require.True(t, ok)
	assert.Equal(t, "mainnet", profile.Network)
	assert.Equal(t, []string{"zeta"}, cfg.ProfileNames())

	_, ok = cfg.RemoveProfile(DefaultProfile)
	assert.False(t, ok)
}

func TestGlobalConfigType(t *testing.T) {
	var missing *GlobalConfig
	assert.Equal(t, ConfigTypeWorkspace, missing.Type())
	assert.Equal(t, ConfigTypeWorkspace, (&GlobalConfig{}).Type())
	assert.Equal(t, ConfigTypeGlobal, (&GlobalConfig{ConfigType: ConfigTypeGlobal}).Type())
}
