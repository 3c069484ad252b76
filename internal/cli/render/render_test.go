package render

import (
	"bytes"
	"encoding/json"
	"errors"
	"testing"

	"github.com/fatih/color"
	"github.com/libra-community/libra-cli/internal/domain"
	"github.com/libra-community/libra-cli/internal/domain/config"
	"github.com/libra-community/libra-cli/internal/usecase"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func init() {
	color.NoColor = true
}

func TestViewRenderer(t *testing.T) {
	var buf bytes.Buffer
	values := []json.RawMessage{json.RawMessage(`1`), json.RawMessage(`2`), json.RawMessage(`3`)}

	err := NewViewRenderer(&buf).Render(&usecase.ViewFunctionResult{
		Values: values,
		Output: usecase.FormatViewValues(values),
	})
	require.NoError(t, err)
	assert.Equal(t, "\n=======OUTPUT=======\n[1, 2, 3]\n", buf.String())
}

func TestConfigRenderer_RenderProfile(t *testing.T) {
	var buf bytes.Buffer
	err := NewConfigRenderer(&buf).RenderProfile(&usecase.ShowProfileResult{
		Name: "default",
		Profile: &config.ProfileConfig{
			Network:    "testnet",
			RestURL:    "http://localhost:8080/",
			PrivateKey: "0x1234567890abcdef1234",
		},
	})
	require.NoError(t, err)

	out := buf.String()
	assert.Contains(t, out, "Profile default")
	assert.Contains(t, out, "Network:     Testnet")
	assert.Contains(t, out, "Private key: 0x1234********1234")
	assert.NotContains(t, out, "567890abcdef")
	assert.Contains(t, out, "Account:     (not set)")
}

func TestConfigRenderer_RenderProfile_Missing(t *testing.T) {
	var buf bytes.Buffer
	err := NewConfigRenderer(&buf).RenderProfile(&usecase.ShowProfileResult{Name: "default"})
	require.NoError(t, err)
	assert.Contains(t, buf.String(), "Profile default is not configured")
}

func TestConfigRenderer_RenderProfiles(t *testing.T) {
	t.Run("table", func(t *testing.T) {
		var buf bytes.Buffer
		err := NewConfigRenderer(&buf).RenderProfiles(&usecase.ListProfilesResult{
			Names: []string{"default", "ops"},
			Profiles: map[string]config.ProfileConfig{
				"default": {Network: "mainnet"},
				"ops":     {Network: "testnet", Account: "00ab"},
			},
			ConfigPath: "/tmp/.0L/config.yaml",
		})
		require.NoError(t, err)

		out := buf.String()
		assert.Contains(t, out, "PROFILE")
		assert.Contains(t, out, "Mainnet")
		assert.Contains(t, out, "00ab")
	})

	t.Run("empty", func(t *testing.T) {
		var buf bytes.Buffer
		require.NoError(t, NewConfigRenderer(&buf).RenderProfiles(&usecase.ListProfilesResult{}))
		assert.Contains(t, buf.String(), "No profiles configured")
	})
}

func TestConfigRenderer_RenderSuggestions(t *testing.T) {
	var buf bytes.Buffer
	r := NewConfigRenderer(&buf)

	r.RenderSuggestions(nil)
	assert.Empty(t, buf.String())

	r.RenderSuggestions([]string{"default"})
	assert.Equal(t, "Did you mean:\n  default\n", buf.String())
}

func TestMaskSecret(t *testing.T) {
	assert.Equal(t, "", maskSecret(""))
	assert.Equal(t, "****", maskSecret("0xab"))
	assert.Equal(t, "0xabcd********6789", maskSecret("0xabcdef0123456789"))
}

func TestNodeRenderer_RenderCheck(t *testing.T) {
	t.Run("alive", func(t *testing.T) {
		var buf bytes.Buffer
		err := NewNodeRenderer(&buf).RenderCheck("http://localhost:8080/", &usecase.CheckNodeResult{
			Alive: true,
			Info:  &domain.LedgerInfo{ChainID: 2, Epoch: "5", LedgerVersion: "99"},
		})
		require.NoError(t, err)
		assert.Contains(t, buf.String(), "http://localhost:8080/ is alive")
		assert.Contains(t, buf.String(), "Chain ID:       2")
		assert.Contains(t, buf.String(), "Ledger version: 99")
	})

	t.Run("down", func(t *testing.T) {
		var buf bytes.Buffer
		err := NewNodeRenderer(&buf).RenderCheck("http://localhost:8080/", &usecase.CheckNodeResult{
			Err: errors.New("connection refused"),
		})
		require.NoError(t, err)
		assert.Contains(t, buf.String(), "Node http://localhost:8080/ is not responding: connection refused")
	})
}
