package render

import (
	"fmt"
	"io"

	"github.com/fatih/color"
	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/libra-community/libra-cli/internal/domain/config"
	"github.com/libra-community/libra-cli/internal/usecase"
)

// ConfigRenderer renders config-related output
type ConfigRenderer struct {
	out io.Writer
}

// NewConfigRenderer creates a new config renderer
func NewConfigRenderer(out io.Writer) *ConfigRenderer {
	return &ConfigRenderer{
		out: out,
	}
}

// RenderInit renders the result of config init
func (r *ConfigRenderer) RenderInit(result *usecase.InitConfigResult) error {
	if result.Replaced {
		fmt.Fprintln(r.out, FormatSuccess(fmt.Sprintf("Replaced profile %s", result.Profile)))
	} else {
		fmt.Fprintln(r.out, FormatSuccess(fmt.Sprintf("Created profile %s", result.Profile)))
	}
	r.renderProfile(result.Config)
	fmt.Fprintf(r.out, "📁 config saved to: %s\n", getRelativePath(result.ConfigPath))
	return nil
}

// RenderProfile renders a single profile
func (r *ConfigRenderer) RenderProfile(result *usecase.ShowProfileResult) error {
	if result.Profile == nil {
		fmt.Fprintln(r.out, FormatWarning(fmt.Sprintf("Profile %s is not configured, run `libra config init`", result.Name)))
		return nil
	}
	fmt.Fprintf(r.out, "📋 Profile %s:\n", color.New(color.FgCyan, color.Bold).Sprint(result.Name))
	r.renderProfile(*result.Profile)
	return nil
}

func (r *ConfigRenderer) renderProfile(p config.ProfileConfig) {
	network := p.Network
	if network != "" {
		network = titleCase(network)
	}

	fmt.Fprintf(r.out, "Network:     %s\n", valueOrUnset(network))
	fmt.Fprintf(r.out, "REST URL:    %s\n", valueOrUnset(p.RestURL))
	if p.FaucetURL != "" {
		fmt.Fprintf(r.out, "Faucet URL:  %s\n", p.FaucetURL)
	}
	fmt.Fprintf(r.out, "Account:     %s\n", valueOrUnset(p.Account))
	fmt.Fprintf(r.out, "Public key:  %s\n", valueOrUnset(p.PublicKey))
	fmt.Fprintf(r.out, "Private key: %s\n", valueOrUnset(maskSecret(p.PrivateKey)))
	if p.DerivationPath != "" {
		fmt.Fprintf(r.out, "Derivation:  %s\n", p.DerivationPath)
	}
}

// RenderProfiles renders all profiles as a table
func (r *ConfigRenderer) RenderProfiles(result *usecase.ListProfilesResult) error {
	if len(result.Names) == 0 {
		fmt.Fprintln(r.out, FormatWarning("No profiles configured, run `libra config init`"))
		return nil
	}

	t := table.NewWriter()
	t.SetOutputMirror(r.out)
	t.SetStyle(table.StyleLight)
	t.Style().Options.DrawBorder = false
	t.Style().Options.SeparateColumns = false
	t.AppendHeader(table.Row{"Profile", "Network", "Account", "REST URL"})

	for _, name := range result.Names {
		p := result.Profiles[name]
		network := p.Network
		if network != "" {
			network = titleCase(network)
		}
		t.AppendRow(table.Row{name, network, p.Account, p.RestURL})
	}
	t.Render()

	fmt.Fprintf(r.out, "\n📁 config file: %s\n", getRelativePath(result.ConfigPath))
	return nil
}

// RenderExists renders whether a config file was found
func (r *ConfigRenderer) RenderExists(exists bool, path string) error {
	if exists {
		fmt.Fprintln(r.out, FormatSuccess(fmt.Sprintf("Config found at %s", getRelativePath(path))))
		return nil
	}
	fmt.Fprintln(r.out, FormatError(fmt.Sprintf("no config found at %s, run `libra config init`", getRelativePath(path))))
	return nil
}

// RenderSuggestions lists profile names close to a missing one
func (r *ConfigRenderer) RenderSuggestions(suggestions []string) {
	if len(suggestions) == 0 {
		return
	}
	fmt.Fprintln(r.out, "Did you mean:")
	for _, s := range suggestions {
		fmt.Fprintf(r.out, "  %s\n", color.New(color.FgCyan).Sprint(s))
	}
}
