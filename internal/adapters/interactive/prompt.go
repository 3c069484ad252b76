package interactive

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/ethereum/go-ethereum/common/hexutil"
	"github.com/fatih/color"
	"github.com/libra-community/libra-cli/internal/domain/config"
	"github.com/libra-community/libra-cli/internal/usecase"
	"github.com/manifoldco/promptui"
	"github.com/sahilm/fuzzy"
)

// ErrPromptAborted is returned when the user interrupts a prompt
var ErrPromptAborted = errors.New("prompt aborted")

// PrompterAdapter asks for profile fields on the terminal
type PrompterAdapter struct {
	config *config.RuntimeConfig
}

// NewPrompterAdapter creates a new prompter adapter
func NewPrompterAdapter(cfg *config.RuntimeConfig) *PrompterAdapter {
	return &PrompterAdapter{config: cfg}
}

type field struct {
	label    string
	value    *string
	mask     bool
	validate promptui.ValidateFunc
}

// PromptProfile asks for every profile field, offering the current value as default
func (p *PrompterAdapter) PromptProfile(ctx context.Context, name string, current config.ProfileConfig) (config.ProfileConfig, error) {
	if p.config.NonInteractive {
		return current, nil
	}

	fmt.Fprintln(color.Output, color.New(color.FgCyan, color.Bold).Sprintf("Configuring profile %s", name))

	profile := current
	fields := []field{
		{label: "REST URL", value: &profile.RestURL, validate: validateURL},
		{label: "Network", value: &profile.Network},
		{label: "Account", value: &profile.Account, validate: validateAccount},
		{label: "Private key", value: &profile.PrivateKey, mask: true, validate: validateHex},
		{label: "Public key", value: &profile.PublicKey, validate: validateHex},
	}

	for _, f := range fields {
		if err := ctx.Err(); err != nil {
			return current, err
		}

		prompt := promptui.Prompt{
			Label:     f.label,
			Default:   *f.value,
			AllowEdit: !f.mask,
			Validate:  f.validate,
		}
		if f.mask {
			prompt.Mask = '*'
		}

		result, err := prompt.Run()
		if err != nil {
			if errors.Is(err, promptui.ErrInterrupt) || errors.Is(err, promptui.ErrEOF) {
				return current, ErrPromptAborted
			}
			return current, fmt.Errorf("failed to read %s: %w", strings.ToLower(f.label), err)
		}
		*f.value = strings.TrimSpace(result)
	}

	return profile, nil
}

func validateHex(input string) error {
	input = strings.TrimSpace(input)
	if input == "" {
		return nil
	}
	if !strings.HasPrefix(input, "0x") {
		input = "0x" + input
	}
	if _, err := hexutil.Decode(input); err != nil {
		return fmt.Errorf("not valid hex: %w", err)
	}
	return nil
}

// validateAccount accepts short addresses like 0x1, which are padded on save
func validateAccount(input string) error {
	_, err := usecase.NormalizeAccount(input)
	return err
}

func validateURL(input string) error {
	input = strings.TrimSpace(input)
	if input == "" {
		return nil
	}
	if !strings.HasPrefix(input, "http://") && !strings.HasPrefix(input, "https://") {
		return fmt.Errorf("URL must start with http:// or https://")
	}
	return nil
}

// SuggestProfiles returns the profile names closest to name, best match first
func SuggestProfiles(name string, available []string) []string {
	if name == "" || len(available) == 0 {
		return nil
	}

	lowered := make([]string, len(available))
	for i, a := range available {
		lowered[i] = strings.ToLower(a)
	}

	var suggestions []string
	seen := map[int]bool{}
	for _, match := range fuzzy.Find(strings.ToLower(name), lowered) {
		suggestions = append(suggestions, available[match.Index])
		seen[match.Index] = true
	}
	// catch names that are longer than the available ones, e.g. "defaults" for "default"
	for i, a := range lowered {
		if !seen[i] && strings.Contains(strings.ToLower(name), a) {
			suggestions = append(suggestions, available[i])
		}
	}

	return suggestions
}

// Ensure the adapter implements the interface
var _ usecase.ProfilePrompter = (*PrompterAdapter)(nil)
