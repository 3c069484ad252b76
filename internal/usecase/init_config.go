package usecase

import (
	"context"
	"fmt"
	"strings"

	"github.com/ethereum/go-ethereum/common/hexutil"
	"github.com/libra-community/libra-cli/internal/domain/config"
)

// InitConfigParams contains parameters for creating or updating a profile
type InitConfigParams struct {
	Profile string
	Values  config.ProfileConfig
}

// InitConfigResult contains the result of initializing a profile
type InitConfigResult struct {
	Profile    string
	Config     config.ProfileConfig
	ConfigPath string
	Replaced   bool
}

// InitConfig is a use case for writing a profile into .0L/config.yaml
type InitConfig struct {
	store    CliConfigRepository
	prompter ProfilePrompter
	runtime  *config.RuntimeConfig
}

// NewInitConfig creates a new InitConfig use case
func NewInitConfig(store CliConfigRepository, prompter ProfilePrompter, runtime *config.RuntimeConfig) *InitConfig {
	return &InitConfig{
		store:    store,
		prompter: prompter,
		runtime:  runtime,
	}
}

// Run executes the init config use case
func (uc *InitConfig) Run(ctx context.Context, params InitConfigParams) (*InitConfigResult, error) {
	name := params.Profile
	if name == "" {
		name = config.DefaultProfile
	}

	// Config is always saved in the current directory, so read from there too
	cliConfig := &config.CliConfig{}
	if uc.store.Exists(config.CurrentDir) {
		existing, err := uc.store.Load(ctx, config.CurrentDir)
		if err != nil {
			return nil, fmt.Errorf("failed to load existing config: %w", err)
		}
		cliConfig = existing
	}

	_, replaced := cliConfig.Profiles[name]

	profile := params.Values
	if !uc.runtime.NonInteractive && uc.prompter != nil {
		prompted, err := uc.prompter.PromptProfile(ctx, name, profile)
		if err != nil {
			return nil, err
		}
		profile = prompted
	}

	normalized, err := normalizeProfile(profile)
	if err != nil {
		return nil, err
	}

	cliConfig.SetProfile(name, normalized)
	if err := uc.store.Save(ctx, cliConfig); err != nil {
		return nil, fmt.Errorf("failed to save config: %w", err)
	}

	path, err := uc.store.GetPath(config.CurrentDir)
	if err != nil {
		return nil, err
	}

	return &InitConfigResult{
		Profile:    name,
		Config:     normalized,
		ConfigPath: path,
		Replaced:   replaced,
	}, nil
}

// normalizeProfile validates hex fields and brings them into canonical form
func normalizeProfile(p config.ProfileConfig) (config.ProfileConfig, error) {
	var err error
	if p.PrivateKey, err = normalizeKey("private key", p.PrivateKey); err != nil {
		return p, err
	}
	if p.PublicKey, err = normalizeKey("public key", p.PublicKey); err != nil {
		return p, err
	}
	if p.Account, err = NormalizeAccount(p.Account); err != nil {
		return p, err
	}
	return p, nil
}

func normalizeKey(field, key string) (string, error) {
	key = strings.TrimSpace(key)
	if key == "" {
		return "", nil
	}
	if !strings.HasPrefix(key, "0x") {
		key = "0x" + key
	}
	if _, err := hexutil.Decode(key); err != nil {
		return "", fmt.Errorf("invalid %s: %w", field, err)
	}
	return strings.ToLower(key), nil
}

// NormalizeAccount left-pads an account address to 32 bytes of lowercase hex without prefix
func NormalizeAccount(account string) (string, error) {
	account = strings.ToLower(strings.TrimPrefix(strings.TrimSpace(account), "0x"))
	if account == "" {
		return "", nil
	}
	if len(account) > 64 {
		return "", fmt.Errorf("invalid account %s: longer than 32 bytes", account)
	}
	account = strings.Repeat("0", 64-len(account)) + account
	if _, err := hexutil.Decode("0x" + account); err != nil {
		return "", fmt.Errorf("invalid account %s: %w", account, err)
	}
	return account, nil
}
