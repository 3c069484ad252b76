package usecase_test

import (
	"context"
	"encoding/json"

	"github.com/libra-community/libra-cli/internal/domain"
	"github.com/libra-community/libra-cli/internal/domain/config"
	"github.com/stretchr/testify/mock"
)

// MockCliConfigRepository is a mock implementation of CliConfigRepository
type MockCliConfigRepository struct {
	mock.Mock
}

func (m *MockCliConfigRepository) Exists(mode config.ConfigSearchMode) bool {
	args := m.Called(mode)
	return args.Bool(0)
}

func (m *MockCliConfigRepository) Load(ctx context.Context, mode config.ConfigSearchMode) (*config.CliConfig, error) {
	args := m.Called(ctx, mode)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*config.CliConfig), args.Error(1)
}

func (m *MockCliConfigRepository) LoadProfile(ctx context.Context, name string, mode config.ConfigSearchMode) (*config.ProfileConfig, error) {
	args := m.Called(ctx, name, mode)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*config.ProfileConfig), args.Error(1)
}

func (m *MockCliConfigRepository) Save(ctx context.Context, cfg *config.CliConfig) error {
	args := m.Called(ctx, cfg)
	return args.Error(0)
}

func (m *MockCliConfigRepository) GetPath(mode config.ConfigSearchMode) (string, error) {
	args := m.Called(mode)
	return args.String(0), args.Error(1)
}

// MockViewClient is a mock implementation of ViewClient
type MockViewClient struct {
	mock.Mock
}

func (m *MockViewClient) View(ctx context.Context, req domain.ViewRequest) ([]json.RawMessage, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]json.RawMessage), args.Error(1)
}

// MockProfilePrompter is a mock implementation of ProfilePrompter
type MockProfilePrompter struct {
	mock.Mock
}

func (m *MockProfilePrompter) PromptProfile(ctx context.Context, name string, current config.ProfileConfig) (config.ProfileConfig, error) {
	args := m.Called(ctx, name, current)
	return args.Get(0).(config.ProfileConfig), args.Error(1)
}

// recordingProgress records the messages passed to Start
type recordingProgress struct {
	started []string
	stopped int
}

func (p *recordingProgress) Start(message string) { p.started = append(p.started, message) }
func (p *recordingProgress) Stop()                { p.stopped++ }

// MockNodeChecker is a mock implementation of NodeChecker
type MockNodeChecker struct {
	mock.Mock
}

func (m *MockNodeChecker) LedgerInfo(ctx context.Context) (*domain.LedgerInfo, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.LedgerInfo), args.Error(1)
}
