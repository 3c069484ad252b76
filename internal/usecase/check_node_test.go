package usecase_test

import (
	"context"
	"errors"
	"testing"

	"github.com/libra-community/libra-cli/internal/domain"
	"github.com/libra-community/libra-cli/internal/usecase"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestCheckNode(t *testing.T) {
	t.Run("alive", func(t *testing.T) {
		checker := new(MockNodeChecker)
		info := &domain.LedgerInfo{ChainID: 1, LedgerVersion: "10"}
		checker.On("LedgerInfo", mock.Anything).Return(info, nil)

		result, err := usecase.NewCheckNode(checker).Run(context.Background())
		require.NoError(t, err)
		assert.True(t, result.Alive)
		assert.Equal(t, info, result.Info)
		assert.NoError(t, result.Err)
		checker.AssertExpectations(t)
	})

	t.Run("unreachable is reported", func(t *testing.T) {
		checker := new(MockNodeChecker)
		checker.On("LedgerInfo", mock.Anything).Return(nil, errors.New("connection refused"))

		result, err := usecase.NewCheckNode(checker).Run(context.Background())
		require.NoError(t, err)
		assert.False(t, result.Alive)
		assert.EqualError(t, result.Err, "connection refused")
	})

	t.Run("cancelled context is an error", func(t *testing.T) {
		ctx, cancel := context.WithCancel(context.Background())
		cancel()

		checker := new(MockNodeChecker)
		checker.On("LedgerInfo", mock.Anything).Return(nil, context.Canceled)

		_, err := usecase.NewCheckNode(checker).Run(ctx)
		assert.ErrorIs(t, err, context.Canceled)
	})
}
