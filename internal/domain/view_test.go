package domain

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseFunctionID(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    FunctionID
		wantErr bool
	}{
		{
			name:  "short address",
			input: "0x1::coin::balance",
			want:  FunctionID{Address: "0x1", Module: "coin", Name: "balance"},
		},
		{
			name:  "address without prefix is normalized",
			input: "ABCD::slow_wallet::is_slow",
			want:  FunctionID{Address: "0xabcd", Module: "slow_wallet", Name: "is_slow"},
		},
		{name: "missing name", input: "0x1::coin", wantErr: true},
		{name: "too many segments", input: "0x1::coin::balance::extra", wantErr: true},
		{name: "empty module", input: "0x1::::balance", wantErr: true},
		{name: "non hex address", input: "0xzz::coin::balance", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseFunctionID(tt.input)
			if tt.wantErr {
				require.Error(t, err)
				assert.True(t, errors.Is(err, ErrInvalidFunctionID))
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
			assert.Equal(t, tt.want.Address+"::"+tt.want.Module+"::"+tt.want.Name, got.String())
		})
	}
}

func TestParseTypeArgs(t *testing.T) {
	t.Run("simple list", func(t *testing.T) {
		tags, err := ParseTypeArgs("0x1::libra_coin::LibraCoin, 0x1::gas_coin::GasCoin")
		require.NoError(t, err)
		assert.Equal(t, []string{"0x1::libra_coin::LibraCoin", "0x1::gas_coin::GasCoin"}, tags)
	})

	t.Run("nested generics keep inner commas", func(t *testing.T) {
		tags, err := ParseTypeArgs("0x1::pair::Pair<0x1::a::A, 0x1::b::B>, u64")
		require.NoError(t, err)
		assert.Equal(t, []string{"0x1::pair::Pair<0x1::a::A,0x1::b::B>", "u64"}, tags)
	})

	t.Run("empty input", func(t *testing.T) {
		tags, err := ParseTypeArgs("  ")
		require.NoError(t, err)
		assert.Empty(t, tags)
	})

	t.Run("unbalanced brackets", func(t *testing.T) {
		_, err := ParseTypeArgs("0x1::pair::Pair<u64")
		assert.Error(t, err)

		_, err = ParseTypeArgs("u64>")
		assert.Error(t, err)
	})
}

func TestParseViewArgs(t *testing.T) {
	assert.Equal(t, []any{}, ParseViewArgs(""))
	assert.Equal(t, []any{"0x1", "100"}, ParseViewArgs(" 0x1 , 100"))
}

func TestErrorsMatchNotFound(t *testing.T) {
	assert.True(t, errors.Is(&ConfigNotFoundError{Path: "/tmp/.0L/config.yaml"}, ErrNotFound))
	assert.True(t, errors.Is(&ProfileNotFoundError{Name: "alice"}, ErrNotFound))
	assert.Equal(t, "Profile alice not found", (&ProfileNotFoundError{Name: "alice"}).Error())

	cause := errors.New("yaml: line 2: did not find expected key")
	parseErr := &ParseError{Path: "config.yaml", Err: cause}
	assert.ErrorIs(t, parseErr, cause)
}
