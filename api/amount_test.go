package api_test

import (
	"encoding/json"
	"math"
	"math/big"
	"testing"

	"github.com/chinmay1088/ddollars/api"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseAmount_Valid(t *testing.T) {
	tests := []struct {
		name  string
		input interface{}
		want  string
	}{
		{"digit string", "10", "10"},
		{"leading zeros", "007", "7"},
		{"int", 10, "10"},
		{"int64", int64(1) << 40, "1099511627776"},
		{"uint64", uint64(math.MaxUint64), "18446744073709551615"},
		{"whole float", 50.0, "50"},
		{"json number", json.Number("25"), "25"},
		{"decimal", decimal.NewFromInt(3), "3"},
		{"big int", new(big.Int).Exp(big.NewInt(10), big.NewInt(30), nil), "1000000000000000000000000000000"},
		{"huge digit string", "123456789012345678901234567890", "123456789012345678901234567890"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := api.ParseAmount(tt.input)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got.String())
		})
	}
}

func TestParseAmount_Invalid(t *testing.T) {
	tests := []struct {
		name  string
		input interface{}
		want  error
	}{
		{"fraction", "10.5", api.ErrInvalidAmount},
		{"plus sign", "+10", api.ErrInvalidAmount},
		{"minus sign", "-10", api.ErrInvalidAmount},
		{"letters", "abc", api.ErrInvalidAmount},
		{"exponent", "1e3", api.ErrInvalidAmount},
		{"whitespace", " 10", api.ErrInvalidAmount},
		{"empty", "", api.ErrInvalidAmount},
		{"zero string", "0", api.ErrZeroAmount},
		{"zero int", 0, api.ErrZeroAmount},
		{"negative int", -1, api.ErrInvalidAmount},
		{"fractional float", 10.5, api.ErrInvalidAmount},
		{"nan", math.NaN(), api.ErrInvalidAmount},
		{"infinity", math.Inf(1), api.ErrInvalidAmount},
		{"negative decimal", decimal.NewFromInt(-4), api.ErrInvalidAmount},
		{"fractional decimal", decimal.RequireFromString("1.25"), api.ErrInvalidAmount},
		{"nil big int", (*big.Int)(nil), api.ErrInvalidAmount},
		{"unsupported type", []int{1}, api.ErrInvalidAmount},
		{"nil", nil, api.ErrInvalidAmount},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := api.ParseAmount(tt.input)
			assert.ErrorIs(t, err, tt.want)
		})
	}
}

func TestAmount_MarshalsAsNumber(t *testing.T) {
	data, err := json.Marshal(struct {
		Amount api.Amount `json:"amount"`
	}{api.MustParseAmount("50")})
	require.NoError(t, err)
	assert.JSONEq(t, `{"amount":50}`, string(data))
}

func TestMustParseAmount_Panics(t *testing.T) {
	assert.Panics(t, func() { api.MustParseAmount("1.5") })
}
