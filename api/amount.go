package api

import (
	"encoding/json"
	"fmt"
	"math"
	"math/big"
	"strings"

	"github.com/shopspring/decimal"
)

// Amount is a strictly positive whole quantity of currency
type Amount struct {
	value decimal.Decimal
}

// ParseAmount converts a string or numeric value into an Amount.
// Strings must consist of ASCII digits only; signs, decimal points,
// exponents and whitespace are rejected. Numeric values must be whole
// and greater than zero.
func ParseAmount(v interface{}) (Amount, error) {
	var d decimal.Decimal

	switch t := v.(type) {
	case Amount:
		d = t.value
	case string:
		parsed, err := parseDigits(t)
		if err != nil {
			return Amount{}, err
		}
		d = parsed
	case json.Number:
		parsed, err := parseDigits(t.String())
		if err != nil {
			return Amount{}, err
		}
		d = parsed
	case int:
		d = decimal.NewFromInt(int64(t))
	case int8:
		d = decimal.NewFromInt(int64(t))
	case int16:
		d = decimal.NewFromInt(int64(t))
	case int32:
		d = decimal.NewFromInt(int64(t))
	case int64:
		d = decimal.NewFromInt(t)
	case uint:
		d = decimal.NewFromBigInt(new(big.Int).SetUint64(uint64(t)), 0)
	case uint8:
		d = decimal.NewFromInt(int64(t))
	case uint16:
		d = decimal.NewFromInt(int64(t))
	case uint32:
		d = decimal.NewFromInt(int64(t))
	case uint64:
		d = decimal.NewFromBigInt(new(big.Int).SetUint64(t), 0)
	case float32:
		return parseFloat(float64(t))
	case float64:
		return parseFloat(t)
	case decimal.Decimal:
		d = t
	case *big.Int:
		if t == nil {
			return Amount{}, ErrInvalidAmount
		}
		d = decimal.NewFromBigInt(t, 0)
	default:
		return Amount{}, ErrInvalidAmount
	}

	return newAmount(d)
}

// MustParseAmount is like ParseAmount but panics on invalid input
func MustParseAmount(v interface{}) Amount {
	a, err := ParseAmount(v)
	if err != nil {
		panic(err)
	}
	return a
}

// Decimal returns the amount as a decimal
func (a Amount) Decimal() decimal.Decimal {
	return a.value
}

func (a Amount) String() string {
	return a.value.String()
}

// MarshalJSON encodes the amount as a bare JSON number
func (a Amount) MarshalJSON() ([]byte, error) {
	return []byte(a.value.String()), nil
}

func newAmount(d decimal.Decimal) (Amount, error) {
	if d.IsZero() {
		return Amount{}, ErrZeroAmount
	}
	if d.IsNegative() || !d.IsInteger() {
		return Amount{}, ErrInvalidAmount
	}
	return Amount{value: d}, nil
}

func parseDigits(s string) (decimal.Decimal, error) {
	if s == "" || strings.IndexFunc(s, func(r rune) bool { return r < '0' || r > '9' }) >= 0 {
		return decimal.Zero, ErrInvalidAmount
	}
	d, err := decimal.NewFromString(s)
	if err != nil {
		return decimal.Zero, ErrInvalidAmount
	}
	return d, nil
}

func parseFloat(f float64) (Amount, error) {
	if math.IsNaN(f) || math.IsInf(f, 0) || f != math.Trunc(f) {
		return Amount{}, ErrInvalidAmount
	}
	return newAmount(decimal.NewFromFloat(f))
}

// isBlankAmount reports whether no amount was supplied at all
func isBlankAmount(v interface{}) bool {
	switch t := v.(type) {
	case nil:
		return true
	case string:
		return t == ""
	case json.Number:
		return t == ""
	case *big.Int:
		return t == nil
	}
	return false
}

// isZeroAmount reports whether v is numerically zero in any notation
func isZeroAmount(v interface{}) bool {
	switch t := v.(type) {
	case string:
		d, err := decimal.NewFromString(strings.TrimSpace(t))
		return err == nil && d.IsZero()
	case json.Number:
		d, err := decimal.NewFromString(t.String())
		return err == nil && d.IsZero()
	case float32:
		return t == 0
	case float64:
		return t == 0
	case decimal.Decimal:
		return t.IsZero()
	case *big.Int:
		return t != nil && t.Sign() == 0
	case int, int8, int16, int32, int64, uint, uint8, uint16, uint32, uint64:
		return fmt.Sprint(t) == "0"
	}
	return false
}
