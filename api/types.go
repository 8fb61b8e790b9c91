package api

import (
	"encoding/json"
	"fmt"
	"math"

	"github.com/shopspring/decimal"
)

// Body is a decoded API response. Numbers are kept as json.Number.
type Body map[string]interface{}

// ID returns the record's id and whether it is set to a non-empty value
func (b Body) ID() (string, bool) {
	v, exists := b["id"]
	if !exists || !truthy(v) {
		return "", false
	}
	return fmt.Sprint(v), true
}

// Balance returns the record's balance field as a decimal
func (b Body) Balance() (decimal.Decimal, bool) {
	switch v := b["balance"].(type) {
	case json.Number:
		d, err := decimal.NewFromString(v.String())
		return d, err == nil
	case string:
		d, err := decimal.NewFromString(v)
		return d, err == nil
	case float64:
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return decimal.Zero, false
		}
		return decimal.NewFromFloat(v), true
	default:
		return decimal.Zero, false
	}
}

// TransactionRequest is the payload posted to the transact endpoint
type TransactionRequest struct {
	SourceBankID string `json:"sourceBankId"`
	DestBankID   string `json:"destBankId"`
	PayerID      string `json:"payerId"`
	PayeeID      string `json:"payeeId"`
	Amount       Amount `json:"amount"`
}

func truthy(v interface{}) bool {
	switch t := v.(type) {
	case nil:
		return false
	case bool:
		return t
	case string:
		return t != ""
	case json.Number:
		f, err := t.Float64()
		return err == nil && f != 0
	case float64:
		return t != 0 && !math.IsNaN(t)
	default:
		return true
	}
}
