package api_test

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"testing"

	"github.com/chinmay1088/ddollars/api"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetBalanceFromBank_UsesBankScopedEndpoint(t *testing.T) {
	f := newFakeAPI(t)
	f.on(http.MethodGet, "/api/bank/b1/balance/u1", http.StatusOK, `{"id":"u1","balance":"12"}`)

	body, err := f.client().GetBalanceFromBank(context.Background(), "u1", "b1")
	require.NoError(t, err)

	balance, ok := body.Balance()
	require.True(t, ok)
	assert.Equal(t, "12", balance.String())

	reqs := f.requests()
	require.Len(t, reqs, 1)
	assert.Equal(t, "/api/bank/b1/balance/u1", reqs[0].Path)
}

func TestGetBalanceFromBank_MissingArguments(t *testing.T) {
	tests := []struct {
		userID, bankID string
		field          string
	}{
		{"", "b1", "user ID"},
		{"u1", "", "bank ID"},
		{"", "", "user ID"},
	}

	for _, tt := range tests {
		f := newFakeAPI(t)

		_, err := f.client().GetBalanceFromBank(context.Background(), tt.userID, tt.bankID)

		var vErr *api.ValidationError
		require.True(t, errors.As(err, &vErr))
		assert.Equal(t, tt.field, vErr.Field)
		assert.Empty(t, f.requests())
	}
}

func TestBody_IDTruthiness(t *testing.T) {
	tests := []struct {
		name string
		body api.Body
		want bool
	}{
		{"string id", api.Body{"id": "x"}, true},
		{"numeric id", api.Body{"id": json.Number("7")}, true},
		{"zero id", api.Body{"id": json.Number("0")}, false},
		{"empty id", api.Body{"id": ""}, false},
		{"null id", api.Body{"id": nil}, false},
		{"false id", api.Body{"id": false}, false},
		{"no id", api.Body{"balance": json.Number("3")}, false},
		{"nil body", nil, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, ok := tt.body.ID()
			assert.Equal(t, tt.want, ok)
		})
	}
}
