package api_test

import (
	"context"
	"errors"
	"net/http"
	"testing"

	"github.com/chinmay1088/ddollars/api"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetBank(t *testing.T) {
	f := newFakeAPI(t)
	f.on(http.MethodGet, "/bank/b1", http.StatusOK, `{"id":"b1","name":"Central","members":[1,2]}`)

	body, err := f.client().GetBank(context.Background(), "b1")
	require.NoError(t, err)

	assert.Equal(t, "Central", body["name"])
	id, ok := body.ID()
	assert.True(t, ok)
	assert.Equal(t, "b1", id)
}

func TestGetBank_MissingID(t *testing.T) {
	f := newFakeAPI(t)

	_, err := f.client().GetBank(context.Background(), "")

	var vErr *api.ValidationError
	require.True(t, errors.As(err, &vErr))
	assert.Equal(t, "bank ID", vErr.Field)
	assert.ErrorIs(t, err, api.ErrMissingField)
	assert.Empty(t, f.requests())
}
