package rpcerror_test

import (
	"encoding/json"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/rpckit/core/rpcerror"
)

func TestError_ImplementsErrorInterface(t *testing.T) {
	t.Parallel()

	var err error = rpcerror.New(-32001, "user not found")
	assert.Equal(t, "rpc error -32001: user not found", err.Error())

	var rpcErr rpcerror.Error
	require.True(t, errors.As(err, &rpcErr))
	assert.Equal(t, -32001, rpcErr.Code)
}

func TestError_WithMessage(t *testing.T) {
	t.Parallel()

	modified := rpcerror.ErrInvalidParams.WithMessage("id is required")

	assert.Equal(t, "Invalid params", rpcerror.ErrInvalidParams.Message)
	assert.Equal(t, "id is required", modified.Message)
	assert.Equal(t, rpcerror.CodeInvalidParams, modified.Code)
}

func TestError_WithData(t *testing.T) {
	t.Parallel()

	modified := rpcerror.ErrInternal.WithData([]string{"a"})

	assert.Nil(t, rpcerror.ErrInternal.Data)
	assert.Equal(t, []string{"a"}, modified.Data)
}

func TestError_WithError(t *testing.T) {
	t.Parallel()

	t.Run("records cause", func(t *testing.T) {
		t.Parallel()

		modified := rpcerror.ErrInternal.WithError(errors.New("boom"))
		assert.Equal(t, map[string]any{"cause": "boom"}, modified.Data)
		assert.Nil(t, rpcerror.ErrInternal.Data)
	})

	t.Run("does not mutate shared data", func(t *testing.T) {
		t.Parallel()

		base := rpcerror.ErrServer.WithData(map[string]any{"field": "id"})
		modified := base.WithError(errors.New("boom"))

		assert.Equal(t, map[string]any{"field": "id"}, base.Data)
		assert.Equal(t, map[string]any{"field": "id", "cause": "boom"}, modified.Data)
	})

	t.Run("nil error is a no-op", func(t *testing.T) {
		t.Parallel()

		assert.Equal(t, rpcerror.ErrParse, rpcerror.ErrParse.WithError(nil))
	})
}

func TestError_JSON(t *testing.T) {
	t.Parallel()

	b, err := json.Marshal(rpcerror.ErrMethodNotFound)
	require.NoError(t, err)
	assert.JSONEq(t, `{"code":-32601,"message":"Method not found"}`, string(b))

	b, err = json.Marshal(rpcerror.ErrInvalidParams.WithData(map[string]any{"param": "id"}))
	require.NoError(t, err)
	assert.JSONEq(t, `{"code":-32602,"message":"Invalid params","data":{"param":"id"}}`, string(b))
}

func TestPredefinedErrors(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		err  rpcerror.Error
		code int
	}{
		{"parse", rpcerror.ErrParse, -32700},
		{"invalid_request", rpcerror.ErrInvalidRequest, -32600},
		{"method_not_found", rpcerror.ErrMethodNotFound, -32601},
		{"invalid_params", rpcerror.ErrInvalidParams, -32602},
		{"internal", rpcerror.ErrInternal, -32603},
		{"server", rpcerror.ErrServer, -32000},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.code, tt.err.Code)
			assert.NotEmpty(t, tt.err.Message)
		})
	}
}

func TestIsServerCode(t *testing.T) {
	t.Parallel()

	assert.True(t, rpcerror.IsServerCode(-32000))
	assert.True(t, rpcerror.IsServerCode(-32050))
	assert.True(t, rpcerror.IsServerCode(-32099))
	assert.False(t, rpcerror.IsServerCode(-32100))
	assert.False(t, rpcerror.IsServerCode(-31999))
	assert.False(t, rpcerror.IsServerCode(rpcerror.CodeInvalidParams))
}
