package binding_test

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/rpckit/core/binding"
	"github.com/dmitrymomot/rpckit/core/rpcerror"
)

// notFoundError is the broad failure class; MissingUserError is a more specific member.
type notFoundError interface {
	error
	NotFound() bool
}

type MissingUserError struct {
	cause error
}

func (e *MissingUserError) Error() string  { return "user missing" }
func (e *MissingUserError) NotFound() bool { return true }
func (e *MissingUserError) Unwrap() error  { return e.cause }

type MissingPostError struct{}

func (e MissingPostError) Error() string  { return "post missing" }
func (e MissingPostError) NotFound() bool { return true }

var errQuotaExceeded = errors.New("quota exceeded")

func codeTranslator(code int) binding.Translator {
	return binding.TranslatorFunc(func(err error) rpcerror.Error {
		return rpcerror.New(code, err.Error())
	})
}

func TestResolve(t *testing.T) {
	t.Parallel()

	t.Run("unmapped without resolvers", func(t *testing.T) {
		t.Parallel()

		reg := newTestRegistry()
		rpcErr, ok := reg.Resolve(errors.New("boom"))
		assert.False(t, ok)
		assert.Equal(t, rpcerror.Error{}, rpcErr)
	})

	t.Run("nil error is unmapped", func(t *testing.T) {
		t.Parallel()

		reg := newTestRegistry()
		reg.RegisterExceptionResolver(binding.TypeOf[error](), codeTranslator(-32000))

		_, ok := reg.Resolve(nil)
		assert.False(t, ok)
	})

	t.Run("unmapped when nothing matches", func(t *testing.T) {
		t.Parallel()

		reg := newTestRegistry()
		reg.RegisterExceptionResolver(binding.TypeOf[*MissingUserError](), codeTranslator(-32001))

		_, ok := reg.Resolve(MissingPostError{})
		assert.False(t, ok)
	})

	t.Run("translates matching type", func(t *testing.T) {
		t.Parallel()

		reg := newTestRegistry()
		reg.RegisterExceptionResolver(binding.TypeOf[*MissingUserError](), codeTranslator(-32001))

		rpcErr, ok := reg.Resolve(&MissingUserError{})
		require.True(t, ok)
		assert.Equal(t, rpcerror.New(-32001, "user missing"), rpcErr)
	})

	t.Run("matches wrapped failures", func(t *testing.T) {
		t.Parallel()

		reg := newTestRegistry()
		reg.RegisterExceptionResolver(binding.TypeOf[*MissingUserError](), codeTranslator(-32001))

		rpcErr, ok := reg.Resolve(fmt.Errorf("show: %w", &MissingUserError{}))
		require.True(t, ok)
		assert.Equal(t, -32001, rpcErr.Code)
		assert.Equal(t, "show: user missing", rpcErr.Message)
	})

	t.Run("broad type registered first wins over specific type", func(t *testing.T) {
		t.Parallel()

		reg := newTestRegistry()
		reg.RegisterExceptionResolver(binding.TypeOf[notFoundError](), codeTranslator(-32010))
		reg.RegisterExceptionResolver(binding.TypeOf[*MissingUserError](), codeTranslator(-32011))

		rpcErr, ok := reg.Resolve(&MissingUserError{})
		require.True(t, ok)
		assert.Equal(t, -32010, rpcErr.Code)
	})

	t.Run("specific type registered first takes precedence", func(t *testing.T) {
		t.Parallel()

		reg := newTestRegistry()
		reg.RegisterExceptionResolver(binding.TypeOf[*MissingUserError](), codeTranslator(-32011))
		reg.RegisterExceptionResolver(binding.TypeOf[notFoundError](), codeTranslator(-32010))

		rpcErr, ok := reg.Resolve(&MissingUserError{})
		require.True(t, ok)
		assert.Equal(t, -32011, rpcErr.Code)

		rpcErr, ok = reg.Resolve(MissingPostError{})
		require.True(t, ok)
		assert.Equal(t, -32010, rpcErr.Code)
	})

	t.Run("sentinel matcher", func(t *testing.T) {
		t.Parallel()

		reg := newTestRegistry()
		reg.RegisterExceptionResolver(binding.Is(errQuotaExceeded), binding.TranslatorFunc(func(err error) rpcerror.Error {
			return rpcerror.ErrServer.WithMessage("quota exceeded").WithError(err)
		}))

		rpcErr, ok := reg.Resolve(fmt.Errorf("upload: %w", errQuotaExceeded))
		require.True(t, ok)
		assert.Equal(t, rpcerror.CodeServerErrorMax, rpcErr.Code)
		assert.Equal(t, map[string]any{"cause": "upload: quota exceeded"}, rpcErr.Data)

		_, ok = reg.Resolve(errors.New("quota exceeded"))
		assert.False(t, ok)
	})

	t.Run("re-registration overwrites in place", func(t *testing.T) {
		t.Parallel()

		reg := newTestRegistry()
		reg.RegisterExceptionResolver(binding.TypeOf[notFoundError](), codeTranslator(-32001))
		reg.RegisterExceptionResolver(binding.Is(errQuotaExceeded), codeTranslator(-32002))
		reg.RegisterExceptionResolver(binding.TypeOf[notFoundError](), codeTranslator(-32003))

		assert.Equal(t, 2, reg.ExceptionResolverCount())

		// Matches both entries; the overwritten one kept first position.
		rpcErr, ok := reg.Resolve(&MissingUserError{cause: errQuotaExceeded})
		require.True(t, ok)
		assert.Equal(t, -32003, rpcErr.Code)
	})

	t.Run("WithExceptionResolver preserves option order", func(t *testing.T) {
		t.Parallel()

		reg := newTestRegistry(
			binding.WithExceptionResolver(binding.Is(errQuotaExceeded), codeTranslator(-32002)),
			binding.WithExceptionResolver(binding.TypeOf[notFoundError](), codeTranslator(-32001)),
		)

		rpcErr, ok := reg.Resolve(&MissingUserError{cause: errQuotaExceeded})
		require.True(t, ok)
		assert.Equal(t, -32002, rpcErr.Code)
	})
}

func TestHandleError(t *testing.T) {
	t.Parallel()

	reg := newTestRegistry()
	binding.HandleError(reg, func(err *binding.ModelNotFoundError) rpcerror.Error {
		return rpcerror.New(-32004, err.Model+" not found").WithData(map[string]any{"id": err.ID})
	})

	rpcErr, ok := reg.Resolve(fmt.Errorf("bind id: %w", &binding.ModelNotFoundError{Model: "User", ID: 9999}))
	require.True(t, ok)
	assert.Equal(t, -32004, rpcErr.Code)
	assert.Equal(t, "User not found", rpcErr.Message)
	assert.Equal(t, map[string]any{"id": 9999}, rpcErr.Data)

	_, ok = reg.Resolve(binding.ErrModelNotFound)
	assert.False(t, ok)
}
