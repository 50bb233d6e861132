package binding_test

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/rpckit/core/binding"
)

type Pagination struct {
	Page    int `json:"page"`
	PerPage int `json:"per_page"`
}

type ListParams struct {
	Pagination
	Query    string `json:"q,omitempty"`
	Archived bool
	Internal string `json:"-"`
	secret   string
}

type OrderController struct{}

func (OrderController) List(ctx context.Context, p ListParams) error      { return nil }
func (OrderController) Ping() error                                       { return nil }
func (OrderController) Show(p *ShowParams) error                          { return nil }
func (OrderController) Raw(ctx context.Context, id int) error             { return nil }
func (OrderController) Multi(ctx context.Context, a, b ShowParams) error  { return nil }
func (OrderController) Variadic(ctx context.Context, ids ...string) error { return nil }

func TestSignatures_Register(t *testing.T) {
	t.Parallel()

	sigs := binding.NewSignatures()
	sigs.Register("Health@ping")
	sigs.Register("UserController@show", "id", "include")

	params, err := sigs.ParametersOf(binding.Procedure{Owner: "UserController", Method: "show"})
	require.NoError(t, err)
	assert.Equal(t, []string{"id", "include"}, params)

	params, err = sigs.ParametersOf(binding.Procedure{Owner: "Health", Method: "ping"})
	require.NoError(t, err)
	assert.Empty(t, params)

	t.Run("last write wins", func(t *testing.T) {
		sigs.Register("UserController@show", "uuid")

		params, err := sigs.ParametersOf(binding.Procedure{Owner: "UserController", Method: "show"})
		require.NoError(t, err)
		assert.Equal(t, []string{"uuid"}, params)
	})

	t.Run("returns a copy", func(t *testing.T) {
		p := binding.Procedure{Owner: "UserController", Method: "show"}
		params, err := sigs.ParametersOf(p)
		require.NoError(t, err)
		params[0] = "mutated"

		again, err := sigs.ParametersOf(p)
		require.NoError(t, err)
		assert.Equal(t, []string{"uuid"}, again)
	})

	t.Run("unknown owner and method", func(t *testing.T) {
		_, err := sigs.ParametersOf(binding.Procedure{Owner: "Nope", Method: "show"})
		require.ErrorIs(t, err, binding.ErrSignatureNotFound)
		assert.ErrorIs(t, err, binding.ErrOwnerNotFound)

		_, err = sigs.ParametersOf(binding.Procedure{Owner: "UserController", Method: "destroy"})
		require.ErrorIs(t, err, binding.ErrSignatureNotFound)
		assert.ErrorIs(t, err, binding.ErrMethodNotFound)
	})
}

func TestSignatures_RegisterParams(t *testing.T) {
	t.Parallel()

	sigs := binding.NewSignatures()
	sigs.RegisterParams("OrderController@list", &ListParams{})

	params, err := sigs.ParametersOf(binding.Procedure{Owner: "OrderController", Method: "list"})
	require.NoError(t, err)
	assert.Equal(t, []string{"page", "per_page", "q", "archived"}, params)

	assert.Panics(t, func() {
		sigs.RegisterParams("OrderController@bad", 42)
	})
}

type auditFields struct {
	ID        int64  `json:"id"`
	CreatedBy string `json:"createdBy"`
}

type EditParams struct {
	auditFields
	ID   int64 `json:"id"`
	Name string
}

type TreeNode struct {
	*TreeNode
	Label string `json:"label"`
}

type leftOwner struct {
	Owner string `json:"owner"`
}

type rightOwner struct {
	Owner string `json:"owner"`
}

type AmbiguousParams struct {
	leftOwner
	rightOwner
	Note string `json:"note"`
}

type NestedParams struct {
	leftOwner
	Inner struct {
		Owner string
	}
	Extra struct{} `json:"-"`
}

func TestSignatures_RegisterParams_EmbeddedConflicts(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		params any
		want   []string
	}{
		{
			name:   "outer field hides embedded field",
			params: EditParams{},
			want:   []string{"createdBy", "id", "name"},
		},
		{
			name:   "self referential embed",
			params: TreeNode{},
			want:   []string{"label"},
		},
		{
			name:   "equal depth tie drops the name",
			params: AmbiguousParams{},
			want:   []string{"note"},
		},
		{
			name:   "named struct fields are not flattened",
			params: NestedParams{},
			want:   []string{"owner", "inner"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			sigs := binding.NewSignatures()
			sigs.RegisterParams("Params@show", tt.params)

			params, err := sigs.ParametersOf(binding.Procedure{Owner: "Params", Method: "show"})
			require.NoError(t, err)
			assert.Equal(t, tt.want, params)
		})
	}
}

func TestResolveBindings_ShadowedFieldBindsOnce(t *testing.T) {
	t.Parallel()

	sigs := binding.NewSignatures()
	sigs.RegisterParams("EditController@update", EditParams{})

	var calls atomic.Int32
	reg := binding.New(
		binding.WithSignatureProvider(sigs),
		binding.WithLogger(discardLogger()),
	)
	reg.Bind("id", func(_ context.Context, raw any) (any, error) {
		calls.Add(1)
		return raw, nil
	})

	args, err := reg.ResolveBindings(context.Background(), "EditController@update", map[string]any{"id": 7})
	require.NoError(t, err)
	assert.Equal(t, map[string]any{"id": 7}, args)
	assert.Equal(t, int32(1), calls.Load())
}

func TestSignatures_RegisterOwner(t *testing.T) {
	t.Parallel()

	sigs := binding.NewSignatures()
	sigs.RegisterOwner("OrderController", OrderController{})

	tests := []struct {
		method string
		want   []string
	}{
		{"list", []string{"page", "per_page", "q", "archived"}},
		{"List", []string{"page", "per_page", "q", "archived"}},
		{"ping", []string{}},
		{"show", []string{"id"}},
	}

	for _, tt := range tests {
		t.Run(tt.method, func(t *testing.T) {
			params, err := sigs.ParametersOf(binding.Procedure{Owner: "OrderController", Method: tt.method})
			require.NoError(t, err)
			assert.Equal(t, tt.want, params)
		})
	}

	for _, method := range []string{"raw", "multi", "variadic"} {
		t.Run("skips "+method, func(t *testing.T) {
			_, err := sigs.ParametersOf(binding.Procedure{Owner: "OrderController", Method: method})
			assert.ErrorIs(t, err, binding.ErrMethodNotFound)
		})
	}

	t.Run("nil owner value is ignored", func(t *testing.T) {
		assert.NotPanics(t, func() {
			sigs.RegisterOwner("Nil", nil)
		})
	})
}

type countingProvider struct {
	calls atomic.Int32
	err   error
}

func (p *countingProvider) ParametersOf(proc binding.Procedure) ([]string, error) {
	p.calls.Add(1)
	if p.err != nil {
		return nil, p.err
	}
	return []string{"id", proc.Method}, nil
}

func TestCachedSignatures(t *testing.T) {
	t.Parallel()

	t.Run("memoizes successful lookups", func(t *testing.T) {
		t.Parallel()

		next := &countingProvider{}
		cached, err := binding.CachedSignatures(next, 8)
		require.NoError(t, err)

		p := binding.Procedure{Owner: "A", Method: "b"}
		for range 3 {
			params, err := cached.ParametersOf(p)
			require.NoError(t, err)
			assert.Equal(t, []string{"id", "b"}, params)
		}
		assert.Equal(t, int32(1), next.calls.Load())

		params, err := cached.ParametersOf(p)
		require.NoError(t, err)
		params[0] = "mutated"

		params, err = cached.ParametersOf(p)
		require.NoError(t, err)
		assert.Equal(t, []string{"id", "b"}, params)
	})

	t.Run("does not cache failures", func(t *testing.T) {
		t.Parallel()

		next := &countingProvider{err: binding.ErrSignatureNotFound}
		cached, err := binding.CachedSignatures(next, 8)
		require.NoError(t, err)

		p := binding.Procedure{Owner: "A", Method: "b"}
		for range 2 {
			_, err := cached.ParametersOf(p)
			assert.True(t, errors.Is(err, binding.ErrSignatureNotFound))
		}
		assert.Equal(t, int32(2), next.calls.Load())
	})

	t.Run("rejects invalid size", func(t *testing.T) {
		t.Parallel()

		_, err := binding.CachedSignatures(&countingProvider{}, 0)
		assert.ErrorIs(t, err, binding.ErrInvalidCacheSize)
	})
}

func TestParseProcedure(t *testing.T) {
	t.Parallel()

	tests := []struct {
		id      string
		want    binding.Procedure
		wantErr bool
	}{
		{"UserController@show", binding.Procedure{Owner: "UserController", Method: "show"}, false},
		{"App.Users@show@v2", binding.Procedure{Owner: "App.Users", Method: "show@v2"}, false},
		{"UserController", binding.Procedure{}, true},
		{"@show", binding.Procedure{}, true},
		{"UserController@", binding.Procedure{}, true},
		{"", binding.Procedure{}, true},
	}

	for _, tt := range tests {
		t.Run(tt.id, func(t *testing.T) {
			got, err := binding.ParseProcedure(tt.id)
			if tt.wantErr {
				require.ErrorIs(t, err, binding.ErrInvalidProcedure)
				assert.ErrorIs(t, err, binding.ErrSignatureNotFound)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
			assert.Equal(t, tt.id, got.String())
		})
	}
}
