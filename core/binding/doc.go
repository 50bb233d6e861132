// Package binding resolves JSON-RPC handler arguments and maps handler
// failures to protocol errors.
//
// A transport layer that has already decoded a request and chosen the target
// procedure (an owner@method identifier) calls into a single Registry twice:
// once to compute the arguments for the handler and, if the handler fails,
// once to translate the failure into an rpcerror.Error.
//
// # Signatures
//
// The registry learns which parameters a procedure declares from a
// SignatureProvider. Signatures is a ready-made static table that can be
// filled by hand, from a params struct, or by reflecting over a handler:
//
//	type ShowParams struct {
//		ID      int64 `json:"id"`
//		Include string `json:"include,omitempty"`
//	}
//
//	type UserController struct{}
//
//	func (UserController) Show(ctx context.Context, p ShowParams) (*User, error)
//
//	sigs := binding.NewSignatures()
//	sigs.RegisterOwner("UserController", UserController{})
//	sigs.Register("Health@ping")
//
// CachedSignatures wraps any provider in an LRU cache.
//
// # Binders
//
// A binder converts the raw value supplied for one named parameter:
//
//	reg := binding.New(binding.WithSignatureProvider(sigs))
//
//	reg.RegisterBinder("id", binding.Int64())
//	reg.Bind("include", func(ctx context.Context, raw any) (any, error) {
//		if raw == nil {
//			return "profile", nil
//		}
//		return raw, nil
//	})
//
// Model binders look an entity up by the raw identifier:
//
//	binding.RegisterModelBinder(reg, "user", finder, nil)
//
// Finders for PostgreSQL, Redis and MongoDB live under integration/database.
// A finder reports a missing entity with an error wrapping ErrModelNotFound;
// the binder then calls the MissingHandler or returns *ModelNotFoundError.
//
// # Resolving Arguments
//
//	args, err := reg.ResolveBindings(ctx, "UserController@show", map[string]any{
//		"id": 42,
//	})
//
// For each declared parameter the raw value is params[name], or
// params[snake_case(name)] when the first is missing or nil, so userId also
// accepts user_id. Only those two spellings are tried. Parameters whose final
// value is empty (see IsEmpty) are left out of the map entirely, so the
// handler sees them as unset rather than explicitly null.
//
// Errors:
//
//   - Malformed identifiers and unknown owners or methods wrap ErrSignatureNotFound
//     and are returned before any parameter is examined.
//   - Binder errors are returned unchanged and discard the partial result.
//
// # Exception Resolvers
//
// Translators are tried in registration order and the first match wins:
//
//	binding.HandleError(reg, func(err *binding.ModelNotFoundError) rpcerror.Error {
//		return rpcerror.New(-32004, err.Model+" not found")
//	})
//	reg.RegisterExceptionResolver(binding.Is(ErrQuotaExceeded),
//		binding.TranslatorFunc(func(err error) rpcerror.Error {
//			return rpcerror.ErrServer.WithMessage("quota exceeded")
//		}))
//
//	if rpcErr, ok := reg.Resolve(err); ok {
//		// reply with rpcErr
//	} else {
//		// reply with rpcerror.ErrInternal
//	}
//
// Matching is polymorphic: TypeOf with an interface type matches every error
// implementing it. Because the first registered match wins, register narrow
// types before broad ones when the narrow translator should take precedence.
//
// # Concurrency
//
// All registry methods are safe for concurrent use. Registration is expected
// to happen at startup; later registrations are visible to subsequent calls.
package binding
