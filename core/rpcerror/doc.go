// Package rpcerror defines the protocol-level error value returned to JSON-RPC callers.
//
// Error carries the three members of a JSON-RPC error object: a numeric code,
// a short message and optional data. Values are immutable in practice: the
// With* helpers return modified copies so the predefined errors can be shared.
//
//	import "github.com/dmitrymomot/rpckit/core/rpcerror"
//
//	func translate(err error) rpcerror.Error {
//		return rpcerror.ErrInvalidParams.
//			WithMessage("user not found").
//			WithError(err)
//	}
//
// # Predefined Errors
//
// The codes reserved by JSON-RPC 2.0 are available as ready-made values:
//
//   - ErrParse (-32700)
//   - ErrInvalidRequest (-32600)
//   - ErrMethodNotFound (-32601)
//   - ErrInvalidParams (-32602)
//   - ErrInternal (-32603)
//   - ErrServer (-32000)
//
// Codes between -32099 and -32000 are reserved for implementation-defined
// server errors; IsServerCode checks that range.
package rpcerror
