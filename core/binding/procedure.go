package binding

import (
	"fmt"
	"strings"
)

// ProcedureSeparator joins the owner and method parts of a procedure identifier.
const ProcedureSeparator = "@"

// Procedure identifies a handler method as owner@method.
type Procedure struct {
	Owner  string
	Method string
}

// ParseProcedure splits id on the first separator.
// Identifiers without a separator, or with an empty owner or method, are rejected
// with an error wrapping both ErrInvalidProcedure and ErrSignatureNotFound.
func ParseProcedure(id string) (Procedure, error) {
	owner, method, ok := strings.Cut(id, ProcedureSeparator)
	if !ok || owner == "" || method == "" {
		return Procedure{}, fmt.Errorf("%w: %w: %q", ErrSignatureNotFound, ErrInvalidProcedure, id)
	}
	return Procedure{Owner: owner, Method: method}, nil
}

// String returns the owner@method form.
func (p Procedure) String() string {
	return p.Owner + ProcedureSeparator + p.Method
}
