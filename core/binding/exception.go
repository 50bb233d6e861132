package binding

import (
	"errors"
	"fmt"
	"reflect"

	"github.com/dmitrymomot/rpckit/core/logger"
	"github.com/dmitrymomot/rpckit/core/rpcerror"
)

// ErrorMatcher decides whether a translator applies to a failure.
// Key identifies the matcher for replacement; it must be comparable.
type ErrorMatcher interface {
	Key() any
	Match(err error) bool
}

// Translator converts a failure into a protocol error.
type Translator interface {
	Translate(err error) rpcerror.Error
}

// TranslatorFunc adapts a function to Translator.
type TranslatorFunc func(err error) rpcerror.Error

// Translate calls f(err).
func (f TranslatorFunc) Translate(err error) rpcerror.Error {
	return f(err)
}

type exceptionEntry struct {
	matcher    ErrorMatcher
	translator Translator
}

// typeMatcher matches any error in the chain assignable to E.
type typeMatcher[E error] struct{}

func (typeMatcher[E]) Key() any { return reflect.TypeFor[E]() }

func (typeMatcher[E]) Match(err error) bool {
	var target E
	return errors.As(err, &target)
}

// TypeOf matches failures for which errors.As finds an E in the chain.
// E may be an interface type, in which case every error implementing it matches:
// registering a broad interface before a concrete type makes the broad
// translator win for both.
func TypeOf[E error]() ErrorMatcher {
	return typeMatcher[E]{}
}

// sentinelMatcher matches errors.Is(err, target).
type sentinelMatcher struct {
	target error
}

func (m sentinelMatcher) Key() any { return m.target }

func (m sentinelMatcher) Match(err error) bool {
	return errors.Is(err, m.target)
}

// Is matches failures wrapping the sentinel target.
func Is(target error) ErrorMatcher {
	return sentinelMatcher{target: target}
}

// RegisterExceptionResolver adds a translator for failures accepted by m.
// A matcher with the same key is overwritten in place and keeps its position;
// a new key is appended. Resolve tries entries in registration order.
func (r *Registry) RegisterExceptionResolver(m ErrorMatcher, t Translator) {
	r.mu.Lock()
	replaced := r.putException(m, t)
	count := len(r.exceptions)
	r.mu.Unlock()

	r.logger.Debug("exception resolver registered",
		logger.Component("binding"),
		logger.Type(fmt.Sprint(m.Key())),
		logger.Key("replaced", replaced),
		logger.Count("exception_resolvers", count),
	)
}

// putException stores the entry; callers hold the write lock.
func (r *Registry) putException(m ErrorMatcher, t Translator) bool {
	key := m.Key()
	for i, entry := range r.exceptions {
		if sameKey(entry.matcher.Key(), key) {
			r.exceptions[i].translator = t
			return true
		}
	}
	r.exceptions = append(r.exceptions, exceptionEntry{matcher: m, translator: t})
	return false
}

// HandleError registers fn for failures assignable to E.
// fn receives the typed error extracted with errors.As.
//
// Example:
//
//	binding.HandleError(reg, func(err *binding.ModelNotFoundError) rpcerror.Error {
//	    return rpcerror.New(-32004, err.Model+" not found")
//	})
func HandleError[E error](r *Registry, fn func(E) rpcerror.Error) {
	r.RegisterExceptionResolver(TypeOf[E](), TranslatorFunc(func(err error) rpcerror.Error {
		var target E
		errors.As(err, &target)
		return fn(target)
	}))
}

// Resolve translates err with the first registered translator whose matcher
// accepts it. The second result is false when no translator matches; choosing
// a fallback protocol error is left to the caller.
func (r *Registry) Resolve(err error) (rpcerror.Error, bool) {
	if err == nil {
		return rpcerror.Error{}, false
	}

	translator, ok := r.translatorFor(err)
	if !ok {
		return rpcerror.Error{}, false
	}
	return translator.Translate(err), true
}

func (r *Registry) translatorFor(err error) (Translator, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, entry := range r.exceptions {
		if entry.matcher.Match(err) {
			return entry.translator, true
		}
	}
	return nil, false
}

// ExceptionResolverCount returns the number of registered exception resolvers.
func (r *Registry) ExceptionResolverCount() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.exceptions)
}

// sameKey compares matcher keys without panicking on non-comparable values.
func sameKey(a, b any) bool {
	ta, tb := reflect.TypeOf(a), reflect.TypeOf(b)
	if ta != tb || ta == nil || !ta.Comparable() {
		return false
	}
	return a == b
}
