package binding

import (
	"context"
	"fmt"
	"reflect"
	"slices"
	"strings"
	"sync"
	"unicode"
	"unicode/utf8"
)

// SignatureProvider returns the ordered parameter names a procedure declares.
// Lookup failures must wrap ErrSignatureNotFound.
type SignatureProvider interface {
	ParametersOf(p Procedure) ([]string, error)
}

// SignatureProviderFunc adapts a function to SignatureProvider.
type SignatureProviderFunc func(p Procedure) ([]string, error)

// ParametersOf calls f(p).
func (f SignatureProviderFunc) ParametersOf(p Procedure) ([]string, error) {
	return f(p)
}

var contextType = reflect.TypeFor[context.Context]()

// Signatures is a static table of handler signatures.
// It is safe for concurrent use; registrations are last-write-wins.
type Signatures struct {
	mu      sync.RWMutex
	entries map[string][]string
	owners  map[string]int
}

// NewSignatures creates an empty signature table.
func NewSignatures() *Signatures {
	return &Signatures{
		entries: make(map[string][]string),
		owners:  make(map[string]int),
	}
}

// Register stores the ordered parameter names for procedure (owner@method).
//
// Example:
//
//	sigs := binding.NewSignatures()
//	sigs.Register("UserController@show", "id")
func (s *Signatures) Register(procedure string, params ...string) {
	owner, _, _ := strings.Cut(procedure, ProcedureSeparator)

	s.mu.Lock()
	defer s.mu.Unlock()

	if _, exists := s.entries[procedure]; !exists {
		s.owners[owner]++
	}
	s.entries[procedure] = slices.Clone(params)
}

// RegisterParams derives the parameter names of procedure from the fields of
// a params struct. Field names follow the json tag; untagged fields use the
// lower-camel field name and "-" skips the field.
// Panics if v is not a struct or pointer to struct.
//
// Example:
//
//	type ShowParams struct {
//		ID      int64 `json:"id"`
//		WithTax bool  // "withTax"
//	}
//
//	sigs.RegisterParams("OrderController@show", ShowParams{})
func (s *Signatures) RegisterParams(procedure string, v any) {
	t := reflect.TypeOf(v)
	names, ok := paramNames(t)
	if !ok {
		panic(fmt.Sprintf("binding: params for %s must be a struct, got %v", procedure, t))
	}
	s.Register(procedure, names...)
}

// RegisterOwner discovers handler methods on v and registers each one as
// owner@Method and owner@method (lower-camel alias).
//
// A method is discovered when its arguments are an optional context.Context
// followed by at most one params struct (or pointer to struct). The struct
// fields become the declared parameters. Methods with any other argument
// shape are ignored because their parameter names are not recoverable.
//
// Example:
//
//	type UserController struct{ users UserStore }
//
//	func (c *UserController) Show(ctx context.Context, p ShowParams) (*User, error)
//
//	sigs.RegisterOwner("UserController", &UserController{})
//	// "UserController@show" -> ["id"]
func (s *Signatures) RegisterOwner(owner string, v any) {
	t := reflect.TypeOf(v)
	if t == nil {
		return
	}

	for i := range t.NumMethod() {
		m := t.Method(i)
		names, ok := methodParams(m.Type)
		if !ok {
			continue
		}
		s.Register(owner+ProcedureSeparator+m.Name, names...)
		if alias := lowerFirst(m.Name); alias != m.Name {
			s.Register(owner+ProcedureSeparator+alias, names...)
		}
	}
}

// ParametersOf returns a copy of the registered parameter names for p.
func (s *Signatures) ParametersOf(p Procedure) ([]string, error) {
	s.mu.RLock()
	params, ok := s.entries[p.String()]
	_, ownerKnown := s.owners[p.Owner]
	s.mu.RUnlock()

	if ok {
		return slices.Clone(params), nil
	}
	if ownerKnown {
		return nil, fmt.Errorf("%w: %w: %s", ErrSignatureNotFound, ErrMethodNotFound, p)
	}
	return nil, fmt.Errorf("%w: %w: %s", ErrSignatureNotFound, ErrOwnerNotFound, p.Owner)
}

// methodParams extracts parameter names from a method type obtained via
// reflect.Type.Method, where In(0) is the receiver.
func methodParams(mt reflect.Type) ([]string, bool) {
	args := make([]reflect.Type, 0, mt.NumIn())
	for i := 1; i < mt.NumIn(); i++ {
		args = append(args, mt.In(i))
	}
	if mt.IsVariadic() {
		return nil, false
	}
	if len(args) > 0 && args[0] == contextType {
		args = args[1:]
	}

	switch len(args) {
	case 0:
		return []string{}, true
	case 1:
		return paramNames(args[0])
	default:
		return nil, false
	}
}

// paramField is a candidate parameter found while walking a params struct.
type paramField struct {
	name   string
	index  []int
	tagged bool
}

// paramNames lists json-style field names of a struct type. Embedded structs
// are flattened breadth first with the encoding/json conflict rules: the
// shallowest field wins, a tagged field beats untagged ones at the same depth,
// and remaining ties drop the name. Each type is walked once, so
// self-referential embeds terminate.
func paramNames(t reflect.Type) ([]string, bool) {
	t = derefType(t)
	if t == nil || t.Kind() != reflect.Struct {
		return nil, false
	}

	type level struct {
		typ   reflect.Type
		index []int
	}

	var fields []paramField
	visited := map[reflect.Type]bool{}
	next := []level{{typ: t}}
	for len(next) > 0 {
		current := next
		next = nil

		for _, lv := range current {
			if visited[lv.typ] {
				continue
			}
			visited[lv.typ] = true

			for i := range lv.typ.NumField() {
				field := lv.typ.Field(i)
				ft := derefType(field.Type)

				if field.Anonymous {
					// Unexported embedded non-struct types carry no fields.
					if !field.IsExported() && ft.Kind() != reflect.Struct {
						continue
					}
				} else if !field.IsExported() {
					continue
				}

				name, skip := parseFieldTag(field)
				if skip {
					continue
				}
				tagged := jsonTagName(field) != ""
				index := append(slices.Clone(lv.index), i)

				if field.Anonymous && !tagged && ft.Kind() == reflect.Struct {
					next = append(next, level{typ: ft, index: index})
					continue
				}
				if !field.IsExported() {
					continue
				}
				fields = append(fields, paramField{name: name, index: index, tagged: tagged})
			}
		}
	}

	byName := make(map[string][]paramField, len(fields))
	for _, f := range fields {
		byName[f.name] = append(byName[f.name], f)
	}

	kept := make([]paramField, 0, len(byName))
	for _, group := range byName {
		if f, ok := dominantField(group); ok {
			kept = append(kept, f)
		}
	}
	slices.SortFunc(kept, func(a, b paramField) int {
		return slices.Compare(a.index, b.index)
	})

	names := make([]string, 0, len(kept))
	for _, f := range kept {
		names = append(names, f.name)
	}
	return names, true
}

// dominantField picks the field that owns a name. group is in walk order,
// so the shallowest candidates come first.
func dominantField(group []paramField) (paramField, bool) {
	depth := len(group[0].index)
	var winner paramField
	candidates, taggedCount := 0, 0
	for _, f := range group {
		if len(f.index) > depth {
			break
		}
		candidates++
		if f.tagged {
			taggedCount++
			winner = f
		}
	}

	switch {
	case candidates == 1:
		return group[0], true
	case taggedCount == 1:
		return winner, true
	default:
		return paramField{}, false
	}
}

func derefType(t reflect.Type) reflect.Type {
	for t != nil && t.Kind() == reflect.Pointer {
		t = t.Elem()
	}
	return t
}

func jsonTagName(field reflect.StructField) string {
	name, _, _ := strings.Cut(field.Tag.Get("json"), ",")
	return name
}

// parseFieldTag extracts the parameter name from the json tag.
// If no tag name is present, it defaults to the lower-camel field name.
func parseFieldTag(field reflect.StructField) (name string, skip bool) {
	tag := field.Tag.Get("json")
	if tag == "-" {
		return "", true
	}

	name = jsonTagName(field)
	if name == "" {
		name = lowerFirst(field.Name)
	}
	return name, false
}

func lowerFirst(s string) string {
	r, size := utf8.DecodeRuneInString(s)
	if r == utf8.RuneError || unicode.IsLower(r) {
		return s
	}
	return string(unicode.ToLower(r)) + s[size:]
}
