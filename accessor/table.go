package accessor

import (
	"sort"
	"strings"

	"property-reflector/descriptor"
	"property-reflector/invoker"
)

// Table is the immutable accessor table of one type: every readable and
// writable property with its accessor and concrete type, an ordered view
// of the property names and a case-insensitive name index. Tables are
// built exactly once and never mutated, so they are safe for concurrent
// use without locking.
type Table struct {
	typ descriptor.TypeDescriptor

	getters     map[string]invoker.Accessor
	getterTypes map[string]descriptor.TypeDescriptor
	setters     map[string]invoker.Accessor
	setterTypes map[string]descriptor.TypeDescriptor

	readable []string
	writable []string

	caseInsensitive map[string]string

	defaultCtor    descriptor.Constructor
	maxSuggestions int
}

// assemble freezes the builder state into a Table. Name slices are sorted
// for reproducible output; the case-insensitive index covers readable then
// writable names, so on uppercase collisions the later insertion wins.
func (b *builder) assemble() *Table {
	t := &Table{
		typ:             b.typ,
		getters:         b.getters,
		getterTypes:     b.getterTypes,
		setters:         b.setters,
		setterTypes:     b.setterTypes,
		readable:        sortedKeys(b.getters),
		writable:        sortedKeys(b.setters),
		caseInsensitive: make(map[string]string),
		defaultCtor:     b.defaultCtor,
		maxSuggestions:  b.cfg.MaxSuggestions,
	}

	for _, prop := range t.readable {
		t.caseInsensitive[strings.ToUpper(prop)] = prop
	}

	for _, prop := range t.writable {
		t.caseInsensitive[strings.ToUpper(prop)] = prop
	}

	return t
}

// TypeDescriptor returns the type this table was built for.
func (t *Table) TypeDescriptor() descriptor.TypeDescriptor {
	return t.typ
}

// Getter returns the get accessor for the named property.
func (t *Table) Getter(name string) (invoker.Accessor, error) {
	if a, ok := t.getters[name]; ok {
		return a, nil
	}

	return nil, t.missing("getter", name, t.readable)
}

// Setter returns the set accessor for the named property.
func (t *Table) Setter(name string) (invoker.Accessor, error) {
	if a, ok := t.setters[name]; ok {
		return a, nil
	}

	return nil, t.missing("setter", name, t.writable)
}

// GetterType returns the concrete value type produced by the named
// property's getter.
func (t *Table) GetterType(name string) (descriptor.TypeDescriptor, error) {
	if typ, ok := t.getterTypes[name]; ok {
		return typ, nil
	}

	return nil, t.missing("getter", name, t.readable)
}

// SetterType returns the concrete value type accepted by the named
// property's setter.
func (t *Table) SetterType(name string) (descriptor.TypeDescriptor, error) {
	if typ, ok := t.setterTypes[name]; ok {
		return typ, nil
	}

	return nil, t.missing("setter", name, t.writable)
}

// HasGetter reports whether the named property is readable.
func (t *Table) HasGetter(name string) bool {
	_, ok := t.getters[name]

	return ok
}

// HasSetter reports whether the named property is writable.
func (t *Table) HasSetter(name string) bool {
	_, ok := t.setters[name]

	return ok
}

// ReadableNames returns the readable property names in sorted order.
// The caller must not modify the returned slice.
func (t *Table) ReadableNames() []string {
	return t.readable
}

// WritableNames returns the writable property names in sorted order.
// The caller must not modify the returned slice.
func (t *Table) WritableNames() []string {
	return t.writable
}

// FindName looks up the canonical property name for any letter case of
// name.
func (t *Table) FindName(name string) (string, bool) {
	canonical, ok := t.caseInsensitive[strings.ToUpper(name)]

	return canonical, ok
}

// DefaultConstructor returns the zero-argument constructor of the type.
func (t *Table) DefaultConstructor() (descriptor.Constructor, error) {
	if t.defaultCtor == nil {
		return nil, &MissingConstructorError{Type: t.typ.String()}
	}

	return t.defaultCtor, nil
}

// HasDefaultConstructor reports whether the type declares a zero-argument
// constructor.
func (t *Table) HasDefaultConstructor() bool {
	return t.defaultCtor != nil
}

func (t *Table) missing(kind, name string, known []string) *MissingAccessorError {
	return &MissingAccessorError{
		Accessor:    kind,
		Property:    name,
		Type:        t.typ.String(),
		Suggestions: suggest(name, known, t.maxSuggestions),
	}
}

func sortedKeys[V any](m map[string]V) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}

	sort.Strings(keys)

	return keys
}
