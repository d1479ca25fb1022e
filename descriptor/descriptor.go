package descriptor

import "errors"

// ErrNotInvocable is returned by member records of hosts that can describe
// members but cannot execute them (e.g. source-level analysis).
var ErrNotInvocable = errors.New("member is not invocable on this host")

// TypeDescriptor is an opaque handle to a type in the host's introspection
// system.
//
// Descriptors for the same host type must report equal Identity() values;
// the resolver uses Identity() both for exact type comparison and as the
// cache key in the accessor registry.
type TypeDescriptor interface {
	// Name returns the short type name (e.g. "Order", "string", "Order[]").
	Name() string

	// Kind returns the coarse classification of the type.
	Kind() Kind

	// Superclass returns the direct supertype, or nil when the type has none.
	Superclass() TypeDescriptor

	// Interfaces returns the directly implemented interface types.
	Interfaces() []TypeDescriptor

	// AssignableFrom reports whether a value of type other can be assigned
	// to this type; it is reflexive.
	AssignableFrom(other TypeDescriptor) bool

	// Identity returns a comparable value identifying the type.
	Identity() any

	// String returns a fully qualified human-readable representation.
	String() string
}

// Bindings is an optional TypeDescriptor extension for types that
// instantiate generic supertypes. It answers type-variable substitution
// queries during type resolution.
type Bindings interface {
	// TypeArgumentFor returns the concrete type bound to the named type
	// variable, if this type carries such a binding.
	TypeArgumentFor(name string) (TypeDescriptor, bool)
}

// Provider enumerates the declared members of a type.
//
// "Declared" means members introduced at that exact type, not inherited
// ones, wherever the host can tell the difference. Hosts with flattened
// member sets (runtime reflection) may return the full set; the enumerator
// deduplicates by signature.
type Provider interface {
	DeclaredMethods(t TypeDescriptor) []Method
	DeclaredFields(t TypeDescriptor) []Field
	DeclaredConstructors(t TypeDescriptor) []Constructor

	// ObjectType returns the universal top type. The hierarchy walk stops
	// when it reaches this type, and unresolvable type expressions erase
	// to it.
	ObjectType() TypeDescriptor

	// ArrayOf returns the array type with the given element type.
	// Repeated calls with the same element must return descriptors with
	// equal identities.
	ArrayOf(elem TypeDescriptor) TypeDescriptor
}

// Identity returns t.Identity(), tolerating nil descriptors.
func Identity(t TypeDescriptor) any {
	if t == nil {
		return nil
	}

	return t.Identity()
}

// Same reports whether two descriptors denote the identical type.
func Same(a, b TypeDescriptor) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}

	return a.Identity() == b.Identity()
}
