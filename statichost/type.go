package statichost

import (
	"property-reflector/descriptor"
)

// Type is a hand-assembled type descriptor. The builder methods mutate the
// type in place and return it for chaining; a Type must be fully assembled
// before tables are built over it.
type Type struct {
	host       *Host
	name       string
	kind       descriptor.Kind
	parent     *Type
	interfaces []*Type
	elem       descriptor.TypeDescriptor
	bindings   map[string]descriptor.TypeDescriptor
	methods    []*method
	fields     []*field
	ctors      []*constructor
}

// Extends sets the direct supertype.
func (t *Type) Extends(parent *Type) *Type {
	t.parent = parent

	return t
}

// Implements adds directly implemented interfaces.
func (t *Type) Implements(ifaces ...*Type) *Type {
	t.interfaces = append(t.interfaces, ifaces...)

	return t
}

// Bind records a generic type-argument binding, answering type-variable
// substitution for members inherited from generic supertypes.
func (t *Type) Bind(varName string, arg descriptor.TypeDescriptor) *Type {
	if t.bindings == nil {
		t.bindings = make(map[string]descriptor.TypeDescriptor)
	}

	t.bindings[varName] = arg

	return t
}

// AddMethod declares a method on the type.
func (t *Type) AddMethod(def MethodDef) *Type {
	t.methods = append(t.methods, &method{def: def, declaring: t})

	return t
}

// AddField declares a field on the type.
func (t *Type) AddField(def FieldDef) *Type {
	t.fields = append(t.fields, &field{def: def, declaring: t})

	return t
}

// AddConstructor declares a constructor on the type.
func (t *Type) AddConstructor(def ConstructorDef) *Type {
	t.ctors = append(t.ctors, &constructor{def: def, declaring: t})

	return t
}

// Name implements descriptor.TypeDescriptor.
func (t *Type) Name() string { return t.name }

// Kind implements descriptor.TypeDescriptor.
func (t *Type) Kind() descriptor.Kind { return t.kind }

// Superclass implements descriptor.TypeDescriptor.
func (t *Type) Superclass() descriptor.TypeDescriptor {
	if t.parent == nil {
		return nil
	}

	return t.parent
}

// Interfaces implements descriptor.TypeDescriptor.
func (t *Type) Interfaces() []descriptor.TypeDescriptor {
	if len(t.interfaces) == 0 {
		return nil
	}

	ifaces := make([]descriptor.TypeDescriptor, len(t.interfaces))
	for i, iface := range t.interfaces {
		ifaces[i] = iface
	}

	return ifaces
}

// AssignableFrom implements descriptor.TypeDescriptor: true when other is
// the same type or reaches t through its supertype/interface hierarchy.
// The object top type is assignable from every type of the same host.
func (t *Type) AssignableFrom(other descriptor.TypeDescriptor) bool {
	o, ok := other.(*Type)
	if !ok {
		return false
	}

	if o == t || (t == t.host.object && o.host == t.host) {
		return true
	}

	if o.parent != nil && t.AssignableFrom(o.parent) {
		return true
	}

	for _, iface := range o.interfaces {
		if t.AssignableFrom(iface) {
			return true
		}
	}

	return false
}

// Identity implements descriptor.TypeDescriptor; static types are
// identified by pointer.
func (t *Type) Identity() any { return t }

func (t *Type) String() string { return t.name }

// TypeArgumentFor implements descriptor.Bindings.
func (t *Type) TypeArgumentFor(name string) (descriptor.TypeDescriptor, bool) {
	arg, ok := t.bindings[name]

	return arg, ok
}
