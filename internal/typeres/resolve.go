package typeres

import (
	"property-reflector/descriptor"
)

// Resolve reduces expr to the concrete type usable at runtime. The owner
// is the concrete type the member is being resolved against, which may
// differ from the declaring type for inherited generic members; its
// binding chain answers type-variable substitution.
func Resolve(p descriptor.Provider, expr descriptor.TypeExpr, owner descriptor.TypeDescriptor) descriptor.TypeDescriptor {
	switch e := expr.(type) {
	case descriptor.ConcreteExpr:
		if e.Type != nil {
			return e.Type
		}

	case descriptor.ParameterizedExpr:
		if e.Raw != nil {
			return e.Raw
		}

	case descriptor.ArrayExpr:
		return p.ArrayOf(Resolve(p, e.Elem, owner))

	case descriptor.VariableExpr:
		if bound, ok := lookupBinding(owner, e.Name); ok {
			return bound
		}
	}

	return p.ObjectType()
}

// lookupBinding walks the owner's supertype chain for a type-argument
// binding of the named variable.
func lookupBinding(owner descriptor.TypeDescriptor, name string) (descriptor.TypeDescriptor, bool) {
	for t := owner; t != nil; t = t.Superclass() {
		if b, ok := t.(descriptor.Bindings); ok {
			if arg, ok := b.TypeArgumentFor(name); ok {
				return arg, true
			}
		}
	}

	return nil, false
}
