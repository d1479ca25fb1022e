package statichost

import (
	"property-reflector/descriptor"
)

// Host is an in-memory descriptor.Provider. All types built through one
// Host share its object top type and its interned array types.
type Host struct {
	object *Type
	arrays map[any]*Type
}

// New creates an empty host with its own object top type.
func New() *Host {
	h := &Host{arrays: make(map[any]*Type)}
	h.object = &Type{host: h, name: "object", kind: descriptor.KindObject}

	return h
}

// NewType starts a new type. Members and hierarchy links are added with
// the Type builder methods.
func (h *Host) NewType(name string, kind descriptor.Kind) *Type {
	return &Type{host: h, name: name, kind: kind}
}

// ObjectType implements descriptor.Provider.
func (h *Host) ObjectType() descriptor.TypeDescriptor {
	return h.object
}

// ArrayOf implements descriptor.Provider. Array types are interned per
// element type so repeated calls yield the same identity.
func (h *Host) ArrayOf(elem descriptor.TypeDescriptor) descriptor.TypeDescriptor {
	key := descriptor.Identity(elem)
	if arr, ok := h.arrays[key]; ok {
		return arr
	}

	arr := &Type{host: h, name: elem.Name() + "[]", kind: descriptor.KindArray, elem: elem}
	h.arrays[key] = arr

	return arr
}

// DeclaredMethods implements descriptor.Provider.
func (h *Host) DeclaredMethods(t descriptor.TypeDescriptor) []descriptor.Method {
	st, ok := t.(*Type)
	if !ok {
		return nil
	}

	methods := make([]descriptor.Method, len(st.methods))
	for i, m := range st.methods {
		methods[i] = m
	}

	return methods
}

// DeclaredFields implements descriptor.Provider.
func (h *Host) DeclaredFields(t descriptor.TypeDescriptor) []descriptor.Field {
	st, ok := t.(*Type)
	if !ok {
		return nil
	}

	fields := make([]descriptor.Field, len(st.fields))
	for i, f := range st.fields {
		fields[i] = f
	}

	return fields
}

// DeclaredConstructors implements descriptor.Provider.
func (h *Host) DeclaredConstructors(t descriptor.TypeDescriptor) []descriptor.Constructor {
	st, ok := t.(*Type)
	if !ok {
		return nil
	}

	ctors := make([]descriptor.Constructor, len(st.ctors))
	for i, c := range st.ctors {
		ctors[i] = c
	}

	return ctors
}
