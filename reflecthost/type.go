package reflecthost

import (
	"reflect"

	"property-reflector/descriptor"
)

type typeDesc struct {
	p  *Provider
	rt reflect.Type
}

func (t *typeDesc) Name() string {
	if name := t.rt.Name(); name != "" {
		return name
	}

	return t.rt.String()
}

func (t *typeDesc) Kind() descriptor.Kind {
	if t.rt == anyType {
		return descriptor.KindObject
	}

	switch t.rt.Kind() {
	case reflect.Bool:
		return descriptor.KindBool
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return descriptor.KindInt
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		return descriptor.KindUint
	case reflect.Float32, reflect.Float64:
		return descriptor.KindFloat
	case reflect.String:
		return descriptor.KindString
	case reflect.Struct:
		return descriptor.KindStruct
	case reflect.Interface:
		return descriptor.KindInterface
	case reflect.Slice, reflect.Array:
		return descriptor.KindArray
	case reflect.Map:
		return descriptor.KindMap
	case reflect.Func:
		return descriptor.KindFunc
	case reflect.Pointer:
		return descriptor.KindPointer
	default:
		return descriptor.KindOther
	}
}

// Superclass returns the first embedded struct (or pointer-to-struct)
// field's type; Go structs have no other supertype notion.
func (t *typeDesc) Superclass() descriptor.TypeDescriptor {
	for _, e := range t.embeddedTypes() {
		if e.Kind() == reflect.Struct {
			return t.p.Describe(e)
		}
	}

	return nil
}

// Interfaces returns the embedded interface fields plus any embedded
// structs beyond the first; their methods still enumerate even though
// only the first embedding forms the supertype chain.
func (t *typeDesc) Interfaces() []descriptor.TypeDescriptor {
	var (
		ifaces     []descriptor.TypeDescriptor
		structSeen bool
	)

	for _, e := range t.embeddedTypes() {
		switch {
		case e.Kind() == reflect.Interface:
			ifaces = append(ifaces, t.p.Describe(e))
		case e.Kind() == reflect.Struct && !structSeen:
			structSeen = true
		case e.Kind() == reflect.Struct:
			ifaces = append(ifaces, t.p.Describe(e))
		}
	}

	return ifaces
}

// embeddedTypes lists the types of anonymous fields, dereferencing
// embedded pointers.
func (t *typeDesc) embeddedTypes() []reflect.Type {
	if t.rt.Kind() != reflect.Struct {
		return nil
	}

	var embedded []reflect.Type

	for i := 0; i < t.rt.NumField(); i++ {
		f := t.rt.Field(i)
		if !f.Anonymous {
			continue
		}

		ft := f.Type
		if ft.Kind() == reflect.Pointer {
			ft = ft.Elem()
		}

		embedded = append(embedded, ft)
	}

	return embedded
}

// AssignableFrom reports Go assignability, widened with the embedding
// chain so a type embedding another counts as its subtype the way the
// conflict resolver expects.
func (t *typeDesc) AssignableFrom(other descriptor.TypeDescriptor) bool {
	o, ok := other.(*typeDesc)
	if !ok {
		return false
	}

	if o.rt.AssignableTo(t.rt) {
		return true
	}

	for sup := o.Superclass(); sup != nil; sup = sup.Superclass() {
		if descriptor.Same(sup, t) {
			return true
		}
	}

	return false
}

func (t *typeDesc) Identity() any { return t.rt }

func (t *typeDesc) String() string { return t.rt.String() }
