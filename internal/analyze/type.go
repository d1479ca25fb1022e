package analyze

import (
	"go/types"

	"property-reflector/descriptor"
	"property-reflector/internal/common"
)

// typeDesc wraps a go/types type. Identity is the fully qualified type
// string, which is stable across separately constructed composite types.
type typeDesc struct {
	h  *Host
	t  types.Type
	id string
}

func (d *typeDesc) Name() string {
	if d == d.h.object {
		return "any"
	}

	if named, ok := d.t.(*types.Named); ok {
		return named.Obj().Name()
	}

	return types.TypeString(d.t, func(p *types.Package) string { return common.PkgAlias(p.Path()) })
}

func (d *typeDesc) Kind() descriptor.Kind {
	switch u := d.t.Underlying().(type) {
	case *types.Basic:
		info := u.Info()

		switch {
		case info&types.IsBoolean != 0:
			return descriptor.KindBool
		case info&types.IsUnsigned != 0:
			return descriptor.KindUint
		case info&types.IsInteger != 0:
			return descriptor.KindInt
		case info&(types.IsFloat|types.IsComplex) != 0:
			return descriptor.KindFloat
		case info&types.IsString != 0:
			return descriptor.KindString
		default:
			return descriptor.KindOther
		}

	case *types.Struct:
		return descriptor.KindStruct

	case *types.Interface:
		if u.Empty() {
			return descriptor.KindObject
		}

		return descriptor.KindInterface

	case *types.Slice, *types.Array:
		return descriptor.KindArray

	case *types.Map:
		return descriptor.KindMap

	case *types.Signature:
		return descriptor.KindFunc

	case *types.Pointer:
		return descriptor.KindPointer

	default:
		return descriptor.KindOther
	}
}

// Superclass returns the first embedded struct, which stands in for the
// direct supertype in the hierarchy walk.
func (d *typeDesc) Superclass() descriptor.TypeDescriptor {
	st, ok := d.t.Underlying().(*types.Struct)
	if !ok {
		return nil
	}

	for i := 0; i < st.NumFields(); i++ {
		f := st.Field(i)
		if !f.Embedded() {
			continue
		}

		ft := derefPointer(f.Type())
		if _, ok := ft.Underlying().(*types.Struct); ok {
			return d.h.Describe(ft)
		}
	}

	return nil
}

// Interfaces returns the embedded interface types, plus any embedded
// structs beyond the first (the first is already the superclass).
func (d *typeDesc) Interfaces() []descriptor.TypeDescriptor {
	st, ok := d.t.Underlying().(*types.Struct)
	if !ok {
		return nil
	}

	var (
		ifaces     []descriptor.TypeDescriptor
		structSeen bool
	)

	for i := 0; i < st.NumFields(); i++ {
		f := st.Field(i)
		if !f.Embedded() {
			continue
		}

		ft := derefPointer(f.Type())

		switch ft.Underlying().(type) {
		case *types.Interface:
			ifaces = append(ifaces, d.h.Describe(ft))

		case *types.Struct:
			if structSeen {
				ifaces = append(ifaces, d.h.Describe(ft))
			}

			structSeen = true
		}
	}

	return ifaces
}

func (d *typeDesc) AssignableFrom(other descriptor.TypeDescriptor) bool {
	o, ok := other.(*typeDesc)
	if !ok {
		return false
	}

	if d == d.h.object {
		return true
	}

	if types.AssignableTo(o.t, d.t) {
		return true
	}

	for s := other.Superclass(); s != nil; s = s.Superclass() {
		if descriptor.Same(s, d) {
			return true
		}
	}

	return false
}

func (d *typeDesc) Identity() any { return d.id }

func (d *typeDesc) String() string { return d.id }

// TypeArgumentFor answers type-variable substitution queries for
// instantiated generic types.
func (d *typeDesc) TypeArgumentFor(name string) (descriptor.TypeDescriptor, bool) {
	named, ok := d.t.(*types.Named)
	if !ok {
		return nil, false
	}

	args := named.TypeArgs()
	if args == nil {
		return nil, false
	}

	tparams := named.Origin().TypeParams()
	for i := 0; i < tparams.Len() && i < args.Len(); i++ {
		if tparams.At(i).Obj().Name() == name {
			return d.h.Describe(args.At(i)), true
		}
	}

	return nil, false
}

func derefPointer(t types.Type) types.Type {
	if p, ok := types.Unalias(t).(*types.Pointer); ok {
		return p.Elem()
	}

	return t
}
