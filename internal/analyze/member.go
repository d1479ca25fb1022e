package analyze

import (
	"fmt"
	"go/types"

	"property-reflector/descriptor"
)

type methodDesc struct {
	h         *Host
	declaring *typeDesc

	// fn carries the substituted signature, generic the origin signature
	// with type variables intact. They coincide for non-generic types.
	fn      *types.Func
	generic *types.Func
}

func (m *methodDesc) Name() string { return m.fn.Name() }

func (m *methodDesc) sig() *types.Signature { return m.fn.Type().(*types.Signature) }

func (m *methodDesc) genericSig() *types.Signature { return m.generic.Type().(*types.Signature) }

func (m *methodDesc) ParameterTypes() []descriptor.TypeDescriptor {
	params := m.sig().Params()

	out := make([]descriptor.TypeDescriptor, params.Len())
	for i := range out {
		out[i] = m.h.Describe(params.At(i).Type())
	}

	return out
}

func (m *methodDesc) ReturnType() descriptor.TypeDescriptor {
	results := m.sig().Results()
	if results.Len() == 0 {
		return nil
	}

	return m.h.Describe(results.At(0).Type())
}

func (m *methodDesc) GenericReturnType() descriptor.TypeExpr {
	results := m.genericSig().Results()
	if results.Len() == 0 {
		return descriptor.ConcreteExpr{}
	}

	return m.h.expr(results.At(0).Type())
}

func (m *methodDesc) GenericParameterTypes() []descriptor.TypeExpr {
	params := m.genericSig().Params()

	out := make([]descriptor.TypeExpr, params.Len())
	for i := range out {
		out[i] = m.h.expr(params.At(i).Type())
	}

	return out
}

func (m *methodDesc) Declaring() descriptor.TypeDescriptor { return m.declaring }

func (m *methodDesc) Bridge() bool { return false }

func (m *methodDesc) Invoke(any, []any) (any, error) {
	return nil, fmt.Errorf("method %s: %w", m.fn.Name(), descriptor.ErrNotInvocable)
}

type fieldDesc struct {
	h         *Host
	declaring *typeDesc
	v         *types.Var
	generic   types.Type
}

func (f *fieldDesc) Name() string { return f.v.Name() }

func (f *fieldDesc) Type() descriptor.TypeDescriptor { return f.h.Describe(f.v.Type()) }

func (f *fieldDesc) GenericType() descriptor.TypeExpr { return f.h.expr(f.generic) }

func (f *fieldDesc) Declaring() descriptor.TypeDescriptor { return f.declaring }

func (f *fieldDesc) Final() bool { return false }

func (f *fieldDesc) Static() bool { return false }

func (f *fieldDesc) Read(any) (any, error) {
	return nil, fmt.Errorf("field %s: %w", f.v.Name(), descriptor.ErrNotInvocable)
}

func (f *fieldDesc) Write(any, any) error {
	return fmt.Errorf("field %s: %w", f.v.Name(), descriptor.ErrNotInvocable)
}

type ctorDesc struct {
	declaring *typeDesc
}

func (c *ctorDesc) ParameterTypes() []descriptor.TypeDescriptor { return nil }

func (c *ctorDesc) New() (any, error) {
	return nil, fmt.Errorf("constructor of %s: %w", c.declaring.Name(), descriptor.ErrNotInvocable)
}
