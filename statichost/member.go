package statichost

import (
	"fmt"

	"property-reflector/descriptor"
)

// MethodDef defines a method for Type.AddMethod.
type MethodDef struct {
	Name    string
	Params  []descriptor.TypeDescriptor
	Returns descriptor.TypeDescriptor

	// GenericReturns/GenericParams override the concrete types when the
	// declaration is generic; leave nil for concrete members.
	GenericReturns descriptor.TypeExpr
	GenericParams  []descriptor.TypeExpr

	// Bridge marks compiler-generated thunks that must be ignored.
	Bridge bool

	// Body executes the method; nil members are descriptor-only.
	Body func(target any, args []any) (any, error)
}

// FieldDef defines a field for Type.AddField.
type FieldDef struct {
	Name        string
	Type        descriptor.TypeDescriptor
	GenericType descriptor.TypeExpr
	Final       bool
	Static      bool

	// Get/Set execute direct field access; nil members are descriptor-only.
	Get func(target any) (any, error)
	Set func(target any, value any) error
}

// ConstructorDef defines a constructor for Type.AddConstructor.
type ConstructorDef struct {
	Params []descriptor.TypeDescriptor

	// Body creates an instance; only zero-argument constructors need one.
	Body func() (any, error)
}

type method struct {
	def       MethodDef
	declaring *Type
}

func (m *method) Name() string { return m.def.Name }

func (m *method) ParameterTypes() []descriptor.TypeDescriptor { return m.def.Params }

func (m *method) ReturnType() descriptor.TypeDescriptor { return m.def.Returns }

func (m *method) GenericReturnType() descriptor.TypeExpr {
	if m.def.GenericReturns != nil {
		return m.def.GenericReturns
	}

	return descriptor.ConcreteExpr{Type: m.def.Returns}
}

func (m *method) GenericParameterTypes() []descriptor.TypeExpr {
	if m.def.GenericParams != nil {
		return m.def.GenericParams
	}

	exprs := make([]descriptor.TypeExpr, len(m.def.Params))
	for i, p := range m.def.Params {
		exprs[i] = descriptor.ConcreteExpr{Type: p}
	}

	return exprs
}

func (m *method) Declaring() descriptor.TypeDescriptor { return m.declaring }

func (m *method) Bridge() bool { return m.def.Bridge }

func (m *method) Invoke(target any, args []any) (any, error) {
	if m.def.Body == nil {
		return nil, fmt.Errorf("%s.%s: %w", m.declaring.name, m.def.Name, descriptor.ErrNotInvocable)
	}

	return m.def.Body(target, args)
}

type field struct {
	def       FieldDef
	declaring *Type
}

func (f *field) Name() string { return f.def.Name }

func (f *field) Type() descriptor.TypeDescriptor { return f.def.Type }

func (f *field) GenericType() descriptor.TypeExpr {
	if f.def.GenericType != nil {
		return f.def.GenericType
	}

	return descriptor.ConcreteExpr{Type: f.def.Type}
}

func (f *field) Declaring() descriptor.TypeDescriptor { return f.declaring }

func (f *field) Final() bool { return f.def.Final }

func (f *field) Static() bool { return f.def.Static }

func (f *field) Read(target any) (any, error) {
	if f.def.Get == nil {
		return nil, fmt.Errorf("%s.%s: %w", f.declaring.name, f.def.Name, descriptor.ErrNotInvocable)
	}

	return f.def.Get(target)
}

func (f *field) Write(target any, value any) error {
	if f.def.Set == nil {
		return fmt.Errorf("%s.%s: %w", f.declaring.name, f.def.Name, descriptor.ErrNotInvocable)
	}

	return f.def.Set(target, value)
}

type constructor struct {
	def       ConstructorDef
	declaring *Type
}

func (c *constructor) ParameterTypes() []descriptor.TypeDescriptor { return c.def.Params }

func (c *constructor) New() (any, error) {
	if len(c.def.Params) > 0 {
		return nil, fmt.Errorf("constructor of %s takes %d arguments, only zero-argument construction is supported",
			c.declaring.name, len(c.def.Params))
	}

	if c.def.Body == nil {
		return nil, fmt.Errorf("constructor of %s: %w", c.declaring.name, descriptor.ErrNotInvocable)
	}

	return c.def.Body()
}
