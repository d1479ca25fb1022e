package invoker

import (
	"fmt"

	"property-reflector/descriptor"
)

// Accessor performs a single get or set operation on an instance.
// Accessibility overrides, where the host supports them, happen at call
// time inside the underlying member record.
type Accessor interface {
	// Invoke runs the operation: no args for a get, exactly one for a set.
	// Gets return the property value; sets return nil.
	Invoke(target any, args []any) (any, error)

	// Type returns the property value type moved by this accessor.
	Type() descriptor.TypeDescriptor
}

type methodAccessor struct {
	method descriptor.Method
	typ    descriptor.TypeDescriptor
}

// NewMethod wraps an accessor method. For one-parameter methods (setters)
// the accessor type is the parameter type, otherwise the return type.
func NewMethod(m descriptor.Method) Accessor {
	typ := m.ReturnType()
	if params := m.ParameterTypes(); len(params) == 1 {
		typ = params[0]
	}

	return &methodAccessor{method: m, typ: typ}
}

func (a *methodAccessor) Invoke(target any, args []any) (any, error) {
	return a.method.Invoke(target, args)
}

func (a *methodAccessor) Type() descriptor.TypeDescriptor {
	return a.typ
}

type fieldGetter struct {
	field descriptor.Field
}

// NewFieldGetter wraps direct read access to a field.
func NewFieldGetter(f descriptor.Field) Accessor {
	return &fieldGetter{field: f}
}

func (g *fieldGetter) Invoke(target any, _ []any) (any, error) {
	return g.field.Read(target)
}

func (g *fieldGetter) Type() descriptor.TypeDescriptor {
	return g.field.Type()
}

type fieldSetter struct {
	field descriptor.Field
}

// NewFieldSetter wraps direct write access to a field.
func NewFieldSetter(f descriptor.Field) Accessor {
	return &fieldSetter{field: f}
}

func (s *fieldSetter) Invoke(target any, args []any) (any, error) {
	if len(args) != 1 {
		return nil, fmt.Errorf("field setter for %q expects exactly one argument, got %d",
			s.field.Name(), len(args))
	}

	return nil, s.field.Write(target, args[0])
}

func (s *fieldSetter) Type() descriptor.TypeDescriptor {
	return s.field.Type()
}
