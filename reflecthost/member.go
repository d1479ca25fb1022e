package reflecthost

import (
	"fmt"
	"reflect"
	"unsafe"

	"property-reflector/descriptor"
)

type methodDesc struct {
	p         *Provider
	declaring *typeDesc
	name      string
	sig       reflect.Type

	// hasReceiver is true for concrete method signatures, where In(0) is
	// the receiver; interface method signatures carry none.
	hasReceiver bool
}

func (m *methodDesc) Name() string { return m.name }

func (m *methodDesc) ParameterTypes() []descriptor.TypeDescriptor {
	first := 0
	if m.hasReceiver {
		first = 1
	}

	params := make([]descriptor.TypeDescriptor, 0, m.sig.NumIn()-first)
	for i := first; i < m.sig.NumIn(); i++ {
		params = append(params, m.p.Describe(m.sig.In(i)))
	}

	return params
}

func (m *methodDesc) ReturnType() descriptor.TypeDescriptor {
	if m.sig.NumOut() == 0 {
		return nil
	}

	return m.p.Describe(m.sig.Out(0))
}

func (m *methodDesc) GenericReturnType() descriptor.TypeExpr {
	return descriptor.ConcreteExpr{Type: m.ReturnType()}
}

func (m *methodDesc) GenericParameterTypes() []descriptor.TypeExpr {
	params := m.ParameterTypes()

	exprs := make([]descriptor.TypeExpr, len(params))
	for i, p := range params {
		exprs[i] = descriptor.ConcreteExpr{Type: p}
	}

	return exprs
}

func (m *methodDesc) Declaring() descriptor.TypeDescriptor { return m.declaring }

// Bridge always reports false: the Go runtime exposes no compiler thunks
// through reflection.
func (m *methodDesc) Bridge() bool { return false }

// Invoke calls the method on target. Values without the method in their
// own method set are promoted to an addressable copy so pointer-receiver
// getters still work; setters must be handed a pointer to observe the
// mutation.
func (m *methodDesc) Invoke(target any, args []any) (any, error) {
	v := reflect.ValueOf(target)
	if !v.IsValid() {
		return nil, fmt.Errorf("method %s: target is nil", m.name)
	}

	mv := v.MethodByName(m.name)
	if !mv.IsValid() && v.Kind() != reflect.Pointer {
		pv := reflect.New(v.Type())
		pv.Elem().Set(v)
		mv = pv.MethodByName(m.name)
	}

	if !mv.IsValid() {
		return nil, fmt.Errorf("type %s has no method %s", v.Type(), m.name)
	}

	mt := mv.Type()
	if len(args) != mt.NumIn() {
		return nil, fmt.Errorf("method %s.%s expects %d arguments, got %d",
			v.Type(), m.name, mt.NumIn(), len(args))
	}

	in := make([]reflect.Value, len(args))

	for i, arg := range args {
		if arg == nil {
			in[i] = reflect.Zero(mt.In(i))

			continue
		}

		av := reflect.ValueOf(arg)
		if !av.Type().AssignableTo(mt.In(i)) {
			return nil, fmt.Errorf("method %s.%s: argument %d of type %s is not assignable to %s",
				v.Type(), m.name, i, av.Type(), mt.In(i))
		}

		in[i] = av
	}

	out := mv.Call(in)
	if len(out) == 0 {
		return nil, nil
	}

	return out[0].Interface(), nil
}

type fieldDesc struct {
	p         *Provider
	declaring *typeDesc
	name      string
	typ       reflect.Type
}

func (f *fieldDesc) Name() string { return f.name }

func (f *fieldDesc) Type() descriptor.TypeDescriptor { return f.p.Describe(f.typ) }

func (f *fieldDesc) GenericType() descriptor.TypeExpr {
	return descriptor.ConcreteExpr{Type: f.Type()}
}

func (f *fieldDesc) Declaring() descriptor.TypeDescriptor { return f.declaring }

// Final and Static both report false: Go has no class-level fields, and
// every field is writable through the force path once the target is
// addressable.
func (f *fieldDesc) Final() bool { return false }

func (f *fieldDesc) Static() bool { return false }

// Read returns the field value, forcing access to unexported fields
// through an addressable copy when necessary.
func (f *fieldDesc) Read(target any) (any, error) {
	v, err := structValue(target)
	if err != nil {
		return nil, fmt.Errorf("read field %q: %w", f.name, err)
	}

	fv := v.FieldByName(f.name)
	if !fv.IsValid() {
		return nil, fmt.Errorf("type %s has no field %q", v.Type(), f.name)
	}

	if fv.CanInterface() {
		return fv.Interface(), nil
	}

	if !fv.CanAddr() {
		copied := reflect.New(v.Type()).Elem()
		copied.Set(v)
		fv = copied.FieldByName(f.name)
	}

	return forceValue(fv).Interface(), nil
}

// Write stores value into the field. The target must be addressable
// (a pointer) for the write to be observable; unexported fields are
// written through the force path.
func (f *fieldDesc) Write(target any, value any) error {
	v, err := structValue(target)
	if err != nil {
		return fmt.Errorf("write field %q: %w", f.name, err)
	}

	fv := v.FieldByName(f.name)
	if !fv.IsValid() {
		return fmt.Errorf("type %s has no field %q", v.Type(), f.name)
	}

	if !fv.CanSet() {
		if !fv.CanAddr() {
			return fmt.Errorf("write field %q: target of type %s is not addressable, pass a pointer", f.name, v.Type())
		}

		fv = forceValue(fv)
	}

	if value == nil {
		fv.Set(reflect.Zero(fv.Type()))

		return nil
	}

	av := reflect.ValueOf(value)
	if !av.Type().AssignableTo(fv.Type()) {
		return fmt.Errorf("write field %q: value of type %s is not assignable to %s",
			f.name, av.Type(), fv.Type())
	}

	fv.Set(av)

	return nil
}

// structValue unwraps pointers and interfaces down to the struct value.
func structValue(target any) (reflect.Value, error) {
	v := reflect.ValueOf(target)
	if !v.IsValid() {
		return reflect.Value{}, fmt.Errorf("target is nil")
	}

	for v.Kind() == reflect.Pointer || v.Kind() == reflect.Interface {
		if v.IsNil() {
			return reflect.Value{}, fmt.Errorf("target is nil")
		}

		v = v.Elem()
	}

	if v.Kind() != reflect.Struct {
		return reflect.Value{}, fmt.Errorf("target of type %s is not a struct", v.Type())
	}

	return v, nil
}

// forceValue rebuilds an addressable field value without the read-only
// flag, the accessibility override for unexported fields.
func forceValue(fv reflect.Value) reflect.Value {
	return reflect.NewAt(fv.Type(), unsafe.Pointer(fv.UnsafeAddr())).Elem()
}
