package reflecthost

import (
	"reflect"
	"sync"

	"property-reflector/descriptor"
)

var anyType = reflect.TypeOf((*any)(nil)).Elem()

// Provider is a descriptor.Provider over runtime reflection. Descriptors
// are interned per reflect.Type, and identity is the reflect.Type itself.
type Provider struct {
	mu    sync.RWMutex
	cache map[reflect.Type]*typeDesc
}

// New creates an empty provider.
func New() *Provider {
	return &Provider{cache: make(map[reflect.Type]*typeDesc)}
}

// TypeOf describes the dynamic type of v.
func (p *Provider) TypeOf(v any) descriptor.TypeDescriptor {
	return p.Describe(reflect.TypeOf(v))
}

// Describe returns the interned descriptor for rt.
func (p *Provider) Describe(rt reflect.Type) descriptor.TypeDescriptor {
	if rt == nil {
		return p.ObjectType()
	}

	p.mu.RLock()
	t, ok := p.cache[rt]
	p.mu.RUnlock()

	if ok {
		return t
	}

	p.mu.Lock()
	defer p.mu.Unlock()

	if t, ok := p.cache[rt]; ok {
		return t
	}

	t = &typeDesc{p: p, rt: rt}
	p.cache[rt] = t

	return t
}

// ObjectType implements descriptor.Provider; the universal top type is
// the empty interface.
func (p *Provider) ObjectType() descriptor.TypeDescriptor {
	return p.Describe(anyType)
}

// ArrayOf implements descriptor.Provider.
func (p *Provider) ArrayOf(elem descriptor.TypeDescriptor) descriptor.TypeDescriptor {
	et, ok := elem.(*typeDesc)
	if !ok {
		return p.ObjectType()
	}

	return p.Describe(reflect.SliceOf(et.rt))
}

// DeclaredMethods implements descriptor.Provider. Runtime reflection only
// exposes the flattened method set, so every level reports the full set;
// the enumerator's signature deduplication collapses the repeats. Struct
// types report the pointer method set so pointer-receiver accessors are
// included.
func (p *Provider) DeclaredMethods(td descriptor.TypeDescriptor) []descriptor.Method {
	t, ok := td.(*typeDesc)
	if !ok {
		return nil
	}

	mset := t.rt
	if mset.Kind() == reflect.Struct {
		mset = reflect.PointerTo(mset)
	}

	hasReceiver := mset.Kind() != reflect.Interface

	methods := make([]descriptor.Method, 0, mset.NumMethod())

	for i := 0; i < mset.NumMethod(); i++ {
		m := mset.Method(i)
		if m.PkgPath != "" {
			continue
		}

		methods = append(methods, &methodDesc{
			p:           p,
			declaring:   t,
			name:        m.Name,
			sig:         m.Type,
			hasReceiver: hasReceiver,
		})
	}

	return methods
}

// DeclaredFields implements descriptor.Provider: the direct, non-embedded
// fields of a struct type. Embedded fields are walked as supertypes
// instead.
func (p *Provider) DeclaredFields(td descriptor.TypeDescriptor) []descriptor.Field {
	t, ok := td.(*typeDesc)
	if !ok || t.rt.Kind() != reflect.Struct {
		return nil
	}

	fields := make([]descriptor.Field, 0, t.rt.NumField())

	for i := 0; i < t.rt.NumField(); i++ {
		f := t.rt.Field(i)
		if f.Anonymous {
			continue
		}

		fields = append(fields, &fieldDesc{
			p:         p,
			declaring: t,
			name:      f.Name,
			typ:       f.Type,
		})
	}

	return fields
}

// DeclaredConstructors implements descriptor.Provider. Every Go type is
// constructible from its zero value, so each type reports exactly one
// zero-argument constructor yielding a pointer to a fresh zero value.
func (p *Provider) DeclaredConstructors(td descriptor.TypeDescriptor) []descriptor.Constructor {
	t, ok := td.(*typeDesc)
	if !ok {
		return nil
	}

	return []descriptor.Constructor{&zeroConstructor{rt: t.rt}}
}

type zeroConstructor struct {
	rt reflect.Type
}

func (c *zeroConstructor) ParameterTypes() []descriptor.TypeDescriptor { return nil }

func (c *zeroConstructor) New() (any, error) {
	return reflect.New(c.rt).Interface(), nil
}
