package accessor

import (
	"property-reflector/descriptor"
	"property-reflector/internal/member"
	"property-reflector/internal/typeres"
	"property-reflector/invoker"
	"property-reflector/property"
)

// Build constructs the accessor table for t with the default
// configuration. It fails only when conflict resolution fails; a type with
// one ambiguous property yields no table at all.
func Build(p descriptor.Provider, t descriptor.TypeDescriptor) (*Table, error) {
	return BuildWithConfig(p, t, DefaultConfig())
}

// BuildWithConfig is Build with an explicit configuration.
func BuildWithConfig(p descriptor.Provider, t descriptor.TypeDescriptor, cfg Config) (*Table, error) {
	b := &builder{
		provider:    p,
		typ:         t,
		cfg:         cfg,
		getters:     make(map[string]invoker.Accessor),
		getterTypes: make(map[string]descriptor.TypeDescriptor),
		setters:     make(map[string]invoker.Accessor),
		setterTypes: make(map[string]descriptor.TypeDescriptor),
	}

	b.addDefaultConstructor()

	methods := member.Enumerate(p, t)

	if err := b.addGetters(methods); err != nil {
		return nil, err
	}

	if err := b.addSetters(methods); err != nil {
		return nil, err
	}

	b.addFields()

	return b.assemble(), nil
}

type builder struct {
	provider descriptor.Provider
	typ      descriptor.TypeDescriptor
	cfg      Config

	getters     map[string]invoker.Accessor
	getterTypes map[string]descriptor.TypeDescriptor
	setters     map[string]invoker.Accessor
	setterTypes map[string]descriptor.TypeDescriptor
	defaultCtor descriptor.Constructor
}

func (b *builder) addDefaultConstructor() {
	for _, ctor := range b.provider.DeclaredConstructors(b.typ) {
		if len(ctor.ParameterTypes()) == 0 {
			b.defaultCtor = ctor

			return
		}
	}
}

func (b *builder) addGetters(methods []descriptor.Method) error {
	conflicting := collectCandidates(methods, func(m descriptor.Method) bool {
		return len(m.ParameterTypes()) == 0 && property.IsGetter(m.Name())
	})

	for prop, candidates := range conflicting {
		winner, err := resolveGetterConflict(prop, candidates)
		if err != nil {
			return err
		}

		b.addGetMethod(prop, winner)
	}

	return nil
}

func (b *builder) addSetters(methods []descriptor.Method) error {
	conflicting := collectCandidates(methods, func(m descriptor.Method) bool {
		return len(m.ParameterTypes()) == 1 && property.IsSetter(m.Name())
	})

	for prop, candidates := range conflicting {
		winner, err := resolveSetterConflict(prop, candidates, b.getterTypes[prop])
		if err != nil {
			return err
		}

		b.addSetMethod(prop, winner)
	}

	return nil
}

// collectCandidates groups accessor-shaped methods by the property name
// they imply.
func collectCandidates(methods []descriptor.Method, accepts func(descriptor.Method) bool) map[string][]descriptor.Method {
	conflicting := make(map[string][]descriptor.Method)

	for _, m := range methods {
		if !accepts(m) {
			continue
		}

		prop, err := property.NameFromAccessor(m.Name())
		if err != nil {
			continue
		}

		conflicting[prop] = append(conflicting[prop], m)
	}

	return conflicting
}

func (b *builder) addGetMethod(prop string, m descriptor.Method) {
	if !property.IsValidName(prop) {
		return
	}

	b.getters[prop] = invoker.NewMethod(m)
	b.getterTypes[prop] = b.resolve(m.GenericReturnType(), m.ReturnType())
}

func (b *builder) addSetMethod(prop string, m descriptor.Method) {
	if !property.IsValidName(prop) {
		return
	}

	b.setters[prop] = invoker.NewMethod(m)

	params := m.GenericParameterTypes()

	var expr descriptor.TypeExpr
	if len(params) == 1 {
		expr = params[0]
	}

	b.setterTypes[prop] = b.resolve(expr, m.ParameterTypes()[0])
}

// addFields registers direct field access for every property not covered
// by a method accessor. The walk is most-derived first; a field hides
// rather than overrides, so the registration checks themselves prevent
// duplicates. Final static fields never become setters.
func (b *builder) addFields() {
	objectID := descriptor.Identity(b.provider.ObjectType())

	for current := b.typ; current != nil && descriptor.Identity(current) != objectID; current = current.Superclass() {
		for _, f := range b.provider.DeclaredFields(current) {
			b.addField(f)
		}
	}
}

func (b *builder) addField(f descriptor.Field) {
	prop := f.Name()
	if !property.IsValidName(prop) {
		return
	}

	if _, covered := b.setters[prop]; !covered && !(f.Final() && f.Static()) {
		b.setters[prop] = invoker.NewFieldSetter(f)
		b.setterTypes[prop] = b.resolve(f.GenericType(), f.Type())
	}

	if _, covered := b.getters[prop]; !covered {
		b.getters[prop] = invoker.NewFieldGetter(f)
		b.getterTypes[prop] = b.resolve(f.GenericType(), f.Type())
	}
}

// resolve reduces a declared type expression relative to the table's type,
// falling back to the concrete type for hosts that omit expressions.
func (b *builder) resolve(expr descriptor.TypeExpr, concrete descriptor.TypeDescriptor) descriptor.TypeDescriptor {
	if expr == nil {
		expr = descriptor.ConcreteExpr{Type: concrete}
	}

	return typeres.Resolve(b.provider, expr, b.typ)
}
