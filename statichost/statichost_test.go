package statichost_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"property-reflector/descriptor"
	"property-reflector/statichost"
)

func TestAssignability(t *testing.T) {
	h := statichost.New()

	animal := h.NewType("Animal", descriptor.KindStruct)
	pet := h.NewType("Pet", descriptor.KindInterface)
	dog := h.NewType("Dog", descriptor.KindStruct).Extends(animal).Implements(pet)
	cat := h.NewType("Cat", descriptor.KindStruct)

	assert.True(t, animal.AssignableFrom(animal), "assignability is reflexive")
	assert.True(t, animal.AssignableFrom(dog))
	assert.True(t, pet.AssignableFrom(dog))
	assert.False(t, animal.AssignableFrom(cat))
	assert.False(t, dog.AssignableFrom(animal))

	assert.True(t, h.ObjectType().AssignableFrom(cat), "object is assignable from everything")
}

func TestAssignabilityTransitive(t *testing.T) {
	h := statichost.New()

	a := h.NewType("A", descriptor.KindStruct)
	b := h.NewType("B", descriptor.KindStruct).Extends(a)
	c := h.NewType("C", descriptor.KindStruct).Extends(b)

	assert.True(t, a.AssignableFrom(c))
}

func TestArrayInterning(t *testing.T) {
	h := statichost.New()
	str := h.NewType("string", descriptor.KindString)

	first := h.ArrayOf(str)
	second := h.ArrayOf(str)

	assert.Equal(t, first.Identity(), second.Identity())
	assert.Equal(t, "string[]", first.Name())
	assert.Equal(t, descriptor.KindArray, first.Kind())
}

func TestDescriptorOnlyMembersAreNotInvocable(t *testing.T) {
	h := statichost.New()
	str := h.NewType("string", descriptor.KindString)

	typ := h.NewType("Ghost", descriptor.KindStruct).
		AddMethod(statichost.MethodDef{Name: "getName", Returns: str}).
		AddField(statichost.FieldDef{Name: "name", Type: str}).
		AddConstructor(statichost.ConstructorDef{})

	_, err := h.DeclaredMethods(typ)[0].Invoke(nil, nil)
	assert.True(t, errors.Is(err, descriptor.ErrNotInvocable))

	_, err = h.DeclaredFields(typ)[0].Read(nil)
	assert.True(t, errors.Is(err, descriptor.ErrNotInvocable))

	err = h.DeclaredFields(typ)[0].Write(nil, nil)
	assert.True(t, errors.Is(err, descriptor.ErrNotInvocable))

	_, err = h.DeclaredConstructors(typ)[0].New()
	assert.True(t, errors.Is(err, descriptor.ErrNotInvocable))
}

func TestConstructorWithParamsRefusesNew(t *testing.T) {
	h := statichost.New()
	str := h.NewType("string", descriptor.KindString)

	typ := h.NewType("NoDefault", descriptor.KindStruct).
		AddConstructor(statichost.ConstructorDef{
			Params: []descriptor.TypeDescriptor{str},
			Body:   func() (any, error) { return nil, nil },
		})

	_, err := h.DeclaredConstructors(typ)[0].New()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "zero-argument")
}

func TestTypeArgumentBindings(t *testing.T) {
	h := statichost.New()
	str := h.NewType("string", descriptor.KindString)

	box := h.NewType("StringBox", descriptor.KindStruct).Bind("T", str)

	arg, ok := box.TypeArgumentFor("T")
	require.True(t, ok)
	assert.True(t, descriptor.Same(str, arg))

	_, ok = box.TypeArgumentFor("U")
	assert.False(t, ok)
}

func TestSuperclassOfRootIsNil(t *testing.T) {
	h := statichost.New()

	root := h.NewType("Root", descriptor.KindStruct)
	assert.Nil(t, root.Superclass())
}
