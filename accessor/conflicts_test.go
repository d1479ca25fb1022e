package accessor

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"property-reflector/descriptor"
	"property-reflector/statichost"
)

func TestResolveGetterConflictPrefersIsForBooleans(t *testing.T) {
	h := statichost.New()
	boolT := h.NewType("boolean", descriptor.KindBool)

	typ := h.NewType("Flag", descriptor.KindStruct).
		AddMethod(statichost.MethodDef{Name: "getMuted", Returns: boolT}).
		AddMethod(statichost.MethodDef{Name: "isMuted", Returns: boolT})

	for name, candidates := range map[string][]descriptor.Method{
		"get first": h.DeclaredMethods(typ),
		"is first":  reverse(h.DeclaredMethods(typ)),
	} {
		t.Run(name, func(t *testing.T) {
			winner, err := resolveGetterConflict("muted", candidates)
			require.NoError(t, err)
			assert.Equal(t, "isMuted", winner.Name())
		})
	}
}

func TestResolveGetterConflictEqualNonBooleanTypes(t *testing.T) {
	h := statichost.New()
	str := h.NewType("string", descriptor.KindString)

	typ := h.NewType("Bad", descriptor.KindStruct).
		AddMethod(statichost.MethodDef{Name: "getName", Returns: str}).
		AddMethod(statichost.MethodDef{Name: "isName", Returns: str})

	_, err := resolveGetterConflict("name", h.DeclaredMethods(typ))

	var ambiguity *AmbiguityError
	require.ErrorAs(t, err, &ambiguity)
	assert.Equal(t, "name", ambiguity.Property)
}

func TestResolveGetterConflictCovariantNarrowingWins(t *testing.T) {
	h := statichost.New()
	animal := h.NewType("Animal", descriptor.KindStruct)
	dog := h.NewType("Dog", descriptor.KindStruct).Extends(animal)

	typ := h.NewType("Owner", descriptor.KindStruct).
		AddMethod(statichost.MethodDef{Name: "getPet", Returns: animal}).
		AddMethod(statichost.MethodDef{Name: "getPet", Returns: dog})

	for name, candidates := range map[string][]descriptor.Method{
		"wide first":   h.DeclaredMethods(typ),
		"narrow first": reverse(h.DeclaredMethods(typ)),
	} {
		t.Run(name, func(t *testing.T) {
			winner, err := resolveGetterConflict("pet", candidates)
			require.NoError(t, err)
			assert.True(t, descriptor.Same(dog, winner.ReturnType()))
		})
	}
}

func TestResolveGetterConflictUnrelatedTypes(t *testing.T) {
	h := statichost.New()
	str := h.NewType("string", descriptor.KindString)
	num := h.NewType("int", descriptor.KindInt)

	typ := h.NewType("Bad", descriptor.KindStruct).
		AddMethod(statichost.MethodDef{Name: "getValue", Returns: str}).
		AddMethod(statichost.MethodDef{Name: "getValue", Returns: num})

	_, err := resolveGetterConflict("value", h.DeclaredMethods(typ))

	var ambiguity *AmbiguityError
	require.ErrorAs(t, err, &ambiguity)
}

func TestResolveSetterConflictNarrowerParamWins(t *testing.T) {
	h := statichost.New()
	animal := h.NewType("Animal", descriptor.KindStruct)
	dog := h.NewType("Dog", descriptor.KindStruct).Extends(animal)

	typ := h.NewType("Owner", descriptor.KindStruct).
		AddMethod(statichost.MethodDef{Name: "setPet", Params: []descriptor.TypeDescriptor{animal}}).
		AddMethod(statichost.MethodDef{Name: "setPet", Params: []descriptor.TypeDescriptor{dog}})

	winner, err := resolveSetterConflict("pet", h.DeclaredMethods(typ), nil)
	require.NoError(t, err)
	assert.True(t, descriptor.Same(dog, winner.ParameterTypes()[0]))
}

func TestResolveSetterConflictGetterTypeIsExactMatch(t *testing.T) {
	h := statichost.New()
	str := h.NewType("string", descriptor.KindString)
	num := h.NewType("int", descriptor.KindInt)

	typ := h.NewType("Holder", descriptor.KindStruct).
		AddMethod(statichost.MethodDef{Name: "setValue", Params: []descriptor.TypeDescriptor{num}}).
		AddMethod(statichost.MethodDef{Name: "setValue", Params: []descriptor.TypeDescriptor{str}})

	winner, err := resolveSetterConflict("value", h.DeclaredMethods(typ), str)
	require.NoError(t, err)
	assert.True(t, descriptor.Same(str, winner.ParameterTypes()[0]))
}

func TestResolveSetterConflictExactMatchOverridesPendingAmbiguity(t *testing.T) {
	h := statichost.New()
	str := h.NewType("string", descriptor.KindString)
	num := h.NewType("int", descriptor.KindInt)
	boolT := h.NewType("boolean", descriptor.KindBool)

	// The first two candidates are unrelated, the third matches the getter
	// type and must win anyway.
	typ := h.NewType("Holder", descriptor.KindStruct).
		AddMethod(statichost.MethodDef{Name: "setValue", Params: []descriptor.TypeDescriptor{num}}).
		AddMethod(statichost.MethodDef{Name: "setValue", Params: []descriptor.TypeDescriptor{boolT}}).
		AddMethod(statichost.MethodDef{Name: "setValue", Params: []descriptor.TypeDescriptor{str}})

	winner, err := resolveSetterConflict("value", h.DeclaredMethods(typ), str)
	require.NoError(t, err)
	assert.True(t, descriptor.Same(str, winner.ParameterTypes()[0]))
}

func TestResolveSetterConflictUnrelatedParamsWithoutGetter(t *testing.T) {
	h := statichost.New()
	str := h.NewType("string", descriptor.KindString)
	num := h.NewType("int", descriptor.KindInt)

	typ := h.NewType("Holder", descriptor.KindStruct).
		AddMethod(statichost.MethodDef{Name: "setValue", Params: []descriptor.TypeDescriptor{num}}).
		AddMethod(statichost.MethodDef{Name: "setValue", Params: []descriptor.TypeDescriptor{str}})

	_, err := resolveSetterConflict("value", h.DeclaredMethods(typ), nil)

	var ambiguity *AmbiguityError
	require.ErrorAs(t, err, &ambiguity)
	assert.Equal(t, "value", ambiguity.Property)
}

func reverse(methods []descriptor.Method) []descriptor.Method {
	out := make([]descriptor.Method, len(methods))
	for i, m := range methods {
		out[len(methods)-1-i] = m
	}

	return out
}
