package reflecthost_test

import (
	"reflect"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"property-reflector/accessor"
	"property-reflector/descriptor"
	"property-reflector/reflecthost"
)

type account struct {
	Owner string

	balance int64
	secret  string
}

func (a *account) GetBalance() int64 { return a.balance }

func (a *account) SetBalance(v int64) { a.balance = v }

func (a *account) IsOverdrawn() bool { return a.balance < 0 }

type baseEntity struct {
	id string
}

func (e *baseEntity) GetID() string { return e.id }

func (e *baseEntity) SetID(id string) { e.id = id }

type auditedAccount struct {
	baseEntity

	note string
}

func TestBuildTableOverStruct(t *testing.T) {
	p := reflecthost.New()
	typ := p.TypeOf(account{})

	table, err := accessor.Build(p, typ)
	require.NoError(t, err)

	assert.True(t, table.HasGetter("balance"))
	assert.True(t, table.HasSetter("balance"))
	assert.True(t, table.HasGetter("overdrawn"))
	assert.False(t, table.HasSetter("overdrawn"))

	// Exported field without accessor methods.
	assert.True(t, table.HasGetter("Owner"))
	assert.True(t, table.HasSetter("Owner"))

	gt, err := table.GetterType("balance")
	require.NoError(t, err)
	assert.Equal(t, "int64", gt.Name())
}

func TestMethodAccessorRoundTrip(t *testing.T) {
	p := reflecthost.New()
	typ := p.TypeOf(account{})

	table, err := accessor.Build(p, typ)
	require.NoError(t, err)

	a := &account{}

	setter, err := table.Setter("balance")
	require.NoError(t, err)
	_, err = setter.Invoke(a, []any{int64(250)})
	require.NoError(t, err)

	getter, err := table.Getter("balance")
	require.NoError(t, err)
	got, err := getter.Invoke(a, nil)
	require.NoError(t, err)
	assert.Equal(t, int64(250), got)

	overdrawn, err := table.Getter("overdrawn")
	require.NoError(t, err)
	got, err = overdrawn.Invoke(a, nil)
	require.NoError(t, err)
	assert.Equal(t, false, got)
}

func TestUnexportedFieldForceAccess(t *testing.T) {
	p := reflecthost.New()
	typ := p.TypeOf(account{})

	table, err := accessor.Build(p, typ)
	require.NoError(t, err)

	require.True(t, table.HasGetter("secret"))
	require.True(t, table.HasSetter("secret"))

	a := &account{}

	setter, err := table.Setter("secret")
	require.NoError(t, err)
	_, err = setter.Invoke(a, []any{"hunter2"})
	require.NoError(t, err)
	assert.Equal(t, "hunter2", a.secret)

	getter, err := table.Getter("secret")
	require.NoError(t, err)
	got, err := getter.Invoke(a, nil)
	require.NoError(t, err)
	assert.Equal(t, "hunter2", got)
}

func TestUnexportedFieldWriteRequiresPointer(t *testing.T) {
	p := reflecthost.New()
	typ := p.TypeOf(account{})

	table, err := accessor.Build(p, typ)
	require.NoError(t, err)

	setter, err := table.Setter("secret")
	require.NoError(t, err)

	_, err = setter.Invoke(account{}, []any{"hunter2"})
	assert.ErrorContains(t, err, "not addressable")
}

func TestEmbeddedStructIsSupertype(t *testing.T) {
	p := reflecthost.New()
	typ := p.TypeOf(auditedAccount{})

	super := typ.Superclass()
	require.NotNil(t, super)
	assert.True(t, descriptor.Same(super, p.TypeOf(baseEntity{})))

	table, err := accessor.Build(p, typ)
	require.NoError(t, err)

	// Promoted accessors from the embedded type.
	assert.True(t, table.HasGetter("ID"))
	assert.True(t, table.HasSetter("ID"))
	assert.True(t, table.HasGetter("note"))

	a := &auditedAccount{}

	setter, err := table.Setter("ID")
	require.NoError(t, err)
	_, err = setter.Invoke(a, []any{"acc-1"})
	require.NoError(t, err)

	getter, err := table.Getter("ID")
	require.NoError(t, err)
	got, err := getter.Invoke(a, nil)
	require.NoError(t, err)
	assert.Equal(t, "acc-1", got)
}

func TestDefaultConstructor(t *testing.T) {
	p := reflecthost.New()
	typ := p.TypeOf(account{})

	table, err := accessor.Build(p, typ)
	require.NoError(t, err)

	require.True(t, table.HasDefaultConstructor())

	ctor, err := table.DefaultConstructor()
	require.NoError(t, err)

	instance, err := ctor.New()
	require.NoError(t, err)
	assert.IsType(t, &account{}, instance)
}

func TestDescribeInternsPerReflectType(t *testing.T) {
	p := reflecthost.New()

	first := p.Describe(reflect.TypeOf(int64(0)))
	second := p.Describe(reflect.TypeOf(int64(0)))
	assert.Equal(t, first.Identity(), second.Identity())

	arr := p.ArrayOf(first)
	assert.Equal(t, arr.Identity(), p.ArrayOf(second).Identity())
	assert.Equal(t, descriptor.KindArray, arr.Kind())
}

func TestKindMapping(t *testing.T) {
	p := reflecthost.New()

	tests := []struct {
		value    any
		expected descriptor.Kind
	}{
		{true, descriptor.KindBool},
		{int(1), descriptor.KindInt},
		{uint8(1), descriptor.KindUint},
		{1.5, descriptor.KindFloat},
		{"s", descriptor.KindString},
		{account{}, descriptor.KindStruct},
		{[]int{}, descriptor.KindArray},
		{map[string]int{}, descriptor.KindMap},
		{&account{}, descriptor.KindPointer},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.expected, p.TypeOf(tt.value).Kind(), "kind of %T", tt.value)
	}
}
