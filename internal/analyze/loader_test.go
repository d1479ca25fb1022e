package analyze

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"property-reflector/accessor"
	"property-reflector/descriptor"
)

func loadExamples(t *testing.T) *Host {
	t.Helper()

	host := NewHost()
	err := host.LoadPackages(
		"property-reflector/examples/catalog",
		"property-reflector/examples/legacy",
	)
	require.NoError(t, err)

	return host
}

func TestResolveType(t *testing.T) {
	host := loadExamples(t)

	tests := []struct {
		ref   string
		found bool
	}{
		{"Product", true},
		{"catalog.Product", true},
		{"property-reflector/examples/catalog.Product", true},
		{"legacy.Customer", true},
		{"Nonexistent", false},
		{"catalog.Nonexistent", false},
		{"", false},
	}

	for _, tt := range tests {
		t.Run(tt.ref, func(t *testing.T) {
			_, ok := host.ResolveType(tt.ref)
			assert.Equal(t, tt.found, ok)
		})
	}
}

func TestBuildTableFromSource(t *testing.T) {
	host := loadExamples(t)

	typ, ok := host.ResolveType("catalog.Product")
	require.True(t, ok)

	table, err := accessor.Build(host, typ)
	require.NoError(t, err)

	// Accessor methods.
	assert.True(t, table.HasGetter("SKU"))
	assert.True(t, table.HasSetter("SKU"))
	assert.True(t, table.HasGetter("price"))
	assert.True(t, table.HasGetter("discounted"))
	assert.False(t, table.HasSetter("discounted"))

	// Exported field without accessors.
	assert.True(t, table.HasGetter("Title"))
	assert.True(t, table.HasSetter("Title"))

	gt, err := table.GetterType("price")
	require.NoError(t, err)
	assert.Equal(t, "float64", gt.Name())

	gt, err = table.GetterType("tags")
	require.NoError(t, err)
	assert.Equal(t, descriptor.KindArray, gt.Kind())

	// Source-level members describe but never execute.
	getter, err := table.Getter("SKU")
	require.NoError(t, err)
	_, err = getter.Invoke(nil, nil)
	assert.True(t, errors.Is(err, descriptor.ErrNotInvocable))
}

func TestEmbeddedStructHierarchy(t *testing.T) {
	host := loadExamples(t)

	customer, ok := host.ResolveType("legacy.Customer")
	require.True(t, ok)

	record, ok := host.ResolveType("legacy.Record")
	require.True(t, ok)

	require.NotNil(t, customer.Superclass())
	assert.True(t, descriptor.Same(record, customer.Superclass()))

	table, err := accessor.Build(host, customer)
	require.NoError(t, err)

	// Accessors of the embedded supertype are part of the table.
	assert.True(t, table.HasGetter("ID"))
	assert.True(t, table.HasSetter("ID"))
	assert.True(t, table.HasGetter("name"))
	assert.True(t, table.HasGetter("registered"))
}

func TestGenericAccessorResolution(t *testing.T) {
	host := loadExamples(t)

	labelBox, ok := host.ResolveType("catalog.LabelBox")
	require.True(t, ok)

	table, err := accessor.Build(host, labelBox)
	require.NoError(t, err)

	// GetValue is declared as T; the embedded Box[string] binds T.
	gt, err := table.GetterType("value")
	require.NoError(t, err)
	assert.Equal(t, "string", gt.Name())

	st, err := table.SetterType("value")
	require.NoError(t, err)
	assert.Equal(t, "string", st.Name())
}

func TestDescribeInternsCompositeTypes(t *testing.T) {
	host := loadExamples(t)

	typ, ok := host.ResolveType("Product")
	require.True(t, ok)

	again := host.Describe(typ.(*typeDesc).t)
	assert.Equal(t, typ.Identity(), again.Identity())

	// Slice descriptors built independently share one identity.
	first := host.ArrayOf(host.object)
	second := host.ArrayOf(host.object)
	assert.Equal(t, first.Identity(), second.Identity())
}
