package accessor_test

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"property-reflector/accessor"
	"property-reflector/statichost"
)

func TestRegistryCachesPerTypeIdentity(t *testing.T) {
	h := statichost.New()
	typ := personType(h)

	reg := accessor.NewRegistry(h, accessor.DefaultConfig())

	first, err := reg.Lookup(typ)
	require.NoError(t, err)

	second, err := reg.Lookup(typ)
	require.NoError(t, err)

	assert.Same(t, first, second)
}

func TestRegistryCacheDisabled(t *testing.T) {
	h := statichost.New()
	typ := personType(h)

	cfg := accessor.DefaultConfig()
	cfg.CacheEnabled = false

	reg := accessor.NewRegistry(h, cfg)

	first, err := reg.Lookup(typ)
	require.NoError(t, err)

	second, err := reg.Lookup(typ)
	require.NoError(t, err)

	assert.NotSame(t, first, second)
}

func TestRegistryConcurrentLookupsPublishOneTable(t *testing.T) {
	h := statichost.New()
	typ := personType(h)

	reg := accessor.NewRegistry(h, accessor.DefaultConfig())

	const goroutines = 16

	tables := make([]*accessor.Table, goroutines)

	var wg sync.WaitGroup
	for i := 0; i < goroutines; i++ {
		wg.Add(1)

		go func(i int) {
			defer wg.Done()

			table, err := reg.Lookup(typ)
			if err == nil {
				tables[i] = table
			}
		}(i)
	}

	wg.Wait()

	// Later lookups must observe the single published table.
	published, err := reg.Lookup(typ)
	require.NoError(t, err)

	for i, table := range tables {
		require.NotNil(t, table, "goroutine %d got no table", i)
		assert.Same(t, published, table)
	}
}
