package analyze

import (
	"fmt"
	"go/types"
	"sort"
	"strings"
	"sync"

	"golang.org/x/tools/go/packages"

	"property-reflector/descriptor"
)

// LoadMode specifies what information to load from packages.
const LoadMode = packages.NeedName |
	packages.NeedFiles |
	packages.NeedSyntax |
	packages.NeedTypes |
	packages.NeedTypesInfo |
	packages.NeedImports

// TypeID uniquely identifies a named type by package path and name.
type TypeID struct {
	PkgPath string
	Name    string
}

func (id TypeID) String() string {
	if id.PkgPath == "" {
		return id.Name
	}

	return id.PkgPath + "." + id.Name
}

// Host is a descriptor provider backed by go/types.
type Host struct {
	mu     sync.Mutex
	cache  map[string]*typeDesc
	named  map[TypeID]*typeDesc
	object *typeDesc
}

// NewHost creates an empty Host. Call LoadPackages before resolving types.
func NewHost() *Host {
	h := &Host{
		cache: make(map[string]*typeDesc),
		named: make(map[TypeID]*typeDesc),
	}

	h.object = h.Describe(types.Unalias(types.Universe.Lookup("any").Type()))

	return h
}

// LoadPackages loads the given package patterns and indexes their exported
// named types. Patterns are standard Go package patterns (e.g. "./...").
func (h *Host) LoadPackages(patterns ...string) error {
	cfg := &packages.Config{
		Mode: LoadMode,
	}

	pkgs, err := packages.Load(cfg, patterns...)
	if err != nil {
		return fmt.Errorf("failed to load packages: %w", err)
	}

	var errs []error
	for _, pkg := range pkgs {
		for _, e := range pkg.Errors {
			errs = append(errs, e)
		}
	}

	if len(errs) > 0 {
		return fmt.Errorf("package errors: %v", errs)
	}

	for _, pkg := range pkgs {
		h.processPackage(pkg)
	}

	return nil
}

// processPackage indexes the exported named types of a loaded package.
func (h *Host) processPackage(pkg *packages.Package) {
	scope := pkg.Types.Scope()
	for _, name := range scope.Names() {
		typeName, ok := scope.Lookup(name).(*types.TypeName)
		if !ok || typeName.IsAlias() {
			continue
		}

		if !typeName.Exported() {
			continue
		}

		id := TypeID{
			PkgPath: pkg.PkgPath,
			Name:    name,
		}

		d := h.Describe(typeName.Type())

		h.mu.Lock()
		h.named[id] = d
		h.mu.Unlock()
	}
}

// TypeIDs returns the indexed type IDs in a stable order.
func (h *Host) TypeIDs() []TypeID {
	h.mu.Lock()
	defer h.mu.Unlock()

	ids := make([]TypeID, 0, len(h.named))
	for id := range h.named {
		ids = append(ids, id)
	}

	sort.Slice(ids, func(i, j int) bool {
		if ids[i].PkgPath != ids[j].PkgPath {
			return ids[i].PkgPath < ids[j].PkgPath
		}

		return ids[i].Name < ids[j].Name
	})

	return ids
}

// ResolveType resolves a type reference string:
//   - "Order" (name only, best-effort match)
//   - "store.Order" (package name or path suffix)
//   - "example.com/store.Order" (full import path).
func (h *Host) ResolveType(ref string) (descriptor.TypeDescriptor, bool) {
	h.mu.Lock()
	defer h.mu.Unlock()

	if ref == "" {
		return nil, false
	}

	// Name-only: best-effort match by type name.
	if !strings.Contains(ref, ".") {
		for id, d := range h.named {
			if id.Name == ref {
				return d, true
			}
		}

		return nil, false
	}

	lastDot := strings.LastIndex(ref, ".")

	pkgStr := ref[:lastDot]

	name := ref[lastDot+1:]
	if pkgStr == "" || name == "" {
		return nil, false
	}

	// 1) exact match (for fully qualified import path)
	if d, ok := h.named[TypeID{PkgPath: pkgStr, Name: name}]; ok {
		return d, true
	}

	// 2) suffix match (for short forms like "store.Order")
	for id, d := range h.named {
		if id.Name != name {
			continue
		}

		if id.PkgPath == pkgStr || strings.HasSuffix(id.PkgPath, "/"+pkgStr) {
			return d, true
		}
	}

	return nil, false
}

// Describe returns the interned descriptor for a go/types type.
//
// go/types does not canonicalize composite types, so descriptors are
// interned by their fully qualified type string instead of by pointer.
func (h *Host) Describe(t types.Type) *typeDesc {
	t = types.Unalias(t)

	if iface, ok := t.(*types.Interface); ok && iface.Empty() {
		if h.object != nil {
			return h.object
		}
	}

	key := types.TypeString(t, nil)

	h.mu.Lock()
	defer h.mu.Unlock()

	if d, ok := h.cache[key]; ok {
		return d
	}

	d := &typeDesc{h: h, t: t, id: key}
	h.cache[key] = d

	return d
}

// ObjectType returns the universal top type (the empty interface).
func (h *Host) ObjectType() descriptor.TypeDescriptor {
	return h.object
}

// ArrayOf returns the slice type with the given element type.
func (h *Host) ArrayOf(elem descriptor.TypeDescriptor) descriptor.TypeDescriptor {
	e, ok := elem.(*typeDesc)
	if !ok {
		return h.object
	}

	return h.Describe(types.NewSlice(e.t))
}

// DeclaredMethods returns the methods declared on a named type, with
// generic signatures taken from the type's origin so type variables
// survive into the resolver.
func (h *Host) DeclaredMethods(t descriptor.TypeDescriptor) []descriptor.Method {
	d, ok := t.(*typeDesc)
	if !ok {
		return nil
	}

	if iface, ok := d.t.Underlying().(*types.Interface); ok {
		methods := make([]descriptor.Method, 0, iface.NumMethods())
		for i := 0; i < iface.NumMethods(); i++ {
			fn := iface.Method(i)
			methods = append(methods, &methodDesc{h: h, declaring: d, fn: fn, generic: fn})
		}

		return methods
	}

	named, ok := d.t.(*types.Named)
	if !ok {
		return nil
	}

	origin := named.Origin()

	methods := make([]descriptor.Method, 0, named.NumMethods())
	for i := 0; i < named.NumMethods(); i++ {
		methods = append(methods, &methodDesc{
			h:         h,
			declaring: d,
			fn:        named.Method(i),
			generic:   origin.Method(i),
		})
	}

	return methods
}

// DeclaredFields returns the non-embedded fields of a struct type.
func (h *Host) DeclaredFields(t descriptor.TypeDescriptor) []descriptor.Field {
	d, ok := t.(*typeDesc)
	if !ok {
		return nil
	}

	st, ok := d.t.Underlying().(*types.Struct)
	if !ok {
		return nil
	}

	// Origin fields keep type variables where the instance is substituted.
	var origin *types.Struct
	if named, ok := d.t.(*types.Named); ok {
		origin, _ = named.Origin().Underlying().(*types.Struct)
	}

	fields := make([]descriptor.Field, 0, st.NumFields())

	for i := 0; i < st.NumFields(); i++ {
		f := st.Field(i)
		if f.Embedded() {
			continue
		}

		generic := f.Type()
		if origin != nil && origin.NumFields() == st.NumFields() {
			generic = origin.Field(i).Type()
		}

		fields = append(fields, &fieldDesc{h: h, declaring: d, v: f, generic: generic})
	}

	return fields
}

// DeclaredConstructors reports a single zero-argument constructor for every
// type. It is descriptive only and cannot be invoked.
func (h *Host) DeclaredConstructors(t descriptor.TypeDescriptor) []descriptor.Constructor {
	d, ok := t.(*typeDesc)
	if !ok {
		return nil
	}

	return []descriptor.Constructor{&ctorDesc{declaring: d}}
}

// expr converts a declared go/types type into a type expression,
// preserving type variables for the resolver to substitute.
func (h *Host) expr(t types.Type) descriptor.TypeExpr {
	t = types.Unalias(t)

	switch tt := t.(type) {
	case *types.TypeParam:
		return descriptor.VariableExpr{Name: tt.Obj().Name()}

	case *types.Slice:
		if containsTypeParam(tt.Elem()) {
			return descriptor.ArrayExpr{Elem: h.expr(tt.Elem())}
		}

	case *types.Named:
		if args := tt.TypeArgs(); args != nil && containsTypeParam(t) {
			exprs := make([]descriptor.TypeExpr, args.Len())
			for i := range exprs {
				exprs[i] = h.expr(args.At(i))
			}

			return descriptor.ParameterizedExpr{Raw: h.Describe(tt.Origin()), Args: exprs}
		}
	}

	return descriptor.ConcreteExpr{Type: h.Describe(t)}
}

// containsTypeParam reports whether the type mentions any type parameter.
func containsTypeParam(t types.Type) bool {
	switch tt := types.Unalias(t).(type) {
	case *types.TypeParam:
		return true

	case *types.Slice:
		return containsTypeParam(tt.Elem())

	case *types.Array:
		return containsTypeParam(tt.Elem())

	case *types.Pointer:
		return containsTypeParam(tt.Elem())

	case *types.Map:
		return containsTypeParam(tt.Key()) || containsTypeParam(tt.Elem())

	case *types.Named:
		if args := tt.TypeArgs(); args != nil {
			for i := 0; i < args.Len(); i++ {
				if containsTypeParam(args.At(i)) {
					return true
				}
			}
		}
	}

	return false
}
