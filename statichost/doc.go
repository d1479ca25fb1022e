// Package statichost provides an in-memory introspection host: types,
// members and hierarchies are assembled by hand instead of being read from
// a reflection API.
//
// It serves two purposes. Hosts without native introspection can describe
// their type systems through it, and tests use it to model shapes Go's own
// runtime cannot express: covariant overrides, bridge methods, interface
// hierarchies and generic member declarations.
//
// Key types:
//   - Host: the Provider implementation, owns the object top type
//   - Type: a buildable type descriptor (Extends/Implements/AddMethod/...)
//   - MethodDef / FieldDef / ConstructorDef: member definitions
package statichost
