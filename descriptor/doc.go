// Package descriptor defines the host-neutral introspection contract that
// the accessor resolver is built on.
//
// A host (runtime reflection, go/types source analysis, a hand-assembled
// static model) exposes its type system through the Provider interface and
// the member records it hands out. The resolver itself never touches a
// concrete reflection API.
//
// Key types:
//   - TypeDescriptor: opaque, identity-comparable handle to a type
//   - Method / Field / Constructor: member records with invocation capability
//   - Provider: enumerates declared members of a type
//   - TypeExpr: declared (possibly generic) type expressions
package descriptor
