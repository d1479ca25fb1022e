// Package typeres resolves declared type expressions down to concrete
// runtime types: parameterized types erase to their raw form, generic
// arrays resolve recursively through their element type, type variables
// substitute through the owning type's bindings and anything unresolvable
// falls back to the object top type.
package typeres
