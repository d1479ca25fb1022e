// Package reflecthost binds the descriptor contract to Go's runtime
// reflection.
//
// Embedded struct fields act as the supertype chain (the first embedding
// is the superclass, further embeddings and embedded interfaces surface as
// direct interfaces), accessor methods come from the pointer method set,
// and field access falls back to an unsafe force path for unexported
// fields, mirroring accessibility override at call time.
//
// Runtime Go carries no generic metadata, so every declared type is
// already concrete and type resolution degrades to identity.
package reflecthost
