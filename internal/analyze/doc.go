// Package analyze is the source-level host: it loads Go packages through
// golang.org/x/tools/go/packages and exposes their named types as
// descriptors, so accessor tables can be built for code that is never
// compiled into the inspector itself.
//
// Capabilities:
//   - load package patterns and index their exported named types
//   - resolve type references by name, pkg.Name suffix or full import path
//   - report methods and fields with generic type expressions intact
//
// Members reported by this host are descriptive only: invoking them
// returns descriptor.ErrNotInvocable.
package analyze
