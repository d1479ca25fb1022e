// Package invoker provides the uniform invocation capability behind a
// resolved property: a single get or set operation that works the same
// whether it is backed by an accessor method or by direct field access.
//
// Variants:
//   - NewMethod: bound accessor-method invoker
//   - NewFieldGetter / NewFieldSetter: direct field access invokers
package invoker
