// Package property implements the accessor naming convention: deciding
// whether a method name denotes a getter or setter, deriving the property
// name implied by it, and rejecting reserved property names.
//
// Key functions:
//   - IsGetter / IsSetter: accessor-name predicates
//   - NameFromAccessor: strips the get/set/is prefix and decapitalizes
//   - IsValidName: filters reserved identifiers
package property
