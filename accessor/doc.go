// Package accessor builds the per-type property table: readable and
// writable properties derived from accessor methods and fields, with
// override and overload conflicts resolved and declared types reduced to
// concrete runtime types.
//
// Resolution pipeline:
//  1. Enumerate distinct methods across the hierarchy (internal/member)
//  2. Resolve getter conflicts, then setter conflicts against getter types
//  3. Fall back to direct field access for uncovered properties
//  4. Assemble the immutable Table with its case-insensitive name index
//
// A conflict makes the whole build fail; no partial table is ever
// produced. Built tables are immutable and safe for concurrent use.
// Registry adds per-type caching keyed by descriptor identity.
package accessor
