// Package member enumerates the distinct overridable methods of a type:
// it walks the supertype chain, scans directly implemented interfaces at
// each level, drops synthetic/bridge thunks and deduplicates overrides by
// signature so the most-derived declaration wins.
package member
