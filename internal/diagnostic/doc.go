// Package diagnostic provides structured per-type reports for the
// inspector CLI: which types failed to resolve, which tables could not be
// built and why, with severities and stable codes.
package diagnostic
