package accessor

import (
	"fmt"
	"strings"
)

// AmbiguityError reports two candidate accessors for the same property
// whose types are neither equal (legally) nor subtype-related. It is fatal
// to table construction.
type AmbiguityError struct {
	Property  string
	Declaring string
	Reason    string
}

func (e *AmbiguityError) Error() string {
	return fmt.Sprintf("ambiguous accessors for property %q in type %s: %s",
		e.Property, e.Declaring, e.Reason)
}

// MissingAccessorError reports a lookup for a property that was never
// registered. It is recoverable; probe with HasGetter/HasSetter first.
type MissingAccessorError struct {
	// Accessor is "getter" or "setter".
	Accessor string
	Property string
	Type     string

	// Suggestions are the closest known property names, if any.
	Suggestions []string
}

func (e *MissingAccessorError) Error() string {
	msg := fmt.Sprintf("no %s for property %q in type %s", e.Accessor, e.Property, e.Type)
	if len(e.Suggestions) > 0 {
		msg += " (did you mean " + strings.Join(e.Suggestions, ", ") + "?)"
	}

	return msg
}

// MissingConstructorError reports that a type declares no zero-argument
// constructor. It is recoverable; probe with HasDefaultConstructor first.
type MissingConstructorError struct {
	Type string
}

func (e *MissingConstructorError) Error() string {
	return fmt.Sprintf("no default constructor for type %s", e.Type)
}
