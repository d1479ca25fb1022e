package accessor

import (
	"fmt"
	"strings"

	"property-reflector/descriptor"
)

// resolveGetterConflict folds all getter candidates for one property into
// a single winner. Candidates with equal return types are legal only for
// booleans, where the is-prefixed accessor is preferred; otherwise the
// narrower (covariant) return type wins and unrelated types are fatal.
func resolveGetterConflict(prop string, candidates []descriptor.Method) (descriptor.Method, error) {
	var winner descriptor.Method

	for _, candidate := range candidates {
		if winner == nil {
			winner = candidate

			continue
		}

		winnerType := winner.ReturnType()
		candidateType := candidate.ReturnType()

		switch {
		case descriptor.Same(candidateType, winnerType):
			if candidateType == nil || candidateType.Kind() != descriptor.KindBool {
				return nil, &AmbiguityError{
					Property:  prop,
					Declaring: declaringName(winner),
					Reason:    "overloaded getters with identical non-boolean return types",
				}
			}

			if isPrefixed(candidate.Name()) {
				winner = candidate
			}

		case assignable(candidateType, winnerType):
			// winner's return type is the narrower one, keep it

		case assignable(winnerType, candidateType):
			winner = candidate

		default:
			return nil, &AmbiguityError{
				Property:  prop,
				Declaring: declaringName(winner),
				Reason: fmt.Sprintf("overloaded getters with unrelated return types %s and %s",
					winnerType, candidateType),
			}
		}
	}

	return winner, nil
}

// resolveSetterConflict folds all setter candidates for one property.
// A candidate whose parameter type equals the already-resolved getter type
// is the unconditional best match and overrides any ambiguity recorded
// earlier in the scan; otherwise the narrower parameter type wins and a
// pending ambiguity is kept until the scan ends.
func resolveSetterConflict(prop string, candidates []descriptor.Method, getterType descriptor.TypeDescriptor) (descriptor.Method, error) {
	var (
		match   descriptor.Method
		pending *AmbiguityError
	)

	for _, setter := range candidates {
		if getterType != nil && descriptor.Same(setter.ParameterTypes()[0], getterType) {
			return setter, nil
		}

		if pending != nil {
			continue
		}

		better, err := pickBetterSetter(match, setter, prop)
		if err != nil {
			match = nil
			pending = err

			continue
		}

		match = better
	}

	if match == nil && pending != nil {
		return nil, pending
	}

	return match, nil
}

// pickBetterSetter keeps the setter with the narrower parameter type.
func pickBetterSetter(current, candidate descriptor.Method, prop string) (descriptor.Method, *AmbiguityError) {
	if current == nil {
		return candidate, nil
	}

	currentType := current.ParameterTypes()[0]
	candidateType := candidate.ParameterTypes()[0]

	if assignable(currentType, candidateType) {
		return candidate, nil
	}

	if assignable(candidateType, currentType) {
		return current, nil
	}

	return nil, &AmbiguityError{
		Property:  prop,
		Declaring: declaringName(candidate),
		Reason: fmt.Sprintf("overloaded setters with unrelated parameter types %s and %s",
			currentType, candidateType),
	}
}

// assignable reports whether a value of type from can be assigned to
// type to, tolerating nil descriptors (void returns).
func assignable(to, from descriptor.TypeDescriptor) bool {
	if to == nil || from == nil {
		return false
	}

	return to.AssignableFrom(from)
}

func isPrefixed(name string) bool {
	return strings.HasPrefix(name, "is") || strings.HasPrefix(name, "Is")
}

func declaringName(m descriptor.Method) string {
	if d := m.Declaring(); d != nil {
		return d.String()
	}

	return "<unknown>"
}
