package member

import (
	"strings"

	"property-reflector/descriptor"
)

// Enumerate collects the distinct methods visible on t, in unspecified
// order.
//
// The walk starts at t and follows Superclass links until it reaches the
// host's object top type (exclusive). Each level contributes its own
// declared methods plus the declared methods of its directly implemented
// interfaces; interfaces reached only through an abstract supertype are
// covered when that supertype's level is visited. Bridge methods are
// skipped entirely and the first occurrence of a signature wins, which is
// the most-derived one since the walk starts at the leaf.
func Enumerate(p descriptor.Provider, t descriptor.TypeDescriptor) []descriptor.Method {
	unique := make(map[string]descriptor.Method)
	objectID := descriptor.Identity(p.ObjectType())

	for current := t; current != nil && descriptor.Identity(current) != objectID; current = current.Superclass() {
		addUnique(unique, p.DeclaredMethods(current))

		for _, iface := range current.Interfaces() {
			addUnique(unique, p.DeclaredMethods(iface))
		}
	}

	methods := make([]descriptor.Method, 0, len(unique))
	for _, m := range unique {
		methods = append(methods, m)
	}

	return methods
}

func addUnique(unique map[string]descriptor.Method, methods []descriptor.Method) {
	for _, m := range methods {
		if m.Bridge() {
			continue
		}

		sig := Signature(m)
		if _, known := unique[sig]; !known {
			unique[sig] = m
		}
	}
}

// Signature returns the deduplication key of a method:
// "returnType#name:param1,param2". Two methods with equal signatures
// declared at different levels are the same member (an override).
func Signature(m descriptor.Method) string {
	var sb strings.Builder

	if ret := m.ReturnType(); ret != nil {
		sb.WriteString(ret.Name())
	} else {
		sb.WriteString("void")
	}

	sb.WriteByte('#')
	sb.WriteString(m.Name())

	for i, param := range m.ParameterTypes() {
		if i == 0 {
			sb.WriteByte(':')
		} else {
			sb.WriteByte(',')
		}

		sb.WriteString(param.Name())
	}

	return sb.String()
}
