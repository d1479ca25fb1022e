package descriptor

// Method is a single method record as reported by a host.
type Method interface {
	Name() string

	// ParameterTypes returns the runtime parameter types in order,
	// excluding any receiver.
	ParameterTypes() []TypeDescriptor

	// ReturnType returns the runtime return type, or nil for void methods.
	ReturnType() TypeDescriptor

	// GenericReturnType returns the declared return type expression.
	// Hosts without generic metadata return a ConcreteExpr of ReturnType.
	GenericReturnType() TypeExpr

	// GenericParameterTypes returns the declared parameter type
	// expressions, index-aligned with ParameterTypes.
	GenericParameterTypes() []TypeExpr

	// Declaring returns the type that declares this method.
	Declaring() TypeDescriptor

	// Bridge reports whether the method is a compiler-generated
	// synthetic/bridge thunk. Bridge methods never take part in
	// accessor resolution.
	Bridge() bool

	// Invoke calls the method on target with the given arguments.
	Invoke(target any, args []any) (any, error)
}

// Field is a single field record as reported by a host.
type Field interface {
	Name() string
	Type() TypeDescriptor

	// GenericType returns the declared field type expression.
	// Hosts without generic metadata return a ConcreteExpr of Type.
	GenericType() TypeExpr

	// Declaring returns the type that declares this field.
	Declaring() TypeDescriptor

	// Final reports whether the field is unmodifiable.
	Final() bool

	// Static reports whether the field is shared across instances rather
	// than stored per instance.
	Static() bool

	// Read returns the field value from target, overriding accessibility
	// restrictions where the host allows it.
	Read(target any) (any, error)

	// Write stores value into the field of target, overriding
	// accessibility restrictions where the host allows it.
	Write(target any, value any) error
}

// Constructor is a constructor record. Only zero-argument constructors are
// ever invoked by this module.
type Constructor interface {
	ParameterTypes() []TypeDescriptor

	// New creates an instance. Constructors with parameters, and
	// constructors of non-invocable hosts, return an error.
	New() (any, error)
}
