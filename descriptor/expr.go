package descriptor

// TypeExpr is a declared type expression: either an already concrete type
// or a generic shape that still needs resolution against an owning type.
type TypeExpr interface {
	typeExpr()
}

// ConcreteExpr is a type expression that is already a runtime type.
type ConcreteExpr struct {
	Type TypeDescriptor
}

// ParameterizedExpr is a generic type applied to type arguments,
// e.g. List[string]. Resolution erases it to its raw type.
type ParameterizedExpr struct {
	Raw  TypeDescriptor
	Args []TypeExpr
}

// ArrayExpr is an array whose element type is itself a type expression,
// e.g. []T for a type variable T.
type ArrayExpr struct {
	Elem TypeExpr
}

// VariableExpr is a naked type variable. It resolves through the owning
// type's bindings, or erases to the object top type.
type VariableExpr struct {
	Name string
}

func (ConcreteExpr) typeExpr()      {}
func (ParameterizedExpr) typeExpr() {}
func (ArrayExpr) typeExpr()         {}
func (VariableExpr) typeExpr()      {}
