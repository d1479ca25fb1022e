package descriptor

//go:generate go tool stringer -type=Kind -output=kind_string.go

// Kind is the coarse classification of a type, shared by all hosts.
type Kind int

const (
	// KindObject is the universal top type every unresolvable type
	// expression erases to.
	KindObject Kind = iota

	KindBool
	KindInt
	KindUint
	KindFloat
	KindString
	KindStruct
	KindInterface
	KindArray
	KindMap
	KindFunc
	KindPointer
	KindOther

	// KindTotal is a constant that represents the total number of kinds defined
	KindTotal = int(iota)
)
