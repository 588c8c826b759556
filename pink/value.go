package pink

type ValueKind int

const (
	KindNull ValueKind = iota
	KindBool
	KindNumber
	KindString
	KindChar
	KindList
	KindFunction
	KindNative
)

// Value is a dynamically typed runtime value. The zero Value is null.
type Value struct {
	kind ValueKind
	data any
}

// List is a mutable sequence shared by reference between every holder.
type List struct {
	Items []Value
}

// NativeFunc implements a built-in. Arity has already been checked when it runs.
type NativeFunc func(exec *Execution, args []Value) (Value, error)

// NativeFunction is a built-in callable.
type NativeFunction struct {
	name    string
	minArgs int
	maxArgs int
	fn      NativeFunc
}

// Function is a user-defined function closed over the scope it was declared in.
type Function struct {
	name    string
	params  []Token
	body    []Statement
	closure *Env
	pos     Position
}
