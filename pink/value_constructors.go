package pink

func NewNull() Value              { return Value{kind: KindNull} }
func NewBool(b bool) Value        { return Value{kind: KindBool, data: b} }
func NewNumber(f float64) Value   { return Value{kind: KindNumber, data: f} }
func NewString(s string) Value    { return Value{kind: KindString, data: s} }
func NewChar(r rune) Value        { return Value{kind: KindChar, data: r} }
func NewList(items []Value) Value { return Value{kind: KindList, data: &List{Items: items}} }

// NewListRef wraps an existing list so both values share it.
func NewListRef(l *List) Value { return Value{kind: KindList, data: l} }

// NewNative wraps fn as a callable accepting between minArgs and maxArgs
// arguments. A negative maxArgs means no upper bound.
func NewNative(name string, minArgs, maxArgs int, fn NativeFunc) Value {
	return Value{kind: KindNative, data: &NativeFunction{name: name, minArgs: minArgs, maxArgs: maxArgs, fn: fn}}
}

func newFunction(name string, params []Token, body []Statement, closure *Env, pos Position) Value {
	return Value{kind: KindFunction, data: &Function{name: name, params: params, body: body, closure: closure, pos: pos}}
}

// literalValue converts a parsed literal into a runtime value.
func literalValue(lit any) Value {
	switch v := lit.(type) {
	case nil:
		return NewNull()
	case bool:
		return NewBool(v)
	case float64:
		return NewNumber(v)
	case string:
		return NewString(v)
	case rune:
		return NewChar(v)
	default:
		return NewNull()
	}
}
