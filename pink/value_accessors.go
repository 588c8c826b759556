package pink

func (v Value) Kind() ValueKind { return v.kind }

func (v Value) IsNull() bool { return v.kind == KindNull }

func (v Value) Bool() bool {
	if v.kind == KindBool {
		return v.data.(bool)
	}
	return false
}

func (v Value) Number() float64 {
	if v.kind == KindNumber {
		return v.data.(float64)
	}
	return 0
}

func (v Value) Str() string {
	if v.kind == KindString {
		return v.data.(string)
	}
	return ""
}

func (v Value) Char() rune {
	if v.kind == KindChar {
		return v.data.(rune)
	}
	return 0
}

func (v Value) List() *List {
	if v.kind != KindList {
		return nil
	}
	return v.data.(*List)
}

// Callable returns the function behind a function or native value.
func (v Value) Callable() Callable {
	switch v.kind {
	case KindFunction:
		return v.data.(*Function)
	case KindNative:
		return v.data.(*NativeFunction)
	default:
		return nil
	}
}
