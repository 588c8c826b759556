package pink

import (
	"math"
	"strconv"
	"strings"
	"unicode/utf8"
)

func registerNatives(in *Interpreter) {
	in.globals.Define("Pi", NewNumber(math.Pi))
	in.globals.Define("E", NewNumber(math.E))

	registerNumericNatives(in)

	in.RegisterNative("toNumber", 1, 1, builtinToNumber)
	in.RegisterNative("toBoolean", 1, 1, builtinToBoolean)
	in.RegisterNative("toString", 1, 1, builtinToString)
	in.RegisterNative("toChar", 1, 1, builtinToChar)
	in.RegisterNative("toOrd", 1, 1, builtinToOrd)
	in.RegisterNative("length", 1, 1, builtinLength)
	in.RegisterNative("charAt", 2, 2, builtinCharAt)

	registerListNatives(in)
	registerIONatives(in)
}

func argNumber(name string, args []Value, i int) (float64, error) {
	if args[i].Kind() != KindNumber {
		return 0, errorf(KindTypeError, "%s expects a number as argument %d, got %s.", name, i+1, args[i].Kind())
	}
	return args[i].Number(), nil
}

func argList(name string, args []Value, i int) (*List, error) {
	if args[i].Kind() != KindList {
		return nil, errorf(KindTypeError, "%s expects a list as argument %d, got %s.", name, i+1, args[i].Kind())
	}
	return args[i].List(), nil
}

func argCallable(name string, args []Value, i int) (Value, error) {
	if args[i].Callable() == nil {
		return NewNull(), errorf(KindTypeError, "%s expects a function as argument %d, got %s.", name, i+1, args[i].Kind())
	}
	return args[i], nil
}

// argIndex reads a whole-number index in [0, limit].
func argIndex(name string, args []Value, i, limit int) (int, error) {
	f, err := argNumber(name, args, i)
	if err != nil {
		return 0, err
	}
	if f != math.Trunc(f) {
		return 0, errorf(KindIndexError, "%s expects a whole-number index, got %s.", name, formatNumber(f))
	}
	if f < 0 || f > float64(limit) {
		return 0, errorf(KindIndexError, "%s index %s out of bounds for length %d.", name, formatNumber(f), limit)
	}
	return int(f), nil
}

func builtinToNumber(exec *Execution, args []Value) (Value, error) {
	v := args[0]
	switch v.Kind() {
	case KindNumber:
		return v, nil
	case KindBool:
		if v.Bool() {
			return NewNumber(1), nil
		}
		return NewNumber(0), nil
	case KindString, KindChar:
		text := strings.TrimSpace(v.String())
		f, err := strconv.ParseFloat(text, 64)
		if err != nil {
			return NewNull(), errorf(KindTypeError, "toNumber cannot convert %s to a number.", v.Inspect())
		}
		return NewNumber(f), nil
	}
	return NewNull(), errorf(KindTypeError, "toNumber cannot convert %s to a number.", v.Kind())
}

func builtinToBoolean(exec *Execution, args []Value) (Value, error) {
	v := args[0]
	switch v.Kind() {
	case KindBool:
		return v, nil
	case KindNumber:
		return NewBool(v.Number() != 0), nil
	case KindString:
		b, err := strconv.ParseBool(strings.TrimSpace(v.Str()))
		if err != nil {
			return NewNull(), errorf(KindTypeError, "toBoolean cannot convert %s to a boolean.", v.Inspect())
		}
		return NewBool(b), nil
	case KindNull:
		return NewBool(false), nil
	}
	return NewNull(), errorf(KindTypeError, "toBoolean cannot convert %s to a boolean.", v.Kind())
}

func builtinToString(exec *Execution, args []Value) (Value, error) {
	return NewString(args[0].String()), nil
}

func builtinToChar(exec *Execution, args []Value) (Value, error) {
	v := args[0]
	switch v.Kind() {
	case KindChar:
		return v, nil
	case KindNumber:
		f := v.Number()
		if f != math.Trunc(f) || f < 0 || f > utf8.MaxRune || !utf8.ValidRune(rune(f)) {
			return NewNull(), errorf(KindRangeError, "toChar cannot convert %s to a character.", formatNumber(f))
		}
		return NewChar(rune(f)), nil
	case KindString:
		if utf8.RuneCountInString(v.Str()) == 1 {
			r, _ := utf8.DecodeRuneInString(v.Str())
			return NewChar(r), nil
		}
		return NewNull(), errorf(KindTypeError, "toChar expects a single-character string, got %s.", v.Inspect())
	}
	return NewNull(), errorf(KindTypeError, "toChar cannot convert %s to a character.", v.Kind())
}

func builtinToOrd(exec *Execution, args []Value) (Value, error) {
	v := args[0]
	switch v.Kind() {
	case KindChar:
		return NewNumber(float64(v.Char())), nil
	case KindString:
		if utf8.RuneCountInString(v.Str()) == 1 {
			r, _ := utf8.DecodeRuneInString(v.Str())
			return NewNumber(float64(r)), nil
		}
	}
	return NewNull(), errorf(KindTypeError, "toOrd expects a character, got %s.", v.Kind())
}

func builtinLength(exec *Execution, args []Value) (Value, error) {
	v := args[0]
	if v.Kind() == KindList {
		return NewNumber(float64(len(v.List().Items))), nil
	}
	return NewNumber(float64(utf8.RuneCountInString(v.String()))), nil
}

func builtinCharAt(exec *Execution, args []Value) (Value, error) {
	if args[0].Kind() != KindString {
		return NewNull(), errorf(KindTypeError, "charAt expects a string as argument 1, got %s.", args[0].Kind())
	}
	runes := []rune(args[0].Str())
	if len(runes) == 0 {
		return NewNull(), errorf(KindIndexError, "charAt called on an empty string.")
	}
	i, err := argIndex("charAt", args, 1, len(runes)-1)
	if err != nil {
		return NewNull(), err
	}
	return NewChar(runes[i]), nil
}
