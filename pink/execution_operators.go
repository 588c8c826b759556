package pink

import (
	"math"
	"strings"
)

const maxRangeLength = 10_000_000

func unaryOp(op Token, right Value) (Value, error) {
	switch op.Type {
	case tokenMinus:
		if right.Kind() != KindNumber {
			return NewNull(), errorf(KindTypeError, "Operand of '-' must be a number, got %s.", right.Kind())
		}
		return NewNumber(-right.Number()), nil
	case tokenBang, tokenNot:
		return NewBool(!right.Truthy()), nil
	}
	return NewNull(), errorf(KindRuntimeError, "unsupported unary operator %s", op.Lexeme)
}

func binaryOp(op Token, left, right Value) (Value, error) {
	switch op.Type {
	case tokenPlus, tokenConcat:
		return addValues(op, left, right)
	case tokenMinus, tokenAsterisk, tokenSlash, tokenPercent:
		if left.Kind() != KindNumber || right.Kind() != KindNumber {
			return NewNull(), errorf(KindTypeError, "Operands of '%s' must be numbers, got %s and %s.", op.Lexeme, left.Kind(), right.Kind())
		}
		a, b := left.Number(), right.Number()
		switch op.Type {
		case tokenMinus:
			return NewNumber(a - b), nil
		case tokenAsterisk:
			return NewNumber(a * b), nil
		case tokenSlash:
			return NewNumber(a / b), nil
		default:
			return NewNumber(math.Mod(a, b)), nil
		}
	case tokenEQ:
		return NewBool(left.Equal(right)), nil
	case tokenNotEQ:
		return NewBool(!left.Equal(right)), nil
	case tokenLT, tokenLTE, tokenGT, tokenGTE:
		if left.Kind() == KindNumber && right.Kind() == KindNumber {
			return NewBool(compareNumbers(op.Type, left.Number(), right.Number())), nil
		}
		cmp, err := compareValues(op.Lexeme, left, right)
		if err != nil {
			return NewNull(), err
		}
		switch op.Type {
		case tokenLT:
			return NewBool(cmp < 0), nil
		case tokenLTE:
			return NewBool(cmp <= 0), nil
		case tokenGT:
			return NewBool(cmp > 0), nil
		default:
			return NewBool(cmp >= 0), nil
		}
	}
	return NewNull(), errorf(KindRuntimeError, "unsupported binary operator %s", op.Lexeme)
}

// addValues implements + and &: numeric addition, string concatenation when
// either side is a string, and list concatenation into a new list.
func addValues(op Token, left, right Value) (Value, error) {
	switch {
	case left.Kind() == KindNumber && right.Kind() == KindNumber:
		return NewNumber(left.Number() + right.Number()), nil
	case left.Kind() == KindString || right.Kind() == KindString:
		return NewString(left.String() + right.String()), nil
	case left.Kind() == KindList && right.Kind() == KindList:
		a, b := left.List().Items, right.List().Items
		items := make([]Value, 0, len(a)+len(b))
		items = append(items, a...)
		items = append(items, b...)
		return NewList(items), nil
	}
	return NewNull(), errorf(KindTypeError, "Operands of '%s' must be two numbers, two lists, or include a string; got %s and %s.", op.Lexeme, left.Kind(), right.Kind())
}

// compareNumbers keeps IEEE semantics: every comparison with NaN is false.
func compareNumbers(op TokenType, a, b float64) bool {
	switch op {
	case tokenLT:
		return a < b
	case tokenLTE:
		return a <= b
	case tokenGT:
		return a > b
	default:
		return a >= b
	}
}

// compareValues orders two chars, two strings, or two numbers (NaN excluded).
func compareValues(op string, left, right Value) (int, error) {
	switch {
	case left.Kind() == KindNumber && right.Kind() == KindNumber:
		a, b := left.Number(), right.Number()
		switch {
		case a < b:
			return -1, nil
		case a > b:
			return 1, nil
		}
		return 0, nil
	case left.Kind() == KindChar && right.Kind() == KindChar:
		return int(left.Char()) - int(right.Char()), nil
	case left.Kind() == KindString && right.Kind() == KindString:
		return strings.Compare(left.Str(), right.Str()), nil
	}
	return 0, errorf(KindTypeError, "Operands of '%s' must be two numbers, two chars or two strings, got %s and %s.", op, left.Kind(), right.Kind())
}

// makeRange builds the inclusive list start..end. Without a step it moves
// by 1 toward end.
func makeRange(start, end Value, step *Value) (Value, error) {
	switch {
	case start.Kind() == KindNumber && end.Kind() == KindNumber:
		return numberRange(start.Number(), end.Number(), step)
	case start.Kind() == KindChar && end.Kind() == KindChar:
		return charRange(start.Char(), end.Char(), step)
	}
	return NewNull(), errorf(KindTypeError, "Range bounds must be two numbers or two chars, got %s and %s.", start.Kind(), end.Kind())
}

func rangeStep(from, to float64, step *Value) (float64, error) {
	if step == nil {
		if to < from {
			return -1, nil
		}
		return 1, nil
	}
	if step.Kind() != KindNumber {
		return 0, errorf(KindTypeError, "Range step must be a number, got %s.", step.Kind())
	}
	s := step.Number()
	switch {
	case s == 0 || math.IsNaN(s):
		return 0, errorf(KindRangeError, "Range step cannot be zero.")
	case to > from && s < 0:
		return 0, errorf(KindRangeError, "Range step %s moves away from the end of an ascending range.", formatNumber(s))
	case to < from && s > 0:
		return 0, errorf(KindRangeError, "Range step %s moves away from the end of a descending range.", formatNumber(s))
	}
	return s, nil
}

func rangeLength(from, to, step float64) (int, error) {
	if math.IsNaN(from) || math.IsNaN(to) || math.IsInf(from, 0) || math.IsInf(to, 0) {
		return 0, errorf(KindRangeError, "Range bounds must be finite.")
	}
	n := math.Floor((to-from)/step+1e-9) + 1
	if n > maxRangeLength {
		return 0, errorf(KindRangeError, "Range of %s elements is too large.", formatNumber(n))
	}
	return int(n), nil
}

func numberRange(from, to float64, stepVal *Value) (Value, error) {
	step, err := rangeStep(from, to, stepVal)
	if err != nil {
		return NewNull(), err
	}
	n, err := rangeLength(from, to, step)
	if err != nil {
		return NewNull(), err
	}
	items := make([]Value, n)
	for i := range items {
		v := from + float64(i)*step
		// The length tolerance can overshoot by rounding error; never pass end.
		if (step > 0 && v > to) || (step < 0 && v < to) {
			v = to
		}
		items[i] = NewNumber(v)
	}
	return NewList(items), nil
}

func charRange(from, to rune, stepVal *Value) (Value, error) {
	step, err := rangeStep(float64(from), float64(to), stepVal)
	if err != nil {
		return NewNull(), err
	}
	if step != math.Trunc(step) {
		return NewNull(), errorf(KindRangeError, "Char range step must be a whole number, got %s.", formatNumber(step))
	}
	n, err := rangeLength(float64(from), float64(to), step)
	if err != nil {
		return NewNull(), err
	}
	items := make([]Value, n)
	for i := range items {
		items[i] = NewChar(from + rune(i)*rune(step))
	}
	return NewList(items), nil
}

// indexValue selects target[index]. A list index, typically produced by a
// range, gathers every selected element.
func indexValue(target, index Value) (Value, error) {
	var length int
	switch target.Kind() {
	case KindList:
		length = len(target.List().Items)
	case KindString:
		length = len([]rune(target.Str()))
	default:
		return NewNull(), errorf(KindTypeError, "Only lists and strings can be indexed, got %s.", target.Kind())
	}

	if index.Kind() == KindList {
		positions := index.List().Items
		idx := make([]int, len(positions))
		for i, p := range positions {
			n, err := checkIndex(p, length)
			if err != nil {
				return NewNull(), err
			}
			idx[i] = n
		}
		if target.Kind() == KindString {
			runes := []rune(target.Str())
			out := make([]rune, len(idx))
			for i, n := range idx {
				out[i] = runes[n]
			}
			return NewString(string(out)), nil
		}
		items := target.List().Items
		out := make([]Value, len(idx))
		for i, n := range idx {
			out[i] = items[n]
		}
		return NewList(out), nil
	}

	n, err := checkIndex(index, length)
	if err != nil {
		return NewNull(), err
	}
	if target.Kind() == KindString {
		return NewChar([]rune(target.Str())[n]), nil
	}
	return target.List().Items[n], nil
}

func checkIndex(index Value, length int) (int, error) {
	if index.Kind() != KindNumber {
		return 0, errorf(KindTypeError, "Index must be a number, got %s.", index.Kind())
	}
	f := index.Number()
	if f != math.Trunc(f) {
		return 0, errorf(KindIndexError, "Index must be a whole number, got %s.", formatNumber(f))
	}
	if f < 0 || f >= float64(length) {
		return 0, errorf(KindIndexError, "Index %s out of bounds for length %d.", formatNumber(f), length)
	}
	return int(f), nil
}

// contains implements `needle in haystack`.
func contains(haystack, needle Value) (bool, error) {
	switch haystack.Kind() {
	case KindList:
		for _, item := range haystack.List().Items {
			if item.Equal(needle) {
				return true, nil
			}
		}
		return false, nil
	case KindString:
		switch needle.Kind() {
		case KindString:
			return strings.Contains(haystack.Str(), needle.Str()), nil
		case KindChar:
			return strings.ContainsRune(haystack.Str(), needle.Char()), nil
		}
		return false, errorf(KindTypeError, "Only strings and chars can be found in a string, got %s.", needle.Kind())
	}
	return false, errorf(KindTypeError, "Right operand of 'in' must be a list or string, got %s.", haystack.Kind())
}
