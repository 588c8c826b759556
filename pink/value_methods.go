package pink

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

func (k ValueKind) String() string {
	switch k {
	case KindNull:
		return "null"
	case KindBool:
		return "boolean"
	case KindNumber:
		return "number"
	case KindString:
		return "string"
	case KindChar:
		return "char"
	case KindList:
		return "list"
	case KindFunction:
		return "function"
	case KindNative:
		return "native function"
	default:
		return fmt.Sprintf("kind(%d)", int(k))
	}
}

// String renders the value the way print shows it. Lists are not expanded;
// use join for that.
func (v Value) String() string {
	switch v.kind {
	case KindNull:
		return "null"
	case KindBool:
		if v.Bool() {
			return "true"
		}
		return "false"
	case KindNumber:
		return formatNumber(v.Number())
	case KindString:
		return v.Str()
	case KindChar:
		return string(v.Char())
	case KindList:
		return fmt.Sprintf("<list %d>", len(v.List().Items))
	case KindFunction:
		return "<fn " + v.data.(*Function).Name() + ">"
	case KindNative:
		return "<native fn " + v.data.(*NativeFunction).Name() + ">"
	default:
		return fmt.Sprintf("<%s>", v.kind)
	}
}

// Inspect renders a value for diagnostics: strings and chars are quoted and
// lists show their elements.
func (v Value) Inspect() string {
	switch v.kind {
	case KindString:
		return strconv.Quote(v.Str())
	case KindChar:
		return strconv.QuoteRune(v.Char())
	case KindList:
		items := v.List().Items
		parts := make([]string, len(items))
		for i, item := range items {
			parts[i] = item.Inspect()
		}
		return "[" + strings.Join(parts, "; ") + "]"
	default:
		return v.String()
	}
}

// Truthy reports whether v counts as true. Only null and false are falsy.
func (v Value) Truthy() bool {
	switch v.kind {
	case KindNull:
		return false
	case KindBool:
		return v.Bool()
	default:
		return true
	}
}

// Equal compares values of matching kind. Lists compare element-wise and
// callables by identity; mismatched kinds are never equal.
func (v Value) Equal(other Value) bool {
	if v.kind != other.kind {
		return false
	}
	switch v.kind {
	case KindNull:
		return true
	case KindBool:
		return v.Bool() == other.Bool()
	case KindNumber:
		return v.Number() == other.Number()
	case KindString:
		return v.Str() == other.Str()
	case KindChar:
		return v.Char() == other.Char()
	case KindList:
		a, b := v.List(), other.List()
		if a == b {
			return true
		}
		if len(a.Items) != len(b.Items) {
			return false
		}
		for i := range a.Items {
			if !a.Items[i].Equal(b.Items[i]) {
				return false
			}
		}
		return true
	case KindFunction, KindNative:
		return v.data == other.data
	default:
		return false
	}
}

// formatNumber renders integral values without a fractional part.
func formatNumber(f float64) string {
	switch {
	case math.IsNaN(f):
		return "NaN"
	case math.IsInf(f, 1):
		return "Infinity"
	case math.IsInf(f, -1):
		return "-Infinity"
	case math.Abs(f) >= 1e21:
		return strconv.FormatFloat(f, 'g', -1, 64)
	default:
		return strconv.FormatFloat(f, 'f', -1, 64)
	}
}
