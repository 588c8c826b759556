package pink

import "math"

func registerNumericNatives(in *Interpreter) {
	unary := map[string]func(float64) float64{
		"sqrt":  math.Sqrt,
		"sin":   math.Sin,
		"cos":   math.Cos,
		"tan":   math.Tan,
		"cot":   func(x float64) float64 { return 1 / math.Tan(x) },
		"exp":   math.Exp,
		"abs":   math.Abs,
		"floor": math.Floor,
		"ceil":  math.Ceil,
		"round": math.RoundToEven,
	}
	for name, fn := range unary {
		in.RegisterNative(name, 1, 1, numericNative(name, fn))
	}

	in.RegisterNative("pow", 2, 2, builtinPow)
	in.RegisterNative("log", 1, 2, builtinLog)
	in.RegisterNative("min", 2, 2, builtinMin)
	in.RegisterNative("max", 2, 2, builtinMax)
	in.RegisterNative("random", 2, 2, builtinRandom)
}

func numericNative(name string, fn func(float64) float64) NativeFunc {
	return func(exec *Execution, args []Value) (Value, error) {
		x, err := argNumber(name, args, 0)
		if err != nil {
			return NewNull(), err
		}
		return NewNumber(fn(x)), nil
	}
}

func twoNumbers(name string, args []Value) (float64, float64, error) {
	a, err := argNumber(name, args, 0)
	if err != nil {
		return 0, 0, err
	}
	b, err := argNumber(name, args, 1)
	if err != nil {
		return 0, 0, err
	}
	return a, b, nil
}

func builtinPow(exec *Execution, args []Value) (Value, error) {
	base, exp, err := twoNumbers("pow", args)
	if err != nil {
		return NewNull(), err
	}
	return NewNumber(math.Pow(base, exp)), nil
}

// builtinLog is the natural logarithm, or log to the given base.
func builtinLog(exec *Execution, args []Value) (Value, error) {
	x, err := argNumber("log", args, 0)
	if err != nil {
		return NewNull(), err
	}
	if len(args) == 1 {
		return NewNumber(math.Log(x)), nil
	}
	base, err := argNumber("log", args, 1)
	if err != nil {
		return NewNull(), err
	}
	return NewNumber(math.Log(x) / math.Log(base)), nil
}

func builtinMin(exec *Execution, args []Value) (Value, error) {
	a, b, err := twoNumbers("min", args)
	if err != nil {
		return NewNull(), err
	}
	return NewNumber(math.Min(a, b)), nil
}

func builtinMax(exec *Execution, args []Value) (Value, error) {
	a, b, err := twoNumbers("max", args)
	if err != nil {
		return NewNull(), err
	}
	return NewNumber(math.Max(a, b)), nil
}

// builtinRandom returns a number in [min, max).
func builtinRandom(exec *Execution, args []Value) (Value, error) {
	lo, hi, err := twoNumbers("random", args)
	if err != nil {
		return NewNull(), err
	}
	return NewNumber(exec.interp.random.Float64()*(hi-lo) + lo), nil
}
