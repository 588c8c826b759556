package pink

import (
	"slices"
	"strings"
)

func registerListNatives(in *Interpreter) {
	in.RegisterNative("add", 2, 2, builtinAdd)
	in.RegisterNative("insert", 3, 3, builtinInsert)
	in.RegisterNative("remove", 2, 2, builtinRemove)
	in.RegisterNative("clear", 1, 1, builtinClear)
	in.RegisterNative("assign", 3, 3, builtinAssign)
	in.RegisterNative("sort", 1, 1, builtinSort)
	in.RegisterNative("reverse", 1, 1, builtinReverse)
	in.RegisterNative("sorted", 1, 1, builtinSorted)
	in.RegisterNative("reversed", 1, 1, builtinReversed)

	in.RegisterNative("isEmpty", 1, 1, builtinIsEmpty)
	in.RegisterNative("size", 1, 1, builtinSize)
	in.RegisterNative("contains", 2, 2, builtinContains)
	in.RegisterNative("indexOf", 2, 2, builtinIndexOf)
	in.RegisterNative("join", 2, 2, builtinJoin)

	in.RegisterNative("foreach", 2, 2, builtinForeach)
	in.RegisterNative("map", 2, 2, builtinMap)
	in.RegisterNative("filter", 2, 2, builtinFilter)
}

func builtinAdd(exec *Execution, args []Value) (Value, error) {
	list, err := argList("add", args, 0)
	if err != nil {
		return NewNull(), err
	}
	list.Items = append(list.Items, args[1])
	return NewNull(), nil
}

// builtinInsert is insert(list, value, index); index may equal the length.
func builtinInsert(exec *Execution, args []Value) (Value, error) {
	list, err := argList("insert", args, 0)
	if err != nil {
		return NewNull(), err
	}
	i, err := argIndex("insert", args, 2, len(list.Items))
	if err != nil {
		return NewNull(), err
	}
	list.Items = slices.Insert(list.Items, i, args[1])
	return NewNull(), nil
}

func builtinRemove(exec *Execution, args []Value) (Value, error) {
	list, err := argList("remove", args, 0)
	if err != nil {
		return NewNull(), err
	}
	if len(list.Items) == 0 {
		return NewNull(), errorf(KindIndexError, "remove called on an empty list.")
	}
	i, err := argIndex("remove", args, 1, len(list.Items)-1)
	if err != nil {
		return NewNull(), err
	}
	list.Items = slices.Delete(list.Items, i, i+1)
	return NewNull(), nil
}

func builtinClear(exec *Execution, args []Value) (Value, error) {
	list, err := argList("clear", args, 0)
	if err != nil {
		return NewNull(), err
	}
	list.Items = list.Items[:0]
	return NewNull(), nil
}

// builtinAssign is assign(list, index, value).
func builtinAssign(exec *Execution, args []Value) (Value, error) {
	list, err := argList("assign", args, 0)
	if err != nil {
		return NewNull(), err
	}
	if len(list.Items) == 0 {
		return NewNull(), errorf(KindIndexError, "assign called on an empty list.")
	}
	i, err := argIndex("assign", args, 1, len(list.Items)-1)
	if err != nil {
		return NewNull(), err
	}
	list.Items[i] = args[2]
	return NewNull(), nil
}

// sortValues orders a list of numbers, chars or strings. Mixed or
// unorderable elements are a type error and leave the list untouched.
func sortValues(name string, items []Value) error {
	var sortErr error
	slices.SortStableFunc(items, func(a, b Value) int {
		cmp, err := compareValues("<", a, b)
		if err != nil && sortErr == nil {
			sortErr = errorf(KindTypeError, "%s cannot order %s and %s.", name, a.Kind(), b.Kind())
		}
		return cmp
	})
	return sortErr
}

func builtinSort(exec *Execution, args []Value) (Value, error) {
	list, err := argList("sort", args, 0)
	if err != nil {
		return NewNull(), err
	}
	items := slices.Clone(list.Items)
	if err := sortValues("sort", items); err != nil {
		return NewNull(), err
	}
	copy(list.Items, items)
	return NewNull(), nil
}

func builtinSorted(exec *Execution, args []Value) (Value, error) {
	list, err := argList("sorted", args, 0)
	if err != nil {
		return NewNull(), err
	}
	items := slices.Clone(list.Items)
	if err := sortValues("sorted", items); err != nil {
		return NewNull(), err
	}
	return NewList(items), nil
}

func builtinReverse(exec *Execution, args []Value) (Value, error) {
	list, err := argList("reverse", args, 0)
	if err != nil {
		return NewNull(), err
	}
	slices.Reverse(list.Items)
	return NewNull(), nil
}

func builtinReversed(exec *Execution, args []Value) (Value, error) {
	list, err := argList("reversed", args, 0)
	if err != nil {
		return NewNull(), err
	}
	items := slices.Clone(list.Items)
	slices.Reverse(items)
	return NewList(items), nil
}

func builtinIsEmpty(exec *Execution, args []Value) (Value, error) {
	list, err := argList("isEmpty", args, 0)
	if err != nil {
		return NewNull(), err
	}
	return NewBool(len(list.Items) == 0), nil
}

func builtinSize(exec *Execution, args []Value) (Value, error) {
	list, err := argList("size", args, 0)
	if err != nil {
		return NewNull(), err
	}
	return NewNumber(float64(len(list.Items))), nil
}

func builtinContains(exec *Execution, args []Value) (Value, error) {
	list, err := argList("contains", args, 0)
	if err != nil {
		return NewNull(), err
	}
	return NewBool(slices.ContainsFunc(list.Items, args[1].Equal)), nil
}

// builtinIndexOf returns the first matching position, or -1.
func builtinIndexOf(exec *Execution, args []Value) (Value, error) {
	list, err := argList("indexOf", args, 0)
	if err != nil {
		return NewNull(), err
	}
	return NewNumber(float64(slices.IndexFunc(list.Items, args[1].Equal))), nil
}

// builtinJoin renders [a<sep> b<sep> c]: the separator is followed by a space.
func builtinJoin(exec *Execution, args []Value) (Value, error) {
	list, err := argList("join", args, 0)
	if err != nil {
		return NewNull(), err
	}
	parts := make([]string, len(list.Items))
	for i, item := range list.Items {
		parts[i] = item.String()
	}
	return NewString("[" + strings.Join(parts, args[1].String()+" ") + "]"), nil
}

func listAndCallback(name string, args []Value) (*List, Value, error) {
	list, err := argList(name, args, 0)
	if err != nil {
		return nil, NewNull(), err
	}
	fn, err := argCallable(name, args, 1)
	if err != nil {
		return nil, NewNull(), err
	}
	return list, fn, nil
}

func builtinForeach(exec *Execution, args []Value) (Value, error) {
	list, fn, err := listAndCallback("foreach", args)
	if err != nil {
		return NewNull(), err
	}
	for _, item := range slices.Clone(list.Items) {
		if _, err := exec.Call(fn, item); err != nil {
			return NewNull(), err
		}
	}
	return NewNull(), nil
}

func builtinMap(exec *Execution, args []Value) (Value, error) {
	list, fn, err := listAndCallback("map", args)
	if err != nil {
		return NewNull(), err
	}
	src := slices.Clone(list.Items)
	out := make([]Value, 0, len(src))
	for _, item := range src {
		val, err := exec.Call(fn, item)
		if err != nil {
			return NewNull(), err
		}
		out = append(out, val)
	}
	return NewList(out), nil
}

func builtinFilter(exec *Execution, args []Value) (Value, error) {
	list, fn, err := listAndCallback("filter", args)
	if err != nil {
		return NewNull(), err
	}
	var out []Value
	for _, item := range slices.Clone(list.Items) {
		keep, err := exec.Call(fn, item)
		if err != nil {
			return NewNull(), err
		}
		if keep.Truthy() {
			out = append(out, item)
		}
	}
	return NewList(out), nil
}
