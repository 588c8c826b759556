package pink

import "sort"

// Env is one lexical scope. Lookups walk outward through parent scopes.
type Env struct {
	parent *Env
	values map[string]Value
}

func newEnv(parent *Env) *Env {
	return &Env{parent: parent, values: make(map[string]Value)}
}

// Define binds name in this scope, replacing any existing binding here.
func (e *Env) Define(name string, val Value) {
	e.values[name] = val
}

// Get resolves name in this scope or the nearest enclosing one.
func (e *Env) Get(name string) (Value, error) {
	for env := e; env != nil; env = env.parent {
		if val, ok := env.values[name]; ok {
			return val, nil
		}
	}
	return NewNull(), errorf(KindUndefinedVariable, "Undefined variable '%s'.", name)
}

// Assign rebinds an existing variable in the nearest scope that defines it.
// It never creates a binding.
func (e *Env) Assign(name string, val Value) error {
	for env := e; env != nil; env = env.parent {
		if _, ok := env.values[name]; ok {
			env.values[name] = val
			return nil
		}
	}
	return errorf(KindUndefinedVariable, "Undefined variable '%s'.", name)
}

// Names lists every name visible from this scope, sorted.
func (e *Env) Names() []string {
	seen := make(map[string]struct{})
	var names []string
	for env := e; env != nil; env = env.parent {
		for name := range env.values {
			if _, dup := seen[name]; dup {
				continue
			}
			seen[name] = struct{}{}
			names = append(names, name)
		}
	}
	sort.Strings(names)
	return names
}

func (e *Env) cloneShallow() *Env {
	clone := newEnv(e.parent)
	for k, v := range e.values {
		clone.values[k] = v
	}
	return clone
}
