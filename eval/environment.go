package eval

// environment is one scope of the scope chain. A child never outlives
// being reachable from a closure or a running call, and parents never
// point at children, so chains cannot form cycles.
type environment struct {
	store map[string]Value
	outer *environment
}

func newEnv(outer *environment) *environment {
	return &environment{
		store: map[string]Value{},
		outer: outer,
	}
}

// get gets the given name from the environment, traversing
// the outer environments if it is not found.
func (e *environment) get(name string) (Value, bool) {
	for env := e; env != nil; env = env.outer {
		if v, ok := env.store[name]; ok {
			return v, true
		}
	}
	return nil, false
}

// set binds name in this scope only, shadowing any outer binding.
func (e *environment) set(name string, v Value) {
	e.store[name] = v
}
