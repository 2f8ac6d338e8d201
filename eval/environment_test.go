package eval

import "testing"

func TestEnvironment(t *testing.T) {
	root := newEnv(nil)
	root.set("x", Integer(1))
	root.set("y", Integer(2))

	child := newEnv(root)
	child.set("x", Integer(10))

	tests := []struct {
		env      *environment
		name     string
		expected Value
	}{
		{root, "x", Integer(1)},
		{root, "y", Integer(2)},
		{child, "x", Integer(10)},
		{child, "y", Integer(2)},
		{root, "z", nil},
		{child, "z", nil},
	}
	for i, test := range tests {
		v, ok := test.env.get(test.name)
		if test.expected == nil {
			if ok {
				t.Errorf("tests[%d] (%q): expected no binding, got=%s", i, test.name, v)
			}
			continue
		}
		if !ok || v != test.expected {
			t.Errorf("tests[%d] (%q): expected=%s, got=%v", i, test.name, test.expected, v)
		}
	}

	// rebinding in the parent is visible through the child.
	root.set("y", Integer(3))
	if v, _ := child.get("y"); v != Integer(3) {
		t.Errorf("expected y=3 through child, got=%v", v)
	}
}
