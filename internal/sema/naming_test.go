package sema

import "testing"

func TestCasingPredicates(t *testing.T) {
	for name, want := range map[string]bool{"foo": true, "foo_bar": true, "x1": true, "fooBar": false, "Foo": false} {
		if got := isSnakeCase(name); got != want {
			t.Errorf("isSnakeCase(%q) = %v", name, got)
		}
	}
	for name, want := range map[string]bool{"Foo": true, "FooBar": true, "foo": false, "Foo_Bar": false, "": false} {
		if got := isPascalCase(name); got != want {
			t.Errorf("isPascalCase(%q) = %v", name, got)
		}
	}
}

func TestSuggest(t *testing.T) {
	n := newNamer()
	cases := []struct {
		in   string
		want casing
		out  string
	}{
		{"foo", pascalCase, "Foo"},
		{"foo_bar", pascalCase, "FooBar"},
		{"_private_thing", pascalCase, "PrivateThing"},
		{"myVar", snakeCase, "my_var"},
		{"FooBar", snakeCase, "foo_bar"},
	}
	for _, tc := range cases {
		if got := n.suggest(tc.in, tc.want); got != tc.out {
			t.Errorf("suggest(%q) = %q, want %q", tc.in, got, tc.out)
		}
	}
}
