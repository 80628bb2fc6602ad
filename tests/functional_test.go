// Package tests holds end-to-end compile fixtures: whole S-language
// programs compiled through pkg/slc and checked against the expected
// Lua fragments they must contain, mirroring how the teacher's own
// functional_test.go drives source fixtures through the compiled
// binary rather than unit-testing individual internal functions.
package tests

import (
	"strings"
	"testing"

	"github.com/funvibe/funxy/pkg/slc"
)

func TestFunctional(t *testing.T) {
	cases := []struct {
		name   string
		source string
		want   []string
	}{
		{
			name:   "arithmetic",
			source: `(+ 1 2)`,
			want:   []string{"return (1 + 2)"},
		},
		{
			name:   "nested arithmetic",
			source: `(* (+ 1 2) (- 3))`,
			want:   []string{"1 + 2", "0 - 3"},
		},
		{
			name:   "fn with recursion",
			source: `(fn fact [n] (*branch (= n 0) 1 *branch else (* n (fact (- n 1)))))`,
			want:   []string{"local function", "if ((n) == (0)) then", "else", "end"},
		},
		{
			name:   "var and set sequence",
			source: `(block (var x 10) (set x (+ x 1)) x)`,
			want:   []string{"do", "local ", " = 10", "end"},
		},
		{
			name:   "for loop",
			source: `(block (*for i [1 10] (*break)))`,
			want:   []string{"for ", " = ", "1", "10", "break", "end"},
		},
		{
			name:   "while loop",
			source: `(block (*while true (*break)))`,
			want:   []string{"while true do", "break", "end"},
		},
		{
			name:   "do hoists a value",
			source: `(+ (do (var a 1) (+ a 2)) 1)`,
			want:   []string{"local ", "do", "end", "return"},
		},
		{
			name:   "table literal",
			source: `{1 "a" 2 "b"}`,
			want:   []string{`{"a", "b"}`},
		},
		{
			name:   "access",
			source: `(. (fn get [] {}) "k")`,
			want:   []string{"["},
		},
		{
			name:   "values spreads into a call",
			source: `(print (values 1 2 3))`,
			want:   []string{"print(1, 2, 3)"},
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := slc.Compile(tc.source, slc.Options{})
			if err != nil {
				t.Fatalf("Compile(%q): %v", tc.source, err)
			}
			for _, want := range tc.want {
				if !strings.Contains(got, want) {
					t.Errorf("Compile(%q) = %q, want it to contain %q", tc.source, got, want)
				}
			}
		})
	}
}
