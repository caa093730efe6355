package shunt

import (
	"errors"
	"testing"
)

func TestYieldsTo(t *testing.T) {
	op := func(s string) lexToken { return lexToken{text: s, kind: tokenOp} }
	cases := []struct {
		op1, op2 string
		want     bool
	}{
		{"+", "+", true},
		{"+", "-", true},
		{"-", "+", true},
		{"+", "*", true},
		{"*", "+", false},
		{"*", "/", true},
		{"/", "*", true},
		{"+", "^", true},
		{"*", "^", true},
		{"^", "*", false},
		{"^", "+", false},
		// ^ is right-associative, so it does not yield to itself.
		{"^", "^", false},
	}
	for _, c := range cases {
		got, err := yieldsTo(op(c.op1), op(c.op2))
		if err != nil {
			t.Errorf("yieldsTo(%q, %q): unexpected error %v", c.op1, c.op2, err)
		}
		if got != c.want {
			t.Errorf("yieldsTo(%q, %q): want %v, got %v", c.op1, c.op2, c.want, got)
		}
	}
}

func TestYieldsToBrackets(t *testing.T) {
	open := lexToken{text: "(", kind: tokenOpen}
	plus := lexToken{text: "+", kind: tokenOp}
	if got, err := yieldsTo(plus, open); got || err != nil {
		t.Errorf("yieldsTo(+, open): want false, <nil>; got %v, %v", got, err)
	}
	if got, err := yieldsTo(open, plus); got || err != nil {
		t.Errorf("yieldsTo(open, +): want false, <nil>; got %v, %v", got, err)
	}
}

func TestYieldsToUnknown(t *testing.T) {
	bad := lexToken{text: "%", kind: tokenOp, pos: 3}
	plus := lexToken{text: "+", kind: tokenOp}
	for _, c := range [][2]lexToken{{bad, plus}, {plus, bad}} {
		_, err := yieldsTo(c[0], c[1])
		var oerr *OperatorError
		if !errors.As(err, &oerr) {
			t.Fatalf("yieldsTo(%q, %q): want OperatorError, got %v", c[0].text, c[1].text, err)
		}
		if oerr.Operator != "%" || oerr.Col != 3 {
			t.Errorf("wrong error fields: %+v", oerr)
		}
	}
}
