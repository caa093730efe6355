//go:build go1.18
// +build go1.18

package shunt_test

import (
	"testing"

	"github.com/tessellane/shunt"
)

func FuzzEvalString(f *testing.F) {
	f.Add("1+2")
	f.Add("-(2+3)")
	f.Add("8-3-2")
	f.Add("1/0")
	f.Fuzz(func(t *testing.T, s string) {
		shunt.EvalString(s)
	})
}
