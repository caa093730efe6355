package shunt

import (
	"errors"
	"io"
	"math"
	"strconv"
	"strings"
)

// Eval evaluates the postfix sequence with float64 arithmetic and
// returns the result. Division by a zero divisor is an error; an
// exponentiation outside the domain of the power function follows
// math.Pow and yields NaN without an error.
func (e *Expr) Eval() (float64, error) {
	stack := make([]float64, 0, 4)
	for _, tok := range e.rpn {
		if tok.kind == tokenNum {
			v, err := strconv.ParseFloat(tok.text, 64)
			if err != nil {
				return 0, &NumberError{Col: tok.pos, Text: tok.text, Range: errors.Is(err, strconv.ErrRange)}
			}
			stack = append(stack, v)
			continue
		}
		if len(stack) < 2 {
			return 0, &OperandError{Col: tok.pos, Op: tok.text}
		}
		num1 := stack[len(stack)-1]
		num2 := stack[len(stack)-2]
		stack = stack[:len(stack)-1]
		var r float64
		switch opOf(tok.text) {
		case opAdd:
			r = num2 + num1
		case opSub:
			r = num2 - num1
		case opMul:
			r = num2 * num1
		case opDiv:
			if num1 == 0 {
				return 0, &DivideByZeroError{Col: tok.pos}
			}
			r = num2 / num1
		case opPow:
			r = math.Pow(num2, num1)
		default:
			return 0, &OperatorError{Col: tok.pos, Operator: tok.text}
		}
		stack[len(stack)-1] = r
	}
	// A non-empty sequence reduces to at least one value; every operator
	// with missing operands has already failed.
	if len(stack) != 1 {
		return 0, &ExtraOperandError{N: len(stack)}
	}
	return stack[0], nil
}

// Eval is a shortcut to parse an expression and evaluate it.
func Eval(src io.RuneScanner, opts ...ParseOption) (float64, error) {
	e, err := Parse(src, opts...)
	if err != nil {
		return 0, err
	}
	return e.Eval()
}

// EvalString is a shortcut to parse and evaluate a string expression.
func EvalString(src string, opts ...ParseOption) (float64, error) {
	return Eval(strings.NewReader(src), opts...)
}
