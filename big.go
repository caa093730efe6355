package shunt

import (
	"math/big"
	"strconv"
	"strings"

	"github.com/zephyrtronium/bigfloat"
)

// Context is a context for evaluating expressions in arbitrary
// precision. It is not safe to use a Context concurrently.
type Context struct {
	stack []*big.Float
	nums  map[string]*big.Float
	prec  uint
	err   error
}

// ContextOption is an option used when creating a context.
type ContextOption interface {
	ctxOption()
}

type precopt uint

func (precopt) ctxOption() {}

// Prec sets the precision of calculations.
func Prec(prec uint) ContextOption {
	return precopt(prec)
}

// NewContext creates a new evaluation context. If no precision is given,
// the default is 64.
func NewContext(opts ...ContextOption) *Context {
	ctx := Context{nums: make(map[string]*big.Float), prec: 64}
	return ctx.Clone(opts...)
}

// Eval evaluates a parsed expression and returns the result. If an error
// occurs, e.g. a division by zero, then the result is nil and ctx.Err
// returns the error.
func (ctx *Context) Eval(e *Expr) *big.Float {
	switch len(ctx.stack) {
	case 0: // do nothing
	case 1:
		// Don't clobber the previous result.
		ctx.stack[0] = new(big.Float).SetPrec(ctx.prec)
		ctx.stack = ctx.stack[:0]
	default:
		// A previous evaluation failed partway; drop its operands.
		ctx.stack = ctx.stack[:0]
	}
	ctx.err = ctx.eval(e)
	if ctx.err != nil {
		return nil
	}
	return ctx.Result()
}

func (ctx *Context) eval(e *Expr) error {
	for _, tok := range e.rpn {
		if tok.kind == tokenNum {
			v, err := ctx.num(tok)
			if err != nil {
				return err
			}
			ctx.push().Set(v)
			continue
		}
		if len(ctx.stack) < 2 {
			return &OperandError{Col: tok.pos, Op: tok.text}
		}
		r := ctx.pop()
		l := ctx.top()
		switch opOf(tok.text) {
		case opAdd:
			l.Add(l, r)
		case opSub:
			l.Sub(l, r)
		case opMul:
			l.Mul(l, r)
		case opDiv:
			if r.Sign() == 0 {
				return &DivideByZeroError{Col: tok.pos}
			}
			// Guard against inf/inf, which has no answer.
			if l.IsInf() && r.IsInf() {
				return &DomainError{Col: tok.pos, Op: "/"}
			}
			l.Quo(l, r)
		case opPow:
			// big.Float has no NaN, so the domain cases that flow to NaN
			// in float64 are errors here.
			// TODO: allow negative base with integer exponent
			if l.Signbit() {
				return &DomainError{Col: tok.pos, Op: "^"}
			}
			bigfloat.Pow(l, l, r)
		default:
			return &OperatorError{Col: tok.pos, Operator: tok.text}
		}
	}
	if len(ctx.stack) != 1 {
		return &ExtraOperandError{N: len(ctx.stack)}
	}
	return nil
}

// Result returns the result obtained after evaluating an expression.
// Panics if ctx has not been used to evaluate an expression. Returns nil
// if an error occurred during evaluation.
func (ctx *Context) Result() *big.Float {
	if ctx.err != nil {
		return nil
	}
	switch len(ctx.stack) {
	case 0:
		panic("shunt: Context.Result called before evaluating any expression")
	case 1:
		return ctx.stack[0]
	default:
		panic("shunt: inconsistent stack: " + strconv.Itoa(len(ctx.stack)) + " items")
	}
}

// Err returns the first error that occurred while evaluating the last
// expression with ctx, if any.
func (ctx *Context) Err() error {
	return ctx.err
}

// Prec returns the precision to which values are computed in the context.
func (ctx *Context) Prec() uint {
	return ctx.prec
}

// Clone creates a copy of a context and applies options to it. The
// returned context has no Result and is safe to use to evaluate an
// expression.
func (ctx *Context) Clone(opts ...ContextOption) *Context {
	n := Context{
		stack: make([]*big.Float, 0, cap(ctx.stack)),
		nums:  make(map[string]*big.Float, len(ctx.nums)),
		prec:  ctx.prec,
	}
	// First, check for a precision setting. Loop backward so we apply the
	// last precision.
	for i := len(opts) - 1; i >= 0; i-- {
		if p, ok := opts[i].(precopt); ok {
			n.prec = uint(p)
			break
		}
	}
	// Copy cached numbers only if the new precision is no higher than the
	// old, so that we always use the precision we need.
	if n.prec <= ctx.prec {
		for k, v := range ctx.nums {
			n.nums[k] = new(big.Float).SetPrec(n.prec).Set(v)
		}
	}
	return &n
}

// push ensures a settable value on the stack.
func (ctx *Context) push() *big.Float {
	if len(ctx.stack) < cap(ctx.stack) {
		ctx.stack = ctx.stack[:len(ctx.stack)+1]
		if ctx.stack[len(ctx.stack)-1] == nil {
			ctx.stack[len(ctx.stack)-1] = new(big.Float).SetPrec(ctx.prec)
		}
	} else {
		ctx.stack = append(ctx.stack, new(big.Float).SetPrec(ctx.prec))
	}
	return ctx.stack[len(ctx.stack)-1]
}

// pop removes the top from the stack and returns it. The returned value
// may be modified by future evaluation steps.
func (ctx *Context) pop() *big.Float {
	r := ctx.stack[len(ctx.stack)-1]
	ctx.stack = ctx.stack[:len(ctx.stack)-1]
	return r
}

// top is a shortcut to get the top element of the stack.
func (ctx *Context) top() *big.Float {
	return ctx.stack[len(ctx.stack)-1]
}

// num gets a possibly cached number from a literal token.
func (ctx *Context) num(tok lexToken) (*big.Float, error) {
	if r := ctx.nums[tok.text]; r != nil {
		return r, nil
	}
	r, _, err := new(big.Float).SetPrec(ctx.prec).Parse(tok.text, 10)
	switch {
	case err == nil: // do nothing
	case err.Error() == "exponent overflow",
		strings.HasSuffix(err.Error(), ": value out of range"):
		// There isn't realistically any better way to detect this error.
		// N.B. tok.text is non-empty, otherwise we couldn't overflow.
		r = new(big.Float).SetInf(tok.text[0] == '-')
	default:
		return nil, &NumberError{Col: tok.pos, Text: tok.text}
	}
	ctx.nums[tok.text] = r
	return r, nil
}
