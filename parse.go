package shunt

import (
	"io"
	"strings"
)

// Expr = Num | Neg | Add | Sub | Mul | Div | Pow | '(' Expr ')'
// Neg = ('+' | '-') Num
// Add = Expr '+' Expr
// Sub = Expr '-' Expr
// Mul = Expr '*' Expr
// Div = Expr '/' Expr
// Pow = Expr '^' Expr

// Expr is a parsed expression in postfix order, ready to evaluate.
type Expr struct {
	// rpn is the postfix token sequence.
	rpn []lexToken
}

// Parse converts an infix expression to its postfix form so it can be
// evaluated. The given options are applied in order.
func Parse(src io.RuneScanner, opts ...ParseOption) (*Expr, error) {
	var p parsectx
	for _, opt := range opts {
		p = opt.parseOption(p)
	}
	scan := lex(src)
	var out, ops []lexToken
	for {
		tok, err := scan.next(p.wseof)
		if err != nil {
			return nil, err
		}
		switch tok.kind {
		case tokenNum:
			out = append(out, tok)
		case tokenOpen:
			ops = append(ops, tok)
		case tokenClose:
			for {
				if len(ops) == 0 {
					return nil, &BracketError{Col: tok.pos, Right: ")"}
				}
				top := ops[len(ops)-1]
				ops = ops[:len(ops)-1]
				if top.kind == tokenOpen {
					break
				}
				out = append(out, top)
			}
		case tokenOp:
			for len(ops) > 0 {
				top := ops[len(ops)-1]
				if top.kind == tokenOpen {
					break
				}
				y, err := yieldsTo(tok, top)
				if err != nil {
					return nil, err
				}
				if !y {
					break
				}
				out = append(out, top)
				ops = ops[:len(ops)-1]
			}
			ops = append(ops, tok)
		case tokenEOF:
			for len(ops) > 0 {
				top := ops[len(ops)-1]
				ops = ops[:len(ops)-1]
				if top.kind == tokenOpen {
					return nil, &BracketError{Col: top.pos, Left: "("}
				}
				out = append(out, top)
			}
			if len(out) == 0 {
				return nil, &EmptyExpressionError{Col: tok.pos}
			}
			return &Expr{rpn: out}, nil
		default:
			panic("shunt: unknown token: " + tok.String())
		}
	}
}

// String renders the postfix token sequence in left-to-right evaluation
// order.
func (e *Expr) String() string {
	var b strings.Builder
	for i, tok := range e.rpn {
		if i > 0 {
			b.WriteByte(' ')
		}
		b.WriteString(tok.text)
	}
	return b.String()
}
