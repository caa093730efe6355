package shunt

// opProp describes how tightly an operator binds.
type opProp struct {
	// prec is the priority. Higher binds tighter.
	prec int8
	// left indicates left-associativity.
	left bool
}

// opTable is the fixed priority and associativity of each operator.
var opTable = map[string]opProp{
	"+": {1, true},
	"-": {1, true},
	"*": {2, true},
	"/": {2, true},
	"^": {3, false},
}

// yieldsTo reports whether op must yield to top, i.e. whether top is
// applied before op is pushed onto the operator stack. Parentheses are
// boundary markers and are never compared.
func yieldsTo(op, top lexToken) (bool, error) {
	if op.kind != tokenOp || top.kind != tokenOp {
		return false, nil
	}
	p1, ok := opTable[op.text]
	if !ok {
		return false, &OperatorError{Col: op.pos, Operator: op.text}
	}
	p2, ok := opTable[top.text]
	if !ok {
		return false, &OperatorError{Col: top.pos, Operator: top.text}
	}
	if p1.prec == p2.prec {
		// Left-associative operators of equal priority yield; ^ does
		// not, so repeated ^ binds right to left.
		return p1.left, nil
	}
	return p1.prec < p2.prec, nil
}

type opKind int8

const (
	opNone opKind = iota
	opAdd
	opSub
	opMul
	opDiv
	opPow
)

// opOf maps an operator symbol to its kind. Unknown symbols map to
// opNone.
func opOf(sym string) opKind {
	switch sym {
	case "+":
		return opAdd
	case "-":
		return opSub
	case "*":
		return opMul
	case "/":
		return opDiv
	case "^":
		return opPow
	default:
		return opNone
	}
}
