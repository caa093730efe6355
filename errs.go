package shunt

import "strconv"

// EmptyExpressionError is an error indicating input with no tokens.
type EmptyExpressionError struct {
	// Col is the position at which the input ended.
	Col int
}

func (err *EmptyExpressionError) Error() string {
	return errpos(err.Col, "empty expression")
}

func (err *EmptyExpressionError) Pos() int {
	return err.Col
}

// BracketError is an error indicating mismatched parentheses in the
// input. It implements InputError.
type BracketError struct {
	// Col is the position of the offending parenthesis.
	Col int
	// Left is an opening parenthesis that is never closed.
	Left string
	// Right is a closing parenthesis with no matching open one.
	Right string
}

func (err *BracketError) Error() string {
	if err.Left == "" {
		return errpos(err.Col, "mismatched parentheses: "+err.Right+" with no matching (")
	}
	return errpos(err.Col, "mismatched parentheses: "+err.Left+" is never closed")
}

func (err *BracketError) Pos() int {
	return err.Col
}

// OperatorError is an error indicating an operator token that is not in
// the operator table. It implements InputError.
type OperatorError struct {
	// Col is the position of the operator.
	Col int
	// Operator is the token that was not understood.
	Operator string
}

func (err *OperatorError) Error() string {
	return errpos(err.Col, "unknown operator "+strconv.Quote(err.Operator))
}

func (err *OperatorError) Pos() int {
	return err.Col
}

// NumberError is an error indicating a numeric literal that does not
// parse fully as a float or does not fit the numeric representation. It
// implements InputError.
type NumberError struct {
	// Col is the position of the literal.
	Col int
	// Text is the literal as tokenized.
	Text string
	// Range indicates the literal parsed but overflowed.
	Range bool
}

func (err *NumberError) Error() string {
	if err.Range {
		return errpos(err.Col, "number out of range: "+strconv.Quote(err.Text))
	}
	return errpos(err.Col, "invalid number: "+strconv.Quote(err.Text))
}

func (err *NumberError) Pos() int {
	return err.Col
}

// OperandError is an error indicating an operator reached with fewer
// than two values on the operand stack. It implements InputError.
type OperandError struct {
	// Col is the position of the operator.
	Col int
	// Op is the operator symbol.
	Op string
}

func (err *OperandError) Error() string {
	return errpos(err.Col, "not enough operands for "+strconv.Quote(err.Op))
}

func (err *OperandError) Pos() int {
	return err.Col
}

// ExtraOperandError is an error indicating evaluation ended with more
// than one value on the operand stack.
type ExtraOperandError struct {
	// N is the number of values left on the stack.
	N int
}

func (err *ExtraOperandError) Error() string {
	return "too many operands: " + strconv.Itoa(err.N) + " values remain"
}

// DivideByZeroError is an error indicating a division whose divisor is
// exactly zero. It implements InputError.
type DivideByZeroError struct {
	// Col is the position of the division operator.
	Col int
}

func (err *DivideByZeroError) Error() string {
	return errpos(err.Col, "division by zero")
}

func (err *DivideByZeroError) Pos() int {
	return err.Col
}

// DomainError is an error from an operation evaluated outside its domain
// in arbitrary precision, where there is no NaN to produce. It
// implements InputError.
type DomainError struct {
	// Col is the position of the operator.
	Col int
	// Op is the operator symbol.
	Op string
}

func (err *DomainError) Error() string {
	return errpos(err.Col, "operand outside domain of "+err.Op)
}

func (err *DomainError) Pos() int {
	return err.Col
}

// errpos is a shortcut to create an error message with a position.
func errpos(pos int, msg string) string {
	return strconv.Itoa(pos) + ": " + msg
}

// InputError is an error with position information. Every error
// resulting from invalid input other than ExtraOperandError implements
// InputError.
type InputError interface {
	error
	// Pos returns the position of the error as the number of runes up to
	// and including the start of the token that caused the error.
	Pos() int
}

var (
	_ InputError = (*EmptyExpressionError)(nil)
	_ InputError = (*BracketError)(nil)
	_ InputError = (*OperatorError)(nil)
	_ InputError = (*NumberError)(nil)
	_ InputError = (*OperandError)(nil)
	_ InputError = (*DivideByZeroError)(nil)
	_ InputError = (*DomainError)(nil)
	_ InputError = (*LexError)(nil)
)
