// Package shunt evaluates plain arithmetic expressions.
//
// An expression is numbers, the binary operators + - * / ^, unary sign
// prefixes, and parentheses. The decimal separator may be written . or ,
// and spaces are ignored everywhere else. Parse converts the infix input
// to its postfix (reverse Polish) form with the shunting-yard algorithm,
// and Eval reduces that form to a float64. A Context evaluates the same
// postfix form in arbitrary precision instead.
package shunt
