package shunt

import (
	"strconv"
	"unicode"
)

// ParseOption is an option for parsing.
type ParseOption interface {
	parseOption(parsectx) parsectx
}

// parsectx holds general data for parsing.
type parsectx struct {
	// wseof is a string containing the whitespace characters that trigger
	// an EOF token from the lexer.
	wseof string
}

type eofopt struct {
	ws string
}

// StopOn tells the parser to treat a list of whitespace characters as
// ending the expression, e.g. so that separate input lines parse as
// separate expressions. Each rune must be a whitespace codepoint.
//
// StopOn overrides the effect of any previous StopOn in the parsing
// options. With no arguments, StopOn produces the default termination
// behavior, which is to parse to EOF.
func StopOn(chars ...rune) ParseOption {
	var o eofopt
	v := make([]rune, 0, len(chars))
	have := func(r rune) bool {
		for _, c := range v {
			if r == c {
				return true
			}
		}
		return false
	}
	for _, r := range chars {
		if !unicode.IsSpace(r) {
			panic("shunt: cannot stop on " + strconv.QuoteRune(r))
		}
		if have(r) {
			continue
		}
		v = append(v, r)
	}
	o.ws = string(v)
	return &o
}

func (o *eofopt) parseOption(p parsectx) parsectx {
	p.wseof = o.ws
	return p
}
