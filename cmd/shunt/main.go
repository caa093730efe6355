package main

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"github.com/tessellane/shunt"
)

var (
	inname string
	verb   string
	lines  bool
	echo   bool
	prec   uint
)

var rootCmd = &cobra.Command{
	Use:   "shunt [expression ...]",
	Short: "Evaluate arithmetic expressions",
	Long: `shunt evaluates plain arithmetic expressions: numbers, the binary
operators + - * / ^, unary signs, and parentheses. The decimal separator
may be written . or , and spaces are ignored.

Expressions are read from the arguments, or from stdin or the -in file
when no arguments are given.`,
	RunE:          run,
	SilenceUsage:  true,
	SilenceErrors: true,
}

func init() {
	rootCmd.Flags().StringVar(&inname, "in", "", "input file (default stdin if no args given)")
	rootCmd.Flags().StringVar(&verb, "fmt", "%g", "result formatting verb")
	rootCmd.Flags().BoolVarP(&lines, "lines", "n", false, "parse separate input lines as separate expressions")
	rootCmd.Flags().BoolVar(&echo, "echo", false, "print postfix forms")
	rootCmd.Flags().UintVarP(&prec, "prec", "p", 0, "evaluate in arbitrary precision with this many bits")
}

func run(cmd *cobra.Command, args []string) error {
	var ins []io.RuneScanner
	f, err := infile(inname, len(args) == 0)
	if err != nil {
		return err
	}
	if f != nil {
		ins = append(ins, f)
	}
	for _, arg := range args {
		ins = append(ins, strings.NewReader(arg))
	}

	var opts []shunt.ParseOption
	if lines {
		opts = append(opts, shunt.StopOn('\n'))
	}
	var exprs []*shunt.Expr
	for _, in := range ins {
		for {
			// First check whether we're done with the input.
			if _, _, err := in.ReadRune(); err != nil {
				if err == io.EOF {
					break
				}
				return err
			}
			in.UnreadRune()
			e, err := shunt.Parse(in, opts...)
			if err != nil {
				var empty *shunt.EmptyExpressionError
				if lines && errors.As(err, &empty) {
					// Blank line.
					continue
				}
				return err
			}
			exprs = append(exprs, e)
		}
	}

	var ctx *shunt.Context
	if prec > 0 {
		ctx = shunt.NewContext(shunt.Prec(prec))
	}
	verb += "\n"
	for _, e := range exprs {
		if echo {
			fmt.Printf("%v : ", e)
		}
		if ctx != nil {
			r := ctx.Eval(e)
			if r == nil {
				fmt.Println(ctx.Err())
				continue
			}
			fmt.Printf(verb, r)
			continue
		}
		r, err := e.Eval()
		if err != nil {
			fmt.Println(err)
			continue
		}
		fmt.Printf(verb, r)
	}
	return nil
}

func infile(inname string, std bool) (io.RuneScanner, error) {
	switch {
	case inname != "" && inname != "-":
		in, err := os.Open(inname)
		if err != nil {
			return nil, err
		}
		return bufio.NewReader(in), nil
	case inname == "-", std:
		return bufio.NewReader(os.Stdin), nil
	}
	return nil, nil
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
