/*
File    : snlc/cmd/snlex/main.go
Author  : yurzi
Contact : github.com/yurzi/snlc

Command snlex is the auxiliary lexer tool: given an SNL source file it
prints one tokenized entry per line. With -i it drops into an
interactive readline-backed loop that tokenizes each entered line live.
With -ast it parses one complete program from standard input and
prints the resulting AST's shape, without emission.
*/
package main

import (
	"bufio"
	"flag"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/chzyer/readline"
	"github.com/fatih/color"

	"github.com/yurzi/snlc/lexer"
	"github.com/yurzi/snlc/parser"
)

var (
	blueColor   = color.New(color.FgBlue)
	yellowColor = color.New(color.FgYellow)
	redColor    = color.New(color.FgRed)
	greenColor  = color.New(color.FgGreen)
	cyanColor   = color.New(color.FgCyan)
)

const (
	banner = "snlex — the SNL tokenizer"
	prompt = "snlex >>> "
)

func main() {
	interactive := flag.Bool("i", false, "start an interactive tokenizing REPL")
	ast := flag.Bool("ast", false, "parse a complete program from stdin and print its AST shape")
	flag.Parse()

	switch {
	case *interactive:
		runRepl(os.Stdin, os.Stdout)
	case *ast:
		runAST(os.Stdin, os.Stdout)
	default:
		runFile(flag.Arg(0))
	}
}

func runFile(inputPath string) {
	if inputPath == "" {
		redColor.Fprintln(os.Stderr, "Error: no input file specified")
		os.Exit(1)
	}
	src, err := os.ReadFile(inputPath)
	if err != nil {
		redColor.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(2)
	}
	for _, t := range lexer.Tokenize(string(src)) {
		fmt.Println(t.String())
	}
}

// runRepl tokenizes each entered line live, echoing its tokens in place
// of evaluating it.
func runRepl(r io.Reader, w io.Writer) {
	blueColor.Fprintln(w, strings.Repeat("-", len(banner)))
	greenColor.Fprintln(w, banner)
	blueColor.Fprintln(w, strings.Repeat("-", len(banner)))

	rl, err := readline.New(prompt)
	if err != nil {
		panic(err)
	}
	defer rl.Close()

	for {
		line, err := rl.Readline()
		if err != nil {
			w.Write([]byte("Good Bye!\n"))
			return
		}
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		if line == ".exit" {
			w.Write([]byte("Good Bye!\n"))
			return
		}
		rl.SaveHistory(line)

		for _, t := range lexer.Tokenize(line) {
			yellowColor.Fprintln(w, t.String())
		}
	}
}

// runAST parses a single complete program from r and prints its node
// shape to w — a quick structural debug aid, with no emission involved.
// A lone expression or statement is rejected as a syntax error.
func runAST(r io.Reader, w io.Writer) {
	src, err := io.ReadAll(bufio.NewReader(r))
	if err != nil {
		redColor.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(2)
	}

	prog, err := parser.Parse(lexer.Tokenize(string(src)))
	if err != nil {
		redColor.Fprintf(os.Stderr, "%s\n", err)
		os.Exit(1)
	}

	printAST(w, prog)
}

func printAST(w io.Writer, prog *parser.Program) {
	p := &astPrinter{w: w}
	prog.Accept(p)
}
