/*
File    : snlc/cmd/snlc/main.go
Author  : yurzi
Contact : github.com/yurzi/snlc

Command snlc is the SNL compiler driver: it reads an SNL source file,
runs it through the lexer, the pre-emit token rewrite bridge, the
parser, and the emitter, and writes the translated Rust artifact to
src/bin/<basename>.rs under the current working directory.

Usage:

	snlc <path-to-snl-file>
	snlc --version
*/
package main

import (
	"errors"
	"os"
	"path/filepath"
	"strings"

	"github.com/fatih/color"

	"github.com/yurzi/snlc/emit"
	"github.com/yurzi/snlc/lexer"
	"github.com/yurzi/snlc/parser"
	"github.com/yurzi/snlc/rewrite"
)

// VERSION and AUTHOR mirror the original tool's clap-configured identity
// strings (.version("0.1"), .author("yurzi")).
const (
	VERSION = "0.1"
	AUTHOR  = "yurzi"
)

var (
	redColor    = color.New(color.FgRed)
	yellowColor = color.New(color.FgYellow)
	cyanColor   = color.New(color.FgCyan)
)

func main() {
	if len(os.Args) < 2 {
		redColor.Fprintln(os.Stderr, "Error: no input file specified")
		os.Exit(1)
	}
	switch os.Args[1] {
	case "--version", "-version", "-v":
		showVersion()
		os.Exit(0)
	}
	inputPath := os.Args[1]

	basename, err := deriveBasename(inputPath)
	if err != nil {
		redColor.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	src, err := os.ReadFile(inputPath)
	if err != nil {
		redColor.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(2)
	}

	artifact := compile(string(src))

	targetPath := filepath.Join("src", "bin", basename+".rs")
	if err := os.MkdirAll(filepath.Dir(targetPath), 0o755); err != nil {
		redColor.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(2)
	}
	if err := os.WriteFile(targetPath, []byte(artifact), 0o644); err != nil {
		redColor.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(2)
	}

	cyanColor.Fprintf(os.Stdout, "wrote %s\n", targetPath)
}

// deriveBasename takes the final path component of inputPath and drops
// everything from its first '.' on, matching the reference tool's own
// split('/').last().split('.').next() semantics rather than
// filepath.Ext — both agree on names with a single extension, but a name
// such as "prog.snl.bak" yields "prog" here, not "prog.snl".
func deriveBasename(inputPath string) (string, error) {
	name := filepath.Base(inputPath)
	if name == "." || name == string(filepath.Separator) || name == "" {
		return "", errInvalidPath
	}
	if i := strings.IndexByte(name, '.'); i >= 0 {
		name = name[:i]
	}
	if name == "" {
		return "", errInvalidPath
	}
	return name, nil
}

var errInvalidPath = errors.New("invalid input file path")

// showVersion prints snlc's version and author, in place of compiling.
func showVersion() {
	cyanColor.Printf("snlc %s\n", VERSION)
	cyanColor.Printf("Author: %s\n", AUTHOR)
}

// compile runs the full pipeline and always returns a complete artifact:
// on a successful parse it is the translated program wrapped in the
// runtime preamble; on the first syntax error it is the same wrapper
// around the stub program plus a compile_error! marker, so the artifact
// still exists but a host build of it is expected to fail right at the
// reported source position. A trace comment carries the pre-emit token
// rewrite bridge's r#-prefixed reassembly, exercising that stage even
// though this driver's own parser and emitter run directly over the
// un-prefixed token stream rather than through a host-side macro layer.
func compile(src string) string {
	toks := lexer.Tokenize(src)
	bridged := rewrite.Bridge(src)

	prog, err := parser.Parse(toks)
	body := emit.Emit(prog)
	if err != nil {
		if synErr, ok := err.(*parser.SyntaxError); ok {
			body += emit.EmitError(synErr)
		}
	}

	trace := "// snl source, keyword-escaped by the pre-emit rewrite bridge:\n"
	for _, line := range strings.Split(strings.TrimRight(bridged, "\n"), "\n") {
		trace += "// " + line + "\n"
	}

	return trace + emit.WrapMain(body)
}
