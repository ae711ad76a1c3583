package tinyclp

import (
	"fmt"
	"io"
	"os"
	"strings"
)

// Usage writes the help text to standard output. It panics when the parser
// holds an empty argument vector, since there is no invocation path to
// derive a program name from; that is a programming error, not user input.
func (p *Parser) Usage(title string) {
	if err := p.WriteUsage(os.Stdout, title); err != nil {
		panic(err)
	}
}

// WriteUsage writes the help text to w: the title, a synopsis line with the
// program name and every recorded flag in brackets, then one indented
// detail line per recorded flag, all in the order the flags were queried.
func (p *Parser) WriteUsage(w io.Writer, title string) error {
	if len(p.args) == 0 {
		return errEmptyArgs()
	}

	fmt.Fprintln(w, title)
	fmt.Fprint(w, programName(p.args[0]))
	for _, opt := range p.options {
		fmt.Fprintf(w, " [%s]", opt.name)
	}
	fmt.Fprintln(w)
	for _, opt := range p.options {
		fmt.Fprintf(w, "\t [%s]\t\t %s\n", opt.name, opt.details)
	}
	return nil
}

// programName strips everything up to the last path separator, accepting
// both Unix and Windows style paths regardless of the host platform.
func programName(invocation string) string {
	if i := strings.LastIndexAny(invocation, `/\`); i != -1 {
		return invocation[i+1:]
	}
	return invocation
}
