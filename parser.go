package tinyclp

import "fmt"

// recordedOption is the footprint one Parse call leaves behind for the
// usage output. defValue is kept as text but the per-flag detail line does
// not currently print it.
type recordedOption struct {
	name     string
	details  string
	defValue string
}

// Parser owns a raw argument vector and the ordered record of every flag
// queried against it. A Parser is not safe for concurrent use; callers
// sharing one across goroutines must serialize access themselves.
type Parser struct {
	args    []string
	options []recordedOption
}

// New returns a Parser over args. args[0] is taken to be the program's
// invocation path and is never matched against a flag name.
func New(args []string) *Parser {
	return &Parser{args: args}
}

// Reset replaces the argument vector and drops the recorded flag history,
// as if the Parser had been constructed fresh.
func (p *Parser) Reset(args []string) {
	p.args = args
	p.options = nil
}

// Parse looks up the flag name in the parser's argument vector and returns
// the value of the token that follows it, converted to T. When the flag is
// absent, def is returned unchanged; DefaultOf spells "no particular
// default" for callers that have none. details is free text for the usage
// output.
//
// A bool flag needs no value token: its presence alone yields true and the
// following token is never inspected. For the other types a flag sitting at
// the very end of the vector has no value and counts as absent.
//
// Every call appends one entry to the usage record, found or not, and
// repeated names are recorded repeatedly.
//
// Parse is a free function rather than a Parser method due to the type
// parameters usage.
func Parse[T Value](p *Parser, name string, def T, details string) T {
	p.options = append(p.options, recordedOption{
		name:     name,
		details:  details,
		defValue: fmt.Sprint(def),
	})

	_, isBool := any(def).(bool)
	for i := 1; i < len(p.args); i++ {
		if p.args[i] != name {
			continue
		}
		if isBool {
			return convert[T]("")
		}
		if i+1 == len(p.args) {
			// flag given as the very last token, nothing left to convert
			break
		}
		return convert[T](p.args[i+1])
	}
	return def
}
