package tinyclp

const (
	helpArg      = "-help"
	helpArgShort = "-h"
)

// HelpRequested reports whether the argument vector carries -h or -help.
// The check leaves no trace in the usage record, so printing help does not
// advertise the help flag itself.
func (p *Parser) HelpRequested() bool {
	for i := 1; i < len(p.args); i++ {
		if p.args[i] == helpArg || p.args[i] == helpArgShort {
			return true
		}
	}
	return false
}
