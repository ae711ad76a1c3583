/*
Package tinyclp extracts typed values for named flags from a raw argument
vector.

A Parser is built once from the argument vector (element 0 is the program's
invocation path). Each call to Parse looks up one flag, converts the token
that follows it to the requested type and falls back to the given default
when the flag is absent. Every call is also recorded, so Usage can print a
summary of all the flags the program asked about:

	p := tinyclp.New(os.Args)
	img := tinyclp.Parse(p, "-img", "default.png", "Image to show")
	poly := tinyclp.Parse(p, "-poly", false, "Use polynomial interpolation")
	if p.HelpRequested() {
		p.Usage("showimg - tiny image viewer")
		os.Exit(0)
	}

Conversions are best effort: a malformed numeric token degrades to zero
instead of reporting an error, and a bool flag is true whenever it is
present on the command line, no matter what follows it.

Programs that prefer declaring their flags in one place can put `flag` tags
on a struct and fill it with Load:

	type params struct {
		Img  string `flag:"img|Image to show|default.png"`
		Poly bool   `flag:"poly|Use polynomial interpolation"`
	}
*/
package tinyclp
