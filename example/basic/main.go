/*
This program shows the most basic usage of the tinyclp package: each flag
is fetched with one Parse call and -h/-help prints the usage summary.

Try for example:

	go run . -img photo.png -scale 2.5 -poly
	go run . -h
*/

package main

import (
	"fmt"
	"os"

	"github.com/axeldan/tinyclp"
)

func main() {
	p := tinyclp.New(os.Args)

	img := tinyclp.Parse(p, "-img", "default.png", "Image to show")
	scale := tinyclp.Parse(p, "-scale", 1.0, "Scale factor")
	poly := tinyclp.Parse(p, "-poly", false, "Use polynomial interpolation")

	if p.HelpRequested() {
		p.Usage("showimg - tiny image viewer")
		os.Exit(0)
	}

	// The program "logic"
	fmt.Printf("showing %s at x%g (polynomial interpolation: %t)\n", img, scale, poly)
}
