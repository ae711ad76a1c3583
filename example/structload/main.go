/*
This program declares its flags on a struct and lets Load fill it. The
params structure implements the Extender interface for a final validation
step after the fields are set.
*/

package main

import (
	"fmt"
	"log"
	"os"

	"github.com/axeldan/tinyclp"
	"github.com/pkg/errors"
)

type params struct {
	User   string `flag:"user|Username|anonymous"`
	Admin  bool   `flag:"admin|Run with admin privileges"`
	Rounds int    `flag:"rounds|Number of processing rounds|3"`
}

func (p *params) Extend() error {
	if p.Rounds <= 0 {
		return errors.Errorf("rounds must be positive, got %d", p.Rounds)
	}
	return nil
}

func main() {
	p := tinyclp.New(os.Args)

	var cfg params
	if err := tinyclp.Load(p, &cfg); err != nil {
		log.Fatalf("error while parsing the cli parameters: %s", err)
	}
	if p.HelpRequested() {
		p.Usage("worker - struct-driven flag demo")
		os.Exit(0)
	}

	// The program "logic"
	fmt.Printf("running %d rounds as %q (admin: %t)\n", cfg.Rounds, cfg.User, cfg.Admin)
}
