// Copyright 2025, Jason S. McMullan <jason.mcmullan@gmail.com>

package main

import (
	"flag"
	"log"
	"os"

	"github.com/ezrec/mmix64/mach"
	"github.com/ezrec/mmix64/monitor"
)

func main() {
	var script string
	var verbose bool

	flag.StringVar(&script, "x", "", "monitor script to execute")
	flag.BoolVar(&verbose, "v", false, "Verbose mode")

	flag.Parse()

	if flag.NArg() != 0 {
		log.Fatalf("%v: Unknown arguments: %v", os.Args[0], flag.Args())
	}

	m := mach.NewMachine()
	m.Verbose = verbose
	m.Mem.Verbose = verbose

	mon := &monitor.Monitor{
		Machine: m,
		Output:  os.Stdout,
	}

	if len(script) != 0 {
		inf, err := os.Open(script)
		if err != nil {
			log.Fatalf("%v: %v", script, err)
		}
		defer inf.Close()

		err = mon.Run(inf)
		if err != nil {
			log.Fatalf("%v: %v", script, err)
		}

		return
	}

	mon.Interactive = true
	err := mon.Run(os.Stdin)
	if err != nil {
		log.Fatal(err)
	}
}
