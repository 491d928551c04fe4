// Copyright 2025, Jason S. McMullan <jason.mcmullan@gmail.com>

package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"strconv"

	"github.com/ezrec/m6502/cpu"
	"github.com/ezrec/m6502/emulator"
	"github.com/ezrec/m6502/script"
)

func main() {
	var image string
	var base string
	var steps int
	var trace bool
	var scriptFile string
	var verbose bool

	flag.StringVar(&image, "i", "-", "Raw program image")
	flag.StringVar(&base, "b", fmt.Sprintf("%#04x", emulator.PROGRAM_BASE), "Load address")
	flag.IntVar(&steps, "n", 0, "Stop after this many instructions (0 for no limit)")
	flag.BoolVar(&trace, "t", false, "Trace each instruction to stderr")
	flag.StringVar(&scriptFile, "s", "", "Starlark observer script")
	flag.BoolVar(&verbose, "v", false, "Verbose mode")

	flag.Parse()

	if flag.NArg() != 0 {
		log.Fatalf("%v: Unknown arguments: %v", os.Args[0], flag.Args())
	}

	loadAt, err := strconv.ParseUint(base, 0, 16)
	if err != nil {
		log.Fatalf("%v: %v", base, err)
	}

	var program []byte
	if image == "-" {
		program, err = io.ReadAll(os.Stdin)
	} else {
		program, err = os.ReadFile(image)
	}
	if err != nil {
		log.Fatalf("%v: %v", image, err)
	}

	emu := emulator.NewEmulator()
	emu.Verbose = verbose

	var observers cpu.Observers

	if steps > 0 {
		observers = append(observers, &cpu.StepLimit{Limit: steps})
	}

	if trace {
		observers = append(observers, &cpu.Tracer{Output: os.Stderr})
	}

	if len(scriptFile) != 0 {
		inf, err := os.Open(scriptFile)
		if err != nil {
			log.Fatalf("%v: %v", scriptFile, err)
		}
		defer inf.Close()

		obs, err := script.NewObserver(scriptFile, inf, emu.Defines())
		if err != nil {
			log.Fatalf("%v: %v", scriptFile, err)
		}
		obs.Verbose = verbose
		observers = append(observers, obs)
	}

	emu.Cpu.Observer = observers

	err = emu.LoadAt(program, uint16(loadAt))
	if err != nil {
		log.Fatalf("%v: %v", image, err)
	}

	err = emu.Reset()
	if err != nil {
		log.Fatal(err)
	}

	err = emu.Run()
	switch {
	case errors.Is(err, cpu.ErrStepLimit):
		log.Printf("%v: stopped after %d instructions", image, steps)
	case err != nil:
		var er *emulator.ErrRuntime
		if errors.As(err, &er) {
			dbg := emu.Program.Debug(er.Pc)
			if dbg.Opcode != nil {
				log.Printf("%v: at %04X %v % X", image, dbg.Pc, dbg.Opcode, dbg.Operand)
			}
		}
		fmt.Print(emu.String())
		log.Fatal(err)
	}

	fmt.Print(emu.String())
}
