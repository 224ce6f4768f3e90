package main

import (
	"flag"
	"log"
	"os"
	"os/signal"

	"github.com/jorbush/lc3vm/emulator"
	"github.com/jorbush/lc3vm/io"
)

func main() {
	var blocking bool
	var verbose bool

	flag.BoolVar(&blocking, "b", false, "Block on keyboard polls")
	flag.BoolVar(&verbose, "v", false, "Verbose mode")

	flag.Parse()

	if flag.NArg() != 1 {
		log.Fatalf("%v: expected a single image file, got: %v", os.Args[0], flag.Args())
	}
	path := flag.Arg(0)

	console := &io.Terminal{Blocking: blocking}

	emu := emulator.NewEmulator(console)
	emu.Verbose = verbose

	err := emu.LoadFile(path)
	if err != nil {
		log.Fatalf("%v: %v", path, err)
	}

	err = console.Raw()
	if err != nil {
		log.Fatalf("%v: %v", os.Args[0], err)
	}

	// Restore the terminal before exiting on Ctrl-C.
	interrupt := make(chan os.Signal, 1)
	signal.Notify(interrupt, os.Interrupt)
	go func() {
		<-interrupt
		console.Restore()
		os.Exit(130)
	}()

	err = emu.Run()
	console.Restore()
	if err != nil {
		log.Print(emu.Cpu.String())
		log.Fatalf("%v: %v", path, err)
	}

	if verbose {
		log.Printf("halted after %d instructions", emu.Cpu.Ticks)
	}
}
