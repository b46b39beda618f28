// This file is part of Gopher6502.
//
// Gopher6502 is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// Gopher6502 is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with Gopher6502.  If not, see <https://www.gnu.org/licenses/>.

package main

import (
	"fmt"
	"io"
	"os"
	"os/signal"
	"strings"

	"github.com/jetsetilly/gopher6502/disassembly"
	"github.com/jetsetilly/gopher6502/dump"
	"github.com/jetsetilly/gopher6502/hardware/clocks"
	"github.com/jetsetilly/gopher6502/hardware/cpu"
	"github.com/jetsetilly/gopher6502/hardware/memory"
	"github.com/jetsetilly/gopher6502/hardware/memory/cpubus"
	"github.com/jetsetilly/gopher6502/hardware/preferences"
	"github.com/jetsetilly/gopher6502/imageloader"
	"github.com/jetsetilly/gopher6502/logger"
	"github.com/jetsetilly/gopher6502/modalflag"
	"github.com/jetsetilly/gopher6502/monitor"
	"github.com/jetsetilly/gopher6502/paths"
	"github.com/jetsetilly/gopher6502/script"
	"github.com/jetsetilly/gopher6502/statsview"
	"github.com/jetsetilly/gopher6502/version"
)

func main() {
	// ctrl-c ends the program. the monitor puts the terminal into cbreak mode
	// in which case ctrl-c is delivered as a key press instead
	intChan := make(chan os.Signal, 1)
	signal.Notify(intChan, os.Interrupt)
	go func() {
		<-intChan
		fmt.Println("\r")
		os.Exit(0)
	}()

	os.Exit(launch(os.Args[1:], os.Stdout))
}

// launch the program with the command line arguments. the return value is
// the exit status.
func launch(args []string, output io.Writer) int {
	md := &modalflag.Modes{Output: output}
	md.NewArgs(args)
	md.AddSubModes("RUN", "STEP", "SCRIPT", "DISASM", "VERSION")

	p, err := md.Parse()
	switch p {
	case modalflag.ParseHelp:
		return 0
	case modalflag.ParseError:
		fmt.Fprintf(output, "* error: %v\n", err)
		return 10
	}

	switch md.Mode() {
	case "RUN":
		err = run(md, output)
	case "STEP":
		err = step(md, output)
	case "SCRIPT":
		err = runScript(md, output)
	case "DISASM":
		err = disasm(md, output)
	case "VERSION":
		fmt.Fprintln(output, version.String())
	}

	if err != nil {
		fmt.Fprintf(output, "* error in %s mode: %s\n", md.String(), err)
		return 20
	}

	return 0
}

// flags common to all modes that create a CPU.
type common struct {
	origin    *uint16
	vector    *bool
	prefsFile *string
	log       *bool
}

func addCommonFlags(md *modalflag.Modes) common {
	return common{
		origin:    md.AddAddress("origin", cpubus.Reset, "load address of the image"),
		vector:    md.AddBool("vector", false, "install reset vector pointing to origin and load PC from it"),
		prefsFile: md.AddString("prefs", paths.ResourcePath(preferences.DefaultPrefsFile), "preferences file"),
		log:       md.AddBool("log", false, "echo log to stderr"),
	}
}

// create CPU and memory and load the image named on the command line.
func (c common) setup(md *modalflag.Modes) (*cpu.CPU, *memory.Memory, imageloader.Loader, error) {
	if *c.log {
		logger.SetEcho(os.Stderr)
	} else {
		logger.SetEcho(nil)
	}

	var ld imageloader.Loader

	prefs, err := preferences.NewPreferences(*c.prefsFile)
	if err != nil {
		return nil, nil, ld, err
	}

	mc := cpu.NewCPU(prefs)
	mem := memory.NewMemory()
	mc.Reset(mem)

	switch len(md.RemainingArgs()) {
	case 0:
		return nil, nil, ld, fmt.Errorf("image file required for %s mode", md)
	case 1:
		ld = imageloader.NewLoader(md.GetArg(0), *c.origin)
		if _, err := ld.Load(mem); err != nil {
			return nil, nil, ld, err
		}
	default:
		return nil, nil, ld, fmt.Errorf("too many arguments for %s mode", md)
	}

	if *c.vector {
		imageloader.InstallResetVector(mem, *c.origin)
	}
	if *c.vector || prefs.ResetVector.Get().(bool) {
		if err := mc.LoadPCIndirect(mem, cpubus.Reset); err != nil {
			return nil, nil, ld, err
		}
	}

	return mc, mem, ld, nil
}

func run(md *modalflag.Modes, output io.Writer) error {
	md.NewMode()

	c := addCommonFlags(md)
	cycles := md.AddInt("cycles", 2, "number of cycles to execute")
	memviz := md.AddString("memviz", "", "write graphviz representation of CPU to file (AUTO for unique filename)")
	stats := md.AddBool("statsview", false, "run stats server")

	p, err := md.Parse()
	if err != nil || p != modalflag.ParseContinue {
		return err
	}

	if *stats {
		statsview.Launch(output)
	}

	mc, mem, ld, err := c.setup(md)
	if err != nil {
		return err
	}

	used, err := mc.Execute(*cycles, mem)
	if err != nil {
		return err
	}

	mhz := mc.Preferences().Clock.Get().(float64)
	fmt.Fprintf(output, "%d cycles (%v at %.3fMHz)\n", used, clocks.Duration(used, mhz), mhz)
	fmt.Fprintln(output, mc.String())

	if *memviz != "" {
		if strings.ToUpper(*memviz) == "AUTO" {
			*memviz = paths.UniqueFilename("cpu", ld.ShortName()) + ".dot"
		}
		f, err := os.Create(*memviz)
		if err != nil {
			return err
		}
		defer f.Close()
		dump.State(f, mc)
	}

	return nil
}

func step(md *modalflag.Modes, output io.Writer) error {
	md.NewMode()

	c := addCommonFlags(md)

	p, err := md.Parse()
	if err != nil || p != modalflag.ParseContinue {
		return err
	}

	mc, mem, _, err := c.setup(md)
	if err != nil {
		return err
	}

	term, err := monitor.OpenTerminal()
	if err != nil {
		return err
	}
	defer term.Close()

	return monitor.NewMonitor(mc, mem, term.Output()).Run(term.Input())
}

func runScript(md *modalflag.Modes, output io.Writer) error {
	md.NewMode()

	log := md.AddBool("log", false, "echo log to stderr")
	prefsFile := md.AddString("prefs", paths.ResourcePath(preferences.DefaultPrefsFile), "preferences file")
	md.AdditionalHelp("the lua script is run against a newly reset CPU and memory")

	p, err := md.Parse()
	if err != nil || p != modalflag.ParseContinue {
		return err
	}

	if *log {
		logger.SetEcho(os.Stderr)
	}

	if len(md.RemainingArgs()) != 1 {
		return fmt.Errorf("a single lua file is required for %s mode", md)
	}

	prefs, err := preferences.NewPreferences(*prefsFile)
	if err != nil {
		return err
	}

	mc := cpu.NewCPU(prefs)
	mem := memory.NewMemory()
	mc.Reset(mem)

	h := script.NewHarness(mc, mem)
	defer h.Close()

	err = h.RunFile(md.GetArg(0))
	if err != nil {
		return err
	}

	fmt.Fprintln(output, mc.String())

	return nil
}

func disasm(md *modalflag.Modes, output io.Writer) error {
	md.NewMode()

	c := addCommonFlags(md)
	count := md.AddInt("count", 16, "number of instructions to disassemble")

	p, err := md.Parse()
	if err != nil || p != modalflag.ParseContinue {
		return err
	}

	_, mem, _, err := c.setup(md)
	if err != nil {
		return err
	}

	for _, e := range disassembly.Linear(mem, *c.origin, *count) {
		fmt.Fprintln(output, e.Line())
	}

	return nil
}
