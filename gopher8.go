// This file is part of Gopher8.
//
// Gopher8 is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// Gopher8 is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with Gopher8.  If not, see <https://www.gnu.org/licenses/>.


package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"

	"github.com/jetsetilly/gopher8/assert"
	"github.com/jetsetilly/gopher8/curated"
	"github.com/jetsetilly/gopher8/debugger"
	"github.com/jetsetilly/gopher8/debugger/terminal"
	"github.com/jetsetilly/gopher8/debugger/terminal/colorterm"
	"github.com/jetsetilly/gopher8/debugger/terminal/plainterm"
	"github.com/jetsetilly/gopher8/digest"
	"github.com/jetsetilly/gopher8/disassembly"
	"github.com/jetsetilly/gopher8/gui"
	"github.com/jetsetilly/gopher8/gui/ebitenwindow"
	"github.com/jetsetilly/gopher8/gui/sdlwindow"
	"github.com/jetsetilly/gopher8/gui/termdisplay"
	"github.com/jetsetilly/gopher8/hardware"
	"github.com/jetsetilly/gopher8/hardware/clocks"
	"github.com/jetsetilly/gopher8/hardware/display"
	"github.com/jetsetilly/gopher8/hardware/input"
	"github.com/jetsetilly/gopher8/logger"
	"github.com/jetsetilly/gopher8/modalflag"
	"github.com/jetsetilly/gopher8/paths"
	"github.com/jetsetilly/gopher8/performance"
	"github.com/jetsetilly/gopher8/prefs"
	"github.com/jetsetilly/gopher8/romloader"
	"github.com/jetsetilly/gopher8/statsview"
	"github.com/jetsetilly/gopher8/version"
)

type stateReq = string

const (
	// main thread should end as soon as possible.
	//
	// takes optional int argument, indicating the status code.
	reqQuit stateReq = "QUIT"

	// reset interrupt signal handling. used when the mode has its own
	// handler.
	//
	// takes no arguments.
	reqNoIntSig stateReq = "NOINTSIG"
)

type stateRequest struct {
	req  stateReq
	args any
}

// GuiCreator facilitates the creation, servicing and destruction of GUIs
// that need to be run in the main thread.
//
// There is no Create() function. The creator is a channel that accepts a
// function returning an instance of GuiCreator.
type GuiCreator interface {
	// cleanup resources used by the gui
	Destroy(io.Writer)

	// Service() MUST ONLY be called as part of a larger loop from the main
	// thread. It should service all gui events that are not safe to do in
	// other goroutines and should not block for longer than a frame.
	Service()
}

// communication between the main() function and the launch() function. many
// gui solutions (notably SDL) require window creation and event handling to
// happen on the main thread.
type mainSync struct {
	state   chan stateRequest
	creator chan func() (GuiCreator, error)

	// the result of creator is returned on one of these two channels
	creation      chan GuiCreator
	creationError chan error
}

// #mainthread
func main() {
	assert.RecordMainThread()

	sync := &mainSync{
		state:         make(chan stateRequest),
		creator:       make(chan func() (GuiCreator, error)),
		creation:      make(chan GuiCreator),
		creationError: make(chan error),
	}

	// value to use with os.Exit(). can be changed with reqQuit
	exitVal := 0

	// #ctrlc default handler. can be turned off with reqNoIntSig
	intChan := make(chan os.Signal, 1)
	signal.Notify(intChan, os.Interrupt)

	go launch(sync, os.Args[1:])

	done := false
	var gui GuiCreator
	for !done {
		if gui == nil {
			// nothing to service so wait for something to happen
			select {
			case <-intChan:
				fmt.Println("\r")
				done = true
			case creator := <-sync.creator:
				gui = create(sync, creator)
			case state := <-sync.state:
				done, exitVal = handleState(state, gui)
			}
			continue
		}

		select {
		case <-intChan:
			fmt.Println("\r")
			done = true
			gui.Destroy(os.Stderr)

		case creator := <-sync.creator:
			gui.Destroy(os.Stderr)
			gui = create(sync, creator)

		case state := <-sync.state:
			done, exitVal = handleState(state, gui)

		default:
			gui.Service()
		}
	}

	fmt.Print("\r")
	os.Exit(exitVal)
}

// create a new gui and return the result on the creation channels.
//
// #mainthread
func create(sync *mainSync, creator func() (GuiCreator, error)) GuiCreator {
	g, err := creator()
	if err != nil {
		sync.creationError <- err

		// the creator may return a nil pointer inside a non-nil interface
		return nil
	}
	sync.creation <- g
	return g
}

// #mainthread
func handleState(state stateRequest, gui GuiCreator) (bool, int) {
	switch state.req {
	case reqQuit:
		if gui != nil {
			gui.Destroy(os.Stderr)
		}
		if state.args != nil {
			if v, ok := state.args.(int); ok {
				return true, v
			}
			panic(fmt.Sprintf("cannot convert %s arguments into int", reqQuit))
		}
		return true, 0

	case reqNoIntSig:
		signal.Reset(os.Interrupt)
		if state.args != nil {
			panic(fmt.Sprintf("%s does not accept any arguments", reqNoIntSig))
		}
	}

	return false, 0
}

// launch is called from main() as a goroutine. uses the mainSync instance to
// create guis and to quit.
func launch(sync *mainSync, args []string) {
	md := &modalflag.Modes{Output: os.Stdout}
	md.NewArgs(args)
	md.AddSubModes("RUN", "DEBUG", "DISASM", "VERSION")

	p, err := md.Parse()
	switch p {
	case modalflag.ParseHelp:
		sync.state <- stateRequest{req: reqQuit}
		return

	case modalflag.ParseError:
		fmt.Printf("* error: %v\n", err)
		sync.state <- stateRequest{req: reqQuit, args: 10}
		return
	}

	switch md.Mode() {
	case "RUN":
		err = run(md, sync)
	case "DEBUG":
		err = debug(md, sync)
	case "DISASM":
		err = disasm(md)
	case "VERSION":
		fmt.Fprintln(md.Output, version.String())
	}

	if err != nil {
		fmt.Printf("* error in %s mode: %s\n", md, err)
		sync.state <- stateRequest{req: reqQuit, args: 20}
		return
	}

	sync.state <- stateRequest{req: reqQuit}
}

// flags shared by the RUN and DEBUG modes.
type vmFlags struct {
	gui       *string
	scale     *int
	freq      *int
	zero      *bool
	log       *bool
	statsview *bool
	profile   *bool
}

func addVMFlags(md *modalflag.Modes, defaultGui string) vmFlags {
	return vmFlags{
		gui:       md.AddChoice("gui", defaultGui, gui.Backends, "display backend"),
		scale:     md.AddInt("scale", gui.DefaultScale, "size of each display pixel on screen"),
		freq:      md.AddInt("freq", clocks.CycleFrequency, "number of instructions per second"),
		zero:      md.AddBool("zero", false, "start with zeroed memory and registers"),
		log:       md.AddBool("log", false, "echo debugging log to stdout"),
		statsview: md.AddBool("statsview", false, "run stats server"),
		profile:   md.AddBool("profile", false, "write cpu and memory profiles"),
	}
}

// the parts of the program shared by the RUN and DEBUG modes.
type environment struct {
	vm       *hardware.VM
	vmPrefs  *hardware.Preferences
	guiPrefs *gui.Preferences

	// the display and the renderer given to the VM. the renderer might
	// wrap the display
	display  display.Renderer
	renderer display.Renderer

	prefsFile string
}

// connector is implemented by display backends with keyboard input.
type connector interface {
	Connect(keypad *input.Keypad, stop func())
}

// newEnvironment loads the ROM named by the only remaining argument and
// creates the VM, preferences and display. The wrap function can be used to
// wrap the display in another renderer. It can be nil.
func newEnvironment(md *modalflag.Modes, sync *mainSync, flgs vmFlags, wrap func(display.Renderer) display.Renderer) (*environment, error) {
	switch len(md.RemainingArgs()) {
	case 0:
		return nil, fmt.Errorf("ROM required for %s mode", md)
	case 1:
	default:
		return nil, fmt.Errorf("too many arguments for %s mode", md)
	}

	if *flgs.log {
		logger.SetEcho(os.Stdout)
	} else {
		logger.SetEcho(nil)
	}

	env := &environment{
		vmPrefs:  hardware.NewPreferences(),
		guiPrefs: gui.NewPreferences(),
	}

	var err error

	env.prefsFile, err = paths.ResourcePath("", prefs.DefaultPrefsFile)
	if err != nil {
		return nil, err
	}
	err = env.vmPrefs.AttachDisk(env.prefsFile)
	if err != nil {
		return nil, err
	}
	err = env.guiPrefs.AttachDisk(env.prefsFile)
	if err != nil {
		return nil, err
	}

	// flags only override the preferences if they have been set on the
	// command line
	md.Visit(func(flg string) {
		if err != nil {
			return
		}
		switch flg {
		case "freq":
			err = env.vmPrefs.CycleFrequency.Set(*flgs.freq)
		case "scale":
			err = env.guiPrefs.Scale.Set(*flgs.scale)
		case "zero":
			err = env.vmPrefs.ZeroState.Set(*flgs.zero)
		}
	})
	if err != nil {
		return nil, err
	}

	ld := romloader.NewLoader(md.GetArg(0))
	err = ld.Load()
	if err != nil {
		return nil, err
	}

	env.display, err = createDisplay(sync, *flgs.gui)
	if err != nil {
		return nil, err
	}

	env.renderer = env.display
	if wrap != nil {
		env.renderer = wrap(env.display)
	}

	if env.renderer != nil {
		err = env.renderer.Initialise(env.guiPrefs.Scale.Get().(int))
		if err != nil {
			return nil, err
		}
		env.guiPrefs.Scale.SetHookPost(func(v prefs.Value) error {
			return env.renderer.Initialise(v.(int))
		})
	}

	env.vm, err = hardware.NewVM(env.renderer, env.vmPrefs)
	if err != nil {
		return nil, err
	}
	err = env.vm.LoadROM(ld.Data)
	if err != nil {
		return nil, err
	}

	if c, ok := env.display.(connector); ok {
		c.Connect(env.vm.Keypad, env.vm.Stop)
	}
	if e, ok := env.display.(*ebitenwindow.EbitenWindow); ok {
		e.Start()
	}

	if *flgs.statsview {
		statsview.Launch(md.Output)
	}

	return env, nil
}

// createDisplay returns nil for the NONE backend.
func createDisplay(sync *mainSync, backend string) (display.Renderer, error) {
	var creator func() (GuiCreator, error)

	switch backend {
	case gui.SDL:
		creator = func() (GuiCreator, error) {
			win, err := sdlwindow.NewSdlWindow()
			if err != nil {
				return nil, err
			}
			return win, nil
		}
	case gui.Ebiten:
		creator = func() (GuiCreator, error) {
			return ebitenwindow.NewEbitenWindow(), nil
		}
	case gui.Term:
		creator = func() (GuiCreator, error) {
			return termdisplay.NewTermDisplay(os.Stdout), nil
		}
	default:
		return nil, nil
	}

	sync.creator <- creator

	select {
	case g := <-sync.creation:
		return g.(display.Renderer), nil
	case err := <-sync.creationError:
		return nil, err
	}
}

// profiled runs the function through the cpu profiler if requested.
func profiled(profile bool, mode string, f func() error) error {
	if !profile {
		return f()
	}

	err := performance.ProfileCPU(fmt.Sprintf("%s.cpu.profile", mode), f)
	if err != nil {
		return err
	}

	return performance.ProfileMem(fmt.Sprintf("%s.mem.profile", mode))
}

func run(md *modalflag.Modes, sync *mainSync) error {
	md.NewMode()

	flgs := addVMFlags(md, gui.SDL)
	cycles := md.AddInt("cycles", 0, "run for a fixed number of cycles without pacing. zero runs until stopped")
	dig := md.AddBool("digest", false, "print a digest of the display when the program ends")

	p, err := md.Parse()
	if err != nil || p != modalflag.ParseContinue {
		return err
	}

	var scr *digest.Screen
	var wrap func(display.Renderer) display.Renderer
	if *dig {
		wrap = func(r display.Renderer) display.Renderer {
			scr = digest.NewScreen(r)
			return scr
		}
	}

	env, err := newEnvironment(md, sync, flgs, wrap)
	if err != nil {
		return err
	}

	// the program should be reproducible when producing a digest
	if *dig {
		env.vm.Random.ZeroSeed = true
	}

	// turn off fallback ctrl-c handling. interrupting a running program
	// ends it gracefully
	sync.state <- stateRequest{req: reqNoIntSig}
	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt)
	defer cancel()

	err = profiled(*flgs.profile, "run", func() error {
		if *cycles > 0 {
			for i := 0; i < *cycles && ctx.Err() == nil; i++ {
				if err := env.vm.Step(); err != nil {
					if curated.Is(err, hardware.Stopped) {
						return nil
					}
					return err
				}
			}
			return nil
		}
		return env.vm.Run(ctx)
	})
	if err != nil {
		return err
	}

	if scr != nil {
		fmt.Fprintf(md.Output, "%s (%d frames)\n", scr.Hash(), scr.Frames())
	}

	return env.guiPrefs.Save()
}

func debug(md *modalflag.Modes, sync *mainSync) error {
	md.NewMode()

	flgs := addVMFlags(md, gui.SDL)
	termType := md.AddChoice("term", "PLAIN", []string{"PLAIN", "COLOR"}, "terminal type")

	p, err := md.Parse()
	if err != nil || p != modalflag.ParseContinue {
		return err
	}

	env, err := newEnvironment(md, sync, flgs, nil)
	if err != nil {
		return err
	}

	dbgPrefs := debugger.NewPreferences()
	err = dbgPrefs.AttachDisk(env.prefsFile)
	if err != nil {
		return err
	}

	var term terminal.Terminal
	switch *termType {
	case "COLOR":
		term = &colorterm.ColorTerminal{}
	default:
		term = plainterm.NewPlainTerminal(os.Stdin, os.Stdout)
	}

	// the debugger handles ctrl-c itself when the VM is running
	sync.state <- stateRequest{req: reqNoIntSig}

	dbg, err := debugger.NewDebugger(env.vm, term, dbgPrefs)
	if err != nil {
		return err
	}
	dbg.AddSaver(env.guiPrefs)

	return profiled(*flgs.profile, "debug", func() error {
		return dbg.Start(context.Background())
	})
}

func disasm(md *modalflag.Modes) error {
	md.NewMode()

	bytecode := md.AddBool("bytes", false, "include bytes in disassembly")
	blessed := md.AddBool("blessed", false, "only show instructions reachable from the start of the program")

	p, err := md.Parse()
	if err != nil || p != modalflag.ParseContinue {
		return err
	}

	switch len(md.RemainingArgs()) {
	case 0:
		return fmt.Errorf("ROM required for %s mode", md)
	case 1:
	default:
		return fmt.Errorf("too many arguments for %s mode", md)
	}

	ld := romloader.NewLoader(md.GetArg(0))
	err = ld.Load()
	if err != nil {
		return err
	}

	dsm, err := disassembly.FromProgram(ld.Data)
	if err != nil {
		return err
	}

	return dsm.Write(md.Output, disassembly.WriteAttr{
		ByteCode:    *bytecode,
		Level:       !*blessed,
		BlessedOnly: *blessed,
	})
}
