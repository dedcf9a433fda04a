package main

import (
	"errors"
	"flag"
	"os"
	"path/filepath"
	"runtime"
	"time"

	"github.com/chip8vm/chip8/chip8"
	"github.com/chip8vm/chip8/statsview"
	"github.com/chip8vm/chip8/wavwriter"
	"github.com/retroenv/retrogolib/buildinfo"
	"github.com/retroenv/retrogolib/log"
	"github.com/veandco/go-sdl2/sdl"
)

var (
	version = "dev"
	commit  = ""
	date    = ""
)

var (
	/// The CHIP-8 virtual machine.
	///
	VM *chip8.Interpreter

	/// The SDL Window and Renderer.
	///
	Window   *sdl.Window
	Renderer *sdl.Renderer

	/// File is the ROM currently loaded, empty when running the boot program.
	///
	File string

	/// Paused is true while emulation is suspended, either by the user or
	/// because the program faulted.
	///
	Paused bool

	/// Fault is the error that halted the program, if any.
	///
	Fault error

	/// Log is the on-screen message log.
	///
	Log = NewLog(LogLines)

	/// Recorder captures the buzzer when -wav is given.
	///
	Recorder *wavwriter.WavWriter

	logger *log.Logger
)

func init() {
	runtime.LockOSThread()
}

func main() {
	opts, err := ReadArguments(os.Args[1:])
	if errors.Is(err, flag.ErrHelp) {
		return
	}

	logger = CreateLogger(opts)
	if err != nil {
		logger.Fatal("Invalid arguments", log.Err(err))
	}

	logger.Info("chip8", log.String("version", buildinfo.Version(version, commit, date)))

	cfg := chip8.DefaultConfig()
	cfg.CyclesPerFrame = opts.CyclesPerFrame
	cfg.Logger = logger

	VM, err = chip8.New(cfg)
	if err != nil {
		logger.Fatal("Creating virtual machine", log.Err(err))
	}

	File = opts.ROM
	Load()

	if opts.Wav != "" {
		Recorder, err = wavwriter.New(opts.Wav, SampleRate)
		if err != nil {
			logger.Fatal("Creating wav writer", log.Err(err))
		}

		defer func() {
			if err := Recorder.EndMixing(); err != nil {
				logger.Error("Writing wav file", err)
			}
		}()
	}

	if opts.Stats {
		statsview.Serve(opts.StatsAddr, logger)
	}

	// initialize SDL or exit
	err = sdl.Init(sdl.INIT_VIDEO | sdl.INIT_AUDIO)
	if err != nil {
		logger.Fatal("Initializing SDL", log.Err(err))
	}
	defer sdl.Quit()

	// create the main window and renderer or exit
	flags := sdl.WINDOW_OPENGL | sdl.WINDOWPOS_CENTERED
	Window, Renderer, err = sdl.CreateWindowAndRenderer(550, 348, uint32(flags))
	if err != nil {
		logger.Fatal("Creating window", log.Err(err))
	}

	// set the icon
	if icon, err := sdl.LoadBMP("data/chip_8.bmp"); err == nil {
		mask := sdl.MapRGB(icon.Format, 255, 0, 255)

		// create the mask color key and set the icon
		icon.SetColorKey(true, mask)
		Window.SetIcon(icon)
	}

	// set the title
	Window.SetTitle("CHIP-8")

	// initialize subsystems
	if err := InitScreen(); err != nil {
		logger.Fatal("Creating screen", log.Err(err))
	}
	if err := InitAudio(); err != nil {
		logger.Fatal("Opening audio", log.Err(err))
	}
	InitFont()

	Log.Log("Press H for help")

	// the frame driver, timers only tick once per frame
	video := time.NewTicker(chip8.FrameDuration)
	defer video.Stop()

	last := time.Now()

	// loop until window closed or user quit
	for ProcessEvents() {
		now := <-video.C
		elapsed := now.Sub(last)
		last = now

		Frame(elapsed)
		Refresh()
	}
}

/// Frame advances emulation by the time elapsed since the last frame and
/// updates the buzzer.
///
func Frame(elapsed time.Duration) {
	if Paused {
		SetTone(false)
		return
	}

	frames, err := VM.Advance(elapsed)
	if err != nil {
		Halt(err)
	}

	SetTone(VM.SoundActive())

	if Recorder != nil {
		Recorder.SetAudio(frames, VM.SoundActive())
	}
}

/// Halt stops emulation after the program faulted. It stays halted until
/// the program is reset or another ROM is loaded.
///
func Halt(err error) {
	Fault = err
	Paused = true

	logger.Error("Program halted", err)
	Log.Logln("HALTED:", err.Error())
	Log.Log("BS to reset, F3 to load")
}

/// Load the current File, or the boot program if there isn't one.
///
func Load() {
	Fault = nil
	Paused = false

	if File == "" {
		if err := VM.Load(bootProgram); err != nil {
			Halt(err)
		}
		if Window != nil {
			Window.SetTitle("CHIP-8")
		}
		return
	}

	if err := VM.LoadFile(File); err != nil {
		logger.Error("Loading ROM", err, log.String("file", File))
		Log.Logln("Failed to load", filepath.Base(File))

		// fall back to the boot program
		File = ""
		Load()
		return
	}

	Log.Logln("Loaded", filepath.Base(File))
	if Window != nil {
		Window.SetTitle("CHIP-8 - " + filepath.Base(File))
	}
}

/// Reset the virtual machine, rebooting the loaded program.
///
func Reset() {
	VM.Reset()

	Fault = nil
	Paused = false

	Log.Log("Reset")
}

func Refresh() {
	Renderer.SetDrawColor(32, 42, 53, 255)
	Renderer.Clear()

	// frame various portions of the app
	DrawFrame(8, 8, 322, 162)
	DrawFrame(338, 8, 204, 162)
	DrawFrame(8, 176, 534, 164)

	// update the video screen and copy it
	RefreshScreen()
	CopyScreen(10, 10, 5)

	// status and the message log
	StatusRegisters(342, 12)
	StatusLog(12, 180)

	// show the new frame
	Renderer.Present()
}

func DrawFrame(x, y, w, h int32) {
	Renderer.SetDrawColor(0, 0, 0, 255)
	Renderer.DrawLine(x, y, x+w, y)
	Renderer.DrawLine(x, y, x, y+h)

	// highlight
	Renderer.SetDrawColor(95, 112, 120, 255)
	Renderer.DrawLine(x+w, y, x+w, y+h)
	Renderer.DrawLine(x, y+h, x+w, y+h)
}
