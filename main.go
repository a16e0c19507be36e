package main

import (
	"flag"
	"fmt"
	"log/slog"
	"os"
	"runtime"
	"strings"

	"github.com/MatusOllah/colem-go/joystick"
	"github.com/MatusOllah/slogcolor"
	"github.com/ncruces/zenity"
)

// getLogLevel gets the log level from command-line flags.
func getLogLevel() slog.Leveler {
	switch s := strings.ToLower(*logLevelFlag); s {
	case "":
		return slog.LevelInfo
	case "debug":
		return slog.LevelDebug
	case "info":
		return slog.LevelInfo
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		panic(fmt.Sprintf("invalid log level: \"%s\"; should be one of \"debug\", \"info\", \"warn\", \"error\"", s))
	}
}

// loadMapping reads the button mapping file, if one was given.
func loadMapping(path string) (joystick.Mapping, error) {
	if path == "" {
		return nil, nil
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	return joystick.LoadMapping(f)
}

func main() {
	flag.Parse()

	if flag.NArg() != 1 {
		fmt.Fprintf(os.Stderr, "usage: %s [flags] path/to/rom.col\n", os.Args[0])
		if err := zenity.Warning("Please provide a path to the ROM file.", zenity.Title("colem-go")); err != nil {
			slog.Error("failed to show warning dialog", "error", err)
		}
		os.Exit(1)
	}

	// Logger
	opts := slogcolor.DefaultOptions
	opts.Level = getLogLevel()
	opts.SrcFileLength = 16
	slog.SetDefault(slog.New(slogcolor.NewHandler(os.Stderr, opts)))

	slog.Info("colem-go version", "version", Version())
	slog.Info("Go version", "version", runtime.Version(), "os", runtime.GOOS, "arch", runtime.GOARCH)

	if *statsviewFlag {
		launchStatsview()
	}

	scheme, err := joystick.ParseScheme(*controlsFlag)
	if err != nil {
		slog.Error("invalid control scheme", "controls", *controlsFlag, "error", err)
		handleError(err)
	}
	slog.Info("control scheme", "scheme", scheme)

	mapping, err := loadMapping(*mappingsFlag)
	if err != nil {
		slog.Error("failed to load mappings", "path", *mappingsFlag, "error", err)
		handleError(fmt.Errorf("failed to load mappings: %w", err))
	}

	engine := NewEngine()

	if *biosFlag != "" {
		bios, err := os.ReadFile(*biosFlag)
		if err != nil {
			slog.Error("failed to read BIOS file", "path", *biosFlag, "error", err)
			handleError(fmt.Errorf("failed to read BIOS file: %w", err))
		}
		if err := engine.LoadBIOS(bios); err != nil {
			handleError(err)
		}
	}

	rom, err := os.ReadFile(flag.Arg(0))
	if err != nil {
		slog.Error("failed to read ROM file", "path", flag.Arg(0), "error", err)
		handleError(fmt.Errorf("failed to read ROM file: %w", err))
	}
	if err := engine.LoadROM(rom); err != nil {
		slog.Error("failed to load ROM", "path", flag.Arg(0), "error", err)
		handleError(err)
	}

	slog.Info("initializing emulator")
	g := NewGame(engine, NewDevice(), scheme, mapping)

	slog.Info("initializing ebiten")
	g.InitEbiten()

	slog.Info("starting game")
	if err := g.Start(); err != nil {
		slog.Error("game exited with error", "error", err)
		handleError(fmt.Errorf("game exited with error: %w", err))
	}
}

func handleError(err error) {
	if err := zenity.Error(err.Error(), zenity.Title("colem-go")); err != nil {
		// really?!
		slog.Error("failed to show error dialog", "error", err)
	}
	os.Exit(1)
}
