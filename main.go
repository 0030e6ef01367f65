// Copyright
// SPDX-License-Identifier: MIT
// pico-x: terminal widget kit built around a resizable split panel, plus a demo
package main

import (
	"errors"
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/rs/zerolog/log"

	"pico-x/internal/config"
	"pico-x/internal/logging"
	"pico-x/internal/tui"
)

const Version = "0.1.0"

/* ---------- CLI ---------- */

func main() {
	if len(os.Args) < 2 {
		usage()
		return
	}
	switch os.Args[1] {
	case "help", "-h", "--help":
		if len(os.Args) > 2 {
			helpTopic(os.Args[2])
		} else {
			usage()
		}
	case "version", "--version":
		fmt.Println("pico-x", Version)
	case "demo":
		cmdDemo(os.Args[2:])
	case "config":
		cmdConfig(os.Args[2:])
	default:
		usage()
	}
}

func usage() {
	fmt.Print(`pico-x ` + Version + `
Terminal widgets for Bubble Tea: split panel, rating, multiselect, tag chips, toasts, modals.
USAGE
  pico-x <command> [options]
COMMANDS
  demo         Run the interactive demo (editor and widget gallery in a split panel)
  config init  Write a config file with defaults (never overwrites)
  config show  Print the effective config (file + PICOX_* env)
  help         Show help (try: pico-x help demo)
  version      Print version
NOTES
  • Config lives at $PICOX_CONFIG or ~/.config/pico-x/config.toml.
  • The demo owns the terminal; use --log-file with -v or -vv to see logs.
` + "\n")
}

func helpTopic(name string) {
	switch name {
	case "demo":
		fmt.Print(`USAGE
  pico-x demo [--config PATH] [--position N] [--orientation horizontal|vertical]
              [--no-color] [--save] [-v | -vv] [--log-file PATH]
DESCRIPTION
  Runs the split panel demo. The divider can be dragged with the mouse, or focused
  with tab and moved with the arrow keys (shift for larger steps, home/end for the
  edges, enter to collapse). Press ? for all keys.
OPTIONS
  --config PATH          Config file (default: $PICOX_CONFIG or ~/.config/pico-x/config.toml)
  --position N           Initial divider position in percent (overrides config)
  --orientation MODE     horizontal | vertical (overrides config)
  --no-color             Disable colors (NO_COLOR is honoured too)
  --save                 Write the final divider position back to the config file
  -v                     INFO logs
  -vv                    DEBUG logs
  --log-file PATH        Append logs to file (created if missing)
` + "\n")
	case "config":
		fmt.Print(`USAGE
  pico-x config init [--config PATH]
  pico-x config show [--config PATH]
DESCRIPTION
  init writes the default settings to PATH unless a file is already there.
  show prints the settings the demo would use, after env overrides.
` + "\n")
	default:
		usage()
	}
}

/* ---------- commands ---------- */

func cmdDemo(args []string) {
	fs := flag.NewFlagSet("demo", flag.ExitOnError)
	fs.Usage = func() { helpTopic("demo") }
	cfgPath := fs.String("config", "", "Config file path")
	position := fs.Float64("position", -1, "Initial divider position in percent")
	orientation := fs.String("orientation", "", "horizontal|vertical")
	noColor := fs.Bool("no-color", false, "Disable colors")
	save := fs.Bool("save", false, "Save the final divider position to the config file")
	verbose := fs.Bool("v", false, "Verbose logs (INFO)")
	debug := fs.Bool("vv", false, "Debug logs (DEBUG)")
	logPath := fs.String("log-file", "", "Append logs to file (created if missing)")
	_ = fs.Parse(args)

	cfg, err := config.Load(*cfgPath)
	if err != nil {
		fatal(err)
	}

	verbosity := 0
	if *verbose {
		verbosity = 1
	}
	if *debug {
		verbosity = 2
	}
	if *logPath != "" {
		cfg.Log.File = *logPath
	}
	closer, err := logging.Setup(cfg.Log.File, logging.Level(verbosity, cfg.Log.Level))
	if err != nil {
		fatal(err)
	}
	defer closer.Close()

	if *position >= 0 {
		cfg.Split.Position = *position
	}
	if *orientation != "" {
		cfg.Split.Orientation = strings.ToLower(*orientation)
	}
	if *noColor {
		cfg.UI.NoColor = true
	}
	log.Info().Str("version", Version).Float64("position", cfg.Split.Position).Msg("demo: starting")

	res, err := tui.Run(cfg)
	if err != nil {
		log.Error().Err(err).Msg("demo: exited with error")
		fatal(err)
	}
	log.Info().Float64("position", res.Position).Bool("collapsed", res.Collapsed).Msg("demo: finished")

	fmt.Printf("Split:     %.2f%%", res.Position)
	if res.Collapsed {
		fmt.Print(" (collapsed)")
	}
	fmt.Println()
	fmt.Printf("Rating:    %d\n", res.Rating)
	fmt.Printf("Languages: %s\n", strings.Join(res.Languages, ", "))

	if *save {
		path := *cfgPath
		if path == "" {
			path = config.DefaultPath()
		}
		cfg.Split.Position = res.Position
		if err := config.Save(path, cfg); err != nil {
			fatal(err)
		}
		fmt.Println("Saved", path)
	}
}

func cmdConfig(args []string) {
	if len(args) == 0 {
		helpTopic("config")
		return
	}
	fs := flag.NewFlagSet("config "+args[0], flag.ExitOnError)
	fs.Usage = func() { helpTopic("config") }
	cfgPath := fs.String("config", "", "Config file path")
	_ = fs.Parse(args[1:])

	path := *cfgPath
	if path == "" {
		path = config.DefaultPath()
	}

	switch args[0] {
	case "init":
		if _, err := os.Stat(path); !errors.Is(err, os.ErrNotExist) {
			fmt.Println(path, "already exists; not overwriting")
			return
		}
		cfg, err := config.Load(path)
		if err != nil {
			fatal(err)
		}
		if err := config.Save(path, cfg); err != nil {
			fatal(err)
		}
		fmt.Println("Wrote", path)
	case "show":
		cfg, err := config.Load(path)
		if err != nil {
			fatal(err)
		}
		fmt.Printf("# %s\n", path)
		if err := toml.NewEncoder(os.Stdout).Encode(cfg); err != nil {
			fatal(fmt.Errorf("encode config: %w", err))
		}
	default:
		helpTopic("config")
	}
}

func fatal(err error) {
	fmt.Fprintln(os.Stderr, "pico-x:", err)
	os.Exit(1)
}
