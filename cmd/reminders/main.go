package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/idilsaglam/reminders/internal/cli"
	"github.com/idilsaglam/reminders/internal/config"
	"github.com/idilsaglam/reminders/internal/logging"
)

func main() {
	// Root flags (apply to every subcommand)
	group := flag.Bool("group", false, "group listings by tag")
	configPath := flag.String("config", config.ResolveConfigPath(), "path to config.toml")
	theme := flag.String("theme", "", "classic | neon | mono (overrides config)")
	color := flag.String("color", "", "auto | always | never (overrides config)")
	verbose := flag.Bool("v", false, "debug logging on stderr")
	flag.Parse()

	args := flag.Args()
	if len(args) == 0 {
		cli.PrintHelp(os.Stderr)
		os.Exit(2)
	}

	cfg, err := config.LoadOrCreate(*configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to load config: %v\n", err)
		os.Exit(1)
	}
	if *theme != "" {
		cfg.Theme = *theme
	}
	if *color != "" {
		cfg.Color = *color
	}
	if *verbose {
		cfg.LogLevel = "debug"
	}
	if err := cfg.Validate(); err != nil {
		fmt.Fprintf(os.Stderr, "invalid flags: %v\n", err)
		os.Exit(2)
	}

	logger, err := logging.NewLogger(logging.Config{Level: cfg.LogLevel, Format: cfg.LogFormat}, os.Stderr)
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to create logger: %v\n", err)
		os.Exit(1)
	}

	code := cli.Run(args, cli.Options{
		Group:  *group,
		Prompt: isTerminal(os.Stdin),
		Config: cfg,
		Logger: logger,
	})
	logger.Sync()
	os.Exit(code)
}

func isTerminal(f *os.File) bool {
	fi, err := f.Stat()
	if err != nil {
		return false
	}
	return (fi.Mode() & os.ModeCharDevice) != 0
}
