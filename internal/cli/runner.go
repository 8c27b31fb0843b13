package cli

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"

	"go.uber.org/zap"

	"github.com/idilsaglam/reminders/internal/config"
	"github.com/idilsaglam/reminders/internal/reminders"
	"github.com/idilsaglam/reminders/internal/tui"
	"github.com/idilsaglam/reminders/internal/ui"
)

// Options tune behavior from root flags and the config file.
type Options struct {
	Group  bool // list grouped by tag
	Prompt bool // print a prompt before each shell line
	Config config.Config
	Logger *zap.Logger

	In       io.Reader
	Out, Err io.Writer
}

func (o *Options) defaults() {
	if o.Logger == nil {
		o.Logger = zap.NewNop()
	}
	if o.In == nil {
		o.In = os.Stdin
	}
	if o.Out == nil {
		o.Out = os.Stdout
	}
	if o.Err == nil {
		o.Err = os.Stderr
	}
	if o.Config.Theme == "" {
		o.Config = config.Defaults()
	}
}

// Run dispatches subcommands and returns an exit code (0 ok, 1 error, 2 usage).
func Run(args []string, opt Options) int {
	opt.defaults()
	p := ui.NewPrinter(opt.Out, opt.Err, opt.Config.Theme, opt.Config.Color)
	if len(args) == 0 {
		PrintHelp(opt.Out)
		return 2
	}
	cmd := args[0]

	switch cmd {
	case "help", "-h", "--help":
		PrintHelp(opt.Out)
		return 0

	case "tui", "ls":
		h := reminders.New()
		if err := tui.Run(h, tui.Options{
			Keys:   opt.Config.Keys,
			Theme:  opt.Config.Theme,
			Group:  opt.Group || opt.Config.GroupByTag,
			Logger: opt.Logger,
		}); err != nil {
			p.Fail("tui: " + err.Error())
			return 1
		}
		return 0

	case "shell":
		s := NewSession(reminders.New(), p, opt.Logger)
		s.Group = opt.Group || opt.Config.GroupByTag
		return s.Serve(opt.In, opt.Prompt)
	}

	p.Fail("unknown subcommand: " + cmd)
	fmt.Fprintln(opt.Err)
	PrintHelp(opt.Err)
	return 2
}

// Serve reads one command per line until quit or EOF.
func (s *Session) Serve(in io.Reader, prompt bool) int {
	sc := bufio.NewScanner(in)
	for {
		if prompt {
			fmt.Fprint(s.p.Out(), s.p.Theme().Accent.Render("reminders> "))
		}
		if !sc.Scan() {
			break
		}
		fields := strings.Fields(sc.Text())
		if len(fields) == 0 {
			continue
		}
		if fields[0] == "quit" || fields[0] == "exit" {
			return 0
		}
		if code := s.Exec(fields); code != 0 {
			s.log.Debug("command failed", zap.String("cmd", fields[0]), zap.Int("code", code))
		}
	}
	if err := sc.Err(); err != nil {
		s.p.Fail("read: " + err.Error())
		return 1
	}
	return 0
}

// PrintHelp writes the top-level usage to w.
func PrintHelp(w io.Writer) {
	fmt.Fprint(w, `reminders - tagged reminders, in memory

Usage:
  reminders [flags] <subcommand>

Subcommands:
  tui                Interactive list (alias: ls)
  shell              Line-oriented session reading commands from stdin
  help               Show this help

Flags:
  -group             Group listings by tag
  -config <path>     Config file (default $REMINDERS_CONFIG or user config dir)
  -theme <name>      classic | neon | mono
  -color <mode>      auto | always | never
  -v                 Debug logging on stderr

Run "help" inside the shell for its commands.
`)
}

func printSessionHelp(w io.Writer) {
	fmt.Fprint(w, `Commands:
  add <tag> <description...>   Add a reminder
  ls [--group]                 List reminders
  get <index>                  Show one reminder
  edit <index> <description...>
                               Replace the description
  done <index>                 Toggle completion
  tag <index> <tag>            Change the tag
  search <keyword...>          Exact tag match, else description substring
  group                        Reminders grouped by tag
  size                         Number of reminders
  quit                         Leave the shell

Indexes are 1-based, as shown by ls.

Examples:
  add grocery Buy milk
  done 1
  search grocery
`)
}
