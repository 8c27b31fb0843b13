package cli

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"go.uber.org/zap"

	"github.com/idilsaglam/reminders/internal/reminders"
	"github.com/idilsaglam/reminders/internal/ui"
)

// Session runs shell commands against one in-memory handler.
type Session struct {
	Group bool // default layout for ls

	h   *reminders.Handler
	p   *ui.Printer
	log *zap.Logger
}

// NewSession binds a session to h. A nil log discards output.
func NewSession(h *reminders.Handler, p *ui.Printer, log *zap.Logger) *Session {
	if log == nil {
		log = zap.NewNop()
	}
	return &Session{h: h, p: p, log: log}
}

// Exec runs a single command line and returns an exit code
// (0 ok, 1 error, 2 usage).
func (s *Session) Exec(args []string) int {
	if len(args) == 0 {
		return 0
	}
	cmd, a := args[0], args[1:]

	switch cmd {
	case "help", "-h", "--help":
		printSessionHelp(s.p.Out())
		return 0

	case "add":
		if len(a) < 2 {
			s.p.Fail("usage: add <tag> <description...>")
			return 2
		}
		return s.doAdd(a[0], strings.Join(a[1:], " "))

	case "ls":
		group := s.Group
		for _, f := range a {
			switch f {
			case "--group", "-g":
				group = true
			case "--flat":
				group = false
			default:
				s.p.Fail("usage: ls [--group|--flat]")
				return 2
			}
		}
		return s.doList(group)

	case "get":
		if len(a) != 1 {
			s.p.Fail("usage: get <index>")
			return 2
		}
		n, code := s.parseIndex(cmd, a[0])
		if code != 0 {
			return code
		}
		return s.doGet(n)

	case "edit":
		if len(a) < 2 {
			s.p.Fail("usage: edit <index> <description...>")
			return 2
		}
		n, code := s.parseIndex(cmd, a[0])
		if code != 0 {
			return code
		}
		return s.doEdit(n, strings.Join(a[1:], " "))

	case "done":
		if len(a) != 1 {
			s.p.Fail("usage: done <index>")
			return 2
		}
		n, code := s.parseIndex(cmd, a[0])
		if code != 0 {
			return code
		}
		return s.doToggle(n)

	case "tag":
		if len(a) != 2 {
			s.p.Fail("usage: tag <index> <tag>")
			return 2
		}
		n, code := s.parseIndex(cmd, a[0])
		if code != 0 {
			return code
		}
		return s.doRetag(n, a[1])

	case "search":
		if len(a) == 0 {
			s.p.Fail("usage: search <keyword...>")
			return 2
		}
		return s.doSearch(strings.Join(a, " "))

	case "group":
		if len(a) != 0 {
			s.p.Fail("usage: group")
			return 2
		}
		return s.doList(true)

	case "size":
		fmt.Fprintln(s.p.Out(), s.h.Size())
		return 0
	}

	s.p.Fail("unknown command: " + cmd)
	s.p.Hint("run `help` to see available commands")
	return 2
}

// -------------- command impls ----------------

func (s *Session) doAdd(tag, description string) int {
	s.h.AddReminder(description, tag)
	s.log.Debug("reminder added", zap.Int("index", s.h.Size()-1), zap.String("tag", tag))
	s.p.OK(fmt.Sprintf("added #%d", s.h.Size()))
	return 0
}

func (s *Session) doList(group bool) int {
	lines := s.header()
	if group {
		lines = append(lines, s.groupLines()...)
	} else {
		lines = append(lines, s.flatLines(s.h.Reminders())...)
	}
	if s.h.Size() == 0 {
		lines = append(lines, "", s.p.Theme().Muted.Render("Tip: add with `add grocery Buy milk`"))
	}
	s.p.Panel(lines)
	return 0
}

func (s *Session) doGet(userIndex int) int {
	r, err := s.h.GetReminder(userIndex - 1)
	if err != nil {
		var ie *reminders.IndexError
		if errors.As(err, &ie) {
			s.outOfRange(userIndex)
			return 2
		}
		s.p.Fail("get: " + err.Error())
		return 1
	}
	t := s.p.Theme()
	state := t.Pending.Render("pending")
	if r.IsCompleted() {
		state = t.Success.Render("done")
	}
	s.p.Panel([]string{
		t.Title.Render(fmt.Sprintf("Reminder %d", userIndex)),
		"description: " + r.Description(),
		"tag:         " + tagLabel(r.Tag()),
		"state:       " + state,
	})
	return 0
}

func (s *Session) doEdit(userIndex int, description string) int {
	idx := userIndex - 1
	if !s.h.IsIndexValid(idx) {
		s.outOfRange(userIndex)
		return 2
	}
	s.h.ModifyReminder(idx, description)
	s.log.Debug("reminder modified", zap.Int("index", idx))
	s.p.OK("updated")
	return 0
}

func (s *Session) doToggle(userIndex int) int {
	idx := userIndex - 1
	if !s.h.IsIndexValid(idx) {
		s.outOfRange(userIndex)
		return 2
	}
	s.h.ToggleCompletion(idx)
	s.log.Debug("reminder toggled", zap.Int("index", idx))
	s.p.OK("toggled")
	return 0
}

func (s *Session) doRetag(userIndex int, tag string) int {
	r, err := s.h.GetReminder(userIndex - 1)
	if err != nil {
		s.outOfRange(userIndex)
		return 2
	}
	r.SetTag(tag)
	s.log.Debug("reminder retagged", zap.Int("index", userIndex-1), zap.String("tag", tag))
	s.p.OK("retagged")
	return 0
}

func (s *Session) doSearch(keyword string) int {
	found := s.h.Search(keyword)
	s.log.Debug("search", zap.String("keyword", keyword), zap.Int("results", len(found)))

	t := s.p.Theme()
	lines := []string{
		fmt.Sprintf("%s  %s", t.Title.Render("Search"), t.Accent.Render(fmt.Sprintf("%q", keyword))),
		"",
	}
	if len(found) == 0 {
		lines = append(lines, t.Muted.Render("no matches"))
	} else {
		lines = append(lines, s.flatLines(found)...)
	}
	s.p.Panel(lines)
	return 0
}

func (s *Session) parseIndex(cmd, arg string) (int, int) {
	n, err := strconv.Atoi(arg)
	if err != nil {
		s.p.Fail(cmd + ": not a number: " + arg)
		return 0, 2
	}
	return n, 0
}

func (s *Session) outOfRange(userIndex int) {
	s.log.Warn("invalid index", zap.Int("index", userIndex-1), zap.Int("size", s.h.Size()))
	s.p.Fail(fmt.Sprintf("index out of range: have %d, got %d", s.h.Size(), userIndex))
	s.p.Hint("run `ls` to see valid indexes")
}
