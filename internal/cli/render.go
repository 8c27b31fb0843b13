package cli

import (
	"fmt"

	"github.com/mattn/go-runewidth"

	"github.com/idilsaglam/reminders/internal/model"
	"github.com/idilsaglam/reminders/internal/ui"
)

const maxDescriptionWidth = 80

func (s *Session) header() []string {
	t := s.p.Theme()
	d, p := s.h.Stats()
	head := fmt.Sprintf("%s  %s %d  %s %d  %s %d",
		t.Title.Render("Reminders"),
		t.Success.Render(t.SymDone), d,
		t.Pending.Render(t.SymPending), p,
		t.Accent.Render("Total"), s.h.Size(),
	)
	return []string{head, t.Muted.Render(ui.ProgressBar(d, d+p, 28)), ""}
}

// flatLines renders rs with their 1-based position in the handler.
func (s *Session) flatLines(rs []*model.Reminder) []string {
	t := s.p.Theme()
	if len(rs) == 0 {
		return []string{t.Muted.Render("no reminders")}
	}
	out := make([]string, 0, len(rs))
	for _, r := range rs {
		idx := fmt.Sprintf("%2d.", s.h.IndexOf(r)+1)
		box, style := t.BoxUnchecked, t.Muted
		if r.IsCompleted() {
			box, style = t.BoxChecked, t.Success
		}
		desc := runewidth.Truncate(r.Description(), maxDescriptionWidth, "...")
		line := fmt.Sprintf("%s %s %s", t.Muted.Render(idx), style.Render(box), desc)
		if tag := r.Tag(); tag != "" {
			line += " " + t.Accent.Render("#"+tag)
		}
		out = append(out, line)
	}
	return out
}

func (s *Session) groupLines() []string {
	t := s.p.Theme()
	groups := s.h.GroupByTag()
	var lines []string
	for i, tag := range s.h.Tags() {
		if i > 0 {
			lines = append(lines, "")
		}
		members := groups[tag]
		lines = append(lines, fmt.Sprintf("%s %s", t.Accent.Render(tagLabel(tag)), t.Muted.Render(fmt.Sprintf("(%d)", len(members)))))
		lines = append(lines, s.flatLines(members)...)
	}
	if len(lines) == 0 {
		lines = append(lines, t.Muted.Render("(none)"))
	}
	return lines
}

func tagLabel(tag string) string {
	if tag == "" {
		return "(untagged)"
	}
	return tag
}
