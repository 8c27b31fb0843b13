package tui

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/list"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"go.uber.org/zap"

	"github.com/idilsaglam/reminders/internal/config"
	"github.com/idilsaglam/reminders/internal/model"
	"github.com/idilsaglam/reminders/internal/reminders"
	"github.com/idilsaglam/reminders/internal/ui"
)

type Options struct {
	Keys   config.Keymap
	Theme  string
	Group  bool
	Logger *zap.Logger
}

type inputMode int

const (
	modeBrowse inputMode = iota
	modeAddDescription
	modeAddTag
	modeEdit
	modeSearch
)

// reminderItem adapts a stored reminder to bubbles/list.Item.
type reminderItem struct {
	index int
	r     *model.Reminder
}

func (i reminderItem) Title() string       { return i.r.Description() }
func (i reminderItem) Description() string { return i.r.Tag() }
func (i reminderItem) FilterValue() string { return i.r.Description() }

type keyMap struct {
	Quit, Add, Edit, Toggle, Search, Group, Clear key.Binding
}

func newKeyMap(k config.Keymap) keyMap {
	bind := func(keys, help string) key.Binding {
		label := keys
		if keys == " " {
			label = "space"
		}
		return key.NewBinding(key.WithKeys(keys), key.WithHelp(label, help))
	}
	return keyMap{
		Quit:   bind(k.Quit, "quit"),
		Add:    bind(k.Add, "add"),
		Edit:   bind(k.Edit, "edit"),
		Toggle: bind(k.Toggle, "toggle"),
		Search: bind(k.Search, "search"),
		Group:  bind(k.Group, "group"),
		Clear:  bind(k.Clear, "back"),
	}
}

func (k keyMap) help() []key.Binding {
	return []key.Binding{k.Add, k.Edit, k.Toggle, k.Search, k.Group, k.Clear}
}

// Model is the Bubble Tea model over a reminders.Handler.
type Model struct {
	h     *reminders.Handler
	list  list.Model
	ti    textinput.Model
	keys  keyMap
	theme ui.Theme
	log   *zap.Logger

	mode        inputMode
	draft       string // description typed before the tag prompt
	editIndex   int
	query       string
	searching   bool
	grouped     bool
	inputErr    string
	status      string
	frameBorder lipgloss.Style
}

func New(h *reminders.Handler, opt Options) Model {
	if opt.Logger == nil {
		opt.Logger = zap.NewNop()
	}
	if opt.Keys == (config.Keymap{}) {
		opt.Keys = config.Defaults().Keys
	}
	theme := ui.NewTheme(lipgloss.DefaultRenderer(), opt.Theme)
	keys := newKeyMap(opt.Keys)

	l := list.New(nil, itemDelegate{theme: theme}, 0, 0)
	l.SetShowHelp(true)
	l.SetShowPagination(true)
	l.SetShowStatusBar(true)
	// Search goes through the handler; the list's fuzzy filter stays off.
	l.SetFilteringEnabled(false)
	l.KeyMap.Quit.SetEnabled(false)
	l.Styles.Title = theme.Title
	l.Styles.HelpStyle = theme.Muted
	l.Styles.PaginationStyle = theme.Muted
	l.SetStatusBarItemName("reminder", "reminders")
	l.AdditionalShortHelpKeys = keys.help
	l.AdditionalFullHelpKeys = keys.help

	ti := textinput.New()
	ti.Prompt = "> "
	ti.CharLimit = 200

	m := Model{
		h:       h,
		list:    l,
		ti:      ti,
		keys:    keys,
		theme:   theme,
		log:     opt.Logger,
		grouped: opt.Group,
		frameBorder: lipgloss.NewStyle().
			Border(theme.Border).
			BorderForeground(theme.BorderColor).
			Padding(0, 1),
	}
	m.refresh()
	return m
}

// Run starts the program and blocks until the user quits.
func Run(h *reminders.Handler, opt Options) error {
	p := tea.NewProgram(New(h, opt), tea.WithAltScreen())
	_, err := p.Run()
	return err
}

// refresh rebuilds the visible items from the handler.
func (m *Model) refresh() {
	var rs []*model.Reminder
	switch {
	case m.searching:
		rs = m.h.Search(m.query)
	case m.grouped:
		groups := m.h.GroupByTag()
		for _, tag := range m.h.Tags() {
			rs = append(rs, groups[tag]...)
		}
	default:
		rs = m.h.Reminders()
	}

	items := make([]list.Item, 0, len(rs))
	for _, r := range rs {
		items = append(items, reminderItem{index: m.h.IndexOf(r), r: r})
	}
	cur := m.list.Index()
	m.list.SetItems(items)
	if cur >= len(items) {
		cur = len(items) - 1
	}
	if cur >= 0 {
		m.list.Select(cur)
	}
	m.list.Title = m.title()
}

func (m Model) title() string {
	t := m.theme
	d, p := m.h.Stats()
	head := fmt.Sprintf("%s   %s %d  %s %d  %s %d",
		t.Title.Render("Reminders"),
		t.Success.Render(t.SymDone), d,
		t.Pending.Render(t.SymPending), p,
		t.Accent.Render("Total"), m.h.Size(),
	)
	switch {
	case m.searching:
		head += "  " + t.Muted.Render(fmt.Sprintf("search %q", m.query))
	case m.grouped:
		head += "  " + t.Muted.Render("by tag")
	}
	return head
}

func (m Model) selected() (reminderItem, bool) {
	it, ok := m.list.SelectedItem().(reminderItem)
	return it, ok
}

func (m *Model) prompt(mode inputMode, placeholder, value string) {
	m.mode = mode
	m.inputErr = ""
	m.ti.Placeholder = placeholder
	m.ti.SetValue(value)
	m.ti.CursorEnd()
	m.ti.Focus()
}

func (m *Model) closePrompt() {
	m.mode = modeBrowse
	m.ti.SetValue("")
	m.ti.Blur()
}

func (m Model) Init() tea.Cmd { return nil }

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if size, ok := msg.(tea.WindowSizeMsg); ok {
		m.list.SetSize(size.Width-4, size.Height-6)
		m.ti.Width = size.Width - 10
		return m, nil
	}
	if m.mode != modeBrowse {
		return m.updateInput(msg)
	}

	km, ok := msg.(tea.KeyMsg)
	if !ok {
		var cmd tea.Cmd
		m.list, cmd = m.list.Update(msg)
		return m, cmd
	}
	m.status = ""

	switch {
	case km.String() == "ctrl+c", key.Matches(km, m.keys.Quit):
		return m, tea.Quit

	case key.Matches(km, m.keys.Clear):
		if !m.searching && !m.grouped {
			return m, tea.Quit
		}
		m.searching, m.grouped, m.query = false, false, ""
		m.refresh()
		return m, nil

	case key.Matches(km, m.keys.Toggle):
		if it, ok := m.selected(); ok {
			m.h.ToggleCompletion(it.index)
			m.log.Debug("reminder toggled", zap.Int("index", it.index))
			m.refresh()
		}
		return m, nil

	case key.Matches(km, m.keys.Add):
		m.prompt(modeAddDescription, "New reminder...", "")
		return m, textinput.Blink

	case key.Matches(km, m.keys.Edit):
		if it, ok := m.selected(); ok {
			m.editIndex = it.index
			m.prompt(modeEdit, "Edit description...", it.r.Description())
			return m, textinput.Blink
		}
		return m, nil

	case key.Matches(km, m.keys.Search):
		m.prompt(modeSearch, "Tag or words...", m.query)
		return m, textinput.Blink

	case key.Matches(km, m.keys.Group):
		m.grouped = !m.grouped
		m.searching, m.query = false, ""
		m.refresh()
		return m, nil
	}

	var cmd tea.Cmd
	m.list, cmd = m.list.Update(msg)
	return m, cmd
}

func (m Model) updateInput(msg tea.Msg) (tea.Model, tea.Cmd) {
	km, ok := msg.(tea.KeyMsg)
	if ok {
		switch km.Type {
		case tea.KeyEsc:
			m.closePrompt()
			return m, nil
		case tea.KeyEnter:
			m.submit(m.ti.Value())
			return m, nil
		}
	}
	var cmd tea.Cmd
	m.ti, cmd = m.ti.Update(msg)
	return m, cmd
}

func (m *Model) submit(value string) {
	switch m.mode {
	case modeAddDescription:
		if strings.TrimSpace(value) == "" {
			m.inputErr = "Description cannot be empty"
			return
		}
		m.draft = value
		m.prompt(modeAddTag, "Tag...", "")
		return

	case modeAddTag:
		tag := strings.TrimSpace(value)
		m.h.AddReminder(m.draft, tag)
		m.log.Debug("reminder added", zap.Int("index", m.h.Size()-1), zap.String("tag", tag))
		m.draft = ""
		m.status = "added"

	case modeEdit:
		m.h.ModifyReminder(m.editIndex, value)
		m.log.Debug("reminder modified", zap.Int("index", m.editIndex))
		m.status = "updated"

	case modeSearch:
		m.query = strings.TrimSpace(value)
		m.searching = m.query != ""
		if m.searching {
			m.grouped = false
			found := m.h.Search(m.query)
			m.log.Debug("search", zap.String("keyword", m.query), zap.Int("results", len(found)))
			m.status = fmt.Sprintf("%d match(es)", len(found))
		}
	}
	m.closePrompt()
	m.refresh()
}

func (m Model) View() string {
	content := m.list.View()
	if m.status != "" {
		content += "\n" + m.theme.Success.Render(m.status)
	}
	if m.mode != modeBrowse {
		title := map[inputMode]string{
			modeAddDescription: "Add reminder",
			modeAddTag:         "Tag for " + fmt.Sprintf("%q", m.draft),
			modeEdit:           "Edit reminder",
			modeSearch:         "Search",
		}[m.mode]
		if m.inputErr != "" {
			title += " " + m.theme.Error.Render(m.inputErr)
		}
		content += "\n" + m.frameBorder.Render(title+"\n"+m.ti.View())
	}
	return m.frameBorder.Render(content)
}

// itemDelegate renders one reminder per line.
type itemDelegate struct {
	theme ui.Theme
}

func (d itemDelegate) Height() int                               { return 1 }
func (d itemDelegate) Spacing() int                              { return 0 }
func (d itemDelegate) Update(msg tea.Msg, m *list.Model) tea.Cmd { return nil }
func (d itemDelegate) Render(w io.Writer, m list.Model, index int, item list.Item) {
	it, ok := item.(reminderItem)
	if !ok {
		return
	}
	t := d.theme
	box := t.Muted.Render(t.BoxUnchecked)
	text := it.r.Description()
	if it.r.IsCompleted() {
		box = t.Success.Render(t.BoxChecked)
		text = t.Muted.Strikethrough(true).Render(text)
	}
	line := fmt.Sprintf("%s %s", box, text)
	if tag := it.r.Tag(); tag != "" {
		line += " " + t.Accent.Render("#"+tag)
	}

	prefix := "  "
	if index == m.Index() {
		prefix = t.Title.Reverse(true).Render("> ")
	}
	fmt.Fprintln(w, prefix+line)
}
