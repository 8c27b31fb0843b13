package tui

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"

	"github.com/idilsaglam/reminders/internal/reminders"
)

func runes(s string) tea.KeyMsg { return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)} }

var (
	space = tea.KeyMsg{Type: tea.KeySpace, Runes: []rune(" ")}
	enter = tea.KeyMsg{Type: tea.KeyEnter}
	esc   = tea.KeyMsg{Type: tea.KeyEsc}
)

func newTestModel(t *testing.T, h *reminders.Handler) Model {
	t.Helper()
	m := New(h, Options{Theme: "mono"})
	next, _ := m.Update(tea.WindowSizeMsg{Width: 80, Height: 24})
	return next.(Model)
}

func press(t *testing.T, m Model, msgs ...tea.Msg) Model {
	t.Helper()
	for _, msg := range msgs {
		next, _ := m.Update(msg)
		m = next.(Model)
	}
	return m
}

func visible(m Model) []string {
	var out []string
	for _, it := range m.list.Items() {
		out = append(out, it.(reminderItem).r.Description())
	}
	return out
}

func TestNew_ListsHandlerContents(t *testing.T) {
	h := reminders.New()
	h.AddReminder("Buy milk", "grocery")
	h.AddReminder("Call mom", "family")

	m := newTestModel(t, h)

	assert.Equal(t, []string{"Buy milk", "Call mom"}, visible(m))
	assert.Contains(t, m.View(), "Buy milk")
}

func TestToggle(t *testing.T) {
	h := reminders.New()
	h.AddReminder("Buy milk", "grocery")
	h.AddReminder("Call mom", "family")
	m := newTestModel(t, h)

	m = press(t, m, tea.KeyMsg{Type: tea.KeyDown}, space)

	r, err := h.GetReminder(1)
	require.NoError(t, err)
	assert.True(t, r.IsCompleted())
	first, _ := h.GetReminder(0)
	assert.False(t, first.IsCompleted())

	m = press(t, m, space)
	assert.False(t, r.IsCompleted())
}

func TestAdd_TwoStepPrompt(t *testing.T) {
	h := reminders.New()
	m := newTestModel(t, h)

	m = press(t, m, runes("a"))
	require.Equal(t, modeAddDescription, m.mode)

	m = press(t, m, enter)
	assert.Equal(t, modeAddDescription, m.mode, "empty description is rejected by the prompt")
	assert.NotEmpty(t, m.inputErr)

	m.ti.SetValue("Buy milk")
	m = press(t, m, enter)
	require.Equal(t, modeAddTag, m.mode)

	m.ti.SetValue("Grocery")
	m = press(t, m, enter)
	assert.Equal(t, modeBrowse, m.mode)

	require.Equal(t, 1, h.Size())
	r, _ := h.GetReminder(0)
	assert.Equal(t, "Buy milk", r.Description())
	assert.Equal(t, "Grocery", r.Tag())
	assert.Equal(t, []string{"Buy milk"}, visible(m))
}

func TestAdd_EscCancels(t *testing.T) {
	h := reminders.New()
	m := newTestModel(t, h)

	m = press(t, m, runes("a"))
	m.ti.SetValue("never mind")
	m = press(t, m, esc)

	assert.Equal(t, modeBrowse, m.mode)
	assert.Equal(t, 0, h.Size())
}

func TestEdit(t *testing.T) {
	h := reminders.New()
	h.AddReminder("Buy milk", "grocery")
	m := newTestModel(t, h)

	m = press(t, m, runes("e"))
	require.Equal(t, modeEdit, m.mode)
	assert.Equal(t, "Buy milk", m.ti.Value())

	m.ti.SetValue("Buy oat milk")
	m = press(t, m, enter)

	r, _ := h.GetReminder(0)
	assert.Equal(t, "Buy oat milk", r.Description())
	assert.Equal(t, "grocery", r.Tag())
}

func TestSearch_ThenToggleResult(t *testing.T) {
	h := reminders.New()
	h.AddReminder("Finish report", "work")
	h.AddReminder("Buy Milk", "grocery")
	h.AddReminder("Buy eggs", "grocery")
	m := newTestModel(t, h)

	m = press(t, m, runes("s"))
	m.ti.SetValue("milk")
	m = press(t, m, enter)

	assert.True(t, m.searching)
	assert.Equal(t, []string{"Buy Milk"}, visible(m))

	m = press(t, m, space)
	r, _ := h.GetReminder(1)
	assert.True(t, r.IsCompleted(), "toggle acts on the handler index of the result")

	m = press(t, m, esc)
	assert.False(t, m.searching)
	assert.Len(t, visible(m), 3)
}

func TestGroup(t *testing.T) {
	h := reminders.New()
	h.AddReminder("a", "Work")
	h.AddReminder("c", "Home")
	h.AddReminder("b", "work")
	m := newTestModel(t, h)

	m = press(t, m, runes("g"))
	assert.True(t, m.grouped)
	assert.Equal(t, []string{"c", "a", "b"}, visible(m))

	m = press(t, m, runes("g"))
	assert.Equal(t, []string{"a", "c", "b"}, visible(m))
}

func TestQuit(t *testing.T) {
	m := newTestModel(t, reminders.New())

	_, cmd := m.Update(runes("q"))
	require.NotNil(t, cmd)
	assert.IsType(t, tea.QuitMsg{}, cmd())
}

func TestLogsHandlerOperations(t *testing.T) {
	core, logs := observer.New(zapcore.DebugLevel)
	h := reminders.New()
	h.AddReminder("Buy milk", "grocery")

	m := New(h, Options{Theme: "mono", Logger: zap.New(core)})
	m = press(t, m, space)

	entries := logs.FilterMessage("reminder toggled").All()
	require.Len(t, entries, 1)
	assert.Equal(t, int64(0), entries[0].ContextMap()["index"])
}
