package reminders

import (
	"errors"
	"fmt"
	"sort"
	"strings"

	"github.com/idilsaglam/reminders/internal/model"
)

// ErrInvalidIndex is returned by GetReminder for an out-of-range index.
var ErrInvalidIndex = errors.New("invalid index")

// IndexError carries the rejected index and the size at the time of the call.
type IndexError struct {
	Index int
	Size  int
}

func (e *IndexError) Error() string {
	return fmt.Sprintf("%v: have %d, got %d", ErrInvalidIndex, e.Size, e.Index)
}

func (e *IndexError) Unwrap() error { return ErrInvalidIndex }

// Handler owns an insertion-ordered list of reminders. Positions in that
// list are the indexes accepted by every index-based method.
// A Handler is not safe for concurrent use.
type Handler struct {
	items []*model.Reminder
}

// New returns an empty handler.
func New() *Handler {
	return &Handler{}
}

// AddReminder appends a new pending reminder.
func (h *Handler) AddReminder(description, tag string) {
	h.items = append(h.items, model.New(description, tag))
}

// GetReminder returns the stored reminder at index. The returned pointer is
// shared with the handler, so changes through it are visible here.
func (h *Handler) GetReminder(index int) (*model.Reminder, error) {
	if !h.IsIndexValid(index) {
		return nil, &IndexError{Index: index, Size: len(h.items)}
	}
	return h.items[index], nil
}

// IsIndexValid reports whether 0 <= index < Size().
func (h *Handler) IsIndexValid(index int) bool {
	return len(h.items) > 0 && index >= 0 && index < len(h.items)
}

func (h *Handler) Size() int { return len(h.items) }

// ModifyReminder replaces the description at index. Invalid indexes are ignored.
func (h *Handler) ModifyReminder(index int, description string) {
	if !h.IsIndexValid(index) {
		return
	}
	h.items[index].SetDescription(description)
}

// ToggleCompletion flips the reminder at index. Invalid indexes are ignored.
func (h *Handler) ToggleCompletion(index int) {
	if !h.IsIndexValid(index) {
		return
	}
	h.items[index].ToggleCompletion()
}

// Search returns the reminders whose tag equals keyword, ignoring case.
// Only when no tag matches does it fall back to reminders whose description
// contains keyword. The two result sets are never merged.
func (h *Handler) Search(keyword string) []*model.Reminder {
	needle := normalize(keyword)

	byTag := h.filter(func(r *model.Reminder) bool {
		return normalize(r.Tag()) == needle
	})
	if len(byTag) > 0 {
		return byTag
	}
	return h.filter(func(r *model.Reminder) bool {
		return strings.Contains(normalize(r.Description()), needle)
	})
}

// GroupByTag buckets reminders under their lowercased tag.
func (h *Handler) GroupByTag() map[string][]*model.Reminder {
	groups := make(map[string][]*model.Reminder)
	for _, r := range h.items {
		key := normalize(r.Tag())
		groups[key] = append(groups[key], r)
	}
	return groups
}

// Reminders returns a copy of the list. Elements are shared.
func (h *Handler) Reminders() []*model.Reminder {
	out := make([]*model.Reminder, len(h.items))
	copy(out, h.items)
	return out
}

// IndexOf reports the position of r, compared by identity, or -1.
func (h *Handler) IndexOf(r *model.Reminder) int {
	for i, it := range h.items {
		if it == r {
			return i
		}
	}
	return -1
}

// Tags returns the GroupByTag keys in sorted order.
func (h *Handler) Tags() []string {
	groups := h.GroupByTag()
	tags := make([]string, 0, len(groups))
	for tag := range groups {
		tags = append(tags, tag)
	}
	sort.Strings(tags)
	return tags
}

// Stats counts completed and pending reminders.
func (h *Handler) Stats() (done, pending int) {
	for _, r := range h.items {
		if r.IsCompleted() {
			done++
		} else {
			pending++
		}
	}
	return
}

func (h *Handler) filter(keep func(*model.Reminder) bool) []*model.Reminder {
	out := []*model.Reminder{}
	for _, r := range h.items {
		if keep(r) {
			out = append(out, r)
		}
	}
	return out
}

// normalize is the single case rule for tags, keys and descriptions.
func normalize(s string) string { return strings.ToLower(s) }
