package model

// Reminder is the domain model for a single task note.
// Completion can only be flipped, never assigned.
type Reminder struct {
	description string
	tag         string
	completed   bool
}

// New returns a pending reminder. Inputs are stored as given.
func New(description, tag string) *Reminder {
	return &Reminder{description: description, tag: tag}
}

func (r *Reminder) Description() string { return r.description }

func (r *Reminder) SetDescription(description string) { r.description = description }

func (r *Reminder) Tag() string { return r.tag }

func (r *Reminder) SetTag(tag string) { r.tag = tag }

func (r *Reminder) IsCompleted() bool { return r.completed }

// ToggleCompletion flips the completion state.
func (r *Reminder) ToggleCompletion() { r.completed = !r.completed }
