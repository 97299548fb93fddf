// Package domain holds the task aggregate and the repository contract every
// storage backend implements.
package domain

import (
	"errors"
	"fmt"
	"strings"
)

var (
	ErrEmptyName    = errors.New("task name cannot be empty")
	ErrTaskNotFound = errors.New("task not found")
)

// Task is a persisted task record.
type Task struct {
	id          int32
	name        string
	description *string
	completed   bool
}

// RehydrateTask rebuilds a task from stored state.
func RehydrateTask(id int32, name string, description *string, completed bool) *Task {
	return &Task{
		id:          id,
		name:        name,
		description: cloneString(description),
		completed:   completed,
	}
}

// Getters

func (t *Task) ID() int32       { return t.id }
func (t *Task) Name() string    { return t.name }
func (t *Task) Completed() bool { return t.completed }

// Description returns the description and whether one is set.
func (t *Task) Description() (string, bool) {
	if t.description == nil {
		return "", false
	}
	return *t.description, true
}

// DescriptionPtr returns a copy of the optional description.
func (t *Task) DescriptionPtr() *string {
	return cloneString(t.description)
}

// SetCompleted marks the task as done. There is no way back.
func (t *Task) SetCompleted() {
	t.completed = true
}

// Clone returns an independent copy of the task.
func (t *Task) Clone() *Task {
	return RehydrateTask(t.id, t.name, t.description, t.completed)
}

// Equal reports whether two tasks hold the same field values.
func (t *Task) Equal(other *Task) bool {
	if t == nil || other == nil {
		return t == other
	}
	if t.id != other.id || t.name != other.name || t.completed != other.completed {
		return false
	}
	a, aok := t.Description()
	b, bok := other.Description()
	return aok == bok && a == b
}

func (t *Task) String() string {
	mark := "☐"
	if t.completed {
		mark = "☑"
	}
	if desc, ok := t.Description(); ok {
		return fmt.Sprintf("%s  - %s: %s", mark, t.name, desc)
	}
	return fmt.Sprintf("%s  - %s", mark, t.name)
}

// NewTask is a task awaiting an identifier from the backend.
type NewTask struct {
	Name        string
	Description *string
}

// Validate trims the name and rejects empty ones.
func (n *NewTask) Validate() error {
	n.Name = strings.TrimSpace(n.Name)
	if n.Name == "" {
		return ErrEmptyName
	}
	return nil
}

// WithDescription returns a NewTask carrying an optional description;
// an empty description is treated as absent.
func WithDescription(name, description string) NewTask {
	nt := NewTask{Name: name}
	if description != "" {
		nt.Description = &description
	}
	return nt
}

func cloneString(s *string) *string {
	if s == nil {
		return nil
	}
	v := *s
	return &v
}
