package cache

import (
	"taskdeck/internal/domain"
)

// TaskCache holds the authoritative-as-of-last-sync ordered collection of
// tasks for the current session. Insertion order is preserved on load and
// new tasks are appended; identifiers are unique, with updates replacing
// the existing entry in place.
//
// The cache is exclusively owned by one controller instance, which
// serializes all access; the cache itself performs no locking. Task counts
// are small (hundreds), so linear scans are used instead of a hash index.
type TaskCache struct {
	tasks []domain.Task
}

// New creates an empty TaskCache.
func New() *TaskCache {
	return &TaskCache{}
}

// ReplaceAll sets the cache contents to exactly the given sequence,
// preserving the given order.
func (c *TaskCache) ReplaceAll(tasks []domain.Task) {
	c.tasks = make([]domain.Task, len(tasks))
	copy(c.tasks, tasks)
}

// Upsert replaces the task with the same identifier in place, or appends
// the task when no entry with its identifier exists.
func (c *TaskCache) Upsert(task domain.Task) {
	for i := range c.tasks {
		if c.tasks[i].ID == task.ID {
			c.tasks[i] = task
			return
		}
	}
	c.tasks = append(c.tasks, task)
}

// Remove deletes the entry with the matching identifier. Removing an
// absent identifier is a no-op, not an error.
func (c *TaskCache) Remove(id string) {
	for i := range c.tasks {
		if c.tasks[i].ID == id {
			c.tasks = append(c.tasks[:i], c.tasks[i+1:]...)
			return
		}
	}
}

// Find returns the task with the matching identifier, if present.
func (c *TaskCache) Find(id string) (domain.Task, bool) {
	for i := range c.tasks {
		if c.tasks[i].ID == id {
			return c.tasks[i], true
		}
	}
	return domain.Task{}, false
}

// All returns a copy of the full ordered sequence. Callers cannot mutate
// cache internals through the returned slice.
func (c *TaskCache) All() []domain.Task {
	out := make([]domain.Task, len(c.tasks))
	copy(out, c.tasks)
	return out
}

// ByStatus returns the tasks whose status equals the argument, in cache order.
func (c *TaskCache) ByStatus(status domain.Status) []domain.Task {
	var out []domain.Task
	for i := range c.tasks {
		if c.tasks[i].Status == status {
			out = append(out, c.tasks[i])
		}
	}
	return out
}

// Len returns the number of cached tasks.
func (c *TaskCache) Len() int {
	return len(c.tasks)
}
