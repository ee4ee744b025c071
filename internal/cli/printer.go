package cli

import (
	"fmt"
	"io"
	"text/tabwriter"

	"taskdeck/internal/controller"
	"taskdeck/internal/domain"
)

// StatePrinter renders controller states as terminal output. It is the
// CLI's listener on the state stream: every published state maps to one
// block of output.
type StatePrinter struct {
	out   io.Writer
	muted bool
}

// NewStatePrinter creates a printer writing to the given writer.
func NewStatePrinter(out io.Writer) *StatePrinter {
	return &StatePrinter{out: out}
}

// Mute suppresses output until Unmute. Commands that prime the cache with
// a background refresh mute the printer so only the final view is shown.
func (p *StatePrinter) Mute() {
	p.muted = true
}

// Unmute re-enables output.
func (p *StatePrinter) Unmute() {
	p.muted = false
}

// Listen renders a single controller state.
func (p *StatePrinter) Listen(state controller.State) {
	if p.muted {
		return
	}

	switch s := state.(type) {
	case controller.Loading:
		fmt.Fprintln(p.out, "Loading tasks...")
	case controller.Loaded:
		p.printView(s.View)
	case controller.OperationDone:
		fmt.Fprintln(p.out, s.Message)
	case controller.Failed:
		fmt.Fprintf(p.out, "Error: %s\n", s.Message)
	}
}

func (p *StatePrinter) printView(view domain.View) {
	if criteria := describeCriteria(view); criteria != "" {
		fmt.Fprintln(p.out, criteria)
	}

	if len(view.Filtered) == 0 {
		fmt.Fprintln(p.out, "No tasks found")
		return
	}

	w := tabwriter.NewWriter(p.out, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tTITLE\tSTATUS\tPRIORITY\tDUE\tASSIGNEE")
	for _, task := range view.Filtered {
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\t%s\n",
			task.ID,
			task.Title,
			task.Status,
			task.Priority,
			formatDueDate(task),
			formatAssignee(task),
		)
	}
	w.Flush()

	if view.HasActiveCriteria() {
		fmt.Fprintf(p.out, "%d of %d tasks\n", len(view.Filtered), len(view.Full))
	}
}

func describeCriteria(view domain.View) string {
	switch {
	case view.SearchQuery != "":
		return fmt.Sprintf("Search: %q", view.SearchQuery)
	case view.StatusFilter != nil && view.PriorityFilter != nil:
		return fmt.Sprintf("Filter: status=%s priority=%s", *view.StatusFilter, *view.PriorityFilter)
	case view.StatusFilter != nil:
		return fmt.Sprintf("Filter: status=%s", *view.StatusFilter)
	case view.PriorityFilter != nil:
		return fmt.Sprintf("Filter: priority=%s", *view.PriorityFilter)
	}
	return ""
}

func formatDueDate(task domain.Task) string {
	due := task.DueDate.Format("2006-01-02")
	if task.IsOverdue {
		return due + " (overdue)"
	}
	return due
}

func formatAssignee(task domain.Task) string {
	if task.Assignee == nil {
		return "-"
	}
	return task.Assignee.String()
}

// PrintTask renders a single task in long form, for the get command.
func (p *StatePrinter) PrintTask(task domain.Task) {
	w := tabwriter.NewWriter(p.out, 0, 4, 2, ' ', 0)
	fmt.Fprintf(w, "ID:\t%s\n", task.ID)
	fmt.Fprintf(w, "Title:\t%s\n", task.Title)
	if task.Description != "" {
		fmt.Fprintf(w, "Description:\t%s\n", task.Description)
	}
	fmt.Fprintf(w, "Status:\t%s\n", task.Status)
	fmt.Fprintf(w, "Priority:\t%s\n", task.Priority)
	fmt.Fprintf(w, "Due:\t%s\n", formatDueDate(task))
	fmt.Fprintf(w, "Creator:\t%s\n", task.Creator.String())
	fmt.Fprintf(w, "Assignee:\t%s\n", formatAssignee(task))
	w.Flush()
}
