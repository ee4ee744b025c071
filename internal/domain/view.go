package domain

// View is the derived pair of the full task list and the currently
// filtered or searched subset, plus the active criteria metadata.
// A View is a snapshot: Filtered is consistent with the criteria at the
// time it was derived and is not recomputed when the cache changes.
type View struct {
	Full           []Task
	Filtered       []Task
	StatusFilter   *Status
	PriorityFilter *Priority
	SearchQuery    string // "" means no active search
}

// HasActiveCriteria reports whether any filter or search is active.
func (v View) HasActiveCriteria() bool {
	return v.StatusFilter != nil || v.PriorityFilter != nil || v.SearchQuery != ""
}
