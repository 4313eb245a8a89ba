package model

// StatusFilter is the client-side status selector of the list view. Unlike
// EventStatus it has an explicit "All" member, because the view can show both
// statuses at once while the wire protocol simply omits the parameter.
type StatusFilter string

const (
	// FilterAll passes events of every status.
	FilterAll StatusFilter = "All"
	// FilterOngoing passes only ongoing events.
	FilterOngoing StatusFilter = "Ongoing"
	// FilterCompleted passes only completed events.
	FilterCompleted StatusFilter = "Completed"
)

// Valid reports whether the filter is one of the known values.
func (f StatusFilter) Valid() bool {
	return f == FilterAll || f == FilterOngoing || f == FilterCompleted
}

// Matches reports whether an event status passes the filter.
func (f StatusFilter) Matches(s EventStatus) bool {
	return f == FilterAll || EventStatus(f) == s
}

// Status returns the wire-level status for the server-side query: the
// concrete status for Ongoing/Completed, empty (omitted) for All.
func (f StatusFilter) Status() EventStatus {
	if f == FilterAll {
		return ""
	}
	return EventStatus(f)
}

// ListViewState is the client-held interaction state of the event list view.
// It is owned by the view controller and mutated only in response to user
// interaction. Changing SearchTerm or StatusFilter must reset PageIndex to 0
// so the user is never left on a page beyond the new result set; the
// controller in internal/service enforces that invariant.
type ListViewState struct {
	SearchTerm   string
	StatusFilter StatusFilter
	// PageIndex is 0-based, unlike EventQuery.Page which is 1-based.
	PageIndex int
	PageSize  int
}

// Query translates the view state into the server-side filter that backs it.
// The same search and status criteria are sent upstream and re-applied
// locally by the reconciler.
func (s ListViewState) Query() EventQuery {
	return EventQuery{
		Page:     s.PageIndex + 1,
		PageSize: s.PageSize,
		Keyword:  s.SearchTerm,
		Status:   s.StatusFilter.Status(),
	}
}
