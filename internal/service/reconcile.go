package service

import (
	"slices"
	"strings"

	"github.com/eventdesk/eventdesk/internal/domain/model"
)

// ReconcileResult is the exact slice of events to render plus the figure that
// drives the pagination controls.
type ReconcileResult struct {
	Items []model.Event
	// PaginationCount is the number of events left after the client-side
	// filters, NOT the server-side total. The list view has always counted
	// this way: the same search/status criteria are applied both server-side
	// and again here, and the visible count reflects the second pass. This
	// is surprising but observable behavior; do not "fix" it to page.Total.
	PaginationCount int
}

// Reconcile produces the rendered slice for one fetched page and the current
// view state. It is pure and deterministic: no I/O, no clock, safe to call
// synchronously on every state change.
//
// The engine does not clamp PageIndex. When a filter change strands the view
// beyond the result set, the slice comes back empty and the controller is
// responsible for resetting the page (see ListViewController).
func Reconcile(page model.EventPage, state model.ListViewState) ReconcileResult {
	visible := make([]model.Event, 0, len(page.Items))
	term := strings.ToLower(state.SearchTerm)

	for _, item := range page.Items {
		if !state.StatusFilter.Matches(item.Status) {
			continue
		}
		// Empty search term matches everything.
		if term != "" &&
			!strings.Contains(strings.ToLower(item.Name), term) &&
			!strings.Contains(strings.ToLower(item.Location), term) {
			continue
		}
		visible = append(visible, item)
	}

	// Stable: ties keep the server's relative order.
	slices.SortStableFunc(visible, func(a, b model.Event) int {
		return a.StartTime().Compare(b.StartTime())
	})

	return ReconcileResult{
		Items:           paginate(visible, state.PageIndex, state.PageSize),
		PaginationCount: len(visible),
	}
}

// paginate slices visible[pageIndex*pageSize : +pageSize). Out-of-range pages
// yield an empty slice. A non-positive page size returns everything, matching
// the "let the server decide" semantics of an absent page size.
func paginate(visible []model.Event, pageIndex, pageSize int) []model.Event {
	if pageSize <= 0 {
		return visible
	}
	start := pageIndex * pageSize
	if pageIndex < 0 || start >= len(visible) {
		return []model.Event{}
	}
	end := start + pageSize
	if end > len(visible) {
		end = len(visible)
	}
	return visible[start:end]
}
