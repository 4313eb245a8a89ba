package service

import (
	"sync"

	"github.com/google/uuid"

	"github.com/eventdesk/eventdesk/internal/domain/model"
	apperrors "github.com/eventdesk/eventdesk/internal/errors"
)

// DefaultPageSize matches the list view's initial rows-per-page selection.
const DefaultPageSize = 10

// FetchToken identifies one in-flight list fetch for the stale-response
// guard.
type FetchToken struct {
	id uuid.UUID
}

// ListViewController owns the ListViewState of one event list view. It
// enforces the view-level invariants the reconciler deliberately leaves to
// its caller: changing the filter criteria resets the page to 0, and only
// the most recently issued fetch may render its result.
type ListViewController struct {
	mu     sync.Mutex
	state  model.ListViewState
	latest uuid.UUID
}

// NewListViewController creates a controller with the view's initial state:
// empty search, all statuses, first page.
func NewListViewController() *ListViewController {
	return &ListViewController{
		state: model.ListViewState{
			StatusFilter: model.FilterAll,
			PageSize:     DefaultPageSize,
		},
	}
}

// State returns a snapshot of the current view state.
func (c *ListViewController) State() model.ListViewState {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.state
}

// SetSearchTerm updates the free-text search and resets the page to 0, so a
// narrowed result set never leaves the user stranded past its end.
func (c *ListViewController) SetSearchTerm(term string) model.ListViewState {
	c.mu.Lock()
	defer c.mu.Unlock()
	if term != c.state.SearchTerm {
		c.state.SearchTerm = term
		c.state.PageIndex = 0
	}
	return c.state
}

// SetStatusFilter updates the status selector and resets the page to 0.
func (c *ListViewController) SetStatusFilter(filter model.StatusFilter) (model.ListViewState, error) {
	if !filter.Valid() {
		return c.State(), apperrors.ValidationField("status", "unknown status filter")
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	if filter != c.state.StatusFilter {
		c.state.StatusFilter = filter
		c.state.PageIndex = 0
	}
	return c.state, nil
}

// SetPageIndex moves to another page of the current result set.
func (c *ListViewController) SetPageIndex(index int) (model.ListViewState, error) {
	if index < 0 {
		return c.State(), apperrors.ValidationField("page", "page index cannot be negative")
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	c.state.PageIndex = index
	return c.state, nil
}

// SetPageSize changes the rows-per-page selection and resets the page to 0.
func (c *ListViewController) SetPageSize(size int) (model.ListViewState, error) {
	if size <= 0 {
		return c.State(), apperrors.ValidationField("pageSize", "page size must be positive")
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	if size != c.state.PageSize {
		c.state.PageSize = size
		c.state.PageIndex = 0
	}
	return c.state, nil
}

// BeginFetch marks the start of a new list fetch and supersedes any fetch
// still in flight. The returned token must be presented to Accept before the
// fetch's result is rendered.
func (c *ListViewController) BeginFetch() FetchToken {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.latest = uuid.New()
	return FetchToken{id: c.latest}
}

// Accept reports whether the fetch identified by token is still the most
// recently issued one. A superseded fetch whose response arrives late must be
// discarded by the caller; the directory client does not serialize requests.
func (c *ListViewController) Accept(token FetchToken) bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return token.id != uuid.Nil && token.id == c.latest
}
