package httpx

import (
	"net/url"
	"strconv"

	"github.com/eventdesk/eventdesk/internal/domain/model"
	apperrors "github.com/eventdesk/eventdesk/internal/errors"
	"github.com/eventdesk/eventdesk/internal/service"
)

// ParseListViewState extracts the list view's interaction state from URL
// query parameters: ?search=&status=&page=&pageSize=. Absent parameters fall
// back to the view's initial state (empty search, all statuses, first page,
// default page size). page is 0-based, matching the view.
func ParseListViewState(q url.Values) (model.ListViewState, error) {
	state := model.ListViewState{
		SearchTerm:   q.Get("search"),
		StatusFilter: model.FilterAll,
		PageSize:     service.DefaultPageSize,
	}

	if raw := q.Get("status"); raw != "" {
		filter := model.StatusFilter(raw)
		if !filter.Valid() {
			return model.ListViewState{}, apperrors.ValidationField("status", "unknown status filter")
		}
		state.StatusFilter = filter
	}

	if raw := q.Get("page"); raw != "" {
		page, err := strconv.Atoi(raw)
		if err != nil || page < 0 {
			return model.ListViewState{}, apperrors.ValidationField("page", "page must be a non-negative integer")
		}
		state.PageIndex = page
	}

	if raw := q.Get("pageSize"); raw != "" {
		size, err := strconv.Atoi(raw)
		if err != nil || size <= 0 {
			return model.ListViewState{}, apperrors.ValidationField("pageSize", "pageSize must be a positive integer")
		}
		state.PageSize = size
	}

	return state, nil
}
