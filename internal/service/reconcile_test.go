package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/eventdesk/eventdesk/internal/domain/model"
	"github.com/eventdesk/eventdesk/internal/testutil"
)

func reconcilePage() model.EventPage {
	return model.EventPage{
		Items: []model.Event{
			testutil.NewEvent(1).WithName("Art Fair").WithLocation("Berlin").
				WithDates("2024-02-01", "2024-02-03").WithStatus(model.StatusOngoing).Build(),
			testutil.NewEvent(2).WithName("Book Expo").WithLocation("Munich").
				WithDates("2024-01-01", "2024-01-02").WithStatus(model.StatusCompleted).Build(),
			testutil.NewEvent(3).WithName("Car Show").WithLocation("Berlin").
				WithDates("2024-03-01", "2024-03-05").WithStatus(model.StatusOngoing).Build(),
		},
		Total: 40,
	}
}

func TestReconcile_StatusFilterAndSort(t *testing.T) {
	t.Parallel()

	state := model.ListViewState{
		StatusFilter: model.FilterOngoing,
		PageIndex:    0,
		PageSize:     10,
	}

	result := Reconcile(reconcilePage(), state)

	require.Len(t, result.Items, 2)
	// Sorted ascending by start date: Art Fair (Feb) before Car Show (Mar).
	assert.Equal(t, int64(1), result.Items[0].ID)
	assert.Equal(t, int64(3), result.Items[1].ID)
	assert.Equal(t, 2, result.PaginationCount)
}

func TestReconcile_PaginationCountIgnoresServerTotal(t *testing.T) {
	t.Parallel()

	page := reconcilePage()
	state := model.ListViewState{StatusFilter: model.FilterAll, PageSize: 10}

	result := Reconcile(page, state)

	// The pagination controls reflect the post-client-filter count, not the
	// server total.
	assert.Equal(t, 3, result.PaginationCount)
	assert.NotEqual(t, page.Total, result.PaginationCount)
}

func TestReconcile_SearchMatchesNameOrLocation(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name    string
		term    string
		wantIDs []int64
	}{
		{"empty term matches everything", "", []int64{2, 1, 3}},
		{"name match", "book", []int64{2}},
		{"location match", "berlin", []int64{1, 3}},
		{"case-insensitive", "BERLIN", []int64{1, 3}},
		{"substring", "ar", []int64{1, 3}},
		{"no match", "zurich", []int64{}},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			state := model.ListViewState{
				SearchTerm:   tc.term,
				StatusFilter: model.FilterAll,
				PageSize:     10,
			}
			result := Reconcile(reconcilePage(), state)

			gotIDs := make([]int64, 0, len(result.Items))
			for _, item := range result.Items {
				gotIDs = append(gotIDs, item.ID)
			}
			assert.Equal(t, tc.wantIDs, gotIDs)
			assert.Equal(t, len(tc.wantIDs), result.PaginationCount)
		})
	}
}

func TestReconcile_StableSortPreservesTies(t *testing.T) {
	t.Parallel()

	page := model.EventPage{
		Items: []model.Event{
			testutil.NewEvent(10).WithDates("2024-05-01", "2024-05-02").Build(),
			testutil.NewEvent(11).WithDates("2024-05-01", "2024-05-02").Build(),
			testutil.NewEvent(12).WithDates("2024-04-01", "2024-04-02").Build(),
		},
		Total: 3,
	}
	state := model.ListViewState{StatusFilter: model.FilterAll, PageSize: 10}

	result := Reconcile(page, state)

	require.Len(t, result.Items, 3)
	assert.Equal(t, int64(12), result.Items[0].ID)
	// Ties keep the server's relative order.
	assert.Equal(t, int64(10), result.Items[1].ID)
	assert.Equal(t, int64(11), result.Items[2].ID)
}

func TestReconcile_Pagination(t *testing.T) {
	t.Parallel()

	state := model.ListViewState{StatusFilter: model.FilterAll, PageIndex: 1, PageSize: 2}

	result := Reconcile(reconcilePage(), state)

	// Sorted order is [2, 1, 3]; page 1 of size 2 holds only event 3.
	require.Len(t, result.Items, 1)
	assert.Equal(t, int64(3), result.Items[0].ID)
	assert.Equal(t, 3, result.PaginationCount)
}

func TestReconcile_PageBeyondRangeIsEmpty(t *testing.T) {
	t.Parallel()

	// The engine does not clamp: a stranded page index yields an empty
	// slice and the controller is expected to reset it.
	state := model.ListViewState{StatusFilter: model.FilterAll, PageIndex: 9, PageSize: 10}

	result := Reconcile(reconcilePage(), state)

	assert.Empty(t, result.Items)
	assert.Equal(t, 3, result.PaginationCount)
}

func TestReconcile_Idempotent(t *testing.T) {
	t.Parallel()

	page := reconcilePage()
	state := model.ListViewState{
		SearchTerm:   "berlin",
		StatusFilter: model.FilterOngoing,
		PageSize:     10,
	}

	first := Reconcile(page, state)
	second := Reconcile(page, state)

	assert.Equal(t, first, second)
	// The input page is untouched.
	assert.Equal(t, reconcilePage(), page)
}

func TestReconcile_DoesNotMutateInputOrder(t *testing.T) {
	t.Parallel()

	page := reconcilePage()
	state := model.ListViewState{StatusFilter: model.FilterAll, PageSize: 10}

	_ = Reconcile(page, state)

	assert.Equal(t, int64(1), page.Items[0].ID)
	assert.Equal(t, int64(2), page.Items[1].ID)
	assert.Equal(t, int64(3), page.Items[2].ID)
}
