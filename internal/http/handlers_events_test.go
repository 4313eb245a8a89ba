package httpx

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"net/textproto"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/eventdesk/eventdesk/internal/domain/model"
	apperrors "github.com/eventdesk/eventdesk/internal/errors"
	"github.com/eventdesk/eventdesk/internal/mocks"
	"github.com/eventdesk/eventdesk/internal/service"
	"github.com/eventdesk/eventdesk/internal/session"
	"github.com/eventdesk/eventdesk/internal/testutil"
)

// stubAuth satisfies AuthDirectory for routes the event tests never hit.
type stubAuth struct {
	loginFn    func(ctx context.Context, email, password string) (model.AuthSession, error)
	registerFn func(ctx context.Context, req model.RegisterRequest) error
	tokens     *session.TokenStore
}

func (s *stubAuth) Login(ctx context.Context, email, password string) (model.AuthSession, error) {
	if s.loginFn == nil {
		return model.AuthSession{}, apperrors.Internal("login not stubbed")
	}
	return s.loginFn(ctx, email, password)
}

func (s *stubAuth) Register(ctx context.Context, req model.RegisterRequest) error {
	if s.registerFn == nil {
		return apperrors.Internal("register not stubbed")
	}
	return s.registerFn(ctx, req)
}

func (s *stubAuth) Logout(ctx context.Context) session.PersistResult {
	return s.tokens.Clear(ctx)
}

type portalHarness struct {
	dir    *mocks.MockEventDirectory
	auth   *stubAuth
	tokens *session.TokenStore
	srv    *httptest.Server
}

func newPortal(t *testing.T) *portalHarness {
	t.Helper()
	ctrl := gomock.NewController(t)
	t.Cleanup(ctrl.Finish)

	dir := mocks.NewMockEventDirectory(ctrl)
	tokens := session.NewTokenStore(session.NewMemoryBackend(), nil)
	auth := &stubAuth{tokens: tokens}

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	router := NewRouter(RouterServices{
		Events: service.NewEventService(service.EventServiceOptions{Directory: dir, Logger: logger}),
		Auth:   auth,
		Tokens: tokens,
		Logger: logger,
	})

	srv := httptest.NewServer(router)
	t.Cleanup(srv.Close)

	return &portalHarness{dir: dir, auth: auth, tokens: tokens, srv: srv}
}

func (p *portalHarness) request(t *testing.T, method, path string, body io.Reader, contentType string) *http.Response {
	t.Helper()
	req, err := http.NewRequest(method, p.srv.URL+path, body)
	require.NoError(t, err)
	if contentType != "" {
		req.Header.Set("Content-Type", contentType)
	}
	resp, err := http.DefaultClient.Do(req)
	require.NoError(t, err)
	t.Cleanup(func() { _ = resp.Body.Close() })
	return resp
}

func decodeBody[T any](t *testing.T, resp *http.Response) T {
	t.Helper()
	var v T
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&v))
	return v
}

// eventForm builds a multipart event form. thumbnail may be nil.
func eventForm(t *testing.T, fields map[string]string, thumbnail []byte, thumbnailType string) (io.Reader, string) {
	t.Helper()
	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)
	for name, value := range fields {
		require.NoError(t, w.WriteField(name, value))
	}
	if thumbnail != nil {
		header := textproto.MIMEHeader{}
		header.Set("Content-Disposition", `form-data; name="thumbnail"; filename="thumb"`)
		header.Set("Content-Type", thumbnailType)
		part, err := w.CreatePart(header)
		require.NoError(t, err)
		_, err = part.Write(thumbnail)
		require.NoError(t, err)
	}
	require.NoError(t, w.Close())
	return &buf, w.FormDataContentType()
}

func validEventFields() map[string]string {
	return map[string]string{
		"name":      "Summer Fest",
		"startDate": "2024-06-01",
		"endDate":   "2024-06-03",
		"location":  "Riverside Park",
	}
}

func TestPortal_ListEvents(t *testing.T) {
	t.Parallel()
	p := newPortal(t)

	page := model.EventPage{
		Items: []model.Event{
			testutil.NewEvent(1).WithDates("2024-02-01", "2024-02-02").Build(),
			testutil.NewEvent(2).WithDates("2024-01-01", "2024-01-02").Build(),
		},
		Total: 30,
	}
	p.dir.EXPECT().
		List(gomock.Any(), model.EventQuery{Page: 1, PageSize: 10, Keyword: "fest", Status: model.StatusOngoing}).
		Return(page, nil)

	resp := p.request(t, http.MethodGet, "/portal/events?search=fest&status=Ongoing", nil, "")
	require.Equal(t, http.StatusOK, resp.StatusCode)

	body := decodeBody[struct {
		Items           []model.Event `json:"items"`
		PaginationCount int           `json:"paginationCount"`
		ServerTotal     int           `json:"serverTotal"`
	}](t, resp)

	require.Len(t, body.Items, 2)
	// Reconciled order: event 2 starts earlier.
	assert.Equal(t, int64(2), body.Items[0].ID)
	// Pagination count reflects the visible set, not the server total.
	assert.Equal(t, 2, body.PaginationCount)
	assert.Equal(t, 30, body.ServerTotal)
}

func TestPortal_ListEvents_BadStatus(t *testing.T) {
	t.Parallel()
	p := newPortal(t)

	resp := p.request(t, http.MethodGet, "/portal/events?status=Archived", nil, "")
	require.Equal(t, http.StatusBadRequest, resp.StatusCode)

	body := decodeBody[map[string]string](t, resp)
	assert.Equal(t, "validation", body["error"])
}

func TestPortal_ListEvents_UpstreamFailure(t *testing.T) {
	t.Parallel()
	p := newPortal(t)

	p.dir.EXPECT().
		List(gomock.Any(), gomock.Any()).
		Return(model.EventPage{}, apperrors.Upstream("events API unreachable"))

	resp := p.request(t, http.MethodGet, "/portal/events", nil, "")
	assert.Equal(t, http.StatusBadGateway, resp.StatusCode)
}

func TestPortal_GetEvent(t *testing.T) {
	t.Parallel()
	p := newPortal(t)

	p.dir.EXPECT().
		Get(gomock.Any(), int64(42)).
		Return(testutil.NewEvent(42).WithName("Gala").Build(), nil)

	resp := p.request(t, http.MethodGet, "/portal/events/42", nil, "")
	require.Equal(t, http.StatusOK, resp.StatusCode)

	event := decodeBody[model.Event](t, resp)
	assert.Equal(t, "Gala", event.Name)
}

func TestPortal_GetEvent_BadID(t *testing.T) {
	t.Parallel()
	p := newPortal(t)

	for _, id := range []string{"abc", "0", "-3"} {
		resp := p.request(t, http.MethodGet, "/portal/events/"+id, nil, "")
		assert.Equal(t, http.StatusBadRequest, resp.StatusCode, "id %q", id)
	}
}

func TestPortal_GetEvent_NotFound(t *testing.T) {
	t.Parallel()
	p := newPortal(t)

	p.dir.EXPECT().
		Get(gomock.Any(), int64(404)).
		Return(model.Event{}, apperrors.NotFound("no such event"))

	resp := p.request(t, http.MethodGet, "/portal/events/404", nil, "")
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}

func TestPortal_CreateEvent(t *testing.T) {
	t.Parallel()
	p := newPortal(t)

	p.dir.EXPECT().
		Create(gomock.Any(), model.EventPayload{
			Name:      "Summer Fest",
			StartDate: "2024-06-01",
			EndDate:   "2024-06-03",
			Location:  "Riverside Park",
		}).
		Return(model.Event{ID: 7, Name: "Summer Fest"}, nil)

	body, contentType := eventForm(t, validEventFields(), nil, "")
	resp := p.request(t, http.MethodPost, "/portal/events", body, contentType)
	require.Equal(t, http.StatusCreated, resp.StatusCode)

	event := decodeBody[model.Event](t, resp)
	assert.Equal(t, int64(7), event.ID)
}

func TestPortal_CreateEvent_WithThumbnail(t *testing.T) {
	t.Parallel()
	p := newPortal(t)

	var sent model.EventPayload
	p.dir.EXPECT().
		Create(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, payload model.EventPayload) (model.Event, error) {
			sent = payload
			return model.Event{ID: 7}, nil
		})

	body, contentType := eventForm(t, validEventFields(), testutil.PNGBytes(32, 32), "image/png")
	resp := p.request(t, http.MethodPost, "/portal/events", body, contentType)
	require.Equal(t, http.StatusCreated, resp.StatusCode)

	assert.True(t, strings.HasPrefix(sent.Thumbnail, "data:image/jpeg;base64,"))
}

func TestPortal_CreateEvent_RejectsNonImageThumbnail(t *testing.T) {
	t.Parallel()
	p := newPortal(t)

	body, contentType := eventForm(t, validEventFields(), []byte("%PDF-1.4"), "application/pdf")
	resp := p.request(t, http.MethodPost, "/portal/events", body, contentType)
	require.Equal(t, http.StatusBadRequest, resp.StatusCode)

	errBody := decodeBody[map[string]string](t, resp)
	assert.Equal(t, "unsupported_type", errBody["error"])
}

func TestPortal_CreateEvent_MissingFields(t *testing.T) {
	t.Parallel()
	p := newPortal(t)

	body, contentType := eventForm(t, map[string]string{"name": "No Dates"}, nil, "")
	resp := p.request(t, http.MethodPost, "/portal/events", body, contentType)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

func TestPortal_UpdateEvent(t *testing.T) {
	t.Parallel()
	p := newPortal(t)

	p.dir.EXPECT().
		Update(gomock.Any(), int64(5), model.EventPayload{
			Name:      "Summer Fest",
			StartDate: "2024-06-01",
			EndDate:   "2024-06-03",
			Location:  "Riverside Park",
			Status:    model.StatusCompleted,
		}).
		Return(model.Event{ID: 5, Status: model.StatusCompleted}, nil)

	fields := validEventFields()
	fields["status"] = "Completed"
	body, contentType := eventForm(t, fields, nil, "")

	resp := p.request(t, http.MethodPut, "/portal/events/5", body, contentType)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
}

func TestPortal_DeleteEvent(t *testing.T) {
	t.Parallel()
	p := newPortal(t)

	p.dir.EXPECT().Delete(gomock.Any(), int64(9), "hunter2").Return(nil)

	body := strings.NewReader(`{"password":"hunter2"}`)
	resp := p.request(t, http.MethodDelete, "/portal/events/9", body, "application/json")
	assert.Equal(t, http.StatusNoContent, resp.StatusCode)
}

func TestPortal_DeleteEvent_MissingPassword(t *testing.T) {
	t.Parallel()
	p := newPortal(t)

	// No directory expectation: the request dies at validation.
	resp := p.request(t, http.MethodDelete, "/portal/events/9", strings.NewReader(`{}`), "application/json")
	require.Equal(t, http.StatusBadRequest, resp.StatusCode)

	errBody := decodeBody[map[string]string](t, resp)
	assert.Equal(t, "validation", errBody["error"])
}

func TestPortal_DeleteEvent_BadPassword(t *testing.T) {
	t.Parallel()
	p := newPortal(t)

	p.dir.EXPECT().
		Delete(gomock.Any(), int64(9), "wrong").
		Return(apperrors.Unauthorized("authorization rejected"))

	body := strings.NewReader(`{"password":"wrong"}`)
	resp := p.request(t, http.MethodDelete, "/portal/events/9", body, "application/json")
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}

func TestPortal_Healthz(t *testing.T) {
	t.Parallel()
	p := newPortal(t)

	resp := p.request(t, http.MethodGet, "/healthz", nil, "")
	require.Equal(t, http.StatusOK, resp.StatusCode)

	body := decodeBody[map[string]string](t, resp)
	assert.Equal(t, "ok", body["status"])
}
