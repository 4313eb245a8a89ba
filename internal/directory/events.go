package directory

import (
	"bytes"
	"context"
	"io"
	"mime/multipart"
	"net/http"
	"net/url"
	"strconv"

	"github.com/eventdesk/eventdesk/internal/domain/model"
	apperrors "github.com/eventdesk/eventdesk/internal/errors"
)

// List fetches one server-paginated page of events.
// GET /events?page&pageSize&keyword&status&orderBy&order — every query field
// is optional; absent page/pageSize use server defaults.
func (c *Client) List(ctx context.Context, q model.EventQuery) (model.EventPage, error) {
	query := url.Values{}
	if q.Page > 0 {
		query.Set("page", strconv.Itoa(q.Page))
	}
	if q.PageSize > 0 {
		query.Set("pageSize", strconv.Itoa(q.PageSize))
	}
	if q.Keyword != "" {
		query.Set("keyword", q.Keyword)
	}
	if q.Status != "" {
		query.Set("status", string(q.Status))
	}
	if q.OrderBy != "" {
		query.Set("orderBy", q.OrderBy)
	}
	if q.Order != "" {
		query.Set("order", q.Order)
	}

	var page model.EventPage
	if err := c.do(ctx, request{method: http.MethodGet, path: "/events", query: query}, &page); err != nil {
		return model.EventPage{}, err
	}

	// Fetch-boundary invariant: 0 <= len(items) <= total.
	if page.Total < len(page.Items) {
		return model.EventPage{}, apperrors.Upstreamf(
			"inconsistent event page: %d items but total %d", len(page.Items), page.Total)
	}
	return page, nil
}

// Get fetches a single event by id.
func (c *Client) Get(ctx context.Context, id int64) (model.Event, error) {
	var event model.Event
	if err := c.do(ctx, request{method: http.MethodGet, path: eventPath(id)}, &event); err != nil {
		return model.Event{}, err
	}
	return event, nil
}

// Create creates an event. The payload travels as multipart form data, with
// the thumbnail field present only when one was provided.
// POST /create.
func (c *Client) Create(ctx context.Context, payload model.EventPayload) (model.Event, error) {
	body, contentType, err := multipartPayload(payload, false)
	if err != nil {
		return model.Event{}, err
	}

	var event model.Event
	if err := c.do(ctx, request{
		method:      http.MethodPost,
		path:        "/create",
		body:        body,
		contentType: contentType,
	}, &event); err != nil {
		return model.Event{}, err
	}
	return event, nil
}

// Update updates an event. Same multipart fields as Create plus an optional
// status. PUT /events/{id}.
func (c *Client) Update(ctx context.Context, id int64, payload model.EventPayload) (model.Event, error) {
	body, contentType, err := multipartPayload(payload, true)
	if err != nil {
		return model.Event{}, err
	}

	var event model.Event
	if err := c.do(ctx, request{
		method:      http.MethodPut,
		path:        eventPath(id),
		body:        body,
		contentType: contentType,
	}, &event); err != nil {
		return model.Event{}, err
	}
	return event, nil
}

// Delete removes an event. Deletion requires re-authentication with the
// user's password, distinct from the session bearer token, so an unattended
// session cannot be used to destroy data. The password is never logged.
// DELETE /events/{id} with body {password}.
func (c *Client) Delete(ctx context.Context, id int64, password string) error {
	body, contentType, err := jsonBody(map[string]string{"password": password})
	if err != nil {
		return err
	}

	return c.do(ctx, request{
		method:      http.MethodDelete,
		path:        eventPath(id),
		body:        body,
		contentType: contentType,
	}, nil)
}

// multipartPayload encodes an event payload as multipart form data. Status
// is only written on update; thumbnail only when non-empty.
func multipartPayload(payload model.EventPayload, includeStatus bool) (io.Reader, string, error) {
	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)

	fields := []struct {
		name, value string
	}{
		{"name", payload.Name},
		{"startDate", payload.StartDate},
		{"endDate", payload.EndDate},
		{"location", payload.Location},
		{"description", payload.Description},
	}
	for _, f := range fields {
		if err := w.WriteField(f.name, f.value); err != nil {
			return nil, "", apperrors.Wrapf(err, apperrors.ErrCodeInternal, "write field %s", f.name)
		}
	}
	if includeStatus && payload.Status != "" {
		if err := w.WriteField("status", string(payload.Status)); err != nil {
			return nil, "", apperrors.Wrap(err, apperrors.ErrCodeInternal, "write field status")
		}
	}
	if payload.Thumbnail != "" {
		if err := w.WriteField("thumbnail", payload.Thumbnail); err != nil {
			return nil, "", apperrors.Wrap(err, apperrors.ErrCodeInternal, "write field thumbnail")
		}
	}

	if err := w.Close(); err != nil {
		return nil, "", apperrors.Wrap(err, apperrors.ErrCodeInternal, "close multipart writer")
	}
	return &buf, w.FormDataContentType(), nil
}
