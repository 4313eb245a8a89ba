package httpx

import (
	"io"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/eventdesk/eventdesk/internal/domain/model"
	apperrors "github.com/eventdesk/eventdesk/internal/errors"
	"github.com/eventdesk/eventdesk/internal/imaging"
	"github.com/eventdesk/eventdesk/internal/service"
)

// maxEventFormMemory bounds in-memory multipart parsing. The imaging
// pre-filter enforces the real upload ceiling.
const maxEventFormMemory = 8 << 20

// EventHandlers provides the portal's event endpoints.
type EventHandlers struct {
	Svc    *service.EventService
	Logger *slog.Logger
}

// List handles GET /portal/events. The response carries the reconciled slice
// and the post-client-filter pagination count.
func (h *EventHandlers) List(w http.ResponseWriter, r *http.Request) {
	state, err := ParseListViewState(r.URL.Query())
	if err != nil {
		RenderError(w, r, h.Logger, err)
		return
	}

	result, err := h.Svc.BrowseEvents(r.Context(), state)
	if err != nil {
		RenderError(w, r, h.Logger, err)
		return
	}

	WriteJSON(w, http.StatusOK, result)
}

// Get handles GET /portal/events/{id}.
func (h *EventHandlers) Get(w http.ResponseWriter, r *http.Request) {
	id, ok := h.eventID(w, r)
	if !ok {
		return
	}

	event, err := h.Svc.GetEvent(r.Context(), id)
	if err != nil {
		RenderError(w, r, h.Logger, err)
		return
	}

	WriteJSON(w, http.StatusOK, event)
}

// Create handles POST /portal/events (multipart form).
func (h *EventHandlers) Create(w http.ResponseWriter, r *http.Request) {
	input, err := h.parseEventForm(r)
	if err != nil {
		RenderError(w, r, h.Logger, err)
		return
	}

	event, err := h.Svc.CreateEvent(r.Context(), input)
	if err != nil {
		RenderError(w, r, h.Logger, err)
		return
	}

	WriteJSON(w, http.StatusCreated, event)
}

// Update handles PUT /portal/events/{id} (multipart form).
func (h *EventHandlers) Update(w http.ResponseWriter, r *http.Request) {
	id, ok := h.eventID(w, r)
	if !ok {
		return
	}

	input, err := h.parseEventForm(r)
	if err != nil {
		RenderError(w, r, h.Logger, err)
		return
	}

	event, err := h.Svc.UpdateEvent(r.Context(), id, input)
	if err != nil {
		RenderError(w, r, h.Logger, err)
		return
	}

	WriteJSON(w, http.StatusOK, event)
}

// Delete handles DELETE /portal/events/{id}. The re-entered password travels
// in the JSON body and is forwarded verbatim to the upstream.
func (h *EventHandlers) Delete(w http.ResponseWriter, r *http.Request) {
	id, ok := h.eventID(w, r)
	if !ok {
		return
	}

	var body struct {
		Password string `json:"password"`
	}
	if !DecodeJSON(w, r, &body) {
		return
	}

	if err := h.Svc.DeleteEvent(r.Context(), id, body.Password); err != nil {
		RenderError(w, r, h.Logger, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func (h *EventHandlers) eventID(w http.ResponseWriter, r *http.Request) (int64, bool) {
	id, err := strconv.ParseInt(r.PathValue("id"), 10, 64)
	if err != nil || id <= 0 {
		RenderError(w, r, h.Logger, apperrors.ValidationField("id", "event id must be a positive integer"))
		return 0, false
	}
	return id, true
}

// parseEventForm reads the multipart event form. The thumbnail part is
// optional; when present it is pre-filtered by declared type and size before
// its bytes are read.
func (h *EventHandlers) parseEventForm(r *http.Request) (service.EventInput, error) {
	if err := r.ParseMultipartForm(maxEventFormMemory); err != nil {
		return service.EventInput{}, apperrors.Wrap(err, apperrors.ErrCodeValidation, "parse event form")
	}

	input := service.EventInput{
		Name:        r.FormValue("name"),
		StartDate:   r.FormValue("startDate"),
		EndDate:     r.FormValue("endDate"),
		Location:    r.FormValue("location"),
		Description: r.FormValue("description"),
	}
	if status := r.FormValue("status"); status != "" {
		// Validated at the edit boundary in the service layer.
		input.Status = model.EventStatus(status)
	}

	file, header, err := r.FormFile("thumbnail")
	if err == http.ErrMissingFile {
		return input, nil
	}
	if err != nil {
		return service.EventInput{}, apperrors.Wrap(err, apperrors.ErrCodeValidation, "read thumbnail part")
	}
	defer func() { _ = file.Close() }()

	contentType := header.Header.Get("Content-Type")
	if preErr := imaging.PrefilterUpload(contentType, header.Size); preErr != nil {
		return service.EventInput{}, preErr
	}

	data, err := io.ReadAll(io.LimitReader(file, imaging.MaxUploadBytes+1))
	if err != nil {
		return service.EventInput{}, apperrors.Wrap(err, apperrors.ErrCodeInternal, "read thumbnail bytes")
	}

	input.Thumbnail = &service.ThumbnailUpload{
		Data:        data,
		ContentType: contentType,
		Size:        int64(len(data)),
	}
	return input, nil
}
