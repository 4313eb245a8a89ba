package service

import (
	"context"
	"log/slog"

	"github.com/eventdesk/eventdesk/internal/domain/model"
	apperrors "github.com/eventdesk/eventdesk/internal/errors"
	"github.com/eventdesk/eventdesk/internal/imaging"
)

// EventDirectory is the slice of the directory client the event service
// consumes. *directory.Client satisfies it.
type EventDirectory interface {
	List(ctx context.Context, q model.EventQuery) (model.EventPage, error)
	Get(ctx context.Context, id int64) (model.Event, error)
	Create(ctx context.Context, payload model.EventPayload) (model.Event, error)
	Update(ctx context.Context, id int64, payload model.EventPayload) (model.Event, error)
	Delete(ctx context.Context, id int64, password string) error
}

// ThumbnailUpload is a raw thumbnail as received from the browser, before
// the codec pipeline has seen it.
type ThumbnailUpload struct {
	Data        []byte
	ContentType string
	Size        int64
}

// EventInput is the write shape accepted from the portal's own HTTP surface.
type EventInput struct {
	Name        string
	StartDate   string
	EndDate     string
	Location    string
	Description string
	// Status is honored on update only; creation always starts Ongoing
	// upstream.
	Status model.EventStatus
	// Thumbnail is optional; nil means "keep/leave empty".
	Thumbnail *ThumbnailUpload
}

// BrowseResult is one rendered page of the list view.
type BrowseResult struct {
	Items []model.Event `json:"items"`
	// PaginationCount drives the pagination controls; see ReconcileResult.
	PaginationCount int `json:"paginationCount"`
	// ServerTotal is the upstream's count for the server-side filter. Kept
	// for diagnostics; the controls intentionally do not use it.
	ServerTotal int `json:"serverTotal"`
}

// EventServiceOptions configures an EventService.
type EventServiceOptions struct {
	Directory EventDirectory
	Imaging   imaging.Options
	Logger    *slog.Logger
}

// EventService composes the directory client, the list reconciler, and the
// thumbnail pipeline into the operations the portal surface exposes.
type EventService struct {
	directory EventDirectory
	imaging   imaging.Options
	logger    *slog.Logger
}

// NewEventService creates an event service.
func NewEventService(opts EventServiceOptions) *EventService {
	logger := opts.Logger
	if logger == nil {
		logger = slog.Default()
	}
	return &EventService{
		directory: opts.Directory,
		imaging:   opts.Imaging,
		logger:    logger,
	}
}

// BrowseEvents fetches the server page the view state maps to and reconciles
// it into the rendered slice.
func (s *EventService) BrowseEvents(ctx context.Context, state model.ListViewState) (BrowseResult, error) {
	page, err := s.directory.List(ctx, state.Query())
	if err != nil {
		return BrowseResult{}, err
	}

	result := Reconcile(page, state)
	return BrowseResult{
		Items:           result.Items,
		PaginationCount: result.PaginationCount,
		ServerTotal:     page.Total,
	}, nil
}

// GetEvent fetches a single event.
func (s *EventService) GetEvent(ctx context.Context, id int64) (model.Event, error) {
	return s.directory.Get(ctx, id)
}

// CreateEvent validates the input, runs an attached thumbnail through the
// codec pipeline, and creates the event upstream.
func (s *EventService) CreateEvent(ctx context.Context, input EventInput) (model.Event, error) {
	payload, err := s.buildPayload(ctx, input, false)
	if err != nil {
		return model.Event{}, err
	}
	return s.directory.Create(ctx, payload)
}

// UpdateEvent validates the input, runs an attached thumbnail through the
// codec pipeline, and updates the event upstream.
func (s *EventService) UpdateEvent(ctx context.Context, id int64, input EventInput) (model.Event, error) {
	payload, err := s.buildPayload(ctx, input, true)
	if err != nil {
		return model.Event{}, err
	}
	return s.directory.Update(ctx, id, payload)
}

// DeleteEvent deletes an event, re-authenticating with the given password.
func (s *EventService) DeleteEvent(ctx context.Context, id int64, password string) error {
	if password == "" {
		return apperrors.ValidationField("password", "password is required to delete an event")
	}
	return s.directory.Delete(ctx, id, password)
}

// buildPayload is the edit boundary: field presence and date ordering are
// checked here, not in the reconciler or the codec pipeline.
func (s *EventService) buildPayload(ctx context.Context, input EventInput, includeStatus bool) (model.EventPayload, error) {
	if input.Name == "" {
		return model.EventPayload{}, apperrors.ValidationField("name", "name is required")
	}
	if input.StartDate == "" {
		return model.EventPayload{}, apperrors.ValidationField("startDate", "start date is required")
	}
	if input.EndDate == "" {
		return model.EventPayload{}, apperrors.ValidationField("endDate", "end date is required")
	}
	start := model.Event{StartDate: input.StartDate}.StartTime()
	end := model.Event{EndDate: input.EndDate}.EndTime()
	if start.IsZero() {
		return model.EventPayload{}, apperrors.ValidationField("startDate", "start date is not a valid date")
	}
	if end.IsZero() {
		return model.EventPayload{}, apperrors.ValidationField("endDate", "end date is not a valid date")
	}
	if end.Before(start) {
		return model.EventPayload{}, apperrors.ValidationField("endDate", "end date must not be before start date")
	}
	if includeStatus && input.Status != "" && !input.Status.Valid() {
		return model.EventPayload{}, apperrors.ValidationField("status", "unknown event status")
	}

	payload := model.EventPayload{
		Name:        input.Name,
		StartDate:   input.StartDate,
		EndDate:     input.EndDate,
		Location:    input.Location,
		Description: input.Description,
	}
	if includeStatus {
		payload.Status = input.Status
	}

	if input.Thumbnail != nil {
		encoded, err := s.encodeThumbnail(ctx, *input.Thumbnail)
		if err != nil {
			return model.EventPayload{}, err
		}
		payload.Thumbnail = encoded.DataURL
	}

	return payload, nil
}

// encodeThumbnail runs the upload through the pre-filter and the codec
// pipeline. This call site enforces the encoded-size ceiling: an image still
// over it after resize and re-encode is rejected.
func (s *EventService) encodeThumbnail(ctx context.Context, upload ThumbnailUpload) (model.EncodedImage, error) {
	if err := imaging.PrefilterUpload(upload.ContentType, upload.Size); err != nil {
		return model.EncodedImage{}, err
	}

	encoded, err := imaging.Encode(upload.Data, s.imaging)
	if err != nil {
		return model.EncodedImage{}, err
	}

	s.logger.DebugContext(ctx, "thumbnail encoded",
		"width", encoded.Width,
		"height", encoded.Height,
		"bytes", encoded.PayloadBytes,
	)
	return encoded, nil
}
