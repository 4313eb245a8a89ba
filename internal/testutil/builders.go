// Package testutil provides testing utilities and helpers for the portal.
package testutil

import (
	"bytes"
	"image"
	"image/color"
	"image/png"

	"github.com/eventdesk/eventdesk/internal/domain/model"
)

// EventBuilder provides a fluent interface for building Event values for testing.
type EventBuilder struct {
	event model.Event
}

// NewEvent creates an EventBuilder with sensible defaults.
func NewEvent(id int64) *EventBuilder {
	return &EventBuilder{
		event: model.Event{
			ID:        id,
			Name:      "Test Event",
			StartDate: "2024-01-01",
			EndDate:   "2024-01-02",
			Location:  "Test Hall",
			Status:    model.StatusOngoing,
		},
	}
}

// WithName sets the event name.
func (b *EventBuilder) WithName(name string) *EventBuilder {
	b.event.Name = name
	return b
}

// WithLocation sets the event location.
func (b *EventBuilder) WithLocation(location string) *EventBuilder {
	b.event.Location = location
	return b
}

// WithDates sets the start and end dates.
func (b *EventBuilder) WithDates(start, end string) *EventBuilder {
	b.event.StartDate = start
	b.event.EndDate = end
	return b
}

// WithStatus sets the event status.
func (b *EventBuilder) WithStatus(status model.EventStatus) *EventBuilder {
	b.event.Status = status
	return b
}

// Build returns the constructed event.
func (b *EventBuilder) Build() model.Event {
	return b.event
}

// PNGBytes encodes a solid-color PNG of the given dimensions, for feeding the
// thumbnail pipeline in tests.
func PNGBytes(width, height int) []byte {
	img := image.NewRGBA(image.Rect(0, 0, width, height))
	fill := color.RGBA{R: 200, G: 120, B: 40, A: 255}
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			img.Set(x, y, fill)
		}
	}

	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		panic(err)
	}
	return buf.Bytes()
}
