package model

import "time"

// EventStatus is the lifecycle status of an event as reported by the events API.
type EventStatus string

const (
	// StatusOngoing marks an event that is still running.
	StatusOngoing EventStatus = "Ongoing"
	// StatusCompleted marks an event that has finished.
	StatusCompleted EventStatus = "Completed"
)

// Valid reports whether the status is one of the known values.
func (s EventStatus) Valid() bool {
	return s == StatusOngoing || s == StatusCompleted
}

// Event is a single event as served by the upstream events API. The portal
// never mutates an Event in place; create/update go through the directory
// client and produce a fresh server-assigned copy.
type Event struct {
	ID          int64       `json:"id"`
	Name        string      `json:"name"`
	StartDate   string      `json:"startDate"`
	EndDate     string      `json:"endDate"`
	Location    string      `json:"location"`
	Description string      `json:"description,omitempty"`
	Status      EventStatus `json:"status"`
	// Thumbnail is an optional encoded image data URL. Nil when the event has none.
	Thumbnail *string `json:"thumbnail,omitempty"`
}

// eventDateLayouts are the wire formats the upstream has been observed to use
// for startDate/endDate: bare calendar dates and full RFC 3339 timestamps.
var eventDateLayouts = []string{"2006-01-02", time.RFC3339}

// StartTime parses StartDate. The zero time is returned for unparseable
// values so that malformed rows sort first instead of breaking the view.
func (e Event) StartTime() time.Time {
	return parseEventDate(e.StartDate)
}

// EndTime parses EndDate, with the same lenient semantics as StartTime.
func (e Event) EndTime() time.Time {
	return parseEventDate(e.EndDate)
}

func parseEventDate(s string) time.Time {
	for _, layout := range eventDateLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t
		}
	}
	return time.Time{}
}

// EventPage is one fetch result from the events API: the items of the
// requested page in server order, plus the total count matching the
// server-side filter regardless of how many items this page holds.
type EventPage struct {
	Items []Event `json:"items"`
	Total int     `json:"total"`
}

// EventQuery carries the server-side filter for listing events. All fields
// are optional; zero values are omitted from the request so the server
// applies its own defaults.
type EventQuery struct {
	// Page is 1-based. Zero means "let the server decide".
	Page     int
	PageSize int
	// Keyword is matched server-side against name and location,
	// case-insensitive substring.
	Keyword string
	Status  EventStatus
	OrderBy string
	Order   string
}

// EventPayload is the write shape for create/update. Thumbnail is an encoded
// image data URL; empty means "no thumbnail". Status is only transmitted on
// update, matching the upstream contract.
type EventPayload struct {
	Name        string
	StartDate   string
	EndDate     string
	Location    string
	Description string
	Status      EventStatus
	Thumbnail   string
}
