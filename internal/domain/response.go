package domain

import (
	"context"
	"encoding/json"
	"time"
)

// Status is a participant's availability for one date option.
type Status string

const (
	StatusOK    Status = "ok"
	StatusMaybe Status = "maybe"
	StatusNG    Status = "ng"
)

// Valid reports whether s is one of the three known statuses.
func (s Status) Valid() bool {
	switch s {
	case StatusOK, StatusMaybe, StatusNG:
		return true
	}
	return false
}

// Response is one participant's answer for one date option.
type Response struct {
	ID           string    `json:"id"`
	EventID      string    `json:"eventId"`
	DateOptionID string    `json:"dateOptionId"`
	Name         string    `json:"name"`
	Status       Status    `json:"status"`
	Note         *string   `json:"note"`
	CreatedAt    time.Time `json:"createdAt"`
	UpdatedAt    time.Time `json:"updatedAt"`
}

// NewResponse returns a Response row. ID is set by the repository on insert.
func NewResponse(eventID, dateOptionID, name string, status Status, note *string, createdAt, updatedAt time.Time) *Response {
	return &Response{
		EventID:      eventID,
		DateOptionID: dateOptionID,
		Name:         name,
		Status:       status,
		Note:         note,
		CreatedAt:    createdAt,
		UpdatedAt:    updatedAt,
	}
}

// Answer is a status plus optional note for one option.
// swagger:model Answer
type Answer struct {
	Status Status  `json:"status"`
	Note   *string `json:"note"`
}

// UnmarshalJSON accepts either a bare status string ("ok") or an object
// ({"status":"ok","note":"after 7pm"}).
func (a *Answer) UnmarshalJSON(b []byte) error {
	var s string
	if err := json.Unmarshal(b, &s); err == nil {
		*a = Answer{Status: Status(s)}
		return nil
	}
	type plain Answer
	var p plain
	if err := json.Unmarshal(b, &p); err != nil {
		return err
	}
	*a = Answer(p)
	return nil
}

// ResponseInput is one participant's full submission for an event.
type ResponseInput struct {
	Name    string
	Answers map[string]Answer
}

// ParticipantAnswers groups every answer a participant gave, keyed by option ID.
// swagger:model ParticipantAnswers
type ParticipantAnswers struct {
	Name    string            `json:"name"`
	Answers map[string]Answer `json:"answers"`
}

// StatusCount tallies statuses for one option.
// swagger:model StatusCount
type StatusCount struct {
	OK    int `json:"ok"`
	Maybe int `json:"maybe"`
	NG    int `json:"ng"`
}

// Summary maps option ID to its tally.
type Summary map[string]StatusCount

// ResponseRepository defines the interface for response storage.
type ResponseRepository interface {
	// ListByEventID returns every row of the event ordered by name, then creation time.
	ListByEventID(ctx context.Context, eventID string) ([]*Response, error)
	// Replace deletes every row for (eventID, name) and inserts rows atomically.
	Replace(ctx context.Context, eventID, name string, rows []*Response) error
}

// ResponseService defines the participant-facing submission.
type ResponseService interface {
	SubmitResponse(ctx context.Context, publicID string, in ResponseInput) error
}
