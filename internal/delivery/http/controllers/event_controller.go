package controllers

import (
	"fmt"
	"log/slog"
	"net/http"
	"net/url"

	"groupschedule/internal/delivery/http/helpers"
	"groupschedule/internal/domain"
)

// DateOptionRequest is one candidate slot in a create or edit payload.
// "title" is accepted as an alias for "label".
type DateOptionRequest struct {
	ID        string  `json:"id,omitempty"`
	Date      string  `json:"date"`
	StartTime *string `json:"startTime"`
	EndTime   *string `json:"endTime"`
	Label     *string `json:"label"`
	Title     *string `json:"title,omitempty"`
}

func (d DateOptionRequest) toInput() domain.DateOptionInput {
	label := d.Label
	if label == nil {
		label = d.Title
	}
	return domain.DateOptionInput{
		ID:        d.ID,
		Date:      d.Date,
		StartTime: d.StartTime,
		EndTime:   d.EndTime,
		Label:     label,
	}
}

// EventRequest is the request body for POST /events and PUT /events/{publicId}.
type EventRequest struct {
	Title       string              `json:"title"`
	Passphrase  string              `json:"passphrase"`
	Location    *string             `json:"location"`
	Description *string             `json:"description"`
	DateOptions []DateOptionRequest `json:"dateOptions"`
}

func (e EventRequest) toInput() domain.EventInput {
	in := domain.EventInput{
		Title:       e.Title,
		Passphrase:  e.Passphrase,
		Location:    e.Location,
		Description: e.Description,
	}
	for _, o := range e.DateOptions {
		in.DateOptions = append(in.DateOptions, o.toInput())
	}
	return in
}

// CreateEventResponse is the response body for POST /events (201).
type CreateEventResponse struct {
	PublicID string `json:"publicId"`
	ShareURL string `json:"shareUrl"`
}

// GetEventResponse is the response body for GET /events/{publicId}.
type GetEventResponse struct {
	ID          string                       `json:"id"`
	PublicID    string                       `json:"publicId"`
	Title       string                       `json:"title"`
	Location    *string                      `json:"location"`
	Description *string                      `json:"description"`
	DateOptions []*domain.DateOption         `json:"dateOptions"`
	Responses   []*domain.ParticipantAnswers `json:"responses"`
	Summary     domain.Summary               `json:"summary"`
	BestOptions []string                     `json:"bestOptions"`
}

// PassphraseRequest is the request body for DELETE /events/{publicId} and POST /events/{publicId}/verify.
type PassphraseRequest struct {
	Passphrase string `json:"passphrase"`
}

// VerifyResponse is the response body for POST /events/{publicId}/verify.
type VerifyResponse struct {
	Valid bool   `json:"valid"`
	Error string `json:"error,omitempty"`
}

// InvitationRequest is the request body for POST /events/{publicId}/invitations.
type InvitationRequest struct {
	Passphrase string   `json:"passphrase"`
	Emails     []string `json:"emails"`
}

// Validate implements helpers.Validator.
func (i InvitationRequest) Validate() []string {
	var errs []string
	if i.Passphrase == "" {
		errs = append(errs, "passphrase is required")
	}
	if len(i.Emails) == 0 {
		errs = append(errs, "at least one email address is required")
	}
	return errs
}

// InvitationResponse is the response body for POST /events/{publicId}/invitations.
type InvitationResponse struct {
	Sent   int      `json:"sent"`
	Failed []string `json:"failed"`
}

type EventController struct {
	Logger      *slog.Logger
	Service     domain.EventService
	Export      domain.ExportService
	Invitations domain.InvitationService
}

func NewEventController(logger *slog.Logger, svc domain.EventService, export domain.ExportService, invitations domain.InvitationService) *EventController {
	return &EventController{
		Logger:      logger,
		Service:     svc,
		Export:      export,
		Invitations: invitations,
	}
}

// writeError maps err to a status and logs the ones the client did not cause.
func (c *EventController) writeError(w http.ResponseWriter, r *http.Request, err error) {
	writeServiceError(c.Logger, w, r, err)
}

func writeServiceError(logger *slog.Logger, w http.ResponseWriter, r *http.Request, err error) {
	status, msg := helpers.ErrorStatus(err)
	if status >= http.StatusInternalServerError {
		logger.ErrorContext(r.Context(), "request failed", "path", r.URL.Path, "method", r.Method, "err", err)
	}
	helpers.WriteJSONError(w, status, msg)
}

// CreateEvent godoc
// @Summary Create an event
// @Description Creates an event with its candidate date options and returns the public id and share URL.
// @Tags events
// @Accept json
// @Produce json
// @Param event body EventRequest true "Event with at least one date option"
// @Success 201 {object} controllers.CreateEventResponse
// @Failure 400 {object} helpers.ErrorResponse
// @Failure 500 {object} helpers.ErrorResponse
// @Router /events [post]
func (c *EventController) CreateEvent(w http.ResponseWriter, r *http.Request) {
	var req EventRequest
	if !helpers.DecodeAndValidate(w, r, &req) {
		return
	}
	event, shareURL, err := c.Service.CreateEvent(r.Context(), req.toInput())
	if err != nil {
		c.writeError(w, r, err)
		return
	}
	c.Logger.InfoContext(r.Context(), "event created", "public_id", event.PublicID)
	helpers.WriteJSON(w, http.StatusCreated, CreateEventResponse{PublicID: event.PublicID, ShareURL: shareURL})
}

// GetEvent godoc
// @Summary Get an event
// @Description Returns the event, its ordered date options, every participant's answers, per-option tallies and the best options.
// @Tags events
// @Produce json
// @Param publicId path string true "Public event id"
// @Success 200 {object} controllers.GetEventResponse
// @Failure 404 {object} helpers.ErrorResponse
// @Failure 500 {object} helpers.ErrorResponse
// @Router /events/{publicId} [get]
func (c *EventController) GetEvent(w http.ResponseWriter, r *http.Request) {
	view, err := c.Service.GetEvent(r.Context(), r.PathValue("publicId"))
	if err != nil {
		c.writeError(w, r, err)
		return
	}
	helpers.WriteJSON(w, http.StatusOK, GetEventResponse{
		ID:          view.Event.ID,
		PublicID:    view.Event.PublicID,
		Title:       view.Event.Title,
		Location:    view.Event.Location,
		Description: view.Event.Description,
		DateOptions: view.DateOptions,
		Responses:   view.Participants,
		Summary:     view.Summary,
		BestOptions: view.BestOptions,
	})
}

// UpdateEvent godoc
// @Summary Edit an event
// @Description Updates title, location and description and reconciles the date options. Options carrying a known id are updated, others are inserted, and omitted ones are deleted along with their answers.
// @Tags events
// @Accept json
// @Produce json
// @Param publicId path string true "Public event id"
// @Param event body EventRequest true "Edited event including passphrase"
// @Success 200 {object} helpers.SuccessResponse
// @Failure 400 {object} helpers.ErrorResponse
// @Failure 401 {object} helpers.ErrorResponse
// @Failure 404 {object} helpers.ErrorResponse
// @Failure 500 {object} helpers.ErrorResponse
// @Router /events/{publicId} [put]
func (c *EventController) UpdateEvent(w http.ResponseWriter, r *http.Request) {
	var req EventRequest
	if !helpers.DecodeAndValidate(w, r, &req) {
		return
	}
	if err := c.Service.UpdateEvent(r.Context(), r.PathValue("publicId"), req.toInput()); err != nil {
		c.writeError(w, r, err)
		return
	}
	helpers.WriteSuccess(w)
}

// DeleteEvent godoc
// @Summary Delete an event
// @Description Deletes the event with its date options and answers.
// @Tags events
// @Accept json
// @Produce json
// @Param publicId path string true "Public event id"
// @Param body body PassphraseRequest true "Passphrase"
// @Success 200 {object} helpers.SuccessResponse
// @Failure 400 {object} helpers.ErrorResponse
// @Failure 401 {object} helpers.ErrorResponse
// @Failure 404 {object} helpers.ErrorResponse
// @Failure 500 {object} helpers.ErrorResponse
// @Router /events/{publicId} [delete]
func (c *EventController) DeleteEvent(w http.ResponseWriter, r *http.Request) {
	var req PassphraseRequest
	if !helpers.DecodeAndValidate(w, r, &req) {
		return
	}
	publicID := r.PathValue("publicId")
	if err := c.Service.DeleteEvent(r.Context(), publicID, req.Passphrase); err != nil {
		c.writeError(w, r, err)
		return
	}
	c.Logger.InfoContext(r.Context(), "event deleted", "public_id", publicID)
	helpers.WriteSuccess(w)
}

// VerifyPassphrase godoc
// @Summary Check a passphrase
// @Description Reports whether the passphrase unlocks editing of the event.
// @Tags events
// @Accept json
// @Produce json
// @Param publicId path string true "Public event id"
// @Param body body PassphraseRequest true "Passphrase"
// @Success 200 {object} controllers.VerifyResponse
// @Failure 400 {object} controllers.VerifyResponse
// @Failure 401 {object} controllers.VerifyResponse
// @Failure 404 {object} helpers.ErrorResponse
// @Failure 500 {object} helpers.ErrorResponse
// @Router /events/{publicId}/verify [post]
func (c *EventController) VerifyPassphrase(w http.ResponseWriter, r *http.Request) {
	var req PassphraseRequest
	if !helpers.DecodeAndValidate(w, r, &req) {
		return
	}
	err := c.Service.VerifyPassphrase(r.Context(), r.PathValue("publicId"), req.Passphrase)
	if err != nil {
		status, msg := helpers.ErrorStatus(err)
		if status == http.StatusBadRequest || status == http.StatusUnauthorized {
			helpers.WriteJSON(w, status, VerifyResponse{Valid: false, Error: msg})
			return
		}
		c.writeError(w, r, err)
		return
	}
	helpers.WriteJSON(w, http.StatusOK, VerifyResponse{Valid: true})
}

// ExportCSV godoc
// @Summary Download answers as CSV
// @Description Returns the participant-by-option matrix with per-option tallies as a UTF-8 CSV file.
// @Tags events
// @Produce text/csv
// @Param publicId path string true "Public event id"
// @Success 200 {file} file
// @Failure 404 {object} helpers.ErrorResponse
// @Failure 500 {object} helpers.ErrorResponse
// @Router /events/{publicId}/export.csv [get]
func (c *EventController) ExportCSV(w http.ResponseWriter, r *http.Request) {
	filename, content, err := c.Export.ExportCSV(r.Context(), r.PathValue("publicId"))
	if err != nil {
		c.writeError(w, r, err)
		return
	}
	w.Header().Set("Content-Type", "text/csv; charset=utf-8")
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename*=UTF-8''%s", url.PathEscape(filename)))
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(content)
}

// SendInvitations godoc
// @Summary Email the share link
// @Description Sends the event's share link to up to 20 addresses. Addresses that could not be mailed are listed in failed.
// @Tags events
// @Accept json
// @Produce json
// @Param publicId path string true "Public event id"
// @Param body body InvitationRequest true "Passphrase and recipient addresses"
// @Success 200 {object} controllers.InvitationResponse
// @Failure 400 {object} helpers.ErrorResponse
// @Failure 401 {object} helpers.ErrorResponse
// @Failure 404 {object} helpers.ErrorResponse
// @Failure 500 {object} helpers.ErrorResponse
// @Router /events/{publicId}/invitations [post]
func (c *EventController) SendInvitations(w http.ResponseWriter, r *http.Request) {
	var req InvitationRequest
	if !helpers.DecodeAndValidate(w, r, &req) {
		return
	}
	sent, failed, err := c.Invitations.SendInvitations(r.Context(), r.PathValue("publicId"), req.Passphrase, req.Emails)
	if err != nil {
		c.writeError(w, r, err)
		return
	}
	if failed == nil {
		failed = []string{}
	}
	helpers.WriteJSON(w, http.StatusOK, InvitationResponse{Sent: sent, Failed: failed})
}
