package controllers

import (
	"log/slog"
	"net/http"

	"groupschedule/internal/delivery/http/helpers"
	"groupschedule/internal/domain"
)

// SubmitResponseRequest is the request body for POST /events/{publicId}/responses.
// Each answer is either a bare status ("ok") or {"status":"ok","note":"..."}.
type SubmitResponseRequest struct {
	Name    string                   `json:"name"`
	Answers map[string]domain.Answer `json:"answers"`
}

type ResponseController struct {
	Logger  *slog.Logger
	Service domain.ResponseService
}

func NewResponseController(logger *slog.Logger, svc domain.ResponseService) *ResponseController {
	return &ResponseController{Logger: logger, Service: svc}
}

// SubmitResponse godoc
// @Summary Submit availability
// @Description Replaces every answer previously stored under the participant name with the submitted set.
// @Tags responses
// @Accept json
// @Produce json
// @Param publicId path string true "Public event id"
// @Param body body SubmitResponseRequest true "Participant name and answers keyed by date option id"
// @Success 200 {object} helpers.SuccessResponse
// @Failure 400 {object} helpers.ErrorResponse
// @Failure 404 {object} helpers.ErrorResponse
// @Failure 500 {object} helpers.ErrorResponse
// @Router /events/{publicId}/responses [post]
func (c *ResponseController) SubmitResponse(w http.ResponseWriter, r *http.Request) {
	var req SubmitResponseRequest
	if !helpers.DecodeAndValidate(w, r, &req) {
		return
	}
	in := domain.ResponseInput{Name: req.Name, Answers: req.Answers}
	if err := c.Service.SubmitResponse(r.Context(), r.PathValue("publicId"), in); err != nil {
		writeServiceError(c.Logger, w, r, err)
		return
	}
	helpers.WriteSuccess(w)
}
