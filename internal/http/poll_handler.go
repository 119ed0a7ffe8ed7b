package api

import (
	"fmt"
	"net/http"

	"polls-api/internal/domain/poll"
	"polls-api/internal/platform/apperr"
)

type createPollRequest struct {
	Title       string  `json:"title" validate:"required,max=80"`
	Description *string `json:"description" validate:"omitempty,max=500"`
}

// @Summary     List polls with aggregates
// @Tags        polls
// @Security    BearerAuth
// @Produce     json
// @Success     200  {object}  map[string][]poll.Summary
// @Failure     401  {object}  errorBody
// @Router      /api/v1/polls [get]
func (h *Handler) handleListPolls(w http.ResponseWriter, r *http.Request) {
	items, err := h.pollSvc.List(r.Context(), userIDFromCtx(r))
	if err != nil {
		errorResponse(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"items": items})
}

// @Summary     Poll detail with rating distribution
// @Tags        polls
// @Security    BearerAuth
// @Produce     json
// @Param       id   path      int64  true  "Poll ID"
// @Success     200  {object}  poll.Detail
// @Failure     404  {object}  errorBody  "poll not found"
// @Router      /api/v1/polls/{id} [get]
func (h *Handler) handleGetPoll(w http.ResponseWriter, r *http.Request) {
	id, err := parseIDParam(r, "id")
	if err != nil {
		errorResponse(w, apperr.BadRequest("invalid_input", "invalid poll id", err))
		return
	}

	detail, err := h.pollSvc.Get(r.Context(), id, userIDFromCtx(r))
	if err != nil {
		errorResponse(w, err)
		return
	}
	writeJSON(w, http.StatusOK, detail)
}

// @Summary     Create a poll
// @Tags        polls
// @Security    BearerAuth
// @Accept      json
// @Produce     json
// @Param       request  body      createPollRequest  true  "Poll payload"
// @Success     201      {object}  poll.Detail
// @Failure     400      {object}  errorBody  "validation error"
// @Failure     403      {object}  errorBody  "admin only"
// @Router      /api/v1/polls [post]
func (h *Handler) handleCreatePoll(w http.ResponseWriter, r *http.Request) {
	var req createPollRequest
	if appErr := decodeAndValidate(r, &req); appErr != nil {
		errorResponse(w, appErr)
		return
	}

	created, err := h.pollSvc.Create(r.Context(), poll.CreateInput{
		Title:       req.Title,
		Description: req.Description,
		CreatedBy:   userIDFromCtx(r),
	})
	if err != nil {
		errorResponse(w, err)
		return
	}

	w.Header().Set("Location", fmt.Sprintf("/api/v1/polls/%d", created.ID))
	writeJSON(w, http.StatusCreated, created)
}

// @Summary     Close a poll
// @Tags        polls
// @Security    BearerAuth
// @Produce     json
// @Param       id   path      int64  true  "Poll ID"
// @Success     200  {object}  map[string]any
// @Failure     404  {object}  errorBody  "poll not found"
// @Failure     409  {object}  errorBody  "already closed"
// @Router      /api/v1/polls/{id}/close [post]
func (h *Handler) handleClosePoll(w http.ResponseWriter, r *http.Request) {
	id, err := parseIDParam(r, "id")
	if err != nil {
		errorResponse(w, apperr.BadRequest("invalid_input", "invalid poll id", err))
		return
	}

	p, err := h.pollSvc.Close(r.Context(), id)
	if err != nil {
		errorResponse(w, err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{
		"id":     p.ID,
		"status": p.Status,
	})
}

func (h *Handler) handleDeletePoll(w http.ResponseWriter, r *http.Request) {
	id, err := parseIDParam(r, "id")
	if err != nil {
		errorResponse(w, apperr.BadRequest("invalid_input", "invalid poll id", err))
		return
	}

	if err := h.pollSvc.Delete(r.Context(), id); err != nil {
		errorResponse(w, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
