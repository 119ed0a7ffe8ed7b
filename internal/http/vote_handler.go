package api

import (
	"net/http"

	"polls-api/internal/platform/apperr"
	"polls-api/internal/worker"
)

type voteRequest struct {
	Rating int `json:"rating" validate:"required,gte=1,lte=5"`
}

// @Summary     Cast or update a rating vote
// @Tags        votes
// @Security    BearerAuth
// @Accept      json
// @Produce     json
// @Param       id       path      int64        true  "Poll ID"
// @Param       request  body      voteRequest  true  "Vote payload"
// @Success     200      {object}  vote.Vote
// @Failure     400      {object}  errorBody  "rating out of range"
// @Failure     403      {object}  errorBody  "poll closed"
// @Failure     404      {object}  errorBody  "poll not found"
// @Router      /api/v1/polls/{id}/vote [post]
func (h *Handler) handleVote(w http.ResponseWriter, r *http.Request) {
	pollID, err := parseIDParam(r, "id")
	if err != nil {
		errorResponse(w, apperr.BadRequest("invalid_input", "invalid poll id", err))
		return
	}

	var req voteRequest
	if appErr := decodeAndValidate(r, &req); appErr != nil {
		errorResponse(w, appErr)
		return
	}

	userID := userIDFromCtx(r)

	v, err := h.voteSvc.Cast(r.Context(), pollID, userID, req.Rating)
	if err != nil {
		errorResponse(w, err)
		return
	}

	// best effort, the worker only feeds metrics
	select {
	case h.voteCh <- worker.VoteEvent{PollID: pollID, UserID: userID, Rating: req.Rating}:
	default:
	}

	writeJSON(w, http.StatusOK, v)
}
