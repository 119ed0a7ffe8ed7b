package api

import (
	"database/sql"
	"errors"
	"net/http"

	"polls-api/internal/domain/poll"
	"polls-api/internal/domain/user"
	"polls-api/internal/domain/vote"
	"polls-api/internal/platform/apperr"
)

type errorBody struct {
	Error   string   `json:"error"`
	Message string   `json:"message"`
	Details []string `json:"details,omitempty"`
}

func errorResponse(w http.ResponseWriter, err error) {
	appErr := mapError(err)
	writeJSON(w, appErr.StatusCode(), errorBody{
		Error:   appErr.Code,
		Message: appErr.Message,
		Details: appErr.Details,
	})
}

// mapError funnels every domain error into the one tagged shape the API
// exposes. Anything unrecognized stays an opaque internal error.
func mapError(err error) *apperr.AppError {
	if err == nil {
		return apperr.Internal("internal_error", "internal server error", nil)
	}

	var appErr *apperr.AppError
	if errors.As(err, &appErr) {
		return appErr
	}

	switch {
	case errors.Is(err, sql.ErrNoRows):
		return apperr.NotFound("not_found", "resource not found", err)
	case errors.Is(err, user.ErrInvalidCredentials):
		return apperr.Unauthorized("invalid_credentials", "invalid credentials", err)
	case errors.Is(err, user.ErrEmailTaken):
		return apperr.BadRequest("email_taken", "email already taken", err)
	case errors.Is(err, user.ErrInvalidRole):
		return apperr.BadRequest("invalid_role", "invalid role", err)
	case errors.Is(err, poll.ErrNotFound), errors.Is(err, vote.ErrPollNotFound):
		return apperr.NotFound("poll_not_found", "poll not found", err)
	case errors.Is(err, poll.ErrAlreadyClosed):
		return apperr.Conflict("already_closed", "poll is already closed", err)
	case errors.Is(err, poll.ErrEmptyTitle),
		errors.Is(err, poll.ErrTitleTooLong),
		errors.Is(err, poll.ErrDescriptionTooLong),
		errors.Is(err, vote.ErrInvalidRating):
		return apperr.BadRequest("validation_error", err.Error(), err)
	case errors.Is(err, vote.ErrPollClosed):
		return apperr.Forbidden("poll_closed", "poll is closed for voting", err)
	default:
		return apperr.Internal("internal_error", http.StatusText(http.StatusInternalServerError), err)
	}
}
