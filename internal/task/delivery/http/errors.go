package http

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"taskboard/internal/task"
	"taskboard/pkg/enricher"
	"taskboard/pkg/response"
)

// respondError maps domain and webhook errors onto HTTP responses. Unknown
// errors become an opaque 500 so store internals never leak to clients.
func (h *handler) respondError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, task.ErrTaskNotFound):
		response.NotFound(c, err)
	case errors.Is(err, enricher.ErrAuthFailed):
		response.Unauthorized(c)
	case errors.Is(err, task.ErrSubmissionInFlight):
		response.ErrorWithStatus(c, http.StatusConflict, err)
	case errors.Is(err, task.ErrDescriptionRequired),
		errors.Is(err, task.ErrInvalidSchedule),
		errors.Is(err, task.ErrNoTaskReturned),
		errors.Is(err, enricher.ErrBadRequest):
		response.Error(c, err, nil)
	default:
		response.InternalError(c, err)
	}
}
