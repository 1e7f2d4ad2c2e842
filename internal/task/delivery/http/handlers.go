package http

import (
	"time"

	"github.com/gin-gonic/gin"

	"taskboard/internal/middleware"
	"taskboard/pkg/response"
)

// Submit godoc
// @Summary     Submit a task description
// @Description Sends a free-text description through the enrichment pipeline and returns the persisted task.
// @Tags        Tasks
// @Accept      json
// @Produce     json
// @Security    BearerAuth
// @Param       body body submitReq true "Task description"
// @Success     200 {object} taskResp
// @Failure     400 {object} response.Resp "Bad Request"
// @Failure     401 {object} response.Resp "Unauthorized"
// @Failure     409 {object} response.Resp "Submission already in progress"
// @Router      /api/v1/tasks [POST]
func (h *handler) Submit(c *gin.Context) {
	ctx := c.Request.Context()

	sc, ok := middleware.GetScope(c)
	if !ok {
		response.Unauthorized(c)
		return
	}

	var req submitReq
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, err, nil)
		return
	}

	created, err := h.uc.Submit(ctx, sc, req.toInput())
	if err != nil {
		h.l.Errorf(ctx, "uc.Submit: %v", err)
		h.respondError(c, err)
		return
	}

	response.OK(c, newTaskResp(created, time.Now()))
}

// List godoc
// @Summary     List tasks
// @Description Returns the caller's tasks with optional search, tag filter and sort.
// @Tags        Tasks
// @Produce     json
// @Security    BearerAuth
// @Param       search query string false "Case-insensitive substring filter"
// @Param       tags   query string false "Comma-separated tags, any match keeps the task"
// @Param       sort   query string false "created (default), category or status"
// @Success     200 {object} listResp
// @Failure     401 {object} response.Resp "Unauthorized"
// @Router      /api/v1/tasks [GET]
func (h *handler) List(c *gin.Context) {
	ctx := c.Request.Context()

	sc, ok := middleware.GetScope(c)
	if !ok {
		response.Unauthorized(c)
		return
	}

	var req listReq
	if err := c.ShouldBindQuery(&req); err != nil {
		response.Error(c, err, nil)
		return
	}

	out, err := h.uc.List(ctx, sc, req.toInput())
	if err != nil {
		h.l.Errorf(ctx, "uc.List: %v", err)
		h.respondError(c, err)
		return
	}

	response.OK(c, newListResp(out, time.Now()))
}

// UpdateStatus godoc
// @Summary     Toggle completion
// @Description Sets the is_done flag of one task.
// @Tags        Tasks
// @Accept      json
// @Produce     json
// @Security    BearerAuth
// @Param       id   path string          true "Task ID"
// @Param       body body updateStatusReq true "New completion state"
// @Success     200 {object} taskResp
// @Failure     404 {object} response.Resp "Not Found"
// @Router      /api/v1/tasks/{id}/status [PATCH]
func (h *handler) UpdateStatus(c *gin.Context) {
	ctx := c.Request.Context()

	sc, ok := middleware.GetScope(c)
	if !ok {
		response.Unauthorized(c)
		return
	}

	var req updateStatusReq
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, err, nil)
		return
	}
	req.ID = c.Param("id")

	updated, err := h.uc.UpdateStatus(ctx, sc, req.toInput())
	if err != nil {
		h.l.Errorf(ctx, "uc.UpdateStatus: %v", err)
		h.respondError(c, err)
		return
	}

	response.OK(c, newTaskResp(updated, time.Now()))
}

// UpdateTags godoc
// @Summary     Replace tags
// @Description Replaces a task's tag set. Duplicates collapse case-insensitively, first spelling wins.
// @Tags        Tasks
// @Accept      json
// @Produce     json
// @Security    BearerAuth
// @Param       id   path string        true "Task ID"
// @Param       body body updateTagsReq true "New tag set"
// @Success     200 {object} taskResp
// @Failure     404 {object} response.Resp "Not Found"
// @Router      /api/v1/tasks/{id}/tags [PUT]
func (h *handler) UpdateTags(c *gin.Context) {
	ctx := c.Request.Context()

	sc, ok := middleware.GetScope(c)
	if !ok {
		response.Unauthorized(c)
		return
	}

	var req updateTagsReq
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, err, nil)
		return
	}
	req.ID = c.Param("id")

	updated, err := h.uc.UpdateTags(ctx, sc, req.toInput())
	if err != nil {
		h.l.Errorf(ctx, "uc.UpdateTags: %v", err)
		h.respondError(c, err)
		return
	}

	response.OK(c, newTaskResp(updated, time.Now()))
}

// UpdateSchedule godoc
// @Summary     Set or clear the schedule window
// @Description Sets start/end dates. An end date requires a start date and must not precede it. Omitting both clears the window.
// @Tags        Tasks
// @Accept      json
// @Produce     json
// @Security    BearerAuth
// @Param       id   path string            true "Task ID"
// @Param       body body updateScheduleReq true "Schedule window"
// @Success     200 {object} taskResp
// @Failure     400 {object} response.Resp "Invalid window"
// @Failure     404 {object} response.Resp "Not Found"
// @Router      /api/v1/tasks/{id}/schedule [PUT]
func (h *handler) UpdateSchedule(c *gin.Context) {
	ctx := c.Request.Context()

	sc, ok := middleware.GetScope(c)
	if !ok {
		response.Unauthorized(c)
		return
	}

	var req updateScheduleReq
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, err, nil)
		return
	}
	req.ID = c.Param("id")

	updated, err := h.uc.UpdateSchedule(ctx, sc, req.toInput())
	if err != nil {
		h.l.Errorf(ctx, "uc.UpdateSchedule: %v", err)
		h.respondError(c, err)
		return
	}

	response.OK(c, newTaskResp(updated, time.Now()))
}

// Stats godoc
// @Summary     Collection statistics
// @Description Tallies the caller's tasks by schedule status.
// @Tags        Tasks
// @Produce     json
// @Security    BearerAuth
// @Success     200 {object} task.StatsOutput
// @Failure     401 {object} response.Resp "Unauthorized"
// @Router      /api/v1/tasks/stats [GET]
func (h *handler) Stats(c *gin.Context) {
	ctx := c.Request.Context()

	sc, ok := middleware.GetScope(c)
	if !ok {
		response.Unauthorized(c)
		return
	}

	stats, err := h.uc.Stats(ctx, sc)
	if err != nil {
		h.l.Errorf(ctx, "uc.Stats: %v", err)
		h.respondError(c, err)
		return
	}

	response.OK(c, stats)
}
