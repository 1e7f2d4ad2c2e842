package http

import (
	"strings"
	"time"

	"taskboard/internal/model"
	"taskboard/internal/task"
)

// --- Request DTOs ---

type submitReq struct {
	Description string `json:"description" binding:"required"`
}

func (r submitReq) toInput() task.SubmitInput {
	return task.SubmitInput{Description: r.Description}
}

type listReq struct {
	Search string `form:"search"`
	Tags   string `form:"tags"` // comma-separated
	Sort   string `form:"sort" binding:"omitempty,oneof=created category status"`
}

func (r listReq) toInput() task.ListInput {
	var tags []string
	for _, tag := range strings.Split(r.Tags, ",") {
		if tag = strings.TrimSpace(tag); tag != "" {
			tags = append(tags, tag)
		}
	}
	return task.ListInput{
		Search: r.Search,
		Tags:   tags,
		Sort:   task.SortKey(r.Sort),
	}
}

type updateStatusReq struct {
	ID     string `json:"-"`
	IsDone *bool  `json:"is_done" binding:"required"`
}

func (r updateStatusReq) toInput() task.UpdateStatusInput {
	return task.UpdateStatusInput{ID: r.ID, IsDone: *r.IsDone}
}

type updateTagsReq struct {
	ID   string   `json:"-"`
	Tags []string `json:"tags" binding:"required"`
}

func (r updateTagsReq) toInput() task.UpdateTagsInput {
	return task.UpdateTagsInput{ID: r.ID, Tags: r.Tags}
}

type updateScheduleReq struct {
	ID        string     `json:"-"`
	StartDate *time.Time `json:"start_date"`
	EndDate   *time.Time `json:"end_date"`
}

func (r updateScheduleReq) toInput() task.UpdateScheduleInput {
	return task.UpdateScheduleInput{ID: r.ID, StartDate: r.StartDate, EndDate: r.EndDate}
}

// --- Response DTOs ---

type taskResp struct {
	ID             string     `json:"id"`
	Description    string     `json:"description"`
	Category       string     `json:"category"`
	TimeEstimate   string     `json:"time_estimate"`
	Summary        string     `json:"summary"`
	IsDone         bool       `json:"is_done"`
	Tags           []string   `json:"tags"`
	StartDate      *time.Time `json:"start_date,omitempty"`
	EndDate        *time.Time `json:"end_date,omitempty"`
	CreatedAt      time.Time  `json:"created_at"`
	ScheduleStatus string     `json:"schedule_status"`
}

func newTaskResp(t model.Task, now time.Time) taskResp {
	tags := t.Tags
	if tags == nil {
		tags = []string{}
	}
	return taskResp{
		ID:             t.ID,
		Description:    t.Description,
		Category:       string(t.Category),
		TimeEstimate:   t.TimeEstimate,
		Summary:        t.Summary,
		IsDone:         t.IsDone,
		Tags:           tags,
		StartDate:      t.StartDate,
		EndDate:        t.EndDate,
		CreatedAt:      t.CreatedAt,
		ScheduleStatus: string(t.ScheduleStatus(now)),
	}
}

type listResp struct {
	Tasks []taskResp `json:"tasks"`
	Count int        `json:"count"`
	Total int        `json:"total"`
}

func newListResp(out task.ListOutput, now time.Time) listResp {
	tasks := make([]taskResp, len(out.Tasks))
	for i, t := range out.Tasks {
		tasks[i] = newTaskResp(t, now)
	}
	return listResp{
		Tasks: tasks,
		Count: len(tasks),
		Total: out.Total,
	}
}
