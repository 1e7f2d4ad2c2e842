package usecase

import (
	"context"
	"time"

	"taskboard/internal/model"
	"taskboard/internal/task/repository"
)

// mockLogger is a no-op logger for tests.
type mockLogger struct{}

func (mockLogger) Debug(ctx context.Context, args ...any)                  {}
func (mockLogger) Debugf(ctx context.Context, format string, args ...any)  {}
func (mockLogger) Info(ctx context.Context, args ...any)                   {}
func (mockLogger) Infof(ctx context.Context, format string, args ...any)   {}
func (mockLogger) Warn(ctx context.Context, args ...any)                   {}
func (mockLogger) Warnf(ctx context.Context, format string, args ...any)   {}
func (mockLogger) Error(ctx context.Context, args ...any)                  {}
func (mockLogger) Errorf(ctx context.Context, format string, args ...any)  {}
func (mockLogger) DPanic(ctx context.Context, args ...any)                 {}
func (mockLogger) DPanicf(ctx context.Context, format string, args ...any) {}
func (mockLogger) Panic(ctx context.Context, args ...any)                  {}
func (mockLogger) Panicf(ctx context.Context, format string, args ...any)  {}
func (mockLogger) Fatal(ctx context.Context, args ...any)                  {}
func (mockLogger) Fatalf(ctx context.Context, format string, args ...any)  {}

// mockRepository records calls and returns scripted results.
type mockRepository struct {
	listResult []model.Task
	listErr    error
	listCalls  int

	insertResult model.Task
	insertErr    error
	insertCalls  []repository.InsertTaskOptions

	updateResult model.Task
	updateErr    error

	lastStatusID     string
	lastStatusIsDone bool
	lastTagsID       string
	lastTags         []string
	lastScheduleID   string
	lastSchedule     repository.ScheduleOptions
}

func (m *mockRepository) ListByUser(ctx context.Context, token, userID string) ([]model.Task, error) {
	m.listCalls++
	return m.listResult, m.listErr
}

func (m *mockRepository) Insert(ctx context.Context, token string, opt repository.InsertTaskOptions) (model.Task, error) {
	m.insertCalls = append(m.insertCalls, opt)
	return m.insertResult, m.insertErr
}

func (m *mockRepository) UpdateStatus(ctx context.Context, token, id string, isDone bool) (model.Task, error) {
	m.lastStatusID = id
	m.lastStatusIsDone = isDone
	return m.updateResult, m.updateErr
}

func (m *mockRepository) UpdateTags(ctx context.Context, token, id string, tags []string) (model.Task, error) {
	m.lastTagsID = id
	m.lastTags = tags
	return m.updateResult, m.updateErr
}

func (m *mockRepository) UpdateSchedule(ctx context.Context, token, id string, opt repository.ScheduleOptions) (model.Task, error) {
	m.lastScheduleID = id
	m.lastSchedule = opt
	return m.updateResult, m.updateErr
}

func testScope() model.Scope {
	return model.Scope{UserID: "user-1", Email: "u@example.com", Token: "jwt-token"}
}

func mustTime(t string) time.Time {
	parsed, err := time.Parse(time.RFC3339, t)
	if err != nil {
		panic(err)
	}
	return parsed
}

func timePtr(t time.Time) *time.Time { return &t }
