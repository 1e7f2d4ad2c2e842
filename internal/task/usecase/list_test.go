package usecase

import (
	"context"
	"errors"
	"testing"

	"taskboard/internal/model"
	"taskboard/internal/task"
)

func TestListServesFromCache(t *testing.T) {
	repo := &mockRepository{
		listResult: []model.Task{
			{ID: "2", UserID: "user-1", Description: "pay rent", CreatedAt: mustTime("2024-05-02T10:00:00Z")},
			{ID: "1", UserID: "user-1", Description: "call dentist", CreatedAt: mustTime("2024-05-01T10:00:00Z")},
		},
	}
	uc := newTestUseCase(repo, "http://127.0.0.1:1")

	first, err := uc.List(context.Background(), testScope(), task.ListInput{})
	if err != nil {
		t.Fatalf("first list: %v", err)
	}
	if repo.listCalls != 1 {
		t.Fatalf("expected one store fetch on cold cache, got %d", repo.listCalls)
	}
	if first.Total != 2 {
		t.Errorf("expected total 2, got %d", first.Total)
	}

	second, err := uc.List(context.Background(), testScope(), task.ListInput{Search: "rent"})
	if err != nil {
		t.Fatalf("second list: %v", err)
	}
	if repo.listCalls != 1 {
		t.Errorf("expected warm cache to serve without a store call, got %d", repo.listCalls)
	}
	if len(second.Tasks) != 1 || second.Tasks[0].ID != "2" {
		t.Errorf("filter over cached collection wrong: %+v", second.Tasks)
	}

	if _, err := uc.Stats(context.Background(), testScope()); err != nil {
		t.Fatalf("stats: %v", err)
	}
	if repo.listCalls != 1 {
		t.Errorf("expected stats to share the cached collection, got %d store calls", repo.listCalls)
	}
}

func TestListStoreErrorOnColdCache(t *testing.T) {
	repo := &mockRepository{listErr: errors.New("store down")}
	uc := newTestUseCase(repo, "http://127.0.0.1:1")

	if _, err := uc.List(context.Background(), testScope(), task.ListInput{}); err == nil {
		t.Fatal("expected error")
	}
	if _, ok := uc.cache.Get("user-1"); ok {
		t.Error("failed fetch must not populate the cache")
	}
}
