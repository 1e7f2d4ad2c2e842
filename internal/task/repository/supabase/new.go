package supabase

import (
	"taskboard/internal/task/repository"
	pkgLog "taskboard/pkg/log"
	supabaseClient "taskboard/pkg/supabase"
)

type implRepository struct {
	client *supabaseClient.Client
	l      pkgLog.Logger
}

// New creates a task repository backed by the hosted store's REST query API.
func New(client *supabaseClient.Client, l pkgLog.Logger) repository.TaskRepository {
	return &implRepository{
		client: client,
		l:      l,
	}
}
