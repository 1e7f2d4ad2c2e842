package usecase

import (
	"sync"
	"time"

	lru "github.com/hashicorp/golang-lru/v2"

	"taskboard/internal/model"
	"taskboard/internal/task/repository"
	"taskboard/pkg/enricher"
	"taskboard/pkg/gcalendar"
	pkgLog "taskboard/pkg/log"
)

const (
	defaultSettleDelay = 2 * time.Second
	defaultCacheSize   = 256
)

// Config tunes the task use case.
type Config struct {
	SettleDelay time.Duration // Wait before refetching after an ambiguous webhook reply
	CacheSize   int           // Per-user collection cache entries
	Timezone    string        // Calendar event timezone, e.g. "UTC"
	CalendarID  string        // Target calendar, defaults to "primary"
}

type implUseCase struct {
	l        pkgLog.Logger
	repo     repository.TaskRepository
	enricher *enricher.Client
	calendar *gcalendar.Client // nil disables calendar events

	settleDelay time.Duration
	timezone    string
	calendarID  string

	// cache holds each user's last fetched collection, newest first.
	// List and Stats serve it when warm; updates merge into it
	// optimistically and errors leave it untouched.
	cache *lru.Cache[string, []model.Task]

	mu       sync.Mutex
	inflight map[string]struct{}

	now func() time.Time
}

// New creates a new task UseCase instance.
func New(l pkgLog.Logger, repo repository.TaskRepository, enr *enricher.Client, calendar *gcalendar.Client, cfg Config) *implUseCase {
	if cfg.SettleDelay <= 0 {
		cfg.SettleDelay = defaultSettleDelay
	}
	if cfg.CacheSize <= 0 {
		cfg.CacheSize = defaultCacheSize
	}
	if cfg.CalendarID == "" {
		cfg.CalendarID = "primary"
	}

	cache, _ := lru.New[string, []model.Task](cfg.CacheSize)

	return &implUseCase{
		l:           l,
		repo:        repo,
		enricher:    enr,
		calendar:    calendar,
		settleDelay: cfg.SettleDelay,
		timezone:    cfg.Timezone,
		calendarID:  cfg.CalendarID,
		cache:       cache,
		inflight:    make(map[string]struct{}),
		now:         time.Now,
	}
}
