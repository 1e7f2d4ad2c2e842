package http

import (
	"taskboard/internal/session"
	"taskboard/pkg/log"
)

type handler struct {
	l        log.Logger
	provider *session.Provider
}

// New creates the HTTP handler for the auth endpoints.
func New(l log.Logger, provider *session.Provider) *handler {
	return &handler{
		l:        l,
		provider: provider,
	}
}
