// Package session holds the authenticated session as an explicit object
// constructed at startup, with subscriptions for auth-change events.
// Nothing here is a package-level singleton.
package session

import (
	"context"
	"fmt"
	"sync"

	pkgLog "taskboard/pkg/log"
	"taskboard/pkg/supabase"
)

// Provider owns the current session and notifies subscribers on changes.
type Provider struct {
	auth *supabase.AuthClient
	l    pkgLog.Logger

	mu          sync.Mutex
	current     *supabase.Session
	subscribers map[int]func(*supabase.Session)
	nextSubID   int
	closed      bool
}

// New creates a session provider bound to the hosted auth service.
func New(auth *supabase.AuthClient, l pkgLog.Logger) *Provider {
	return &Provider{
		auth:        auth,
		l:           l,
		subscribers: make(map[int]func(*supabase.Session)),
	}
}

// Current returns the active session, nil when signed out.
func (p *Provider) Current() *supabase.Session {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.current
}

// Subscribe registers fn for session changes and returns its unsubscribe
// function. fn runs synchronously under the state transition, after Close
// it is never called again.
func (p *Provider) Subscribe(fn func(*supabase.Session)) func() {
	p.mu.Lock()
	defer p.mu.Unlock()

	id := p.nextSubID
	p.nextSubID++
	p.subscribers[id] = fn

	return func() {
		p.mu.Lock()
		defer p.mu.Unlock()
		delete(p.subscribers, id)
	}
}

// SignUp registers a new account and adopts the issued session.
func (p *Provider) SignUp(ctx context.Context, email, password string) (*supabase.Session, error) {
	sess, err := p.auth.SignUp(ctx, email, password)
	if err != nil {
		return nil, fmt.Errorf("sign up failed: %w", err)
	}

	p.setSession(ctx, sess)
	return sess, nil
}

// SignIn authenticates with the password grant and adopts the session.
func (p *Provider) SignIn(ctx context.Context, email, password string) (*supabase.Session, error) {
	sess, err := p.auth.SignIn(ctx, email, password)
	if err != nil {
		return nil, fmt.Errorf("sign in failed: %w", err)
	}

	p.setSession(ctx, sess)
	return sess, nil
}

// SignOut revokes the token upstream and clears local state. The local
// session clears even when revocation fails, so a dead upstream cannot
// keep the user signed in.
func (p *Provider) SignOut(ctx context.Context, token string) error {
	err := p.auth.SignOut(ctx, token)
	if err != nil {
		p.l.Warnf(ctx, "SignOut: upstream revocation failed: %v", err)
	}

	p.setSession(ctx, nil)
	return err
}

// Close clears state and drops all subscribers. Subsequent notifications
// are suppressed.
func (p *Provider) Close() {
	p.mu.Lock()
	defer p.mu.Unlock()

	p.closed = true
	p.current = nil
	p.subscribers = make(map[int]func(*supabase.Session))
}

func (p *Provider) setSession(ctx context.Context, sess *supabase.Session) {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.closed {
		return
	}

	p.current = sess
	for _, fn := range p.subscribers {
		fn(sess)
	}

	if sess != nil {
		p.l.Infof(ctx, "session: user %s signed in", sess.User.ID)
	} else {
		p.l.Infof(ctx, "session: signed out")
	}
}
