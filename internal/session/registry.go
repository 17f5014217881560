// Package session owns the in-memory state of active games: one session per
// scope key (guild), with explicit insert, lookup, and remove operations
// instead of package-level maps. The registry is also the routing point that
// turns platform events into per-session inbox deliveries.
package session

import (
	"context"
	"errors"
	"sync"

	"github.com/gamenightlabs/gamenight/internal/models"
)

var (
	// ErrSessionActive is returned when a start command targets a scope
	// key that already has a running game
	ErrSessionActive = errors.New("a game is already active in this server")

	// ErrNoSession is returned when a stop command targets a scope key
	// with no running game
	ErrNoSession = errors.New("no active game in this server")
)

// Registry tracks every active session and routes inbound platform events
// to the session that owns them.
type Registry struct {
	mu       sync.Mutex
	sessions map[string]*Session
	waiters  map[int64]*waiter
	nextID   int64
}

type waiter struct {
	match func(models.InboundMessage) bool
	ch    chan models.InboundMessage
}

// NewRegistry creates an empty session registry
func NewRegistry() *Registry {
	return &Registry{
		sessions: make(map[string]*Session),
		waiters:  make(map[int64]*waiter),
	}
}

// Add claims the session's scope key. It fails with ErrSessionActive, and
// mutates nothing, if the key is already occupied.
func (r *Registry) Add(s *Session) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if existing, ok := r.sessions[s.Key]; ok && !existing.Stopped() {
		return ErrSessionActive
	}
	r.sessions[s.Key] = s
	return nil
}

// Get returns the active session for a scope key
func (r *Registry) Get(key string) (*Session, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	s, ok := r.sessions[key]
	return s, ok
}

// Stop cancels and removes the session at the scope key. A second stop, or a
// stop after the game resolved and released itself, returns ErrNoSession so
// the caller can answer "no active game" instead of failing.
func (r *Registry) Stop(key string) (*Session, error) {
	r.mu.Lock()
	s, ok := r.sessions[key]
	if ok {
		delete(r.sessions, key)
	}
	r.mu.Unlock()

	if !ok {
		return nil, ErrNoSession
	}
	s.Stop()
	return s, nil
}

// Release removes the session if it still occupies its scope key, and sets
// its stop signal so any stray stage timers die with it. Engines call this
// when a game ends on its own; it is a no-op if a stop command got there
// first.
func (r *Registry) Release(s *Session) {
	r.mu.Lock()
	if current, ok := r.sessions[s.Key]; ok && current == s {
		delete(r.sessions, s.Key)
	}
	r.mu.Unlock()
	s.Stop()
}

// ActiveCount returns the number of registered sessions
func (r *Registry) ActiveCount() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.sessions)
}

// DispatchMessage routes a platform message. One-shot waiters are offered
// the message first; otherwise it goes to the inbox of the session owning
// the guild, provided it was sent in the session's channel and not by a bot.
func (r *Registry) DispatchMessage(m models.InboundMessage) {
	if m.FromBot {
		return
	}

	r.mu.Lock()
	for id, w := range r.waiters {
		if w.match(m) {
			delete(r.waiters, id)
			r.mu.Unlock()
			w.ch <- m
			return
		}
	}
	s, ok := r.sessions[m.GuildID]
	r.mu.Unlock()

	if !ok || s.ChannelID != m.ChannelID {
		return
	}
	s.offerMessage(m)
}

// DispatchReaction routes a platform reaction to the session owning the
// guild, if any.
func (r *Registry) DispatchReaction(reaction models.InboundReaction) {
	if reaction.FromBot {
		return
	}

	r.mu.Lock()
	s, ok := r.sessions[reaction.GuildID]
	r.mu.Unlock()

	if !ok || s.ChannelID != reaction.ChannelID {
		return
	}
	s.offerReaction(reaction)
}

// AwaitMessage blocks until a message matching the predicate arrives or the
// context expires. Matching messages are consumed before session routing,
// which is how the ceremony's host prompt listens on a private channel.
func (r *Registry) AwaitMessage(ctx context.Context, match func(models.InboundMessage) bool) (models.InboundMessage, error) {
	w := &waiter{
		match: match,
		ch:    make(chan models.InboundMessage, 1),
	}

	r.mu.Lock()
	r.nextID++
	id := r.nextID
	r.waiters[id] = w
	r.mu.Unlock()

	select {
	case m := <-w.ch:
		return m, nil
	case <-ctx.Done():
		r.mu.Lock()
		delete(r.waiters, id)
		r.mu.Unlock()
		return models.InboundMessage{}, ctx.Err()
	}
}
