package session

import (
	"context"
	"sync"

	"github.com/gamenightlabs/gamenight/internal/models"
)

// inboxSize bounds how many undelivered channel messages a round can hold
// before new ones are dropped. Rounds consume their inbox continuously, so
// the buffer only absorbs bursts.
const inboxSize = 64

// Session is the in-memory record of one active game at one scope key.
// It owns the cancellation token every countdown and wait in the round must
// observe, and the winner slot that is set at most once per round.
type Session struct {
	// Key is the scope key the session occupies, the guild ID
	Key string

	// Kind is the game being played
	Kind models.GameKind

	// ChannelID is the channel the game runs in; only messages from this
	// channel reach the inbox
	ChannelID string

	// HostID is the user who started the game
	HostID string

	// HostName is the host's display name
	HostName string

	ctx    context.Context
	cancel context.CancelFunc

	inbox     chan models.InboundMessage
	reactions chan models.InboundReaction

	mu           sync.Mutex
	winnerID     string
	winnerName   string
	resolved     bool
	participants map[string]struct{}
}

// New creates a session owned by the given parent context. Cancelling the
// parent (bot shutdown) stops the session like an explicit stop command.
func New(parent context.Context, key string, kind models.GameKind, channelID, hostID, hostName string) *Session {
	ctx, cancel := context.WithCancel(parent)
	return &Session{
		Key:          key,
		Kind:         kind,
		ChannelID:    channelID,
		HostID:       hostID,
		HostName:     hostName,
		ctx:          ctx,
		cancel:       cancel,
		inbox:        make(chan models.InboundMessage, inboxSize),
		reactions:    make(chan models.InboundReaction, inboxSize),
		participants: make(map[string]struct{}),
	}
}

// Context returns the session's cancellation token
func (s *Session) Context() context.Context {
	return s.ctx
}

// Done is closed once the session has been stopped
func (s *Session) Done() <-chan struct{} {
	return s.ctx.Done()
}

// Stop sets the session's stop signal. Idempotent.
func (s *Session) Stop() {
	s.cancel()
}

// Stopped reports whether the stop signal has been set
func (s *Session) Stopped() bool {
	return s.ctx.Err() != nil
}

// Inbox delivers channel messages routed to this session
func (s *Session) Inbox() <-chan models.InboundMessage {
	return s.inbox
}

// Reactions delivers reactions routed to this session
func (s *Session) Reactions() <-chan models.InboundReaction {
	return s.reactions
}

// Resolve records the round's winner. Only the first call per round
// succeeds; later matches in the same round are ignored.
func (s *Session) Resolve(userID, username string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.resolved {
		return false
	}
	s.resolved = true
	s.winnerID = userID
	s.winnerName = username
	return true
}

// Winner returns the round's winner, if one has been recorded
func (s *Session) Winner() (userID, username string, ok bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.winnerID, s.winnerName, s.resolved
}

// ResetRound clears the winner slot so a looping game can start its next
// round with resolve-once semantics intact.
func (s *Session) ResetRound() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.resolved = false
	s.winnerID = ""
	s.winnerName = ""
}

// AddParticipant registers a user for the round. Returns false if the user
// had already joined.
func (s *Session) AddParticipant(userID string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.participants[userID]; ok {
		return false
	}
	s.participants[userID] = struct{}{}
	return true
}

// HasParticipant reports whether the user joined the round
func (s *Session) HasParticipant(userID string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	_, ok := s.participants[userID]
	return ok
}

// Participants returns the joined user IDs in join-agnostic order
func (s *Session) Participants() []string {
	s.mu.Lock()
	defer s.mu.Unlock()
	ids := make([]string, 0, len(s.participants))
	for id := range s.participants {
		ids = append(ids, id)
	}
	return ids
}

// ParticipantCount returns how many users joined the round
func (s *Session) ParticipantCount() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.participants)
}

// offerMessage is called by the registry; drops when the inbox is full or
// the session is stopped rather than blocking the dispatch path.
func (s *Session) offerMessage(m models.InboundMessage) {
	select {
	case <-s.ctx.Done():
	case s.inbox <- m:
	default:
	}
}

func (s *Session) offerReaction(r models.InboundReaction) {
	select {
	case <-s.ctx.Done():
	case s.reactions <- r:
	default:
	}
}
