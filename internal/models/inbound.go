package models

// InboundMessage is a platform message routed into an active session's inbox
type InboundMessage struct {
	// ID is the platform message ID
	ID string

	// GuildID is the guild the message was sent in
	GuildID string

	// ChannelID is the channel the message was sent in
	ChannelID string

	// AuthorID is the sender's user ID
	AuthorID string

	// AuthorName is the sender's display name
	AuthorName string

	// Content is the raw message text
	Content string

	// FromBot is true when the author is a bot account
	FromBot bool
}

// InboundReaction is a platform reaction routed to an active session
type InboundReaction struct {
	// MessageID is the message the reaction was added to
	MessageID string

	// GuildID is the guild the reaction happened in
	GuildID string

	// ChannelID is the channel the reaction happened in
	ChannelID string

	// UserID is the reacting user's ID
	UserID string

	// Emoji is the reaction emoji
	Emoji string

	// FromBot is true when the reacting user is a bot account
	FromBot bool
}
