package display

// GetLastMessageInput contains parameters for reading a channel's tracked message
type GetLastMessageInput struct {
	ChannelID string
}

// GetLastMessageOutput contains the tracked message ID
type GetLastMessageOutput struct {
	MessageID string
}

// SetLastMessageInput contains parameters for tracking a channel's message
type SetLastMessageInput struct {
	ChannelID string
	MessageID string
}
