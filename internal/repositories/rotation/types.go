package rotation

// GetUsedInput contains parameters for reading a guild's used items
type GetUsedInput struct {
	GuildID string
	Bank    string
}

// GetUsedOutput contains the items already served to the guild
type GetUsedOutput struct {
	Items []string
}

// MarkUsedInput contains parameters for recording a served item
type MarkUsedInput struct {
	GuildID string
	Bank    string
	Item    string
}

// ClearUsedInput contains parameters for resetting a guild's rotation
type ClearUsedInput struct {
	GuildID string
	Bank    string
}
