package settings

import "github.com/gamenightlabs/gamenight/internal/models"

// GetSettingsInput contains parameters for reading a guild's settings
type GetSettingsInput struct {
	GuildID string
}

// GetSettingsOutput contains a guild's settings
type GetSettingsOutput struct {
	Settings *models.ServerSettings
}

// UpdateSettingsInput contains parameters for writing a guild's settings
type UpdateSettingsInput struct {
	Settings *models.ServerSettings
}
