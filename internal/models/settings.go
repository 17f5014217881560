package models

// ServerSettings holds the per-guild configuration written by the setup
// command. A guild without a settings row is in a distinct "not configured"
// state, which is not the same as a configured guild with no allowed roles.
type ServerSettings struct {
	// GuildID is the guild these settings belong to
	GuildID string

	// AllowedRoles are the role names permitted to host games
	AllowedRoles []string
}

// Allows reports whether any of the given role names is on the allow list
func (s *ServerSettings) Allows(roleNames []string) bool {
	for _, have := range roleNames {
		for _, want := range s.AllowedRoles {
			if have == want {
				return true
			}
		}
	}
	return false
}
