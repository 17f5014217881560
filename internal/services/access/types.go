package access

// AuthorizeInput contains parameters for an authorization check
type AuthorizeInput struct {
	GuildID string
	// RoleNames are the names of the roles the member holds
	RoleNames []string
}

// ConfigureInput contains parameters for replacing a guild's role list
type ConfigureInput struct {
	GuildID string
	// AllowedRoles are the role names permitted to run game commands
	AllowedRoles []string
}

// AllowedRolesInput contains parameters for reading a guild's role list
type AllowedRolesInput struct {
	GuildID string
}

// AllowedRolesOutput contains a guild's configured role list
type AllowedRolesOutput struct {
	AllowedRoles []string
}
