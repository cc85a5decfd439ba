package domain

// GuildMember is the slice of a chat-platform member the role grant
// coordinator needs.
type GuildMember struct {
	ID       string
	Username string
	RoleIDs  []string
}

// HasRole reports whether the member already holds the role
func (m *GuildMember) HasRole(roleID string) bool {
	for _, id := range m.RoleIDs {
		if id == roleID {
			return true
		}
	}
	return false
}
