package utils

import "github.com/bwmarrin/discordgo"

// contains checks if a slice of strings contains an element.
func contains(slice []string, item string) bool {
	for _, a := range slice {
		if a == item {
			return true
		}
	}
	return false
}

// HasAdminRole reports whether the member holds one of the configured admin roles.
func HasAdminRole(member *discordgo.Member, adminRoleIDs []string) bool {
	if member == nil {
		return false
	}
	for _, roleID := range member.Roles {
		if contains(adminRoleIDs, roleID) {
			return true
		}
	}
	return false
}
