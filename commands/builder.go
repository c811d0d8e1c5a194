package commands

import (
	"github.com/bwmarrin/discordgo"
)

// GenerateCommands returns the application command set for the bot.
func GenerateCommands() []*discordgo.ApplicationCommand {
	return []*discordgo.ApplicationCommand{
		{
			Name:        "giveaway-create",
			Description: "Create a new timed giveaway.",
			Options: []*discordgo.ApplicationCommandOption{
				{
					Type:        discordgo.ApplicationCommandOptionString,
					Name:        "duration",
					Description: "How long the giveaway runs, e.g. 30m, 12h, 3d, 1w.",
					Required:    true,
				},
				{
					Type:        discordgo.ApplicationCommandOptionChannel,
					Name:        "channel",
					Description: "Channel to host the giveaway in. Defaults to the current channel.",
					Required:    false,
					ChannelTypes: []discordgo.ChannelType{
						discordgo.ChannelTypeGuildText,
						discordgo.ChannelTypeGuildNews,
					},
				},
				{
					Type:        discordgo.ApplicationCommandOptionRole,
					Name:        "role",
					Description: "Role granted to the winner.",
					Required:    false,
				},
			},
		},
		{
			Name:        "giveaway-list",
			Description: "List the active giveaways in this server.",
			Options: []*discordgo.ApplicationCommandOption{
				{
					Type:        discordgo.ApplicationCommandOptionChannel,
					Name:        "channel",
					Description: "Only show giveaways hosted in this channel.",
					Required:    false,
				},
			},
		},
		{
			Name:        "system-info",
			Description: "Show bot host and giveaway statistics.",
		},
	}
}
