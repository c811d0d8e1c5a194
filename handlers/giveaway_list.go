package handlers

import (
	"fmt"
	"giveaway-bot/bot"
	"giveaway-bot/utils"
	"giveaway-bot/utils/database/giveaways"
	"log"
	"strconv"
	"strings"
	"time"

	"github.com/bwmarrin/discordgo"
)

// HandleGiveawayList shows the guild's active giveaways, optionally narrowed
// to a single channel.
func HandleGiveawayList(s *discordgo.Session, i *discordgo.InteractionCreate, b *bot.Bot) {
	guildID, err := strconv.ParseInt(i.GuildID, 10, 64)
	if err != nil {
		utils.SendErrorResponse(s, i, "This command can only be used inside a server.")
		return
	}

	filter := giveaways.ByGuild(guildID)
	for _, opt := range i.ApplicationCommandData().Options {
		if opt.Name == "channel" {
			channelID, err := strconv.ParseInt(opt.ChannelValue(nil).ID, 10, 64)
			if err != nil {
				utils.SendErrorResponse(s, i, "Invalid channel.")
				return
			}
			filter = giveaways.ByChannel(channelID)
		}
	}

	list, err := giveaways.FindGiveaways(b.DB, filter)
	if err != nil {
		log.Printf("Failed to list giveaways for guild %s: %v", i.GuildID, err)
		utils.SendErrorResponse(s, i, "Failed to load the giveaways.")
		return
	}
	if len(list) == 0 {
		utils.SendSimpleResponse(s, i, "There are no active giveaways here.")
		return
	}

	var builder strings.Builder
	for _, g := range list {
		builder.WriteString(fmt.Sprintf("- %s ends %s", g.MessageURL(), utils.RelativeTimestamp(g.EndsAt)))
		if len(g.RoleRewards) > 0 {
			mentions := make([]string, 0, len(g.RoleRewards))
			for _, r := range g.RoleRewards {
				mentions = append(mentions, fmt.Sprintf("<@&%d>", r.RoleID))
			}
			builder.WriteString(" | reward: " + strings.Join(mentions, ", "))
		}
		builder.WriteString("\n")
	}

	embed := &discordgo.MessageEmbed{
		Title:       "Active Giveaways",
		Description: builder.String(),
		Color:       0x5865F2, // Discord Blurple
		Timestamp:   time.Now().Format(time.RFC3339),
	}
	utils.SendEmbedResponse(s, i, embed)
}
