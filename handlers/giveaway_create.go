package handlers

import (
	"fmt"
	"giveaway-bot/bot"
	"giveaway-bot/model"
	"giveaway-bot/tasks"
	"giveaway-bot/utils"
	"giveaway-bot/utils/database/giveaways"
	"log"
	"strconv"
	"time"

	"github.com/bwmarrin/discordgo"
)

// HandleGiveawayCreate posts the giveaway message, seeds the entry reaction
// and persists the record so the sweep can draw it later.
func HandleGiveawayCreate(s *discordgo.Session, i *discordgo.InteractionCreate, b *bot.Bot) {
	var durationStr, roleID string
	channelID := i.ChannelID

	for _, opt := range i.ApplicationCommandData().Options {
		switch opt.Name {
		case "duration":
			durationStr = opt.StringValue()
		case "channel":
			channelID = opt.ChannelValue(nil).ID
		case "role":
			roleID = opt.RoleValue(nil, i.GuildID).ID
		}
	}

	duration, err := utils.ParseDuration(durationStr)
	if err != nil {
		utils.SendErrorResponse(s, i, fmt.Sprintf("Invalid duration %q: %v", durationStr, err))
		return
	}
	endsAt := time.Now().UTC().Add(duration).Truncate(time.Second)

	content := fmt.Sprintf("%s **GIVEAWAY** %s\nReact with %s to enter! Ends %s.",
		tasks.EntryEmoji, tasks.EntryEmoji, tasks.EntryEmoji, utils.RelativeTimestamp(endsAt))
	msg, err := s.ChannelMessageSend(channelID, content)
	if err != nil {
		log.Printf("Failed to post giveaway message in channel %s: %v", channelID, err)
		utils.SendErrorResponse(s, i, "Could not post the giveaway message in that channel.")
		return
	}
	if err := s.MessageReactionAdd(channelID, msg.ID, tasks.EntryEmoji); err != nil {
		log.Printf("Failed to seed entry reaction on giveaway %s: %v", msg.ID, err)
	}

	g, err := buildGiveaway(i.GuildID, channelID, msg.ID, endsAt, roleID)
	if err != nil {
		log.Printf("Failed to build giveaway record for message %s: %v", msg.ID, err)
		utils.SendErrorResponse(s, i, "Failed to record the giveaway.")
		return
	}
	if err := giveaways.Upsert(b.DB, g); err != nil {
		log.Printf("Failed to persist giveaway %s: %v", g.ID(), err)
		utils.SendErrorResponse(s, i, "Failed to save the giveaway, so it will not be drawn.")
		return
	}

	utils.SendSimpleResponse(s, i, fmt.Sprintf("Giveaway created: %s (ends %s)", g.MessageURL(), utils.RelativeTimestamp(endsAt)))
}

func buildGiveaway(guildID, channelID, messageID string, endsAt time.Time, roleID string) (model.Giveaway, error) {
	gid, err := strconv.ParseInt(guildID, 10, 64)
	if err != nil {
		return model.Giveaway{}, fmt.Errorf("invalid guild id %q: %w", guildID, err)
	}
	cid, err := strconv.ParseInt(channelID, 10, 64)
	if err != nil {
		return model.Giveaway{}, fmt.Errorf("invalid channel id %q: %w", channelID, err)
	}
	mid, err := strconv.ParseInt(messageID, 10, 64)
	if err != nil {
		return model.Giveaway{}, fmt.Errorf("invalid message id %q: %w", messageID, err)
	}

	g := model.Giveaway{
		GuildID:   gid,
		ChannelID: cid,
		MessageID: mid,
		EndsAt:    endsAt,
	}
	if roleID != "" {
		rid, err := strconv.ParseInt(roleID, 10, 64)
		if err != nil {
			return model.Giveaway{}, fmt.Errorf("invalid role id %q: %w", roleID, err)
		}
		g.RoleRewards = []model.RoleReward{{RoleID: rid, GiveawayID: g.ID()}}
	}
	return g, nil
}
