package tasks

import (
	"fmt"
	"giveaway-bot/model"
	"giveaway-bot/utils/database/giveaways"
	"log"
	"math/rand"
	"strconv"
	"strings"
	"time"

	"github.com/bwmarrin/discordgo"
	"github.com/jmoiron/sqlx"
)

// EntryEmoji marks a reaction as a giveaway entry.
const EntryEmoji = "\U0001F389" // 🎉

// Messenger is the slice of the Discord session the giveaway lifecycle needs.
type Messenger interface {
	ResolveChannel(channelID string) *discordgo.Channel
	FetchMessage(channelID, messageID string) (*discordgo.Message, error)
	ReactionUsers(channelID, messageID, emoji string) ([]*discordgo.User, error)
	SendMessage(channelID, content string, reference *discordgo.MessageReference) (*discordgo.Message, error)
	GrantRole(guildID, userID, roleID string) error
}

// CheckGiveaways concludes every stored giveaway whose deadline has passed.
// Giveaways that are not yet due are left for a later sweep.
func CheckGiveaways(m Messenger, db *sqlx.DB, now time.Time) error {
	active, err := giveaways.FindGiveaways(db, giveaways.All())
	if err != nil {
		return fmt.Errorf("failed to load active giveaways: %w", err)
	}

	for _, g := range active {
		if g.EndsAt.After(now) {
			continue
		}
		if err := EndGiveaway(m, db, g); err != nil {
			// The record is still stored, so the next sweep retries it.
			log.Printf("Failed to end giveaway %s: %v", g.ID(), err)
		}
	}
	return nil
}

// EndGiveaway concludes a giveaway: the store record is removed first, then a
// winner is drawn from the entry reactions and announced. A channel or message
// that has gone missing ends the giveaway silently.
func EndGiveaway(m Messenger, db *sqlx.DB, g model.Giveaway) error {
	return endGiveaway(m, db, g, rand.Intn)
}

func endGiveaway(m Messenger, db *sqlx.DB, g model.Giveaway, pick func(n int) int) error {
	// Deleting the record is the commit point; a crash past this line must
	// not re-run the giveaway on the next sweep.
	if err := giveaways.Delete(db, g.GuildID, g.ChannelID, g.MessageID); err != nil {
		return fmt.Errorf("failed to delete giveaway %s: %w", g.ID(), err)
	}

	channelID := strconv.FormatInt(g.ChannelID, 10)
	messageID := strconv.FormatInt(g.MessageID, 10)

	if channel := m.ResolveChannel(channelID); channel == nil {
		return nil
	}
	msg, err := m.FetchMessage(channelID, messageID)
	if err != nil {
		return nil
	}

	var entries *discordgo.MessageReactions
	for _, r := range msg.Reactions {
		if r.Emoji != nil && r.Emoji.Name == EntryEmoji {
			entries = r
			break
		}
	}
	if entries == nil {
		return nil
	}

	users, err := m.ReactionUsers(channelID, messageID, EntryEmoji)
	if err != nil {
		return nil
	}
	participants := make([]*discordgo.User, 0, len(users))
	for _, u := range users {
		if u.Bot {
			continue
		}
		participants = append(participants, u)
	}

	ref := msg.Reference()
	if len(participants) == 0 {
		if _, err := m.SendMessage(channelID, "The giveaway has ended with 0 participants, so there is no winner this time.", ref); err != nil {
			log.Printf("Failed to announce empty giveaway %s: %v", g.ID(), err)
		}
		return nil
	}

	winner := participants[pick(len(participants))]
	guildID := strconv.FormatInt(g.GuildID, 10)
	for _, reward := range g.RoleRewards {
		roleID := strconv.FormatInt(reward.RoleID, 10)
		if err := m.GrantRole(guildID, winner.ID, roleID); err != nil {
			log.Printf("Failed to grant role %s to giveaway winner %s: %v", roleID, winner.ID, err)
		}
	}

	if _, err := m.SendMessage(channelID, announcement(winner, g.RoleRewards, len(participants)), ref); err != nil {
		log.Printf("Failed to announce winner of giveaway %s: %v", g.ID(), err)
	}
	return nil
}

func announcement(winner *discordgo.User, rewards []model.RoleReward, participants int) string {
	if len(rewards) == 0 {
		return fmt.Sprintf("%s Congratulations <@%s>, you won the giveaway! (%d participants)",
			EntryEmoji, winner.ID, participants)
	}

	mentions := make([]string, 0, len(rewards))
	for _, r := range rewards {
		mentions = append(mentions, fmt.Sprintf("<@&%d>", r.RoleID))
	}
	return fmt.Sprintf("%s Congratulations <@%s>, you won %s! (%d participants)",
		EntryEmoji, winner.ID, strings.Join(mentions, ", "), participants)
}
