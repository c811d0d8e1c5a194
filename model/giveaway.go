package model

import (
	"fmt"
	"time"
)

// Giveaway represents a single timed giveaway tied to one message in one
// channel of one guild. The database table is named 'giveaways'.
type Giveaway struct {
	GuildID     int64
	ChannelID   int64
	MessageID   int64
	EndsAt      time.Time // UTC deadline, set once at creation
	RoleRewards []RoleReward
}

// RoleReward is a role granted to a giveaway's winner. The database table is
// named 'giveaway_role_rewards'.
type RoleReward struct {
	RoleID     int64  `db:"role_id"`
	GiveawayID string `db:"giveaway_id"`
}

// GiveawayID derives the canonical identifier for the given key. The derived
// string is the primary key of the 'giveaways' table.
func GiveawayID(guildID, channelID, messageID int64) string {
	return fmt.Sprintf("%d/%d/%d", guildID, channelID, messageID)
}

// ID returns the giveaway's derived identifier.
func (g *Giveaway) ID() string {
	return GiveawayID(g.GuildID, g.ChannelID, g.MessageID)
}

// MessageURL returns the jump URL of the giveaway message.
func (g *Giveaway) MessageURL() string {
	return fmt.Sprintf("https://discordapp.com/channels/%d/%d/%d", g.GuildID, g.ChannelID, g.MessageID)
}
