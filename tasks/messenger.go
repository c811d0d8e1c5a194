package tasks

import "github.com/bwmarrin/discordgo"

// SessionMessenger adapts a live Discord session to the Messenger interface.
type SessionMessenger struct {
	Session *discordgo.Session
}

func (m SessionMessenger) ResolveChannel(channelID string) *discordgo.Channel {
	channel, err := m.Session.Channel(channelID)
	if err != nil {
		return nil
	}
	return channel
}

func (m SessionMessenger) FetchMessage(channelID, messageID string) (*discordgo.Message, error) {
	return m.Session.ChannelMessage(channelID, messageID)
}

// ReactionUsers enumerates every user who added the given reaction, following
// the API's 100-user pages.
func (m SessionMessenger) ReactionUsers(channelID, messageID, emoji string) ([]*discordgo.User, error) {
	var users []*discordgo.User
	after := ""
	for {
		page, err := m.Session.MessageReactions(channelID, messageID, emoji, 100, "", after)
		if err != nil {
			return nil, err
		}
		users = append(users, page...)
		if len(page) < 100 {
			return users, nil
		}
		after = page[len(page)-1].ID
	}
}

func (m SessionMessenger) SendMessage(channelID, content string, reference *discordgo.MessageReference) (*discordgo.Message, error) {
	if reference != nil {
		return m.Session.ChannelMessageSendReply(channelID, content, reference)
	}
	return m.Session.ChannelMessageSend(channelID, content)
}

func (m SessionMessenger) GrantRole(guildID, userID, roleID string) error {
	return m.Session.GuildMemberRoleAdd(guildID, userID, roleID)
}
