package giveaways

import "errors"

// ErrMultipleFilters is returned when a lookup supplies more than one of
// guild, channel, or message.
var ErrMultipleFilters = errors.New("at most one of guild, channel, or message may be provided")

type filterKind int

const (
	filterNone filterKind = iota
	filterGuild
	filterChannel
	filterMessage
)

// Filter narrows a giveaway lookup to at most one dimension.
type Filter struct {
	kind filterKind
	id   int64
}

// All matches every stored giveaway.
func All() Filter { return Filter{} }

// ByGuild matches giveaways hosted in the given guild.
func ByGuild(guildID int64) Filter { return Filter{kind: filterGuild, id: guildID} }

// ByChannel matches giveaways hosted in the given channel.
func ByChannel(channelID int64) Filter { return Filter{kind: filterChannel, id: channelID} }

// ByMessage matches the giveaway attached to the given message.
func ByMessage(messageID int64) Filter { return Filter{kind: filterMessage, id: messageID} }

// NewFilter builds a filter from optional dimensions, where zero means absent.
// Supplying more than one dimension fails with ErrMultipleFilters before any
// storage access.
func NewFilter(guildID, channelID, messageID int64) (Filter, error) {
	supplied := 0
	for _, id := range []int64{guildID, channelID, messageID} {
		if id != 0 {
			supplied++
		}
	}
	if supplied > 1 {
		return Filter{}, ErrMultipleFilters
	}

	switch {
	case guildID != 0:
		return ByGuild(guildID), nil
	case channelID != 0:
		return ByChannel(channelID), nil
	case messageID != 0:
		return ByMessage(messageID), nil
	}
	return All(), nil
}

func (f Filter) clause() (string, []interface{}) {
	switch f.kind {
	case filterGuild:
		return " WHERE guild_id = ?", []interface{}{f.id}
	case filterChannel:
		return " WHERE channel_id = ?", []interface{}{f.id}
	case filterMessage:
		return " WHERE message_id = ?", []interface{}{f.id}
	}
	return "", nil
}
