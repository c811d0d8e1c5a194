package giveaways

import (
	"giveaway-bot/model"
	"testing"
	"time"

	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestDB(t *testing.T) *sqlx.DB {
	t.Helper()
	db, err := Init(":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })
	return db
}

func testGiveaway(guildID, channelID, messageID int64, rewards ...int64) model.Giveaway {
	g := model.Giveaway{
		GuildID:   guildID,
		ChannelID: channelID,
		MessageID: messageID,
		EndsAt:    time.Date(2026, 8, 30, 12, 0, 0, 0, time.UTC),
	}
	for _, roleID := range rewards {
		g.RoleRewards = append(g.RoleRewards, model.RoleReward{RoleID: roleID, GiveawayID: g.ID()})
	}
	return g
}

func TestUpsertRoundTrip(t *testing.T) {
	db := newTestDB(t)

	g := testGiveaway(1, 2, 3, 77)
	require.NoError(t, Upsert(db, g))

	got, err := FindOne(db, 1, 2, 3)
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, g.GuildID, got.GuildID)
	assert.Equal(t, g.ChannelID, got.ChannelID)
	assert.Equal(t, g.MessageID, got.MessageID)
	assert.True(t, g.EndsAt.Equal(got.EndsAt))
	require.Len(t, got.RoleRewards, 1)
	assert.Equal(t, int64(77), got.RoleRewards[0].RoleID)
	assert.Equal(t, g.ID(), got.RoleRewards[0].GiveawayID)
}

func TestUpsertIdempotence(t *testing.T) {
	db := newTestDB(t)

	first := testGiveaway(1, 2, 3, 77)
	require.NoError(t, Upsert(db, first))

	second := first
	second.EndsAt = first.EndsAt.Add(2 * time.Hour)
	second.RoleRewards = []model.RoleReward{{RoleID: 88, GiveawayID: second.ID()}}
	require.NoError(t, Upsert(db, second))

	all, err := FindGiveaways(db, All())
	require.NoError(t, err)
	require.Len(t, all, 1)
	assert.True(t, second.EndsAt.Equal(all[0].EndsAt))
	require.Len(t, all[0].RoleRewards, 1)
	assert.Equal(t, int64(88), all[0].RoleRewards[0].RoleID)
}

func TestDeleteIsIdempotent(t *testing.T) {
	db := newTestDB(t)

	require.NoError(t, Delete(db, 1, 2, 3))

	require.NoError(t, Upsert(db, testGiveaway(1, 2, 3, 77)))
	require.NoError(t, Delete(db, 1, 2, 3))

	got, err := FindOne(db, 1, 2, 3)
	require.NoError(t, err)
	assert.Nil(t, got)

	var rewardCount int
	require.NoError(t, db.Get(&rewardCount, `SELECT COUNT(*) FROM giveaway_role_rewards`))
	assert.Zero(t, rewardCount)

	require.NoError(t, Delete(db, 1, 2, 3))
}

func TestFindOneAbsent(t *testing.T) {
	db := newTestDB(t)

	got, err := FindOne(db, 9, 9, 9)
	require.NoError(t, err)
	assert.Nil(t, got)
}

func TestNewFilterExclusivity(t *testing.T) {
	cases := [][3]int64{
		{1, 2, 0},
		{1, 0, 3},
		{0, 2, 3},
		{1, 2, 3},
	}
	for _, c := range cases {
		_, err := NewFilter(c[0], c[1], c[2])
		assert.ErrorIs(t, err, ErrMultipleFilters)
	}

	for _, c := range [][3]int64{{1, 0, 0}, {0, 2, 0}, {0, 0, 3}, {0, 0, 0}} {
		_, err := NewFilter(c[0], c[1], c[2])
		assert.NoError(t, err)
	}
}

func TestFilterDimensions(t *testing.T) {
	db := newTestDB(t)

	require.NoError(t, Upsert(db, testGiveaway(1, 10, 100)))
	require.NoError(t, Upsert(db, testGiveaway(1, 11, 101)))
	require.NoError(t, Upsert(db, testGiveaway(2, 20, 200)))

	byGuild, err := FindGiveaways(db, ByGuild(1))
	require.NoError(t, err)
	assert.Len(t, byGuild, 2)

	byChannel, err := FindGiveaways(db, ByChannel(20))
	require.NoError(t, err)
	require.Len(t, byChannel, 1)
	assert.Equal(t, int64(2), byChannel[0].GuildID)

	byMessage, err := FindGiveaways(db, ByMessage(101))
	require.NoError(t, err)
	require.Len(t, byMessage, 1)
	assert.Equal(t, int64(11), byMessage[0].ChannelID)

	all, err := FindGiveaways(db, All())
	require.NoError(t, err)
	assert.Len(t, all, 3)
}

func TestRewardJoinAttribution(t *testing.T) {
	db := newTestDB(t)

	none := testGiveaway(1, 10, 100)
	one := testGiveaway(1, 11, 101, 7)
	three := testGiveaway(1, 12, 102, 8, 9, 10)
	require.NoError(t, Upsert(db, none))
	require.NoError(t, Upsert(db, one))
	require.NoError(t, Upsert(db, three))

	list, err := FindGiveaways(db, ByGuild(1))
	require.NoError(t, err)
	require.Len(t, list, 3)

	byID := make(map[string]model.Giveaway, len(list))
	for _, g := range list {
		byID[g.ID()] = g
	}

	assert.Empty(t, byID[none.ID()].RoleRewards)
	require.Len(t, byID[one.ID()].RoleRewards, 1)
	assert.Equal(t, int64(7), byID[one.ID()].RoleRewards[0].RoleID)

	roles := make([]int64, 0, 3)
	for _, r := range byID[three.ID()].RoleRewards {
		assert.Equal(t, three.ID(), r.GiveawayID)
		roles = append(roles, r.RoleID)
	}
	assert.ElementsMatch(t, []int64{8, 9, 10}, roles)
}

func TestMalformedRowRejected(t *testing.T) {
	db := newTestDB(t)

	_, err := db.Exec(`INSERT INTO giveaways (id, guild_id, channel_id, message_id, ends_at) VALUES ('1/2/3', 1, 2, 3, 0)`)
	require.NoError(t, err)

	_, err = FindGiveaways(db, All())
	assert.Error(t, err)

	_, err = FindOne(db, 1, 2, 3)
	assert.Error(t, err)
}

func TestMismatchedIdentifierRejected(t *testing.T) {
	db := newTestDB(t)

	_, err := db.Exec(`INSERT INTO giveaways (id, guild_id, channel_id, message_id, ends_at) VALUES ('9/9/9', 1, 2, 3, 100)`)
	require.NoError(t, err)

	_, err = FindGiveaways(db, All())
	assert.Error(t, err)
}
