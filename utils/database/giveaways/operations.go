package giveaways

import (
	"database/sql"
	"errors"
	"fmt"
	"giveaway-bot/model"
	"time"

	"github.com/jmoiron/sqlx"
)

// giveawayRow mirrors one row of the 'giveaways' table.
type giveawayRow struct {
	ID        string `db:"id"`
	GuildID   int64  `db:"guild_id"`
	ChannelID int64  `db:"channel_id"`
	MessageID int64  `db:"message_id"`
	EndsAt    int64  `db:"ends_at"`
}

// decode validates a stored row and rebuilds the typed giveaway.
func (r giveawayRow) decode() (model.Giveaway, error) {
	if r.GuildID <= 0 || r.ChannelID <= 0 || r.MessageID <= 0 || r.EndsAt <= 0 {
		return model.Giveaway{}, fmt.Errorf("malformed giveaway row %q", r.ID)
	}
	if want := model.GiveawayID(r.GuildID, r.ChannelID, r.MessageID); r.ID != want {
		return model.Giveaway{}, fmt.Errorf("giveaway row id %q does not match its key columns", r.ID)
	}
	return model.Giveaway{
		GuildID:   r.GuildID,
		ChannelID: r.ChannelID,
		MessageID: r.MessageID,
		EndsAt:    time.Unix(r.EndsAt, 0).UTC(),
	}, nil
}

// Upsert inserts a giveaway or fully replaces the record sharing its
// identifier, together with its role reward rows.
func Upsert(db *sqlx.DB, g model.Giveaway) error {
	id := g.ID()

	tx, err := db.Beginx()
	if err != nil {
		return fmt.Errorf("failed to begin upsert for giveaway %s: %w", id, err)
	}
	defer tx.Rollback()

	row := giveawayRow{
		ID:        id,
		GuildID:   g.GuildID,
		ChannelID: g.ChannelID,
		MessageID: g.MessageID,
		EndsAt:    g.EndsAt.UTC().Unix(),
	}
	query := `INSERT OR REPLACE INTO giveaways (id, guild_id, channel_id, message_id, ends_at)
	          VALUES (:id, :guild_id, :channel_id, :message_id, :ends_at)`
	if _, err := tx.NamedExec(query, row); err != nil {
		return fmt.Errorf("failed to upsert giveaway %s: %w", id, err)
	}

	// The reward rows are replaced as a set along with their parent.
	if _, err := tx.Exec(`DELETE FROM giveaway_role_rewards WHERE giveaway_id = ?`, id); err != nil {
		return fmt.Errorf("failed to clear role rewards for giveaway %s: %w", id, err)
	}
	for _, reward := range g.RoleRewards {
		if _, err := tx.Exec(`INSERT OR REPLACE INTO giveaway_role_rewards (role_id, giveaway_id) VALUES (?, ?)`,
			reward.RoleID, id); err != nil {
			return fmt.Errorf("failed to upsert role reward %d for giveaway %s: %w", reward.RoleID, id, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit upsert for giveaway %s: %w", id, err)
	}
	return nil
}

// Delete removes a giveaway record and its role reward rows. Deleting a
// giveaway that does not exist is not an error.
func Delete(db *sqlx.DB, guildID, channelID, messageID int64) error {
	id := model.GiveawayID(guildID, channelID, messageID)

	tx, err := db.Beginx()
	if err != nil {
		return fmt.Errorf("failed to begin delete for giveaway %s: %w", id, err)
	}
	defer tx.Rollback()

	if _, err := tx.Exec(`DELETE FROM giveaway_role_rewards WHERE giveaway_id = ?`, id); err != nil {
		return fmt.Errorf("failed to delete role rewards for giveaway %s: %w", id, err)
	}
	if _, err := tx.Exec(`DELETE FROM giveaways WHERE id = ?`, id); err != nil {
		return fmt.Errorf("failed to delete giveaway %s: %w", id, err)
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit delete for giveaway %s: %w", id, err)
	}
	return nil
}

// FindOne returns the giveaway with the given key, or nil when absent.
func FindOne(db *sqlx.DB, guildID, channelID, messageID int64) (*model.Giveaway, error) {
	id := model.GiveawayID(guildID, channelID, messageID)

	var row giveawayRow
	err := db.Get(&row, `SELECT * FROM giveaways WHERE id = ?`, id)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get giveaway %s: %w", id, err)
	}

	g, err := row.decode()
	if err != nil {
		return nil, err
	}
	rewards, err := rewardsFor(db, []string{id})
	if err != nil {
		return nil, err
	}
	g.RoleRewards = rewards[id]
	return &g, nil
}

// FindGiveaways returns the active giveaways matching the filter, each with
// its role rewards attached. Giveaways and reward rows are fetched as two
// result sets and joined in memory.
func FindGiveaways(db *sqlx.DB, f Filter) ([]model.Giveaway, error) {
	clause, args := f.clause()

	var rows []giveawayRow
	if err := db.Select(&rows, `SELECT * FROM giveaways`+clause, args...); err != nil {
		return nil, fmt.Errorf("failed to select giveaways: %w", err)
	}
	if len(rows) == 0 {
		return nil, nil
	}

	result := make([]model.Giveaway, 0, len(rows))
	ids := make([]string, 0, len(rows))
	for _, row := range rows {
		g, err := row.decode()
		if err != nil {
			return nil, err
		}
		result = append(result, g)
		ids = append(ids, g.ID())
	}

	rewards, err := rewardsFor(db, ids)
	if err != nil {
		return nil, err
	}
	for i := range result {
		result[i].RoleRewards = rewards[result[i].ID()]
	}
	return result, nil
}

// rewardsFor loads the reward rows for a set of giveaway identifiers, grouped
// by their parent giveaway.
func rewardsFor(db *sqlx.DB, ids []string) (map[string][]model.RoleReward, error) {
	query, args, err := sqlx.In(`SELECT role_id, giveaway_id FROM giveaway_role_rewards WHERE giveaway_id IN (?)`, ids)
	if err != nil {
		return nil, fmt.Errorf("failed to build role reward query: %w", err)
	}

	var rewards []model.RoleReward
	if err := db.Select(&rewards, query, args...); err != nil {
		return nil, fmt.Errorf("failed to select role rewards: %w", err)
	}

	grouped := make(map[string][]model.RoleReward, len(ids))
	for _, r := range rewards {
		grouped[r.GiveawayID] = append(grouped[r.GiveawayID], r)
	}
	return grouped, nil
}
