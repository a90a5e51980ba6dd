package audit

import (
	"context"
	"time"

	"github.com/jmoiron/sqlx"

	"catalogbot/core/logger"
	"log/slog"
)

// Store persists audit events in Postgres.
type Store struct {
	db      *sqlx.DB
	timeout time.Duration
}

// NewStore wraps an open database handle.
func NewStore(db *sqlx.DB) *Store {
	return &Store{db: db, timeout: 3 * time.Second}
}

const (
	insertDenial = `INSERT INTO access_denials (user_id, surface) VALUES ($1, $2)`
	insertInvite = `INSERT INTO invite_log
		(user_id, category, subcategory, channel_link, invite_url, expires_at)
		VALUES (:user_id, :category, :subcategory, :channel_link, :invite_url, :expires_at)`
)

// RecordDenial stores one denied interaction.
func (s *Store) RecordDenial(ctx context.Context, userID int64, surface string) {
	ctx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	if _, err := s.db.ExecContext(ctx, insertDenial, userID, surface); err != nil {
		logger.Warn(ctx, "service.audit", "denial.write.fail",
			slog.String("status", "fail"),
			slog.Int64("user_id", userID),
			slog.String("err", err.Error()),
		)
	}
}

// RecordInvite stores one issued invite.
func (s *Store) RecordInvite(ctx context.Context, rec InviteRecord) {
	ctx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	if _, err := s.db.NamedExecContext(ctx, insertInvite, rec); err != nil {
		logger.Warn(ctx, "service.audit", "invite.write.fail",
			slog.String("status", "fail"),
			slog.Int64("user_id", rec.UserID),
			slog.String("channel", rec.ChannelLink),
			slog.String("err", err.Error()),
		)
	}
}

// Stats are aggregate counters for the admin command.
type Stats struct {
	Denials   int64 `db:"denials"`
	Invites   int64 `db:"invites"`
	LastDay   int64 `db:"last_day"`
	TopUserID int64 `db:"top_user_id"`
}

// Stats aggregates the trail. Unlike the recorders it returns errors, since
// the admin command wants to show them.
func (s *Store) Stats(ctx context.Context) (Stats, error) {
	ctx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	var out Stats
	const q = `SELECT
		(SELECT count(*) FROM access_denials)                                        AS denials,
		(SELECT count(*) FROM invite_log)                                            AS invites,
		(SELECT count(*) FROM invite_log WHERE created_at > now() - interval '1 day') AS last_day,
		(SELECT coalesce((SELECT user_id FROM invite_log
			GROUP BY user_id ORDER BY count(*) DESC LIMIT 1), 0))                    AS top_user_id`
	if err := s.db.GetContext(ctx, &out, q); err != nil {
		return Stats{}, err
	}
	return out, nil
}
