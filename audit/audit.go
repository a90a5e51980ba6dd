// Package audit keeps a trail of access denials and issued invites.
// Recording is fire-and-forget: a broken trail must never break the bot,
// so failures are logged and swallowed.
package audit

import (
	"context"
	"time"
)

// Surfaces a denial can happen on.
const (
	SurfaceStart = "start"
	SurfacePress = "press"
)

// InviteRecord is one issued invite.
type InviteRecord struct {
	UserID      int64     `db:"user_id"`
	Category    string    `db:"category"`
	Subcategory string    `db:"subcategory"`
	ChannelLink string    `db:"channel_link"`
	URL         string    `db:"invite_url"`
	ExpiresAt   time.Time `db:"expires_at"`
}

// Recorder receives audit events.
type Recorder interface {
	RecordDenial(ctx context.Context, userID int64, surface string)
	RecordInvite(ctx context.Context, rec InviteRecord)
}

// Nop discards every event. Used when the database is disabled.
type Nop struct{}

func (Nop) RecordDenial(context.Context, int64, string) {}
func (Nop) RecordInvite(context.Context, InviteRecord)  {}
