// Package access answers whether a user may use the bot, based on
// membership in the configured control channel.
package access

import (
	"context"
	"time"

	"catalogbot/core/logger"
	"log/slog"

	tele "gopkg.in/telebot.v4"
)

// Gate reports whether a user is allowed to interact with the bot.
type Gate interface {
	IsMember(ctx context.Context, userID int64) bool
}

// MembershipClient is the slice of *tele.Bot needed for membership lookups.
type MembershipClient interface {
	ChatMemberOf(chat, user tele.Recipient) (*tele.ChatMember, error)
}

// ChannelGate gates on membership in a single control channel. Any lookup
// failure denies access: the gate fails closed.
type ChannelGate struct {
	client  MembershipClient
	chatID  int64
	timeout time.Duration
}

// NewChannelGate builds a gate for the given control channel.
func NewChannelGate(client MembershipClient, chatID int64, timeout time.Duration) *ChannelGate {
	if timeout <= 0 {
		timeout = 5 * time.Second
	}
	return &ChannelGate{client: client, chatID: chatID, timeout: timeout}
}

// IsMember reports whether the user currently belongs to the control
// channel. Users who left or were banned are outsiders; so is anyone whose
// status cannot be determined within the timeout.
func (g *ChannelGate) IsMember(ctx context.Context, userID int64) bool {
	if g == nil || g.client == nil {
		return false
	}

	type result struct {
		member *tele.ChatMember
		err    error
	}
	done := make(chan result, 1)
	go func() {
		m, err := g.client.ChatMemberOf(tele.ChatID(g.chatID), &tele.User{ID: userID})
		done <- result{member: m, err: err}
	}()

	timer := time.NewTimer(g.timeout)
	defer timer.Stop()

	var r result
	select {
	case <-ctx.Done():
		logger.Warn(ctx, "service.access", "member.check.cancelled",
			slog.String("status", "denied"),
			slog.Int64("user_id", userID),
			slog.String("err", ctx.Err().Error()),
		)
		return false
	case <-timer.C:
		logger.Warn(ctx, "service.access", "member.check.timeout",
			slog.String("status", "denied"),
			slog.Int64("user_id", userID),
		)
		return false
	case r = <-done:
	}

	if r.err != nil {
		logger.Warn(ctx, "service.access", "member.check.fail",
			slog.String("status", "denied"),
			slog.Int64("user_id", userID),
			slog.String("err", r.err.Error()),
		)
		return false
	}
	if r.member == nil {
		return false
	}

	switch r.member.Role {
	case tele.Left, tele.Kicked:
		return false
	default:
		return true
	}
}
