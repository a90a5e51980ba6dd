// Package invite produces time-limited invite artifacts for channel leaves.
package invite

import (
	"context"
	"fmt"
	"time"

	"catalogbot/catalog"
	"catalogbot/core/logger"
	"log/slog"
)

// Invite is the artifact shown to the user when a channel leaf is reached.
// ExpiresAt is advisory metadata: the issuer performs no revocation, real
// expiry is enforced by the chat platform's invite-link primitives.
type Invite struct {
	URL       string
	ExpiresAt time.Time
	// PhotoPath is a local temporary file holding the channel photo, or ""
	// when no photo could be obtained. The consumer owns its removal.
	PhotoPath string
}

// PhotoFetcher obtains a channel photo as a local temporary file.
// A miss is ("", nil); failures are returned for logging but never block
// invite issuance.
type PhotoFetcher interface {
	FetchChannelPhoto(ctx context.Context, link string) (string, error)
}

// Issuer builds invite artifacts from a fixed URL template and validity
// window.
type Issuer struct {
	template string
	ttl      time.Duration
	photos   PhotoFetcher

	now func() time.Time
}

// Option tweaks an Issuer; used by tests to pin the clock.
type Option func(*Issuer)

// WithClock overrides the issuance clock.
func WithClock(now func() time.Time) Option {
	return func(i *Issuer) { i.now = now }
}

// NewIssuer returns an Issuer. photos may be nil, in which case every
// invite is text-only.
func NewIssuer(template string, ttl time.Duration, photos PhotoFetcher, opts ...Option) *Issuer {
	iss := &Issuer{
		template: template,
		ttl:      ttl,
		photos:   photos,
		now:      time.Now,
	}
	for _, opt := range opts {
		opt(iss)
	}
	return iss
}

// TTLSeconds exposes the validity window for captions.
func (i *Issuer) TTLSeconds() int {
	return int(i.ttl / time.Second)
}

// Issue builds the invite artifact for a channel. Photo retrieval is
// best-effort: any fetch failure degrades to a text-only invite.
func (i *Issuer) Issue(ctx context.Context, ch catalog.Channel) (Invite, error) {
	inv := Invite{
		URL:       fmt.Sprintf(i.template, ch.Link),
		ExpiresAt: i.now().Add(i.ttl),
	}

	if i.photos != nil {
		path, err := i.photos.FetchChannelPhoto(ctx, ch.Link)
		if err != nil {
			logger.Warn(ctx, "service.invite", "photo.fail",
				slog.String("status", "skip"),
				slog.String("channel", ch.Link),
				slog.String("err", err.Error()),
			)
		} else {
			inv.PhotoPath = path
		}
	}

	logger.Info(ctx, "service.invite", "invite.issued",
		slog.String("status", "ok"),
		slog.String("channel", ch.Link),
		slog.String("invite_url", inv.URL),
		slog.Time("expires_at", inv.ExpiresAt),
		slog.Bool("photo", inv.PhotoPath != ""),
	)
	return inv, nil
}
