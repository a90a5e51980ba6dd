package nav

import (
	"context"
	"fmt"

	"catalogbot/audit"
	"catalogbot/catalog"
	"catalogbot/core/logger"
	"catalogbot/invite"
	"log/slog"
)

// Gate reports whether a user is allowed to browse the catalog.
type Gate interface {
	IsMember(ctx context.Context, userID int64) bool
}

// Issuer produces an invite artifact for a channel leaf.
type Issuer interface {
	TTLSeconds() int
	Issue(ctx context.Context, ch catalog.Channel) (invite.Invite, error)
}

// RespKind tells the transport layer how to deliver a Response.
type RespKind int

const (
	// RespReply sends a plain text message; the current screen is untouched.
	RespReply RespKind = iota
	// RespAlert answers the pressed callback with a popup alert; the current
	// screen is untouched.
	RespAlert
	// RespScreen replaces the current screen in place.
	RespScreen
	// RespInvite shows the invite screen, with the channel photo when one
	// came with the invite.
	RespInvite
)

// Response is the controller's verdict on one interaction.
type Response struct {
	Kind   RespKind
	Text   string
	Screen *Screen
	Invite *invite.Invite
}

func reply(text string) Response { return Response{Kind: RespReply, Text: text} }
func alert(text string) Response { return Response{Kind: RespAlert, Text: text} }
func screen(s *Screen) Response  { return Response{Kind: RespScreen, Screen: s} }

// Controller decides what each interaction shows. It holds no per-user
// state: every decision is a function of the incoming token, the catalog
// and the gate verdict, so restarts and concurrent users need no care.
type Controller struct {
	catalog *catalog.Store
	gate    Gate
	issuer  Issuer
	trail   audit.Recorder
}

// NewController wires the catalog, access gate and invite issuer together.
// trail may be nil; events are then discarded.
func NewController(store *catalog.Store, gate Gate, issuer Issuer, trail audit.Recorder) *Controller {
	if trail == nil {
		trail = audit.Nop{}
	}
	return &Controller{catalog: store, gate: gate, issuer: issuer, trail: trail}
}

// Start handles the entry command. Outsiders get the denial message and no
// menu; members get the category list, or a notice when the catalog is
// empty.
func (c *Controller) Start(ctx context.Context, userID int64) Response {
	if !c.gate.IsMember(ctx, userID) {
		logger.Info(ctx, "service.access", "start.denied",
			slog.String("status", "denied"),
			slog.Int64("user_id", userID),
		)
		c.trail.RecordDenial(ctx, userID, audit.SurfaceStart)
		return reply(TextDeniedStart)
	}
	if c.catalog.Empty() {
		return reply(TextEmptyCatalog)
	}
	return screen(RenderRoot(c.catalog))
}

// Press handles a button press. Membership is re-checked on every press, so
// a user who left the control channel loses access mid-session even though
// the old menu is still on screen.
func (c *Controller) Press(ctx context.Context, userID int64, token string) Response {
	if !c.gate.IsMember(ctx, userID) {
		logger.Info(ctx, "service.access", "press.denied",
			slog.String("status", "denied"),
			slog.Int64("user_id", userID),
		)
		c.trail.RecordDenial(ctx, userID, audit.SurfacePress)
		return alert(TextDeniedPress)
	}

	state, err := Decode(token)
	if err != nil {
		logger.Warn(ctx, "service.catalog", "token.malformed",
			slog.String("status", "skip"),
			slog.Int64("user_id", userID),
			slog.String("path", logger.Sanitize(token)),
			slog.String("err", err.Error()),
		)
		return alert(TextUnknownState)
	}

	switch state.Kind {
	case KindCategory:
		s, err := RenderCategory(c.catalog, state.Category)
		if err != nil {
			return alert(fmt.Sprintf(TextNoSubcats, state.Category))
		}
		return screen(s)

	case KindSubcategory:
		s, err := RenderSubcategory(c.catalog, state.Category, state.Subcategory)
		if err != nil {
			return alert(fmt.Sprintf(TextNoChannels, state.Subcategory))
		}
		return screen(s)

	case KindChannel:
		return c.issueInvite(ctx, userID, state)

	default:
		if c.catalog.Empty() {
			return alert(TextEmptyCatalog)
		}
		return screen(RenderRoot(c.catalog))
	}
}

func (c *Controller) issueInvite(ctx context.Context, userID int64, state State) Response {
	ch, err := c.catalog.FindChannel(state.Category, state.Subcategory, state.ChannelLink)
	if err != nil {
		return alert(TextUnknownState)
	}

	inv, err := c.issuer.Issue(ctx, ch)
	if err != nil {
		logger.Error(ctx, "service.invite", "invite.fail",
			slog.String("status", "fail"),
			slog.Int64("user_id", userID),
			slog.String("channel", ch.Link),
			slog.String("err", err.Error()),
		)
		return alert(TextInviteFailed)
	}

	c.trail.RecordInvite(ctx, audit.InviteRecord{
		UserID:      userID,
		Category:    state.Category,
		Subcategory: state.Subcategory,
		ChannelLink: ch.Link,
		URL:         inv.URL,
		ExpiresAt:   inv.ExpiresAt,
	})

	return Response{
		Kind:   RespInvite,
		Screen: RenderInvite(state.Category, state.Subcategory, inv.URL, c.issuer.TTLSeconds()),
		Invite: &inv,
	}
}
