package nav

import (
	"context"
	"errors"
	"fmt"
	"reflect"
	"testing"
	"time"

	"catalogbot/audit"
	"catalogbot/catalog"
	"catalogbot/invite"
)

type stubGate struct {
	member bool
}

func (g stubGate) IsMember(context.Context, int64) bool { return g.member }

type failingIssuer struct{}

func (failingIssuer) TTLSeconds() int { return 120 }
func (failingIssuer) Issue(context.Context, catalog.Channel) (invite.Invite, error) {
	return invite.Invite{}, errors.New("boom")
}

type recordingTrail struct {
	denials []string
	invites []audit.InviteRecord
}

func (r *recordingTrail) RecordDenial(_ context.Context, _ int64, surface string) {
	r.denials = append(r.denials, surface)
}

func (r *recordingTrail) RecordInvite(_ context.Context, rec audit.InviteRecord) {
	r.invites = append(r.invites, rec)
}

var testIssuedAt = time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)

func testController(t *testing.T, member bool, trail audit.Recorder) *Controller {
	t.Helper()
	issuer := invite.NewIssuer("https://t.me/%s?start=1", 120*time.Second, nil,
		invite.WithClock(func() time.Time { return testIssuedAt }))
	return NewController(renderStore(t), stubGate{member: member}, issuer, trail)
}

func TestStartDeniedForOutsiders(t *testing.T) {
	trail := &recordingTrail{}
	ctrl := testController(t, false, trail)

	resp := ctrl.Start(context.Background(), 7)
	if resp.Kind != RespReply || resp.Text != TextDeniedStart {
		t.Fatalf("resp = %+v", resp)
	}
	if len(trail.denials) != 1 || trail.denials[0] != audit.SurfaceStart {
		t.Fatalf("denials = %v", trail.denials)
	}
}

func TestStartEmptyCatalog(t *testing.T) {
	issuer := invite.NewIssuer("https://t.me/%s?start=1", 120*time.Second, nil)
	ctrl := NewController(&catalog.Store{}, stubGate{member: true}, issuer, nil)

	resp := ctrl.Start(context.Background(), 7)
	if resp.Kind != RespReply || resp.Text != TextEmptyCatalog {
		t.Fatalf("resp = %+v", resp)
	}
}

func TestStartShowsRoot(t *testing.T) {
	ctrl := testController(t, true, nil)

	resp := ctrl.Start(context.Background(), 7)
	if resp.Kind != RespScreen || resp.Screen == nil {
		t.Fatalf("resp = %+v", resp)
	}
	if resp.Screen.Text != TextRoot {
		t.Fatalf("text = %q", resp.Screen.Text)
	}
}

func TestPressDeniedLeavesScreenUntouched(t *testing.T) {
	trail := &recordingTrail{}
	ctrl := testController(t, false, trail)

	resp := ctrl.Press(context.Background(), 7, "cat:Filmes")
	if resp.Kind != RespAlert || resp.Text != TextDeniedPress {
		t.Fatalf("resp = %+v", resp)
	}
	if len(trail.denials) != 1 || trail.denials[0] != audit.SurfacePress {
		t.Fatalf("denials = %v", trail.denials)
	}
}

func TestPressMalformedTokenAlerts(t *testing.T) {
	ctrl := testController(t, true, nil)

	for _, token := range []string{"", "cat:", "bogus:x", "cat:a:b"} {
		resp := ctrl.Press(context.Background(), 7, token)
		if resp.Kind != RespAlert || resp.Text != TextUnknownState {
			t.Fatalf("press %q: resp = %+v", token, resp)
		}
	}
}

func TestPressWalksToInvite(t *testing.T) {
	trail := &recordingTrail{}
	ctrl := testController(t, true, trail)
	ctx := context.Background()

	resp := ctrl.Press(ctx, 7, "cat:Filmes")
	if resp.Kind != RespScreen || resp.Screen.Text != fmt.Sprintf(TextCategory, "Filmes") {
		t.Fatalf("category resp = %+v", resp)
	}

	resp = ctrl.Press(ctx, 7, "subcat:Filmes:Ação")
	if resp.Kind != RespScreen || resp.Screen.Text != fmt.Sprintf(TextSubcategory, "Ação") {
		t.Fatalf("subcategory resp = %+v", resp)
	}

	resp = ctrl.Press(ctx, 7, "channel:Filmes:Ação:acaoemalta")
	if resp.Kind != RespInvite || resp.Invite == nil || resp.Screen == nil {
		t.Fatalf("invite resp = %+v", resp)
	}
	if resp.Invite.URL != "https://t.me/acaoemalta?start=1" {
		t.Fatalf("invite url = %q", resp.Invite.URL)
	}
	if !resp.Invite.ExpiresAt.Equal(testIssuedAt.Add(120 * time.Second)) {
		t.Fatalf("expires at = %v", resp.Invite.ExpiresAt)
	}
	if resp.Screen.Text != "O Link Expira em 2 minutos." {
		t.Fatalf("invite screen text = %q", resp.Screen.Text)
	}

	if len(trail.invites) != 1 {
		t.Fatalf("invites = %v", trail.invites)
	}
	rec := trail.invites[0]
	if rec.UserID != 7 || rec.Category != "Filmes" || rec.ChannelLink != "acaoemalta" {
		t.Fatalf("invite record = %+v", rec)
	}
}

func TestBackReproducesRootExactly(t *testing.T) {
	ctrl := testController(t, true, nil)
	ctx := context.Background()

	root := ctrl.Start(ctx, 7)
	if root.Kind != RespScreen {
		t.Fatalf("start resp = %+v", root)
	}

	if resp := ctrl.Press(ctx, 7, "cat:Filmes"); resp.Kind != RespScreen {
		t.Fatalf("category resp = %+v", resp)
	}

	back := ctrl.Press(ctx, 7, TagBack)
	if back.Kind != RespScreen {
		t.Fatalf("back resp = %+v", back)
	}
	if !reflect.DeepEqual(back.Screen, root.Screen) {
		t.Fatalf("back screen = %+v, want %+v", back.Screen, root.Screen)
	}
}

func TestPressMenuReturnsRoot(t *testing.T) {
	ctrl := testController(t, true, nil)

	resp := ctrl.Press(context.Background(), 7, TagMenu)
	if resp.Kind != RespScreen || resp.Screen.Text != TextRoot {
		t.Fatalf("resp = %+v", resp)
	}
}

func TestPressUnknownCategoryAlerts(t *testing.T) {
	ctrl := testController(t, true, nil)

	resp := ctrl.Press(context.Background(), 7, "cat:Nope")
	if resp.Kind != RespAlert || resp.Text != fmt.Sprintf(TextNoSubcats, "Nope") {
		t.Fatalf("resp = %+v", resp)
	}

	resp = ctrl.Press(context.Background(), 7, "channel:Filmes:Ação:nope")
	if resp.Kind != RespAlert || resp.Text != TextUnknownState {
		t.Fatalf("resp = %+v", resp)
	}
}

func TestPressIssueFailureAlerts(t *testing.T) {
	ctrl := NewController(renderStore(t), stubGate{member: true}, failingIssuer{}, nil)

	resp := ctrl.Press(context.Background(), 7, "channel:Filmes:Ação:acaoemalta")
	if resp.Kind != RespAlert || resp.Text != TextInviteFailed {
		t.Fatalf("resp = %+v", resp)
	}
}
