package access

import (
	"context"
	"errors"
	"testing"
	"time"

	tele "gopkg.in/telebot.v4"
)

type fakeClient struct {
	member *tele.ChatMember
	err    error
	delay  time.Duration
}

func (f *fakeClient) ChatMemberOf(chat, user tele.Recipient) (*tele.ChatMember, error) {
	if f.delay > 0 {
		time.Sleep(f.delay)
	}
	return f.member, f.err
}

func TestIsMemberStatuses(t *testing.T) {
	cases := []struct {
		role tele.MemberStatus
		want bool
	}{
		{tele.Creator, true},
		{tele.Administrator, true},
		{tele.Member, true},
		{tele.Restricted, true},
		{tele.Left, false},
		{tele.Kicked, false},
	}
	for _, tc := range cases {
		client := &fakeClient{member: &tele.ChatMember{Role: tc.role}}
		gate := NewChannelGate(client, -100123, time.Second)
		if got := gate.IsMember(context.Background(), 7); got != tc.want {
			t.Fatalf("role %q: got %v, want %v", tc.role, got, tc.want)
		}
	}
}

func TestIsMemberFailsClosed(t *testing.T) {
	client := &fakeClient{err: errors.New("api down")}
	gate := NewChannelGate(client, -100123, time.Second)
	if gate.IsMember(context.Background(), 7) {
		t.Fatal("lookup error must deny access")
	}
}

func TestIsMemberTimeoutDenies(t *testing.T) {
	client := &fakeClient{
		member: &tele.ChatMember{Role: tele.Member},
		delay:  200 * time.Millisecond,
	}
	gate := NewChannelGate(client, -100123, 10*time.Millisecond)
	if gate.IsMember(context.Background(), 7) {
		t.Fatal("slow lookup must deny access")
	}
}

func TestIsMemberCancelledContextDenies(t *testing.T) {
	client := &fakeClient{
		member: &tele.ChatMember{Role: tele.Member},
		delay:  200 * time.Millisecond,
	}
	gate := NewChannelGate(client, -100123, time.Second)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	if gate.IsMember(ctx, 7) {
		t.Fatal("cancelled context must deny access")
	}
}

func TestNilGateDenies(t *testing.T) {
	var gate *ChannelGate
	if gate.IsMember(context.Background(), 7) {
		t.Fatal("nil gate must deny access")
	}
}
