package invite

import (
	"context"
	"errors"
	"testing"
	"time"

	"catalogbot/catalog"
)

type fakeFetcher struct {
	path string
	err  error
}

func (f fakeFetcher) FetchChannelPhoto(context.Context, string) (string, error) {
	return f.path, f.err
}

var issuedAt = time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)

func fixedClock() time.Time { return issuedAt }

func TestIssueBuildsLinkAndExpiry(t *testing.T) {
	iss := NewIssuer("https://t.me/%s?start=1", 120*time.Second, nil, WithClock(fixedClock))

	inv, err := iss.Issue(context.Background(), catalog.Channel{Name: "Canal", Link: "canal"})
	if err != nil {
		t.Fatalf("issue: %v", err)
	}
	if inv.URL != "https://t.me/canal?start=1" {
		t.Fatalf("url = %q", inv.URL)
	}
	if !inv.ExpiresAt.Equal(issuedAt.Add(120 * time.Second)) {
		t.Fatalf("expires at = %v", inv.ExpiresAt)
	}
	if inv.PhotoPath != "" {
		t.Fatalf("photo path = %q", inv.PhotoPath)
	}
	if iss.TTLSeconds() != 120 {
		t.Fatalf("ttl = %d", iss.TTLSeconds())
	}
}

func TestIssueAttachesPhoto(t *testing.T) {
	iss := NewIssuer("https://t.me/%s?start=1", time.Minute, fakeFetcher{path: "/tmp/p.jpg"},
		WithClock(fixedClock))

	inv, err := iss.Issue(context.Background(), catalog.Channel{Name: "Canal", Link: "canal"})
	if err != nil {
		t.Fatalf("issue: %v", err)
	}
	if inv.PhotoPath != "/tmp/p.jpg" {
		t.Fatalf("photo path = %q", inv.PhotoPath)
	}
}

func TestIssueDegradesOnPhotoFailure(t *testing.T) {
	iss := NewIssuer("https://t.me/%s?start=1", time.Minute, fakeFetcher{err: errors.New("offline")},
		WithClock(fixedClock))

	inv, err := iss.Issue(context.Background(), catalog.Channel{Name: "Canal", Link: "canal"})
	if err != nil {
		t.Fatalf("photo failure must not fail issuance: %v", err)
	}
	if inv.PhotoPath != "" {
		t.Fatalf("photo path = %q", inv.PhotoPath)
	}
	if inv.URL != "https://t.me/canal?start=1" {
		t.Fatalf("url = %q", inv.URL)
	}
}
