package invite

import (
	"context"
	"os"
	"testing"
	"time"

	tele "gopkg.in/telebot.v4"
)

type fakeResolver struct {
	photo         bool
	downloadDelay time.Duration
	downloaded    chan string
}

func newFakeResolver(photo bool, delay time.Duration) *fakeResolver {
	return &fakeResolver{photo: photo, downloadDelay: delay, downloaded: make(chan string, 1)}
}

func (f *fakeResolver) ChatByUsername(name string) (*tele.Chat, error) {
	chat := &tele.Chat{ID: 1, Username: name}
	if f.photo {
		chat.Photo = &tele.ChatPhoto{BigFileID: "big"}
	}
	return chat, nil
}

func (f *fakeResolver) Download(file *tele.File, localFilename string) error {
	if f.downloadDelay > 0 {
		time.Sleep(f.downloadDelay)
	}
	f.downloaded <- localFilename
	return nil
}

func waitRemoved(t *testing.T, path string) {
	t.Helper()
	deadline := time.Now().Add(2 * time.Second)
	for {
		if _, err := os.Stat(path); os.IsNotExist(err) {
			return
		}
		if time.Now().After(deadline) {
			_ = os.Remove(path)
			t.Fatalf("staged photo %s was not released", path)
		}
		time.Sleep(5 * time.Millisecond)
	}
}

func TestFetchChannelPhotoStagesFile(t *testing.T) {
	photos := NewTelegramPhotos(newFakeResolver(true, 0), time.Second)

	path, err := photos.FetchChannelPhoto(context.Background(), "canal")
	if err != nil {
		t.Fatalf("fetch: %v", err)
	}
	if path == "" {
		t.Fatal("expected a staged file path")
	}
	defer os.Remove(path)
	if _, err := os.Stat(path); err != nil {
		t.Fatalf("stat staged file: %v", err)
	}
}

func TestFetchChannelPhotoMissIsNotAnError(t *testing.T) {
	photos := NewTelegramPhotos(newFakeResolver(false, 0), time.Second)

	path, err := photos.FetchChannelPhoto(context.Background(), "canal")
	if err != nil {
		t.Fatalf("fetch: %v", err)
	}
	if path != "" {
		t.Fatalf("path = %q, want empty for a channel without a photo", path)
	}
}

func TestFetchTimeoutReleasesStagedFile(t *testing.T) {
	res := newFakeResolver(true, 100*time.Millisecond)
	photos := NewTelegramPhotos(res, 10*time.Millisecond)

	if _, err := photos.FetchChannelPhoto(context.Background(), "canal"); err == nil {
		t.Fatal("expected timeout error")
	}

	// the download finishes after the caller gave up; its file must go away
	path := <-res.downloaded
	waitRemoved(t, path)
}

func TestFetchCancelReleasesStagedFile(t *testing.T) {
	res := newFakeResolver(true, 100*time.Millisecond)
	photos := NewTelegramPhotos(res, time.Second)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	if _, err := photos.FetchChannelPhoto(ctx, "canal"); err == nil {
		t.Fatal("expected context error")
	}

	path := <-res.downloaded
	waitRemoved(t, path)
}
