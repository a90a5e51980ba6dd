package invite

import (
	"context"
	"fmt"
	"os"
	"time"

	tele "gopkg.in/telebot.v4"
)

// chatResolver is the slice of *tele.Bot needed to locate a channel and
// download its photo.
type chatResolver interface {
	ChatByUsername(name string) (*tele.Chat, error)
	Download(file *tele.File, localFilename string) error
}

// TelegramPhotos fetches channel profile photos through the Bot API into
// temporary files.
type TelegramPhotos struct {
	bot     chatResolver
	timeout time.Duration
}

// NewTelegramPhotos wraps a bot client as a PhotoFetcher.
func NewTelegramPhotos(bot chatResolver, timeout time.Duration) *TelegramPhotos {
	if timeout <= 0 {
		timeout = 5 * time.Second
	}
	return &TelegramPhotos{bot: bot, timeout: timeout}
}

// FetchChannelPhoto downloads the channel's profile photo to a temp file and
// returns its path. A channel without a photo is a miss, not an error. The
// fetch is bounded so a stalled download cannot stall the handler queue.
func (t *TelegramPhotos) FetchChannelPhoto(ctx context.Context, link string) (string, error) {
	if t == nil || t.bot == nil {
		return "", nil
	}

	done := make(chan fetchResult, 1)
	go func() {
		path, err := t.fetch(link)
		done <- fetchResult{path: path, err: err}
	}()

	timer := time.NewTimer(t.timeout)
	defer timer.Stop()
	select {
	case <-ctx.Done():
		go discardFetch(done)
		return "", ctx.Err()
	case <-timer.C:
		go discardFetch(done)
		return "", fmt.Errorf("invite: photo fetch timed out after %s", t.timeout)
	case r := <-done:
		return r.path, r.err
	}
}

type fetchResult struct {
	path string
	err  error
}

// discardFetch waits for an abandoned fetch to finish and releases any temp
// file it staged. Without it a download outliving its caller would leave the
// photo on disk forever.
func discardFetch(done <-chan fetchResult) {
	if r := <-done; r.path != "" {
		_ = os.Remove(r.path)
	}
}

func (t *TelegramPhotos) fetch(link string) (string, error) {
	chat, err := t.bot.ChatByUsername("@" + link)
	if err != nil {
		return "", fmt.Errorf("invite: resolve channel %s: %w", link, err)
	}
	if chat == nil || chat.Photo == nil {
		return "", nil
	}

	f, err := os.CreateTemp("", "channel_photo_*.jpg")
	if err != nil {
		return "", fmt.Errorf("invite: temp file: %w", err)
	}
	path := f.Name()
	if err := f.Close(); err != nil {
		_ = os.Remove(path)
		return "", err
	}

	file := tele.File{FileID: chat.Photo.BigFileID}
	if err := t.bot.Download(&file, path); err != nil {
		_ = os.Remove(path)
		return "", fmt.Errorf("invite: download photo for %s: %w", link, err)
	}
	return path, nil
}
