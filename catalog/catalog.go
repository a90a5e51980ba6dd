// Package catalog loads and serves the static Category → Subcategory →
// Channel hierarchy that drives every menu in the bot. The catalog is read
// once at startup and is immutable for the process lifetime.
package catalog

import (
	"errors"
	"strings"
)

// Delimiter separates fields inside navigation action tokens. Names and
// links containing it cannot round-trip through a token, so the loader
// rejects such entries.
const Delimiter = ":"

// ErrNotFound indicates the requested category, subcategory, or channel
// does not exist in the catalog.
var ErrNotFound = errors.New("catalog: not found")

// Channel is a leaf entry: a display name plus the link identifier used
// both as routing key and invite target.
type Channel struct {
	Name string `json:"name"`
	Link string `json:"link"`
}

type subcategory struct {
	name     string
	channels []Channel
}

type category struct {
	name string
	subs []subcategory
}

// Store holds the immutable catalog. The zero value is an empty catalog.
type Store struct {
	cats []category
}

// Empty reports whether the catalog holds no categories.
func (s *Store) Empty() bool {
	return s == nil || len(s.cats) == 0
}

// Len returns the number of categories.
func (s *Store) Len() int {
	if s == nil {
		return 0
	}
	return len(s.cats)
}

// Categories returns category names in catalog source order.
func (s *Store) Categories() []string {
	if s == nil {
		return nil
	}
	names := make([]string, 0, len(s.cats))
	for _, c := range s.cats {
		names = append(names, c.name)
	}
	return names
}

func (s *Store) category(name string) (*category, bool) {
	if s == nil {
		return nil, false
	}
	for i := range s.cats {
		if s.cats[i].name == name {
			return &s.cats[i], true
		}
	}
	return nil, false
}

// Subcategories returns subcategory names of a category in source order.
func (s *Store) Subcategories(cat string) ([]string, error) {
	c, ok := s.category(cat)
	if !ok {
		return nil, ErrNotFound
	}
	names := make([]string, 0, len(c.subs))
	for _, sub := range c.subs {
		names = append(names, sub.name)
	}
	return names, nil
}

// Channels returns the channel list of a subcategory in source order.
func (s *Store) Channels(cat, sub string) ([]Channel, error) {
	c, ok := s.category(cat)
	if !ok {
		return nil, ErrNotFound
	}
	for _, sc := range c.subs {
		if sc.name == sub {
			return sc.channels, nil
		}
	}
	return nil, ErrNotFound
}

// FindChannel resolves a channel by its link identifier within a subcategory.
func (s *Store) FindChannel(cat, sub, link string) (Channel, error) {
	channels, err := s.Channels(cat, sub)
	if err != nil {
		return Channel{}, err
	}
	for _, ch := range channels {
		if ch.Link == link {
			return ch, nil
		}
	}
	return Channel{}, ErrNotFound
}

func validName(s string) bool {
	return s != "" && !strings.Contains(s, Delimiter)
}
