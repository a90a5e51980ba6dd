package nav

import (
	"errors"
	"fmt"
	"strings"

	"catalogbot/catalog"
)

// Token tags. TagBack and TagMenu are synonyms kept for the button labels
// they originate from; both decode to the root state.
const (
	TagStart   = "start"
	TagCat     = "cat"
	TagSubcat  = "subcat"
	TagChannel = "channel"
	TagBack    = "back_to_categories"
	TagMenu    = "go_to_menu"
)

var (
	// ErrMalformedToken indicates an unknown tag or a wrong field count.
	ErrMalformedToken = errors.New("nav: malformed action token")
	// ErrEmptyField indicates a token field with no content.
	ErrEmptyField = errors.New("nav: empty token field")
)

// Encode serializes a navigation state into an action token. Field names are
// delimiter-free by catalog load-time guarantee, so Decode(Encode(s)) == s.
func Encode(s State) string {
	switch s.Kind {
	case KindCategory:
		return TagCat + catalog.Delimiter + s.Category
	case KindSubcategory:
		return strings.Join([]string{TagSubcat, s.Category, s.Subcategory}, catalog.Delimiter)
	case KindChannel:
		return strings.Join([]string{TagChannel, s.Category, s.Subcategory, s.ChannelLink}, catalog.Delimiter)
	default:
		return TagStart
	}
}

// Decode parses an action token back into a navigation state. The token is
// untrusted input: arity is enforced per tag and empty fields are rejected.
func Decode(token string) (State, error) {
	fields := strings.Split(token, catalog.Delimiter)
	for _, f := range fields {
		if f == "" {
			return State{}, fmt.Errorf("%w: %q", ErrEmptyField, token)
		}
	}

	switch fields[0] {
	case TagStart, TagBack, TagMenu:
		if len(fields) != 1 {
			return State{}, fmt.Errorf("%w: %q", ErrMalformedToken, token)
		}
		return Root(), nil
	case TagCat:
		if len(fields) != 2 {
			return State{}, fmt.Errorf("%w: %q", ErrMalformedToken, token)
		}
		return AtCategory(fields[1]), nil
	case TagSubcat:
		if len(fields) != 3 {
			return State{}, fmt.Errorf("%w: %q", ErrMalformedToken, token)
		}
		return AtSubcategory(fields[1], fields[2]), nil
	case TagChannel:
		if len(fields) != 4 {
			return State{}, fmt.Errorf("%w: %q", ErrMalformedToken, token)
		}
		return AtChannel(fields[1], fields[2], fields[3]), nil
	default:
		return State{}, fmt.Errorf("%w: %q", ErrMalformedToken, token)
	}
}

// JoinToken rebuilds a full action token from the Telegram callback key and
// payload halves (telebot carries them as `\f<unique>|<payload>`).
func JoinToken(key, payload string) string {
	if payload == "" {
		return key
	}
	return key + catalog.Delimiter + payload
}

// SplitToken splits a full action token into the callback key and payload
// halves used when building inline buttons.
func SplitToken(token string) (key, payload string) {
	key, payload, _ = strings.Cut(token, catalog.Delimiter)
	return key, payload
}
