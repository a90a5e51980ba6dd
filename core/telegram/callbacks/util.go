package callbacks

import (
	"strings"

	tele "gopkg.in/telebot.v4"
)

// ParseCallbackData returns the callback key and payload.
//
// Telebot encodes button data as \f<unique>|<payload>. Depending on how the
// update was routed, the callback arrives either pre-split (Unique set, Data
// holding the bare payload) or raw (Unique empty, Data holding the full
// encoded form). Both shapes are handled here.
func ParseCallbackData(cb *tele.Callback) (string, string) {
	if cb == nil {
		return "", ""
	}
	if cb.Unique != "" {
		return cb.Unique, cb.Data
	}

	raw := strings.TrimPrefix(cb.Data, "\f")
	parts := strings.SplitN(raw, "|", 2)
	unique := strings.TrimSpace(parts[0])
	payload := ""
	if len(parts) == 2 {
		payload = parts[1]
	}
	return unique, payload
}
