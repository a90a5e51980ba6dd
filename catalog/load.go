package catalog

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"

	"catalogbot/core/logger"
	"log/slog"
)

// rootKey is the top-level key of the catalog document.
const rootKey = "Categorias"

// Load reads the catalog document from path. Any failure (missing file,
// malformed JSON) is logged and yields an empty catalog: the bot must start
// and degrade to "catalog empty" responses rather than refuse to boot.
func Load(ctx context.Context, path string) *Store {
	f, err := os.Open(path)
	if err != nil {
		logger.Warn(ctx, "service.catalog", "load.fail",
			slog.String("status", "fail"),
			slog.String("path", path),
			slog.String("err", err.Error()),
		)
		return &Store{}
	}
	defer f.Close()

	store, err := Parse(f)
	if err != nil {
		logger.Warn(ctx, "service.catalog", "parse.fail",
			slog.String("status", "fail"),
			slog.String("path", path),
			slog.String("err", err.Error()),
		)
		return &Store{}
	}

	logger.Info(ctx, "service.catalog", "load.ok",
		slog.String("status", "ok"),
		slog.String("path", path),
		slog.Int("categories", store.Len()),
	)
	return store
}

// Parse decodes the catalog document preserving the key order of the source.
// Go maps would shuffle menu ordering between runs, so the object keys are
// walked with a token decoder instead of unmarshalling into a map.
//
// Entries whose names or links contain the token delimiter are dropped with
// a diagnostic: they could not round-trip through an action token.
func Parse(r io.Reader) (*Store, error) {
	dec := json.NewDecoder(r)

	if err := expectDelim(dec, '{'); err != nil {
		return nil, fmt.Errorf("catalog: document: %w", err)
	}

	store := &Store{}
	for dec.More() {
		key, err := readKey(dec)
		if err != nil {
			return nil, err
		}
		if key != rootKey {
			if err := skipValue(dec); err != nil {
				return nil, err
			}
			continue
		}
		if err := parseCategories(dec, store); err != nil {
			return nil, err
		}
	}
	if err := expectDelim(dec, '}'); err != nil {
		return nil, fmt.Errorf("catalog: document: %w", err)
	}
	return store, nil
}

func parseCategories(dec *json.Decoder, store *Store) error {
	if err := expectDelim(dec, '{'); err != nil {
		return fmt.Errorf("catalog: %s: %w", rootKey, err)
	}
	for dec.More() {
		name, err := readKey(dec)
		if err != nil {
			return err
		}
		cat := category{name: name}
		if err := parseSubcategories(dec, &cat); err != nil {
			return err
		}
		if !validName(name) {
			logDropped("category", name)
			continue
		}
		if _, dup := store.category(name); dup {
			logDropped("category", name)
			continue
		}
		store.cats = append(store.cats, cat)
	}
	return expectDelim(dec, '}')
}

func parseSubcategories(dec *json.Decoder, cat *category) error {
	if err := expectDelim(dec, '{'); err != nil {
		return fmt.Errorf("catalog: category %q: %w", cat.name, err)
	}
	for dec.More() {
		name, err := readKey(dec)
		if err != nil {
			return err
		}
		var raw []Channel
		if err := dec.Decode(&raw); err != nil {
			return fmt.Errorf("catalog: subcategory %q: %w", name, err)
		}
		if !validName(name) {
			logDropped("subcategory", name)
			continue
		}
		sub := subcategory{name: name}
		seen := make(map[string]struct{}, len(raw))
		for _, ch := range raw {
			if ch.Name == "" || !validName(ch.Link) {
				logDropped("channel", ch.Link)
				continue
			}
			if _, dup := seen[ch.Link]; dup {
				logDropped("channel", ch.Link)
				continue
			}
			seen[ch.Link] = struct{}{}
			sub.channels = append(sub.channels, ch)
		}
		cat.subs = append(cat.subs, sub)
	}
	return expectDelim(dec, '}')
}

func logDropped(kind, name string) {
	logger.Warn(context.Background(), "service.catalog", "entry.dropped",
		slog.String("status", "skip"),
		slog.String("cause", kind),
		slog.String("payload", logger.SanitizeLimit(name, 128)),
	)
}

func readKey(dec *json.Decoder) (string, error) {
	tok, err := dec.Token()
	if err != nil {
		return "", fmt.Errorf("catalog: key: %w", err)
	}
	key, ok := tok.(string)
	if !ok {
		return "", fmt.Errorf("catalog: expected object key, got %v", tok)
	}
	return key, nil
}

func expectDelim(dec *json.Decoder, want json.Delim) error {
	tok, err := dec.Token()
	if err != nil {
		return err
	}
	delim, ok := tok.(json.Delim)
	if !ok || delim != want {
		return fmt.Errorf("expected %q, got %v", want, tok)
	}
	return nil
}

// skipValue consumes one JSON value of any shape.
func skipValue(dec *json.Decoder) error {
	var discard json.RawMessage
	return dec.Decode(&discard)
}
