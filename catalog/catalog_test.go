package catalog

import (
	"context"
	"errors"
	"strings"
	"testing"
)

const sampleDoc = `{
  "Categorias": {
    "Filmes": {
      "Ação": [
        {"name": "Ação em Alta", "link": "acaoemalta"},
        {"name": "Clássicos", "link": "classicos"}
      ],
      "Comédia": [
        {"name": "Comédia Total", "link": "comediatotal"}
      ]
    },
    "Séries": {
      "Drama": [
        {"name": "Drama Séries", "link": "dramaseries"}
      ]
    }
  }
}`

func mustParse(t *testing.T, doc string) *Store {
	t.Helper()
	store, err := Parse(strings.NewReader(doc))
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	return store
}

func TestParsePreservesSourceOrder(t *testing.T) {
	store := mustParse(t, sampleDoc)

	cats := store.Categories()
	if len(cats) != 2 || cats[0] != "Filmes" || cats[1] != "Séries" {
		t.Fatalf("categories = %v", cats)
	}

	subs, err := store.Subcategories("Filmes")
	if err != nil {
		t.Fatalf("subcategories: %v", err)
	}
	if len(subs) != 2 || subs[0] != "Ação" || subs[1] != "Comédia" {
		t.Fatalf("subcategories = %v", subs)
	}

	channels, err := store.Channels("Filmes", "Ação")
	if err != nil {
		t.Fatalf("channels: %v", err)
	}
	if len(channels) != 2 || channels[0].Link != "acaoemalta" || channels[1].Link != "classicos" {
		t.Fatalf("channels = %v", channels)
	}
}

func TestLookupsReportNotFound(t *testing.T) {
	store := mustParse(t, sampleDoc)

	if _, err := store.Subcategories("Nope"); !errors.Is(err, ErrNotFound) {
		t.Fatalf("missing category: err = %v", err)
	}
	if _, err := store.Channels("Filmes", "Nope"); !errors.Is(err, ErrNotFound) {
		t.Fatalf("missing subcategory: err = %v", err)
	}
	if _, err := store.FindChannel("Filmes", "Ação", "nope"); !errors.Is(err, ErrNotFound) {
		t.Fatalf("missing channel: err = %v", err)
	}

	ch, err := store.FindChannel("Filmes", "Ação", "classicos")
	if err != nil {
		t.Fatalf("find channel: %v", err)
	}
	if ch.Name != "Clássicos" {
		t.Fatalf("channel name = %q", ch.Name)
	}
}

func TestParseDropsEntriesBreakingTokens(t *testing.T) {
	doc := `{
  "Categorias": {
    "Good": {
      "Sub": [
        {"name": "ok", "link": "ok"},
        {"name": "bad link", "link": "has:colon"},
        {"name": "", "link": "noname"},
        {"name": "dup", "link": "ok"}
      ],
      "Bad:Sub": [
        {"name": "x", "link": "x"}
      ]
    },
    "Bad:Cat": {
      "Sub": [
        {"name": "y", "link": "y"}
      ]
    }
  }
}`
	store := mustParse(t, doc)

	if got := store.Categories(); len(got) != 1 || got[0] != "Good" {
		t.Fatalf("categories = %v", got)
	}
	subs, err := store.Subcategories("Good")
	if err != nil {
		t.Fatalf("subcategories: %v", err)
	}
	if len(subs) != 1 || subs[0] != "Sub" {
		t.Fatalf("subcategories = %v", subs)
	}
	channels, err := store.Channels("Good", "Sub")
	if err != nil {
		t.Fatalf("channels: %v", err)
	}
	if len(channels) != 1 || channels[0].Link != "ok" {
		t.Fatalf("channels = %v", channels)
	}
}

func TestParseRejectsMalformedDocument(t *testing.T) {
	for _, doc := range []string{
		`[]`,
		`{"Categorias": []}`,
		`{"Categorias": {"Cat": {"Sub": [}`,
	} {
		if _, err := Parse(strings.NewReader(doc)); err == nil {
			t.Fatalf("expected error for %q", doc)
		}
	}
}

func TestParseWithoutRootKeyYieldsEmpty(t *testing.T) {
	store := mustParse(t, `{"Other": {"x": 1}}`)
	if !store.Empty() {
		t.Fatalf("expected empty store, got %v", store.Categories())
	}
}

func TestLoadMissingFileYieldsEmpty(t *testing.T) {
	store := Load(context.Background(), "does/not/exist.json")
	if !store.Empty() {
		t.Fatal("expected empty store")
	}
}
