package nav

import (
	"errors"
	"testing"
)

func TestEncodeDecodeRoundTrip(t *testing.T) {
	states := []State{
		Root(),
		AtCategory("Filmes"),
		AtSubcategory("Filmes", "Ação"),
		AtChannel("Filmes", "Ação", "acaoemalta"),
	}
	for _, want := range states {
		token := Encode(want)
		got, err := Decode(token)
		if err != nil {
			t.Fatalf("decode %q: %v", token, err)
		}
		if got != want {
			t.Fatalf("round trip %q: got %+v, want %+v", token, got, want)
		}
	}
}

func TestDecodeNavigationSynonyms(t *testing.T) {
	for _, token := range []string{TagStart, TagBack, TagMenu} {
		state, err := Decode(token)
		if err != nil {
			t.Fatalf("decode %q: %v", token, err)
		}
		if state.Kind != KindRoot {
			t.Fatalf("decode %q: kind = %v", token, state.Kind)
		}
	}
}

func TestDecodeRejectsMalformedTokens(t *testing.T) {
	cases := []struct {
		token string
		want  error
	}{
		{"", ErrEmptyField},
		{"cat:", ErrEmptyField},
		{"subcat:Filmes:", ErrEmptyField},
		{":Filmes", ErrEmptyField},
		{"cat", ErrMalformedToken},
		{"cat:a:b", ErrMalformedToken},
		{"subcat:a", ErrMalformedToken},
		{"channel:a:b", ErrMalformedToken},
		{"channel:a:b:c:d", ErrMalformedToken},
		{"back_to_categories:x", ErrMalformedToken},
		{"bogus:a", ErrMalformedToken},
	}
	for _, tc := range cases {
		if _, err := Decode(tc.token); !errors.Is(err, tc.want) {
			t.Fatalf("decode %q: err = %v, want %v", tc.token, err, tc.want)
		}
	}
}

func TestJoinSplitToken(t *testing.T) {
	cases := []struct {
		token   string
		key     string
		payload string
	}{
		{"cat:Filmes", "cat", "Filmes"},
		{"subcat:Filmes:Ação", "subcat", "Filmes:Ação"},
		{"go_to_menu", "go_to_menu", ""},
	}
	for _, tc := range cases {
		key, payload := SplitToken(tc.token)
		if key != tc.key || payload != tc.payload {
			t.Fatalf("split %q: got (%q, %q)", tc.token, key, payload)
		}
		if rebuilt := JoinToken(key, payload); rebuilt != tc.token {
			t.Fatalf("join %q: got %q", tc.token, rebuilt)
		}
	}
}
