package nav

import (
	"errors"
	"fmt"
	"strings"
	"testing"

	"catalogbot/catalog"
)

const renderDoc = `{
  "Categorias": {
    "Filmes": {
      "Ação": [
        {"name": "Ação em Alta", "link": "acaoemalta"},
        {"name": "Clássicos", "link": "classicos"}
      ]
    },
    "Séries": {
      "Drama": [
        {"name": "Drama Séries", "link": "dramaseries"}
      ]
    }
  }
}`

func renderStore(t *testing.T) *catalog.Store {
	t.Helper()
	store, err := catalog.Parse(strings.NewReader(renderDoc))
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	return store
}

func TestRenderRoot(t *testing.T) {
	screen := RenderRoot(renderStore(t))

	if screen.Text != TextRoot {
		t.Fatalf("text = %q", screen.Text)
	}
	if len(screen.Buttons) != 2 {
		t.Fatalf("buttons = %d", len(screen.Buttons))
	}
	if screen.Buttons[0].Label != "Filmes" || screen.Buttons[0].Token != "cat:Filmes" {
		t.Fatalf("button 0 = %+v", screen.Buttons[0])
	}
	if screen.Buttons[1].Label != "Séries" || screen.Buttons[1].Token != "cat:Séries" {
		t.Fatalf("button 1 = %+v", screen.Buttons[1])
	}
}

func TestRenderCategory(t *testing.T) {
	screen, err := RenderCategory(renderStore(t), "Filmes")
	if err != nil {
		t.Fatalf("render: %v", err)
	}
	if screen.Text != fmt.Sprintf(TextCategory, "Filmes") {
		t.Fatalf("text = %q", screen.Text)
	}
	// one subcategory plus Back and Menu
	if len(screen.Buttons) != 3 {
		t.Fatalf("buttons = %d", len(screen.Buttons))
	}
	if screen.Buttons[0].Token != "subcat:Filmes:Ação" {
		t.Fatalf("button 0 token = %q", screen.Buttons[0].Token)
	}
	if screen.Buttons[1].Token != TagBack {
		t.Fatalf("back token = %q", screen.Buttons[1].Token)
	}
	if screen.Buttons[2].Token != TagMenu {
		t.Fatalf("menu token = %q", screen.Buttons[2].Token)
	}
}

func TestRenderCategoryMissing(t *testing.T) {
	if _, err := RenderCategory(renderStore(t), "Nope"); !errors.Is(err, catalog.ErrNotFound) {
		t.Fatalf("err = %v", err)
	}
}

func TestRenderSubcategory(t *testing.T) {
	screen, err := RenderSubcategory(renderStore(t), "Filmes", "Ação")
	if err != nil {
		t.Fatalf("render: %v", err)
	}
	if screen.Text != fmt.Sprintf(TextSubcategory, "Ação") {
		t.Fatalf("text = %q", screen.Text)
	}
	if len(screen.Buttons) != 4 {
		t.Fatalf("buttons = %d", len(screen.Buttons))
	}
	if screen.Buttons[0].Token != "channel:Filmes:Ação:acaoemalta" {
		t.Fatalf("button 0 token = %q", screen.Buttons[0].Token)
	}
	// Back returns to the parent category screen, not to the root
	if screen.Buttons[2].Token != Encode(AtCategory("Filmes")) {
		t.Fatalf("back token = %q", screen.Buttons[2].Token)
	}
	if screen.Buttons[3].Token != TagMenu {
		t.Fatalf("menu token = %q", screen.Buttons[3].Token)
	}
}

func TestRenderInvite(t *testing.T) {
	screen := RenderInvite("Filmes", "Ação", "https://t.me/acaoemalta?start=1", 120)

	if screen.Text != "O Link Expira em 2 minutos." {
		t.Fatalf("text = %q", screen.Text)
	}
	if len(screen.Buttons) != 3 {
		t.Fatalf("buttons = %d", len(screen.Buttons))
	}
	if screen.Buttons[0].URL != "https://t.me/acaoemalta?start=1" {
		t.Fatalf("url = %q", screen.Buttons[0].URL)
	}
	if screen.Buttons[1].Token != Encode(AtSubcategory("Filmes", "Ação")) {
		t.Fatalf("back token = %q", screen.Buttons[1].Token)
	}
}

func TestHumanTTL(t *testing.T) {
	cases := []struct {
		seconds int
		want    string
	}{
		{0, "0 segundos"},
		{45, "45 segundos"},
		{60, "1 minuto"},
		{120, "2 minutos"},
		{90, "90 segundos"},
	}
	for _, tc := range cases {
		if got := humanTTL(tc.seconds); got != tc.want {
			t.Fatalf("humanTTL(%d) = %q, want %q", tc.seconds, got, tc.want)
		}
	}
}
