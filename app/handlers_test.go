package app

import (
	"testing"

	"catalogbot/nav"
)

func TestScreenKeyboard(t *testing.T) {
	screen := &nav.Screen{
		Text: "Selecione uma subcategoria de Filmes:",
		Buttons: []nav.Button{
			{Label: "Ação", Token: "subcat:Filmes:Ação"},
			{Label: "🔙 Voltar", Token: "back_to_categories"},
			{Label: "📎 Acessar Canal", URL: "https://t.me/canal?start=1"},
		},
	}

	markup := screenKeyboard(screen)
	if len(markup.InlineKeyboard) != 3 {
		t.Fatalf("rows = %d", len(markup.InlineKeyboard))
	}
	for i, row := range markup.InlineKeyboard {
		if len(row) != 1 {
			t.Fatalf("row %d width = %d", i, len(row))
		}
	}

	first := markup.InlineKeyboard[0][0]
	if first.Unique != "subcat" || first.Data != "Filmes:Ação" {
		t.Fatalf("first button = %+v", first)
	}

	back := markup.InlineKeyboard[1][0]
	if back.Unique != "back_to_categories" || back.Data != "" {
		t.Fatalf("back button = %+v", back)
	}

	link := markup.InlineKeyboard[2][0]
	if link.URL != "https://t.me/canal?start=1" || link.Unique != "" {
		t.Fatalf("link button = %+v", link)
	}
}
