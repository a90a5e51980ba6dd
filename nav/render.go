package nav

import (
	"fmt"

	"catalogbot/catalog"
)

// Button is one inline button of a screen: a label plus either an action
// token or an external URL.
type Button struct {
	Label string
	Token string
	URL   string
}

// Screen describes one menu: message text plus an ordered button list.
type Screen struct {
	Text    string
	Buttons []Button
}

// User-facing strings, kept in the language of the audience the catalog
// serves.
const (
	TextRoot         = "Selecione uma categoria:"
	TextCategory     = "Selecione uma subcategoria de %s:"
	TextSubcategory  = "Selecione um canal de %s:"
	TextEmptyCatalog = "⚠️ O catálogo está vazio ou não foi carregado corretamente."
	TextNoSubcats    = "Nenhuma subcategoria encontrada em %s."
	TextNoChannels   = "Nenhum canal encontrado em %s."
	TextDeniedStart  = "⚠️ Você não tem permissão para acessar este bot. Por favor, entre no canal para obter acesso."
	TextDeniedPress  = "⚠️ Você não tem permissão para acessar este bot."
	TextUnknownState = "⚠️ Nada encontrado."
	TextInviteFailed = "Erro ao criar o link de convite."

	labelBack     = "🔙 Voltar"
	labelBackSubs = "🔙 Voltar a SubCategoria"
	labelMenu     = "🏠 Menu"
	labelAccess   = "📎 Acessar Canal"
)

// RenderRoot builds the category list screen. The caller is responsible for
// the empty-catalog case; an empty catalog never reaches the renderer.
func RenderRoot(store *catalog.Store) *Screen {
	names := store.Categories()
	screen := &Screen{Text: TextRoot, Buttons: make([]Button, 0, len(names))}
	for _, name := range names {
		screen.Buttons = append(screen.Buttons, Button{
			Label: name,
			Token: Encode(AtCategory(name)),
		})
	}
	return screen
}

// RenderCategory builds the subcategory list of one category. A missing or
// empty category yields ErrNotFound so the caller can alert without touching
// the current screen.
func RenderCategory(store *catalog.Store, category string) (*Screen, error) {
	subs, err := store.Subcategories(category)
	if err != nil || len(subs) == 0 {
		return nil, catalog.ErrNotFound
	}
	screen := &Screen{
		Text:    fmt.Sprintf(TextCategory, category),
		Buttons: make([]Button, 0, len(subs)+2),
	}
	for _, sub := range subs {
		screen.Buttons = append(screen.Buttons, Button{
			Label: sub,
			Token: Encode(AtSubcategory(category, sub)),
		})
	}
	screen.Buttons = append(screen.Buttons,
		Button{Label: labelBack, Token: TagBack},
		Button{Label: labelMenu, Token: TagMenu},
	)
	return screen, nil
}

// RenderSubcategory builds the channel list of one subcategory. The Back
// button points at the parent category screen.
func RenderSubcategory(store *catalog.Store, category, subcategory string) (*Screen, error) {
	channels, err := store.Channels(category, subcategory)
	if err != nil || len(channels) == 0 {
		return nil, catalog.ErrNotFound
	}
	screen := &Screen{
		Text:    fmt.Sprintf(TextSubcategory, subcategory),
		Buttons: make([]Button, 0, len(channels)+2),
	}
	for _, ch := range channels {
		screen.Buttons = append(screen.Buttons, Button{
			Label: ch.Name,
			Token: Encode(AtChannel(category, subcategory, ch.Link)),
		})
	}
	screen.Buttons = append(screen.Buttons,
		Button{Label: labelBackSubs, Token: Encode(AtCategory(category))},
		Button{Label: labelMenu, Token: TagMenu},
	)
	return screen, nil
}

// RenderInvite builds the invite screen for a channel leaf: access URL
// button, then Back to the channel list and Menu.
func RenderInvite(category, subcategory, inviteURL string, ttlSeconds int) *Screen {
	return &Screen{
		Text: fmt.Sprintf("O Link Expira em %s.", humanTTL(ttlSeconds)),
		Buttons: []Button{
			{Label: labelAccess, URL: inviteURL},
			{Label: labelBack, Token: Encode(AtSubcategory(category, subcategory))},
			{Label: labelMenu, Token: TagMenu},
		},
	}
}

func humanTTL(seconds int) string {
	switch {
	case seconds <= 0:
		return "0 segundos"
	case seconds == 60:
		return "1 minuto"
	case seconds%60 == 0:
		return fmt.Sprintf("%d minutos", seconds/60)
	default:
		return fmt.Sprintf("%d segundos", seconds)
	}
}
