package app

import (
	"fmt"
	"os"

	tele "gopkg.in/telebot.v4"

	coretelegram "catalogbot/core/telegram"
	"catalogbot/core/telegram/callbacks"
	"catalogbot/core/telegram/commands"
	tghelpers "catalogbot/core/telegram/helpers"
	"catalogbot/core/telegram/keyboard"
	"catalogbot/nav"
)

const (
	textUnknownCallback = "⚠️ Ação não suportada."
	textStatsDisabled   = "A trilha de auditoria está desativada."
	textStatsFailed     = "Não foi possível carregar as estatísticas."
)

func (a *App) registerCommands(reg *coretelegram.Registry) {
	reg.RegisterCommand("/start", commands.Command{
		Handler:     a.handleStart,
		Description: "Abrir o catálogo de canais",
	})
	reg.RegisterCommand("/stats", commands.Command{
		Handler:     a.handleStats,
		Description: "Estatísticas de uso",
		AdminOnly:   true,
		Hidden:      true,
	})
}

func (a *App) registerCallbacks(reg *coretelegram.Registry) error {
	keys := []string{nav.TagCat, nav.TagSubcat, nav.TagChannel, nav.TagBack, nav.TagMenu}
	for _, key := range keys {
		if err := reg.RegisterCallback(key, a.handlePress); err != nil {
			return err
		}
	}
	reg.SetCallbackNotFound(func(c tele.Context) error {
		return tghelpers.RespondAlert(c, textUnknownCallback)
	})
	return nil
}

func (a *App) handleStart(c tele.Context) error {
	ctx := tghelpers.BuildContext(c)
	resp := a.ctrl.Start(ctx, c.Sender().ID)
	return a.present(c, resp, true)
}

// handlePress serves every menu button. The full action token is rebuilt
// from the callback key and payload halves before it reaches the controller.
func (a *App) handlePress(c tele.Context) error {
	ctx := tghelpers.BuildContext(c)
	key, payload := callbacks.ParseCallbackData(c.Callback())
	token := nav.JoinToken(key, payload)

	resp := a.ctrl.Press(ctx, c.Sender().ID, token)
	return a.present(c, resp, false)
}

func (a *App) handleStats(c tele.Context) error {
	if a.stats == nil {
		return tghelpers.SendText(c, textStatsDisabled)
	}
	ctx := tghelpers.BuildContext(c)
	st, err := a.stats.Stats(ctx)
	if err != nil {
		return tghelpers.SendText(c, textStatsFailed)
	}
	text := fmt.Sprintf(
		"Convites emitidos: %d (últimas 24h: %d)\nAcessos negados: %d\nUsuário mais ativo: %d",
		st.Invites, st.LastDay, st.Denials, st.TopUserID,
	)
	return tghelpers.SendText(c, text)
}

// present delivers a controller response. fresh indicates the interaction
// came from a command, so screens open as new messages instead of editing
// the pressed one.
func (a *App) present(c tele.Context, resp nav.Response, fresh bool) error {
	switch resp.Kind {
	case nav.RespReply:
		return tghelpers.SendText(c, resp.Text)

	case nav.RespAlert:
		return tghelpers.RespondAlert(c, resp.Text)

	case nav.RespScreen:
		markup := screenKeyboard(resp.Screen)
		if fresh {
			return tghelpers.SendText(c, resp.Screen.Text, markup)
		}
		_ = c.Respond()
		return tghelpers.EditOrSendText(c, resp.Screen.Text, markup)

	case nav.RespInvite:
		_ = c.Respond()
		markup := screenKeyboard(resp.Screen)
		if resp.Invite != nil && resp.Invite.PhotoPath != "" {
			defer os.Remove(resp.Invite.PhotoPath)
			photo := &tele.Photo{
				File:    tele.FromDisk(resp.Invite.PhotoPath),
				Caption: resp.Screen.Text,
			}
			return tghelpers.SendPhoto(c, photo, markup)
		}
		return tghelpers.EditOrSendText(c, resp.Screen.Text, markup)
	}
	return nil
}

// screenKeyboard converts a rendered screen into an inline keyboard, one
// button per row, preserving catalog order.
func screenKeyboard(s *nav.Screen) *tele.ReplyMarkup {
	btns := make([]keyboard.InlineBtn, 0, len(s.Buttons))
	for _, b := range s.Buttons {
		if b.URL != "" {
			btns = append(btns, keyboard.InlineBtn{Text: b.Label, URL: b.URL})
			continue
		}
		key, payload := nav.SplitToken(b.Token)
		btns = append(btns, keyboard.InlineBtn{Text: b.Label, Unique: key, Data: payload})
	}
	return keyboard.InlineButtons(btns)
}
