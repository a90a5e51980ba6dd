// Package app assembles the catalog bot from the core runtime and the
// domain services: catalog, access gate, invite issuer and audit trail.
package app

import (
	"context"
	"fmt"
	"time"

	tele "gopkg.in/telebot.v4"

	"catalogbot/access"
	"catalogbot/audit"
	"catalogbot/catalog"
	"catalogbot/core/bootstrap"
	coreconfig "catalogbot/core/config"
	coretelegram "catalogbot/core/telegram"
	tgrouter "catalogbot/core/telegram/router"
	"catalogbot/invite"
	"catalogbot/nav"
)

const apiCallTimeout = 5 * time.Second

// App carries everything the bot needs at runtime. The controller is wired
// in the OnStart hook because the gate and the photo fetcher need the live
// bot client.
type App struct {
	cfg   *coreconfig.Config
	store *catalog.Store
	trail audit.Recorder
	stats *audit.Store

	ctrl *nav.Controller
}

// New loads the catalog and picks the audit backend. A missing or broken
// catalog file is not fatal: the bot starts and tells users the catalog is
// empty.
func New(ctx context.Context, cfg *coreconfig.Config, boot *bootstrap.Result) (*App, error) {
	if cfg == nil {
		return nil, fmt.Errorf("app: nil config")
	}

	a := &App{
		cfg:   cfg,
		store: catalog.Load(ctx, cfg.Catalog.Path),
		trail: audit.Nop{},
	}
	if boot != nil && boot.DB != nil {
		store := audit.NewStore(boot.DB)
		a.trail = store
		a.stats = store
	}
	return a, nil
}

// CoreConfig exposes the embedded core configuration.
func (a *App) CoreConfig() *coreconfig.Config { return a.cfg }

// TelegramRunOptions builds the runtime wiring: registry, middleware chain
// and routes.
func (a *App) TelegramRunOptions() (coretelegram.RunOptions, error) {
	reg := coretelegram.NewRegistry()
	a.registerCommands(reg)
	if err := a.registerCallbacks(reg); err != nil {
		return coretelegram.RunOptions{}, err
	}

	routes := []coretelegram.Route{
		tgrouter.CallbackRoute(reg, tgrouter.CallbackOptions{}),
	}
	routes = append(routes, tgrouter.CommandRoutes(reg, tgrouter.CommandRouteOptions{
		AdminID: a.cfg.Telegram.AdminID,
	})...)
	routes = append(routes, tgrouter.TextRoutes(reg, tgrouter.TextOptions{})...)

	return coretelegram.RunOptions{
		Config:      a.cfg,
		Registry:    reg,
		Middlewares: coretelegram.DefaultMiddlewares(a.cfg, nil),
		Routes:      routes,
		OnStart: func(ctx context.Context, rt coretelegram.Runtime) error {
			a.wire(rt.Bot)
			return nil
		},
	}, nil
}

func (a *App) wire(bot *tele.Bot) {
	gate := access.NewChannelGate(bot, a.cfg.Telegram.ControlChannelID, apiCallTimeout)
	photos := invite.NewTelegramPhotos(bot, apiCallTimeout)
	issuer := invite.NewIssuer(
		a.cfg.Invite.LinkTemplate,
		time.Duration(a.cfg.Invite.TTLSeconds)*time.Second,
		photos,
	)
	a.ctrl = nav.NewController(a.store, gate, issuer, a.trail)
}
