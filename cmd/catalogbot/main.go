package main

import (
	"context"
	"flag"
	"fmt"
	"log"

	"catalogbot/app"
	"catalogbot/core/bootstrap"
	"catalogbot/core/buildinfo"
	corecmd "catalogbot/core/cmd"
	coreconfig "catalogbot/core/config"
)

type configCarrier struct {
	cfg *coreconfig.Config
}

func (c configCarrier) CoreConfig() *coreconfig.Config { return c.cfg }

func main() {
	showVersion := flag.Bool("version", false, "print build info and exit")
	flag.Parse()
	if *showVersion {
		fmt.Printf("catalogbot %s (%s) %s\n", buildinfo.Version, buildinfo.Commit, buildinfo.Date)
		return
	}

	err := corecmd.Run(corecmd.Options{
		DefaultConfigPath: "config.yaml",
		LoadConfig: func(path string) (corecmd.ConfigCarrier, error) {
			cfg, err := coreconfig.Load(path)
			if err != nil {
				return nil, err
			}
			return configCarrier{cfg: cfg}, nil
		},
		Bootstrap: func(cc corecmd.ConfigCarrier) (corecmd.TelegramApp, error) {
			cfg := cc.CoreConfig()
			boot, err := bootstrap.Run(bootstrap.Options{Config: cfg})
			if err != nil {
				return nil, err
			}
			return app.New(context.Background(), cfg, boot)
		},
	})
	if err != nil {
		log.Fatalf("catalogbot: %v", err)
	}
}
