package bootstrap

import (
	"testing"

	"github.com/jmoiron/sqlx"

	coreconfig "catalogbot/core/config"
	coredatabase "catalogbot/core/database"
)

func noopLoggerInit(*coreconfig.Config) error { return nil }

func TestRunSkipsDatabaseWhenDisabled(t *testing.T) {
	cfg := &coreconfig.Config{}
	cfg.Database.Enabled = false

	connected := false
	res, err := Run(Options{
		Config:     cfg,
		LoggerInit: noopLoggerInit,
		Connect: func(coredatabase.Config) (*sqlx.DB, error) {
			connected = true
			return nil, nil
		},
	})
	if err != nil {
		t.Fatalf("run: %v", err)
	}
	if connected {
		t.Fatal("connect must not run with the database disabled")
	}
	if res.DB != nil {
		t.Fatalf("db = %v, want nil", res.DB)
	}
}

func TestRunMapsDatabaseSettings(t *testing.T) {
	cfg := &coreconfig.Config{}
	cfg.Database = coreconfig.DatabaseConfig{
		Enabled:        true,
		Host:           "db.local",
		Port:           "5433",
		User:           "bot",
		Password:       "secret",
		Name:           "catalog",
		SSLMode:        "disable",
		MaxConnections: 7,
	}

	var connectCfg, migrateCfg coredatabase.Config
	res, err := Run(Options{
		Config:     cfg,
		LoggerInit: noopLoggerInit,
		Connect: func(c coredatabase.Config) (*sqlx.DB, error) {
			connectCfg = c
			return &sqlx.DB{}, nil
		},
		Migrate: func(c coredatabase.Config) error {
			migrateCfg = c
			return nil
		},
	})
	if err != nil {
		t.Fatalf("run: %v", err)
	}
	if res.DB == nil {
		t.Fatal("expected db handle")
	}

	want := coredatabase.Config{
		Host:           "db.local",
		Port:           "5433",
		User:           "bot",
		Password:       "secret",
		Name:           "catalog",
		SSLMode:        "disable",
		MaxConnections: 7,
	}
	if connectCfg != want {
		t.Fatalf("connect cfg = %+v, want %+v", connectCfg, want)
	}
	if migrateCfg != want {
		t.Fatalf("migrate cfg = %+v, want %+v", migrateCfg, want)
	}
}

func TestRunRequiresConfig(t *testing.T) {
	if _, err := Run(Options{LoggerInit: noopLoggerInit}); err == nil {
		t.Fatal("expected error for nil config")
	}
}
