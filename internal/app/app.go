package app

import (
	"valkeys/internal/domain"
	"valkeys/internal/store"
)

// App bundles the configuration and the key-file store for the commands.
type App struct {
	Config Config
	Store  domain.RecordStore
}

// Wire constructs the dependency graph from cfg.
func Wire(cfg Config) *App {
	return &App{
		Config: cfg,
		Store:  store.NewKeyFile(cfg.KeyFile),
	}
}
