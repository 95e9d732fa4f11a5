package app

import (
	"context"
	"fmt"

	log "github.com/sirupsen/logrus"

	"lexitag/internal/config"
	"lexitag/internal/dictfile"
	"lexitag/internal/models"
	"lexitag/internal/services"
	"lexitag/internal/session"
	"lexitag/internal/store"
	"lexitag/internal/store/memory"
	"lexitag/internal/store/sqlite"
)

// App wires configuration, shared services, and the session manager.
type App struct {
	Config   *config.Config
	Datasets *services.DatasetService
	Sessions *session.Manager

	newStore session.StoreFactory
}

func NewApp(cfg *config.Config) (*App, error) {
	app := &App{Config: cfg}

	if err := app.initStoreFactory(); err != nil {
		return nil, err
	}
	app.initServices()
	app.initSessions()

	log.WithField("backend", cfg.Store.Backend).Debug("application initialized")
	return app, nil
}

func (a *App) initStoreFactory() error {
	switch a.Config.Store.Backend {
	case config.BackendMemory:
		a.newStore = func(ctx context.Context) (store.DictionaryStore, error) {
			return memory.New(), nil
		}
	case config.BackendSQLite:
		a.newStore = func(ctx context.Context) (store.DictionaryStore, error) {
			return sqlite.New(ctx, "")
		}
	default:
		return fmt.Errorf("unknown store backend %q", a.Config.Store.Backend)
	}
	return nil
}

func (a *App) initServices() {
	a.Datasets = services.NewDatasetService()
}

func (a *App) initSessions() {
	a.Sessions = session.NewManager(a.Config.SessionTTL(), a.newStore, a.Config.Dictionary.Seed)
}

// NewDictionary builds a standalone dictionary service for one CLI
// invocation. With a dictPath it loads that file; otherwise it starts from
// the built-in seed categories (or empty when seeding is disabled).
func (a *App) NewDictionary(ctx context.Context, dictPath string) (*services.DictionaryService, error) {
	st, err := a.newStore(ctx)
	if err != nil {
		return nil, fmt.Errorf("create dictionary store: %w", err)
	}
	dict := services.NewDictionaryService(st)

	if dictPath == "" {
		if a.Config.Dictionary.Seed {
			if err := dict.Seed(ctx); err != nil {
				return nil, err
			}
		}
		return dict, nil
	}

	cats, err := dictfile.Load(dictPath)
	if err != nil {
		return nil, err
	}
	if len(cats) == 0 {
		return nil, fmt.Errorf("dictionary file %q defines no categories: %w", dictPath, models.ErrEmptyDictionary)
	}
	for _, cat := range cats {
		if _, err := dict.AddCategory(ctx, cat.Name, cat.Keywords); err != nil {
			return nil, err
		}
	}
	return dict, nil
}
