package app

import (
	"errors"
	"fmt"
	"path/filepath"

	"github.com/highvelocity/arctuner/internal/application/tuner"
	"github.com/highvelocity/arctuner/internal/catalog"
	"github.com/highvelocity/arctuner/internal/domain"
	"github.com/highvelocity/arctuner/internal/infrastructure/backup"
	"github.com/highvelocity/arctuner/internal/infrastructure/history"
	"github.com/highvelocity/arctuner/internal/infrastructure/pathguard"
	"github.com/highvelocity/arctuner/internal/infrastructure/paths"
	"github.com/highvelocity/arctuner/internal/infrastructure/profile"
	"github.com/highvelocity/arctuner/internal/infrastructure/store"
	"github.com/highvelocity/arctuner/internal/pkg/logger"
	"github.com/highvelocity/arctuner/internal/ports"
)

// Container wires application services with infrastructure adapters.
type Container struct {
	Logger   ports.Logger
	Catalog  *catalog.Catalog
	Resolver ports.PathResolver
	Guard    *pathguard.Guard
	Store    *store.Store
	Backups  *backup.Manager
	Profiles *profile.Manager
	History  ports.HistoryStore
	Service  *tuner.Service

	// ConfigPath is empty when resolution failed; ResolveErr then says
	// why, and commands that need the file prompt for --config.
	ConfigPath string
	ResolveErr error
}

// BuildContainer constructs the dependency graph. configOverride is a
// user-chosen config path (the manual "open" action); its directory
// joins the guard allow list.
func BuildContainer(verbose bool, configOverride string) (*Container, error) {
	log := logger.NewStd(verbose)
	cat := catalog.Default()
	resolver := paths.NewResolver(paths.HostPlatform())

	configPath, resolveErr := resolveConfig(resolver, configOverride)

	c := &Container{
		Logger:     log,
		Catalog:    cat,
		Resolver:   resolver,
		ConfigPath: configPath,
		ResolveErr: resolveErr,
	}

	if configPath == "" {
		// No file to guard or load; catalog-only commands still work.
		c.Guard = pathguard.New()
		c.Store = store.New(cat, c.Guard, nil, log)
		c.Service = &tuner.Service{Store: c.Store, Catalog: cat, Logger: log}
		return c, nil
	}

	c.Guard = pathguard.New(filepath.Dir(configPath))
	c.Backups = backup.NewManager(paths.BackupDirFor(configPath), c.Guard)
	c.Profiles = profile.NewManager(paths.ProfileDirFor(configPath), c.Guard, cat)
	c.History = history.NewSQLiteStore(paths.HistoryDirFor(configPath))
	c.Store = store.New(cat, c.Guard, c.Backups, log)

	if err := c.Store.Load(configPath); err != nil {
		if !errors.Is(err, domain.ErrNotFound) {
			return nil, fmt.Errorf("load config: %w", err)
		}
		// File not created yet: start from an empty document that will
		// be written on the first save.
		c.Store.Bind(configPath)
		log.Warn("config file missing, starting empty", map[string]interface{}{"path": configPath})
	}

	c.Service = &tuner.Service{
		Store:    c.Store,
		Backups:  c.Backups,
		Profiles: c.Profiles,
		History:  c.History,
		Catalog:  cat,
		Logger:   log,
	}
	return c, nil
}

func resolveConfig(resolver *paths.Resolver, override string) (string, error) {
	if override != "" {
		abs, err := filepath.Abs(override)
		if err != nil {
			return "", err
		}
		return abs, nil
	}
	return resolver.ConfigPath()
}
