package db

import (
	"database/sql"
	"embed"
	"errors"
	"fmt"
	"path/filepath"

	"github.com/arkade-os/ledger-assets/internal/core/domain"
	"github.com/arkade-os/ledger-assets/internal/core/ports"
	badgerdb "github.com/arkade-os/ledger-assets/internal/infrastructure/db/badger"
	pgdb "github.com/arkade-os/ledger-assets/internal/infrastructure/db/postgres"
	sqlitedb "github.com/arkade-os/ledger-assets/internal/infrastructure/db/sqlite"
	"github.com/golang-migrate/migrate/v4"
	migratepg "github.com/golang-migrate/migrate/v4/database/postgres"
	sqlitemigrate "github.com/golang-migrate/migrate/v4/database/sqlite"
	"github.com/golang-migrate/migrate/v4/source/iofs"
	log "github.com/sirupsen/logrus"
)

//go:embed sqlite/migration/*
var migrations embed.FS

//go:embed postgres/migration/*
var pgMigration embed.FS

var (
	definitionStoreTypes = map[string]func(...interface{}) (domain.AssetDefinitionRepository, error){
		"badger":   badgerdb.NewDefinitionRepository,
		"sqlite":   sqlitedb.NewDefinitionRepository,
		"postgres": pgdb.NewDefinitionRepository,
	}
	assetStoreTypes = map[string]func(...interface{}) (domain.AssetRepository, error){
		"badger":   badgerdb.NewAssetRepository,
		"sqlite":   sqlitedb.NewAssetRepository,
		"postgres": pgdb.NewAssetRepository,
	}
)

const (
	sqliteDbFile = "sqlite.db"
)

// ServiceConfig selects the store backing the local mirror.
//
// DataStoreConfig depends on DataStoreType:
//   - badger: base directory (empty for in-memory) and an optional badger.Logger
//   - sqlite: base directory
//   - postgres: DSN and the auto-create flag
type ServiceConfig struct {
	DataStoreType   string
	DataStoreConfig []interface{}
}

type service struct {
	definitionStore domain.AssetDefinitionRepository
	assetStore      domain.AssetRepository
}

func NewService(config ServiceConfig) (ports.RepoManager, error) {
	definitionStoreFactory, ok := definitionStoreTypes[config.DataStoreType]
	if !ok {
		return nil, fmt.Errorf("invalid data store type: %s", config.DataStoreType)
	}
	assetStoreFactory, ok := assetStoreTypes[config.DataStoreType]
	if !ok {
		return nil, fmt.Errorf("invalid data store type: %s", config.DataStoreType)
	}

	var definitionStore domain.AssetDefinitionRepository
	var assetStore domain.AssetRepository
	var err error

	switch config.DataStoreType {
	case "badger":
		definitionStore, err = definitionStoreFactory(config.DataStoreConfig...)
		if err != nil {
			return nil, fmt.Errorf("failed to open definition store: %s", err)
		}
		assetStore, err = assetStoreFactory(config.DataStoreConfig...)
		if err != nil {
			definitionStore.Close()
			return nil, fmt.Errorf("failed to open asset store: %s", err)
		}

	case "postgres":
		if len(config.DataStoreConfig) != 2 {
			return nil, fmt.Errorf("invalid data store config for postgres")
		}

		dsn, ok := config.DataStoreConfig[0].(string)
		if !ok {
			return nil, fmt.Errorf("invalid DSN for postgres")
		}

		autoCreate, ok := config.DataStoreConfig[1].(bool)
		if !ok {
			return nil, fmt.Errorf("invalid autocreate flag for postgres")
		}

		db, err := pgdb.OpenDb(dsn, autoCreate)
		if err != nil {
			return nil, fmt.Errorf("failed to open postgres db: %s", err)
		}

		pgDriver, err := migratepg.WithInstance(db, &migratepg.Config{})
		if err != nil {
			return nil, fmt.Errorf("failed to init postgres migration driver: %s", err)
		}

		source, err := iofs.New(pgMigration, "postgres/migration")
		if err != nil {
			return nil, fmt.Errorf("failed to embed postgres migrations: %s", err)
		}

		m, err := migrate.NewWithInstance("iofs", source, "postgres", pgDriver)
		if err != nil {
			return nil, fmt.Errorf("failed to create postgres migration instance: %s", err)
		}

		if err := m.Up(); err != nil && !errors.Is(err, migrate.ErrNoChange) {
			return nil, fmt.Errorf("failed to run postgres migrations: %s", err)
		}

		definitionStore, assetStore, err = openSqlStores(
			db, definitionStoreFactory, assetStoreFactory,
		)
		if err != nil {
			return nil, err
		}

	case "sqlite":
		if len(config.DataStoreConfig) != 1 {
			return nil, fmt.Errorf("invalid data store config")
		}

		baseDir, ok := config.DataStoreConfig[0].(string)
		if !ok {
			return nil, fmt.Errorf("invalid base directory")
		}

		dbFile := filepath.Join(baseDir, sqliteDbFile)
		db, err := sqlitedb.OpenDb(dbFile)
		if err != nil {
			return nil, fmt.Errorf("failed to open db: %s", err)
		}

		driver, err := sqlitemigrate.WithInstance(db, &sqlitemigrate.Config{})
		if err != nil {
			return nil, fmt.Errorf("failed to init driver: %s", err)
		}

		source, err := iofs.New(migrations, "sqlite/migration")
		if err != nil {
			return nil, fmt.Errorf("failed to embed migrations: %s", err)
		}

		m, err := migrate.NewWithInstance("iofs", source, "assetsdb", driver)
		if err != nil {
			return nil, fmt.Errorf("failed to create migration instance: %s", err)
		}

		if err := m.Up(); err != nil && !errors.Is(err, migrate.ErrNoChange) {
			return nil, fmt.Errorf("failed to run migrations: %s", err)
		}

		definitionStore, assetStore, err = openSqlStores(
			db, definitionStoreFactory, assetStoreFactory,
		)
		if err != nil {
			return nil, err
		}
	}

	log.Debugf("opened %s data store", config.DataStoreType)

	return &service{
		definitionStore: definitionStore,
		assetStore:      assetStore,
	}, nil
}

func (s *service) Definitions() domain.AssetDefinitionRepository {
	return s.definitionStore
}

func (s *service) Assets() domain.AssetRepository {
	return s.assetStore
}

func (s *service) Close() {
	s.definitionStore.Close()
	s.assetStore.Close()
}

func openSqlStores(
	db *sql.DB,
	definitionStoreFactory func(...interface{}) (domain.AssetDefinitionRepository, error),
	assetStoreFactory func(...interface{}) (domain.AssetRepository, error),
) (domain.AssetDefinitionRepository, domain.AssetRepository, error) {
	definitionStore, err := definitionStoreFactory(db)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to open definition store: %s", err)
	}
	assetStore, err := assetStoreFactory(db)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to open asset store: %s", err)
	}
	return definitionStore, assetStore, nil
}
