package badgerdb

import (
	"context"
	"errors"
	"fmt"
	"path/filepath"
	"time"

	"github.com/arkade-os/ledger-assets/internal/core/domain"
	"github.com/dgraph-io/badger/v4"
	"github.com/timshannon/badgerhold/v4"
)

const definitionStoreDir = "definitions"

type definitionRepository struct {
	store *badgerhold.Store
}

func NewDefinitionRepository(config ...interface{}) (domain.AssetDefinitionRepository, error) {
	if len(config) != 2 {
		return nil, fmt.Errorf("invalid config")
	}
	baseDir, ok := config[0].(string)
	if !ok {
		return nil, fmt.Errorf("invalid base directory")
	}
	var logger badger.Logger
	if config[1] != nil {
		logger, ok = config[1].(badger.Logger)
		if !ok {
			return nil, fmt.Errorf("invalid logger")
		}
	}

	var dir string
	if len(baseDir) > 0 {
		dir = filepath.Join(baseDir, definitionStoreDir)
	}
	store, err := createDB(dir, logger)
	if err != nil {
		return nil, fmt.Errorf("failed to open definition store: %s", err)
	}

	return &definitionRepository{store}, nil
}

func (r *definitionRepository) UpsertDefinitions(
	ctx context.Context, definitions []domain.DefinitionRecord,
) error {
	if len(definitions) <= 0 {
		return nil
	}

	upsertFn := func() error {
		return r.store.Badger().Update(func(tx *badger.Txn) error {
			for _, def := range definitions {
				if err := r.store.TxUpsert(tx, def.Id, def); err != nil {
					return err
				}
			}
			return nil
		})
	}

	if err := upsertFn(); err != nil {
		if errors.Is(err, badger.ErrConflict) {
			attempts := 1
			for errors.Is(err, badger.ErrConflict) && attempts <= maxRetries {
				time.Sleep(100 * time.Millisecond)
				err = upsertFn()
				attempts++
			}
		}
		if err != nil {
			return fmt.Errorf("failed to upsert asset definitions: %w", err)
		}
	}
	return nil
}

func (r *definitionRepository) GetDefinition(
	ctx context.Context, id string,
) (*domain.DefinitionRecord, error) {
	var def domain.DefinitionRecord
	err := r.store.Get(id, &def)
	if errors.Is(err, badgerhold.ErrNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get asset definition: %w", err)
	}
	return &def, nil
}

func (r *definitionRepository) ListDefinitions(
	ctx context.Context, domainName string,
) ([]domain.DefinitionRecord, error) {
	var query *badgerhold.Query
	if len(domainName) > 0 {
		query = badgerhold.Where("Domain").Eq(domainName).Index("Domain")
	}

	definitions := make([]domain.DefinitionRecord, 0)
	if err := r.store.Find(&definitions, query); err != nil {
		return nil, fmt.Errorf("failed to list asset definitions: %w", err)
	}
	sortDefinitions(definitions)
	return definitions, nil
}

func (r *definitionRepository) Close() {
	// nolint:all
	r.store.Close()
}
