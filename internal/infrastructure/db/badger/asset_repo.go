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

const assetStoreDir = "assets"

type assetRepository struct {
	store *badgerhold.Store
}

func NewAssetRepository(config ...interface{}) (domain.AssetRepository, error) {
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
		dir = filepath.Join(baseDir, assetStoreDir)
	}
	store, err := createDB(dir, logger)
	if err != nil {
		return nil, fmt.Errorf("failed to open asset store: %s", err)
	}

	return &assetRepository{store}, nil
}

func (r *assetRepository) UpsertAssets(ctx context.Context, assets []domain.AssetRecord) error {
	if len(assets) <= 0 {
		return nil
	}

	upsertFn := func() error {
		return r.store.Badger().Update(func(tx *badger.Txn) error {
			for _, asset := range assets {
				if err := r.store.TxUpsert(tx, asset.Id, asset); err != nil {
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
			return fmt.Errorf("failed to upsert assets: %w", err)
		}
	}
	return nil
}

func (r *assetRepository) GetAsset(ctx context.Context, id string) (*domain.AssetRecord, error) {
	var asset domain.AssetRecord
	err := r.store.Get(id, &asset)
	if errors.Is(err, badgerhold.ErrNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get asset: %w", err)
	}
	return &asset, nil
}

func (r *assetRepository) ListAssetsByAccount(
	ctx context.Context, accountId string,
) ([]domain.AssetRecord, error) {
	return r.findAssets(badgerhold.Where("AccountId").Eq(accountId).Index("AccountId"))
}

func (r *assetRepository) ListAssetsByDefinition(
	ctx context.Context, definitionId string,
) ([]domain.AssetRecord, error) {
	return r.findAssets(badgerhold.Where("DefinitionId").Eq(definitionId).Index("DefinitionId"))
}

func (r *assetRepository) Close() {
	// nolint:all
	r.store.Close()
}

func (r *assetRepository) findAssets(query *badgerhold.Query) ([]domain.AssetRecord, error) {
	assets := make([]domain.AssetRecord, 0)
	if err := r.store.Find(&assets, query); err != nil {
		return nil, fmt.Errorf("failed to list assets: %w", err)
	}
	sortAssets(assets)
	return assets, nil
}
