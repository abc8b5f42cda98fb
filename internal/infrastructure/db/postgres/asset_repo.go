package pgdb

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/arkade-os/ledger-assets/internal/core/domain"
)

const (
	upsertAssetQuery = `
INSERT INTO asset (id, definition_id, account_id, payload, updated_at)
VALUES ($1, $2, $3, $4, $5)
ON CONFLICT (id) DO UPDATE SET
    definition_id = excluded.definition_id,
    account_id = excluded.account_id,
    payload = excluded.payload,
    updated_at = excluded.updated_at`

	selectAssetQuery = `
SELECT id, definition_id, account_id, payload, updated_at FROM asset WHERE id = $1`

	selectAssetsByAccountQuery = `
SELECT id, definition_id, account_id, payload, updated_at FROM asset
WHERE account_id = $1 ORDER BY id COLLATE "C"`

	selectAssetsByDefinitionQuery = `
SELECT id, definition_id, account_id, payload, updated_at FROM asset
WHERE definition_id = $1 ORDER BY id COLLATE "C"`
)

type assetRepository struct {
	db *sql.DB
}

func NewAssetRepository(config ...interface{}) (domain.AssetRepository, error) {
	if len(config) != 1 {
		return nil, fmt.Errorf("invalid config")
	}
	db, ok := config[0].(*sql.DB)
	if !ok {
		return nil, fmt.Errorf("cannot open asset repository: invalid config")
	}

	return &assetRepository{db}, nil
}

func (r *assetRepository) UpsertAssets(ctx context.Context, assets []domain.AssetRecord) error {
	if len(assets) <= 0 {
		return nil
	}

	return execTx(ctx, r.db, func(tx *sql.Tx) error {
		stmt, err := tx.PrepareContext(ctx, upsertAssetQuery)
		if err != nil {
			return err
		}
		// nolint
		defer stmt.Close()

		for _, asset := range assets {
			if _, err := stmt.ExecContext(
				ctx, asset.Id, asset.DefinitionId, asset.AccountId, asset.Payload,
				asset.UpdatedAt,
			); err != nil {
				return fmt.Errorf("failed to upsert asset %s: %w", asset.Id, err)
			}
		}
		return nil
	})
}

func (r *assetRepository) GetAsset(ctx context.Context, id string) (*domain.AssetRecord, error) {
	row := r.db.QueryRowContext(ctx, selectAssetQuery, id)
	asset, err := scanAsset(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get asset: %w", err)
	}
	return asset, nil
}

func (r *assetRepository) ListAssetsByAccount(
	ctx context.Context, accountId string,
) ([]domain.AssetRecord, error) {
	return r.listAssets(ctx, selectAssetsByAccountQuery, accountId)
}

func (r *assetRepository) ListAssetsByDefinition(
	ctx context.Context, definitionId string,
) ([]domain.AssetRecord, error) {
	return r.listAssets(ctx, selectAssetsByDefinitionQuery, definitionId)
}

func (r *assetRepository) Close() {
	_ = r.db.Close()
}

func (r *assetRepository) listAssets(
	ctx context.Context, query string, arg string,
) ([]domain.AssetRecord, error) {
	rows, err := r.db.QueryContext(ctx, query, arg)
	if err != nil {
		return nil, fmt.Errorf("failed to list assets: %w", err)
	}
	// nolint
	defer rows.Close()

	assets := make([]domain.AssetRecord, 0)
	for rows.Next() {
		asset, err := scanAsset(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to list assets: %w", err)
		}
		assets = append(assets, *asset)
	}
	return assets, rows.Err()
}

func scanAsset(row scanner) (*domain.AssetRecord, error) {
	var asset domain.AssetRecord
	if err := row.Scan(
		&asset.Id, &asset.DefinitionId, &asset.AccountId, &asset.Payload, &asset.UpdatedAt,
	); err != nil {
		return nil, err
	}
	return &asset, nil
}
