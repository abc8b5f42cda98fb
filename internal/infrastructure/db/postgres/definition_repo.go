package pgdb

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/arkade-os/ledger-assets/internal/core/domain"
)

const (
	upsertDefinitionQuery = `
INSERT INTO asset_definition (id, domain, owned_by, payload, updated_at)
VALUES ($1, $2, $3, $4, $5)
ON CONFLICT (id) DO UPDATE SET
    domain = excluded.domain,
    owned_by = excluded.owned_by,
    payload = excluded.payload,
    updated_at = excluded.updated_at`

	selectDefinitionQuery = `
SELECT id, domain, owned_by, payload, updated_at FROM asset_definition WHERE id = $1`

	selectAllDefinitionsQuery = `
SELECT id, domain, owned_by, payload, updated_at FROM asset_definition ORDER BY id COLLATE "C"`

	selectDefinitionsByDomainQuery = `
SELECT id, domain, owned_by, payload, updated_at FROM asset_definition
WHERE domain = $1 ORDER BY id COLLATE "C"`
)

type definitionRepository struct {
	db *sql.DB
}

func NewDefinitionRepository(config ...interface{}) (domain.AssetDefinitionRepository, error) {
	if len(config) != 1 {
		return nil, fmt.Errorf("invalid config")
	}
	db, ok := config[0].(*sql.DB)
	if !ok {
		return nil, fmt.Errorf("cannot open definition repository: invalid config")
	}

	return &definitionRepository{db}, nil
}

func (r *definitionRepository) UpsertDefinitions(
	ctx context.Context, definitions []domain.DefinitionRecord,
) error {
	if len(definitions) <= 0 {
		return nil
	}

	return execTx(ctx, r.db, func(tx *sql.Tx) error {
		stmt, err := tx.PrepareContext(ctx, upsertDefinitionQuery)
		if err != nil {
			return err
		}
		// nolint
		defer stmt.Close()

		for _, def := range definitions {
			if _, err := stmt.ExecContext(
				ctx, def.Id, def.Domain, def.OwnedBy, def.Payload, def.UpdatedAt,
			); err != nil {
				return fmt.Errorf("failed to upsert asset definition %s: %w", def.Id, err)
			}
		}
		return nil
	})
}

func (r *definitionRepository) GetDefinition(
	ctx context.Context, id string,
) (*domain.DefinitionRecord, error) {
	row := r.db.QueryRowContext(ctx, selectDefinitionQuery, id)
	def, err := scanDefinition(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get asset definition: %w", err)
	}
	return def, nil
}

func (r *definitionRepository) ListDefinitions(
	ctx context.Context, domainName string,
) ([]domain.DefinitionRecord, error) {
	var (
		rows *sql.Rows
		err  error
	)
	if len(domainName) > 0 {
		rows, err = r.db.QueryContext(ctx, selectDefinitionsByDomainQuery, domainName)
	} else {
		rows, err = r.db.QueryContext(ctx, selectAllDefinitionsQuery)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to list asset definitions: %w", err)
	}
	// nolint
	defer rows.Close()

	definitions := make([]domain.DefinitionRecord, 0)
	for rows.Next() {
		def, err := scanDefinition(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to list asset definitions: %w", err)
		}
		definitions = append(definitions, *def)
	}
	return definitions, rows.Err()
}

func (r *definitionRepository) Close() {
	_ = r.db.Close()
}

type scanner interface {
	Scan(dest ...any) error
}

func scanDefinition(row scanner) (*domain.DefinitionRecord, error) {
	var def domain.DefinitionRecord
	if err := row.Scan(
		&def.Id, &def.Domain, &def.OwnedBy, &def.Payload, &def.UpdatedAt,
	); err != nil {
		return nil, err
	}
	return &def, nil
}
