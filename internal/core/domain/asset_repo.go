package domain

import (
	"context"
)

// Get methods return a nil record and no error when the id is unknown.
// List methods return records sorted by id.

type AssetDefinitionRepository interface {
	UpsertDefinitions(ctx context.Context, definitions []DefinitionRecord) error
	GetDefinition(ctx context.Context, id string) (*DefinitionRecord, error)
	// ListDefinitions returns the definitions of domain, or all of them if domain is empty.
	ListDefinitions(ctx context.Context, domain string) ([]DefinitionRecord, error)
	Close()
}

type AssetRepository interface {
	UpsertAssets(ctx context.Context, assets []AssetRecord) error
	GetAsset(ctx context.Context, id string) (*AssetRecord, error)
	ListAssetsByAccount(ctx context.Context, accountId string) ([]AssetRecord, error)
	ListAssetsByDefinition(ctx context.Context, definitionId string) ([]AssetRecord, error)
	Close()
}
