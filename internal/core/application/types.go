package application

import (
	"context"

	"github.com/arkade-os/ledger-assets/pkg/errors"
	"github.com/arkade-os/ledger-assets/pkg/ledger-lib/asset"
	"github.com/arkade-os/ledger-assets/pkg/ledger-lib/numeric"
)

type Service interface {
	// MirrorDefinitions stores a JSON array of ledger confirmed asset definitions.
	// Every definition is validated first; a single invalid one rejects the whole batch.
	MirrorDefinitions(ctx context.Context, payload []byte) (int, errors.Error)
	GetDefinition(ctx context.Context, id string) (*asset.AssetDefinition, errors.Error)
	ListDefinitions(ctx context.Context, domain string) ([]asset.AssetDefinition, errors.Error)
	// MirrorAssets stores a JSON array of ledger assets, with the same all-or-nothing rule
	// as MirrorDefinitions.
	MirrorAssets(ctx context.Context, payload []byte) (int, errors.Error)
	GetAsset(ctx context.Context, id string) (*asset.Asset, errors.Error)
	ListAssets(ctx context.Context, filter AssetFilter) ([]asset.Asset, errors.Error)
	NewDefinition(req NewDefinitionRequest) (*asset.NewAssetDefinition, errors.Error)
	ParseValue(kind ValueKind, raw string) (numeric.Numeric, errors.Error)
	Close()
}

// AssetFilter selects the assets of one account or of one definition.
// Exactly one field must be set.
type AssetFilter struct {
	AccountId    string
	DefinitionId string
}

// NewDefinitionRequest holds the user input for a registration request.
// A nil Mintable falls back to the configured default.
type NewDefinitionRequest struct {
	Id       string
	Type     asset.AssetType
	Mintable *asset.Mintable
	Logo     string
}

// ValueKind is the source type of a numeric value.
type ValueKind string

const (
	ValueKindUint32  ValueKind = "uint32"
	ValueKindUint64  ValueKind = "uint64"
	ValueKindUint128 ValueKind = "uint128"
	ValueKindFloat   ValueKind = "float"
	ValueKindDecimal ValueKind = "decimal"
)
