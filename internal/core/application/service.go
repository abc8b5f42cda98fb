package application

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"github.com/arkade-os/ledger-assets/internal/core/domain"
	"github.com/arkade-os/ledger-assets/internal/core/ports"
	"github.com/arkade-os/ledger-assets/pkg/errors"
	"github.com/arkade-os/ledger-assets/pkg/ledger-lib/asset"
	"github.com/arkade-os/ledger-assets/pkg/ledger-lib/identity"
	"github.com/arkade-os/ledger-assets/pkg/ledger-lib/numeric"
	log "github.com/sirupsen/logrus"
	"lukechampine.com/uint128"
)

type service struct {
	repoManager     ports.RepoManager
	defaultMintable asset.Mintable
}

func NewService(repoManager ports.RepoManager, defaultMintable asset.Mintable) (Service, error) {
	if repoManager == nil {
		return nil, fmt.Errorf("missing repo manager")
	}
	if !defaultMintable.IsValid() {
		return nil, fmt.Errorf("invalid default mintable %s", defaultMintable)
	}
	return &service{repoManager, defaultMintable}, nil
}

func (s *service) MirrorDefinitions(ctx context.Context, payload []byte) (int, errors.Error) {
	definitions, err := decodeBatch[asset.AssetDefinition](payload, "asset definitions")
	if err != nil {
		return -1, err
	}

	now := time.Now()
	records := make([]domain.DefinitionRecord, 0, len(definitions))
	for _, def := range definitions {
		record, err := domain.NewDefinitionRecord(def, now)
		if err != nil {
			return -1, toError(err)
		}
		records = append(records, *record)
	}

	if err := s.repoManager.Definitions().UpsertDefinitions(ctx, records); err != nil {
		return -1, toError(err)
	}

	log.Infof("mirrored %d asset definitions", len(records))
	return len(records), nil
}

func (s *service) GetDefinition(
	ctx context.Context, id string,
) (*asset.AssetDefinition, errors.Error) {
	definitionId, err := asset.ParseAssetDefinitionId(id)
	if err != nil {
		return nil, toError(err)
	}

	record, err := s.repoManager.Definitions().GetDefinition(ctx, definitionId.String())
	if err != nil {
		return nil, toError(err)
	}
	if record == nil {
		return nil, errors.NOT_FOUND.New("asset definition %s not found", definitionId).
			WithMetadata(errors.NotFoundMetadata{Id: definitionId.String()})
	}

	def, err := record.Definition()
	if err != nil {
		return nil, toError(err)
	}
	return def, nil
}

func (s *service) ListDefinitions(
	ctx context.Context, domainName string,
) ([]asset.AssetDefinition, errors.Error) {
	if len(domainName) > 0 {
		domainId, err := identity.ParseDomainId(domainName)
		if err != nil {
			return nil, toError(err)
		}
		domainName = domainId.String()
	}

	records, err := s.repoManager.Definitions().ListDefinitions(ctx, domainName)
	if err != nil {
		return nil, toError(err)
	}

	definitions := make([]asset.AssetDefinition, 0, len(records))
	for _, record := range records {
		def, err := record.Definition()
		if err != nil {
			return nil, toError(err)
		}
		definitions = append(definitions, *def)
	}
	log.Debugf("found %d asset definitions", len(definitions))
	return definitions, nil
}

func (s *service) MirrorAssets(ctx context.Context, payload []byte) (int, errors.Error) {
	assets, err := decodeBatch[asset.Asset](payload, "assets")
	if err != nil {
		return -1, err
	}

	now := time.Now()
	records := make([]domain.AssetRecord, 0, len(assets))
	for _, a := range assets {
		record, err := domain.NewAssetRecord(a, now)
		if err != nil {
			return -1, toError(err)
		}
		records = append(records, *record)
	}

	if err := s.repoManager.Assets().UpsertAssets(ctx, records); err != nil {
		return -1, toError(err)
	}

	log.Infof("mirrored %d assets", len(records))
	return len(records), nil
}

func (s *service) GetAsset(ctx context.Context, id string) (*asset.Asset, errors.Error) {
	assetId, err := asset.ParseAssetId(id)
	if err != nil {
		return nil, toError(err)
	}

	record, err := s.repoManager.Assets().GetAsset(ctx, assetId.String())
	if err != nil {
		return nil, toError(err)
	}
	if record == nil {
		return nil, errors.NOT_FOUND.New("asset %s not found", assetId).
			WithMetadata(errors.NotFoundMetadata{Id: assetId.String()})
	}

	a, err := record.Asset()
	if err != nil {
		return nil, toError(err)
	}
	return a, nil
}

func (s *service) ListAssets(ctx context.Context, filter AssetFilter) ([]asset.Asset, errors.Error) {
	var records []domain.AssetRecord
	switch {
	case len(filter.AccountId) > 0 && len(filter.DefinitionId) > 0:
		return nil, errors.VALUE_ERROR.New("filter by either account or definition, not both")
	case len(filter.AccountId) > 0:
		accountId, err := identity.ParseAccountId(filter.AccountId)
		if err != nil {
			return nil, toError(err)
		}
		records, err = s.repoManager.Assets().ListAssetsByAccount(ctx, accountId.String())
		if err != nil {
			return nil, toError(err)
		}
	case len(filter.DefinitionId) > 0:
		definitionId, err := asset.ParseAssetDefinitionId(filter.DefinitionId)
		if err != nil {
			return nil, toError(err)
		}
		records, err = s.repoManager.Assets().ListAssetsByDefinition(ctx, definitionId.String())
		if err != nil {
			return nil, toError(err)
		}
	default:
		return nil, errors.VALUE_ERROR.New("missing account or definition filter")
	}

	assets := make([]asset.Asset, 0, len(records))
	for _, record := range records {
		a, err := record.Asset()
		if err != nil {
			return nil, toError(err)
		}
		assets = append(assets, *a)
	}
	log.Debugf("found %d assets", len(assets))
	return assets, nil
}

func (s *service) NewDefinition(
	req NewDefinitionRequest,
) (*asset.NewAssetDefinition, errors.Error) {
	mintable := s.defaultMintable
	if req.Mintable != nil {
		mintable = *req.Mintable
	}

	opts := []asset.DefinitionOption{asset.WithMintable(mintable)}
	if len(req.Logo) > 0 {
		opts = append(opts, asset.WithLogo(req.Logo))
	}

	def, err := asset.NewDefinitionFromString(req.Id, req.Type, opts...)
	if err != nil {
		return nil, toError(err)
	}
	return def, nil
}

func (s *service) ParseValue(kind ValueKind, raw string) (numeric.Numeric, errors.Error) {
	return ParseValue(kind, raw)
}

// ParseValue converts raw, read as a value of the given kind, into an exact Numeric.
func ParseValue(kind ValueKind, raw string) (numeric.Numeric, errors.Error) {
	var (
		n   numeric.Numeric
		err error
	)
	switch kind {
	case ValueKindUint32:
		var v uint64
		if v, err = strconv.ParseUint(raw, 10, 32); err == nil {
			n = numeric.FromUint32(uint32(v))
		}
	case ValueKindUint64:
		var v uint64
		if v, err = strconv.ParseUint(raw, 10, 64); err == nil {
			n = numeric.FromUint64(v)
		}
	case ValueKindUint128:
		var v uint128.Uint128
		if v, err = uint128.FromString(raw); err == nil {
			n = numeric.FromUint128(v)
		}
	case ValueKindFloat:
		var f float64
		if f, err = strconv.ParseFloat(raw, 64); err == nil {
			n, err = numeric.FromFloat64(f)
		}
	case ValueKindDecimal:
		n, err = numeric.Parse(raw)
	default:
		return numeric.Numeric{}, errors.VALUE_ERROR.New("unknown value kind %q", kind).
			WithMetadata(errors.ValueMetadata{Input: string(kind)})
	}
	if err != nil {
		coded := toError(err)
		if coded.Code() == errors.INTERNAL_ERROR.Code {
			return numeric.Numeric{}, errors.VALUE_ERROR.New("invalid %s value %q", kind, raw).
				WithMetadata(errors.ValueMetadata{Input: raw})
		}
		return numeric.Numeric{}, coded
	}
	return n, nil
}

func (s *service) Close() {
	s.repoManager.Close()
}
