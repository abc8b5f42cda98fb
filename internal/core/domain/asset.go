package domain

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/arkade-os/ledger-assets/pkg/ledger-lib/asset"
)

// DefinitionRecord is the local copy of a ledger confirmed asset definition.
// Payload holds the ledger JSON of the definition.
type DefinitionRecord struct {
	Id        string
	Domain    string `badgerhold:"index"`
	OwnedBy   string
	Payload   []byte
	UpdatedAt int64
}

// AssetRecord is the local copy of an account balance.
// Payload holds the ledger JSON of the asset.
type AssetRecord struct {
	Id           string
	DefinitionId string `badgerhold:"index"`
	AccountId    string `badgerhold:"index"`
	Payload      []byte
	UpdatedAt    int64
}

func NewDefinitionRecord(def asset.AssetDefinition, updatedAt time.Time) (*DefinitionRecord, error) {
	payload, err := json.Marshal(def)
	if err != nil {
		return nil, fmt.Errorf("failed to encode asset definition %s: %w", def.Id(), err)
	}
	return &DefinitionRecord{
		Id:        def.Id().String(),
		Domain:    def.Id().Domain().String(),
		OwnedBy:   def.OwnedBy().String(),
		Payload:   payload,
		UpdatedAt: updatedAt.Unix(),
	}, nil
}

func (r DefinitionRecord) Definition() (*asset.AssetDefinition, error) {
	var def asset.AssetDefinition
	if err := json.Unmarshal(r.Payload, &def); err != nil {
		return nil, fmt.Errorf("failed to decode asset definition %s: %w", r.Id, err)
	}
	return &def, nil
}

func NewAssetRecord(a asset.Asset, updatedAt time.Time) (*AssetRecord, error) {
	payload, err := json.Marshal(a)
	if err != nil {
		return nil, fmt.Errorf("failed to encode asset %s: %w", a.Id(), err)
	}
	return &AssetRecord{
		Id:           a.Id().String(),
		DefinitionId: a.Id().DefinitionId().String(),
		AccountId:    a.Id().AccountId().String(),
		Payload:      payload,
		UpdatedAt:    updatedAt.Unix(),
	}, nil
}

func (r AssetRecord) Asset() (*asset.Asset, error) {
	var a asset.Asset
	if err := json.Unmarshal(r.Payload, &a); err != nil {
		return nil, fmt.Errorf("failed to decode asset %s: %w", r.Id, err)
	}
	return &a, nil
}
