package asset

import (
	"encoding/json"

	"github.com/arkade-os/ledger-assets/pkg/ledger-lib/metadata"
	"github.com/shopspring/decimal"
)

// Asset is the balance of an account for one asset definition.
//
// The kind of value must match the AssetType of the definition. Asset does not know its
// definition, so that consistency is checked by the ledger.
type Asset struct {
	id    AssetId
	value AssetValue
}

// NewAsset creates a numeric asset. Store values can only be mirrored from the ledger, not
// built locally.
func NewAsset(id AssetId, value AssetValue) (*Asset, error) {
	if err := checkWritableValue(value); err != nil {
		return nil, err
	}
	return &Asset{id: id, value: value}, nil
}

func (a *Asset) Id() AssetId {
	return a.id
}

func (a *Asset) SetId(id AssetId) {
	a.id = id
}

// Value returns the raw value variant.
func (a *Asset) Value() AssetValue {
	return a.value
}

// SetValue replaces the value of the asset. Store values are read-only.
func (a *Asset) SetValue(value AssetValue) error {
	if err := checkWritableValue(value); err != nil {
		return err
	}
	a.value = value
	return nil
}

// Quantity returns the exact numeric value of the asset.
func (a *Asset) Quantity() (decimal.Decimal, error) {
	switch v := a.value.(type) {
	case NumericValue:
		return v.Value.Decimal(), nil
	case StoreValue:
		return decimal.Decimal{}, valueErr(
			a.id.String(), "asset %s holds a store value, not a quantity", a.id,
		)
	default:
		return decimal.Decimal{}, valueErr(a.id.String(), "missing asset value")
	}
}

// Store returns the structured data of a Store asset. Reading store values is not supported
// yet.
func (a *Asset) Store() (metadata.Metadata, error) {
	switch a.value.(type) {
	case StoreValue:
		return metadata.Metadata{}, unsupportedErr(
			"read_store", "reading store values is not supported yet",
		)
	case NumericValue:
		return metadata.Metadata{}, valueErr(
			a.id.String(), "asset %s holds a numeric value, not a store", a.id,
		)
	default:
		return metadata.Metadata{}, valueErr(a.id.String(), "missing asset value")
	}
}

type assetJSON struct {
	Id    *AssetId        `json:"id"`
	Value json.RawMessage `json:"value"`
}

func (a Asset) MarshalJSON() ([]byte, error) {
	value, err := marshalAssetValue(a.value)
	if err != nil {
		return nil, err
	}
	return json.Marshal(assetJSON{Id: &a.id, Value: value})
}

// UnmarshalJSON decodes an asset mirrored from the ledger. Both value variants are accepted.
func (a *Asset) UnmarshalJSON(buf []byte) error {
	var v assetJSON
	if err := json.Unmarshal(buf, &v); err != nil {
		return err
	}
	if v.Id == nil {
		return valueErr(string(buf), "missing asset id")
	}
	if len(v.Value) <= 0 {
		return valueErr(string(buf), "missing asset value")
	}
	value, err := unmarshalAssetValue(v.Value)
	if err != nil {
		return err
	}
	a.id = *v.Id
	a.value = value
	return nil
}

func checkWritableValue(value AssetValue) error {
	switch value.(type) {
	case NumericValue:
		return nil
	case StoreValue:
		return unsupportedErr("write_store", "metadata values are currently read-only")
	default:
		return valueErr("", "unrecognised value for asset")
	}
}
