package asset

import (
	"encoding/json"

	"github.com/arkade-os/ledger-assets/pkg/ledger-lib/metadata"
	"github.com/arkade-os/ledger-assets/pkg/ledger-lib/numeric"
)

// AssetValue is the value of an asset: NumericValue or StoreValue.
// Consumers must handle both variants.
type AssetValue interface {
	isAssetValue()
	String() string
}

// NumericValue is an exact quantity.
type NumericValue struct {
	Value numeric.Numeric
}

// StoreValue is structured metadata held by a Store asset.
type StoreValue struct {
	Value metadata.Metadata
}

func NewNumericValue(n numeric.Numeric) AssetValue {
	return NumericValue{n}
}

func (NumericValue) isAssetValue() {}

func (v NumericValue) String() string {
	return v.Value.String()
}

func (StoreValue) isAssetValue() {}

func (v StoreValue) String() string {
	buf, _ := json.Marshal(v.Value)
	return string(buf)
}

type assetValueJSON struct {
	Numeric *numeric.Numeric   `json:"Numeric,omitempty"`
	Store   *metadata.Metadata `json:"Store,omitempty"`
}

func marshalAssetValue(v AssetValue) ([]byte, error) {
	switch v := v.(type) {
	case NumericValue:
		return json.Marshal(assetValueJSON{Numeric: &v.Value})
	case StoreValue:
		return json.Marshal(assetValueJSON{Store: &v.Value})
	default:
		return nil, valueErr("", "missing asset value")
	}
}

func unmarshalAssetValue(buf []byte) (AssetValue, error) {
	var v assetValueJSON
	if err := json.Unmarshal(buf, &v); err != nil {
		return nil, err
	}
	switch {
	case v.Numeric != nil && v.Store == nil:
		return NumericValue{*v.Numeric}, nil
	case v.Store != nil && v.Numeric == nil:
		return StoreValue{*v.Store}, nil
	default:
		return nil, valueErr(
			string(buf), "asset value should be `{\"Numeric\": ...}` or `{\"Store\": ...}`",
		)
	}
}
