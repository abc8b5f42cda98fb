package asset

import (
	"encoding/json"
	"fmt"

	"github.com/arkade-os/ledger-assets/pkg/ledger-lib/numeric"
)

// AssetType is the kind of value held by the assets of a definition: either a numeric
// quantity bounded by a NumericSpec, or a Store of structured metadata.
// The zero value is an unconstrained numeric type.
type AssetType struct {
	store bool
	spec  numeric.NumericSpec
}

func NumericType(spec numeric.NumericSpec) AssetType {
	return AssetType{spec: spec}
}

func StoreType() AssetType {
	return AssetType{store: true}
}

func (t AssetType) IsStore() bool {
	return t.store
}

// NumericSpec returns the numeric spec of a numeric type; ok is false for Store.
func (t AssetType) NumericSpec() (spec numeric.NumericSpec, ok bool) {
	if t.store {
		return numeric.NumericSpec{}, false
	}
	return t.spec, true
}

func (t AssetType) String() string {
	if t.store {
		return "Store"
	}
	return fmt.Sprintf("Numeric(%s)", t.spec)
}

func (t AssetType) MarshalJSON() ([]byte, error) {
	if t.store {
		return json.Marshal("Store")
	}
	return json.Marshal(map[string]numeric.NumericSpec{"Numeric": t.spec})
}

func (t *AssetType) UnmarshalJSON(buf []byte) error {
	var s string
	if err := json.Unmarshal(buf, &s); err == nil {
		if s != "Store" {
			return valueErr(s, "unknown asset type %q", s)
		}
		*t = StoreType()
		return nil
	}

	var v map[string]json.RawMessage
	if err := json.Unmarshal(buf, &v); err != nil {
		return valueErr(string(buf), "invalid asset type: %s", err)
	}
	raw, ok := v["Numeric"]
	if !ok || len(v) != 1 {
		return valueErr(string(buf), "asset type should be `Store` or `{\"Numeric\": spec}`")
	}
	var spec numeric.NumericSpec
	if err := json.Unmarshal(raw, &spec); err != nil {
		return err
	}
	*t = NumericType(spec)
	return nil
}
