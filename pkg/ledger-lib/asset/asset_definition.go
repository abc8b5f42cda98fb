package asset

import (
	"encoding/json"
	"fmt"

	"github.com/arkade-os/ledger-assets/pkg/ledger-lib/identity"
	"github.com/arkade-os/ledger-assets/pkg/ledger-lib/ipfs"
	"github.com/arkade-os/ledger-assets/pkg/ledger-lib/metadata"
	"github.com/arkade-os/ledger-assets/pkg/ledger-lib/numeric"
)

// AssetDefinition is a class of assets registered on the ledger, e.g. a currency, while an
// Asset is the balance some account holds of it.
//
// There is no constructor: an AssetDefinition is only obtained by decoding the ledger's
// representation of a confirmed registration, because the owner is assigned by the ledger.
// Use NewAssetDefinition to request a registration.
type AssetDefinition struct {
	id            AssetDefinitionId
	assetType     AssetType
	mintable      Mintable
	logo          *ipfs.Path
	metadata      metadata.Metadata
	ownedBy       identity.AccountId
	totalQuantity numeric.Numeric
}

func (d *AssetDefinition) Id() AssetDefinitionId {
	return d.id
}

func (d *AssetDefinition) Type() AssetType {
	return d.assetType
}

func (d *AssetDefinition) Mintable() Mintable {
	return d.mintable
}

func (d *AssetDefinition) Logo() (ipfs.Path, bool) {
	if d.logo == nil {
		return ipfs.Path{}, false
	}
	return *d.logo, true
}

func (d *AssetDefinition) Metadata() metadata.Metadata {
	return d.metadata
}

// OwnedBy returns the account the ledger assigned as owner at registration.
func (d *AssetDefinition) OwnedBy() identity.AccountId {
	return d.ownedBy
}

// TotalQuantity is the amount in circulation as reported by the ledger.
func (d *AssetDefinition) TotalQuantity() numeric.Numeric {
	return d.totalQuantity
}

func (d AssetDefinition) String() string {
	return fmt.Sprintf(
		"AssetDefinition(%s, %s, %s, owned by %s)", d.id, d.assetType, d.mintable, d.ownedBy,
	)
}

type definitionJSON struct {
	Id            *AssetDefinitionId  `json:"id"`
	Type          *AssetType          `json:"type"`
	Mintable      *Mintable           `json:"mintable"`
	Logo          *ipfs.Path          `json:"logo,omitempty"`
	Metadata      metadata.Metadata   `json:"metadata"`
	OwnedBy       *identity.AccountId `json:"owned_by"`
	TotalQuantity *numeric.Numeric    `json:"total_quantity,omitempty"`
}

func (d AssetDefinition) MarshalJSON() ([]byte, error) {
	return json.Marshal(definitionJSON{
		Id:            &d.id,
		Type:          &d.assetType,
		Mintable:      &d.mintable,
		Logo:          d.logo,
		Metadata:      d.metadata,
		OwnedBy:       &d.ownedBy,
		TotalQuantity: &d.totalQuantity,
	})
}

// UnmarshalJSON decodes a ledger confirmed definition. Every field but logo, metadata and
// total_quantity is required.
func (d *AssetDefinition) UnmarshalJSON(buf []byte) error {
	var v definitionJSON
	if err := json.Unmarshal(buf, &v); err != nil {
		return err
	}
	switch {
	case v.Id == nil:
		return valueErr(string(buf), "missing asset definition id")
	case v.Type == nil:
		return valueErr(string(buf), "missing asset type")
	case v.Mintable == nil:
		return valueErr(string(buf), "missing mintable")
	case v.OwnedBy == nil:
		return valueErr(string(buf), "missing owner")
	}

	def := AssetDefinition{
		id:        *v.Id,
		assetType: *v.Type,
		mintable:  *v.Mintable,
		logo:      v.Logo,
		metadata:  v.Metadata,
		ownedBy:   *v.OwnedBy,
	}
	if v.TotalQuantity != nil {
		def.totalQuantity = *v.TotalQuantity
	}
	if def.metadata.Len() == 0 {
		def.metadata = metadata.New()
	}
	*d = def
	return nil
}
