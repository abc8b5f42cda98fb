package asset

import (
	"encoding/json"
	"fmt"

	"github.com/arkade-os/ledger-assets/pkg/ledger-lib/ipfs"
	"github.com/arkade-os/ledger-assets/pkg/ledger-lib/metadata"
)

// NewAssetDefinition is a request to register an asset definition. It has no owner: the ledger
// assigns one when it accepts the registration, and the confirmed definition is then read back
// as an AssetDefinition.
type NewAssetDefinition struct {
	id        AssetDefinitionId
	assetType AssetType
	mintable  Mintable
	logo      *ipfs.Path
	metadata  metadata.Metadata
}

// DefinitionOption customizes a NewAssetDefinition at construction.
type DefinitionOption func(*NewAssetDefinition) error

// WithMintable overrides the default MintableInfinitely policy.
func WithMintable(m Mintable) DefinitionOption {
	return func(d *NewAssetDefinition) error {
		return d.SetMintable(m)
	}
}

// WithLogo sets the logo from an IPFS path.
func WithLogo(path string) DefinitionOption {
	return func(d *NewAssetDefinition) error {
		return d.SetLogo(path)
	}
}

// WithMetadata attaches metadata to the registration. Not supported yet.
func WithMetadata(md metadata.Metadata) DefinitionOption {
	return func(d *NewAssetDefinition) error {
		return unsupportedErr(
			"definition_metadata", "metadata for new asset definitions is not supported yet",
		)
	}
}

// NewDefinition builds a registration request for id.
func NewDefinition(
	id AssetDefinitionId, assetType AssetType, opts ...DefinitionOption,
) (*NewAssetDefinition, error) {
	if id.IsZero() {
		return nil, valueErr("", "missing asset definition id")
	}
	def := &NewAssetDefinition{
		id:        id,
		assetType: assetType,
		mintable:  MintableInfinitely,
		metadata:  metadata.New(),
	}
	for _, opt := range opts {
		if err := opt(def); err != nil {
			return nil, err
		}
	}
	return def, nil
}

// NewDefinitionFromString is NewDefinition with an id in the `name#domain` form.
func NewDefinitionFromString(
	id string, assetType AssetType, opts ...DefinitionOption,
) (*NewAssetDefinition, error) {
	definitionId, err := ParseAssetDefinitionId(id)
	if err != nil {
		return nil, err
	}
	return NewDefinition(*definitionId, assetType, opts...)
}

func (d *NewAssetDefinition) Id() AssetDefinitionId {
	return d.id
}

func (d *NewAssetDefinition) SetId(id AssetDefinitionId) error {
	if id.IsZero() {
		return valueErr("", "missing asset definition id")
	}
	d.id = id
	return nil
}

func (d *NewAssetDefinition) SetIdFromString(id string) error {
	parsed, err := ParseAssetDefinitionId(id)
	if err != nil {
		return err
	}
	d.id = *parsed
	return nil
}

func (d *NewAssetDefinition) Type() AssetType {
	return d.assetType
}

func (d *NewAssetDefinition) SetType(assetType AssetType) {
	d.assetType = assetType
}

func (d *NewAssetDefinition) Mintable() Mintable {
	return d.mintable
}

func (d *NewAssetDefinition) SetMintable(m Mintable) error {
	if !m.IsValid() {
		return valueErr(m.String(), "unknown mintable")
	}
	d.mintable = m
	return nil
}

// Logo returns the logo path, if any.
func (d *NewAssetDefinition) Logo() (ipfs.Path, bool) {
	if d.logo == nil {
		return ipfs.Path{}, false
	}
	return *d.logo, true
}

// SetLogo validates path before storing it. Malformed paths are rejected with a value error
// and the previous logo is kept.
func (d *NewAssetDefinition) SetLogo(path string) error {
	logo, err := parseLogo(path)
	if err != nil {
		return err
	}
	d.logo = &logo
	return nil
}

func (d *NewAssetDefinition) ClearLogo() {
	d.logo = nil
}

func (d *NewAssetDefinition) Metadata() metadata.Metadata {
	return d.metadata
}

type newDefinitionJSON struct {
	Id       *AssetDefinitionId `json:"id"`
	Type     *AssetType         `json:"type"`
	Mintable *Mintable          `json:"mintable"`
	Logo     *ipfs.Path         `json:"logo,omitempty"`
	Metadata metadata.Metadata  `json:"metadata"`
}

func (d NewAssetDefinition) MarshalJSON() ([]byte, error) {
	return json.Marshal(newDefinitionJSON{
		Id:       &d.id,
		Type:     &d.assetType,
		Mintable: &d.mintable,
		Logo:     d.logo,
		Metadata: d.metadata,
	})
}

// UnmarshalJSON decodes a registration request. A missing mintable falls back to
// MintableInfinitely; non empty metadata is not supported yet.
func (d *NewAssetDefinition) UnmarshalJSON(buf []byte) error {
	var v newDefinitionJSON
	if err := json.Unmarshal(buf, &v); err != nil {
		return err
	}
	if v.Id == nil {
		return valueErr(string(buf), "missing asset definition id")
	}
	if v.Type == nil {
		return valueErr(string(buf), "missing asset type")
	}
	opts := make([]DefinitionOption, 0, 2)
	if v.Mintable != nil {
		opts = append(opts, WithMintable(*v.Mintable))
	}
	if v.Metadata.Len() > 0 {
		opts = append(opts, WithMetadata(v.Metadata))
	}
	def, err := NewDefinition(*v.Id, *v.Type, opts...)
	if err != nil {
		return err
	}
	def.logo = v.Logo
	*d = *def
	return nil
}

func (d NewAssetDefinition) String() string {
	return fmt.Sprintf("NewAssetDefinition(%s, %s, %s)", d.id, d.assetType, d.mintable)
}

func parseLogo(path string) (ipfs.Path, error) {
	logo, err := ipfs.ParsePath(path)
	if err != nil {
		return ipfs.Path{}, valueErr(path, "invalid IPFS path: %w", err)
	}
	return logo, nil
}
