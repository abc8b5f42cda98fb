package asset

import (
	"strings"

	"github.com/arkade-os/ledger-assets/pkg/ledger-lib/identity"
)

// definitionSeparator splits the name and the domain of an asset definition id.
const definitionSeparator = "#"

// AssetDefinitionId identifies a class of assets as `name#domain`, e.g. `rose#wonderland`.
// It is comparable and can be used as a map key.
type AssetDefinitionId struct {
	name   identity.Name
	domain identity.DomainId
}

// NewAssetDefinitionId validates name and domain against the identifier grammar.
func NewAssetDefinitionId(name, domain string) (*AssetDefinitionId, error) {
	n, err := parseDefinitionName(name)
	if err != nil {
		return nil, err
	}
	d, err := parseDomain(domain)
	if err != nil {
		return nil, err
	}
	return &AssetDefinitionId{name: n, domain: d}, nil
}

// NewAssetDefinitionIdFromParts builds an id from already validated components.
func NewAssetDefinitionIdFromParts(
	name identity.Name, domain identity.DomainId,
) AssetDefinitionId {
	return AssetDefinitionId{name: name, domain: domain}
}

// ParseAssetDefinitionId parses the canonical `name#domain` form.
func ParseAssetDefinitionId(s string) (*AssetDefinitionId, error) {
	name, domain, ok := strings.Cut(s, definitionSeparator)
	if !ok {
		return nil, parseErr(
			s, "asset definition id", "asset definition id should have format `name#domain`",
		)
	}
	return NewAssetDefinitionId(name, domain)
}

// Name returns the name component.
func (id AssetDefinitionId) Name() string {
	return id.name.String()
}

// Domain returns the domain the definition is registered in.
func (id AssetDefinitionId) Domain() identity.DomainId {
	return id.domain
}

// SetName replaces the name component, leaving id untouched if name is invalid.
func (id *AssetDefinitionId) SetName(name string) error {
	n, err := parseDefinitionName(name)
	if err != nil {
		return err
	}
	id.name = n
	return nil
}

// SetDomain replaces the domain component, leaving id untouched if domain is invalid.
func (id *AssetDefinitionId) SetDomain(domain string) error {
	d, err := parseDomain(domain)
	if err != nil {
		return err
	}
	id.domain = d
	return nil
}

// IsZero reports whether id was never initialized.
func (id AssetDefinitionId) IsZero() bool {
	return id.name.IsZero() && id.domain.Name().IsZero()
}

// String returns the canonical `name#domain` form.
func (id AssetDefinitionId) String() string {
	return id.name.String() + definitionSeparator + id.domain.String()
}

// Compare orders ids by name, then by domain.
func (id AssetDefinitionId) Compare(other AssetDefinitionId) int {
	if c := id.name.Compare(other.name); c != 0 {
		return c
	}
	return id.domain.Compare(other.domain)
}

func (id AssetDefinitionId) MarshalText() ([]byte, error) {
	return []byte(id.String()), nil
}

func (id *AssetDefinitionId) UnmarshalText(text []byte) error {
	parsed, err := ParseAssetDefinitionId(string(text))
	if err != nil {
		return err
	}
	*id = *parsed
	return nil
}

func parseDefinitionName(name string) (identity.Name, error) {
	n, err := identity.ParseName(name)
	if err != nil {
		return identity.Name{}, parseErr(
			name, "asset definition name", "invalid asset definition name: %s", reason(err),
		)
	}
	return n, nil
}

func parseDomain(domain string) (identity.DomainId, error) {
	d, err := identity.ParseDomainId(domain)
	if err != nil {
		return identity.DomainId{}, parseErr(
			domain, "domain name", "invalid domain name: %s", reason(err),
		)
	}
	return d, nil
}
