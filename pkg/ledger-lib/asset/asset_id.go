package asset

import (
	"strings"

	"github.com/arkade-os/ledger-assets/pkg/ledger-lib/identity"
)

// AssetId identifies the balance of one asset definition held by one account.
//
// Its canonical form is `name#domain#account`. When the definition and the account share the
// same domain, the domain of the definition is omitted: `name##signatory@domain`.
type AssetId struct {
	definition AssetDefinitionId
	account    identity.AccountId
}

func NewAssetId(definition AssetDefinitionId, account identity.AccountId) AssetId {
	return AssetId{definition: definition, account: account}
}

// ParseAssetId parses both the full and the shorthand canonical forms.
func ParseAssetId(s string) (*AssetId, error) {
	i := strings.LastIndex(s, definitionSeparator)
	if i < 0 {
		return nil, parseErr(
			s, "asset id",
			"asset id should have format `name#domain#account@domain`, "+
				"or `name##account@domain` for the same domains",
		)
	}
	definitionPart, accountPart := s[:i], s[i+1:]

	account, err := identity.ParseAccountId(accountPart)
	if err != nil {
		return nil, parseErr(s, "asset id", "invalid account id: %s", reason(err))
	}

	var definition *AssetDefinitionId
	if name, ok := strings.CutSuffix(definitionPart, definitionSeparator); ok {
		n, err := parseDefinitionName(name)
		if err != nil {
			return nil, err
		}
		definition = &AssetDefinitionId{name: n, domain: account.Domain()}
	} else {
		definition, err = ParseAssetDefinitionId(definitionPart)
		if err != nil {
			return nil, err
		}
	}

	return &AssetId{definition: *definition, account: account}, nil
}

func (id AssetId) DefinitionId() AssetDefinitionId {
	return id.definition
}

func (id *AssetId) SetDefinitionId(definition AssetDefinitionId) {
	id.definition = definition
}

func (id AssetId) AccountId() identity.AccountId {
	return id.account
}

func (id *AssetId) SetAccountId(account identity.AccountId) {
	id.account = account
}

func (id AssetId) String() string {
	if id.definition.domain == id.account.Domain() {
		return id.definition.name.String() + definitionSeparator + definitionSeparator +
			id.account.String()
	}
	return id.definition.String() + definitionSeparator + id.account.String()
}

// Compare orders ids by definition, then by account.
func (id AssetId) Compare(other AssetId) int {
	if c := id.definition.Compare(other.definition); c != 0 {
		return c
	}
	return id.account.Compare(other.account)
}

func (id AssetId) MarshalText() ([]byte, error) {
	return []byte(id.String()), nil
}

func (id *AssetId) UnmarshalText(text []byte) error {
	parsed, err := ParseAssetId(string(text))
	if err != nil {
		return err
	}
	*id = *parsed
	return nil
}
