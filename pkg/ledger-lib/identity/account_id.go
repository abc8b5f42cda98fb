package identity

import "strings"

const accountSeparator = "@"

// AccountId identifies an account as `signatory@domain`.
type AccountId struct {
	signatory PublicKey
	domain    DomainId
}

func NewAccountId(signatory PublicKey, domain DomainId) AccountId {
	return AccountId{signatory, domain}
}

// ParseAccountId parses a `signatory@domain` string.
func ParseAccountId(s string) (AccountId, error) {
	signatory, domain, ok := strings.Cut(s, accountSeparator)
	if !ok {
		return AccountId{}, parseErr(
			s, "account id", "account id should have format `signatory@domain`",
		)
	}
	key, err := ParsePublicKey(signatory)
	if err != nil {
		return AccountId{}, err
	}
	domainId, err := ParseDomainId(domain)
	if err != nil {
		return AccountId{}, err
	}
	return AccountId{key, domainId}, nil
}

func (a AccountId) Signatory() PublicKey {
	return a.signatory
}

func (a AccountId) Domain() DomainId {
	return a.domain
}

func (a AccountId) String() string {
	return a.signatory.String() + accountSeparator + a.domain.String()
}

// Compare orders accounts by domain first, then by signatory.
func (a AccountId) Compare(other AccountId) int {
	if c := a.domain.Compare(other.domain); c != 0 {
		return c
	}
	return a.signatory.Compare(other.signatory)
}

func (a AccountId) MarshalText() ([]byte, error) {
	return []byte(a.String()), nil
}

func (a *AccountId) UnmarshalText(text []byte) error {
	id, err := ParseAccountId(string(text))
	if err != nil {
		return err
	}
	*a = id
	return nil
}
