package asset

import (
	"fmt"
	"strings"
)

// Mintable is the mint policy of an asset definition.
//
// The policy is chosen at registration. This package only records it: checking that a mint
// instruction is allowed, and moving a Once definition to Not after its first mint, is the job
// of the ledger that executes instructions. Holding a Mintable never restricts anything by
// itself.
type Mintable uint8

const (
	// MintableInfinitely allows any number of mints.
	MintableInfinitely Mintable = iota
	// MintableOnce allows exactly one successful mint.
	MintableOnce
	// MintableNot allows no mint after the initial registration.
	MintableNot
)

var mintableNames = map[Mintable]string{
	MintableInfinitely: "Infinitely",
	MintableOnce:       "Once",
	MintableNot:        "Not",
}

// ParseMintable parses a policy name, ignoring case.
func ParseMintable(s string) (Mintable, error) {
	for m, name := range mintableNames {
		if strings.EqualFold(s, name) {
			return m, nil
		}
	}
	return 0, parseErr(s, "mintable", "unknown mintable %q, expected Infinitely, Once or Not", s)
}

func (m Mintable) IsValid() bool {
	_, ok := mintableNames[m]
	return ok
}

func (m Mintable) String() string {
	if name, ok := mintableNames[m]; ok {
		return name
	}
	return fmt.Sprintf("Mintable(%d)", uint8(m))
}

func (m Mintable) MarshalText() ([]byte, error) {
	if !m.IsValid() {
		return nil, valueErr(m.String(), "unknown mintable")
	}
	return []byte(m.String()), nil
}

func (m *Mintable) UnmarshalText(text []byte) error {
	parsed, err := ParseMintable(string(text))
	if err != nil {
		return err
	}
	*m = parsed
	return nil
}
