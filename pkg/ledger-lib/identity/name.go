package identity

import (
	"strings"
	"unicode"

	arkerrors "github.com/arkade-os/ledger-assets/pkg/errors"
)

// reservedChars are the separators of compound identifiers:
// `@` splits account ids, `#` asset definition and asset ids, `$` is kept for domain-scoped names.
const reservedChars = "@#$"

// Name is a validated identifier component.
type Name struct {
	value string
}

// ParseName validates s against the identifier grammar: non-empty, no white space and none of
// the reserved separator characters.
func ParseName(s string) (Name, error) {
	if err := validateName(s); err != nil {
		return Name{}, err
	}
	return Name{s}, nil
}

func (n Name) String() string {
	return n.value
}

// IsZero reports whether n was never set by ParseName.
func (n Name) IsZero() bool {
	return n.value == ""
}

func (n Name) Compare(other Name) int {
	return strings.Compare(n.value, other.value)
}

func (n Name) MarshalText() ([]byte, error) {
	return []byte(n.value), nil
}

func (n *Name) UnmarshalText(text []byte) error {
	name, err := ParseName(string(text))
	if err != nil {
		return err
	}
	*n = name
	return nil
}

func validateName(s string) error {
	if len(s) <= 0 {
		return parseErr(s, "name", "empty name")
	}
	if strings.IndexFunc(s, unicode.IsSpace) >= 0 {
		return parseErr(s, "name", "white space not allowed")
	}
	if i := strings.IndexAny(s, reservedChars); i >= 0 {
		return parseErr(
			s, "name", "the `%c` character is reserved for compound identifiers", s[i],
		)
	}
	return nil
}

func parseErr(input, grammar, msg string, args ...any) error {
	return arkerrors.PARSE_ERROR.New(msg, args...).WithMetadata(arkerrors.ParseMetadata{
		Input:   input,
		Grammar: grammar,
	})
}
