package ipfs

import (
	"strings"

	arkerrors "github.com/arkade-os/ledger-assets/pkg/errors"
	"github.com/ipfs/go-cid"
)

const minSegmentLen = 2

// Path is a content-addressed reference, e.g. /ipfs/<cid>/logo.png or a bare <cid>.
type Path struct {
	value string
}

// ParsePath validates s as an IPFS path. Namespaced paths start with /ipfs/, /ipld/ or
// /ipns/; any other path must start with a CID. ipfs and ipld roots must be valid CIDs.
func ParsePath(s string) (Path, error) {
	segments := strings.Split(s, "/")

	rest := segments[1:]
	if segments[0] == "" {
		if len(rest) < 1 || rest[0] == "" {
			return Path{}, parseErr(s, "expected root type, but nothing found")
		}
		if len(rest) < 2 || rest[1] == "" {
			return Path{}, parseErr(s, "expected at least one content key, but nothing found")
		}
		root, key := rest[0], rest[1]
		switch root {
		case "ipfs", "ipld":
			if err := checkCid(s, key); err != nil {
				return Path{}, err
			}
		case "ipns":
		default:
			return Path{}, parseErr(
				s, "unexpected root type %q, expected `ipfs`, `ipld` or `ipns`", root,
			)
		}
		rest = rest[2:]
	} else if err := checkCid(s, segments[0]); err != nil {
		return Path{}, err
	}

	for _, segment := range rest {
		if len(segment) < minSegmentLen {
			return Path{}, parseErr(s, "path segment %q is too short", segment)
		}
	}

	return Path{s}, nil
}

func (p Path) String() string {
	return p.value
}

func (p Path) IsZero() bool {
	return p.value == ""
}

func (p Path) MarshalText() ([]byte, error) {
	return []byte(p.value), nil
}

func (p *Path) UnmarshalText(text []byte) error {
	path, err := ParsePath(string(text))
	if err != nil {
		return err
	}
	*p = path
	return nil
}

func checkCid(input, key string) error {
	if _, err := cid.Decode(key); err != nil {
		return parseErr(input, "invalid cid %q: %s", key, err)
	}
	return nil
}

func parseErr(input, msg string, args ...any) error {
	return arkerrors.PARSE_ERROR.New(msg, args...).WithMetadata(arkerrors.ParseMetadata{
		Input:   input,
		Grammar: "ipfs path",
	})
}
