package identity

import (
	"crypto/ed25519"
	"encoding/hex"
	"fmt"
	"strings"

	"github.com/btcsuite/btcd/btcec/v2"
	"github.com/multiformats/go-varint"
)

// Algorithm is the signature scheme of a public key, identified by its multicodec code.
type Algorithm uint64

const (
	Ed25519   Algorithm = 0xed
	Secp256k1 Algorithm = 0xe7
)

func (a Algorithm) String() string {
	switch a {
	case Ed25519:
		return "ed25519"
	case Secp256k1:
		return "secp256k1"
	default:
		return fmt.Sprintf("unknown(%#x)", uint64(a))
	}
}

func (a Algorithm) keySize() (int, bool) {
	switch a {
	case Ed25519:
		return ed25519.PublicKeySize, true
	case Secp256k1:
		return btcec.PubKeyBytesLenCompressed, true
	default:
		return 0, false
	}
}

// PublicKey is the signatory of an account, exchanged as a multihash hex string.
// The payload is kept as a string so that the key stays comparable.
type PublicKey struct {
	algorithm Algorithm
	payload   string
}

// NewPublicKey validates payload as a key of the given algorithm.
func NewPublicKey(algorithm Algorithm, payload []byte) (PublicKey, error) {
	return newPublicKey(algorithm, payload, hex.EncodeToString(payload))
}

func newPublicKey(algorithm Algorithm, payload []byte, input string) (PublicKey, error) {
	size, ok := algorithm.keySize()
	if !ok {
		return PublicKey{}, parseErr(input, "public key", "unsupported algorithm %s", algorithm)
	}
	if len(payload) != size {
		return PublicKey{}, parseErr(
			input, "public key",
			"invalid %s key length, got %d want %d", algorithm, len(payload), size,
		)
	}
	if algorithm == Secp256k1 {
		if _, err := btcec.ParsePubKey(payload); err != nil {
			return PublicKey{}, parseErr(input, "public key", "invalid secp256k1 key: %s", err)
		}
	}
	return PublicKey{algorithm, string(payload)}, nil
}

// ParsePublicKey parses a multihash hex string: varint algorithm code, varint payload length,
// payload.
func ParsePublicKey(s string) (PublicKey, error) {
	if len(s) <= 0 {
		return PublicKey{}, parseErr(s, "public key", "missing public key")
	}
	buf, err := hex.DecodeString(s)
	if err != nil {
		return PublicKey{}, parseErr(s, "public key", "invalid public key format, must be hex")
	}

	code, n, err := varint.FromUvarint(buf)
	if err != nil {
		return PublicKey{}, parseErr(s, "public key", "invalid multihash code: %s", err)
	}
	buf = buf[n:]
	length, n, err := varint.FromUvarint(buf)
	if err != nil {
		return PublicKey{}, parseErr(s, "public key", "invalid multihash length: %s", err)
	}
	buf = buf[n:]
	if uint64(len(buf)) != length {
		return PublicKey{}, parseErr(
			s, "public key", "invalid multihash payload length, got %d want %d", len(buf), length,
		)
	}

	return newPublicKey(Algorithm(code), buf, s)
}

func (k PublicKey) Algorithm() Algorithm {
	return k.algorithm
}

func (k PublicKey) Bytes() []byte {
	return []byte(k.payload)
}

func (k PublicKey) IsZero() bool {
	return len(k.payload) == 0
}

// String returns the canonical multihash form: lowercase prefix, uppercase payload.
func (k PublicKey) String() string {
	prefix := varint.ToUvarint(uint64(k.algorithm))
	prefix = append(prefix, varint.ToUvarint(uint64(len(k.payload)))...)
	return hex.EncodeToString(prefix) + strings.ToUpper(hex.EncodeToString([]byte(k.payload)))
}

func (k PublicKey) Compare(other PublicKey) int {
	if k.algorithm != other.algorithm {
		if k.algorithm < other.algorithm {
			return -1
		}
		return 1
	}
	return strings.Compare(k.payload, other.payload)
}

func (k PublicKey) MarshalText() ([]byte, error) {
	return []byte(k.String()), nil
}

func (k *PublicKey) UnmarshalText(text []byte) error {
	key, err := ParsePublicKey(string(text))
	if err != nil {
		return err
	}
	*k = key
	return nil
}
