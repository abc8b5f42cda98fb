package numeric

import (
	"fmt"
	"math"
	"math/big"
	"strconv"

	arkerrors "github.com/arkade-os/ledger-assets/pkg/errors"
	"github.com/shopspring/decimal"
	"lukechampine.com/uint128"
)

// MaxScale is the largest number of fractional digits a Numeric can carry.
const MaxScale = 28

// maxExponent bounds the positive exponent of a decimal that could still fit 128 bits.
const maxExponent = 39

// Numeric is an exact non-negative decimal number: mantissa / 10^scale.
// It is never backed by a binary floating point value.
type Numeric struct {
	mantissa uint128.Uint128
	scale    uint32
}

// New returns the numeric mantissa / 10^scale.
func New(mantissa uint128.Uint128, scale uint32) (Numeric, error) {
	if scale > MaxScale {
		return Numeric{}, valueErr(
			fmt.Sprintf("%s/10^%d", mantissa, scale),
			"scale %d exceeds max scale %d", scale, MaxScale,
		)
	}
	return Numeric{mantissa, scale}, nil
}

// Zero returns the numeric 0 with scale 0.
func Zero() Numeric {
	return Numeric{}
}

func FromUint32(v uint32) Numeric {
	return Numeric{uint128.From64(uint64(v)), 0}
}

func FromUint64(v uint64) Numeric {
	return Numeric{uint128.From64(v), 0}
}

func FromUint128(v uint128.Uint128) Numeric {
	return Numeric{v, 0}
}

// FromFloat64 interprets f as the shortest decimal that converts back to f.
// NaN, infinities and negative values are rejected.
func FromFloat64(f float64) (Numeric, error) {
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return Numeric{}, valueErr(
			strconv.FormatFloat(f, 'g', -1, 64),
			"float could not be converted into decimal number",
		)
	}
	return FromDecimal(decimal.NewFromFloat(f))
}

// FromDecimal converts d into a Numeric, failing if d is negative or does not fit the
// mantissa/scale range. Trailing zeros are kept: 12.50 has scale 2.
func FromDecimal(d decimal.Decimal) (Numeric, error) {
	if d.Sign() < 0 {
		return Numeric{}, valueErr(d.String(), "negative numeric value")
	}

	coefficient := d.Coefficient()
	exponent := d.Exponent()

	if exponent > 0 {
		if coefficient.Sign() == 0 {
			return Zero(), nil
		}
		if exponent > maxExponent {
			return Numeric{}, valueErr(d.String(), "numeric value out of range")
		}
		multiplier := new(big.Int).Exp(big.NewInt(10), big.NewInt(int64(exponent)), nil)
		coefficient.Mul(coefficient, multiplier)
		exponent = 0
	}

	scale := int64(-exponent)
	if scale > MaxScale {
		return Numeric{}, valueErr(
			d.String(), "scale %d exceeds max scale %d", scale, MaxScale,
		)
	}
	if coefficient.BitLen() > 128 {
		return Numeric{}, valueErr(d.String(), "numeric value out of range")
	}

	return Numeric{uint128.FromBig(coefficient), uint32(scale)}, nil
}

// Parse parses a decimal string such as "12.50" or "1e3".
func Parse(s string) (Numeric, error) {
	d, err := decimal.NewFromString(s)
	if err != nil {
		return Numeric{}, valueErr(s, "unrecognised numeric value %q", s)
	}
	return FromDecimal(d)
}

func (n Numeric) Mantissa() uint128.Uint128 {
	return n.mantissa
}

func (n Numeric) Scale() uint32 {
	return n.scale
}

func (n Numeric) IsZero() bool {
	return n.mantissa.IsZero()
}

// Decimal returns the exact decimal value of n.
func (n Numeric) Decimal() decimal.Decimal {
	return decimal.NewFromBigInt(n.mantissa.Big(), -int32(n.scale))
}

// String renders n with exactly Scale() fractional digits.
func (n Numeric) String() string {
	return n.Decimal().StringFixed(int32(n.scale))
}

// Compare compares numeric values, ignoring representation: 12.5 equals 12.50.
func (n Numeric) Compare(other Numeric) int {
	return n.Decimal().Cmp(other.Decimal())
}

func (n Numeric) Equal(other Numeric) bool {
	return n.Compare(other) == 0
}

func (n Numeric) MarshalText() ([]byte, error) {
	return []byte(n.String()), nil
}

func (n *Numeric) UnmarshalText(text []byte) error {
	v, err := Parse(string(text))
	if err != nil {
		return err
	}
	*n = v
	return nil
}

func valueErr(input, msg string, args ...any) error {
	return arkerrors.VALUE_ERROR.New(msg, args...).
		WithMetadata(arkerrors.ValueMetadata{Input: input})
}
