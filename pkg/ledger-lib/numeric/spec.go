package numeric

import (
	"encoding/json"
	"fmt"
)

// NumericSpec bounds the values of a numeric asset definition.
// The zero value is unconstrained.
type NumericSpec struct {
	scale      uint32
	fractional bool
}

func Unconstrained() NumericSpec {
	return NumericSpec{}
}

// Fractional limits values to at most scale fractional digits.
func Fractional(scale uint32) NumericSpec {
	return NumericSpec{scale: scale, fractional: true}
}

// Integer only admits whole numbers.
func Integer() NumericSpec {
	return Fractional(0)
}

// Scale returns the maximum number of fractional digits, if bounded.
func (s NumericSpec) Scale() (uint32, bool) {
	return s.scale, s.fractional
}

// Check reports whether n satisfies s. Callers decide when to enforce it.
func (s NumericSpec) Check(n Numeric) error {
	if s.fractional && n.scale > s.scale {
		return valueErr(
			n.String(), "numeric scale %d exceeds spec scale %d", n.scale, s.scale,
		)
	}
	return nil
}

func (s NumericSpec) String() string {
	if !s.fractional {
		return "unconstrained"
	}
	return fmt.Sprintf("fractional(%d)", s.scale)
}

type jsonSpec struct {
	Scale *uint32 `json:"scale"`
}

func (s NumericSpec) MarshalJSON() ([]byte, error) {
	var v jsonSpec
	if s.fractional {
		scale := s.scale
		v.Scale = &scale
	}
	return json.Marshal(v)
}

func (s *NumericSpec) UnmarshalJSON(buf []byte) error {
	var v jsonSpec
	if err := json.Unmarshal(buf, &v); err != nil {
		return valueErr(string(buf), "invalid numeric spec: %s", err)
	}
	if v.Scale == nil {
		*s = Unconstrained()
		return nil
	}
	if *v.Scale > MaxScale {
		return valueErr(
			string(buf), "spec scale %d exceeds max scale %d", *v.Scale, MaxScale,
		)
	}
	*s = Fractional(*v.Scale)
	return nil
}
