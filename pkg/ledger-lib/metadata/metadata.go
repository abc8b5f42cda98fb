package metadata

import (
	"bytes"
	"encoding/json"
	"fmt"
	"sort"

	arkerrors "github.com/arkade-os/ledger-assets/pkg/errors"
	"github.com/arkade-os/ledger-assets/pkg/ledger-lib/identity"
)

// Metadata is a string keyed store of JSON values, ordered by key.
// Keys follow the identifier name grammar.
type Metadata struct {
	entries map[identity.Name]json.RawMessage
}

func New() Metadata {
	return Metadata{entries: make(map[identity.Name]json.RawMessage)}
}

// Insert encodes value as JSON and stores it under key, returning the previous value if any.
func (m *Metadata) Insert(key identity.Name, value any) (json.RawMessage, error) {
	if key.IsZero() {
		return nil, arkerrors.VALUE_ERROR.New("missing metadata key")
	}
	buf, err := json.Marshal(value)
	if err != nil {
		return nil, arkerrors.VALUE_ERROR.New("invalid metadata value for %s: %s", key, err).
			WithMetadata(arkerrors.ValueMetadata{Input: fmt.Sprintf("%v", value)})
	}
	if m.entries == nil {
		m.entries = make(map[identity.Name]json.RawMessage)
	}
	prev := m.entries[key]
	m.entries[key] = buf
	return prev, nil
}

func (m Metadata) Get(key identity.Name) (json.RawMessage, bool) {
	v, ok := m.entries[key]
	return v, ok
}

func (m *Metadata) Remove(key identity.Name) (json.RawMessage, bool) {
	v, ok := m.entries[key]
	if ok {
		delete(m.entries, key)
	}
	return v, ok
}

func (m Metadata) Len() int {
	return len(m.entries)
}

// Keys returns the keys in ascending order.
func (m Metadata) Keys() []identity.Name {
	keys := make([]identity.Name, 0, len(m.entries))
	for k := range m.entries {
		keys = append(keys, k)
	}
	sort.Slice(keys, func(i, j int) bool {
		return keys[i].Compare(keys[j]) < 0
	})
	return keys
}

// Equal compares entries by key and compacted JSON value.
func (m Metadata) Equal(other Metadata) bool {
	if m.Len() != other.Len() {
		return false
	}
	for k, v := range m.entries {
		ov, ok := other.entries[k]
		if !ok || !jsonEqual(v, ov) {
			return false
		}
	}
	return true
}

// MarshalJSON writes a JSON object with keys in ascending order.
func (m Metadata) MarshalJSON() ([]byte, error) {
	buf := bytes.NewBufferString("{")
	for i, k := range m.Keys() {
		if i > 0 {
			buf.WriteByte(',')
		}
		key, err := json.Marshal(k.String())
		if err != nil {
			return nil, err
		}
		buf.Write(key)
		buf.WriteByte(':')
		buf.Write(m.entries[k])
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

func (m *Metadata) UnmarshalJSON(buf []byte) error {
	var raw map[string]json.RawMessage
	if err := json.Unmarshal(buf, &raw); err != nil {
		return arkerrors.VALUE_ERROR.New("invalid metadata: %s", err)
	}
	entries := make(map[identity.Name]json.RawMessage, len(raw))
	for k, v := range raw {
		key, err := identity.ParseName(k)
		if err != nil {
			return err
		}
		compacted := bytes.NewBuffer(nil)
		if err := json.Compact(compacted, v); err != nil {
			return arkerrors.VALUE_ERROR.New("invalid metadata value for %s: %s", k, err)
		}
		entries[key] = compacted.Bytes()
	}
	m.entries = entries
	return nil
}

func jsonEqual(a, b json.RawMessage) bool {
	ca, cb := bytes.NewBuffer(nil), bytes.NewBuffer(nil)
	if json.Compact(ca, a) != nil || json.Compact(cb, b) != nil {
		return false
	}
	return bytes.Equal(ca.Bytes(), cb.Bytes())
}
