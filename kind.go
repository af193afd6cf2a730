package kizuna

import (
	"encoding/json"
	"fmt"
)

// ProviderKind specifies how a Provider produces its value.
type ProviderKind int

const (
	// Single providers hold one constructed value and hand out a copy of it
	// on every lookup.
	Single ProviderKind = iota

	// Factory providers call their factory on every lookup. Results are
	// never cached.
	Factory
)

// String returns the string representation of the ProviderKind.
func (k ProviderKind) String() string {
	switch k {
	case Single:
		return "Single"
	case Factory:
		return "Factory"
	default:
		return fmt.Sprintf("Unknown(%d)", int(k))
	}
}

// IsValid checks if the provider kind is valid.
func (k ProviderKind) IsValid() bool {
	return k >= Single && k <= Factory
}

// MarshalText implements encoding.TextMarshaler.
func (k ProviderKind) MarshalText() ([]byte, error) {
	return []byte(k.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (k *ProviderKind) UnmarshalText(text []byte) error {
	switch string(text) {
	case "Single", "single":
		*k = Single
	case "Factory", "factory":
		*k = Factory
	default:
		return fmt.Errorf("invalid provider kind: %s", text)
	}
	return nil
}

// MarshalJSON implements json.Marshaler.
func (k ProviderKind) MarshalJSON() ([]byte, error) {
	return json.Marshal(k.String())
}

// UnmarshalJSON implements json.Unmarshaler.
func (k *ProviderKind) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return err
	}

	return k.UnmarshalText([]byte(s))
}
