package models

import "encoding/json"

// Tristate is a boolean that can also be unknown. The zero value is TriUnknown,
// so a field that was never resolved is never mistaken for false.
type Tristate uint8

const (
	TriUnknown Tristate = iota
	TriFalse
	TriTrue
)

// Known wraps a resolved boolean.
func Known(v bool) Tristate {
	if v {
		return TriTrue
	}
	return TriFalse
}

func (t Tristate) IsKnown() bool { return t != TriUnknown }

// IsTrue is false for both TriFalse and TriUnknown.
func (t Tristate) IsTrue() bool { return t == TriTrue }

// Value returns the boolean and whether it is known.
func (t Tristate) Value() (bool, bool) {
	return t == TriTrue, t != TriUnknown
}

func (t Tristate) String() string {
	switch t {
	case TriTrue:
		return "true"
	case TriFalse:
		return "false"
	default:
		return "unknown"
	}
}

// MarshalJSON encodes unknown as null.
func (t Tristate) MarshalJSON() ([]byte, error) {
	if t == TriUnknown {
		return []byte("null"), nil
	}
	return json.Marshal(t == TriTrue)
}

func (t *Tristate) UnmarshalJSON(data []byte) error {
	var v *bool
	if err := json.Unmarshal(data, &v); err != nil {
		return err
	}
	if v == nil {
		*t = TriUnknown
		return nil
	}
	*t = Known(*v)
	return nil
}
