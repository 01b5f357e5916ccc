package enum

import (
	"bytes"
	"encoding/json"
	"fmt"
)

// Status is the active/inactive flag the billing API sends as "Estado".
// The API is inconsistent and sends it as a bool or as 0/1.
type Status int

const (
	StatusInactive Status = 0
	StatusActive   Status = 1
)

// StatusPtr returns a pointer to s, for optional form fields.
func StatusPtr(s Status) *Status {
	return &s
}

func (s Status) IsActive() bool {
	return s != StatusInactive
}

func (s Status) String() string {
	if s.IsActive() {
		return "Active"
	}
	return "Inactive"
}

// MarshalJSON always emits the numeric form the API accepts.
func (s Status) MarshalJSON() ([]byte, error) {
	if s.IsActive() {
		return []byte("1"), nil
	}
	return []byte("0"), nil
}

func (s *Status) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)

	var b bool
	if err := json.Unmarshal(data, &b); err == nil {
		if b {
			*s = StatusActive
		} else {
			*s = StatusInactive
		}
		return nil
	}

	var n float64
	if err := json.Unmarshal(data, &n); err == nil {
		if n != 0 {
			*s = StatusActive
		} else {
			*s = StatusInactive
		}
		return nil
	}

	var str string
	if err := json.Unmarshal(data, &str); err != nil {
		return fmt.Errorf("invalid status %s", data)
	}
	switch str {
	case "1", "true", "Active":
		*s = StatusActive
	case "0", "false", "Inactive":
		*s = StatusInactive
	default:
		return fmt.Errorf("invalid status %q", str)
	}
	return nil
}
