package models

import (
	"bytes"
	"encoding/json"
	"fmt"
)

// RecordID identifies a stored tip or purchase. New records get UUID
// strings; records written by the booking site carry a millisecond
// timestamp as a JSON number. Both decode, and numeric ids are written back
// as numbers so those records keep their shape.
type RecordID string

func (id RecordID) String() string {
	return string(id)
}

func (id RecordID) MarshalJSON() ([]byte, error) {
	if id.numeric() {
		return []byte(id), nil
	}
	return json.Marshal(string(id))
}

func (id *RecordID) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	switch {
	case bytes.Equal(data, []byte("null")):
		*id = ""
		return nil
	case len(data) > 0 && data[0] == '"':
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		*id = RecordID(s)
		return nil
	}

	var n json.Number
	if err := json.Unmarshal(data, &n); err != nil {
		return fmt.Errorf("record id must be a string or a number: %w", err)
	}
	*id = RecordID(n.String())
	return nil
}

// numeric reports whether id is a plain non-negative integer without
// leading zeros.
func (id RecordID) numeric() bool {
	if id == "" || (len(id) > 1 && id[0] == '0') {
		return false
	}
	for _, r := range id {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}
