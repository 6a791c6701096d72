package model

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
)

// JSONDoc is an open-ended document persisted in a JSON column. Unknown keys are preserved.
type JSONDoc map[string]any

func (d JSONDoc) Value() (driver.Value, error) {
	if d == nil {
		return nil, nil
	}
	b, err := json.Marshal(d)
	if err != nil {
		return nil, fmt.Errorf("marshal json doc: %w", err)
	}
	return string(b), nil
}

func (d *JSONDoc) Scan(src any) error {
	var raw []byte
	switch v := src.(type) {
	case nil:
		*d = nil
		return nil
	case []byte:
		raw = v
	case string:
		raw = []byte(v)
	default:
		return fmt.Errorf("unsupported json doc source %T", src)
	}
	if len(raw) == 0 {
		*d = nil
		return nil
	}
	doc := JSONDoc{}
	if err := json.Unmarshal(raw, &doc); err != nil {
		return fmt.Errorf("unmarshal json doc: %w", err)
	}
	*d = doc
	return nil
}

// Merge returns a shallow merge: keys in patch overwrite, all other keys of d are kept.
func (d JSONDoc) Merge(patch JSONDoc) JSONDoc {
	out := make(JSONDoc, len(d)+len(patch))
	for k, v := range d {
		out[k] = v
	}
	for k, v := range patch {
		out[k] = v
	}
	return out
}
