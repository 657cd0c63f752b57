package domain

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
	"time"
)

// Fixed width so stored values sort lexically in time order.
const tsLayout = "2006-01-02T15:04:05.000000000Z"

// Timestamp is a UTC time stored as fixed-width text.
type Timestamp struct{ time.Time }

func (t Timestamp) Value() (driver.Value, error) {
	return t.UTC().Format(tsLayout), nil
}

func (t *Timestamp) Scan(src any) error {
	switch v := src.(type) {
	case nil:
		t.Time = time.Time{}
		return nil
	case time.Time:
		t.Time = v.UTC()
		return nil
	case []byte:
		return t.parse(string(v))
	case string:
		return t.parse(v)
	}
	return fmt.Errorf("timestamp: unsupported source %T", src)
}

func (t *Timestamp) parse(s string) error {
	if s == "" {
		t.Time = time.Time{}
		return nil
	}
	p, err := time.Parse(tsLayout, s)
	if err != nil {
		if p, err = time.Parse(time.RFC3339Nano, s); err != nil {
			return fmt.Errorf("timestamp: %w", err)
		}
	}
	t.Time = p.UTC()
	return nil
}

// Traits is persisted as a JSON array column.
type Traits []Trait

func (ts Traits) Value() (driver.Value, error) {
	if ts == nil {
		return "[]", nil
	}
	b, err := json.Marshal([]Trait(ts))
	if err != nil {
		return nil, err
	}
	return string(b), nil
}

func (ts *Traits) Scan(src any) error {
	var raw []byte
	switch v := src.(type) {
	case nil:
		*ts = Traits{}
		return nil
	case string:
		raw = []byte(v)
	case []byte:
		raw = v
	default:
		return fmt.Errorf("traits: unsupported source %T", src)
	}
	if len(raw) == 0 {
		*ts = Traits{}
		return nil
	}
	out := Traits{}
	if err := json.Unmarshal(raw, &out); err != nil {
		return fmt.Errorf("traits: %w", err)
	}
	if out == nil {
		out = Traits{}
	}
	*ts = out
	return nil
}
