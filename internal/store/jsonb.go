package store

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
)

// JSONB is a nullable jsonb column decoded into T
type JSONB[T any] struct {
	V     T
	Valid bool
}

// Scan implements sql.Scanner. NULL leaves V at its zero value.
func (j *JSONB[T]) Scan(src interface{}) error {
	var data []byte
	switch v := src.(type) {
	case nil:
		var zero T
		j.V, j.Valid = zero, false
		return nil
	case []byte:
		data = v
	case string:
		data = []byte(v)
	default:
		return fmt.Errorf("scanning jsonb: unsupported source type %T", src)
	}

	if err := json.Unmarshal(data, &j.V); err != nil {
		return fmt.Errorf("decoding jsonb: %w", err)
	}
	j.Valid = true
	return nil
}

// Value implements driver.Valuer
func (j JSONB[T]) Value() (driver.Value, error) {
	if !j.Valid {
		return nil, nil
	}
	data, err := json.Marshal(j.V)
	if err != nil {
		return nil, fmt.Errorf("encoding jsonb: %w", err)
	}
	return data, nil
}

// Ptr returns a pointer to V, or nil when the column was NULL
func (j JSONB[T]) Ptr() *T {
	if !j.Valid {
		return nil
	}
	v := j.V
	return &v
}
