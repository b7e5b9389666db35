package models

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
)

// Amount is a monetary value that decodes leniently: JSON numbers and
// numeric strings are both accepted, and anything else leaves the value
// untouched instead of failing the whole request.
type Amount float64

func (a *Amount) UnmarshalJSON(data []byte) error {
	var f float64
	if err := json.Unmarshal(data, &f); err == nil {
		*a = Amount(f)
		return nil
	}

	var s string
	if err := json.Unmarshal(data, &s); err == nil {
		if f, err := strconv.ParseFloat(strings.TrimSpace(s), 64); err == nil {
			*a = Amount(f)
		}
		return nil
	}

	return nil
}

// Value implements driver.Valuer.
func (a Amount) Value() (driver.Value, error) {
	return float64(a), nil
}

// Scan implements sql.Scanner.
func (a *Amount) Scan(src any) error {
	switch v := src.(type) {
	case nil:
		*a = 0
	case float64:
		*a = Amount(v)
	case int64:
		*a = Amount(v)
	case []byte:
		f, err := strconv.ParseFloat(string(v), 64)
		if err != nil {
			return fmt.Errorf("scan amount: %w", err)
		}
		*a = Amount(f)
	case string:
		f, err := strconv.ParseFloat(v, 64)
		if err != nil {
			return fmt.Errorf("scan amount: %w", err)
		}
		*a = Amount(f)
	default:
		return fmt.Errorf("scan amount: unsupported type %T", src)
	}
	return nil
}
