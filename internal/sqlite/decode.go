package sqlite

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

// decodeOr returns decode(v), or def when v can't be decoded. Every column
// goes through it: a bad field falls back to its default, the row is kept.
func decodeOr[T any](v any, decode func(any) (T, error), def T) T {
	res, err := decode(v)
	if err != nil {
		return def
	}
	return res
}

func decodeInt(v any) (int64, error) {
	switch v := v.(type) {
	case int64:
		return v, nil
	}
	return 0, fmt.Errorf("sqlite: can't decode %T as integer", v)
}

func decodeString(v any) (string, error) {
	switch v := v.(type) {
	case string:
		return v, nil
	case []byte:
		return string(v), nil
	}
	return "", fmt.Errorf("sqlite: can't decode %T as text", v)
}

func decodeBool(v any) (bool, error) {
	switch v := v.(type) {
	case bool:
		return v, nil
	case int64:
		return v != 0, nil
	}
	return false, fmt.Errorf("sqlite: can't decode %T as boolean", v)
}

// decodeSeconds reads a native timestamp. The driver hands out time.Time for
// integers stored in TIMESTAMP columns, interpreting them as Unix seconds, so
// those are turned back into the raw value.
func decodeSeconds(v any) (float64, error) {
	switch v := v.(type) {
	case int64:
		return float64(v), nil
	case float64:
		return v, nil
	case time.Time:
		if v.IsZero() {
			// the driver's answer for text it couldn't parse
			break
		}
		return float64(v.Unix()), nil
	case string:
		return strconv.ParseFloat(strings.TrimSpace(v), 64)
	case []byte:
		return strconv.ParseFloat(strings.TrimSpace(string(v)), 64)
	}
	return 0, fmt.Errorf("sqlite: can't decode %T as timestamp", v)
}

func decodeStart(v any) (time.Time, error) {
	sec, err := decodeSeconds(v)
	if err != nil {
		return time.Time{}, err
	}
	return DecodeStart(sec), nil
}

func decodeEnd(v any) (time.Time, error) {
	sec, err := decodeSeconds(v)
	if err != nil {
		return time.Time{}, err
	}
	return DecodeEnd(sec), nil
}
