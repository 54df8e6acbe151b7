package utils

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// ToInt converts loosely typed JSON values to int. Unparseable input yields 0.
// Floats are truncated toward zero.
func ToInt(val any) int {
	switch v := val.(type) {
	case int:
		return v
	case int64:
		return int(v)
	case int32:
		return int(v)
	case uint:
		return int(v)
	case uint64:
		return int(v)
	case uint32:
		return int(v)
	case float64:
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return 0
		}
		return int(v)
	case float32:
		return ToInt(float64(v))
	case string:
		i, _ := strconv.Atoi(strings.TrimSpace(v))
		return i
	case []byte:
		return ToInt(string(v))
	default:
		return 0
	}
}

// ToPositiveInt converts val to a strictly positive integer.
// It rejects zero, negatives, non-finite numbers, fractional numbers and anything unparseable.
func ToPositiveInt(val any) (int, bool) {
	switch v := val.(type) {
	case float64:
		if math.IsNaN(v) || math.IsInf(v, 0) || v != math.Trunc(v) || v < 1 || v > math.MaxInt32 {
			return 0, false
		}
		return int(v), true
	case float32:
		return ToPositiveInt(float64(v))
	case string:
		f, err := strconv.ParseFloat(strings.TrimSpace(v), 64)
		if err != nil {
			return 0, false
		}
		return ToPositiveInt(f)
	case []byte:
		return ToPositiveInt(string(v))
	case nil:
		return 0, false
	default:
		i := ToInt(v)
		return i, i > 0
	}
}

// ToString converts val to a string, rendering nil as the empty string.
func ToString(val any) string {
	switch v := val.(type) {
	case nil:
		return ""
	case string:
		return v
	case []byte:
		return string(v)
	case float64:
		return strconv.FormatFloat(v, 'f', -1, 64)
	default:
		return fmt.Sprintf("%v", v)
	}
}
