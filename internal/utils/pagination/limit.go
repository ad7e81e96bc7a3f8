package pagination

import "strconv"

// Clamp bounds v to the inclusive range [lo, hi].
func Clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// Window is a normalized limit/offset pair.
type Window struct {
	Limit  int
	Offset int
}

// NormalizeWindow clamps limit to [1, maxLimit] and offset to >= 0.
func NormalizeWindow(limit, offset, maxLimit int) Window {
	if offset < 0 {
		offset = 0
	}
	return Window{Limit: Clamp(limit, 1, maxLimit), Offset: offset}
}

// ParseInt parses an optional integer query value. Empty input yields def.
func ParseInt(raw string, def int) (int, error) {
	if raw == "" {
		return def, nil
	}
	return strconv.Atoi(raw)
}
