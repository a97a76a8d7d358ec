package config

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

var (
	trueLiterals  = map[string]struct{}{"1": {}, "true": {}, "yes": {}, "on": {}}
	falseLiterals = map[string]struct{}{"0": {}, "false": {}, "no": {}, "off": {}}
)

// ParseBool converts a string literal into a boolean, accepting multiple synonyms.
func ParseBool(raw, key string) (bool, error) {
	v := strings.ToLower(strings.TrimSpace(raw))
	if _, ok := trueLiterals[v]; ok {
		return true, nil
	}
	if _, ok := falseLiterals[v]; ok {
		return false, nil
	}
	return false, fmt.Errorf("invalid value for %s: %q", key, raw)
}

// ParseIntInRange parses a string into an int and ensures it falls within [min, max].
// If max < min, the upper bound is ignored.
func ParseIntInRange(raw, key string, min, max int) (int, error) {
	n, err := parseInt(raw, key)
	if err != nil {
		return 0, err
	}
	if n < min {
		if max >= min {
			return 0, fmt.Errorf("%s must be between %d and %d", key, min, max)
		}
		return 0, fmt.Errorf("%s must be >= %d", key, min)
	}
	if max >= min && n > max {
		return 0, fmt.Errorf("%s must be between %d and %d", key, min, max)
	}
	return n, nil
}

// ParseDuration accepts Go duration syntax or a bare number of seconds.
func ParseDuration(raw, key string) (time.Duration, error) {
	v := strings.TrimSpace(raw)
	if v == "" {
		return 0, fmt.Errorf("invalid duration for %s: %q", key, raw)
	}
	if n, err := strconv.Atoi(v); err == nil {
		return time.Duration(n) * time.Second, nil
	}
	d, err := time.ParseDuration(v)
	if err != nil {
		return 0, fmt.Errorf("invalid duration for %s: %q", key, raw)
	}
	return d, nil
}

// SplitMulti turns repeated values (and comma-separated values) into a flat slice.
func SplitMulti(vals []string) []string {
	var out []string
	for _, raw := range vals {
		for _, piece := range strings.Split(raw, ",") {
			part := strings.TrimSpace(piece)
			if part == "" {
				continue
			}
			out = append(out, part)
		}
	}
	return out
}

func parseInt(raw, key string) (int, error) {
	v := strings.TrimSpace(raw)
	if v == "" {
		return 0, fmt.Errorf("invalid integer value for %s: %q", key, raw)
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return 0, fmt.Errorf("invalid integer value for %s: %q", key, raw)
	}
	return n, nil
}
