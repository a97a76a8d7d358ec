package config

import (
	"strings"
	"time"
)

func ResolveString(def string, values ...*string) string {
	result := def
	for _, v := range values {
		if v != nil {
			result = *v
		}
	}
	return result
}

func ResolveInt(def int, values ...*int) int {
	result := def
	for _, v := range values {
		if v != nil {
			result = *v
		}
	}
	return result
}

func ResolveDuration(def time.Duration, values ...*time.Duration) time.Duration {
	result := def
	for _, v := range values {
		if v != nil {
			result = *v
		}
	}
	return result
}

func ResolveAndTrim(def string, values ...*string) string {
	value := ResolveString(def, values...)
	return strings.TrimSpace(value)
}
