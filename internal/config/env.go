package config

import (
	"errors"
	"math"
	"strings"
	"time"
)

// FromEnv builds a config layer from COMMENTX_* variables. Every malformed
// value is reported; the returned layer still holds the valid ones.
func FromEnv(getenv func(string) string) (Config, error) {
	if getenv == nil {
		getenv = func(string) string { return "" }
	}
	var cfg Config
	var errs []error

	setString := func(target **string, key string) {
		raw := strings.TrimSpace(getenv(key))
		if raw == "" {
			return
		}
		value := raw
		*target = &value
	}
	setInt := func(target **int, key string, min, max int) {
		raw := strings.TrimSpace(getenv(key))
		if raw == "" {
			return
		}
		v, err := ParseIntInRange(raw, key, min, max)
		if err != nil {
			errs = append(errs, err)
			return
		}
		value := v
		*target = &value
	}
	setDuration := func(target **time.Duration, key string) {
		raw := strings.TrimSpace(getenv(key))
		if raw == "" {
			return
		}
		d, err := ParseDuration(raw, key)
		if err != nil {
			errs = append(errs, err)
			return
		}
		*target = &d
	}

	setString(&cfg.Extract.Language, "COMMENTX_LANG")
	setString(&cfg.Extract.Output, "COMMENTX_OUTPUT")
	setString(&cfg.Extract.Fields, "COMMENTX_FIELDS")
	setInt(&cfg.Extract.Truncate, "COMMENTX_TRUNCATE", 0, math.MaxInt)
	setString(&cfg.Extract.Color, "COMMENTX_COLOR")
	// Whitespace-only separators are meaningful, so this one is not trimmed.
	if raw := getenv("COMMENTX_JOIN_SEPARATOR"); raw != "" {
		value := raw
		cfg.Extract.JoinSeparator = &value
	}

	setString(&cfg.Translate.Target, "COMMENTX_TARGET")
	setString(&cfg.Translate.Source, "COMMENTX_SOURCE")
	setString(&cfg.Translate.URLTemplate, "COMMENTX_URL_TEMPLATE")

	setString(&cfg.Server.Addr, "COMMENTX_ADDR")
	setInt(&cfg.Server.MaxBodyBytes, "COMMENTX_MAX_BODY_BYTES", 1, math.MaxInt)
	setDuration(&cfg.Server.ReadTimeout, "COMMENTX_READ_TIMEOUT")

	setString(&cfg.Log.Level, "COMMENTX_LOG_LEVEL")
	setString(&cfg.Log.Format, "COMMENTX_LOG_FORMAT")

	if len(errs) > 0 {
		return cfg, errors.Join(errs...)
	}
	return cfg, nil
}
