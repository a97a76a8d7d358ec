package config

import (
	"errors"
	"fmt"
	"math"
	"strings"
)

// MaxOffset bounds --offset so that offset plus any input length stays
// representable.
const MaxOffset = math.MaxInt / 2

// NormalizeOutput validates and lower-cases the output format value.
func NormalizeOutput(value string) (string, error) {
	v := strings.ToLower(strings.TrimSpace(value))
	switch v {
	case "", "table":
		return "table", nil
	case "json", "ndjson", "csv":
		return v, nil
	case "md", "markdown":
		return "md", nil
	}
	return "", fmt.Errorf("invalid output: %s", value)
}

func NormalizeColor(value string) (string, error) {
	v := strings.ToLower(strings.TrimSpace(value))
	switch v {
	case "", "auto":
		return "auto", nil
	case "always", "never":
		return v, nil
	}
	return "", fmt.Errorf("invalid color: %s", value)
}

func NormalizeLogLevel(value string) (string, error) {
	v := strings.ToLower(strings.TrimSpace(value))
	switch v {
	case "":
		return "info", nil
	case "debug", "info", "warn", "error", "none":
		return v, nil
	case "warning":
		return "warn", nil
	}
	return "", fmt.Errorf("invalid log level: %s", value)
}

func NormalizeLogFormat(value string) (string, error) {
	v := strings.ToLower(strings.TrimSpace(value))
	switch v {
	case "", "logfmt":
		return "logfmt", nil
	case "json":
		return v, nil
	}
	return "", fmt.Errorf("invalid log format: %s", value)
}

// ValidateURLTemplate requires the {text} placeholder; without it the
// prepared text would never reach the translator.
func ValidateURLTemplate(tmpl string) error {
	if !strings.Contains(tmpl, "{text}") {
		return fmt.Errorf("url_template must contain {text}: %q", tmpl)
	}
	if !strings.HasPrefix(tmpl, "http://") && !strings.HasPrefix(tmpl, "https://") {
		return fmt.Errorf("url_template must be an http(s) URL: %q", tmpl)
	}
	return nil
}

// Normalize canonicalises s and reports every invalid value at once.
func Normalize(s Settings) (Settings, error) {
	var errs []error
	var err error

	if s.Extract.Output, err = NormalizeOutput(s.Extract.Output); err != nil {
		errs = append(errs, err)
	}
	if s.Extract.Color, err = NormalizeColor(s.Extract.Color); err != nil {
		errs = append(errs, err)
	}
	if s.Extract.Truncate < 0 {
		errs = append(errs, errors.New("truncate must be >= 0"))
	}
	if s.Extract.Offset < 0 {
		errs = append(errs, errors.New("offset must be >= 0"))
	} else if s.Extract.Offset > MaxOffset {
		errs = append(errs, fmt.Errorf("offset must be <= %d", MaxOffset))
	}
	if err := ValidateURLTemplate(s.Translate.URLTemplate); err != nil {
		errs = append(errs, err)
	}
	if strings.TrimSpace(s.Translate.Target) == "" {
		errs = append(errs, errors.New("target language is required"))
	}
	if s.Server.MaxBodyBytes < 1 {
		errs = append(errs, errors.New("max_body_bytes must be >= 1"))
	}
	if s.Server.ReadTimeout < 0 {
		errs = append(errs, errors.New("read_timeout must be >= 0"))
	}
	if s.Log.Level, err = NormalizeLogLevel(s.Log.Level); err != nil {
		errs = append(errs, err)
	}
	if s.Log.Format, err = NormalizeLogFormat(s.Log.Format); err != nil {
		errs = append(errs, err)
	}
	for _, def := range s.Languages {
		if err := def.Validate(); err != nil {
			errs = append(errs, err)
		}
	}
	if len(errs) > 0 {
		return s, errors.Join(errs...)
	}
	return s, nil
}
