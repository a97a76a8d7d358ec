package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strconv"
	"strings"
	"time"

	toml "github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"

	"github.com/phyten/commentx/internal/syntax"
)

var extractKeyMap = map[string]string{
	"language":       "language",
	"lang":           "language",
	"output":         "output",
	"format":         "output",
	"fields":         "fields",
	"truncate":       "truncate",
	"color":          "color",
	"colour":         "color",
	"offset":         "offset",
	"join_separator": "join_separator",
	"separator":      "join_separator",
}

var translateKeyMap = map[string]string{
	"target":       "target",
	"target_lang":  "target",
	"to":           "target",
	"source":       "source",
	"source_lang":  "source",
	"from":         "source",
	"url_template": "url_template",
	"url":          "url_template",
}

var serverKeyMap = map[string]string{
	"addr":           "addr",
	"listen":         "addr",
	"max_body_bytes": "max_body_bytes",
	"max_body":       "max_body_bytes",
	"read_timeout":   "read_timeout",
}

var logKeyMap = map[string]string{
	"level":  "level",
	"format": "format",
}

type flatKey struct {
	section string
	key     string
}

// flatKeys lists the keys accepted at the top level of a config file and the
// section each one belongs to.
var flatKeys = map[string]flatKey{
	"language":       {"extract", "language"},
	"lang":           {"extract", "language"},
	"output":         {"extract", "output"},
	"fields":         {"extract", "fields"},
	"truncate":       {"extract", "truncate"},
	"color":          {"extract", "color"},
	"offset":         {"extract", "offset"},
	"join_separator": {"extract", "join_separator"},
	"target":         {"translate", "target"},
	"source":         {"translate", "source"},
	"url_template":   {"translate", "url_template"},
	"addr":           {"server", "addr"},
	"max_body_bytes": {"server", "max_body_bytes"},
	"read_timeout":   {"server", "read_timeout"},
	"log_level":      {"log", "level"},
	"log_format":     {"log", "format"},
}

func Load(path string) (Config, error) {
	var cfg Config
	path = strings.TrimSpace(path)
	if path == "" {
		return cfg, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, err
	}
	ext := strings.ToLower(filepath.Ext(path))
	var raw map[string]any
	switch ext {
	case ".yaml", ".yml":
		if decodeErr := yaml.Unmarshal(data, &raw); decodeErr != nil {
			return cfg, fmt.Errorf("parse %s: %w", path, decodeErr)
		}
	case ".toml":
		if decodeErr := toml.Unmarshal(data, &raw); decodeErr != nil {
			return cfg, fmt.Errorf("parse %s: %w", path, decodeErr)
		}
	case ".json":
		if decodeErr := json.Unmarshal(data, &raw); decodeErr != nil {
			return cfg, fmt.Errorf("parse %s: %w", path, decodeErr)
		}
	default:
		return cfg, fmt.Errorf("unsupported config extension: %s", ext)
	}
	if raw == nil {
		return cfg, nil
	}
	decoded, err := decodeConfigMap(raw)
	if err != nil {
		return cfg, fmt.Errorf("%s: %w", path, err)
	}
	return decoded, nil
}

func decodeConfigMap(raw map[string]any) (Config, error) {
	var cfg Config
	extractSection := make(map[string]any)
	translateSection := make(map[string]any)
	serverSection := make(map[string]any)
	logSection := make(map[string]any)

	sections := map[string]struct {
		dst     map[string]any
		allowed map[string]string
	}{
		"extract":   {extractSection, extractKeyMap},
		"translate": {translateSection, translateKeyMap},
		"server":    {serverSection, serverKeyMap},
		"log":       {logSection, logKeyMap},
	}

	for key, value := range raw {
		norm := normalizeKey(key)
		if sec, ok := sections[norm]; ok {
			sub, err := toStringKeyMap(value)
			if err != nil {
				return cfg, fmt.Errorf("%s: %w", norm, err)
			}
			if err := fillSection(sec.dst, sub, sec.allowed, norm); err != nil {
				return cfg, err
			}
			continue
		}
		if norm == "languages" {
			defs, err := decodeLanguages(value)
			if err != nil {
				return cfg, fmt.Errorf("languages: %w", err)
			}
			cfg.Languages = defs
			continue
		}
		if flat, ok := flatKeys[norm]; ok {
			sections[flat.section].dst[flat.key] = value
			continue
		}
		return cfg, fmt.Errorf("unknown config key: %s", key)
	}

	if err := assignExtract(extractSection, &cfg.Extract); err != nil {
		return cfg, fmt.Errorf("extract: %w", err)
	}
	if err := assignTranslate(translateSection, &cfg.Translate); err != nil {
		return cfg, fmt.Errorf("translate: %w", err)
	}
	if err := assignServer(serverSection, &cfg.Server); err != nil {
		return cfg, fmt.Errorf("server: %w", err)
	}
	if err := assignLog(logSection, &cfg.Log); err != nil {
		return cfg, fmt.Errorf("log: %w", err)
	}
	return cfg, nil
}

func fillSection(dst, src map[string]any, allowed map[string]string, section string) error {
	for key, value := range src {
		canonical, ok := allowed[normalizeKey(key)]
		if !ok {
			return fmt.Errorf("unknown %s key: %s", section, key)
		}
		dst[canonical] = value
	}
	return nil
}

func assignExtract(section map[string]any, dst *ExtractConfig) error {
	for key, value := range section {
		switch key {
		case "language", "output", "fields", "color":
			str, err := expectString(value, key)
			if err != nil {
				return err
			}
			trimmed := strings.TrimSpace(str)
			switch key {
			case "language":
				dst.Language = &trimmed
			case "output":
				dst.Output = &trimmed
			case "fields":
				dst.Fields = &trimmed
			case "color":
				dst.Color = &trimmed
			}
		case "truncate":
			n, err := expectInt(value, key)
			if err != nil {
				return err
			}
			dst.Truncate = &n
		case "offset":
			n, err := expectInt(value, key)
			if err != nil {
				return err
			}
			dst.Offset = &n
		case "join_separator":
			// Whitespace is significant here, so the value is kept verbatim.
			str, err := expectString(value, key)
			if err != nil {
				return err
			}
			dst.JoinSeparator = &str
		default:
			return fmt.Errorf("unknown key: %s", key)
		}
	}
	return nil
}

func assignTranslate(section map[string]any, dst *TranslateConfig) error {
	for key, value := range section {
		str, err := expectString(value, key)
		if err != nil {
			return err
		}
		trimmed := strings.TrimSpace(str)
		switch key {
		case "target":
			dst.Target = &trimmed
		case "source":
			dst.Source = &trimmed
		case "url_template":
			dst.URLTemplate = &trimmed
		default:
			return fmt.Errorf("unknown key: %s", key)
		}
	}
	return nil
}

func assignServer(section map[string]any, dst *ServerConfig) error {
	for key, value := range section {
		switch key {
		case "addr":
			str, err := expectString(value, key)
			if err != nil {
				return err
			}
			trimmed := strings.TrimSpace(str)
			dst.Addr = &trimmed
		case "max_body_bytes":
			n, err := expectInt(value, key)
			if err != nil {
				return err
			}
			dst.MaxBodyBytes = &n
		case "read_timeout":
			d, err := expectDuration(value, key)
			if err != nil {
				return err
			}
			dst.ReadTimeout = &d
		default:
			return fmt.Errorf("unknown key: %s", key)
		}
	}
	return nil
}

func assignLog(section map[string]any, dst *LogConfig) error {
	for key, value := range section {
		str, err := expectString(value, key)
		if err != nil {
			return err
		}
		trimmed := strings.ToLower(strings.TrimSpace(str))
		switch key {
		case "level":
			dst.Level = &trimmed
		case "format":
			dst.Format = &trimmed
		default:
			return fmt.Errorf("unknown key: %s", key)
		}
	}
	return nil
}

// decodeLanguages accepts either a list of definitions or a table keyed by
// language name (the natural TOML shape, [languages.jsonnet]).
func decodeLanguages(value any) ([]syntax.Definition, error) {
	switch v := value.(type) {
	case []any:
		out := make([]syntax.Definition, 0, len(v))
		for i, item := range v {
			m, err := toStringKeyMap(item)
			if err != nil {
				return nil, fmt.Errorf("[%d]: %w", i, err)
			}
			def, err := decodeDefinition(m, "")
			if err != nil {
				return nil, fmt.Errorf("[%d]: %w", i, err)
			}
			out = append(out, def)
		}
		return out, nil
	default:
		table, err := toStringKeyMap(value)
		if err != nil {
			return nil, err
		}
		names := make([]string, 0, len(table))
		for name := range table {
			names = append(names, name)
		}
		sort.Strings(names)
		out := make([]syntax.Definition, 0, len(names))
		for _, name := range names {
			m, err := toStringKeyMap(table[name])
			if err != nil {
				return nil, fmt.Errorf("%s: %w", name, err)
			}
			def, err := decodeDefinition(m, name)
			if err != nil {
				return nil, fmt.Errorf("%s: %w", name, err)
			}
			out = append(out, def)
		}
		return out, nil
	}
}

func decodeDefinition(m map[string]any, name string) (syntax.Definition, error) {
	def := syntax.Definition{Name: name}
	for key, value := range m {
		switch normalizeKey(key) {
		case "name":
			str, err := expectString(value, "name")
			if err != nil {
				return def, err
			}
			def.Name = strings.TrimSpace(str)
		case "aliases", "alias":
			list, err := expectStringList(value, "aliases")
			if err != nil {
				return def, err
			}
			def.Aliases = list
		case "line", "lines", "line_prefixes":
			// Prefixes keep their trailing spaces ("REM ").
			list, err := expectRawStringList(value, "line")
			if err != nil {
				return def, err
			}
			def.Line = list
		case "block", "blocks":
			blocks, err := decodeBlocks(value)
			if err != nil {
				return def, err
			}
			def.Blocks = blocks
		case "strings", "string":
			rules, err := decodeStrings(value)
			if err != nil {
				return def, err
			}
			def.Strings = rules
		default:
			return def, fmt.Errorf("unknown language key: %s", key)
		}
	}
	return def, nil
}

func decodeBlocks(value any) ([]syntax.BlockPair, error) {
	items, err := expectMapList(value, "block")
	if err != nil {
		return nil, err
	}
	out := make([]syntax.BlockPair, 0, len(items))
	for i, m := range items {
		var bp syntax.BlockPair
		for key, v := range m {
			field := fmt.Sprintf("block[%d].%s", i, key)
			switch normalizeKey(key) {
			case "open":
				s, err := expectString(v, field)
				if err != nil {
					return nil, err
				}
				bp.Open = s
			case "close":
				s, err := expectString(v, field)
				if err != nil {
					return nil, err
				}
				bp.Close = s
			case "nested":
				b, err := expectBool(v, field)
				if err != nil {
					return nil, err
				}
				bp.Nested = b
			case "at_line_start":
				b, err := expectBool(v, field)
				if err != nil {
					return nil, err
				}
				bp.AtLineStart = b
			default:
				return nil, fmt.Errorf("unknown block key: %s", key)
			}
		}
		out = append(out, bp)
	}
	return out, nil
}

func decodeStrings(value any) ([]syntax.StringRule, error) {
	items, err := expectMapList(value, "strings")
	if err != nil {
		return nil, err
	}
	out := make([]syntax.StringRule, 0, len(items))
	for i, m := range items {
		var rule syntax.StringRule
		for key, v := range m {
			field := fmt.Sprintf("strings[%d].%s", i, key)
			switch normalizeKey(key) {
			case "open":
				s, err := expectString(v, field)
				if err != nil {
					return nil, err
				}
				rule.Open = s
			case "close":
				s, err := expectString(v, field)
				if err != nil {
					return nil, err
				}
				rule.Close = s
			case "escape":
				s, err := expectString(v, field)
				if err != nil {
					return nil, err
				}
				if len(s) > 1 {
					return nil, fmt.Errorf("%s must be a single byte, got %q", field, s)
				}
				if s != "" {
					rule.Escape = s[0]
				}
			case "multiline":
				b, err := expectBool(v, field)
				if err != nil {
					return nil, err
				}
				rule.Multiline = b
			case "char":
				b, err := expectBool(v, field)
				if err != nil {
					return nil, err
				}
				rule.Char = b
			default:
				return nil, fmt.Errorf("unknown strings key: %s", key)
			}
		}
		out = append(out, rule)
	}
	return out, nil
}

func expectString(value any, field string) (string, error) {
	if value == nil {
		return "", fmt.Errorf("%s cannot be null", field)
	}
	if s, ok := value.(string); ok {
		return s, nil
	}
	return "", fmt.Errorf("expected string for %s, got %T", field, value)
}

func expectBool(value any, field string) (bool, error) {
	switch v := value.(type) {
	case bool:
		return v, nil
	case string:
		return ParseBool(v, field)
	default:
		return false, fmt.Errorf("expected bool for %s, got %T", field, value)
	}
}

func expectInt(value any, field string) (int, error) {
	switch v := value.(type) {
	case int:
		return v, nil
	case int64:
		return int(v), nil
	case float64:
		if v != float64(int(v)) {
			return 0, fmt.Errorf("expected integer for %s, got %v", field, value)
		}
		return int(v), nil
	case json.Number:
		n, err := strconv.Atoi(v.String())
		if err != nil {
			return 0, fmt.Errorf("invalid integer value for %s: %v", field, value)
		}
		return n, nil
	case string:
		return parseInt(v, field)
	default:
		return 0, fmt.Errorf("expected integer for %s, got %T", field, value)
	}
}

// expectDuration accepts Go duration strings ("5s") or a number of seconds.
func expectDuration(value any, field string) (time.Duration, error) {
	if s, ok := value.(string); ok {
		return ParseDuration(s, field)
	}
	n, err := expectInt(value, field)
	if err != nil {
		return 0, err
	}
	return time.Duration(n) * time.Second, nil
}

func expectStringList(value any, field string) ([]string, error) {
	switch v := value.(type) {
	case string:
		return normalizeList(SplitMulti([]string{v})), nil
	default:
		list, err := expectRawStringList(value, field)
		if err != nil {
			return nil, err
		}
		return normalizeList(list), nil
	}
}

func expectRawStringList(value any, field string) ([]string, error) {
	switch v := value.(type) {
	case string:
		return []string{v}, nil
	case []any:
		out := make([]string, 0, len(v))
		for _, item := range v {
			str, err := expectString(item, field)
			if err != nil {
				return nil, err
			}
			out = append(out, str)
		}
		return out, nil
	case []string:
		return cloneStrings(v), nil
	default:
		return nil, fmt.Errorf("expected string or list for %s, got %T", field, value)
	}
}

func expectMapList(value any, field string) ([]map[string]any, error) {
	switch v := value.(type) {
	case []any:
		out := make([]map[string]any, 0, len(v))
		for i, item := range v {
			m, err := toStringKeyMap(item)
			if err != nil {
				return nil, fmt.Errorf("%s[%d]: %w", field, i, err)
			}
			out = append(out, m)
		}
		return out, nil
	case []map[string]any:
		return v, nil
	default:
		m, err := toStringKeyMap(value)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", field, err)
		}
		return []map[string]any{m}, nil
	}
}

func normalizeList(values []string) []string {
	out := make([]string, 0, len(values))
	for _, v := range values {
		trimmed := strings.TrimSpace(v)
		if trimmed == "" {
			continue
		}
		out = append(out, trimmed)
	}
	return out
}

func toStringKeyMap(v any) (map[string]any, error) {
	switch typed := v.(type) {
	case map[string]any:
		return typed, nil
	case map[any]any:
		out := make(map[string]any, len(typed))
		for k, value := range typed {
			key, ok := k.(string)
			if !ok {
				return nil, fmt.Errorf("non-string key: %v", k)
			}
			out[key] = value
		}
		return out, nil
	default:
		return nil, fmt.Errorf("expected map, got %T", v)
	}
}

func normalizeKey(key string) string {
	norm := strings.ToLower(strings.TrimSpace(key))
	norm = strings.ReplaceAll(norm, "-", "_")
	return norm
}
