package config

import (
	"strings"

	"github.com/phyten/commentx/internal/syntax"
)

// Merge applies layers over base in order (defaults < file < env < flags).
// Custom language definitions accumulate; later ones win by name.
func Merge(base Settings, layers ...Config) Settings {
	out := base
	out.Languages = append([]syntax.Definition(nil), base.Languages...)
	for _, layer := range layers {
		out.Extract = MergeExtract(out.Extract, layer.Extract)
		out.Translate = MergeTranslate(out.Translate, layer.Translate)
		out.Server = MergeServer(out.Server, layer.Server)
		out.Log = MergeLog(out.Log, layer.Log)
		out.Languages = append(out.Languages, layer.Languages...)
	}
	return out
}

func MergeExtract(base ExtractSettings, layers ...ExtractConfig) ExtractSettings {
	out := base
	for _, layer := range layers {
		out.Language = ResolveAndTrim(out.Language, layer.Language)
		out.Output = ResolveAndTrim(out.Output, layer.Output)
		out.Fields = ResolveAndTrim(out.Fields, layer.Fields)
		out.Truncate = ResolveInt(out.Truncate, layer.Truncate)
		out.Color = ResolveAndTrim(out.Color, layer.Color)
		out.Offset = ResolveInt(out.Offset, layer.Offset)
		out.JoinSeparator = ResolveString(out.JoinSeparator, layer.JoinSeparator)
	}
	if strings.TrimSpace(out.Output) == "" {
		out.Output = "table"
	}
	if strings.TrimSpace(out.Color) == "" {
		out.Color = "auto"
	}
	if out.JoinSeparator == "" {
		out.JoinSeparator = "\n"
	}
	return out
}

func MergeTranslate(base TranslateSettings, layers ...TranslateConfig) TranslateSettings {
	out := base
	for _, layer := range layers {
		out.Target = ResolveAndTrim(out.Target, layer.Target)
		out.Source = ResolveAndTrim(out.Source, layer.Source)
		out.URLTemplate = ResolveAndTrim(out.URLTemplate, layer.URLTemplate)
	}
	if out.Source == "" {
		out.Source = "auto"
	}
	if out.URLTemplate == "" {
		out.URLTemplate = DefaultURLTemplate
	}
	return out
}

func MergeServer(base ServerSettings, layers ...ServerConfig) ServerSettings {
	out := base
	for _, layer := range layers {
		out.Addr = ResolveAndTrim(out.Addr, layer.Addr)
		out.MaxBodyBytes = ResolveInt(out.MaxBodyBytes, layer.MaxBodyBytes)
		out.ReadTimeout = ResolveDuration(out.ReadTimeout, layer.ReadTimeout)
	}
	return out
}

func MergeLog(base LogSettings, layers ...LogConfig) LogSettings {
	out := base
	for _, layer := range layers {
		out.Level = ResolveAndTrim(out.Level, layer.Level)
		out.Format = ResolveAndTrim(out.Format, layer.Format)
	}
	out.Level = strings.ToLower(out.Level)
	out.Format = strings.ToLower(out.Format)
	return out
}
