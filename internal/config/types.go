package config

import (
	"time"

	"github.com/phyten/commentx/internal/syntax"
)

// DefaultURLTemplate opens Google Translate with the prepared text.
const DefaultURLTemplate = "https://translate.google.com/?sl={source}&tl={target}&text={text}&op=translate"

type ExtractConfig struct {
	Language      *string `yaml:"language" toml:"language" json:"language"`
	Output        *string `yaml:"output" toml:"output" json:"output"`
	Fields        *string `yaml:"fields" toml:"fields" json:"fields"`
	Truncate      *int    `yaml:"truncate" toml:"truncate" json:"truncate"`
	Color         *string `yaml:"color" toml:"color" json:"color"`
	Offset        *int    `yaml:"offset" toml:"offset" json:"offset"`
	JoinSeparator *string `yaml:"join_separator" toml:"join_separator" json:"join_separator"`
}

type TranslateConfig struct {
	Target      *string `yaml:"target" toml:"target" json:"target"`
	Source      *string `yaml:"source" toml:"source" json:"source"`
	URLTemplate *string `yaml:"url_template" toml:"url_template" json:"url_template"`
}

type ServerConfig struct {
	Addr         *string        `yaml:"addr" toml:"addr" json:"addr"`
	MaxBodyBytes *int           `yaml:"max_body_bytes" toml:"max_body_bytes" json:"max_body_bytes"`
	ReadTimeout  *time.Duration `yaml:"read_timeout" toml:"read_timeout" json:"read_timeout"`
}

type LogConfig struct {
	Level  *string `yaml:"level" toml:"level" json:"level"`
	Format *string `yaml:"format" toml:"format" json:"format"`
}

// Config is one layer (file, env or flags). Nil fields leave lower layers
// untouched.
type Config struct {
	Extract   ExtractConfig       `yaml:"extract" toml:"extract" json:"extract"`
	Translate TranslateConfig     `yaml:"translate" toml:"translate" json:"translate"`
	Server    ServerConfig        `yaml:"server" toml:"server" json:"server"`
	Log       LogConfig           `yaml:"log" toml:"log" json:"log"`
	Languages []syntax.Definition `yaml:"languages" toml:"languages" json:"languages"`
}

type ExtractSettings struct {
	Language      string
	Output        string
	Fields        string
	Truncate      int
	Color         string
	Offset        int
	JoinSeparator string
}

type TranslateSettings struct {
	Target      string
	Source      string
	URLTemplate string
}

type ServerSettings struct {
	Addr         string
	MaxBodyBytes int
	ReadTimeout  time.Duration
}

type LogSettings struct {
	Level  string
	Format string
}

// Settings is the fully resolved configuration.
type Settings struct {
	Extract   ExtractSettings
	Translate TranslateSettings
	Server    ServerSettings
	Log       LogSettings
	Languages []syntax.Definition
}

func DefaultSettings() Settings {
	return Settings{
		Extract: ExtractSettings{
			Output:        "table",
			Color:         "auto",
			JoinSeparator: "\n",
		},
		Translate: TranslateSettings{
			Target:      "en",
			Source:      "auto",
			URLTemplate: DefaultURLTemplate,
		},
		Server: ServerSettings{
			Addr:         "127.0.0.1:8765",
			MaxBodyBytes: 1 << 20,
			ReadTimeout:  10 * time.Second,
		},
		Log: LogSettings{
			Level:  "info",
			Format: "logfmt",
		},
	}
}

// Registry builds the language registry from the configured custom
// definitions layered over the built-in table.
func (s Settings) Registry() (*syntax.Registry, error) {
	return syntax.NewRegistry(s.Languages...)
}

func cloneStrings(in []string) []string {
	if len(in) == 0 {
		return nil
	}
	out := make([]string, len(in))
	copy(out, in)
	return out
}
