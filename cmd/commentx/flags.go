package main

import (
	"strconv"
	"strings"

	"github.com/spf13/pflag"

	"github.com/phyten/commentx/internal/config"
)

var separatorEscapes = strings.NewReplacer(`\n`, "\n", `\t`, "\t", `\\`, `\`)

// flagLayer turns the flags the user actually set into a config layer so that
// unset flags never shadow the file or the environment.
func flagLayer(fs *pflag.FlagSet) (config.Config, error) {
	var cfg config.Config
	changed := func(name string) *pflag.Flag {
		f := fs.Lookup(name)
		if f == nil || !f.Changed {
			return nil
		}
		return f
	}
	str := func(name string) *string {
		f := changed(name)
		if f == nil {
			return nil
		}
		v := f.Value.String()
		return &v
	}
	num := func(name string) (*int, error) {
		f := changed(name)
		if f == nil {
			return nil, nil
		}
		n, err := strconv.Atoi(f.Value.String())
		if err != nil {
			return nil, err
		}
		return &n, nil
	}

	var err error
	cfg.Extract.Language = str("lang")
	cfg.Extract.Output = str("output")
	cfg.Extract.Color = str("color")
	if f := changed("fields"); f != nil {
		vals, _ := fs.GetStringSlice("fields")
		joined := strings.Join(config.SplitMulti(vals), ",")
		cfg.Extract.Fields = &joined
	}
	if cfg.Extract.Truncate, err = num("truncate"); err != nil {
		return cfg, err
	}
	if cfg.Extract.Offset, err = num("offset"); err != nil {
		return cfg, err
	}
	if sep := str("separator"); sep != nil {
		v := separatorEscapes.Replace(*sep)
		cfg.Extract.JoinSeparator = &v
	}

	cfg.Translate.Target = str("target")
	cfg.Translate.Source = str("source")
	cfg.Translate.URLTemplate = str("url-template")

	cfg.Server.Addr = str("addr")
	if cfg.Server.MaxBodyBytes, err = num("max-body-bytes"); err != nil {
		return cfg, err
	}
	if f := changed("read-timeout"); f != nil {
		d, err := config.ParseDuration(f.Value.String(), "--read-timeout")
		if err != nil {
			return cfg, err
		}
		cfg.Server.ReadTimeout = &d
	}

	cfg.Log.Level = str("log-level")
	cfg.Log.Format = str("log-format")
	return cfg, nil
}
