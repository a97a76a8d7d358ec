package syntax

import (
	"errors"
	"fmt"
	"sort"
	"strings"

	"github.com/phyten/commentx/internal/detect"
)

// Lookup resolves a free-form language identifier (editor display name,
// alias, extension or canonical name) against the built-in table. The second
// result is false for unknown or empty identifiers; callers then treat the
// text as plain text.
func Lookup(languageID string) (Syntax, bool) {
	lang, ok := builtinByName[detect.NormalizeLangName(languageID)]
	if !ok {
		return Syntax{}, false
	}
	return builtin[lang], true
}

// ForLanguage returns the built-in syntax for lang, or the zero Syntax.
func ForLanguage(lang Language) Syntax {
	return builtin[lang]
}

// Languages lists the canonical names of the built-in syntaxes, sorted.
func Languages() []string {
	out := make([]string, 0, len(builtinByName))
	for name := range builtinByName {
		out = append(out, name)
	}
	sort.Strings(out)
	return out
}

// Definition is a user-supplied comment syntax, usually read from a config
// file.
type Definition struct {
	Name    string
	Aliases []string
	Line    []string
	Blocks  []BlockPair
	Strings []StringRule
}

// Validate reports configuration mistakes in d.
func (d Definition) Validate() error {
	var errs []error
	if strings.TrimSpace(d.Name) == "" {
		errs = append(errs, errors.New("name is required"))
	}
	if len(d.Line) == 0 && len(d.Blocks) == 0 {
		errs = append(errs, errors.New("at least one line prefix or block pair is required"))
	}
	for i, p := range d.Line {
		if p == "" {
			errs = append(errs, fmt.Errorf("line[%d]: empty prefix", i))
		}
	}
	for i, b := range d.Blocks {
		if b.Open == "" || b.Close == "" {
			errs = append(errs, fmt.Errorf("block[%d]: open and close are required", i))
		}
	}
	for i, s := range d.Strings {
		if s.Open == "" || s.Close == "" {
			errs = append(errs, fmt.Errorf("strings[%d]: open and close are required", i))
		}
	}
	if len(errs) > 0 {
		return fmt.Errorf("language %q: %w", d.Name, errors.Join(errs...))
	}
	return nil
}

// Registry layers custom definitions over the built-in table. A Registry is
// immutable once built; a nil *Registry behaves like the built-in table.
type Registry struct {
	custom  map[string]Syntax
	aliases map[string]string
}

// NewRegistry validates defs and builds a registry. Later definitions win over
// earlier ones and over built-in languages of the same name.
func NewRegistry(defs ...Definition) (*Registry, error) {
	r := &Registry{
		custom:  make(map[string]Syntax, len(defs)),
		aliases: make(map[string]string),
	}
	var errs []error
	for _, d := range defs {
		if err := d.Validate(); err != nil {
			errs = append(errs, err)
			continue
		}
		name := strings.ToLower(strings.TrimSpace(d.Name))
		r.custom[name] = Syntax{
			lang:    Custom,
			name:    name,
			line:    append([]string(nil), d.Line...),
			blocks:  append([]BlockPair(nil), d.Blocks...),
			strings: append([]StringRule(nil), d.Strings...),
		}
		for _, a := range d.Aliases {
			if key := strings.ToLower(strings.TrimSpace(a)); key != "" {
				r.aliases[key] = name
			}
		}
	}
	if len(errs) > 0 {
		return nil, errors.Join(errs...)
	}
	return r, nil
}

// Lookup has the same contract as the package-level Lookup.
func (r *Registry) Lookup(languageID string) (Syntax, bool) {
	if r != nil && len(r.custom) > 0 {
		key := strings.ToLower(strings.TrimSpace(languageID))
		if alias, ok := r.aliases[key]; ok {
			key = alias
		}
		if s, ok := r.custom[key]; ok {
			return s, true
		}
		if s, ok := r.custom[detect.NormalizeLangName(languageID)]; ok {
			return s, true
		}
	}
	return Lookup(languageID)
}

// Names lists built-in and custom language names, sorted and deduplicated.
func (r *Registry) Names() []string {
	names := Languages()
	if r == nil {
		return names
	}
	seen := make(map[string]struct{}, len(names)+len(r.custom))
	for _, n := range names {
		seen[n] = struct{}{}
	}
	for n := range r.custom {
		if _, ok := seen[n]; ok {
			continue
		}
		seen[n] = struct{}{}
		names = append(names, n)
	}
	sort.Strings(names)
	return names
}
