// Package syntax describes how comments and string literals are written in
// each supported language.
package syntax

// Language enumerates the languages with a built-in comment syntax.
// Unsupported is the zero value; Custom marks syntaxes defined in
// configuration.
type Language int

const (
	Unsupported Language = iota
	C
	CPP
	CSharp
	Java
	JavaScript
	TypeScript
	Go
	Rust
	Swift
	Kotlin
	Scala
	Dart
	PHP
	CSS
	SCSS
	Python
	Ruby
	Perl
	Shell
	PowerShell
	R
	YAML
	TOML
	Makefile
	Dockerfile
	SQL
	Lua
	Haskell
	HTML
	XML
	Razor
	VisualBasic
	FSharp
	OCaml
	Pascal
	Batch
	Ini
	Lisp
	Erlang
	Elixir
	MATLAB
	Fortran
	Assembly
	Terraform
	Protobuf
	Custom
)

// String returns the canonical lower-case name used for lookups.
func (l Language) String() string {
	if s, ok := builtin[l]; ok {
		return s.name
	}
	if l == Custom {
		return "custom"
	}
	return "unsupported"
}

// BlockPair is an open/close delimiter pair for block comments.
// AtLineStart restricts both delimiters to the start of a line (after
// indentation), as with Ruby's =begin/=end.
type BlockPair struct {
	Open        string
	Close       string
	Nested      bool
	AtLineStart bool
}

// StringRule describes a string or character literal. Escape is the byte that
// escapes the next byte inside the literal, 0 when the literal has no
// escapes. Literals that are not Multiline end at a newline. A Char rule
// only opens when a single character (or one escape sequence) is closed on
// the spot, so 'a in a Rust lifetime is left alone.
type StringRule struct {
	Open      string
	Close     string
	Escape    byte
	Multiline bool
	Char      bool
}

// Syntax is an immutable comment syntax descriptor. The zero value is the
// unsupported syntax.
type Syntax struct {
	lang    Language
	name    string
	line    []string
	blocks  []BlockPair
	strings []StringRule
}

func (s Syntax) Language() Language { return s.lang }

func (s Syntax) Name() string { return s.name }

// Supported reports whether s describes a real language.
func (s Syntax) Supported() bool {
	return s.lang != Unsupported && (len(s.line) > 0 || len(s.blocks) > 0)
}

func (s Syntax) LinePrefixes() []string {
	return append([]string(nil), s.line...)
}

func (s Syntax) Blocks() []BlockPair {
	return append([]BlockPair(nil), s.blocks...)
}

func (s Syntax) Strings() []StringRule {
	return append([]StringRule(nil), s.strings...)
}

func (s Syntax) withIdentity(lang Language, name string) Syntax {
	s.lang = lang
	s.name = name
	return s
}
