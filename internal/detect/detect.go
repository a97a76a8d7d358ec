package detect

import (
	"bytes"
	"path/filepath"
	"strings"
)

type Info struct {
	Name string
}

// FromPathAndContent guesses the canonical language of a file from its name,
// falling back to the shebang line. An empty Name means "unknown".
func FromPathAndContent(p string, data []byte) Info {
	name := detectByPath(p)
	if name != "" {
		if strings.EqualFold(filepath.Ext(p), ".m") && looksLikeMatlab(data) {
			return Info{Name: "matlab"}
		}
		return Info{Name: name}
	}
	if shebang := detectByShebang(data); shebang != "" {
		return Info{Name: shebang}
	}
	return Info{Name: ""}
}

func detectByPath(p string) string {
	base := filepath.Base(p)
	lowerBase := strings.ToLower(base)
	if lang, ok := basenameLanguages[lowerBase]; ok {
		return lang
	}
	ext := strings.ToLower(filepath.Ext(base))
	if ext == "" {
		return ""
	}
	if lang, ok := extensionLanguages[ext]; ok {
		return lang
	}
	stem := strings.TrimSuffix(lowerBase, ext)
	if lang, ok := basenameLanguages[stem]; ok {
		return lang
	}
	return ""
}

func detectByShebang(data []byte) string {
	if len(data) == 0 || !bytes.HasPrefix(data, []byte("#!")) {
		return ""
	}
	end := bytes.IndexByte(data, '\n')
	if end == -1 {
		end = len(data)
	}
	fields := strings.Fields(strings.ToLower(string(data[2:end])))
	for _, f := range fields {
		prog := filepath.Base(f)
		if prog == "env" || strings.HasPrefix(prog, "-") {
			continue
		}
		if lang, ok := shebangLanguages[prog]; ok {
			return lang
		}
		if lang, ok := shebangLanguages[strings.TrimRight(prog, "0123456789.")]; ok {
			return lang
		}
	}
	return ""
}

// NormalizeLangName maps an editor display name, short alias or file
// extension to a canonical language name. Matching is case-insensitive.
// Unknown names are returned lower-cased and trimmed.
func NormalizeLangName(name string) string {
	n := strings.ToLower(strings.TrimSpace(name))
	if n == "" {
		return ""
	}
	if canon, ok := langAliases[n]; ok {
		return canon
	}
	if strings.HasPrefix(n, ".") {
		if canon, ok := extensionLanguages[n]; ok {
			return canon
		}
	}
	return n
}

// CanonicalLangs normalizes and dedupes a list of language names, keeping the
// first occurrence order.
func CanonicalLangs(values []string) []string {
	if len(values) == 0 {
		return values
	}
	out := make([]string, 0, len(values))
	seen := make(map[string]struct{}, len(values))
	for _, raw := range values {
		norm := NormalizeLangName(raw)
		if norm == "" {
			continue
		}
		if _, ok := seen[norm]; ok {
			continue
		}
		seen[norm] = struct{}{}
		out = append(out, norm)
	}
	return out
}

func looksLikeMatlab(data []byte) bool {
	if len(data) == 0 {
		return false
	}
	sample := data
	if len(sample) > 4096 {
		sample = sample[:4096]
	}
	sawMatlabKeyword := false
	for _, line := range strings.Split(string(sample), "\n") {
		trimmed := strings.TrimSpace(line)
		if trimmed == "" || strings.HasPrefix(trimmed, "%") {
			continue
		}
		lower := strings.ToLower(trimmed)
		if strings.HasPrefix(lower, "@interface") || strings.HasPrefix(lower, "@implementation") || strings.HasPrefix(lower, "#import") {
			return false
		}
		if strings.HasPrefix(lower, "function") || strings.HasPrefix(lower, "classdef") {
			return true
		}
		if strings.HasPrefix(lower, "properties") || strings.HasPrefix(lower, "methods") {
			sawMatlabKeyword = true
		}
	}
	return sawMatlabKeyword
}

var basenameLanguages = map[string]string{
	"makefile":       "make",
	"gnumakefile":    "make",
	"cmakelists.txt": "make",
	"dockerfile":     "dockerfile",
	"containerfile":  "dockerfile",
	"podfile":        "ruby",
	"vagrantfile":    "ruby",
	"gemfile":        "ruby",
	"rakefile":       "ruby",
	"jenkinsfile":    "java",
	"justfile":       "make",
	"procfile":       "yaml",
	".bashrc":        "shell",
	".zshrc":         "shell",
	".profile":       "shell",
	".editorconfig":  "ini",
	".gitconfig":     "ini",
}

var extensionLanguages = map[string]string{
	".c":          "c",
	".h":          "c",
	".m":          "c",
	".cc":         "cpp",
	".cp":         "cpp",
	".cpp":        "cpp",
	".cxx":        "cpp",
	".hh":         "cpp",
	".hpp":        "cpp",
	".hxx":        "cpp",
	".mm":         "cpp",
	".ino":        "cpp",
	".cs":         "csharp",
	".csx":        "csharp",
	".java":       "java",
	".groovy":     "java",
	".gradle":     "java",
	".js":         "javascript",
	".mjs":        "javascript",
	".cjs":        "javascript",
	".jsx":        "javascript",
	".ts":         "typescript",
	".mts":        "typescript",
	".cts":        "typescript",
	".tsx":        "typescript",
	".go":         "go",
	".rs":         "rust",
	".swift":      "swift",
	".kt":         "kotlin",
	".kts":        "kotlin",
	".scala":      "scala",
	".sc":         "scala",
	".dart":       "dart",
	".php":        "php",
	".phtml":      "php",
	".css":        "css",
	".scss":       "scss",
	".less":       "scss",
	".py":         "python",
	".pyw":        "python",
	".pyi":        "python",
	".pyx":        "python",
	".rb":         "ruby",
	".rake":       "ruby",
	".gemspec":    "ruby",
	".pl":         "perl",
	".pm":         "perl",
	".sh":         "shell",
	".bash":       "shell",
	".zsh":        "shell",
	".ksh":        "shell",
	".fish":       "shell",
	".ps1":        "powershell",
	".psm1":       "powershell",
	".psd1":       "powershell",
	".r":          "r",
	".yaml":       "yaml",
	".yml":        "yaml",
	".toml":       "toml",
	".mk":         "make",
	".make":       "make",
	".dockerfile": "dockerfile",
	".sql":        "sql",
	".psql":       "sql",
	".pgsql":      "sql",
	".plsql":      "sql",
	".lua":        "lua",
	".hs":         "haskell",
	".lhs":        "haskell",
	".elm":        "haskell",
	".html":       "html",
	".htm":        "html",
	".xhtml":      "html",
	".vue":        "html",
	".svelte":     "html",
	".aspx":       "html",
	".ascx":       "html",
	".xml":        "xml",
	".xaml":       "xml",
	".svg":        "xml",
	".plist":      "xml",
	".csproj":     "xml",
	".vbproj":     "xml",
	".fsproj":     "xml",
	".props":      "xml",
	".targets":    "xml",
	".resx":       "xml",
	".config":     "xml",
	".cshtml":     "razor",
	".razor":      "razor",
	".vb":         "vb",
	".vbs":        "vb",
	".bas":        "vb",
	".fs":         "fsharp",
	".fsi":        "fsharp",
	".fsx":        "fsharp",
	".ml":         "ocaml",
	".mli":        "ocaml",
	".pas":        "pascal",
	".pp":         "pascal",
	".dpr":        "pascal",
	".bat":        "batch",
	".cmd":        "batch",
	".ini":        "ini",
	".cfg":        "ini",
	".conf":       "ini",
	".properties": "ini",
	".lisp":       "lisp",
	".lsp":        "lisp",
	".cl":         "lisp",
	".el":         "lisp",
	".scm":        "lisp",
	".rkt":        "lisp",
	".clj":        "lisp",
	".erl":        "erlang",
	".hrl":        "erlang",
	".ex":         "elixir",
	".exs":        "elixir",
	".f":          "fortran",
	".for":        "fortran",
	".f90":        "fortran",
	".f95":        "fortran",
	".asm":        "assembly",
	".s":          "assembly",
	".nasm":       "assembly",
	".tf":         "terraform",
	".tfvars":     "terraform",
	".hcl":        "terraform",
	".proto":      "proto",
}

// langAliases covers editor display names ("C#", "C/C++", "Basic", "HTMLX",
// ...) and common short names.
var langAliases = map[string]string{
	"c#":               "csharp",
	"cs":               "csharp",
	"c sharp":          "csharp",
	"c/c++":            "cpp",
	"c++":              "cpp",
	"cc":               "cpp",
	"cxx":              "cpp",
	"hpp":              "cpp",
	"objective-c":      "c",
	"objc":             "c",
	"objective-cpp":    "cpp",
	"objective-c++":    "cpp",
	"h":                "c",
	"js":               "javascript",
	"jscript":          "javascript",
	"ecmascript":       "javascript",
	"node":             "javascript",
	"jsx":              "javascript",
	"javascriptreact":  "javascript",
	"ts":               "typescript",
	"tsx":              "typescript",
	"typescriptreact":  "typescript",
	"golang":           "go",
	"rs":               "rust",
	"kt":               "kotlin",
	"py":               "python",
	"python3":          "python",
	"rb":               "ruby",
	"pl":               "perl",
	"bash":             "shell",
	"sh":               "shell",
	"zsh":              "shell",
	"shellscript":      "shell",
	"fish":             "shell",
	"ps":               "powershell",
	"ps1":              "powershell",
	"pwsh":             "powershell",
	"yml":              "yaml",
	"makefile":         "make",
	"mk":               "make",
	"docker":           "dockerfile",
	"tsql":             "sql",
	"t-sql":            "sql",
	"plsql":            "sql",
	"mysql":            "sql",
	"postgresql":       "sql",
	"sql server tools": "sql",
	"hs":               "haskell",
	"htm":              "html",
	"htmlx":            "html",
	"html/xml":         "html",
	"xml/html":         "html",
	"xhtml":            "html",
	"vue":              "html",
	"aspx":             "html",
	"xaml":             "xml",
	"svg":              "xml",
	"cshtml":           "razor",
	"aspnetcorerazor":  "razor",
	"basic":            "vb",
	"vb.net":           "vb",
	"vbnet":            "vb",
	"visual basic":     "vb",
	"vbscript":         "vb",
	"f#":               "fsharp",
	"fs":               "fsharp",
	"ml":               "ocaml",
	"delphi":           "pascal",
	"bat":              "batch",
	"cmd":              "batch",
	"properties":       "ini",
	"common-lisp":      "lisp",
	"scheme":           "lisp",
	"racket":           "lisp",
	"clojure":          "lisp",
	"emacs-lisp":       "lisp",
	"erl":              "erlang",
	"ex":               "elixir",
	"octave":           "matlab",
	"f90":              "fortran",
	"asm":              "assembly",
	"nasm":             "assembly",
	"tf":               "terraform",
	"hcl":              "terraform",
	"protobuf":         "proto",
	"less":             "scss",
	"sass":             "scss",
	"groovy":           "java",
	"gradle":           "java",
	"elm":              "haskell",
}

var shebangLanguages = map[string]string{
	"python":     "python",
	"pypy":       "python",
	"node":       "javascript",
	"deno":       "typescript",
	"perl":       "perl",
	"ruby":       "ruby",
	"php":        "php",
	"bash":       "shell",
	"sh":         "shell",
	"zsh":        "shell",
	"ksh":        "shell",
	"dash":       "shell",
	"fish":       "shell",
	"pwsh":       "powershell",
	"powershell": "powershell",
	"lua":        "lua",
	"rscript":    "r",
	"elixir":     "elixir",
	"escript":    "erlang",
}
