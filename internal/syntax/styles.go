package syntax

var (
	dq        = StringRule{Open: `"`, Close: `"`, Escape: '\\'}
	sq        = StringRule{Open: `'`, Close: `'`, Escape: '\\'}
	sqRaw     = StringRule{Open: `'`, Close: `'`}
	dqRaw     = StringRule{Open: `"`, Close: `"`}
	backtick  = StringRule{Open: "`", Close: "`", Escape: '\\', Multiline: true}
	rawTick   = StringRule{Open: "`", Close: "`", Multiline: true}
	tripleDQ  = StringRule{Open: `"""`, Close: `"""`, Escape: '\\', Multiline: true}
	tripleSQ  = StringRule{Open: `'''`, Close: `'''`, Escape: '\\', Multiline: true}
	charLit   = StringRule{Open: `'`, Close: `'`, Escape: '\\', Char: true}
	cBlock    = BlockPair{Open: "/*", Close: "*/"}
	cNested   = BlockPair{Open: "/*", Close: "*/", Nested: true}
	xmlBlock  = BlockPair{Open: "<!--", Close: "-->"}
	hashLine  = []string{"#"}
	slashLine = []string{"//"}
)

var (
	styleC = Syntax{
		line:    slashLine,
		blocks:  []BlockPair{cBlock},
		strings: []StringRule{dq, sq},
	}
	styleCSharp = Syntax{
		line:    []string{"///", "//"},
		blocks:  []BlockPair{cBlock},
		strings: []StringRule{{Open: `@"`, Close: `"`, Multiline: true}, dq, sq},
	}
	styleJS = Syntax{
		line:    slashLine,
		blocks:  []BlockPair{cBlock},
		strings: []StringRule{dq, sq, backtick},
	}
	styleGo = Syntax{
		line:    slashLine,
		blocks:  []BlockPair{cBlock},
		strings: []StringRule{dq, sq, rawTick},
	}
	styleRust = Syntax{
		line:    []string{"///", "//!", "//"},
		blocks:  []BlockPair{cNested},
		strings: []StringRule{{Open: `"`, Close: `"`, Escape: '\\', Multiline: true}, charLit},
	}
	styleSwift = Syntax{
		line:    []string{"///", "//"},
		blocks:  []BlockPair{cNested},
		strings: []StringRule{tripleDQ, dq},
	}
	styleKotlin = Syntax{
		line:    slashLine,
		blocks:  []BlockPair{cNested},
		strings: []StringRule{{Open: `"""`, Close: `"""`, Multiline: true}, dq, sq},
	}
	styleDart = Syntax{
		line:    []string{"///", "//"},
		blocks:  []BlockPair{cNested},
		strings: []StringRule{tripleDQ, tripleSQ, dq, sq},
	}
	stylePHP = Syntax{
		line:    []string{"//", "#"},
		blocks:  []BlockPair{cBlock},
		strings: []StringRule{dq, sq},
	}
	styleCSS = Syntax{
		blocks:  []BlockPair{cBlock},
		strings: []StringRule{dq, sq},
	}
	styleSCSS = Syntax{
		line:    slashLine,
		blocks:  []BlockPair{cBlock},
		strings: []StringRule{dq, sq},
	}
	stylePython = Syntax{
		line:    hashLine,
		strings: []StringRule{tripleDQ, tripleSQ, dq, sq},
	}
	styleRuby = Syntax{
		line:    hashLine,
		blocks:  []BlockPair{{Open: "=begin", Close: "=end", AtLineStart: true}},
		strings: []StringRule{dq, sq},
	}
	stylePerl = Syntax{
		line:    hashLine,
		blocks:  []BlockPair{{Open: "=pod", Close: "=cut", AtLineStart: true}},
		strings: []StringRule{dq, sq},
	}
	styleShell = Syntax{
		line:    hashLine,
		strings: []StringRule{dq, sqRaw},
	}
	stylePowershell = Syntax{
		line:    hashLine,
		blocks:  []BlockPair{{Open: "<#", Close: "#>"}},
		strings: []StringRule{{Open: `"`, Close: `"`, Escape: '`'}, sqRaw},
	}
	styleHashOnly = Syntax{
		line:    hashLine,
		strings: []StringRule{dq, sq},
	}
	styleYAML = Syntax{
		line:    hashLine,
		strings: []StringRule{dq, sqRaw},
	}
	styleTOML = Syntax{
		line:    hashLine,
		strings: []StringRule{tripleDQ, {Open: `'''`, Close: `'''`, Multiline: true}, dq, sqRaw},
	}
	styleMake = Syntax{
		line: hashLine,
	}
	styleSQL = Syntax{
		line:    []string{"--"},
		blocks:  []BlockPair{cBlock},
		strings: []StringRule{sqRaw, dqRaw},
	}
	styleLua = Syntax{
		line:    []string{"--"},
		blocks:  []BlockPair{{Open: "--[[", Close: "]]"}},
		strings: []StringRule{{Open: "[[", Close: "]]", Multiline: true}, dq, sq},
	}
	styleHaskell = Syntax{
		line:    []string{"--"},
		blocks:  []BlockPair{{Open: "{-", Close: "-}", Nested: true}},
		strings: []StringRule{dq, charLit},
	}
	styleHTML = Syntax{
		blocks: []BlockPair{xmlBlock},
	}
	styleRazor = Syntax{
		blocks: []BlockPair{{Open: "@*", Close: "*@"}, xmlBlock},
	}
	styleVB = Syntax{
		line:    []string{"'''", "'", "REM ", "rem ", "Rem "},
		strings: []StringRule{dqRaw},
	}
	styleFSharp = Syntax{
		line:    []string{"///", "//"},
		blocks:  []BlockPair{{Open: "(*", Close: "*)", Nested: true}},
		strings: []StringRule{tripleDQ, dq},
	}
	styleOCaml = Syntax{
		blocks:  []BlockPair{{Open: "(*", Close: "*)", Nested: true}},
		strings: []StringRule{dq},
	}
	stylePascal = Syntax{
		line:    slashLine,
		blocks:  []BlockPair{{Open: "{", Close: "}"}, {Open: "(*", Close: "*)"}},
		strings: []StringRule{sqRaw},
	}
	styleBatch = Syntax{
		line: []string{"REM ", "rem ", "Rem ", "::"},
	}
	styleIni = Syntax{
		line: []string{";", "#"},
	}
	styleLisp = Syntax{
		line:    []string{";"},
		blocks:  []BlockPair{{Open: "#|", Close: "|#", Nested: true}},
		strings: []StringRule{{Open: `"`, Close: `"`, Escape: '\\', Multiline: true}},
	}
	styleErlang = Syntax{
		line:    []string{"%"},
		strings: []StringRule{dq},
	}
	styleElixir = Syntax{
		line:    hashLine,
		strings: []StringRule{tripleDQ, dq},
	}
	styleMatlab = Syntax{
		line:    []string{"%"},
		blocks:  []BlockPair{{Open: "%{", Close: "%}", AtLineStart: true}},
		strings: []StringRule{dq},
	}
	styleFortran = Syntax{
		line:    []string{"!"},
		strings: []StringRule{dqRaw, sqRaw},
	}
	styleAssembly = Syntax{
		line: []string{";"},
	}
	styleHCL = Syntax{
		line:    []string{"#", "//"},
		blocks:  []BlockPair{cBlock},
		strings: []StringRule{dq},
	}
)

var builtin = map[Language]Syntax{
	C:           styleC.withIdentity(C, "c"),
	CPP:         styleC.withIdentity(CPP, "cpp"),
	CSharp:      styleCSharp.withIdentity(CSharp, "csharp"),
	Java:        styleC.withIdentity(Java, "java"),
	JavaScript:  styleJS.withIdentity(JavaScript, "javascript"),
	TypeScript:  styleJS.withIdentity(TypeScript, "typescript"),
	Go:          styleGo.withIdentity(Go, "go"),
	Rust:        styleRust.withIdentity(Rust, "rust"),
	Swift:       styleSwift.withIdentity(Swift, "swift"),
	Kotlin:      styleKotlin.withIdentity(Kotlin, "kotlin"),
	Scala:       styleKotlin.withIdentity(Scala, "scala"),
	Dart:        styleDart.withIdentity(Dart, "dart"),
	PHP:         stylePHP.withIdentity(PHP, "php"),
	CSS:         styleCSS.withIdentity(CSS, "css"),
	SCSS:        styleSCSS.withIdentity(SCSS, "scss"),
	Python:      stylePython.withIdentity(Python, "python"),
	Ruby:        styleRuby.withIdentity(Ruby, "ruby"),
	Perl:        stylePerl.withIdentity(Perl, "perl"),
	Shell:       styleShell.withIdentity(Shell, "shell"),
	PowerShell:  stylePowershell.withIdentity(PowerShell, "powershell"),
	R:           styleHashOnly.withIdentity(R, "r"),
	YAML:        styleYAML.withIdentity(YAML, "yaml"),
	TOML:        styleTOML.withIdentity(TOML, "toml"),
	Makefile:    styleMake.withIdentity(Makefile, "make"),
	Dockerfile:  styleMake.withIdentity(Dockerfile, "dockerfile"),
	SQL:         styleSQL.withIdentity(SQL, "sql"),
	Lua:         styleLua.withIdentity(Lua, "lua"),
	Haskell:     styleHaskell.withIdentity(Haskell, "haskell"),
	HTML:        styleHTML.withIdentity(HTML, "html"),
	XML:         styleHTML.withIdentity(XML, "xml"),
	Razor:       styleRazor.withIdentity(Razor, "razor"),
	VisualBasic: styleVB.withIdentity(VisualBasic, "vb"),
	FSharp:      styleFSharp.withIdentity(FSharp, "fsharp"),
	OCaml:       styleOCaml.withIdentity(OCaml, "ocaml"),
	Pascal:      stylePascal.withIdentity(Pascal, "pascal"),
	Batch:       styleBatch.withIdentity(Batch, "batch"),
	Ini:         styleIni.withIdentity(Ini, "ini"),
	Lisp:        styleLisp.withIdentity(Lisp, "lisp"),
	Erlang:      styleErlang.withIdentity(Erlang, "erlang"),
	Elixir:      styleElixir.withIdentity(Elixir, "elixir"),
	MATLAB:      styleMatlab.withIdentity(MATLAB, "matlab"),
	Fortran:     styleFortran.withIdentity(Fortran, "fortran"),
	Assembly:    styleAssembly.withIdentity(Assembly, "assembly"),
	Terraform:   styleHCL.withIdentity(Terraform, "terraform"),
	Protobuf:    styleC.withIdentity(Protobuf, "proto"),
}

var builtinByName = func() map[string]Language {
	out := make(map[string]Language, len(builtin))
	for lang, s := range builtin {
		out[s.name] = lang
	}
	return out
}()
