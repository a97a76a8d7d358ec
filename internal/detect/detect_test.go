package detect

import "testing"

func TestNormalizeLangNameAliases(t *testing.T) {
	cases := map[string]string{
		"C#":        "csharp",
		"CSharp":    "csharp",
		"C/C++":     "cpp",
		"Basic":     "vb",
		"HTMLX":     "html",
		"HTML/XML":  "html",
		"XAML":      "xml",
		"JScript":   "javascript",
		" Ts ":      "typescript",
		"Py":        "python",
		"bash":      "shell",
		"F#":        "fsharp",
		".rs":       "rust",
		"something": "something",
		"":          "",
	}
	for input, want := range cases {
		if got := NormalizeLangName(input); got != want {
			t.Fatalf("NormalizeLangName(%q)=%q want %q", input, got, want)
		}
	}
}

func TestCanonicalLangsDedupes(t *testing.T) {
	in := []string{" js ", "TS", "javascript", "PY", ""}
	got := CanonicalLangs(in)
	want := []string{"javascript", "typescript", "python"}
	if len(got) != len(want) {
		t.Fatalf("unexpected length: got=%v want=%v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("value mismatch at %d: got=%q want=%q", i, got[i], want[i])
		}
	}
}

func TestFromPathAndContent(t *testing.T) {
	cases := []struct {
		path string
		data string
		want string
	}{
		{path: "src/Program.cs", want: "csharp"},
		{path: "lib/util.HPP", want: "cpp"},
		{path: "Makefile", want: "make"},
		{path: "build/Dockerfile", want: "dockerfile"},
		{path: "views/Index.cshtml", want: "razor"},
		{path: "bin/tool", data: "#!/usr/bin/env python3\nprint(1)\n", want: "python"},
		{path: "bin/run", data: "#!/bin/bash -e\n", want: "shell"},
		{path: "notes", data: "plain text\n", want: ""},
		{path: "README.unknown", want: ""},
	}
	for _, tc := range cases {
		if got := FromPathAndContent(tc.path, []byte(tc.data)).Name; got != tc.want {
			t.Fatalf("FromPathAndContent(%q)=%q want %q", tc.path, got, tc.want)
		}
	}
}

func TestFromPathAndContentMatlabHeuristic(t *testing.T) {
	data := []byte("% comment\nfunction y = square(x)\ny = x.^2;\nend\n")
	if got := FromPathAndContent("foo.m", data).Name; got != "matlab" {
		t.Fatalf("expected matlab for matlab-like .m file, got %q", got)
	}
}

func TestFromPathAndContentObjectiveCPreferred(t *testing.T) {
	data := []byte("#import <Foundation/Foundation.h>\n@interface Foo : NSObject\n@end\n")
	if got := FromPathAndContent("bar.m", data).Name; got != "c" {
		t.Fatalf("expected objective-c sources to map to c, got %q", got)
	}
}
