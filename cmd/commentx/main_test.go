package main

import (
	"bytes"
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/phyten/commentx/internal/engine"
	"github.com/phyten/commentx/internal/output"
)

func testEnvironment(t *testing.T, stdin string, vars map[string]string) environment {
	t.Helper()
	dir := t.TempDir()
	all := map[string]string{
		"HOME":            dir,
		"XDG_CONFIG_HOME": filepath.Join(dir, "xdg"),
	}
	for k, v := range vars {
		all[k] = v
	}
	return environment{
		vars:  all,
		stdin: strings.NewReader(stdin),
		cwd:   dir,
		open: func(string) error {
			t.Fatal("browser must not be opened in this test")
			return nil
		},
	}
}

func runCLI(t *testing.T, env environment, args ...string) (string, string, error) {
	t.Helper()
	cmd := newRootCommand(env)
	var out, errOut bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&errOut)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), errOut.String(), err
}

func TestHelpはサブコマンドを表示する(t *testing.T) {
	out, _, err := runCLI(t, testEnvironment(t, "", nil), "--help")
	require.NoError(t, err)
	for _, sub := range []string{"extract", "selection", "langs", "open", "serve"} {
		assert.Contains(t, out, sub)
	}
}

func TestExtractはファイル名から言語を判定する(t *testing.T) {
	env := testEnvironment(t, "", nil)
	path := filepath.Join(env.cwd, "main.go")
	src := "package main\n\n// Hello greets.\nfunc Hello() {} /* done */\n"
	require.NoError(t, os.WriteFile(path, []byte(src), 0o644))

	out, _, err := runCLI(t, env, "extract", path, "-o", "json")
	require.NoError(t, err)

	var rows []output.Row
	require.NoError(t, json.Unmarshal([]byte(out), &rows))
	require.Len(t, rows, 2)
	assert.Equal(t, "Hello greets.", rows[0].Content)
	assert.Equal(t, "go", rows[0].Language)
	assert.Equal(t, path, rows[0].File)
	assert.Equal(t, 3, rows[0].Span.StartLine)
	assert.Equal(t, "done", rows[1].Content)
	assert.Equal(t, 4, rows[1].Span.StartLine)
	assert.Equal(t, 17, rows[1].Span.StartCol)
}

func TestExtractは標準入力をCSVで出力する(t *testing.T) {
	env := testEnvironment(t, "x = 1  # note\n", nil)
	out, _, err := runCLI(t, env, "extract", "-", "--lang", "python", "-o", "csv", "--fields", "kind", "--fields", "content")
	require.NoError(t, err)
	assert.Equal(t, "KIND,CONTENT\r\nline,note\r\n", out)
}

func TestExtractの既定はテーブル出力(t *testing.T) {
	env := testEnvironment(t, "// a\n", nil)
	out, _, err := runCLI(t, env, "extract", "--lang", "go")
	require.NoError(t, err)
	assert.Equal(t, "LOCATION  KIND  CONTENT\n1:1       line  a\n", out)
}

func TestExtractはオフセットを加算する(t *testing.T) {
	env := testEnvironment(t, "/* abc", nil)
	out, stderr, err := runCLI(t, env, "extract", "--lang", "c", "--offset", "40", "-o", "ndjson", "--log-level", "debug")
	require.NoError(t, err)

	var row output.Row
	require.NoError(t, json.Unmarshal([]byte(out), &row))
	assert.Equal(t, 40, row.Region.Start)
	assert.True(t, row.Region.Unterminated)
	assert.Equal(t, "abc", row.Content)
	assert.Contains(t, stderr, "unterminated comment")
}

func TestExtractは未対応言語で空の結果を返す(t *testing.T) {
	env := testEnvironment(t, "// hi\n", nil)
	out, stderr, err := runCLI(t, env, "extract", "--lang", "klingon", "-o", "json")
	require.NoError(t, err)
	assert.Equal(t, "[]\n", out)
	assert.Contains(t, stderr, "unsupported language")
}

func TestExtractは不正なフィールドを拒否する(t *testing.T) {
	env := testEnvironment(t, "// a", nil)
	_, _, err := runCLI(t, env, "extract", "--lang", "go", "--fields", "author")
	require.Error(t, err)
	var uerr usageError
	assert.ErrorAs(t, err, &uerr)
}

func TestSelection(t *testing.T) {
	tests := []struct {
		name  string
		stdin string
		args  []string
		want  string
	}{
		{
			name:  "comments are joined",
			stdin: "  // line one\n  // line two\n",
			args:  []string{"--lang", "go"},
			want:  "line one\nline two\n",
		},
		{
			name:  "separator flag",
			stdin: "// line one\n// line two",
			args:  []string{"--lang", "go", "--separator", " | "},
			want:  "line one | line two\n",
		},
		{
			name:  "escaped separator",
			stdin: "-- a\n-- b",
			args:  []string{"--lang", "sql", "--separator", `\t`},
			want:  "a\tb\n",
		},
		{
			name:  "mixed code is raw",
			stdin: "int x; // one\n",
			args:  []string{"--lang", "c"},
			want:  "int x; // one\n",
		},
		{
			name:  "unsupported language is raw",
			stdin: " // hi \n",
			args:  []string{"--lang", "klingon"},
			want:  "// hi\n",
		},
		{
			name:  "blank selection prints nothing",
			stdin: " \n\t",
			args:  []string{"--lang", "go"},
			want:  "",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			env := testEnvironment(t, tt.stdin, nil)
			out, _, err := runCLI(t, env, append([]string{"selection"}, tt.args...)...)
			require.NoError(t, err)
			assert.Equal(t, tt.want, out)
		})
	}
}

func TestSelectionJSON(t *testing.T) {
	env := testEnvironment(t, "/**\n * Docs <here>.\n */", nil)
	out, _, err := runCLI(t, env, "selection", "--lang", "java", "--json")
	require.NoError(t, err)

	var sel engine.Selection
	require.NoError(t, json.Unmarshal([]byte(out), &sel))
	assert.Equal(t, "Docs <here>.", sel.Text)
	assert.Equal(t, "java", sel.Language)
	assert.True(t, sel.PureComment)
	require.Len(t, sel.Comments, 1)
	assert.NotContains(t, out, `\u003c`)
}

func TestOpenはURLを表示する(t *testing.T) {
	env := testEnvironment(t, "# hallo welt", nil)
	out, _, err := runCLI(t, env, "open", "--lang", "python", "--target", "ja", "--print")
	require.NoError(t, err)
	assert.Equal(t, "https://translate.google.com/?sl=auto&tl=ja&text=hallo+welt&op=translate\n", out)
}

func TestOpenはブラウザへ渡す(t *testing.T) {
	env := testEnvironment(t, "// bonjour", map[string]string{
		"COMMENTX_URL_TEMPLATE": "https://example.com/?q={text}&to={target}",
		"COMMENTX_TARGET":       "de",
	})
	var opened []string
	env.open = func(u string) error {
		opened = append(opened, u)
		return nil
	}
	out, _, err := runCLI(t, env, "open", "--lang", "go")
	require.NoError(t, err)
	require.Equal(t, []string{"https://example.com/?q=bonjour&to=de"}, opened)
	assert.Equal(t, "Opened https://example.com/?q=bonjour&to=de\n", out)
}

func TestOpenは空の選択でエラーになる(t *testing.T) {
	env := testEnvironment(t, "   ", nil)
	_, _, err := runCLI(t, env, "open", "--lang", "go")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "nothing to translate")
}

func TestLangs(t *testing.T) {
	env := testEnvironment(t, "", nil)
	out, _, err := runCLI(t, env, "langs")
	require.NoError(t, err)
	lines := strings.Split(strings.TrimSpace(out), "\n")
	assert.Contains(t, lines, "go")
	assert.Contains(t, lines, "python")

	out, _, err = runCLI(t, env, "langs", "C#", "py", "klingon")
	require.NoError(t, err)
	lines = strings.Split(strings.TrimSpace(out), "\n")
	require.Len(t, lines, 3)
	assert.True(t, strings.HasPrefix(lines[0], "csharp "), lines[0])
	assert.Contains(t, lines[0], "line=//")
	assert.Contains(t, lines[1], "line=#")
	assert.True(t, strings.HasSuffix(lines[2], "unsupported"), lines[2])
}

func TestConfigの優先順位(t *testing.T) {
	env := testEnvironment(t, "(car x) ;; first\n", map[string]string{"COMMENTX_OUTPUT": "csv"})
	cfg := "output: json\nfields: content\nlanguages:\n  - name: lisplike\n    aliases: [ll]\n    line: [\";;\", \";\"]\n"
	require.NoError(t, os.WriteFile(filepath.Join(env.cwd, ".commentx.yaml"), []byte(cfg), 0o644))

	// env beats the file
	out, _, err := runCLI(t, env, "extract", "--lang", "ll")
	require.NoError(t, err)
	assert.Equal(t, "CONTENT\r\nfirst\r\n", out)

	// flags beat env
	env.stdin = strings.NewReader("(car x) ;; first\n")
	out, _, err = runCLI(t, env, "extract", "--lang", "ll", "-o", "md")
	require.NoError(t, err)
	assert.Equal(t, "| CONTENT |\n| --- |\n| first |\n", out)

	out, _, err = runCLI(t, env, "langs")
	require.NoError(t, err)
	assert.Contains(t, strings.Split(out, "\n"), "lisplike")
}

func TestExplicitConfig(t *testing.T) {
	env := testEnvironment(t, "// x", nil)
	path := filepath.Join(t.TempDir(), "custom.toml")
	require.NoError(t, os.WriteFile(path, []byte("[extract]\noutput = \"ndjson\"\n"), 0o644))
	out, _, err := runCLI(t, env, "--config", path, "extract", "--lang", "go")
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(out, "{"), out)

	_, _, err = runCLI(t, env, "--config", filepath.Join(env.cwd, "missing.yaml"), "langs")
	require.Error(t, err)
}

func TestInvalidSettings(t *testing.T) {
	env := testEnvironment(t, "", map[string]string{"COMMENTX_TRUNCATE": "many"})
	_, _, err := runCLI(t, env, "langs")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "COMMENTX_TRUNCATE")

	env = testEnvironment(t, "", nil)
	_, _, err = runCLI(t, env, "extract", "--lang", "go", "-o", "yaml")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid output")
}

func TestExecuteExitCodes(t *testing.T) {
	tests := []struct {
		name string
		args []string
		want int
	}{
		{name: "ok", args: []string{"langs"}, want: 0},
		{name: "too many args", args: []string{"extract", "a", "b"}, want: 2},
		{name: "unknown flag", args: []string{"extract", "--nope"}, want: 2},
		{name: "bad flag value", args: []string{"extract", "--offset", "x"}, want: 2},
		{name: "missing file", args: []string{"extract", "/does/not/exist.go"}, want: 1},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cmd := newRootCommand(testEnvironment(t, "", nil))
			cmd.SetOut(&bytes.Buffer{})
			cmd.SetErr(&bytes.Buffer{})
			cmd.SetArgs(tt.args)
			var stderr bytes.Buffer
			assert.Equal(t, tt.want, execute(cmd, &stderr))
			if tt.want != 0 {
				assert.Contains(t, stderr.String(), "commentx: ")
			}
		})
	}
}

func TestServeStopsWithContext(t *testing.T) {
	cmd := newRootCommand(testEnvironment(t, "", nil))
	cmd.SetOut(&bytes.Buffer{})
	cmd.SetErr(&bytes.Buffer{})
	cmd.SetArgs([]string{"serve", "--addr", "127.0.0.1:0", "--log-level", "none"})
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	require.NoError(t, cmd.ExecuteContext(ctx))
}
