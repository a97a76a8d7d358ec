// Package translate hands prepared text to a web translator in the system
// browser.
package translate

import (
	"errors"
	"fmt"
	"net/url"
	"strings"

	"github.com/pkg/browser"
)

// ErrEmptyText は翻訳対象のテキストが空のときに返されます。
var ErrEmptyText = errors.New("nothing to translate")

// BuildURL は URL テンプレートの {text} / {source} / {target} を
// クエリエスケープした値で置き換えます。
func BuildURL(tmpl, text, source, target string) (string, error) {
	if !strings.Contains(tmpl, "{text}") {
		return "", fmt.Errorf("url template must contain {text}: %q", tmpl)
	}
	if strings.TrimSpace(text) == "" {
		return "", ErrEmptyText
	}
	if source == "" {
		source = "auto"
	}
	r := strings.NewReplacer(
		"{text}", url.QueryEscape(text),
		"{source}", url.QueryEscape(source),
		"{target}", url.QueryEscape(target),
	)
	built := r.Replace(tmpl)
	u, err := url.Parse(built)
	if err != nil {
		return "", fmt.Errorf("invalid translator url: %w", err)
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return "", fmt.Errorf("translator url must be http(s): %q", built)
	}
	return built, nil
}

// Handoff opens translator URLs. Open defaults to the system browser.
type Handoff struct {
	Template string
	Source   string
	Target   string
	Open     func(string) error
}

// Send builds the URL for text and opens it, returning the URL that was
// opened.
func (h Handoff) Send(text string) (string, error) {
	u, err := BuildURL(h.Template, text, h.Source, h.Target)
	if err != nil {
		return "", err
	}
	open := h.Open
	if open == nil {
		open = browser.OpenURL
	}
	if err := open(u); err != nil {
		return "", fmt.Errorf("open browser: %w", err)
	}
	return u, nil
}
