// Package render converts article markdown bodies to sanitized HTML.
// Plain-text fields (titles, excerpts, tags) are escaped elsewhere; markdown
// bodies come through here instead, so the sanitization policy is the only
// escaping they get.
package render

import (
	"bytes"

	"github.com/microcosm-cc/bluemonday"
	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"
)

var markdown = goldmark.New(
	goldmark.WithExtensions(extension.GFM),
)

var policy = bluemonday.UGCPolicy()

// Markdown renders source to HTML and strips everything the UGC policy
// does not allow.
func Markdown(source string) (string, error) {
	var buf bytes.Buffer
	if err := markdown.Convert([]byte(source), &buf); err != nil {
		return "", err
	}
	return policy.Sanitize(buf.String()), nil
}
