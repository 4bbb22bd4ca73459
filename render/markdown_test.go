package render

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMarkdown(t *testing.T) {
	html, err := Markdown("# Title\n\nsome *emphasis* and a [link](https://example.com)")
	require.NoError(t, err)
	assert.Contains(t, html, "<h1>Title</h1>")
	assert.Contains(t, html, "<em>emphasis</em>")
	assert.Contains(t, html, `href="https://example.com"`)
}

func TestMarkdownStripsScripts(t *testing.T) {
	html, err := Markdown("hello\n\n<script>alert(1)</script>")
	require.NoError(t, err)
	assert.NotContains(t, html, "<script>")
	assert.Contains(t, html, "hello")
}
