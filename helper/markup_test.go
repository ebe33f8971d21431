package helper

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMarkupToHTML(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{
			"paragraph",
			"Simple text.",
			"<p>Simple text.</p>",
		},
		{
			"two paragraphs",
			"First block.\n\nSecond block.",
			"<p>First block.</p>\n<p>Second block.</p>",
		},
		{
			"heading levels",
			"# Title\n\n## Subtitle\n\n### Section",
			"<h1>Title</h1>\n<h2>Subtitle</h2>\n<h3>Section</h3>",
		},
		{
			"heading followed by lines in the same block",
			"# Title\nFirst line\nSecond line",
			"<h1>Title</h1>\n<p>First line<br />Second line</p>",
		},
		{
			"blockquote",
			"> Quoted line",
			"<blockquote>Quoted line</blockquote>",
		},
		{
			"bold and italic",
			"He was **great** and *humble*.",
			"<p>He was <strong>great</strong> and <em>humble</em>.</p>",
		},
		{
			"line break inside paragraph",
			"line one\nline two",
			"<p>line one<br />line two</p>",
		},
		{
			"html escaped",
			"a < b & c",
			"<p>a &lt; b &amp; c</p>",
		},
		{
			"crlf normalized",
			"one\r\n\r\ntwo",
			"<p>one</p>\n<p>two</p>",
		},
		{
			"empty input",
			"",
			"",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, MarkupToHTML(tt.input))
		})
	}
}
