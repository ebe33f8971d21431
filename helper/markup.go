package helper

import (
	"html"
	"regexp"
	"strings"
)

var (
	boldRe   = regexp.MustCompile(`\*\*(.+?)\*\*`)
	italicRe = regexp.MustCompile(`\*([^*\n]+)\*`)
	blankRe  = regexp.MustCompile(`\n\s*\n`)
)

// MarkupToHTML converts the lightweight biography markup to HTML. Supported:
// #/##/### headings, > blockquotes, **bold**, *italic*. Blank-line-separated
// blocks become paragraphs; single newlines inside a block become <br />.
func MarkupToHTML(src string) string {
	src = strings.ReplaceAll(src, "\r\n", "\n")

	var out []string
	for _, block := range blankRe.Split(src, -1) {
		block = strings.TrimSpace(block)
		if block == "" {
			continue
		}

		switch {
		case strings.HasPrefix(block, "### "):
			out = append(out, heading("h3", strings.TrimPrefix(block, "### "))...)
		case strings.HasPrefix(block, "## "):
			out = append(out, heading("h2", strings.TrimPrefix(block, "## "))...)
		case strings.HasPrefix(block, "# "):
			out = append(out, heading("h1", strings.TrimPrefix(block, "# "))...)
		case strings.HasPrefix(block, "> "):
			var lines []string
			for _, line := range strings.Split(block, "\n") {
				lines = append(lines, strings.TrimPrefix(strings.TrimSpace(line), "> "))
			}
			out = append(out, "<blockquote>"+inline(strings.Join(lines, "\n"))+"</blockquote>")
		default:
			out = append(out, "<p>"+inline(block)+"</p>")
		}
	}

	return strings.Join(out, "\n")
}

// A heading marker binds to the first line of its block only; any lines that
// follow without a blank line in between render as a paragraph.
func heading(tag, body string) []string {
	line, rest, _ := strings.Cut(body, "\n")
	out := []string{"<" + tag + ">" + inline(strings.TrimSpace(line)) + "</" + tag + ">"}
	if rest = strings.TrimSpace(rest); rest != "" {
		out = append(out, "<p>"+inline(rest)+"</p>")
	}
	return out
}

func inline(s string) string {
	s = html.EscapeString(s)
	s = boldRe.ReplaceAllString(s, "<strong>$1</strong>")
	s = italicRe.ReplaceAllString(s, "<em>$1</em>")
	s = strings.ReplaceAll(s, "\n", "<br />")
	return s
}
