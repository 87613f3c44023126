package markdown

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/yuin/goldmark"
)

// Render converts markdown source to HTML.
func Render(source string) (string, error) {
	var buf bytes.Buffer
	if err := goldmark.Convert([]byte(source), &buf); err != nil {
		return "", fmt.Errorf("render markdown: %w", err)
	}
	return buf.String(), nil
}

// Void elements never get a closing tag.
var voidElements = map[string]bool{
	"area": true, "base": true, "br": true, "col": true, "embed": true,
	"hr": true, "img": true, "input": true, "link": true, "meta": true,
	"source": true, "track": true, "wbr": true,
}

// TruncateWords shortens rendered HTML to at most limit words. Markup does
// not count towards the limit; when text is cut, an ellipsis is appended
// and any still-open tags are closed so the fragment stays well formed.
func TruncateWords(html string, limit int) string {
	if limit <= 0 {
		return ""
	}

	var out strings.Builder
	var open []string
	words := 0
	inWord := false

	for i := 0; i < len(html); {
		if html[i] == '<' {
			end := strings.IndexByte(html[i:], '>')
			if end < 0 {
				break
			}
			tag := html[i : i+end+1]
			out.WriteString(tag)

			name, closing := parseTagName(tag)
			switch {
			case name == "" || voidElements[name] || strings.HasSuffix(tag, "/>"):
			case closing:
				if n := len(open); n > 0 && open[n-1] == name {
					open = open[:n-1]
				}
			default:
				open = append(open, name)
			}

			i += end + 1
			inWord = false
			continue
		}

		switch html[i] {
		case ' ', '\n', '\t', '\r':
			inWord = false
		default:
			if !inWord {
				if words == limit {
					out.WriteString("…")
					for j := len(open) - 1; j >= 0; j-- {
						out.WriteString("</" + open[j] + ">")
					}
					return out.String()
				}
				words++
				inWord = true
			}
		}

		out.WriteByte(html[i])
		i++
	}

	return out.String()
}

func parseTagName(tag string) (name string, closing bool) {
	inner := strings.Trim(tag, "<>")
	inner = strings.TrimSuffix(inner, "/")
	if strings.HasPrefix(inner, "/") {
		closing = true
		inner = inner[1:]
	}
	if idx := strings.IndexAny(inner, " \n\t\r"); idx >= 0 {
		inner = inner[:idx]
	}
	return strings.ToLower(inner), closing
}
