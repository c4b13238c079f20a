package pipeline

import (
	"strings"
	"unicode/utf8"

	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

// DefaultExcerptLength is the rune budget for listing excerpts.
const DefaultExcerptLength = 200

// Excerpt returns the whitespace-collapsed text of the first non-empty
// paragraph in an HTML fragment, cut to at most maxRunes runes (an ellipsis
// is appended when text is cut). Returns "" when there is no paragraph.
func Excerpt(htmlContent string, maxRunes int) (string, error) {
	nodes, err := parseFragment(htmlContent)
	if err != nil {
		return "", err
	}

	for _, n := range nodes {
		if p := firstParagraph(n); p != "" {
			return truncateRunes(p, maxRunes), nil
		}
	}
	return "", nil
}

// parseFragment parses an HTML fragment with a body context so the parser
// does not wrap it in <html><body>.
func parseFragment(content string) ([]*html.Node, error) {
	context := &html.Node{
		Type:     html.ElementNode,
		DataAtom: atom.Body,
		Data:     "body",
	}
	return html.ParseFragment(strings.NewReader(content), context)
}

// firstParagraph walks the tree depth-first and returns the text of the
// first <p> that contains any.
func firstParagraph(n *html.Node) string {
	if n.Type == html.ElementNode && n.DataAtom == atom.P {
		var sb strings.Builder
		collectText(n, &sb)
		if text := strings.Join(strings.Fields(sb.String()), " "); text != "" {
			return text
		}
		return ""
	}

	for c := n.FirstChild; c != nil; c = c.NextSibling {
		if text := firstParagraph(c); text != "" {
			return text
		}
	}
	return ""
}

func collectText(n *html.Node, sb *strings.Builder) {
	if n.Type == html.TextNode {
		sb.WriteString(n.Data)
		return
	}
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		collectText(c, sb)
	}
}

func truncateRunes(s string, maxRunes int) string {
	if maxRunes <= 0 || utf8.RuneCountInString(s) <= maxRunes {
		return s
	}
	runes := []rune(s)
	return strings.TrimSpace(string(runes[:maxRunes])) + "…"
}
