package sources

import (
	"regexp"
	"strconv"
	"strings"

	"github.com/shopspring/decimal"
	"golang.org/x/net/html"
)

// htmlTable is one parsed <table>: lower-cased header cells from the first
// row and the text of every subsequent row.
type htmlTable struct {
	headers []string
	rows    [][]string
}

// cell returns the row value under the named header column, or "".
func (t *htmlTable) cell(row []string, header string) string {
	for i, h := range t.headers {
		if h == header && i < len(row) {
			return row[i]
		}
	}
	return ""
}

// parseTables extracts every table from an HTML document. Vendor pricing and
// docs pages wrap their data in plain tables, so this is the common entry
// point for all page scrapers.
func parseTables(doc string) []htmlTable {
	root, err := html.Parse(strings.NewReader(doc))
	if err != nil {
		return nil
	}

	var tables []htmlTable
	for _, tableNode := range findAll(root, "table") {
		var t htmlTable
		for i, rowNode := range findAll(tableNode, "tr") {
			var cells []string
			for _, cellNode := range findAll(rowNode, "th", "td") {
				cells = append(cells, nodeText(cellNode))
			}
			if i == 0 {
				for _, c := range cells {
					t.headers = append(t.headers, strings.ToLower(c))
				}
				continue
			}
			if len(cells) >= 2 {
				t.rows = append(t.rows, cells)
			}
		}
		if len(t.headers) > 0 {
			tables = append(tables, t)
		}
	}
	return tables
}

// headings returns the text of every h2/h3/h4 heading paired with the text of
// its next <p> sibling, in document order.
func headings(doc string) [][2]string {
	root, err := html.Parse(strings.NewReader(doc))
	if err != nil {
		return nil
	}

	var result [][2]string
	for _, h := range findAll(root, "h2", "h3", "h4") {
		title := nodeText(h)
		if title == "" {
			continue
		}
		desc := ""
		for sib := h.NextSibling; sib != nil; sib = sib.NextSibling {
			if sib.Type != html.ElementNode {
				continue
			}
			if sib.Data == "p" {
				desc = nodeText(sib)
			}
			break
		}
		result = append(result, [2]string{title, desc})
	}
	return result
}

func findAll(n *html.Node, names ...string) []*html.Node {
	var out []*html.Node
	var walk func(*html.Node)
	walk = func(node *html.Node) {
		if node.Type == html.ElementNode {
			for _, name := range names {
				if node.Data == name {
					out = append(out, node)
					return
				}
			}
		}
		for c := node.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		walk(c)
	}
	return out
}

func nodeText(n *html.Node) string {
	var sb strings.Builder
	var walk func(*html.Node)
	walk = func(node *html.Node) {
		if node.Type == html.TextNode {
			sb.WriteString(node.Data)
		}
		for c := node.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}
	walk(n)
	return strings.TrimSpace(sb.String())
}

var (
	priceRe = regexp.MustCompile(`\$?([\d,]+\.?\d*)`)
	intRe   = regexp.MustCompile(`([\d,]+)`)
)

// extractPrice pulls a dollar amount out of text like "$2.50 / 1M tokens".
// Returns nil for placeholders such as em-dashes, "n/a" and "free".
func extractPrice(text string) *decimal.Decimal {
	text = strings.TrimSpace(text)
	switch strings.ToLower(text) {
	case "", "—", "-", "n/a", "free":
		return nil
	}

	m := priceRe.FindStringSubmatch(text)
	if m == nil {
		return nil
	}
	d, err := decimal.NewFromString(strings.ReplaceAll(m[1], ",", ""))
	if err != nil {
		return nil
	}
	return &d
}

// extractInt pulls an integer out of text like "128,000 tokens".
func extractInt(text string) *int {
	m := intRe.FindStringSubmatch(text)
	if m == nil {
		return nil
	}
	v, err := strconv.Atoi(strings.ReplaceAll(m[1], ",", ""))
	if err != nil {
		return nil
	}
	return &v
}
