package report

import (
	"fmt"
	"io"

	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

// WriteHTML renders a check report as a standalone HTML document.
func WriteHTML(w io.Writer, title string, rounds []Round) error {
	doc := &html.Node{Type: html.DocumentNode}
	doc.AppendChild(&html.Node{Type: html.DoctypeNode, Data: "html"})
	root := element("html")
	doc.AppendChild(root)
	head := element("head")
	head.AppendChild(withText(element("title"), title))
	head.AppendChild(withText(element("style"),
		"td,th{padding:2px 8px;text-align:right} .pass{color:green} .fail{color:red}"))
	root.AppendChild(head)
	body := element("body")
	root.AppendChild(body)
	body.AppendChild(withText(element("h1"), title))
	failed := Failures(rounds)
	body.AppendChild(withText(element("p"),
		fmt.Sprintf("%d rounds, %d failed", len(rounds), failed)))
	table := element("table")
	body.AppendChild(table)
	tr := element("tr")
	for _, h := range []string{"seed", "commands", "length", "status", "detail"} {
		tr.AppendChild(withText(element("th"), h))
	}
	table.AppendChild(tr)
	for _, r := range rounds {
		tr := element("tr")
		tr.AppendChild(withText(element("td"), fmt.Sprint(r.Seed)))
		tr.AppendChild(withText(element("td"), fmt.Sprint(r.Commands)))
		tr.AppendChild(withText(element("td"), fmt.Sprint(r.Length)))
		status, class, detail := "PASS", "pass", ""
		if !r.Passed() {
			status, class, detail = "FAIL", "fail", r.Err.Error()
		}
		tr.AppendChild(withText(element("td", html.Attribute{Key: "class", Val: class}), status))
		tr.AppendChild(withText(element("td"), detail))
		table.AppendChild(tr)
	}
	return html.Render(w, doc)
}

func element(tag string, attrs ...html.Attribute) *html.Node {
	return &html.Node{
		Type:     html.ElementNode,
		Data:     tag,
		DataAtom: atom.Lookup([]byte(tag)),
		Attr:     attrs,
	}
}

func withText(n *html.Node, text string) *html.Node {
	n.AppendChild(&html.Node{Type: html.TextNode, Data: text})
	return n
}
