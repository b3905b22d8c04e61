package server

import (
	"io"

	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

const pageStyle = `body{font-family:Georgia,serif;max-width:36em;margin:3em auto;padding:0 1em}
label{display:block;margin-top:1em}
input[type=text]{width:100%}
.error{color:#a00}`

// renderForm writes the upload page. msg, when set, is shown above the
// form; footer pre-fills the footer field.
func renderForm(w io.Writer, msg, footer string) error {
	head := element(atom.Head, nil,
		element(atom.Meta, []html.Attribute{{Key: "charset", Val: "utf-8"}}),
		element(atom.Title, nil, text("paperlayout")),
		element(atom.Style, nil, text(pageStyle)),
	)

	body := element(atom.Body, nil,
		element(atom.H1, nil, text("Two-column paper layout")),
		element(atom.P, nil, text("Upload a Word document (.docx) to reformat it as a two-column academic paper.")),
	)
	if msg != "" {
		body.AppendChild(element(atom.P, []html.Attribute{{Key: "class", Val: "error"}, {Key: "role", Val: "alert"}}, text(msg)))
	}

	footerInput := []html.Attribute{
		{Key: "type", Val: "text"},
		{Key: "id", Val: "footer_text"},
		{Key: "name", Val: "footer_text"},
		{Key: "placeholder", Val: "Journal name, volume, year"},
	}
	if footer != "" {
		footerInput = append(footerInput, html.Attribute{Key: "value", Val: footer})
	}

	form := element(atom.Form, []html.Attribute{
		{Key: "method", Val: "post"},
		{Key: "action", Val: "/upload"},
		{Key: "enctype", Val: "multipart/form-data"},
	},
		element(atom.Label, []html.Attribute{{Key: "for", Val: "file"}}, text("Document")),
		element(atom.Input, []html.Attribute{
			{Key: "type", Val: "file"},
			{Key: "id", Val: "file"},
			{Key: "name", Val: "file"},
			{Key: "accept", Val: ".docx"},
			{Key: "required", Val: ""},
		}),
		element(atom.Label, []html.Attribute{{Key: "for", Val: "footer_text"}}, text("Footer text")),
		element(atom.Input, footerInput),
		element(atom.P, nil,
			element(atom.Button, []html.Attribute{{Key: "type", Val: "submit"}}, text("Format document")),
		),
	)
	body.AppendChild(form)

	doc := &html.Node{Type: html.DocumentNode}
	doc.AppendChild(&html.Node{Type: html.DoctypeNode, Data: "html"})
	doc.AppendChild(element(atom.Html, []html.Attribute{{Key: "lang", Val: "en"}}, head, body))
	return html.Render(w, doc)
}

func element(a atom.Atom, attrs []html.Attribute, children ...*html.Node) *html.Node {
	n := &html.Node{Type: html.ElementNode, DataAtom: a, Data: a.String(), Attr: attrs}
	for _, c := range children {
		n.AppendChild(c)
	}
	return n
}

func text(s string) *html.Node {
	return &html.Node{Type: html.TextNode, Data: s}
}
