// Package preview renders a layout plan as a standalone HTML page.
//
// The page shows every output section with its column count applied through
// CSS columns, so the effect of classification can be inspected in a
// browser before a document is produced. Each block carries its category
// and the rule that matched as data attributes.
package preview

import (
	"fmt"
	"io"
	"strconv"

	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"

	"github.com/tsawler/paperlayout/layout"
)

// Options configures Render.
type Options struct {
	// Title is the page title. Empty means "Layout preview".
	Title string

	// Footer is shown under every section, after the page label.
	Footer string
}

const stylesheet = `body{font-family:Calibri,Arial,sans-serif;max-width:8.5in;margin:auto;background:#eee}
section{background:#fff;padding:0.5in 0.75in;margin:0 0 2px;column-gap:0.5in}
section h1{font-size:12.5pt;text-align:center}
section h2{font-size:10pt;margin:0 0 1em}
section h2.references{font-size:11.5pt;text-align:center}
section p.body{text-align:justify;margin:0 0 7.2pt}
section .special{text-align:justify}
figure{text-align:center;margin:0 0 1em}
figure .placeholder{border:1px dashed #999;padding:1em}
figcaption{font-style:italic;font-size:8.5pt}
table{border-collapse:collapse;margin:0 0 1em}
td{border:1px solid #999;padding:2px 4px}
footer{font-size:10pt;color:#666;border-top:1px solid #ddd;margin-top:1em;column-span:all}`

// Render writes an HTML preview of plan to w.
func Render(w io.Writer, plan layout.Plan, opts Options) error {
	title := opts.Title
	if title == "" {
		title = "Layout preview"
	}

	doc := &html.Node{Type: html.DocumentNode}
	doc.AppendChild(&html.Node{Type: html.DoctypeNode, Data: "html"})

	root := element(atom.Html, nil)
	doc.AppendChild(root)

	head := element(atom.Head, nil,
		element(atom.Meta, []html.Attribute{{Key: "charset", Val: "utf-8"}}),
		element(atom.Title, nil, text(title)),
		element(atom.Style, nil, text(stylesheet)),
	)
	root.AppendChild(head)

	body := element(atom.Body, nil)
	root.AppendChild(body)

	r := renderer{footer: opts.Footer}
	r.open(body, 1)
	for _, step := range plan.Steps {
		if step.NewSection {
			r.open(body, step.Columns)
		}
		r.step(step)
	}
	r.close()

	if err := html.Render(w, doc); err != nil {
		return fmt.Errorf("rendering preview: %w", err)
	}
	return nil
}

type renderer struct {
	footer  string
	section *html.Node
	list    *html.Node
	count   int
	refs    int
}

// open starts a new section with the given column count.
func (r *renderer) open(body *html.Node, columns int) {
	r.close()
	r.count++
	r.section = element(atom.Section, []html.Attribute{
		{Key: "id", Val: "section-" + strconv.Itoa(r.count)},
		{Key: "data-columns", Val: strconv.Itoa(columns)},
		{Key: "style", Val: "column-count:" + strconv.Itoa(columns)},
	})
	body.AppendChild(r.section)
}

func (r *renderer) close() {
	if r.section == nil {
		return
	}
	label := "Page #"
	if r.footer != "" {
		label += "   " + r.footer
	}
	r.section.AppendChild(element(atom.Footer, nil, text(label)))
	r.section = nil
	r.list = nil
}

func (r *renderer) step(s layout.Step) {
	switch s.Kind {
	case layout.StepImage:
		r.list = nil
		fig := element(atom.Figure, []html.Attribute{{Key: "data-block", Val: strconv.Itoa(s.Index)}},
			element(atom.Div, []html.Attribute{{Key: "class", Val: "placeholder"}}, text("[Image]")))
		if s.Text != "" {
			fig.AppendChild(element(atom.Figcaption, nil, text(s.Text)))
		}
		r.section.AppendChild(fig)
	case layout.StepTable:
		r.list = nil
		r.section.AppendChild(table(s))
	default:
		r.paragraph(s)
	}
}

func (r *renderer) paragraph(s layout.Step) {
	c := s.Classification
	attrs := []html.Attribute{
		{Key: "data-block", Val: strconv.Itoa(s.Index)},
		{Key: "data-category", Val: c.Category.String()},
		{Key: "data-rule", Val: c.Rule},
	}

	// Reference numbering runs through the whole document; a list that
	// resumes after other content starts where the previous one stopped.
	if c.Category == layout.CategoryReference {
		if r.list == nil {
			var olAttrs []html.Attribute
			if r.refs > 0 {
				olAttrs = []html.Attribute{{Key: "start", Val: strconv.Itoa(r.refs + 1)}}
			}
			r.list = element(atom.Ol, olAttrs)
			r.section.AppendChild(r.list)
		}
		r.list.AppendChild(element(atom.Li, attrs, text(s.Text)))
		r.refs++
		return
	}
	r.list = nil

	var n *html.Node
	switch c.Category {
	case layout.CategoryTitle:
		n = element(atom.H1, attrs, text(s.Text))
	case layout.CategoryReferencesHeading:
		n = element(atom.H2, append(attrs, html.Attribute{Key: "class", Val: "references"}), text(s.Text))
	case layout.CategorySpecialBlock:
		n = element(atom.H2, append(attrs, html.Attribute{Key: "class", Val: "special"}), text(s.Text))
	case layout.CategorySubheading, layout.CategoryUppercaseHeading:
		n = element(atom.H2, attrs, text(s.Text))
	default:
		n = element(atom.P, append(attrs, html.Attribute{Key: "class", Val: "body"}), text(s.Text))
	}
	r.section.AppendChild(n)
}

func table(s layout.Step) *html.Node {
	t := element(atom.Table, []html.Attribute{{Key: "data-block", Val: strconv.Itoa(s.Index)}})
	if s.Table == nil {
		return t
	}
	if s.Table.StyleName != "" {
		t.Attr = append(t.Attr, html.Attribute{Key: "data-style", Val: s.Table.StyleName})
	}
	tbody := element(atom.Tbody, nil)
	t.AppendChild(tbody)
	for r := 0; r < s.Table.RowCount(); r++ {
		tr := element(atom.Tr, nil)
		for c := 0; c < s.Table.ColCount(); c++ {
			tr.AppendChild(element(atom.Td, nil, text(s.Table.CellText(r, c))))
		}
		tbody.AppendChild(tr)
	}
	return t
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
