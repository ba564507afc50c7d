package rendering

import (
	"bytes"
	"io"

	"github.com/jonathan/resume-builder/internal/types"
	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

// PreviewID is the id of the element wrapping the rendered resume. Export
// looks it up to find what to print.
const PreviewID = "resume-preview"

// RenderHTML renders doc with its template and returns a complete HTML page.
func RenderHTML(doc types.Resume) ([]byte, error) {
	var buf bytes.Buffer
	if err := WriteHTML(&buf, doc); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// WriteHTML renders doc as a complete HTML page to w. All text is escaped.
func WriteHTML(w io.Writer, doc types.Resume) error {
	tree, err := Render(doc)
	if err != nil {
		return err
	}

	title := doc.PersonalInfo.FullName
	if title == "" {
		title = "Resume"
	}

	page := &html.Node{Type: html.DocumentNode}
	page.AppendChild(&html.Node{Type: html.DoctypeNode, Data: "html"})

	root := element("html", html.Attribute{Key: "lang", Val: "en"})
	head := element("head")
	head.AppendChild(element("meta", html.Attribute{Key: "charset", Val: "utf-8"}))
	head.AppendChild(withText(element("title"), title))
	head.AppendChild(withText(element("style"), stylesheet))
	root.AppendChild(head)

	body := element("body")
	preview := element("div",
		html.Attribute{Key: "id", Val: PreviewID},
		html.Attribute{Key: "class", Val: "preview"})
	preview.AppendChild(toHTML(tree))
	body.AppendChild(preview)
	root.AppendChild(body)
	page.AppendChild(root)

	if err := html.Render(w, page); err != nil {
		return &RenderError{Message: "failed to write HTML", Cause: err}
	}
	return nil
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

func toHTML(n *Node) *html.Node {
	var attrs []html.Attribute
	if n.Class != "" {
		attrs = append(attrs, html.Attribute{Key: "class", Val: n.Class})
	}
	for _, k := range n.AttrKeys() {
		attrs = append(attrs, html.Attribute{Key: k, Val: n.Attrs[k]})
	}

	out := element(n.Tag, attrs...)
	if n.Text != "" {
		withText(out, n.Text)
	}
	for _, c := range n.Children {
		out.AppendChild(toHTML(c))
	}
	return out
}

// stylesheet lays the page out at A4 width. Accent colors are inline on the
// nodes that use them.
const stylesheet = `
* { box-sizing: border-box; margin: 0; padding: 0; }
body { background: #ffffff; color: #111827; font-family: "Helvetica Neue", Arial, sans-serif; font-size: 14px; line-height: 1.4; }
.preview { width: 210mm; margin: 0 auto; }
.resume { width: 210mm; min-height: 297mm; background: #ffffff; }
.layout-single { padding: 32px; }
.template-minimal { padding: 40px; }
.layout-sidebar { display: flex; }
.sidebar { width: 33%; padding: 24px; }
.content { flex: 1; padding: 24px; }
.section { margin-bottom: 20px; }
.section-title { font-size: 18px; font-weight: 700; border-bottom: 2px solid; padding-bottom: 4px; margin-bottom: 10px; }
.template-minimal .section-title, .template-creative .section-title { font-size: 13px; border-bottom: none; }
.sidebar-title { font-size: 18px; font-weight: 700; border-bottom: 1px solid rgba(255,255,255,0.3); padding-bottom: 8px; margin-bottom: 12px; }
.uppercase { text-transform: uppercase; letter-spacing: 0.05em; }
.spaced { letter-spacing: 0.2em; }
.centered { text-align: center; justify-content: center; }
.light { font-weight: 300; }
.name { font-size: 30px; font-weight: 700; }
.job-title { font-size: 20px; font-weight: 500; margin-bottom: 8px; }
.header { margin-bottom: 24px; }
.header-ruled { display: flex; gap: 24px; border-bottom: 2px solid #d1d5db; padding-bottom: 24px; }
.band { padding: 32px; border-radius: 0 0 24px 24px; }
.band-row { display: flex; gap: 24px; align-items: center; }
.body { padding: 24px; }
.panel { padding: 16px; border-radius: 12px; }
.columns { display: grid; grid-template-columns: 1fr 2fr; gap: 20px; }
.grid-2 { display: grid; grid-template-columns: 1fr 1fr; gap: 12px; }
.card { padding: 12px; border-radius: 8px; }
.photo { object-fit: cover; display: block; }
.photo-round { width: 128px; height: 128px; border-radius: 50%; margin: 0 auto 24px; border: 4px solid rgba(255,255,255,0.3); }
.photo-square { width: 96px; height: 96px; border-radius: 8px; }
.photo-rounded { width: 112px; height: 112px; border-radius: 16px; border: 4px solid rgba(255,255,255,0.3); }
.contact-list { font-size: 13px; margin-bottom: 16px; }
.contact-list.stacked .contact { display: block; margin-bottom: 6px; word-break: break-all; }
.contact-list.inline { display: flex; flex-wrap: wrap; gap: 12px; }
.contact-list.pills { display: flex; flex-wrap: wrap; gap: 8px; }
.contact-list.pills .contact { background: rgba(255,255,255,0.2); padding: 2px 12px; border-radius: 999px; }
.contact-list.social { display: flex; gap: 12px; opacity: 0.8; margin: 12px 0 0; }
.separator { color: #d1d5db; }
.entries > .entry { margin-bottom: 14px; }
.entry-head { display: flex; justify-content: space-between; align-items: flex-start; gap: 12px; }
.entry-title { font-weight: 700; font-size: 15px; }
.entry-subtitle { font-weight: 600; }
.entry-dates, .entry-meta, .muted { color: #4b5563; font-size: 13px; }
.entry-dates { text-align: right; white-space: nowrap; }
.entry-body { color: #374151; margin-top: 4px; }
.pre-line { white-space: pre-line; }
.timeline > .entry { border-left: 2px solid; padding-left: 12px; }
.technologies { color: #4b5563; font-size: 13px; margin-top: 4px; }
.chips { display: flex; flex-wrap: wrap; gap: 8px; }
.chip { background: #f3f4f6; color: #1f2937; padding: 2px 12px; border-radius: 999px; font-size: 13px; }
.chip .muted { margin-left: 4px; }
.inline-list { display: flex; flex-wrap: wrap; gap: 12px; }
.skill { margin-bottom: 8px; }
.skill-name { font-weight: 500; }
.bar { width: 100%; height: 6px; border-radius: 999px; margin-top: 4px; }
.bar-fill { height: 6px; border-radius: 999px; }
.language .muted { margin-left: 6px; }
`
