package export

import (
	"bytes"
	"fmt"

	"github.com/PuerkitoBio/goquery"
)

// Frame is the box the exported region is laid out in.
type Frame struct {
	Width   string
	Padding string
}

var (
	// DocumentFrame matches an A4 page with 15mm margins.
	DocumentFrame = Frame{Width: "210mm", Padding: "15mm"}
	// RasterFrame is the fixed layout used for images.
	RasterFrame = Frame{Width: "800px", Padding: "40px"}
)

// frameCSS lets the template shrink to the frame instead of keeping its
// on-screen A4 width.
const frameCSS = `
html, body { margin: 0; padding: 0; background: #ffffff; }
[data-export-frame] { box-sizing: border-box; background: #ffffff; }
[data-export-frame] .resume { width: auto; min-height: 0; }
`

// ExtractRegion returns a standalone page holding only the element with id
// regionID from page, laid out in frame. The page's head, and so its
// stylesheet, is kept.
func ExtractRegion(page []byte, regionID string, frame Frame) ([]byte, error) {
	doc, err := goquery.NewDocumentFromReader(bytes.NewReader(page))
	if err != nil {
		return nil, &ExportError{Message: "failed to parse page", Cause: err}
	}

	region := doc.Find(fmt.Sprintf("[id=%q]", regionID)).First()
	if region.Length() == 0 {
		return nil, &ExportError{Message: MsgRegionNotFound}
	}

	region.SetAttr("data-export-frame", "")
	region.SetAttr("style", fmt.Sprintf("width: %s; padding: %s; background: #ffffff;", frame.Width, frame.Padding))
	regionHTML, err := goquery.OuterHtml(region)
	if err != nil {
		return nil, &ExportError{Message: "failed to serialize region", Cause: err}
	}

	doc.Find("head").AppendHtml("<style>" + frameCSS + "</style>")
	doc.Find("body").SetHtml(regionHTML)

	out, err := doc.Html()
	if err != nil {
		return nil, &ExportError{Message: "failed to serialize page", Cause: err}
	}
	return []byte(out), nil
}
