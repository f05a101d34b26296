package web

import (
	_ "embed"
	"html/template"

	"github.com/ziadkadry99/brandcraft/internal/brand"
	"github.com/ziadkadry99/brandcraft/internal/demo"
)

//go:embed index.html
var indexHTML string

var pageTemplate = template.Must(template.New("index").Parse(indexHTML))

type pageData struct {
	Request brand.Request
	Styles  []brand.Style
	Result  *brand.Result
	ID      string
	Logo    template.HTML
	Error   string

	// CopyText is what the Copy All button puts on the clipboard.
	CopyText string

	DemoIdeas     []string
	DemoAudience  string
	KeyDelayMS    int64
	SubmitDelayMS int64
}

func newPageData(req brand.Request) pageData {
	return pageData{
		Request:       req,
		Styles:        brand.Styles,
		DemoIdeas:     demo.Ideas,
		DemoAudience:  demo.Audience,
		KeyDelayMS:    demo.KeyDelay.Milliseconds(),
		SubmitDelayMS: demo.SubmitDelay.Milliseconds(),
	}
}

// Selected reports whether style is the one the form was submitted with.
func (p pageData) Selected(style brand.Style) bool {
	return brand.StyleOrDefault(p.Request.Style) == style
}
